package glint

import "github.com/mattn/go-runewidth"

// FieldListener is notified when a form field's value changes or the user
// submits it with Enter.
type FieldListener interface {
	FieldChanged(value string)
	FieldSubmitted(value string)
}

// TextField is a single-line text input. While focused it accepts any
// printable character directly from the token stream; bound actions take
// precedence only where the owning screen wires them ahead of the field.
type TextField struct {
	Base
	value       []rune
	cursor      int
	placeholder string
	mask        rune // 0 = plain text, otherwise echoed per rune
	scroll      int
	listener    FieldListener
}

// NewTextField creates an empty text field.
func NewTextField() *TextField {
	f := &TextField{}
	f.SetMinSize(4, 1)
	return f
}

// SetListener registers the field listener.
func (f *TextField) SetListener(l FieldListener) { f.listener = l }

// SetPlaceholder sets the hint shown while empty.
func (f *TextField) SetPlaceholder(p string) { f.placeholder = p }

// SetMask sets the echo rune for password entry; 0 restores plain echo.
func (f *TextField) SetMask(r rune) { f.mask = r }

// Value returns the current text.
func (f *TextField) Value() string { return string(f.value) }

// SetValue replaces the text and moves the cursor to the end.
func (f *TextField) SetValue(s string) {
	f.value = []rune(s)
	f.cursor = len(f.value)
}

func (f *TextField) changed() {
	if f.listener != nil {
		f.listener.FieldChanged(string(f.value))
	}
}

// HandleInput implements editing while focused.
func (f *TextField) HandleInput(ev KeyEvent) bool {
	switch {
	case ev.IsKey(KeyLeft):
		if f.cursor > 0 {
			f.cursor--
		}
	case ev.IsKey(KeyRight):
		if f.cursor < len(f.value) {
			f.cursor++
		}
	case ev.IsKey(KeyHome):
		f.cursor = 0
	case ev.IsKey(KeyEnd):
		f.cursor = len(f.value)
	case ev.IsKey(KeyBackspace):
		if f.cursor > 0 {
			f.value = append(f.value[:f.cursor-1], f.value[f.cursor:]...)
			f.cursor--
			f.changed()
		}
	case ev.IsKey(KeyDelete):
		if f.cursor < len(f.value) {
			f.value = append(f.value[:f.cursor], f.value[f.cursor+1:]...)
			f.changed()
		}
	case ev.IsKey(KeyEnter):
		if f.listener != nil {
			f.listener.FieldSubmitted(string(f.value))
		}
	default:
		r, ok := ev.PrintableRune()
		if !ok {
			return false
		}
		f.value = append(f.value[:f.cursor], append([]rune{r}, f.value[f.cursor:]...)...)
		f.cursor++
		f.changed()
	}
	return true
}

// Render implements Component.
func (f *TextField) Render(ctx *RenderContext) {
	b := f.bounds
	if b.Empty() {
		return
	}
	style := ctx.Theme.Normal
	if f.focused {
		style = ctx.Theme.Selected
	}
	ctx.Buf.FillRect(b.X, b.Y, b.W, 1, ' ', style)

	if len(f.value) == 0 && f.placeholder != "" && !f.focused {
		ctx.Buf.WriteStringClipped(b.X, b.Y, f.placeholder, ctx.Theme.Muted, b.W)
		return
	}

	shown := f.value
	if f.mask != 0 {
		shown = make([]rune, len(f.value))
		for i := range shown {
			shown[i] = f.mask
		}
	}

	// keep the cursor inside the visible window
	if f.cursor < f.scroll {
		f.scroll = f.cursor
	}
	if f.cursor-f.scroll >= b.W {
		f.scroll = f.cursor - b.W + 1
	}
	visible := shown[min(f.scroll, len(shown)):]
	ctx.Buf.WriteStringClipped(b.X, b.Y, string(visible), style, b.W)

	if f.focused {
		cx := b.X + runewidth.StringWidth(string(shown[f.scroll:min(f.cursor, len(shown))]))
		if cx < b.X+b.W {
			cell := ctx.Buf.Get(cx, b.Y)
			cell.Style = cell.Style.Inverse()
			ctx.Buf.SetStyle(cx, b.Y, cell.Style)
		}
	}
}

// Checkbox is a boolean toggle flipped with Space.
type Checkbox struct {
	Base
	label    string
	checked  bool
	listener FieldListener
}

// NewCheckbox creates a checkbox with a label.
func NewCheckbox(label string) *Checkbox {
	c := &Checkbox{label: label}
	c.SetMinSize(runewidth.StringWidth(label)+4, 1)
	return c
}

// SetListener registers the field listener.
func (c *Checkbox) SetListener(l FieldListener) { c.listener = l }

// Checked reports the current state.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the state.
func (c *Checkbox) SetChecked(v bool) { c.checked = v }

// HandleInput implements toggling while focused.
func (c *Checkbox) HandleInput(ev KeyEvent) bool {
	if ev.IsKey(KeySpace) || ev.IsKey(KeyEnter) {
		c.checked = !c.checked
		if c.listener != nil {
			value := "false"
			if c.checked {
				value = "true"
			}
			c.listener.FieldChanged(value)
		}
		return true
	}
	return false
}

// Render implements Component.
func (c *Checkbox) Render(ctx *RenderContext) {
	b := c.bounds
	if b.Empty() {
		return
	}
	style := ctx.Theme.Normal
	if c.focused {
		style = ctx.Theme.Selected
	}
	box := "[ ] "
	if c.checked {
		box = "[x] "
	}
	x := b.X + ctx.Buf.WriteStringClipped(b.X, b.Y, box, style, b.W)
	ctx.Buf.WriteStringClipped(x, b.Y, c.label, style, b.W-(x-b.X))
}

// SelectField cycles through a fixed set of options with Left/Right or
// Space.
type SelectField struct {
	Base
	options  []string
	index    int
	listener FieldListener
}

// NewSelectField creates a select field. Constructing one with no options
// is a configuration error left to surface on first use; screens build
// these from static tables.
func NewSelectField(options ...string) *SelectField {
	f := &SelectField{options: options}
	w := 0
	for _, o := range options {
		if ow := runewidth.StringWidth(o); ow > w {
			w = ow
		}
	}
	f.SetMinSize(w+4, 1)
	return f
}

// SetListener registers the field listener.
func (f *SelectField) SetListener(l FieldListener) { f.listener = l }

// Value returns the selected option, or empty.
func (f *SelectField) Value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.index]
}

// Select sets the selected index, clamped.
func (f *SelectField) Select(i int) {
	if len(f.options) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(f.options) {
		i = len(f.options) - 1
	}
	f.index = i
}

func (f *SelectField) cycle(delta int) {
	if len(f.options) == 0 {
		return
	}
	f.index = (f.index + delta + len(f.options)) % len(f.options)
	if f.listener != nil {
		f.listener.FieldChanged(f.options[f.index])
	}
}

// HandleInput implements cycling while focused.
func (f *SelectField) HandleInput(ev KeyEvent) bool {
	switch {
	case ev.IsKey(KeyLeft):
		f.cycle(-1)
	case ev.IsKey(KeyRight), ev.IsKey(KeySpace):
		f.cycle(1)
	case ev.IsKey(KeyEnter):
		if f.listener != nil {
			f.listener.FieldSubmitted(f.Value())
		}
	default:
		return false
	}
	return true
}

// Render implements Component.
func (f *SelectField) Render(ctx *RenderContext) {
	b := f.bounds
	if b.Empty() {
		return
	}
	style := ctx.Theme.Normal
	if f.focused {
		style = ctx.Theme.Selected
	}
	ctx.Buf.FillRect(b.X, b.Y, b.W, 1, ' ', style)
	ctx.Buf.WriteStringClipped(b.X, b.Y, "‹ "+f.Value()+" ›", style, b.W)
}
