package glint

import "github.com/mattn/go-runewidth"

// Modal is a centered dialog with a message and a horizontal row of
// buttons. Arrow keys and Tab move the selection, clamped at the ends.
// Enter and Space activate the selection; Escape activates the LAST
// button, which by convention is the cancel/no action; digits 1-9
// activate a button by position.
type Modal struct {
	Base
	title    string
	message  []string
	buttons  []string
	selected int
	listener OverlayListener
}

// NewModal creates a modal. Buttons must be non-empty; a modal with no way
// out is a configuration error.
func NewModal(title, message string, buttons ...string) *Modal {
	if len(buttons) == 0 {
		panic("glint: modal requires at least one button")
	}
	m := &Modal{
		title:   title,
		buttons: buttons,
	}
	if message != "" {
		m.message = splitLines(message)
	}
	return m
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// SetListener registers the overlay listener.
func (m *Modal) SetListener(l OverlayListener) { m.listener = l }

// Selected returns the selected button index.
func (m *Modal) Selected() int { return m.selected }

// activate reports the result for the given button index.
func (m *Modal) activate(index int) {
	if m.listener == nil {
		return
	}
	m.listener.OverlayClosed(OverlayResult{
		Index:    index,
		Label:    m.buttons[index],
		Canceled: index == len(m.buttons)-1,
	})
}

// HandleInput implements exclusive modal input.
func (m *Modal) HandleInput(ev KeyEvent) bool {
	switch {
	case ev.IsKey(KeyLeft), ev.Is(Combo(KeyTab, ModShift)):
		if m.selected > 0 {
			m.selected--
		}
	case ev.IsKey(KeyRight), ev.IsKey(KeyTab):
		if m.selected < len(m.buttons)-1 {
			m.selected++
		}
	case ev.IsKey(KeyEnter), ev.IsKey(KeySpace):
		m.activate(m.selected)
	case ev.IsKey(KeyEscape):
		m.activate(len(m.buttons) - 1)
	default:
		if r, ok := ev.PrintableRune(); ok && r >= '1' && r <= '9' {
			idx := int(r - '1')
			if idx < len(m.buttons) {
				m.activate(idx)
			}
		}
	}
	// overlays consume everything while active
	return true
}

// desiredSize computes the dialog box dimensions from its content.
func (m *Modal) desiredSize() (int, int) {
	w := runewidth.StringWidth(m.title)
	for _, line := range m.message {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	bw := 0
	for _, b := range m.buttons {
		bw += runewidth.StringWidth(b) + 4 // "[ b ]"
	}
	bw += len(m.buttons) - 1
	if bw > w {
		w = bw
	}
	w += 6 // border + margin
	h := len(m.message) + 5
	return w, h
}

// PlaceOverlay centers the dialog on the screen.
func (m *Modal) PlaceOverlay(screen Rect) {
	w, h := m.desiredSize()
	if w > screen.W {
		w = screen.W
	}
	if h > screen.H {
		h = screen.H
	}
	m.SetBounds(Rect{
		X: screen.X + (screen.W-w)/2,
		Y: screen.Y + (screen.H-h)/2,
		W: w,
		H: h,
	})
}

// Render implements Component.
func (m *Modal) Render(ctx *RenderContext) {
	b := m.bounds
	if b.Empty() {
		return
	}
	ctx.Buf.FillRect(b.X, b.Y, b.W, b.H, ' ', ctx.Theme.Normal)
	ctx.Buf.DrawBox(b.X, b.Y, b.W, b.H, BorderDouble, ctx.Theme.BorderActive)
	if m.title != "" && b.W > 4 {
		ctx.Buf.WriteStringClipped(b.X+2, b.Y, " "+m.title+" ", ctx.Theme.Accent, b.W-4)
	}

	for i, line := range m.message {
		y := b.Y + 2 + i
		if y >= b.Y+b.H-2 {
			break
		}
		ctx.Buf.WriteStringClipped(b.X+3, y, line, ctx.Theme.Normal, b.W-6)
	}

	// button row, bottom-aligned, centered
	totalW := 0
	for _, btn := range m.buttons {
		totalW += runewidth.StringWidth(btn) + 4 + 1
	}
	totalW--
	x := b.X + (b.W-totalW)/2
	y := b.Y + b.H - 2
	for i, btn := range m.buttons {
		style := ctx.Theme.Normal
		if i == m.selected {
			style = ctx.Theme.Selected
		}
		label := "[ " + btn + " ]"
		ctx.Buf.WriteStringClipped(x, y, label, style, b.W)
		x += runewidth.StringWidth(label) + 1
	}
}
