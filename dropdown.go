package glint

import "github.com/mattn/go-runewidth"

// MenuItem is one entry of a dropdown menu. Separators render as a rule
// and are skipped by navigation.
type MenuItem struct {
	Label     string
	Separator bool
}

// MenuSeparator is a separator entry.
func MenuSeparator() MenuItem { return MenuItem{Separator: true} }

// Dropdown is a menu overlay anchored at a point, e.g. beneath a menu bar
// title. Up/Down wrap around the ends, skipping separators; Enter and
// Space activate; Escape activates the last selectable item; digits 1-9
// address selectable items by position.
type Dropdown struct {
	Base
	items    []MenuItem
	selected int
	anchorX  int
	anchorY  int
	listener OverlayListener
}

// NewDropdown creates a dropdown from items. At least one selectable item
// is required; a menu of only separators is a configuration error.
func NewDropdown(items ...MenuItem) *Dropdown {
	selectable := false
	for _, it := range items {
		if !it.Separator {
			selectable = true
			break
		}
	}
	if !selectable {
		panic("glint: dropdown requires at least one selectable item")
	}
	d := &Dropdown{items: items}
	d.selected = d.nextSelectable(-1, +1)
	return d
}

// SetListener registers the overlay listener.
func (d *Dropdown) SetListener(l OverlayListener) { d.listener = l }

// AnchorAt sets the screen position the menu hangs from (its top-left).
func (d *Dropdown) AnchorAt(x, y int) {
	d.anchorX = x
	d.anchorY = y
}

// Selected returns the selected item index.
func (d *Dropdown) Selected() int { return d.selected }

// nextSelectable finds the next non-separator index from start in the
// given direction, wrapping around the ends.
func (d *Dropdown) nextSelectable(start, dir int) int {
	n := len(d.items)
	idx := start
	for i := 0; i < n; i++ {
		idx = (idx + dir + n) % n
		if !d.items[idx].Separator {
			return idx
		}
	}
	return start
}

// selectableOrdinal returns the index of the n-th selectable item
// (0-based), or -1.
func (d *Dropdown) selectableOrdinal(n int) int {
	seen := 0
	for i, it := range d.items {
		if it.Separator {
			continue
		}
		if seen == n {
			return i
		}
		seen++
	}
	return -1
}

func (d *Dropdown) activate(index int) {
	if d.listener == nil {
		return
	}
	last := d.nextSelectable(0, -1)
	d.listener.OverlayClosed(OverlayResult{
		Index:    index,
		Label:    d.items[index].Label,
		Canceled: index == last,
	})
}

// HandleInput implements exclusive menu input.
func (d *Dropdown) HandleInput(ev KeyEvent) bool {
	switch {
	case ev.IsKey(KeyUp):
		d.selected = d.nextSelectable(d.selected, -1)
	case ev.IsKey(KeyDown), ev.IsKey(KeyTab):
		d.selected = d.nextSelectable(d.selected, +1)
	case ev.IsKey(KeyHome):
		d.selected = d.nextSelectable(-1, +1)
	case ev.IsKey(KeyEnd):
		d.selected = d.nextSelectable(0, -1)
	case ev.IsKey(KeyEnter), ev.IsKey(KeySpace):
		d.activate(d.selected)
	case ev.IsKey(KeyEscape):
		d.activate(d.nextSelectable(0, -1))
	default:
		if r, ok := ev.PrintableRune(); ok && r >= '1' && r <= '9' {
			if idx := d.selectableOrdinal(int(r - '1')); idx >= 0 {
				d.activate(idx)
			}
		}
	}
	return true
}

func (d *Dropdown) desiredSize() (int, int) {
	w := 0
	for _, it := range d.items {
		if lw := runewidth.StringWidth(it.Label); lw > w {
			w = lw
		}
	}
	return w + 6, len(d.items) + 2
}

// PlaceOverlay hangs the menu from its anchor, pulled back inside the
// screen when it would overflow.
func (d *Dropdown) PlaceOverlay(screen Rect) {
	w, h := d.desiredSize()
	x, y := d.anchorX, d.anchorY
	if x+w > screen.X+screen.W {
		x = screen.X + screen.W - w
	}
	if y+h > screen.Y+screen.H {
		y = screen.Y + screen.H - h
	}
	if x < screen.X {
		x = screen.X
	}
	if y < screen.Y {
		y = screen.Y
	}
	d.SetBounds(Rect{X: x, Y: y, W: w, H: h})
}

// Render implements Component.
func (d *Dropdown) Render(ctx *RenderContext) {
	b := d.bounds
	if b.Empty() {
		return
	}
	ctx.Buf.FillRect(b.X, b.Y, b.W, b.H, ' ', ctx.Theme.Normal)
	ctx.Buf.DrawBox(b.X, b.Y, b.W, b.H, BorderSingle, ctx.Theme.BorderActive)

	for i, it := range d.items {
		y := b.Y + 1 + i
		if it.Separator {
			ctx.Buf.HLine(b.X+1, y, b.W-2, BoxHorizontal, ctx.Theme.BorderInactive)
			continue
		}
		style := ctx.Theme.Normal
		if i == d.selected {
			style = ctx.Theme.Selected
			ctx.Buf.FillRect(b.X+1, y, b.W-2, 1, ' ', style)
		}
		ctx.Buf.WriteStringClipped(b.X+2, y, it.Label, style, b.W-4)
	}
}
