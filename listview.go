package glint

import "github.com/mattn/go-runewidth"

// ListItem is one row of a ListView.
type ListItem struct {
	Text      string
	Secondary string // right-aligned detail, e.g. file size
	Marked    bool   // multi-select mark
}

// SelectionListener is notified when the selection moves or an item is
// activated with Enter. Business behavior stays with the owning screen;
// the widget only reports indices.
type SelectionListener interface {
	SelectionChanged(index int)
	ItemActivated(index int)
}

// ListView is a scrollable, selectable list. It owns navigation keys while
// focused and keeps the selection visible by adjusting its scroll window.
type ListView struct {
	Base
	items    []ListItem
	selected int
	offset   int
	listener SelectionListener
}

// NewListView creates an empty list.
func NewListView() *ListView {
	l := &ListView{}
	l.SetMinSize(1, 1)
	return l
}

// SetListener registers the selection listener.
func (l *ListView) SetListener(listener SelectionListener) { l.listener = listener }

// SetItems replaces the items, clamping the selection.
func (l *ListView) SetItems(items []ListItem) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.ensureVisible()
}

// Items returns the current items.
func (l *ListView) Items() []ListItem { return l.items }

// Len returns the number of items.
func (l *ListView) Len() int { return len(l.items) }

// Selected returns the selected index, or -1 when empty.
func (l *ListView) Selected() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.selected
}

// Select moves the selection to index, clamped to the valid range.
func (l *ListView) Select(index int) {
	if len(l.items) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(l.items) {
		index = len(l.items) - 1
	}
	if index == l.selected {
		return
	}
	l.selected = index
	l.ensureVisible()
	if l.listener != nil {
		l.listener.SelectionChanged(l.selected)
	}
}

// ToggleMark flips the mark on the selected item.
func (l *ListView) ToggleMark() {
	if len(l.items) == 0 {
		return
	}
	l.items[l.selected].Marked = !l.items[l.selected].Marked
}

// Marked returns the indices of all marked items.
func (l *ListView) Marked() []int {
	var out []int
	for i, item := range l.items {
		if item.Marked {
			out = append(out, i)
		}
	}
	return out
}

func (l *ListView) viewHeight() int { return l.bounds.H }

func (l *ListView) ensureVisible() {
	vh := l.viewHeight()
	if vh <= 0 {
		return
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+vh {
		l.offset = l.selected - vh + 1
	}
}

// HandleInput implements navigation while focused. Unrecognized events are
// left for the ancestors.
func (l *ListView) HandleInput(ev KeyEvent) bool {
	if len(l.items) == 0 {
		return false
	}
	switch {
	case ev.IsKey(KeyUp):
		l.Select(l.selected - 1)
	case ev.IsKey(KeyDown):
		l.Select(l.selected + 1)
	case ev.IsKey(KeyPageUp):
		l.Select(l.selected - max(1, l.viewHeight()))
	case ev.IsKey(KeyPageDown):
		l.Select(l.selected + max(1, l.viewHeight()))
	case ev.IsKey(KeyHome):
		l.Select(0)
	case ev.IsKey(KeyEnd):
		l.Select(len(l.items) - 1)
	case ev.IsKey(KeyEnter):
		if l.listener != nil {
			l.listener.ItemActivated(l.selected)
		}
	default:
		return false
	}
	return true
}

// Render implements Component.
func (l *ListView) Render(ctx *RenderContext) {
	b := l.bounds
	if b.Empty() {
		return
	}
	l.ensureVisible()

	contentW := b.W
	if len(l.items) > b.H {
		contentW-- // scrollbar column
	}

	for row := 0; row < b.H; row++ {
		idx := l.offset + row
		if idx >= len(l.items) {
			break
		}
		item := l.items[idx]

		style := ctx.Theme.Normal
		if idx == l.selected && l.focused {
			style = ctx.Theme.Selected
		} else if item.Marked {
			style = ctx.Theme.Accent
		}

		y := b.Y + row
		if idx == l.selected && l.focused {
			ctx.Buf.FillRect(b.X, y, contentW, 1, ' ', style)
		}
		prefix := "  "
		if item.Marked {
			prefix = "* "
		}
		x := b.X
		x += ctx.Buf.WriteStringClipped(x, y, prefix, style, contentW)
		ctx.Buf.WriteStringClipped(x, y, item.Text, style, contentW-(x-b.X))
		if item.Secondary != "" {
			sw := runewidth.StringWidth(item.Secondary)
			if sw < contentW-(x-b.X)-1 {
				ctx.Buf.WriteStringClipped(b.X+contentW-sw, y, item.Secondary, style, sw)
			}
		}
	}

	DrawScrollbar(ctx, b, l.offset, b.H, len(l.items))
}
