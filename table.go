package glint

import "github.com/mattn/go-runewidth"

// TableColumn declares one column: a header plus a size unit that shares
// the table width through the same resolution the containers use.
type TableColumn struct {
	Title string
	Width Size
}

// Table is a scrollable grid of rows under a header line. Column widths
// resolve per frame against the assigned bounds, so fraction columns
// follow terminal resizes.
type Table struct {
	Base
	columns  []TableColumn
	rows     [][]string
	selected int
	offset   int
	listener SelectionListener
}

// NewTable creates a table with the given columns.
func NewTable(columns ...TableColumn) *Table {
	t := &Table{columns: columns}
	t.SetMinSize(len(columns)*2, 2)
	return t
}

// SetListener registers the selection listener.
func (t *Table) SetListener(listener SelectionListener) { t.listener = listener }

// SetRows replaces the rows, clamping the selection.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	if t.selected >= len(rows) {
		t.selected = len(rows) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
}

// Rows returns the current rows.
func (t *Table) Rows() [][]string { return t.rows }

// Selected returns the selected row index, or -1 when empty.
func (t *Table) Selected() int {
	if len(t.rows) == 0 {
		return -1
	}
	return t.selected
}

// Select moves the selection, clamped.
func (t *Table) Select(index int) {
	if len(t.rows) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(t.rows) {
		index = len(t.rows) - 1
	}
	if index == t.selected {
		return
	}
	t.selected = index
	t.ensureVisible()
	if t.listener != nil {
		t.listener.SelectionChanged(t.selected)
	}
}

func (t *Table) bodyHeight() int { return t.bounds.H - 1 } // minus header

func (t *Table) ensureVisible() {
	vh := t.bodyHeight()
	if vh <= 0 {
		return
	}
	if t.selected < t.offset {
		t.offset = t.selected
	}
	if t.selected >= t.offset+vh {
		t.offset = t.selected - vh + 1
	}
}

// columnWidths resolves column sizes for the given width, reserving one
// separator cell between columns.
func (t *Table) columnWidths(width int) []int {
	sizes := make([]Size, len(t.columns))
	for i, c := range t.columns {
		sizes[i] = c.Width
	}
	gaps := 0
	if len(t.columns) > 1 {
		gaps = len(t.columns) - 1
	}
	usable := width - gaps
	if usable < 0 {
		usable = 0
	}
	return ResolveSizes(sizes, usable)
}

// HandleInput implements navigation while focused.
func (t *Table) HandleInput(ev KeyEvent) bool {
	if len(t.rows) == 0 {
		return false
	}
	switch {
	case ev.IsKey(KeyUp):
		t.Select(t.selected - 1)
	case ev.IsKey(KeyDown):
		t.Select(t.selected + 1)
	case ev.IsKey(KeyPageUp):
		t.Select(t.selected - max(1, t.bodyHeight()))
	case ev.IsKey(KeyPageDown):
		t.Select(t.selected + max(1, t.bodyHeight()))
	case ev.IsKey(KeyHome):
		t.Select(0)
	case ev.IsKey(KeyEnd):
		t.Select(len(t.rows) - 1)
	case ev.IsKey(KeyEnter):
		if t.listener != nil {
			t.listener.ItemActivated(t.selected)
		}
	default:
		return false
	}
	return true
}

func (t *Table) renderLine(ctx *RenderContext, y int, cells []string, widths []int, style Style) {
	x := t.bounds.X
	for i, w := range widths {
		if w <= 0 {
			x += w + 1
			continue
		}
		content := ""
		if i < len(cells) {
			content = cells[i]
		}
		if runewidth.StringWidth(content) > w {
			content = runewidth.Truncate(content, w, "…")
		}
		ctx.Buf.WriteStringClipped(x, y, content, style, w)
		x += w + 1
	}
}

// Render implements Component.
func (t *Table) Render(ctx *RenderContext) {
	b := t.bounds
	if b.Empty() || b.H < 2 {
		return
	}
	t.ensureVisible()

	contentW := b.W
	if len(t.rows) > t.bodyHeight() {
		contentW--
	}
	widths := t.columnWidths(contentW)

	headers := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.Title
	}
	t.renderLine(ctx, b.Y, headers, widths, ctx.Theme.Accent)

	for row := 0; row < t.bodyHeight(); row++ {
		idx := t.offset + row
		if idx >= len(t.rows) {
			break
		}
		style := ctx.Theme.Normal
		if idx == t.selected && t.focused {
			style = ctx.Theme.Selected
			ctx.Buf.FillRect(b.X, b.Y+1+row, contentW, 1, ' ', style)
		}
		t.renderLine(ctx, b.Y+1+row, t.rows[idx], widths, style)
	}

	DrawScrollbar(ctx, Rect{X: b.X, Y: b.Y + 1, W: b.W, H: t.bodyHeight()},
		t.offset, t.bodyHeight(), len(t.rows))
}
