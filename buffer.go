package glint

import "github.com/mattn/go-runewidth"

// Buffer is a 2D grid of cells representing a drawable surface.
// It implements the terminal-driver drawing boundary: positioned writes,
// rectangle fills and box drawing, all in character-cell coordinates.
type Buffer struct {
	cells  []Cell
	width  int
	height int
	dirty  []bool // per-row write tracking for diff flush
}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
		dirty:  make([]bool, height),
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.height }

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int { return y*b.width + x }

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at the given coordinates. Out-of-bounds writes are
// dropped. Box-drawing runes merge with any box-drawing rune already in the
// cell so adjacent panel borders join into tees and crosses.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)
	existing := b.cells[idx]

	if merged, ok := mergeBorders(existing.Rune, c.Rune); ok {
		c.Rune = merged
	}

	b.cells[idx] = c
	b.dirty[y] = true
}

// Put stores the cell verbatim, without border merging. The display uses
// it to mirror flushed cells into the front buffer, which must record
// exactly what the terminal received; merging belongs to the draw path.
func (b *Buffer) Put(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
	b.dirty[y] = true
}

// SetRune sets just the rune at the given coordinates, preserving style.
func (b *Buffer) SetRune(x, y int, r rune) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)].Rune = r
	b.dirty[y] = true
}

// SetStyle sets just the style at the given coordinates, preserving rune.
func (b *Buffer) SetStyle(x, y int, s Style) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)].Style = s
	b.dirty[y] = true
}

// RowDirty reports whether the row has been written since the last
// ClearDirtyFlags.
func (b *Buffer) RowDirty(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	return b.dirty[y]
}

// ClearDirtyFlags resets per-row write tracking. Called by the display
// after a flush.
func (b *Buffer) ClearDirtyFlags() {
	for i := range b.dirty {
		b.dirty[i] = false
	}
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
	for i := range b.dirty {
		b.dirty[i] = true
	}
}

// Clear clears the buffer to empty cells with default style.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills a rectangular region with the given rune and style.
func (b *Buffer) FillRect(x, y, width, height int, r rune, style Style) {
	c := NewCell(r, style)
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// WriteString writes a string at the given coordinates with the given
// style. Wide runes occupy two cells; the second cell holds a zero rune
// placeholder. Returns the number of cells consumed.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, r := range s {
		if !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if w == 2 && b.InBounds(x+1, y) {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		written += w
	}
	return written
}

// WriteStringClipped writes a string, stopping once maxWidth cells are
// consumed. Returns the number of cells consumed.
func (b *Buffer) WriteStringClipped(x, y int, s string, style Style, maxWidth int) int {
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if written+w > maxWidth || !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		if w == 2 && b.InBounds(x+1, y) {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		written += w
	}
	return written
}

// HLine draws a horizontal line of the given rune.
func (b *Buffer) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, NewCell(r, style))
	}
}

// VLine draws a vertical line of the given rune.
func (b *Buffer) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, NewCell(r, style))
	}
}

// Blit copies a rectangular region from src into this buffer.
func (b *Buffer) Blit(src *Buffer, srcX, srcY, dstX, dstY, width, height int) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			if !src.InBounds(srcX+dx, srcY+dy) {
				continue
			}
			b.Set(dstX+dx, dstY+dy, src.Get(srcX+dx, srcY+dy))
		}
	}
}

// Box drawing characters for borders.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
	BoxDoubleHorizontal   = '═'
	BoxDoubleVertical     = '║'
	BoxDoubleTopLeft      = '╔'
	BoxDoubleTopRight     = '╗'
	BoxDoubleBottomLeft   = '╚'
	BoxDoubleBottomRight  = '╝'
)

// Box junction characters for merged borders
const (
	BoxTeeDown  = '┬' // ─ meets │ from below
	BoxTeeUp    = '┴' // ─ meets │ from above
	BoxTeeRight = '├' // │ meets ─ from right
	BoxTeeLeft  = '┤' // │ meets ─ from left
	BoxCross    = '┼' // all four directions
)

// borderEdges maps border runes to which edges they connect.
// Bits: 1=top, 2=right, 4=bottom, 8=left.
var borderEdges = map[rune]uint8{
	BoxHorizontal:  0b1010,
	BoxVertical:    0b0101,
	BoxTopLeft:     0b0110,
	BoxTopRight:    0b1100,
	BoxBottomLeft:  0b0011,
	BoxBottomRight: 0b1001,
	BoxTeeDown:     0b1110,
	BoxTeeUp:       0b1011,
	BoxTeeRight:    0b0111,
	BoxTeeLeft:     0b1101,
	BoxCross:       0b1111,

	BoxRoundedTopLeft:     0b0110,
	BoxRoundedTopRight:    0b1100,
	BoxRoundedBottomLeft:  0b0011,
	BoxRoundedBottomRight: 0b1001,
}

// edgesToBorder maps edge combinations back to border runes.
var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// mergeBorders combines two border characters into one.
// Returns the merged rune and true if both were border chars.
func mergeBorders(existing, new rune) (rune, bool) {
	existingEdges, ok1 := borderEdges[existing]
	newEdges, ok2 := borderEdges[new]
	if !ok1 || !ok2 {
		return new, false
	}
	if result, ok := edgesToBorder[existingEdges|newEdges]; ok {
		return result, true
	}
	return new, false
}

// BorderStyle defines the characters used for drawing borders.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxTopLeft,
		TopRight:    BoxTopRight,
		BottomLeft:  BoxBottomLeft,
		BottomRight: BoxBottomRight,
	}
	BorderRounded = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxRoundedTopLeft,
		TopRight:    BoxRoundedTopRight,
		BottomLeft:  BoxRoundedBottomLeft,
		BottomRight: BoxRoundedBottomRight,
	}
	BorderDouble = BorderStyle{
		Horizontal:  BoxDoubleHorizontal,
		Vertical:    BoxDoubleVertical,
		TopLeft:     BoxDoubleTopLeft,
		TopRight:    BoxDoubleTopRight,
		BottomLeft:  BoxDoubleBottomLeft,
		BottomRight: BoxDoubleBottomRight,
	}
)

// DrawBox draws a border around the given rectangle.
func (b *Buffer) DrawBox(x, y, width, height int, border BorderStyle, style Style) {
	if width < 2 || height < 2 {
		return
	}

	b.Set(x, y, NewCell(border.TopLeft, style))
	b.Set(x+width-1, y, NewCell(border.TopRight, style))
	b.Set(x, y+height-1, NewCell(border.BottomLeft, style))
	b.Set(x+width-1, y+height-1, NewCell(border.BottomRight, style))

	for i := 1; i < width-1; i++ {
		b.Set(x+i, y, NewCell(border.Horizontal, style))
		b.Set(x+i, y+height-1, NewCell(border.Horizontal, style))
	}
	for i := 1; i < height-1; i++ {
		b.Set(x, y+i, NewCell(border.Vertical, style))
		b.Set(x+width-1, y+i, NewCell(border.Vertical, style))
	}
}

// GetLine returns the content of a single line as a string with trailing
// spaces trimmed. Useful in tests.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var line []byte
	lastNonSpace := -1
	for x := 0; x < b.width; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			continue // wide-rune placeholder
		}
		line = append(line, string(r)...)
		if r != ' ' {
			lastNonSpace = len(line)
		}
	}
	if lastNonSpace >= 0 {
		return string(line[:lastNonSpace])
	}
	return ""
}

// String returns the buffer contents as text, rows separated by newlines.
// For testing and debugging.
func (b *Buffer) String() string {
	var result []byte
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				continue
			}
			result = append(result, string(r)...)
		}
		if y < b.height-1 {
			result = append(result, '\n')
		}
	}
	return string(result)
}

// Resize resizes the buffer to new dimensions.
// Existing content is preserved where it fits.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	newCells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range newCells {
		newCells[i] = empty
	}

	minWidth := min(width, b.width)
	minHeight := min(height, b.height)
	for y := 0; y < minHeight; y++ {
		for x := 0; x < minWidth; x++ {
			newCells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = newCells
	b.width = width
	b.height = height
	b.dirty = make([]bool, height)
	for i := range b.dirty {
		b.dirty[i] = true
	}
}
