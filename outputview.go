package glint

// OutputView is a scrollback pane for streamed process output. Chunks are
// appended as they arrive, in whatever framing the producer used: newlines
// commit logical lines, and a carriage return moves the write position
// back to the start of the current line so progress-style output
// overwrites in place instead of accumulating.
type OutputView struct {
	Base
	lines    []string
	current  []rune
	cursor   int // write position within current
	offset   int // first visible line; -1 means follow the tail
	maxLines int
}

// NewOutputView creates an empty view retaining at most maxLines committed
// lines; zero or negative means unlimited.
func NewOutputView(maxLines int) *OutputView {
	v := &OutputView{offset: -1, maxLines: maxLines}
	v.SetMinSize(10, 3)
	return v
}

// Append feeds a chunk of output into the view. Chunks may split lines and
// escape-free control characters arbitrarily; framing state carries over
// between calls.
func (v *OutputView) Append(chunk string) {
	for _, r := range chunk {
		switch r {
		case '\n':
			v.commitLine()
		case '\r':
			v.cursor = 0
		default:
			if v.cursor < len(v.current) {
				v.current[v.cursor] = r
			} else {
				v.current = append(v.current, r)
			}
			v.cursor++
		}
	}
}

func (v *OutputView) commitLine() {
	v.lines = append(v.lines, string(v.current))
	v.current = v.current[:0]
	v.cursor = 0
	if v.maxLines > 0 && len(v.lines) > v.maxLines {
		drop := len(v.lines) - v.maxLines
		v.lines = v.lines[drop:]
		if v.offset >= 0 {
			v.offset -= drop
			if v.offset < 0 {
				v.offset = 0
			}
		}
	}
}

// Clear discards all content and returns to follow mode.
func (v *OutputView) Clear() {
	v.lines = nil
	v.current = v.current[:0]
	v.cursor = 0
	v.offset = -1
}

// Lines returns the committed logical lines plus the uncommitted tail, if
// any.
func (v *OutputView) Lines() []string {
	if len(v.current) == 0 {
		return v.lines
	}
	out := make([]string, len(v.lines), len(v.lines)+1)
	copy(out, v.lines)
	return append(out, string(v.current))
}

// LineCount returns the number of display lines, counting the uncommitted
// tail.
func (v *OutputView) LineCount() int {
	n := len(v.lines)
	if len(v.current) > 0 {
		n++
	}
	return n
}

// Following reports whether the view tracks the newest output.
func (v *OutputView) Following() bool { return v.offset < 0 }

// Follow returns the view to tail-following mode.
func (v *OutputView) Follow() { v.offset = -1 }

func (v *OutputView) maxOffset() int {
	m := v.LineCount() - v.bounds.H
	if m < 0 {
		m = 0
	}
	return m
}

// ScrollTo pins the first visible line, leaving follow mode. Values clamp
// to the content range; scrolling to the bottom re-enters follow mode.
func (v *OutputView) ScrollTo(offset int) {
	max := v.maxOffset()
	if offset >= max {
		v.offset = -1
		return
	}
	if offset < 0 {
		offset = 0
	}
	v.offset = offset
}

func (v *OutputView) scrollBy(delta int) {
	cur := v.offset
	if cur < 0 {
		cur = v.maxOffset()
	}
	v.ScrollTo(cur + delta)
}

// HandleInput implements scrolling.
func (v *OutputView) HandleInput(ev KeyEvent) bool {
	switch {
	case ev.IsKey(KeyUp):
		v.scrollBy(-1)
	case ev.IsKey(KeyDown):
		v.scrollBy(1)
	case ev.IsKey(KeyPageUp):
		v.scrollBy(-v.bounds.H)
	case ev.IsKey(KeyPageDown):
		v.scrollBy(v.bounds.H)
	case ev.IsKey(KeyHome):
		v.ScrollTo(0)
	case ev.IsKey(KeyEnd):
		v.Follow()
	default:
		return false
	}
	return true
}

// Render implements Component.
func (v *OutputView) Render(ctx *RenderContext) {
	b := v.bounds
	if b.Empty() {
		return
	}

	all := v.Lines()
	first := v.offset
	if first < 0 {
		first = v.maxOffset()
	}

	textW := b.W
	showBar := len(all) > b.H
	if showBar {
		textW--
	}

	for row := 0; row < b.H; row++ {
		idx := first + row
		if idx >= len(all) {
			break
		}
		ctx.Buf.WriteStringClipped(b.X, b.Y+row, all[idx], ctx.Theme.Normal, textW)
	}

	if showBar {
		DrawScrollbar(ctx, b, first, b.H, len(all))
	}
}
