package glint

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// Spinner is an animation widget for long-running work. Frames advance by
// comparing elapsed wall-clock time against the interval on every tick;
// there is no timer callback.
type Spinner struct {
	Base
	frames   []string
	interval time.Duration
	frame    int
	elapsed  time.Duration
	running  bool
	label    string
}

// SpinnerFrames is the default braille animation.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a spinner with the default frames at 100ms.
func NewSpinner() *Spinner {
	s := &Spinner{
		frames:   SpinnerFrames,
		interval: 100 * time.Millisecond,
	}
	s.SetMinSize(2, 1)
	return s
}

// SetLabel sets the text rendered after the spinner glyph.
func (s *Spinner) SetLabel(label string) { s.label = label }

// Start begins the animation from the first frame.
func (s *Spinner) Start() {
	s.running = true
	s.frame = 0
	s.elapsed = 0
}

// Stop halts the animation.
func (s *Spinner) Stop() { s.running = false }

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool { return s.running }

// Update advances the frame when enough wall-clock time has accumulated.
func (s *Spinner) Update(dt time.Duration) {
	if !s.running {
		return
	}
	s.elapsed += dt
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		s.frame = (s.frame + 1) % len(s.frames)
	}
}

// Render implements Component.
func (s *Spinner) Render(ctx *RenderContext) {
	b := s.bounds
	if b.Empty() {
		return
	}
	if !s.running {
		if s.label != "" {
			ctx.Buf.WriteStringClipped(b.X, b.Y, s.label, ctx.Theme.Muted, b.W)
		}
		return
	}
	glyph := s.frames[s.frame]
	ctx.Buf.WriteStringClipped(b.X, b.Y, glyph, ctx.Theme.Accent, b.W)
	if s.label != "" {
		x := b.X + runewidth.StringWidth(glyph) + 1
		ctx.Buf.WriteStringClipped(x, b.Y, s.label, ctx.Theme.Normal, b.W-(x-b.X))
	}
}

// DrawScrollbar renders a vertical scrollbar into the rightmost column of
// the rectangle, reflecting a window of viewSize items at offset into a
// total of contentSize. Helper shared by ListView, Table and OutputView.
func DrawScrollbar(ctx *RenderContext, r Rect, offset, viewSize, contentSize int) {
	if contentSize <= viewSize || r.H <= 0 {
		return
	}
	x := r.X + r.W - 1

	thumbH := r.H * viewSize / contentSize
	if thumbH < 1 {
		thumbH = 1
	}
	maxOffset := contentSize - viewSize
	thumbY := 0
	if maxOffset > 0 {
		thumbY = (r.H - thumbH) * offset / maxOffset
	}

	for y := 0; y < r.H; y++ {
		ch := '│'
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		}
		ctx.Buf.Set(x, r.Y+y, NewCell(ch, ctx.Theme.Scrollbar))
	}
}

// StatusBar is a single-line bar showing left- and right-aligned segments
// in the status style, conventionally the bottom row of a screen.
type StatusBar struct {
	Base
	left  string
	right string
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{}
	s.SetMinSize(0, 1)
	return s
}

// SetLeft sets the left-aligned segment.
func (s *StatusBar) SetLeft(text string) { s.left = text }

// SetRight sets the right-aligned segment.
func (s *StatusBar) SetRight(text string) { s.right = text }

// Render implements Component.
func (s *StatusBar) Render(ctx *RenderContext) {
	b := s.bounds
	if b.Empty() {
		return
	}
	style := ctx.Theme.StatusBar
	ctx.Buf.FillRect(b.X, b.Y, b.W, 1, ' ', style)
	ctx.Buf.WriteStringClipped(b.X+1, b.Y, s.left, style, b.W-2)
	rw := runewidth.StringWidth(s.right)
	if rw < b.W-2 {
		ctx.Buf.WriteStringClipped(b.X+b.W-1-rw, b.Y, s.right, style, rw)
	}
}

// Panel wraps a single child in a border with an optional title. The
// border style follows the child's focus: active when any descendant is
// focused, inactive otherwise.
type Panel struct {
	BaseContainer
	title  string
	border BorderStyle
}

// NewPanel creates a bordered panel around the child.
func NewPanel(title string, child Component) *Panel {
	p := &Panel{title: title, border: BorderSingle}
	if child != nil {
		p.AddChild(child)
	}
	return p
}

// SetTitle replaces the panel title.
func (p *Panel) SetTitle(title string) { p.title = title }

// Border sets the border characters. Returns self for chaining.
func (p *Panel) Border(b BorderStyle) *Panel {
	p.border = b
	return p
}

// child returns the wrapped component, or nil.
func (p *Panel) child() Component {
	if len(p.children) == 0 {
		return nil
	}
	return p.children[0]
}

// Measure implements Layouter.
func (p *Panel) Measure(availW, availH int) (int, int) {
	if c := p.child(); c != nil {
		measureChild(c, availW-2, availH-2)
	}
	return availW, availH
}

// Layout implements Layouter: the child gets everything inside the border.
func (p *Panel) Layout(width, height int) {
	if c := p.child(); c != nil {
		layoutChild(c, Rect{X: p.bounds.X, Y: p.bounds.Y, W: width, H: height}.Inset(1))
	}
}

// MinSize is the child minimum plus the border.
func (p *Panel) MinSize() (int, int) {
	if c := p.child(); c != nil {
		w, h := c.MinSize()
		return w + 2, h + 2
	}
	return 2, 2
}

// Render implements Component.
func (p *Panel) Render(ctx *RenderContext) {
	b := p.bounds
	if b.Empty() {
		return
	}
	style := ctx.Theme.BorderInactive
	if len(FocusLeaves(p)) > 0 {
		style = ctx.Theme.BorderActive
	}
	ctx.Buf.DrawBox(b.X, b.Y, b.W, b.H, p.border, style)
	if p.title != "" && b.W > 4 {
		title := fmt.Sprintf(" %s ", p.title)
		ctx.Buf.WriteStringClipped(b.X+2, b.Y, title, style, b.W-4)
	}
	if c := p.child(); c != nil {
		c.Render(ctx)
	}
}
