package glint

import "testing"

func TestVStackTrackHeights(t *testing.T) {
	top := newProbe(1, 1)
	middle := newProbe(1, 1)
	bottom := newProbe(1, 1)

	s := VStack().
		AddFixed(top, 3).
		Add(middle). // nil spec, one fraction
		AddFixed(bottom, 1)

	layoutChild(s, Rect{X: 0, Y: 0, W: 40, H: 20})

	if got := top.Bounds(); got != (Rect{X: 0, Y: 0, W: 40, H: 3}) {
		t.Errorf("top = %+v", got)
	}
	if got := middle.Bounds(); got != (Rect{X: 0, Y: 3, W: 40, H: 16}) {
		t.Errorf("middle = %+v", got)
	}
	if got := bottom.Bounds(); got != (Rect{X: 0, Y: 19, W: 40, H: 1}) {
		t.Errorf("bottom = %+v", got)
	}
}

func TestHStackWithGap(t *testing.T) {
	a := newProbe(1, 1)
	b := newProbe(1, 1)

	s := HStack().Gap(2).
		AddFixed(a, 10).
		Add(b)

	layoutChild(s, Rect{X: 5, Y: 2, W: 32, H: 4})

	// usable span = 32 - 2 = 30; fixed 10, fraction gets 20
	if got := a.Bounds(); got != (Rect{X: 5, Y: 2, W: 10, H: 4}) {
		t.Errorf("a = %+v", got)
	}
	if got := b.Bounds(); got != (Rect{X: 17, Y: 2, W: 20, H: 4}) {
		t.Errorf("b = %+v", got)
	}
}

func TestStackPercentAndFraction(t *testing.T) {
	a := newProbe(1, 1)
	b := newProbe(1, 1)
	c := newProbe(1, 1)

	pct := Percent(50)
	s := VStack().
		AddSized(a, &pct).
		Add(b).
		Add(c)

	layoutChild(s, Rect{W: 10, H: 100})

	if a.Bounds().H != 50 {
		t.Errorf("percent track H = %d, want 50", a.Bounds().H)
	}
	if b.Bounds().H != 25 || c.Bounds().H != 25 {
		t.Errorf("fraction tracks = %d,%d, want 25,25", b.Bounds().H, c.Bounds().H)
	}
}

// An empty track still advances the cursor; its space is never reclaimed.
func TestStackZeroTrackKeepsPosition(t *testing.T) {
	a := newProbe(1, 1)
	b := newProbe(1, 1)
	c := newProbe(1, 1)

	s := VStack().
		AddFixed(a, 4).
		AddFixed(b, 0).
		AddFixed(c, 4)

	layoutChild(s, Rect{W: 10, H: 20})

	if b.Bounds().H != 0 {
		t.Errorf("zero track H = %d", b.Bounds().H)
	}
	if c.Bounds().Y != 4 {
		t.Errorf("c.Y = %d, want 4 (directly after the empty track)", c.Bounds().Y)
	}
}

// Layout re-resolves against the allocated span: handing the stack less
// than it measured shrinks the fraction tracks, not the fixed ones.
func TestStackReresolvesOnSmallerSpan(t *testing.T) {
	fixed := newProbe(1, 1)
	flex := newProbe(1, 1)

	s := VStack().
		AddFixed(fixed, 5).
		Add(flex)

	measureChild(s, 40, 100)
	layoutChild(s, Rect{W: 40, H: 12})

	if fixed.Bounds().H != 5 {
		t.Errorf("fixed H = %d, want 5", fixed.Bounds().H)
	}
	if flex.Bounds().H != 7 {
		t.Errorf("flex H = %d, want 7", flex.Bounds().H)
	}
}

// The cross axis reports the widest measured child, not the whole offer,
// so a stack inside a shrink-wrapping parent takes only the space its
// children need.
func TestStackMeasureCrossAxisShrinks(t *testing.T) {
	s := VStack().AddFixed(newProbe(5, 1), 1)

	w, h := s.Measure(40, 10)
	if w != 5 {
		t.Errorf("cross = %d, want 5 (widest child)", w)
	}
	if h != 10 {
		t.Errorf("main = %d, want the full offer 10", h)
	}

	hs := HStack().
		AddFixed(newProbe(1, 3), 4).
		AddFixed(newProbe(1, 7), 4)

	w, h = hs.Measure(40, 20)
	if h != 7 {
		t.Errorf("cross = %d, want 7 (tallest child)", h)
	}
	if w != 40 {
		t.Errorf("main = %d, want the full offer 40", w)
	}
}

// A child asking for more than the offer is clamped to it.
func TestStackMeasureCrossAxisClamped(t *testing.T) {
	s := VStack().AddFixed(newProbe(50, 1), 1)

	if w, _ := s.Measure(40, 10); w != 40 {
		t.Errorf("cross = %d, want clamped to 40", w)
	}
}

func TestStackMinSize(t *testing.T) {
	s := VStack().Gap(1).
		Add(newProbe(8, 2)).
		Add(newProbe(5, 3))

	w, h := s.MinSize()
	if w != 8 {
		t.Errorf("min width = %d, want 8 (widest child)", w)
	}
	if h != 6 {
		t.Errorf("min height = %d, want 6 (2+3 plus one gap)", h)
	}
}
