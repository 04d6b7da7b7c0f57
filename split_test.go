package glint

import "testing"

func TestSplitRatioValidation(t *testing.T) {
	for _, ratio := range []int{0, -10, 100, 150} {
		if _, err := NewSplit(Horizontal, ratio); err == nil {
			t.Errorf("NewSplit(%d) accepted, want error", ratio)
		}
	}
	if _, err := NewSplit(Horizontal, 50); err != nil {
		t.Errorf("NewSplit(50): %v", err)
	}
}

func TestSplitDividesByPercent(t *testing.T) {
	s := MustSplit(Horizontal, 30)
	a, b := newProbe(1, 1), newProbe(1, 1)
	s.SetFirst(a)
	s.SetSecond(b)

	layoutChild(s, Rect{W: 100, H: 10})

	if a.Bounds().W != 30 {
		t.Errorf("first W = %d, want 30", a.Bounds().W)
	}
	if b.Bounds().W != 70 {
		t.Errorf("second W = %d, want 70", b.Bounds().W)
	}

	if s.First() != Component(a) || s.Second() != Component(b) {
		t.Error("accessors do not return the placed children")
	}
}

func TestSplitVertical(t *testing.T) {
	s := MustSplit(Vertical, 50)
	top, bottom := newProbe(1, 1), newProbe(1, 1)
	s.SetFirst(top)
	s.SetSecond(bottom)

	layoutChild(s, Rect{W: 20, H: 11})

	// both percentages floor against the full span
	if top.Bounds().H != 5 || bottom.Bounds().H != 5 {
		t.Errorf("heights = %d,%d, want 5,5", top.Bounds().H, bottom.Bounds().H)
	}
	if bottom.Bounds().Y != 5 {
		t.Errorf("bottom Y = %d, want 5", bottom.Bounds().Y)
	}
}

func TestMustSplitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSplit(0) did not panic")
		}
	}()
	MustSplit(Horizontal, 0)
}
