package glint

import (
	"strings"
	"testing"
)

func TestGridColumnLayout(t *testing.T) {
	g, err := GridColumns("10", "30%", "*")
	if err != nil {
		t.Fatalf("GridColumns: %v", err)
	}
	a, b, c := newProbe(1, 1), newProbe(1, 1), newProbe(1, 1)
	g.Place(0, a).Place(1, b).Place(2, c)

	layoutChild(g, Rect{W: 100, H: 10})

	if a.Bounds().W != 10 {
		t.Errorf("fixed column W = %d, want 10", a.Bounds().W)
	}
	if b.Bounds().W != 30 {
		t.Errorf("percent column W = %d, want 30", b.Bounds().W)
	}
	if c.Bounds().W != 60 {
		t.Errorf("fraction column W = %d, want 60", c.Bounds().W)
	}
	if c.Bounds().X != 40 {
		t.Errorf("fraction column X = %d, want 40", c.Bounds().X)
	}
}

func TestGridEmptyTrackAdvancesCursor(t *testing.T) {
	g := NewGrid(Horizontal, Cells(10), Cells(20), Cells(5))
	c := newProbe(1, 1)
	g.Place(2, c)

	layoutChild(g, Rect{W: 50, H: 3})

	if c.Bounds().X != 30 {
		t.Errorf("child X = %d, want 30 (after two empty tracks)", c.Bounds().X)
	}
}

func TestGridMeasureCrossAxisShrinks(t *testing.T) {
	g := NewGrid(Horizontal, Cells(10), Cells(10))
	g.Place(0, newProbe(1, 2)).Place(1, newProbe(1, 6))

	w, h := g.Measure(40, 20)
	if h != 6 {
		t.Errorf("cross = %d, want 6 (tallest occupant)", h)
	}
	if w != 40 {
		t.Errorf("main = %d, want the full offer 40", w)
	}

	rows := NewGrid(Vertical, Fr(1))
	rows.Place(0, newProbe(12, 1))
	if w, _ := rows.Measure(8, 10); w != 8 {
		t.Errorf("cross = %d, want clamped to 8", w)
	}
}

func TestGridPlaceOutOfRangePanics(t *testing.T) {
	g := NewGrid(Vertical, Fr(1), Fr(1))

	for _, track := range []int{-1, 2, 99} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Place(%d) did not panic", track)
					return
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Errorf("Place(%d) panic = %v, want out-of-range message", track, r)
				}
			}()
			g.Place(track, newProbe(1, 1))
		}()
	}
}

func TestGridPlaceReplacesOccupant(t *testing.T) {
	g := NewGrid(Vertical, Fr(1))
	first := newProbe(1, 1)
	second := newProbe(1, 1)

	g.Place(0, first)
	g.Place(0, second)

	if g.At(0) != Component(second) {
		t.Error("slot not replaced")
	}
	if len(g.Children()) != 1 {
		t.Errorf("children = %d, want 1 after replacement", len(g.Children()))
	}
}

func TestGridRowsBadTokenRejected(t *testing.T) {
	if _, err := GridRows("1fr", "nope"); err == nil {
		t.Error("bad token accepted")
	}
}
