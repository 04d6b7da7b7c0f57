package glint

import "testing"

type overlayRecorder struct {
	results []OverlayResult
}

func (o *overlayRecorder) OverlayClosed(res OverlayResult) { o.results = append(o.results, res) }

func (o *overlayRecorder) last(t *testing.T) OverlayResult {
	t.Helper()
	if len(o.results) == 0 {
		t.Fatal("no overlay result reported")
	}
	return o.results[len(o.results)-1]
}

func TestModalRequiresButtons(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("buttonless modal did not panic")
		}
	}()
	NewModal("title", "message")
}

func TestModalNavigationClamps(t *testing.T) {
	m := NewModal("Delete", "Really?", "Delete", "All", "Cancel")

	m.HandleInput(keyEvent(t, "left"))
	if m.Selected() != 0 {
		t.Errorf("left at start moved to %d", m.Selected())
	}

	m.HandleInput(keyEvent(t, "right"))
	m.HandleInput(keyEvent(t, "tab"))
	m.HandleInput(keyEvent(t, "right"))
	if m.Selected() != 2 {
		t.Errorf("right at end moved to %d, want clamp at 2", m.Selected())
	}

	m.HandleInput(keyEvent(t, "shift+tab"))
	if m.Selected() != 1 {
		t.Errorf("shift+tab moved to %d, want 1", m.Selected())
	}
}

func TestModalEnterActivatesSelection(t *testing.T) {
	m := NewModal("Copy", "", "Copy", "Cancel")
	rec := &overlayRecorder{}
	m.SetListener(rec)

	m.HandleInput(keyEvent(t, "enter"))
	res := rec.last(t)
	if res.Index != 0 || res.Label != "Copy" || res.Canceled {
		t.Errorf("result = %+v", res)
	}
}

func TestModalEscapeActivatesLastButton(t *testing.T) {
	m := NewModal("Quit", "Leave?", "Quit", "Cancel")
	rec := &overlayRecorder{}
	m.SetListener(rec)

	m.HandleInput(keyEvent(t, "esc"))
	res := rec.last(t)
	if res.Index != 1 || res.Label != "Cancel" || !res.Canceled {
		t.Errorf("escape result = %+v", res)
	}
}

func TestModalDigitShortcuts(t *testing.T) {
	m := NewModal("Move", "", "Move", "Skip", "Cancel")
	rec := &overlayRecorder{}
	m.SetListener(rec)

	m.HandleInput(keyEvent(t, "2"))
	res := rec.last(t)
	if res.Index != 1 || res.Label != "Skip" {
		t.Errorf("digit result = %+v", res)
	}

	// out of range digit does nothing
	m.HandleInput(keyEvent(t, "9"))
	if len(rec.results) != 1 {
		t.Errorf("digit 9 produced a result on a 3-button modal")
	}
}

func TestModalConsumesEverything(t *testing.T) {
	m := NewModal("x", "", "OK")
	for _, tok := range []string{"q", "f5", "ctrl+c", "up"} {
		if !m.HandleInput(keyEvent(t, tok)) {
			t.Errorf("token %q not consumed by the open modal", tok)
		}
	}
}

func TestModalPlaceOverlayCenters(t *testing.T) {
	m := NewModal("Title", "line one\nline two", "OK", "Cancel")
	screen := Rect{W: 80, H: 24}
	m.PlaceOverlay(screen)

	b := m.Bounds()
	if b.W <= 0 || b.H <= 0 {
		t.Fatalf("bounds = %+v", b)
	}
	if b.X != (80-b.W)/2 || b.Y != (24-b.H)/2 {
		t.Errorf("not centered: %+v", b)
	}

	// small screens clamp the dialog
	m.PlaceOverlay(Rect{W: 10, H: 3})
	b = m.Bounds()
	if b.W > 10 || b.H > 3 {
		t.Errorf("overflows the screen: %+v", b)
	}
}
