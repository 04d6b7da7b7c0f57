package glint

import "testing"

type lifecycleScreen struct {
	ScreenBase
	log  *[]string
	name string
}

func newLifecycleScreen(name string, log *[]string) *lifecycleScreen {
	s := &lifecycleScreen{log: log, name: name}
	s.ScreenBase = NewScreenBase(name, NewSpacer())
	return s
}

func (s *lifecycleScreen) OnActivate() {
	s.ScreenBase.OnActivate()
	*s.log = append(*s.log, s.name+":on")
}

func (s *lifecycleScreen) OnDeactivate() {
	s.ScreenBase.OnDeactivate()
	*s.log = append(*s.log, s.name+":off")
}

func TestScreenManagerPush(t *testing.T) {
	var log []string
	m := NewScreenManager()
	a := newLifecycleScreen("a", &log)
	b := newLifecycleScreen("b", &log)

	m.Push(a)
	m.Push(b)

	if m.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.Depth())
	}
	if m.Top() != Screen(b) {
		t.Error("Top is not the pushed screen")
	}
	if a.Active() || !b.Active() {
		t.Errorf("active flags: a=%v b=%v", a.Active(), b.Active())
	}

	want := []string{"a:on", "a:off", "b:on"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestScreenManagerPopReactivates(t *testing.T) {
	var log []string
	m := NewScreenManager()
	a := newLifecycleScreen("a", &log)
	b := newLifecycleScreen("b", &log)
	m.Push(a)
	m.Push(b)
	log = log[:0]

	popped, remaining := m.Pop()
	if popped != Screen(b) || !remaining {
		t.Errorf("Pop = %v,%v", popped, remaining)
	}
	if !a.Active() {
		t.Error("exposed screen not reactivated")
	}
	if len(log) != 2 || log[0] != "b:off" || log[1] != "a:on" {
		t.Errorf("log = %v, want [b:off a:on]", log)
	}
}

func TestScreenManagerPopLastSignalsExit(t *testing.T) {
	var log []string
	m := NewScreenManager()
	a := newLifecycleScreen("a", &log)
	m.Push(a)

	popped, remaining := m.Pop()
	if popped != Screen(a) {
		t.Error("wrong screen popped")
	}
	if remaining {
		t.Error("popping the last screen must report remaining=false")
	}
	if m.Depth() != 0 {
		t.Errorf("Depth = %d after final pop", m.Depth())
	}

	if popped, remaining := m.Pop(); popped != nil || remaining {
		t.Error("pop on an empty stack must be a nil no-op")
	}
}

func TestScreenBaseOverlaySlot(t *testing.T) {
	s := NewScreenBase("x", NewSpacer())
	if s.Overlay() != nil {
		t.Error("fresh screen has an overlay")
	}

	m := NewModal("t", "", "OK")
	s.SetOverlay(m)
	if s.Overlay() != Overlay(m) {
		t.Error("overlay not installed")
	}
	s.CloseOverlay()
	if s.Overlay() != nil {
		t.Error("overlay not cleared")
	}
}

func TestScreenBaseDelegatesInput(t *testing.T) {
	p := newProbe(1, 1)
	p.handled = true
	s := NewScreenBase("x", p)

	if !s.HandleInput(keyEvent(t, "a")) {
		t.Error("event not delegated to the root")
	}

	s.SetRoot(nil)
	if s.HandleInput(keyEvent(t, "a")) {
		t.Error("rootless screen consumed input")
	}
}
