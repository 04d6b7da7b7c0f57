package glint

import (
	"strings"
	"testing"
)

func TestOutputViewAppendLines(t *testing.T) {
	v := NewOutputView(0)
	v.Append("one\ntwo\npartial")

	got := v.Lines()
	want := []string{"one", "two", "partial"}
	if len(got) != len(want) {
		t.Fatalf("lines = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if v.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3 counting the tail", v.LineCount())
	}

	// the tail keeps accumulating across chunks
	v.Append(" line\n")
	if got := v.Lines(); got[2] != "partial line" {
		t.Errorf("joined tail = %q", got[2])
	}
}

func TestOutputViewCarriageReturnOverwrites(t *testing.T) {
	v := NewOutputView(0)
	v.Append("progress 10%\rprogress 25%")

	got := v.Lines()
	if len(got) != 1 || got[0] != "progress 25%" {
		t.Errorf("lines = %v, want the overwritten progress line", got)
	}

	// a shorter rewrite leaves the old tail in place, like a real terminal
	v.Append("\rdone")
	if got := v.Lines(); got[0] != "doneress 25%" {
		t.Errorf("partial overwrite = %q", got[0])
	}

	v.Append("\n")
	if len(v.Lines()) != 1 {
		t.Errorf("commit after CR produced %v", v.Lines())
	}
}

func TestOutputViewCarriageReturnAcrossChunks(t *testing.T) {
	v := NewOutputView(0)
	v.Append("abc")
	v.Append("\r")
	v.Append("XY")

	if got := v.Lines(); len(got) != 1 || got[0] != "XYc" {
		t.Errorf("lines = %v, want [XYc]", got)
	}
}

func TestOutputViewMaxLines(t *testing.T) {
	v := NewOutputView(3)
	for i := 0; i < 6; i++ {
		v.Append(strings.Repeat("x", i+1) + "\n")
	}

	got := v.Lines()
	if len(got) != 3 {
		t.Fatalf("retained %d lines, want 3", len(got))
	}
	if got[0] != "xxxx" {
		t.Errorf("oldest retained = %q, want the trailing window", got[0])
	}
}

func TestOutputViewScrolling(t *testing.T) {
	v := NewOutputView(0)
	for i := 0; i < 10; i++ {
		v.Append("line\n")
	}
	layoutChild(v, Rect{W: 20, H: 4})

	if !v.Following() {
		t.Fatal("fresh view not following")
	}

	v.HandleInput(keyEvent(t, "up"))
	if v.Following() {
		t.Error("still following after scrolling up")
	}
	if v.offset != 5 {
		t.Errorf("offset = %d, want one above the tail window", v.offset)
	}

	v.HandleInput(keyEvent(t, "home"))
	if v.offset != 0 {
		t.Errorf("home offset = %d", v.offset)
	}
	v.HandleInput(keyEvent(t, "up"))
	if v.offset != 0 {
		t.Errorf("scrolled past the top: %d", v.offset)
	}

	v.HandleInput(keyEvent(t, "end"))
	if !v.Following() {
		t.Error("end did not re-enter follow mode")
	}

	// paging down to the bottom also resumes following
	v.ScrollTo(0)
	v.HandleInput(keyEvent(t, "pgdn"))
	v.HandleInput(keyEvent(t, "pgdn"))
	if !v.Following() {
		t.Error("scrolling to the bottom did not resume following")
	}
}

func TestOutputViewClear(t *testing.T) {
	v := NewOutputView(0)
	v.Append("a\nb\nc")
	layoutChild(v, Rect{W: 20, H: 2})
	v.ScrollTo(0)

	v.Clear()
	if v.LineCount() != 0 || !v.Following() {
		t.Errorf("after Clear: count=%d following=%v", v.LineCount(), v.Following())
	}
}
