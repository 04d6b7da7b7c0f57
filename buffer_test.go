package glint

import "testing"

func TestWriteString(t *testing.T) {
	b := NewBuffer(20, 3)
	n := b.WriteString(2, 1, "hello", DefaultStyle())
	if n != 5 {
		t.Errorf("cells consumed = %d, want 5", n)
	}
	if got := b.GetLine(1); got != "  hello" {
		t.Errorf("line = %q", got)
	}
}

func TestWriteStringWideRunes(t *testing.T) {
	b := NewBuffer(20, 1)
	n := b.WriteString(0, 0, "日本", DefaultStyle())
	if n != 4 {
		t.Errorf("cells consumed = %d, want 4", n)
	}
	if b.Get(0, 0).Rune != '日' {
		t.Errorf("cell 0 = %q", b.Get(0, 0).Rune)
	}
	if b.Get(1, 0).Rune != 0 {
		t.Error("cell 1 should hold the wide-rune placeholder")
	}
	if b.Get(2, 0).Rune != '本' {
		t.Errorf("cell 2 = %q", b.Get(2, 0).Rune)
	}
}

func TestWriteStringClipped(t *testing.T) {
	b := NewBuffer(20, 1)
	n := b.WriteStringClipped(0, 0, "abcdef", DefaultStyle(), 4)
	if n != 4 {
		t.Errorf("cells consumed = %d, want 4", n)
	}
	if got := b.GetLine(0); got != "abcd" {
		t.Errorf("line = %q", got)
	}

	// a wide rune that would straddle the clip edge is dropped whole
	b2 := NewBuffer(20, 1)
	n = b2.WriteStringClipped(0, 0, "a日", DefaultStyle(), 2)
	if n != 1 {
		t.Errorf("cells consumed = %d, want 1", n)
	}
}

func TestOutOfBoundsWritesDropped(t *testing.T) {
	b := NewBuffer(5, 2)
	b.Set(-1, 0, NewCell('x', DefaultStyle()))
	b.Set(5, 0, NewCell('x', DefaultStyle()))
	b.Set(0, 2, NewCell('x', DefaultStyle()))
	for y := 0; y < 2; y++ {
		if got := b.GetLine(y); got != "" {
			t.Errorf("row %d = %q, want empty", y, got)
		}
	}
}

func TestBorderMerging(t *testing.T) {
	b := NewBuffer(10, 5)
	style := DefaultStyle()

	// two boxes sharing an edge produce tees at the junctions
	b.DrawBox(0, 0, 5, 3, BorderSingle, style)
	b.DrawBox(4, 0, 5, 3, BorderSingle, style)

	if got := b.Get(4, 0).Rune; got != BoxTeeDown {
		t.Errorf("top junction = %q, want %q", got, BoxTeeDown)
	}
	if got := b.Get(4, 2).Rune; got != BoxTeeUp {
		t.Errorf("bottom junction = %q, want %q", got, BoxTeeUp)
	}
}

func TestBorderCross(t *testing.T) {
	b := NewBuffer(5, 5)
	style := DefaultStyle()
	b.HLine(0, 2, 5, BoxHorizontal, style)
	b.VLine(2, 0, 5, BoxVertical, style)

	if got := b.Get(2, 2).Rune; got != BoxCross {
		t.Errorf("intersection = %q, want %q", got, BoxCross)
	}
}

func TestNonBorderOverwrites(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Set(0, 0, NewCell(BoxHorizontal, DefaultStyle()))
	b.Set(0, 0, NewCell('x', DefaultStyle()))
	if got := b.Get(0, 0).Rune; got != 'x' {
		t.Errorf("cell = %q, want plain overwrite", got)
	}
}

func TestDirtyRows(t *testing.T) {
	b := NewBuffer(10, 4)
	b.ClearDirtyFlags()

	b.Set(3, 2, NewCell('x', DefaultStyle()))

	for y := 0; y < 4; y++ {
		want := y == 2
		if b.RowDirty(y) != want {
			t.Errorf("RowDirty(%d) = %v, want %v", y, b.RowDirty(y), want)
		}
	}

	b.ClearDirtyFlags()
	if b.RowDirty(2) {
		t.Error("row still dirty after ClearDirtyFlags")
	}
}

func TestFillRect(t *testing.T) {
	b := NewBuffer(6, 4)
	b.FillRect(1, 1, 3, 2, '#', DefaultStyle())
	if got := b.GetLine(1); got != " ###" {
		t.Errorf("row 1 = %q", got)
	}
	if got := b.GetLine(3); got != "" {
		t.Errorf("row 3 = %q, want untouched", got)
	}
}

func TestResizePreservesContent(t *testing.T) {
	b := NewBuffer(10, 3)
	b.WriteString(0, 0, "keep", DefaultStyle())

	b.Resize(20, 5)
	if got := b.GetLine(0); got != "keep" {
		t.Errorf("after grow: %q", got)
	}
	if w, h := b.Size(); w != 20 || h != 5 {
		t.Errorf("size = %dx%d", w, h)
	}

	b.Resize(2, 1)
	if got := b.GetLine(0); got != "ke" {
		t.Errorf("after shrink: %q", got)
	}
}

func TestBlit(t *testing.T) {
	src := NewBuffer(5, 2)
	src.WriteString(0, 0, "ab", DefaultStyle())

	dst := NewBuffer(10, 4)
	dst.Blit(src, 0, 0, 3, 1, 2, 1)

	if got := dst.GetLine(1); got != "   ab" {
		t.Errorf("blit result = %q", got)
	}
}
