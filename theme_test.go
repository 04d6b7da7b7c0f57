package glint

import "testing"

func TestDimColorRGB(t *testing.T) {
	c := DimColor(RGB(200, 200, 200), 0.5)
	if c.Mode != ColorRGB {
		t.Fatalf("mode = %v, want RGB", c.Mode)
	}
	if c.R >= 200 || c.G >= 200 || c.B >= 200 {
		t.Errorf("dimmed color %v is not darker than the source", c)
	}

	if got := DimColor(RGB(10, 10, 10), 0); got != RGB(10, 10, 10) {
		t.Errorf("factor 0 changed the color: %v", got)
	}
}

func TestDimColorNonRGBUnchanged(t *testing.T) {
	for _, c := range []Color{DefaultColor(), BasicColor(3), PaletteColor(120)} {
		if got := DimColor(c, 0.5); got != c {
			t.Errorf("DimColor(%v) = %v, want unchanged", c, got)
		}
	}
}

func TestDimStyleSetsDimAttr(t *testing.T) {
	s := DimStyle(Style{FG: RGB(255, 0, 0)}, 0.5)
	if !s.Attr.Has(AttrDim) {
		t.Error("dim attribute not set")
	}
}

func TestDimRect(t *testing.T) {
	buf := NewBuffer(10, 4)
	theme := ThemeMonochrome
	ctx := &RenderContext{Buf: buf, Theme: &theme}

	buf.WriteString(0, 1, "abc", Style{})
	ctx.DimRect(Rect{X: 0, Y: 1, W: 3, H: 1})

	for x := 0; x < 3; x++ {
		if !buf.Get(x, 1).Style.Attr.Has(AttrDim) {
			t.Errorf("cell %d not dimmed", x)
		}
	}
	if buf.Get(0, 0).Style.Attr.Has(AttrDim) {
		t.Error("cell outside the rect dimmed")
	}
}

func TestThemesIndex(t *testing.T) {
	for _, name := range []string{"dark", "light", "monochrome"} {
		if _, ok := Themes[name]; !ok {
			t.Errorf("theme %q missing", name)
		}
	}
}
