package glint

import colorful "github.com/lucasb-eyer/go-colorful"

// Theme maps semantic roles to concrete styles. It is threaded through
// every render call as part of RenderContext; there is no ambient global
// theme state. The zero value is unusable, start from one of the
// predefined themes.
type Theme struct {
	Normal         Style // default text
	Selected       Style // selected list/table row, focused button
	Muted          Style // de-emphasized text
	Accent         Style // highlighted/important text
	Error          Style // error messages
	BorderActive   Style // border of the focused panel
	BorderInactive Style // border of unfocused panels
	Scrollbar      Style // scrollbar thumb and track
	StatusBar      Style // bottom status line
	Backdrop       Style // dimmed content beneath an overlay
}

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Normal:         Style{FG: White},
	Selected:       Style{FG: Black, BG: Cyan},
	Muted:          Style{FG: BrightBlack},
	Accent:         Style{FG: BrightCyan, Attr: AttrBold},
	Error:          Style{FG: BrightRed},
	BorderActive:   Style{FG: BrightCyan},
	BorderInactive: Style{FG: BrightBlack},
	Scrollbar:      Style{FG: BrightBlack},
	StatusBar:      Style{FG: Black, BG: White},
	Backdrop:       Style{FG: BrightBlack, Attr: AttrDim},
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Normal:         Style{FG: Black},
	Selected:       Style{FG: White, BG: Blue},
	Muted:          Style{FG: BrightBlack},
	Accent:         Style{FG: Blue, Attr: AttrBold},
	Error:          Style{FG: Red},
	BorderActive:   Style{FG: Blue},
	BorderInactive: Style{FG: BrightBlack},
	Scrollbar:      Style{FG: BrightBlack},
	StatusBar:      Style{FG: White, BG: Black},
	Backdrop:       Style{FG: BrightBlack, Attr: AttrDim},
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Normal:         Style{},
	Selected:       Style{Attr: AttrInverse},
	Muted:          Style{Attr: AttrDim},
	Accent:         Style{Attr: AttrBold},
	Error:          Style{Attr: AttrBold | AttrUnderline},
	BorderActive:   Style{Attr: AttrBold},
	BorderInactive: Style{Attr: AttrDim},
	Scrollbar:      Style{Attr: AttrDim},
	StatusBar:      Style{Attr: AttrInverse},
	Backdrop:       Style{Attr: AttrDim},
}

// Themes indexes the predefined themes by the names accepted in config
// files.
var Themes = map[string]Theme{
	"dark":       ThemeDark,
	"light":      ThemeLight,
	"monochrome": ThemeMonochrome,
}

// DimColor blends an RGB color toward black by the given factor
// (0 = unchanged, 1 = black). Non-RGB colors fall back unchanged since
// palette indices cannot be blended meaningfully.
func DimColor(c Color, factor float64) Color {
	if c.Mode != ColorRGB {
		return c
	}
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	dimmed := src.BlendLab(colorful.Color{}, factor).Clamped()
	r, g, b := dimmed.RGB255()
	return RGB(r, g, b)
}

// DimStyle returns the style with both colors dimmed and the dim attribute
// set, for rendering content beneath an overlay.
func DimStyle(s Style, factor float64) Style {
	s.FG = DimColor(s.FG, factor)
	s.BG = DimColor(s.BG, factor)
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// RenderContext carries everything a component needs to draw itself:
// the target buffer and the active theme. It is passed down the tree by
// value reference; components never reach for globals.
type RenderContext struct {
	Buf   *Buffer
	Theme *Theme
}

// DimRect dims every cell in the rectangle, used on the content beneath a
// modal or dropdown before the overlay itself is drawn.
func (ctx *RenderContext) DimRect(r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cell := ctx.Buf.Get(x, y)
			cell.Style = DimStyle(cell.Style, 0.5)
			ctx.Buf.SetStyle(x, y, cell.Style)
		}
	}
}
