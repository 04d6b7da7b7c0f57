package glint

import "github.com/mattn/go-runewidth"

// TextRole selects which theme style a Text renders with.
type TextRole int

const (
	RoleNormal TextRole = iota
	RoleMuted
	RoleAccent
	RoleError
)

// Text is a single-line label. Content wider than the assigned bounds is
// clipped with an ellipsis.
type Text struct {
	Base
	content string
	role    TextRole
	align   Align
}

// Align controls horizontal text placement within the bounds.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// NewText creates a label.
func NewText(content string) *Text {
	t := &Text{content: content}
	t.SetMinSize(runewidth.StringWidth(content), 1)
	return t
}

// SetContent replaces the label text.
func (t *Text) SetContent(content string) {
	t.content = content
	t.SetMinSize(runewidth.StringWidth(content), 1)
}

// Content returns the label text.
func (t *Text) Content() string { return t.content }

// Role sets the theme role. Returns self for chaining.
func (t *Text) Role(role TextRole) *Text {
	t.role = role
	return t
}

// Aligned sets the alignment. Returns self for chaining.
func (t *Text) Aligned(a Align) *Text {
	t.align = a
	return t
}

func (t *Text) style(theme *Theme) Style {
	switch t.role {
	case RoleMuted:
		return theme.Muted
	case RoleAccent:
		return theme.Accent
	case RoleError:
		return theme.Error
	}
	return theme.Normal
}

// Render implements Component.
func (t *Text) Render(ctx *RenderContext) {
	b := t.bounds
	if b.Empty() {
		return
	}
	style := t.style(ctx.Theme)

	content := t.content
	width := runewidth.StringWidth(content)
	if width > b.W {
		content = runewidth.Truncate(content, b.W, "…")
		width = b.W
	}

	x := b.X
	switch t.align {
	case AlignCenter:
		x += (b.W - width) / 2
	case AlignRight:
		x += b.W - width
	}
	ctx.Buf.WriteStringClipped(x, b.Y, content, style, b.W)
}
