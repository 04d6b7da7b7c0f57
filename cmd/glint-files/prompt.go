package main

import "glint"

// promptOverlay is a small input dialog: a titled box around a text field.
// The entered text comes back through the overlay listener as the result
// label; Escape cancels.
type promptOverlay struct {
	glint.Base
	title    string
	field    *glint.TextField
	listener glint.OverlayListener
}

func newPrompt(title, initial string) *promptOverlay {
	p := &promptOverlay{
		title: title,
		field: glint.NewTextField(),
	}
	p.field.SetValue(initial)
	p.field.SetFocused(true)
	p.field.SetListener(p)
	return p
}

func (p *promptOverlay) SetListener(l glint.OverlayListener) { p.listener = l }

// FieldChanged implements glint.FieldListener.
func (p *promptOverlay) FieldChanged(string) {}

// FieldSubmitted implements glint.FieldListener.
func (p *promptOverlay) FieldSubmitted(value string) {
	if p.listener != nil {
		p.listener.OverlayClosed(glint.OverlayResult{Label: value})
	}
}

func (p *promptOverlay) HandleInput(ev glint.KeyEvent) bool {
	if ev.IsKey(glint.KeyEscape) {
		if p.listener != nil {
			p.listener.OverlayClosed(glint.OverlayResult{Canceled: true})
		}
		return true
	}
	p.field.HandleInput(ev)
	return true
}

// PlaceOverlay implements glint.Overlay.
func (p *promptOverlay) PlaceOverlay(screen glint.Rect) {
	w := 52
	if w > screen.W {
		w = screen.W
	}
	h := 5
	b := glint.Rect{
		X: screen.X + (screen.W-w)/2,
		Y: screen.Y + (screen.H-h)/2,
		W: w,
		H: h,
	}
	p.SetBounds(b)
	p.field.SetBounds(glint.Rect{X: b.X + 2, Y: b.Y + 2, W: b.W - 4, H: 1})
}

func (p *promptOverlay) Render(ctx *glint.RenderContext) {
	b := p.Bounds()
	if b.Empty() {
		return
	}
	ctx.Buf.FillRect(b.X, b.Y, b.W, b.H, ' ', ctx.Theme.Normal)
	ctx.Buf.DrawBox(b.X, b.Y, b.W, b.H, glint.BorderDouble, ctx.Theme.BorderActive)
	if p.title != "" {
		ctx.Buf.WriteStringClipped(b.X+2, b.Y, " "+p.title+" ", ctx.Theme.Accent, b.W-4)
	}
	p.field.Render(ctx)
}
