package glint

// Spacer is invisible flexible space. Inside a stack it takes whatever
// track it is assigned, pushing its siblings apart.
type Spacer struct {
	Base
}

// NewSpacer creates a spacer.
func NewSpacer() *Spacer { return &Spacer{} }

// Render implements Component; a spacer draws nothing.
func (s *Spacer) Render(*RenderContext) {}
