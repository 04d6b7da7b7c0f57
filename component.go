package glint

import "time"

// Component is the interface all UI tree nodes implement. Bounds are set
// exclusively by the parent (the screen sets the root's), recomputed every
// frame. Children are owned exclusively by their parent; there are no
// back-references up the tree.
type Component interface {
	// Geometry
	SetBounds(Rect) // Parent tells us where we live this frame
	Bounds() Rect
	MinSize() (width, height int) // Advisory; layout never enforces it

	// Focus
	Focused() bool
	SetFocused(bool)

	// Hierarchy
	Children() []Component

	// Frame cycle
	Render(ctx *RenderContext)
	HandleInput(ev KeyEvent) bool
	Update(dt time.Duration)
}

// Layouter is implemented by components that take part in size negotiation.
// Measure is called before Layout; Layout receives the actually allocated
// span, which may differ from what Measure was offered.
type Layouter interface {
	Component
	Measure(availW, availH int) (width, height int)
	Layout(width, height int)
}

// Base provides common state for leaf components. Embed it.
type Base struct {
	bounds     Rect
	focused    bool
	minW, minH int
}

// SetBounds records the rectangle assigned by the parent.
func (b *Base) SetBounds(r Rect) { b.bounds = r }

// Bounds returns the rectangle assigned by the parent this frame.
func (b *Base) Bounds() Rect { return b.bounds }

// MinSize returns the advisory minimum size.
func (b *Base) MinSize() (int, int) { return b.minW, b.minH }

// SetMinSize sets the advisory minimum size.
func (b *Base) SetMinSize(w, h int) { b.minW, b.minH = w, h }

// Focused reports whether this component holds keyboard focus.
func (b *Base) Focused() bool { return b.focused }

// SetFocused sets the focus flag. Setting it propagates nothing; parents
// hold the flag on the path down to the focused leaf.
func (b *Base) SetFocused(f bool) { b.focused = f }

// Children returns nil; leaves have no children.
func (b *Base) Children() []Component { return nil }

// HandleInput ignores input by default.
func (b *Base) HandleInput(KeyEvent) bool { return false }

// Update does nothing by default.
func (b *Base) Update(time.Duration) {}

// BaseContainer provides common state for containers. Embed it.
type BaseContainer struct {
	Base
	children []Component
	gap      int
}

// Children returns the owned child components, in order.
func (c *BaseContainer) Children() []Component { return c.children }

// AddChild appends a child. Concrete containers wrap this with their own
// Add methods.
func (c *BaseContainer) AddChild(child Component) {
	c.children = append(c.children, child)
}

// RemoveChild removes a child.
func (c *BaseContainer) RemoveChild(child Component) {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// ClearChildren removes all children.
func (c *BaseContainer) ClearChildren() {
	c.children = c.children[:0]
}

// Gap returns the gap between tracks.
func (c *BaseContainer) Gap() int { return c.gap }

// SetGap sets the gap between tracks.
func (c *BaseContainer) SetGap(g int) { c.gap = g }

// HandleInput delegates to the first focused child and reports whether it
// consumed the event. Containers that want shortcuts of their own intercept
// before calling this.
func (c *BaseContainer) HandleInput(ev KeyEvent) bool {
	for _, child := range c.children {
		if child.Focused() {
			return child.HandleInput(ev)
		}
	}
	return false
}

// Update forwards the tick to every child.
func (c *BaseContainer) Update(dt time.Duration) {
	for _, child := range c.children {
		child.Update(dt)
	}
}

// FocusPath walks from root toward the focused leaf and returns every
// focused node on the way, root first. The path is computed on demand; no
// component stores it.
func FocusPath(root Component) []Component {
	var path []Component
	node := root
	for node != nil && node.Focused() {
		path = append(path, node)
		var next Component
		for _, child := range node.Children() {
			if child.Focused() {
				next = child
				break
			}
		}
		node = next
	}
	return path
}

// FocusedLeaf returns the deepest focused component under root, or nil if
// root itself is not focused.
func FocusedLeaf(root Component) Component {
	path := FocusPath(root)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

// Blur clears the focus flag on root and every descendant.
func Blur(root Component) {
	root.SetFocused(false)
	for _, child := range root.Children() {
		Blur(child)
	}
}

// FocusLeaves returns every focused component with no focused child,
// anywhere under root. A well-formed tree has at most one.
func FocusLeaves(root Component) []Component {
	var leaves []Component
	var walk func(Component)
	walk = func(n Component) {
		focusedChild := false
		for _, child := range n.Children() {
			if child.Focused() {
				focusedChild = true
			}
			walk(child)
		}
		if n.Focused() && !focusedChild {
			leaves = append(leaves, n)
		}
	}
	walk(root)
	return leaves
}

// measureChild negotiates a child's desired size: layout-aware children get
// the full Measure call, plain leaves fall back to their advisory minimum.
func measureChild(child Component, availW, availH int) (int, int) {
	if l, ok := child.(Layouter); ok {
		return l.Measure(availW, availH)
	}
	return child.MinSize()
}

// layoutChild completes the negotiation with the allocated span.
func layoutChild(child Component, r Rect) {
	child.SetBounds(r)
	if l, ok := child.(Layouter); ok {
		l.Layout(r.W, r.H)
	}
}
