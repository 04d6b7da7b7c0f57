package glint

import "time"

// Screen is a top-level unit of the application: a component tree plus
// lifecycle hooks. The manager's stack decides which screen receives
// input, update and render calls.
type Screen interface {
	// Root returns the component tree. The engine lays it out against
	// the full display every frame.
	Root() Component

	// Lifecycle. OnActivate fires when the screen becomes top of the
	// stack (both on push and when a pop re-exposes it); OnDeactivate
	// when it stops being top. Neither implies destruction.
	OnActivate()
	OnDeactivate()

	// Update advances screen state by the elapsed wall-clock time.
	Update(dt time.Duration)

	// Title names the screen for tab headers and the status bar.
	Title() string

	// HandleInput processes one key event, after any overlay and before
	// the root component tree. Returns true if consumed.
	HandleInput(ev KeyEvent) bool

	// Overlay returns the active overlay, or nil. While non-nil the
	// overlay owns input exclusively and renders above the root.
	Overlay() Overlay
}

// ScreenBase provides the lifecycle plumbing shared by concrete screens.
// Embed it and set the root in the constructor.
type ScreenBase struct {
	root    Component
	title   string
	overlay Overlay
	active  bool
}

// NewScreenBase creates the base for a screen.
func NewScreenBase(title string, root Component) ScreenBase {
	return ScreenBase{title: title, root: root}
}

// Root implements Screen.
func (s *ScreenBase) Root() Component { return s.root }

// SetRoot replaces the component tree.
func (s *ScreenBase) SetRoot(root Component) { s.root = root }

// Title implements Screen.
func (s *ScreenBase) Title() string { return s.title }

// SetTitle renames the screen.
func (s *ScreenBase) SetTitle(title string) { s.title = title }

// OnActivate implements Screen.
func (s *ScreenBase) OnActivate() { s.active = true }

// OnDeactivate implements Screen.
func (s *ScreenBase) OnDeactivate() { s.active = false }

// Active reports whether the screen is top of the stack.
func (s *ScreenBase) Active() bool { return s.active }

// Update implements Screen by ticking the component tree.
func (s *ScreenBase) Update(dt time.Duration) {
	if s.root != nil {
		s.root.Update(dt)
	}
}

// HandleInput implements Screen by delegating into the tree's focus path.
func (s *ScreenBase) HandleInput(ev KeyEvent) bool {
	if s.root == nil {
		return false
	}
	return s.root.HandleInput(ev)
}

// Overlay implements Screen.
func (s *ScreenBase) Overlay() Overlay { return s.overlay }

// SetOverlay installs an overlay; it owns input until cleared.
func (s *ScreenBase) SetOverlay(o Overlay) { s.overlay = o }

// CloseOverlay clears the overlay slot.
func (s *ScreenBase) CloseOverlay() { s.overlay = nil }

// ScreenManager owns the screen stack. The top screen receives input,
// update and render; pushed-over screens are retained, popped screens are
// discarded. Popping the final screen is the application exit signal.
type ScreenManager struct {
	stack []Screen
}

// NewScreenManager creates an empty manager; push the initial screen
// before running the loop.
func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

// Depth returns the number of stacked screens.
func (m *ScreenManager) Depth() int { return len(m.stack) }

// Top returns the active screen, or nil when the stack is empty.
func (m *ScreenManager) Top() Screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Push deactivates the current top (retaining it), appends the screen and
// activates it.
func (m *ScreenManager) Push(s Screen) {
	if top := m.Top(); top != nil {
		top.OnDeactivate()
	}
	m.stack = append(m.stack, s)
	s.OnActivate()
}

// Pop deactivates and discards the current top, then reactivates the
// newly exposed screen. The second return is false when the popped screen
// was the last one: that is the exit signal, and no reactivation happens.
func (m *ScreenManager) Pop() (popped Screen, remaining bool) {
	if len(m.stack) == 0 {
		return nil, false
	}
	top := m.stack[len(m.stack)-1]
	top.OnDeactivate()
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]

	if next := m.Top(); next != nil {
		next.OnActivate()
		return top, true
	}
	return top, false
}
