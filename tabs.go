package glint

import "time"

// Tab is one page of a TabGroup: a titled component tree with activation
// hooks mirroring a screen's.
type Tab interface {
	Title() string
	Root() Component
	OnActivate()
	OnDeactivate()
}

// StaticTab is the simplest Tab: a title and a tree, no lifecycle
// behavior.
type StaticTab struct {
	TabTitle string
	Tree     Component
}

func (t *StaticTab) Title() string   { return t.TabTitle }
func (t *StaticTab) Root() Component { return t.Tree }
func (t *StaticTab) OnActivate()     {}
func (t *StaticTab) OnDeactivate()   {}

// TabGroup holds an ordered set of tabs with one active at a time. The
// header row renders the titles; the active tab's tree fills the rest.
// Switching deactivates the old tab and activates the new one before the
// next render.
type TabGroup struct {
	Base
	tabs   []Tab
	active int
}

// NewTabGroup creates a tab group. The first tab starts active; its
// OnActivate fires on the first Activate call from the owning screen, not
// here.
func NewTabGroup(tabs ...Tab) *TabGroup {
	g := &TabGroup{tabs: tabs}
	g.SetMinSize(1, 2)
	return g
}

// Tabs returns the ordered tabs.
func (g *TabGroup) Tabs() []Tab { return g.tabs }

// Active returns the active tab index.
func (g *TabGroup) Active() int { return g.active }

// ActiveTab returns the active tab, or nil when empty.
func (g *TabGroup) ActiveTab() Tab {
	if len(g.tabs) == 0 {
		return nil
	}
	return g.tabs[g.active]
}

// Activate switches to the tab at index: the old tab deactivates first,
// then the new one activates, strictly before any render. Out-of-range
// indices are ignored.
func (g *TabGroup) Activate(index int) {
	if index < 0 || index >= len(g.tabs) || index == g.active {
		return
	}
	g.tabs[g.active].OnDeactivate()
	g.active = index
	g.tabs[g.active].OnActivate()
}

// Next cycles forward through the tabs.
func (g *TabGroup) Next() {
	if len(g.tabs) > 1 {
		g.Activate((g.active + 1) % len(g.tabs))
	}
}

// Prev cycles backward through the tabs.
func (g *TabGroup) Prev() {
	if len(g.tabs) > 1 {
		g.Activate((g.active + len(g.tabs) - 1) % len(g.tabs))
	}
}

// Children exposes the active tab's tree so focus queries and input
// delegation reach into it.
func (g *TabGroup) Children() []Component {
	if t := g.ActiveTab(); t != nil && t.Root() != nil {
		return []Component{t.Root()}
	}
	return nil
}

// HandleInput cycles tabs on Tab/Shift-Tab, then delegates to the active
// tree's focus path.
func (g *TabGroup) HandleInput(ev KeyEvent) bool {
	switch {
	case ev.IsKey(KeyTab):
		g.Next()
		return true
	case ev.Is(Combo(KeyTab, ModShift)):
		g.Prev()
		return true
	}
	if t := g.ActiveTab(); t != nil && t.Root() != nil && t.Root().Focused() {
		return t.Root().HandleInput(ev)
	}
	return false
}

// Update ticks the active tab's tree.
func (g *TabGroup) Update(dt time.Duration) {
	if t := g.ActiveTab(); t != nil && t.Root() != nil {
		t.Root().Update(dt)
	}
}

// Measure implements Layouter.
func (g *TabGroup) Measure(availW, availH int) (int, int) {
	if t := g.ActiveTab(); t != nil && t.Root() != nil {
		measureChild(t.Root(), availW, availH-1)
	}
	return availW, availH
}

// Layout implements Layouter: one header row, content below.
func (g *TabGroup) Layout(width, height int) {
	if t := g.ActiveTab(); t != nil && t.Root() != nil {
		layoutChild(t.Root(), Rect{X: g.bounds.X, Y: g.bounds.Y + 1, W: width, H: height - 1})
	}
}

// Render draws the header row and the active tree.
func (g *TabGroup) Render(ctx *RenderContext) {
	b := g.bounds
	if b.Empty() {
		return
	}

	x := b.X
	for i, t := range g.tabs {
		style := ctx.Theme.Muted
		if i == g.active {
			style = ctx.Theme.Selected
		}
		label := " " + t.Title() + " "
		x += ctx.Buf.WriteStringClipped(x, b.Y, label, style, b.X+b.W-x)
		if x >= b.X+b.W {
			break
		}
		x += ctx.Buf.WriteStringClipped(x, b.Y, "│", ctx.Theme.BorderInactive, b.X+b.W-x)
	}
	if t := g.ActiveTab(); t != nil && t.Root() != nil {
		t.Root().Render(ctx)
	}
}
