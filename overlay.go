package glint

// Overlay is a component that draws on top of a screen and owns input
// exclusively while set. Overlays are not pushed on the screen stack; the
// owning screen holds at most one in an optional slot and renders it after
// its own content, over a dimmed backdrop.
type Overlay interface {
	Component
	// PlaceOverlay positions the overlay within the screen rectangle.
	// Called every frame before rendering, after the screen's own layout.
	PlaceOverlay(screen Rect)
}

// OverlayResult is the outcome of an overlay interaction, delivered to the
// owning screen through OverlayListener rather than an embedded callback.
type OverlayResult struct {
	Index    int    // activated action position
	Label    string // activated action label
	Canceled bool   // true when dismissed via the cancel action
}

// OverlayListener receives the overlay outcome. The listener is expected
// to clear the overlay slot; the engine never does it behind the screen's
// back.
type OverlayListener interface {
	OverlayClosed(result OverlayResult)
}
