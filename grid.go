package glint

import "fmt"

// Grid distributes one axis among a fixed set of named tracks, one child
// per track index. Tracks are declared up front; placing a child on a
// track that does not exist is a hard configuration error and panics
// immediately rather than being deferred to layout time.
type Grid struct {
	BaseContainer
	direction Direction // Vertical = row tracks, Horizontal = column tracks
	tracks    []Size
	slots     []Component // one per track, nil = empty track
}

// NewGrid creates a grid with the given tracks. Horizontal direction means
// the tracks are columns; Vertical means rows.
func NewGrid(direction Direction, tracks ...Size) *Grid {
	return &Grid{
		direction: direction,
		tracks:    tracks,
		slots:     make([]Component, len(tracks)),
	}
}

// GridColumns creates a column grid from size tokens.
func GridColumns(tokens ...string) (*Grid, error) {
	tracks, err := ParseSizes(tokens...)
	if err != nil {
		return nil, err
	}
	return NewGrid(Horizontal, tracks...), nil
}

// GridRows creates a row grid from size tokens.
func GridRows(tokens ...string) (*Grid, error) {
	tracks, err := ParseSizes(tokens...)
	if err != nil {
		return nil, err
	}
	return NewGrid(Vertical, tracks...), nil
}

// Tracks returns the number of tracks.
func (g *Grid) Tracks() int { return len(g.tracks) }

// Place assigns a child to a track, replacing any previous occupant.
// An out-of-range track index panics: it is a programming error, never
// silently defaulted.
func (g *Grid) Place(track int, child Component) *Grid {
	if track < 0 || track >= len(g.tracks) {
		panic(fmt.Sprintf("glint: grid track %d out of range [0,%d)", track, len(g.tracks)))
	}
	if prev := g.slots[track]; prev != nil {
		g.RemoveChild(prev)
	}
	g.slots[track] = child
	if child != nil {
		g.AddChild(child)
	}
	return g
}

// At returns the occupant of a track, or nil.
func (g *Grid) At(track int) Component {
	if track < 0 || track >= len(g.slots) {
		return nil
	}
	return g.slots[track]
}

// Gap sets the gap between tracks. Returns self for chaining.
func (g *Grid) Gap(gap int) *Grid {
	g.SetGap(gap)
	return g
}

func (g *Grid) trackSizes(span int) []int {
	gapTotal := 0
	if len(g.tracks) > 1 {
		gapTotal = g.gap * (len(g.tracks) - 1)
	}
	usable := span - gapTotal
	if usable < 0 {
		usable = 0
	}
	return ResolveSizes(g.tracks, usable)
}

// Measure implements Layouter.
func (g *Grid) Measure(availW, availH int) (int, int) {
	var span, crossAvail int
	if g.direction == Vertical {
		span, crossAvail = availH, availW
	} else {
		span, crossAvail = availW, availH
	}

	tracks := g.trackSizes(span)
	maxCross := 0
	for i, child := range g.slots {
		if child == nil {
			continue
		}
		if g.direction == Vertical {
			cw, _ := measureChild(child, crossAvail, tracks[i])
			if cw > maxCross {
				maxCross = cw
			}
		} else {
			_, ch := measureChild(child, tracks[i], crossAvail)
			if ch > maxCross {
				maxCross = ch
			}
		}
	}
	if maxCross > crossAvail {
		maxCross = crossAvail
	}

	if g.direction == Vertical {
		return maxCross, span
	}
	return span, maxCross
}

// Layout implements Layouter. Track sizes re-resolve against the allocated
// span. The cursor advances by trackSize+gap per track in declaration
// order, including empty tracks.
func (g *Grid) Layout(width, height int) {
	b := g.bounds

	var span int
	if g.direction == Vertical {
		span = height
	} else {
		span = width
	}
	tracks := g.trackSizes(span)

	pos := 0
	for i, child := range g.slots {
		if child != nil {
			var r Rect
			if g.direction == Vertical {
				r = Rect{X: b.X, Y: b.Y + pos, W: width, H: tracks[i]}
			} else {
				r = Rect{X: b.X + pos, Y: b.Y, W: tracks[i], H: height}
			}
			layoutChild(child, r)
		}
		pos += tracks[i] + g.gap
	}
}

// MinSize reports the sum of occupied-track child minimums plus gaps.
func (g *Grid) MinSize() (int, int) {
	var totalMain, maxCross int
	for _, child := range g.slots {
		if child == nil {
			continue
		}
		w, h := child.MinSize()
		if g.direction == Vertical {
			totalMain += h
			if w > maxCross {
				maxCross = w
			}
		} else {
			totalMain += w
			if h > maxCross {
				maxCross = h
			}
		}
	}
	if len(g.tracks) > 1 {
		totalMain += g.gap * (len(g.tracks) - 1)
	}
	if g.direction == Vertical {
		return maxCross, totalMain
	}
	return totalMain, maxCross
}

// Render draws every occupied track.
func (g *Grid) Render(ctx *RenderContext) {
	for _, child := range g.slots {
		if child != nil {
			child.Render(ctx)
		}
	}
}
