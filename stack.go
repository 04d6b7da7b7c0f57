package glint

// Direction specifies the layout direction.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Stack arranges children along one axis, distributing the main axis
// through size units. Each child carries an optional size spec; nil means
// one fraction. The cross axis gives every child the full allocated span.
type Stack struct {
	BaseContainer
	direction Direction
	specs     []*Size // parallel to children; nil entries mean 1fr
}

// VStack creates a vertical stack.
func VStack() *Stack { return &Stack{direction: Vertical} }

// HStack creates a horizontal stack.
func HStack() *Stack { return &Stack{direction: Horizontal} }

// Add appends a child that shares leftover space (spec nil, one fraction).
func (s *Stack) Add(child Component) *Stack {
	return s.AddSized(child, nil)
}

// AddFixed appends a child with a fixed main-axis size.
func (s *Stack) AddFixed(child Component, cells int) *Stack {
	sz := Cells(cells)
	return s.AddSized(child, &sz)
}

// AddSized appends a child with an explicit size spec; nil means one
// fraction.
func (s *Stack) AddSized(child Component, spec *Size) *Stack {
	s.AddChild(child)
	s.specs = append(s.specs, spec)
	return s
}

// Gap sets the gap between tracks. Returns self for chaining.
func (s *Stack) Gap(g int) *Stack {
	s.SetGap(g)
	return s
}

// trackSizes resolves per-child main-axis sizes for the given span, with
// gaps already removed by the caller of ResolveSizes.
func (s *Stack) trackSizes(span int) []int {
	gapTotal := 0
	if len(s.children) > 1 {
		gapTotal = s.gap * (len(s.children) - 1)
	}
	usable := span - gapTotal
	if usable < 0 {
		usable = 0
	}

	sizes := make([]Size, len(s.children))
	for i, spec := range s.specs {
		if spec == nil {
			sizes[i] = Fr(1)
		} else {
			sizes[i] = *spec
		}
	}
	return ResolveSizes(sizes, usable)
}

// Measure implements Layouter: the main axis wants the full offer, the
// cross axis wants the largest child.
func (s *Stack) Measure(availW, availH int) (int, int) {
	var span, crossAvail int
	if s.direction == Vertical {
		span, crossAvail = availH, availW
	} else {
		span, crossAvail = availW, availH
	}

	tracks := s.trackSizes(span)
	maxCross := 0
	for i, child := range s.children {
		var cw, ch int
		if s.direction == Vertical {
			cw, _ = measureChild(child, crossAvail, tracks[i])
			if cw > maxCross {
				maxCross = cw
			}
		} else {
			_, ch = measureChild(child, tracks[i], crossAvail)
			if ch > maxCross {
				maxCross = ch
			}
		}
	}
	if maxCross > crossAvail {
		maxCross = crossAvail
	}

	if s.direction == Vertical {
		return maxCross, span
	}
	return span, maxCross
}

// Layout implements Layouter. Sizes are re-resolved against the actually
// allocated span, which may differ from the measure offer. The placement
// cursor advances by track size plus gap for every track, including empty
// ones; their space is not reclaimed.
func (s *Stack) Layout(width, height int) {
	b := s.bounds

	var span int
	if s.direction == Vertical {
		span = height
	} else {
		span = width
	}
	tracks := s.trackSizes(span)

	pos := 0
	for i, child := range s.children {
		var r Rect
		if s.direction == Vertical {
			r = Rect{X: b.X, Y: b.Y + pos, W: width, H: tracks[i]}
		} else {
			r = Rect{X: b.X + pos, Y: b.Y, W: tracks[i], H: height}
		}
		layoutChild(child, r)
		pos += tracks[i] + s.gap
	}
}

// MinSize sums child minimums along the main axis plus gaps.
func (s *Stack) MinSize() (int, int) {
	var totalMain, maxCross int
	for _, child := range s.children {
		w, h := child.MinSize()
		if s.direction == Vertical {
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
	if len(s.children) > 1 {
		totalMain += s.gap * (len(s.children) - 1)
	}
	if s.direction == Vertical {
		return maxCross, totalMain
	}
	return totalMain, maxCross
}

// Render draws each child within the bounds assigned during Layout.
func (s *Stack) Render(ctx *RenderContext) {
	for _, child := range s.children {
		child.Render(ctx)
	}
}
