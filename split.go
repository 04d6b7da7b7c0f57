package glint

import "fmt"

// Split is sugar over a two-track Grid: a ratio becomes two percentage
// tracks summing to 100. The classic dual-pane layout is
// NewSplit(Horizontal, 50).
type Split struct {
	*Grid
}

// NewSplit creates a split with the first pane taking ratio percent of the
// span. Ratios outside (0,100) are configuration errors.
func NewSplit(direction Direction, ratio int) (*Split, error) {
	if ratio <= 0 || ratio >= 100 {
		return nil, fmt.Errorf("split ratio %d out of range (0,100)", ratio)
	}
	return &Split{
		Grid: NewGrid(direction, Percent(ratio), Percent(100-ratio)),
	}, nil
}

// MustSplit is NewSplit for static layouts; it panics on a bad ratio.
func MustSplit(direction Direction, ratio int) *Split {
	s, err := NewSplit(direction, ratio)
	if err != nil {
		panic(err)
	}
	return s
}

// SetFirst places the first pane.
func (s *Split) SetFirst(c Component) *Split {
	s.Place(0, c)
	return s
}

// SetSecond places the second pane.
func (s *Split) SetSecond(c Component) *Split {
	s.Place(1, c)
	return s
}

// First returns the first pane, or nil.
func (s *Split) First() Component { return s.At(0) }

// Second returns the second pane, or nil.
func (s *Split) Second() Component { return s.At(1) }
