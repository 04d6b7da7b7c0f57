package glint

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeKind discriminates how a size token consumes space.
type SizeKind uint8

const (
	// SizeFixed is an absolute cell count, independent of available space.
	SizeFixed SizeKind = iota
	// SizePercent resolves against the total span handed to ResolveSizes,
	// not against what remains after fixed allocation.
	SizePercent
	// SizeFraction shares the space left after fixed and percentage
	// allocation, weighted by its value.
	SizeFraction
)

func (k SizeKind) String() string {
	switch k {
	case SizeFixed:
		return "fixed"
	case SizePercent:
		return "percent"
	case SizeFraction:
		return "fraction"
	}
	return "unknown"
}

// Size is an immutable interpretation of a size token. Build one with
// ParseSize or the Cells/Percent/Fr constructors.
type Size struct {
	Kind  SizeKind
	Value int
}

// Cells returns a fixed size of n cells.
func Cells(n int) Size {
	return Size{Kind: SizeFixed, Value: n}
}

// Percent returns a percentage size.
func Percent(p int) Size {
	return Size{Kind: SizePercent, Value: p}
}

// Fr returns a fractional size with the given weight.
func Fr(weight int) Size {
	return Size{Kind: SizeFraction, Value: weight}
}

// ParseSize interprets a size token:
//
//	"12"   fixed 12 cells
//	"30%"  30 percent of the span
//	"2fr"  fraction with weight 2
//	"*"    shorthand for "1fr"
//
// Invalid tokens are configuration errors and rejected outright.
func ParseSize(token string) (Size, error) {
	tok := strings.TrimSpace(token)
	switch {
	case tok == "":
		return Size{}, fmt.Errorf("empty size token")
	case tok == "*":
		return Fr(1), nil
	case strings.HasSuffix(tok, "%"):
		n, err := strconv.Atoi(strings.TrimSuffix(tok, "%"))
		if err != nil || n < 0 {
			return Size{}, fmt.Errorf("invalid percentage token %q", token)
		}
		return Percent(n), nil
	case strings.HasSuffix(tok, "fr"):
		n, err := strconv.Atoi(strings.TrimSuffix(tok, "fr"))
		if err != nil || n <= 0 {
			return Size{}, fmt.Errorf("invalid fraction token %q", token)
		}
		return Fr(n), nil
	default:
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return Size{}, fmt.Errorf("invalid size token %q", token)
		}
		return Cells(n), nil
	}
}

// MustSize is ParseSize for static configuration; it panics on a bad token.
func MustSize(token string) Size {
	s, err := ParseSize(token)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSizes parses a list of tokens.
func ParseSizes(tokens ...string) ([]Size, error) {
	out := make([]Size, len(tokens))
	for i, tok := range tokens {
		s, err := ParseSize(tok)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// ResolveSizes distributes span cells over the given sizes and returns one
// integer width per entry. The span is the space left after the caller has
// removed any fixed gaps.
//
// The algorithm is deliberately order-independent and two-pass:
//
//  1. fixed sizes take their literal value
//  2. percentages resolve against the ORIGINAL span (not the remainder)
//  3. fractions split whatever is left after 1 and 2, weight-proportionally
//
// All divisions floor. Negative remainders clamp to zero. An all-fixed set
// may overflow the span; that is the caller's problem, no rebalancing
// happens here. Leftover space with no fraction entries stays unused.
func ResolveSizes(sizes []Size, span int) []int {
	out := make([]int, len(sizes))

	fixedTotal := 0
	fractionWeight := 0
	for _, s := range sizes {
		switch s.Kind {
		case SizeFixed:
			fixedTotal += s.Value
		case SizeFraction:
			fractionWeight += s.Value
		}
	}

	afterFixed := span - fixedTotal
	if afterFixed < 0 {
		afterFixed = 0
	}

	percentTotal := 0
	for _, s := range sizes {
		if s.Kind == SizePercent {
			percentTotal += span * s.Value / 100
		}
	}

	remaining := afterFixed - percentTotal
	if remaining < 0 {
		remaining = 0
	}

	fractionUnit := 0
	if fractionWeight > 0 {
		fractionUnit = remaining / fractionWeight
	}

	for i, s := range sizes {
		switch s.Kind {
		case SizeFixed:
			out[i] = s.Value
		case SizePercent:
			out[i] = span * s.Value / 100
		case SizeFraction:
			out[i] = s.Value * fractionUnit
		}
	}
	return out
}
