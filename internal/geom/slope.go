package geom

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/wide"
)

// Slope represents the direction from one point to another as a pair of
// fixed-point deltas, without normalizing — comparisons between slopes use
// cross products, never division, so no precision is lost.
type Slope struct {
	Dx, Dy fixed.Scalar
}

// SlopeBetween returns the Slope from a to b.
func SlopeBetween(a, b fixed.Point) Slope {
	return Slope{Dx: b.X - a.X, Dy: b.Y - a.Y}
}

// IsZero reports whether the slope has zero length (a degenerate segment).
func (s Slope) IsZero() bool { return s.Dx == 0 && s.Dy == 0 }

// cross64 returns a.Dx*b.Dy - b.Dx*a.Dy as an exact 64-bit value.
func cross64(a, b Slope) int64 {
	return wide.MulS32x32(a.Dx, b.Dy) - wide.MulS32x32(b.Dx, a.Dy)
}

// SlopeCompare returns -1, 0 or +1 comparing the direction of a against b,
// by the sign of a.dx*b.dy - b.dx*a.dy.
//
// This comparator has a documented asymmetry (spec.md 4.G): a pure
// vertical slope (Dx == 0) compares to any other slope purely by the sign
// of the other slope's Dx, since a vertical line has no well-defined
// "angle" to cross-multiply against. Where both edges share a common top
// but differ at the bottom, SlopeCompare answers "which is more
// clockwise/rightward"; comac additionally reverses the sense of that
// answer for edges sharing a common bottom instead of a common top, since
// the sweep line's x-ordering convention cares about left-to-right order
// at the *current* y, which sits at the top of a newly started edge but at
// the bottom of one about to stop. Callers that need the bottom-anchored
// sense should negate the result of SlopeCompare, not swap the arguments
// (swapping also negates the tie-break id ordering used by the hull
// builder, which would be wrong there).
func SlopeCompare(a, b Slope) int {
	if a.Dx == 0 && a.Dy == 0 {
		return 0
	}
	if b.Dx == 0 && b.Dy == 0 {
		return 0
	}
	if a.Dx == 0 {
		switch {
		case b.Dx > 0:
			return -1
		case b.Dx < 0:
			return 1
		default:
			return 0
		}
	}
	if b.Dx == 0 {
		switch {
		case a.Dx > 0:
			return 1
		case a.Dx < 0:
			return -1
		default:
			return 0
		}
	}
	c := cross64(a, b)
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}

// SlopeBackwards reports whether b points in (roughly) the opposite
// direction of a, for a pair already known to be collinear via
// SlopeCompare == 0. Used to refuse merging two collinear path segments
// that fold back on each other, since a stroker needs the turn-around
// to produce a cap rather than silently disappearing.
func SlopeBackwards(a, b Slope) bool {
	dot := wide.MulS32x32(a.Dx, b.Dx) + wide.MulS32x32(a.Dy, b.Dy)
	return dot < 0
}

// LineCompareAtY orders two edges by their x coordinate at height y. Two
// edges can land on the same x at y without crossing there — most commonly
// because they share an endpoint exactly at y, as when two path edges meet
// at a vertex — so an x tie is broken by which edge leans further right
// immediately below y, i.e. by SlopeCompare, matching the ordering
// comac's sweep line keeps between edges that currently coincide. Only a
// genuine tie in slope too (collinear edges) falls through to comparing
// Bottom, where the edge that extends further down sorts first, since of
// two collinear edges sharing a top, the one that will still be active
// after the other stops should sort first.
func LineCompareAtY(a, b Edge, y fixed.Scalar) int {
	ax := a.XAtY(y)
	bx := b.XAtY(y)
	switch {
	case ax < bx:
		return -1
	case ax > bx:
		return 1
	}
	if c := SlopeCompare(a.Line.Slope(), b.Line.Slope()); c != 0 {
		return c
	}
	switch {
	case a.Bottom > b.Bottom:
		return -1
	case a.Bottom < b.Bottom:
		return 1
	default:
		return 0
	}
}
