package rectstroke

import "github.com/gogpu/pathtess/internal/fixed"

// segFlags mirror comac's segment bit flags: HORIZONTAL, FORWARDS and
// JOIN.
type segFlags uint8

const (
	flagHorizontal segFlags = 1 << iota
	flagForwards
	flagJoin
)

// segment is one recorded horizontal or vertical run between two
// vertices of the input path, in original (not axis-sorted) point
// order.
type segment struct {
	p1, p2 fixed.Point
	flags  segFlags
}

func newSegment(p1, p2 fixed.Point) segment {
	var f segFlags
	if p1.Y == p2.Y {
		f |= flagHorizontal
		if p2.X > p1.X {
			f |= flagForwards
		}
	} else if p2.Y > p1.Y {
		f |= flagForwards
	}
	return segment{p1: p1, p2: p2, flags: f}
}

func (s segment) horizontal() bool { return s.flags&flagHorizontal != 0 }
func (s segment) forwards() bool   { return s.flags&flagForwards != 0 }
func (s segment) hasJoin() bool    { return s.flags&flagJoin != 0 }

// markJoins sets flagJoin on every segment that has a successor to
// join with: every segment but the last in an open subpath, every
// segment including the last in a closed one (the last joins back to
// the first).
func markJoins(segs []segment, closed bool) {
	for i := range segs {
		if i < len(segs)-1 || closed {
			segs[i].flags |= flagJoin
		}
	}
}
