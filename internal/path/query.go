package path

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
)

// isQuad reports whether the path's op stream has the shape a
// move+3 lines (optionally trailed by a closing line/close/move-to)
// would produce — the precondition every box/rectangle detector below
// shares, before it goes on to check the actual point values.
func (p *Path) isQuad() bool {
	if len(p.ops) < 4 || len(p.ops) > 6 {
		return false
	}
	if p.ops[0] != OpMoveTo || p.ops[1] != OpLineTo ||
		p.ops[2] != OpLineTo || p.ops[3] != OpLineTo {
		return false
	}
	if len(p.ops) > 4 {
		switch p.ops[4] {
		case OpLineTo:
			if p.pts.at(4) != p.pts.at(0) {
				return false
			}
		case OpClose:
		default:
			return false
		}
		if len(p.ops) == 6 {
			if p.ops[5] != OpMoveTo && p.ops[5] != OpClose {
				return false
			}
		}
	}
	return true
}

// pointsFormRect reports whether four points, taken in order, trace an
// axis-aligned rectangle (in either winding direction).
func pointsFormRect(p0, p1, p2, p3 fixed.Point) bool {
	if p0.Y == p1.Y && p1.X == p2.X && p2.Y == p3.Y && p3.X == p0.X {
		return true
	}
	if p0.X == p1.X && p1.Y == p2.Y && p2.X == p3.X && p3.Y == p0.Y {
		return true
	}
	return false
}

// IsBox reports whether the path is a single rectilinear subpath tracing
// a box, returning its canonical bounds.
func (p *Path) IsBox() (geom.Box, bool) {
	if !p.fillIsRectilinear || !p.isQuad() {
		return geom.Box{}, false
	}
	p0, p1, p2, p3 := p.pts.at(0), p.pts.at(1), p.pts.at(2), p.pts.at(3)
	if !pointsFormRect(p0, p1, p2, p3) {
		return geom.Box{}, false
	}
	return geom.NewBox(p0, p2), true
}

// IsRectangle is IsBox restricted to paths that explicitly close the
// subpath (a trailing LineTo or ClosePath/MoveTo), excluding the
// degenerate 4-op "open quad" case.
func (p *Path) IsRectangle() (geom.Box, bool) {
	box, ok := p.IsBox()
	if !ok || len(p.ops) <= 4 {
		return geom.Box{}, false
	}
	return box, true
}

// IsStrokeBox reports whether the path is exactly
// move, line, line, line, close — the shape rect stroking always
// produces for an axis-aligned rectangle — returning its canonical
// bounds.
func (p *Path) IsStrokeBox() (geom.Box, bool) {
	if !p.fillIsRectilinear || len(p.ops) != 5 {
		return geom.Box{}, false
	}
	if p.ops[0] != OpMoveTo || p.ops[1] != OpLineTo || p.ops[2] != OpLineTo ||
		p.ops[3] != OpLineTo || p.ops[4] != OpClose {
		return geom.Box{}, false
	}
	p0, p1, p2, p3 := p.pts.at(0), p.pts.at(1), p.pts.at(2), p.pts.at(3)
	if !pointsFormRect(p0, p1, p2, p3) {
		return geom.Box{}, false
	}
	return geom.NewBox(p0, p2), true
}

// BoxIter walks a path's op stream one subpath at a time, extracting
// each as a fill box when it has that shape — the multi-rectangle
// analogue of IsBox, used when a path is a union of disjoint rectangles
// (e.g. a clip region expressed as a path).
type BoxIter struct {
	p     *Path
	opIdx int
	ptIdx int
}

// NewBoxIter returns an iterator positioned at the start of p's op
// stream.
func (p *Path) NewBoxIter() BoxIter { return BoxIter{p: p} }

// AtEnd reports whether the iterator has consumed the whole op stream.
func (it *BoxIter) AtEnd() bool { return it.opIdx >= len(it.p.ops) }

// NextFillBox extracts the next subpath as a fill box, advancing the
// iterator past it. It returns false as soon as a subpath doesn't have
// box shape; the iterator may by then have advanced partway into that
// subpath, so a caller falls back to the general tessellator for the
// whole path.
func (it *BoxIter) NextFillBox() (geom.Box, bool) {
	ops := it.p.ops
	if it.opIdx >= len(ops) || ops[it.opIdx] != OpMoveTo {
		return geom.Box{}, false
	}
	p0 := it.p.pts.at(it.ptIdx)
	it.ptIdx++
	it.opIdx++

	if it.opIdx >= len(ops) || ops[it.opIdx] != OpLineTo {
		return geom.Box{}, false
	}
	p1 := it.p.pts.at(it.ptIdx)
	it.ptIdx++
	it.opIdx++

	if it.opIdx >= len(ops) {
		return geom.NewBox(p0, p0), true
	}
	switch ops[it.opIdx] {
	case OpClose:
		it.opIdx++
		return geom.NewBox(p0, p0), true
	case OpMoveTo:
		return geom.NewBox(p0, p0), true
	case OpLineTo:
	default:
		return geom.Box{}, false
	}

	p2 := it.p.pts.at(it.ptIdx)
	it.ptIdx++
	it.opIdx++

	if it.opIdx >= len(ops) || ops[it.opIdx] != OpLineTo {
		return geom.Box{}, false
	}
	p3 := it.p.pts.at(it.ptIdx)
	it.ptIdx++
	it.opIdx++

	if it.opIdx < len(ops) {
		switch ops[it.opIdx] {
		case OpLineTo:
			p4 := it.p.pts.at(it.ptIdx)
			if p4 != p0 {
				return geom.Box{}, false
			}
			it.ptIdx++
			it.opIdx++
		case OpClose:
			it.opIdx++
		case OpMoveTo:
		default:
			return geom.Box{}, false
		}
	}

	if p0.Y == p1.Y && p1.X == p2.X && p2.Y == p3.Y && p3.X == p0.X {
		return geom.NewBox(p0, p2), true
	}
	if p0.X == p1.X && p1.Y == p2.Y && p2.X == p3.X && p3.Y == p0.Y {
		return geom.NewBox(p1, p3), true
	}
	return geom.Box{}, false
}
