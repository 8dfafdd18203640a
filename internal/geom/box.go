package geom

import "github.com/gogpu/pathtess/internal/fixed"

// Box is an axis-aligned rectangle. Canonical form has P1 <= P2
// componentwise; non-canonical (free) form is permitted only while a path
// store is still accumulating extents.
type Box struct {
	P1, P2 fixed.Point
}

// NewBox builds a canonical Box from two arbitrary corners.
func NewBox(a, b fixed.Point) Box {
	box := Box{P1: a, P2: b}
	box.Canonicalize()
	return box
}

// Canonicalize reorders P1/P2 in place so P1 <= P2 componentwise.
func (b *Box) Canonicalize() {
	if b.P1.X > b.P2.X {
		b.P1.X, b.P2.X = b.P2.X, b.P1.X
	}
	if b.P1.Y > b.P2.Y {
		b.P1.Y, b.P2.Y = b.P2.Y, b.P1.Y
	}
}

// Empty reports whether the box has zero width or height.
func (b Box) Empty() bool {
	return b.P1.X >= b.P2.X || b.P1.Y >= b.P2.Y
}

// Width returns P2.X - P1.X.
func (b Box) Width() fixed.Scalar { return b.P2.X - b.P1.X }

// Height returns P2.Y - P1.Y.
func (b Box) Height() fixed.Scalar { return b.P2.Y - b.P1.Y }

// ContainsPoint reports whether p lies inside or on the boundary of b.
func (b Box) ContainsPoint(p fixed.Point) bool {
	return b.P1.X <= p.X && p.X <= b.P2.X && b.P1.Y <= p.Y && p.Y <= b.P2.Y
}

// ContainsBox reports whether other lies entirely inside or on the
// boundary of b.
func (b Box) ContainsBox(other Box) bool {
	return b.P1.X <= other.P1.X && other.P2.X <= b.P2.X &&
		b.P1.Y <= other.P1.Y && other.P2.Y <= b.P2.Y
}

// AddPoint grows b (assumed already canonical) to also contain p.
func (b *Box) AddPoint(p fixed.Point) {
	if p.X < b.P1.X {
		b.P1.X = p.X
	} else if p.X > b.P2.X {
		b.P2.X = p.X
	}
	if p.Y < b.P1.Y {
		b.P1.Y = p.Y
	} else if p.Y > b.P2.Y {
		b.P2.Y = p.Y
	}
}

// AddBox grows b to also contain other.
func (b *Box) AddBox(other Box) {
	if other.P1.X < b.P1.X {
		b.P1.X = other.P1.X
	}
	if other.P2.X > b.P2.X {
		b.P2.X = other.P2.X
	}
	if other.P1.Y < b.P1.Y {
		b.P1.Y = other.P1.Y
	}
	if other.P2.Y > b.P2.Y {
		b.P2.Y = other.P2.Y
	}
}

// AddCurveTo grows b to contain a cubic Bezier from a through control
// points b2, c to endpoint d. A cubic's
// convex hull is the convex hull of its four control points, so growing by
// the control polygon is already a tight, conservative bound — no
// subdivision is needed to stay correct, only to stay tight when a control
// point overshoots the final curve by a wide margin. spec.md 4.G only
// requires correctness, so the control-polygon bound is used directly.
func (b *Box) AddCurveTo(a, b2, c, d fixed.Point) {
	b.AddPoint(a)
	b.AddPoint(b2)
	b.AddPoint(c)
	b.AddPoint(d)
}

// RoundToIntegerRect rounds b outward to the nearest pixel-aligned box:
// P1 rounds down (floor), P2 rounds up (ceil).
func (b Box) RoundToIntegerRect() Box {
	return Box{
		P1: fixed.Point{X: fixed.Floor(b.P1.X), Y: fixed.Floor(b.P1.Y)},
		P2: fixed.Point{X: fixed.Ceil(b.P2.X), Y: fixed.Ceil(b.P2.Y)},
	}
}

// IsPixelAligned reports whether all four box components have zero
// fractional bits.
func (b Box) IsPixelAligned() bool {
	return fixed.IsPixelAligned(b.P1.X) && fixed.IsPixelAligned(b.P1.Y) &&
		fixed.IsPixelAligned(b.P2.X) && fixed.IsPixelAligned(b.P2.Y)
}

// IntersectsSegment reports whether line has a point inside or on the
// boundary of b, using only 64-bit intermediates (the Liang–Barsky
// parametric clip test, evaluated without actually computing the clipped
// endpoints).
func (b Box) IntersectsSegment(l Line) bool {
	dx := int64(l.P2.X) - int64(l.P1.X)
	dy := int64(l.P2.Y) - int64(l.P1.Y)

	tMin, tMax := int64(0), int64(1<<32)
	const scale = int64(1 << 32)

	clip := func(p, q int64) bool {
		if p == 0 {
			return q >= 0
		}
		// t = q/p scaled by `scale` to stay in integer arithmetic.
		t := q * scale / p
		if p < 0 {
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMax {
				tMax = t
			}
		}
		return tMin <= tMax
	}

	x1 := int64(l.P1.X)
	y1 := int64(l.P1.Y)

	if !clip(-dx, x1-int64(b.P1.X)) {
		return false
	}
	if !clip(dx, int64(b.P2.X)-x1) {
		return false
	}
	if !clip(-dy, y1-int64(b.P1.Y)) {
		return false
	}
	if !clip(dy, int64(b.P2.Y)-y1) {
		return false
	}
	return tMin <= tMax
}
