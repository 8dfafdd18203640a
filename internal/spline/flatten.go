package spline

import (
	"math"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
)

// maxDepth bounds recursion so a pathological tolerance (or a curve with
// numerically coincident midpoints) cannot recurse forever; spec.md 4.S
// requires the bound be expressed in terms of log2(control polygon
// length/tolerance), which 32 comfortably covers for any representable
// fixed-point coordinate.
const maxDepth = 32

// point is the float64 working representation used during subdivision;
// the caller-facing API is in terms of fixed.Point, converted at the
// boundary so the recursive arithmetic isn't forced through fixed-point's
// narrower intermediate types.
type point struct{ x, y float64 }

func toPoint(p fixed.Point) point {
	x, y := p.ToFloat64()
	return point{x, y}
}

func (p point) toFixed() fixed.Point {
	return fixed.PointFromFloat64(p.x, p.y, 0)
}

func lerp(a, b point, t float64) point {
	return point{a.x + (b.x-a.x)*t, a.y + (b.y-a.y)*t}
}

func (p point) sub(q point) point { return point{p.x - q.x, p.y - q.y} }

// distanceToChord returns the perpendicular distance of p from the line
// through a and b. If a == b, it returns the distance from p to a.
func distanceToChord(p, a, b point) float64 {
	ab := b.sub(a)
	abLen := math.Hypot(ab.x, ab.y)
	if abLen < 1e-12 {
		d := p.sub(a)
		return math.Hypot(d.x, d.y)
	}
	// |cross(ab, ap)| / |ab|
	ap := p.sub(a)
	cross := ab.x*ap.y - ab.y*ap.x
	return math.Abs(cross) / abLen
}

// Tangent is a unit (or zero, for a fully degenerate curve) direction
// vector.
type Tangent struct{ Dx, Dy float64 }

func tangentOf(from, to point) Tangent {
	d := to.sub(from)
	l := math.Hypot(d.x, d.y)
	if l < 1e-12 {
		return Tangent{}
	}
	return Tangent{d.x / l, d.y / l}
}

// Result summarizes a flattened cubic: the sequence of emitted points is
// delivered through the callback, while InitialTangent/FinalTangent are
// returned directly.
type Result struct {
	InitialTangent Tangent
	FinalTangent   Tangent
	// Degenerate is true when the curve collapsed to (at most) a single
	// line segment because all control points were numerically coincident.
	Degenerate bool
}

// Flatten decomposes the cubic Bezier p0-p1-p2-p3 into a polyline whose
// chord deviation from the true curve is at most tolerance (in user-space
// units, matching spec.md 4.S), invoking emit once per produced vertex
// after p0 (p0 itself is never re-emitted — the caller already has it as
// its current point). tolerance must be positive.
func Flatten(p0, p1, p2, p3 fixed.Point, tolerance float64, emit func(p fixed.Point)) Result {
	a, b, c, d := toPoint(p0), toPoint(p1), toPoint(p2), toPoint(p3)

	if isDegenerate(a, b, c, d) {
		emit(d.toFixed())
		return Result{
			InitialTangent: degenerateTangent(a, b, c, d),
			FinalTangent:   degenerateTangent(d, c, b, a),
			Degenerate:     true,
		}
	}

	initial := degenerateTangent(a, b, c, d)
	final := degenerateTangent(d, c, b, a)
	// The final tangent points from p3 back toward the curve; the caller
	// wants the outward direction of travel at the endpoint.
	final = Tangent{-final.Dx, -final.Dy}

	flattenRec(a, b, c, d, tolerance, 0, emit)

	return Result{InitialTangent: initial, FinalTangent: final}
}

func isDegenerate(a, b, c, d point) bool {
	const eps = 1e-9
	return math.Hypot(b.x-a.x, b.y-a.y) < eps &&
		math.Hypot(c.x-a.x, c.y-a.y) < eps &&
		math.Hypot(d.x-a.x, d.y-a.y) < eps
}

// degenerateTangent returns the best available tangent for a collapsed
// curve: the direction toward the first control point that differs from
// the origin, or the zero vector if all four coincide.
func degenerateTangent(origin, b, c, d point) Tangent {
	if t := tangentOf(origin, b); t != (Tangent{}) {
		return t
	}
	if t := tangentOf(origin, c); t != (Tangent{}) {
		return t
	}
	return tangentOf(origin, d)
}

func flattenRec(p0, p1, p2, p3 point, tolerance float64, depth int, emit func(fixed.Point)) {
	d1 := distanceToChord(p1, p0, p3)
	d2 := distanceToChord(p2, p0, p3)
	if depth >= maxDepth || math.Max(d1, d2) <= tolerance {
		emit(p3.toFixed())
		return
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)

	if coincident(p0, s) || coincident(s, p3) {
		// Numerically coincident midpoint: recursing further would not
		// change the result, only the recursion depth.
		emit(p3.toFixed())
		return
	}

	flattenRec(p0, q0, r0, s, tolerance, depth+1, emit)
	flattenRec(s, r1, q2, p3, tolerance, depth+1, emit)
}

func coincident(a, b point) bool {
	return math.Abs(a.x-b.x) < 1e-12 && math.Abs(a.y-b.y) < 1e-12
}

// TangentToSlope converts a unit Tangent back to a geom.Slope with an
// arbitrary positive length, for callers that need a Slope rather than a
// raw direction (the stroker's join/cap geometry works in Slope terms).
func TangentToSlope(t Tangent, length fixed.Scalar) geom.Slope {
	return geom.Slope{
		Dx: fixed.Scalar(float64(length) * t.Dx),
		Dy: fixed.Scalar(float64(length) * t.Dy),
	}
}
