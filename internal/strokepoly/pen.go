package strokepoly

import (
	"math"
	"sort"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/style"
)

// penVertex is one vertex of the pen polygon: a device-space offset
// from the join or cap point it fans around, plus the angle of that
// offset (used to find the vertices a fan should walk through).
type penVertex struct {
	offset fixed.Point
	angle  float64
}

// pen approximates, in device space, a circle of the stroke's half
// width transformed by the CTM — an ellipse for an anisotropic scale.
// Round joins and caps fan their arc through the subset of these
// vertices that lies between the two faces being joined.
type pen struct {
	vertices []penVertex
}

// newPen builds a pen with enough vertices that the chord deviation
// between consecutive vertices and the true circle stays within
// tolerance (comac's pen vertex count derivation, reconstructed here
// since comac-pen.c is absent from the pack): an angular step between
// consecutive vertices of 2*acos(1 - tolerance/halfWidth) keeps the
// sagitta under tolerance.
func newPen(halfWidth, tolerance float64, m style.Matrix) *pen {
	n := 8
	if halfWidth > tolerance && tolerance > 0 {
		cosHalf := 1 - tolerance/halfWidth
		if cosHalf < -1 {
			cosHalf = -1
		}
		if cosHalf > 1 {
			cosHalf = 1
		}
		step := 2 * math.Acos(cosHalf)
		if step > 0 {
			n = int(math.Ceil(2 * math.Pi / step))
		}
	}
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}

	verts := make([]penVertex, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ux, uy := halfWidth*math.Cos(a), halfWidth*math.Sin(a)
		dx, dy := m.TransformDistance(ux, uy)
		verts = append(verts, penVertex{
			offset: fixed.PointFromFloat64(dx, dy, 0),
			angle:  math.Atan2(dy, dx),
		})
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i].angle < verts[j].angle })
	return &pen{vertices: verts}
}

func normalizeAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// between walks the pen's vertices strictly between angle `from` and
// angle `to`, in the direction ccw (increasing angle) or cw
// (decreasing angle), returning their offsets in walking order.
func (p *pen) between(from, to float64, ccw bool) []fixed.Point {
	from, to = normalizeAngle(from), normalizeAngle(to)
	var out []fixed.Point
	if ccw {
		for _, v := range p.vertices {
			a := v.angle
			if a <= from {
				a += 2 * math.Pi
			}
			target := to
			if target <= from {
				target += 2 * math.Pi
			}
			if a > from && a < target {
				out = append(out, v.offset)
			}
		}
		sort.Slice(out, func(i, j int) bool {
			ai, aj := math.Atan2(float64(out[i].Y), float64(out[i].X)), math.Atan2(float64(out[j].Y), float64(out[j].X))
			if ai <= from {
				ai += 2 * math.Pi
			}
			if aj <= from {
				aj += 2 * math.Pi
			}
			return ai < aj
		})
		return out
	}

	for _, v := range p.vertices {
		a := v.angle
		if a >= from {
			a -= 2 * math.Pi
		}
		target := to
		if target >= from {
			target -= 2 * math.Pi
		}
		if a < from && a > target {
			out = append(out, v.offset)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := math.Atan2(float64(out[i].Y), float64(out[i].X)), math.Atan2(float64(out[j].Y), float64(out[j].X))
		if ai >= from {
			ai -= 2 * math.Pi
		}
		if aj >= from {
			aj -= 2 * math.Pi
		}
		return ai > aj
	})
	return out
}
