package strokepoly

import (
	"math"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/polygon"
	"github.com/gogpu/pathtess/internal/style"
)

// turnIsClockwise reports which side of the join is the outer, convex
// corner: true when it's the ccw-offset side, false when it's the
// cw-offset side. Judged from the sign of the 2D cross product of the
// two device tangents, the same turn-direction test the teacher's
// offset-curve expander uses (ab.Cross(cd)) rather than comac's
// fixed-point slope-compare routine, which lives in the absent
// comac-slope.c.
func turnIsClockwise(in, out face) bool {
	cross := in.devVector[0]*out.devVector[1] - in.devVector[1]*out.devVector[0]
	return cross < 0
}

// addJoin connects in's trailing face to out's leading face at a
// shared vertex, filling the outer corner with a bevel, miter or round
// fan and closing the inner corner with a pair of edges through the
// shared point, per comac's _comac_stroker_join.
func addJoin(poly *polygon.Polygon, pn *pen, in, out face, st style.Stroke) error {
	if in.cw == out.cw && in.ccw == out.ccw {
		return nil
	}

	clockwise := turnIsClockwise(in, out)

	var inpt, outpt fixed.Point
	if clockwise {
		if err := poly.AddExternalEdge(out.cw, in.point); err != nil {
			return err
		}
		if err := poly.AddExternalEdge(in.point, in.cw); err != nil {
			return err
		}
		inpt, outpt = in.ccw, out.ccw
	} else {
		if err := poly.AddExternalEdge(in.ccw, in.point); err != nil {
			return err
		}
		if err := poly.AddExternalEdge(in.point, out.ccw); err != nil {
			return err
		}
		inpt, outpt = in.cw, out.cw
	}

	switch st.LineJoin {
	case style.JoinRound:
		return addFan(poly, pn, in.point, inpt, outpt, clockwise)

	case style.JoinMiter:
		dot := -in.usrVector[0]*out.usrVector[0] - in.usrVector[1]*out.usrVector[1]
		ml := st.MiterLimit
		if 2 <= ml*ml*(1-dot) {
			if mx, my, ok := miterPoint(in, out, inpt, outpt); ok {
				mp := fixed.PointFromFloat64(mx, my, 0)
				if clockwise {
					if err := poly.AddExternalEdge(inpt, mp); err != nil {
						return err
					}
					return poly.AddExternalEdge(mp, outpt)
				}
				if err := poly.AddExternalEdge(outpt, mp); err != nil {
					return err
				}
				return poly.AddExternalEdge(mp, inpt)
			}
		}
		fallthrough

	default: // JoinBevel
		if clockwise {
			return poly.AddExternalEdge(inpt, outpt)
		}
		return poly.AddExternalEdge(outpt, inpt)
	}
}

// miterPoint computes the outer miter apex as the intersection of the
// incoming and outgoing outer edges (in user-space-derived device
// slopes, matching comac's approach of transforming the user-space
// tangent through the CTM rather than differencing already-rounded
// device points). ok is false when the two outer edges are too close
// to parallel, or the resulting apex falls outside the wedge between
// the two faces — both cases the caller bevels instead.
func miterPoint(in, out face, inpt, outpt fixed.Point) (mx, my float64, ok bool) {
	x1, y1 := fixed.ToFloat64(inpt.X), fixed.ToFloat64(inpt.Y)
	x2, y2 := fixed.ToFloat64(outpt.X), fixed.ToFloat64(outpt.Y)
	dx1, dy1 := in.devVector[0], in.devVector[1]
	dx2, dy2 := out.devVector[0], out.devVector[1]

	denom := dx1*dy2 - dx2*dy1
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	my = ((x2-x1)*dy1*dy2 - y2*dx2*dy1 + y1*dx1*dy2) / denom
	if math.Abs(dy1) >= math.Abs(dy2) {
		mx = (my-y1)*dx1/dy1 + x1
	} else {
		mx = (my-y2)*dx2/dy2 + x2
	}

	ix, iy := fixed.ToFloat64(in.point.X), fixed.ToFloat64(in.point.Y)
	fdx1, fdy1 := x1-ix, y1-iy
	fdx2, fdy2 := x2-ix, y2-iy
	mdx, mdy := mx-ix, my-iy

	if slopeSign(fdx1, fdy1, mdx, mdy) != slopeSign(fdx2, fdy2, mdx, mdy) {
		return mx, my, true
	}
	return 0, 0, false
}

func slopeSign(dx1, dy1, dx2, dy2 float64) int {
	c := dx1*dy2 - dx2*dy1
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}

// addFan tessellates a round join or cap: the arc of pen vertices
// between inpt and outpt, walked in the direction the turn requires.
// If no pen vertex lies in range, it falls back to a bevel so the
// boundary stays leak-free.
func addFan(poly *polygon.Polygon, pn *pen, midpt, inpt, outpt fixed.Point, clockwise bool) error {
	inAngle := math.Atan2(offsetY(inpt, midpt), offsetX(inpt, midpt))
	outAngle := math.Atan2(offsetY(outpt, midpt), offsetX(outpt, midpt))

	mid := pn.between(inAngle, outAngle, !clockwise)
	if len(mid) == 0 {
		if clockwise {
			return poly.AddExternalEdge(inpt, outpt)
		}
		return poly.AddExternalEdge(outpt, inpt)
	}

	last := inpt
	if clockwise {
		for _, off := range mid {
			p := midpt.Add(off)
			if err := poly.AddExternalEdge(last, p); err != nil {
				return err
			}
			last = p
		}
		return poly.AddExternalEdge(last, outpt)
	}

	for i := len(mid) - 1; i >= 0; i-- {
		p := midpt.Add(mid[i])
		if err := poly.AddExternalEdge(p, last); err != nil {
			return err
		}
		last = p
	}
	return poly.AddExternalEdge(outpt, last)
}

func offsetX(p, mid fixed.Point) float64 { return fixed.ToFloat64(p.X - mid.X) }
func offsetY(p, mid fixed.Point) float64 { return fixed.ToFloat64(p.Y - mid.Y) }
