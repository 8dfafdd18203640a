package strokepoly

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/polygon"
	"github.com/gogpu/pathtess/internal/style"
)

// addCap closes an open subpath end at f. leading selects the
// subpath's start (needing an outward-facing vector, so the face is
// used mirrored: cw/ccw swapped and the user-space vector negated) versus its
// end (used as computed), matching comac's add_leading_cap/
// add_trailing_cap split.
func addCap(poly *polygon.Polygon, pn *pen, f face, capStyle style.LineCap, halfWidth float64, m style.Matrix, leading bool) error {
	ccw, cw := f.ccw, f.cw
	usr := f.usrVector
	if leading {
		ccw, cw = f.cw, f.ccw
		usr = [2]float64{-usr[0], -usr[1]}
	}

	switch capStyle {
	case style.CapRound:
		return addFan(poly, pn, f.point, cw, ccw, false)

	case style.CapSquare:
		fx, fy := m.TransformDistance(usr[0]*halfWidth, usr[1]*halfWidth)
		fvec := fixed.PointFromFloat64(fx, fy, 0)
		q0 := ccw
		q1 := ccw.Add(fvec)
		q2 := cw.Add(fvec)
		q3 := cw
		if err := poly.AddExternalEdge(q0, q1); err != nil {
			return err
		}
		if err := poly.AddExternalEdge(q1, q2); err != nil {
			return err
		}
		return poly.AddExternalEdge(q2, q3)

	default: // CapButt
		return poly.AddExternalEdge(ccw, cw)
	}
}
