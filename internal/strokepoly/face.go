package strokepoly

import (
	"math"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/style"
)

// face is the stroke boundary at one point along the path: point is the
// path vertex itself, ccw/cw are the two points offset half the line
// width to either side, and usrVector/devVector are the unit tangent in
// user space and device space respectively — usrVector drives the miter
// dot-product test and the square cap extension (both defined in user
// space so they don't skew under anisotropic scale), devVector drives
// fan angle selection, which must be judged in the space the pen's
// vertices live in.
type face struct {
	point, ccw, cw fixed.Point
	usrVector      [2]float64
	devVector      [2]float64
}

// newFace computes the face at point for a segment whose device-space
// delta is (ddx, ddy). mInv is the CTM inverse, used to recover the
// segment's user-space direction (the line width is specified in user
// space, so the perpendicular offset must be built there and then
// mapped forward through m to device space, exactly as comac's
// _compute_face does). Returns ok=false for a degenerate (zero-length)
// delta.
func newFace(point fixed.Point, ddx, ddy, halfWidth float64, m, mInv style.Matrix, detPositive bool) (face, bool) {
	if ddx == 0 && ddy == 0 {
		return face{}, false
	}

	ux, uy := mInv.TransformDistance(ddx, ddy)
	mag := math.Hypot(ux, uy)
	if mag < 1e-12 {
		return face{}, false
	}
	ux, uy = ux/mag, uy/mag

	var fx, fy float64
	if detPositive {
		fx, fy = -uy*halfWidth, ux*halfWidth
	} else {
		fx, fy = uy*halfWidth, -ux*halfWidth
	}
	ox, oy := m.TransformDistance(fx, fy)
	offsetCCW := fixed.PointFromFloat64(ox, oy, 0)
	offsetCW := fixed.PointFromFloat64(-ox, -oy, 0)

	f := face{
		point:     point,
		ccw:       point.Add(offsetCCW),
		cw:        point.Add(offsetCW),
		usrVector: [2]float64{ux, uy},
		devVector: [2]float64{ddx, ddy},
	}
	dmag := math.Hypot(ddx, ddy)
	if dmag > 1e-12 {
		f.devVector = [2]float64{ddx / dmag, ddy / dmag}
	}
	return f, true
}

func detPositiveOf(m style.Matrix) bool {
	return m.Determinant() >= 0
}
