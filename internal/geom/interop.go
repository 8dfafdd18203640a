package geom

import (
	"github.com/gogpu/pathtess/internal/fixed"

	ximage "golang.org/x/image/math/fixed"
)

// scaleShift is the bit shift converting between this package's Q24.8
// scalars and x/image/math/fixed's 26.6 format: both are fixed-point,
// differing only in fractional width (8 bits here, 6 there).
const scaleShift = fixed.Shift - 6

// ToXImagePoint converts a fixed.Point into x/image/math/fixed's
// Point26_6, the coordinate type golang.org/x/image/vector and related
// Go rasterizers accept. Sub-64th-pixel precision beyond what 26.6 can
// hold is rounded away.
func ToXImagePoint(p fixed.Point) ximage.Point26_6 {
	return ximage.Point26_6{
		X: ximage.Int26_6(p.X >> scaleShift),
		Y: ximage.Int26_6(p.Y >> scaleShift),
	}
}

// ToXImageRectangle converts a Box into x/image/math/fixed's
// Rectangle26_6, letting callers hand boxes/trapezoid extents straight
// to an x/image-based rasterizer without hand-rolling the fixed-point
// rescale themselves.
func (b Box) ToXImageRectangle() ximage.Rectangle26_6 {
	return ximage.Rectangle26_6{
		Min: ToXImagePoint(b.P1),
		Max: ToXImagePoint(b.P2),
	}
}

// FromXImagePoint converts an x/image/math/fixed Point26_6 back into
// this package's Q24.8 fixed.Point.
func FromXImagePoint(p ximage.Point26_6) fixed.Point {
	return fixed.Pt(fixed.Scalar(p.X)<<scaleShift, fixed.Scalar(p.Y)<<scaleShift)
}
