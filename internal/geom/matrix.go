package geom

import "github.com/gogpu/pathtess/internal/fixed"

// Matrix is a 2-D affine transform in the standard six-element form:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// Coordinates are transformed in float64; the fixed-point path store
// converts at the boundary, matching how comac keeps its path storage in
// fixed point but its matrices in double precision.
type Matrix struct {
	XX, YX, XY, YY, X0, Y0 float64
}

// Identity is the no-op transform.
var Identity = Matrix{XX: 1, YY: 1}

// IsRectilinear reports whether the matrix has no rotation or shear, so
// every axis-aligned segment it's applied to stays axis-aligned.
func (m Matrix) IsRectilinear() bool { return m.YX == 0 && m.XY == 0 }

// TransformPoint maps a point through the matrix.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

// TransformDistance maps a vector through the matrix's linear part only,
// ignoring translation.
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	return m.XX*dx + m.XY*dy, m.YX*dx + m.YY*dy
}

// TransformFixedPoint maps a fixed-point point through the matrix,
// converting to and from float64 at the boundary.
func (m Matrix) TransformFixedPoint(p fixed.Point) fixed.Point {
	x, y := p.ToFloat64()
	x, y = m.TransformPoint(x, y)
	return fixed.PointFromFloat64(x, y, 0)
}
