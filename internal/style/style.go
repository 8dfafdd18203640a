// Package style holds the user-facing stroke/fill parameters and the
// affine transform shared by every consumer above the fixed-point core
// (PS, RX, and the public pathtess package), per spec.md §6's
// Style and Transform inputs.
package style

import "math"

// LineCap selects how an open subpath's endpoints are finished.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects how two stroked segments meet at a vertex.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// FillRule selects how a path's winding decides inside vs outside.
type FillRule int

const (
	FillWinding FillRule = iota
	FillEvenOdd
)

// Antialias selects the rasterizer's edge-coverage behavior. The
// tessellation core only distinguishes None (drives the rectilinear
// fast paths) from everything else.
type Antialias int

const (
	AntialiasDefault Antialias = iota
	AntialiasNone
	AntialiasGray
	AntialiasSubpixel
)

// Stroke gathers every parameter a stroker needs, mirroring
// comac_stroke_style_t plus the dash array comac keeps alongside it.
type Stroke struct {
	LineWidth   float64
	LineCap     LineCap
	LineJoin    LineJoin
	MiterLimit  float64
	Dash        []float64
	DashOffset  float64
	Tolerance   float64
	Antialias   Antialias
	FillRule    FillRule
}

// Dashed reports whether the stroke has an active dash pattern. A dash
// array of all-zero entries is treated as no dashing, matching comac's
// _comac_stroker_dash_init precondition.
func (s Stroke) Dashed() bool {
	if len(s.Dash) == 0 {
		return false
	}
	for _, d := range s.Dash {
		if d > 0 {
			return true
		}
	}
	return false
}

// Matrix is the 3x2 affine transform `{xx, xy, x0; yx, yy, y0}` from
// spec.md §6: x' = xx*x + xy*y + x0, y' = yx*x + yy*y + y0.
type Matrix struct {
	XX, XY, X0 float64
	YX, YY, Y0 float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// IsScale reports whether the matrix has no shear or rotation — only
// axis-aligned scaling and translation — the precondition RX needs to
// keep horizontal/vertical segments horizontal/vertical after
// transform, per comac-path-stroke-boxes.c's _comac_matrix_is_scale.
func (m Matrix) IsScale() bool {
	return m.XY == 0 && m.YX == 0
}

// TransformDistance scales a vector by the matrix's linear part only
// (no translation), used to turn a user-space line width into device
// half-widths along each axis.
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	return m.XX*dx + m.XY*dy, m.YX*dx + m.YY*dy
}

// TransformPoint applies the full affine transform to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

// Determinant returns xx*yy - xy*yx.
func (m Matrix) Determinant() float64 {
	return m.XX*m.YY - m.XY*m.YX
}

// Invert returns the inverse transform and true, or the zero Matrix and
// false if m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	invDet := 1 / det
	inv := Matrix{
		XX: m.YY * invDet,
		XY: -m.XY * invDet,
		YX: -m.YX * invDet,
		YY: m.XX * invDet,
	}
	inv.X0 = -(inv.XX*m.X0 + inv.XY*m.Y0)
	inv.Y0 = -(inv.YX*m.X0 + inv.YY*m.Y0)
	return inv, true
}
