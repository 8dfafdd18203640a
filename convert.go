package pathtess

import (
	"github.com/gogpu/pathtess/internal/fixed"
	internalpath "github.com/gogpu/pathtess/internal/path"
	"github.com/gogpu/pathtess/internal/style"
)

// toInternalPath replays the public, float64 Path onto the fixed-point
// internal/path.Path the tessellation pipeline consumes. QuadTo
// elements are elevated to cubics via the standard exact-degree-raise
// formula, since internal/path only records cubic curveto ops.
func (p *Path) toInternalPath() (*internalpath.Path, error) {
	ip := internalpath.New()
	var cur Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if err := ip.MoveTo(f(e.Point.X), f(e.Point.Y)); err != nil {
				return nil, err
			}
			cur = e.Point
		case LineTo:
			if err := ip.LineTo(f(e.Point.X), f(e.Point.Y)); err != nil {
				return nil, err
			}
			cur = e.Point
		case QuadTo:
			c1 := elevateControl1(cur, e.Control)
			c2 := elevateControl2(e.Control, e.Point)
			if err := ip.CurveTo(f(c1.X), f(c1.Y), f(c2.X), f(c2.Y), f(e.Point.X), f(e.Point.Y)); err != nil {
				return nil, err
			}
			cur = e.Point
		case CubicTo:
			if err := ip.CurveTo(
				f(e.Control1.X), f(e.Control1.Y),
				f(e.Control2.X), f(e.Control2.Y),
				f(e.Point.X), f(e.Point.Y),
			); err != nil {
				return nil, err
			}
			cur = e.Point
		case Close:
			if err := ip.ClosePath(); err != nil {
				return nil, err
			}
		}
	}
	return ip, nil
}

// elevateControl1 and elevateControl2 implement the exact degree-raise
// of a quadratic Bezier (p0, q, p2) into a cubic (p0, c1, c2, p2):
//
//	c1 = p0 + 2/3*(q - p0)
//	c2 = p2 + 2/3*(q - p2)
func elevateControl1(p0, q Point) Point {
	return p0.Add(q.Sub(p0).Mul(2.0 / 3.0))
}

func elevateControl2(q, p2 Point) Point {
	return p2.Add(q.Sub(p2).Mul(2.0 / 3.0))
}

// f converts a public user-space coordinate to fixed point.
func f(v float64) fixed.Scalar { return fixed.FromFloat64(v) }

// toInternalStroke converts a public Style into the internal/style
// parameters the strokers and fillers dispatch on. Tolerance is
// rescaled into device space using the matrix's largest singular
// value, matching comac's own tolerance-to-device conversion.
func (s Style) toInternalStroke(m Matrix) style.Stroke {
	tol := s.Tolerance
	if tol <= 0 {
		tol = 0.1
	}
	scale := m.MaxScaleFactor()
	if scale > 0 {
		tol /= scale
	}

	var dash []float64
	var dashOffset float64
	if s.Dash != nil {
		dash = s.Dash.effectiveArray()
		dashOffset = s.Dash.Offset
	}

	return style.Stroke{
		LineWidth:  s.Width,
		LineCap:    toInternalCap(s.Cap),
		LineJoin:   toInternalJoin(s.Join),
		MiterLimit: s.MiterLimit,
		Dash:       dash,
		DashOffset: dashOffset,
		Tolerance:  tol,
		Antialias:  toInternalAntialias(s.Antialias),
		FillRule:   toInternalFillRule(s.FillRule),
	}
}

func toInternalCap(c LineCap) style.LineCap {
	switch c {
	case LineCapRound:
		return style.CapRound
	case LineCapSquare:
		return style.CapSquare
	default:
		return style.CapButt
	}
}

func toInternalJoin(j LineJoin) style.LineJoin {
	switch j {
	case LineJoinRound:
		return style.JoinRound
	case LineJoinBevel:
		return style.JoinBevel
	default:
		return style.JoinMiter
	}
}

func toInternalAntialias(a Antialias) style.Antialias {
	switch a {
	case AntialiasNone:
		return style.AntialiasNone
	case AntialiasGray:
		return style.AntialiasGray
	case AntialiasSubpixel:
		return style.AntialiasSubpixel
	default:
		return style.AntialiasDefault
	}
}

func toInternalFillRule(r FillRule) style.FillRule {
	if r == FillRuleEvenOdd {
		return style.FillEvenOdd
	}
	return style.FillWinding
}

// toInternalMatrix converts a public Matrix into internal/style's
// Matrix representation.
func (m Matrix) toInternalMatrix() style.Matrix {
	return style.Matrix{
		XX: m.XX, XY: m.XY, X0: m.X0,
		YX: m.YX, YY: m.YY, Y0: m.Y0,
	}
}
