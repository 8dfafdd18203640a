package pathtess

import (
	"github.com/gogpu/pathtess/internal/boxes"
	"github.com/gogpu/pathtess/internal/fillpoly"
	internalpath "github.com/gogpu/pathtess/internal/path"
	"github.com/gogpu/pathtess/internal/polygon"
	"github.com/gogpu/pathtess/internal/rectstroke"
	"github.com/gogpu/pathtess/internal/rectsweep"
	"github.com/gogpu/pathtess/internal/status"
	"github.com/gogpu/pathtess/internal/strokepoly"
	"github.com/gogpu/pathtess/internal/sweep"
	"github.com/gogpu/pathtess/internal/traps"
)

// FillResult holds the tessellated output of a Fill call. Exactly one
// of Boxes or Traps is populated: Boxes for the rectilinear,
// antialias-none fast path, Traps for the general sweep-line result.
type FillResult struct {
	Boxes *boxes.Boxes
	Traps *traps.Traps
}

// StrokeResult holds the tessellated output of a Stroke call. Exactly
// one of Boxes or Traps is populated: Boxes for the rectilinear fast
// path, Traps for the general face-based stroker's fill.
type StrokeResult struct {
	Boxes *boxes.Boxes
	Traps *traps.Traps
}

// Fill tessellates the interior of p under the given style into
// trapezoids, or into boxes when the rectilinear antialias-none fast
// path applies.
func Fill(p *Path, st Style) (FillResult, status.Status) {
	ip, err := p.toInternalPath()
	if err != nil {
		return FillResult{}, ip.Status.Status()
	}
	if s := ip.Status.Status(); s != status.Success {
		return FillResult{}, s
	}
	if ip.FillIsEmpty() {
		return FillResult{}, status.NothingToDo
	}

	tol := st.Tolerance
	if tol <= 0 {
		tol = 0.1
	}

	if st.Antialias == AntialiasNone && ip.FillIsRectilinear() {
		poly, err := fillBoxes(ip)
		if err != nil {
			return FillResult{}, status.InternalInvariantViolation
		}
		out := boxes.New()
		if e := rectsweep.TessellateToBoxes(poly, toRectsweepRule(st.FillRule), out); e != nil {
			return FillResult{}, status.InternalInvariantViolation
		}
		return FillResult{Boxes: out}, status.Success
	}

	poly, ferr := fillpoly.Fill(ip, tol, nil)
	if ferr != nil {
		return FillResult{}, status.InternalInvariantViolation
	}
	out := traps.New()
	if e := sweep.Tessellate(poly, toSweepRule(st.FillRule), out); e != nil {
		return FillResult{}, status.InternalInvariantViolation
	}
	return FillResult{Traps: out}, status.Success
}

// Stroke tessellates the expanded outline of p's stroke under the
// given style and transform. The rectilinear fast path is tried
// first; if its preconditions don't hold, it reports
// status.Unsupported and Stroke falls back to the general face-based
// stroker followed by sweep-line tessellation.
func Stroke(p *Path, st Style, m Matrix) (StrokeResult, status.Status) {
	ip, err := p.toInternalPath()
	if err != nil {
		return StrokeResult{}, ip.Status.Status()
	}
	if s := ip.Status.Status(); s != status.Success {
		return StrokeResult{}, s
	}

	internalStyle := st.toInternalStroke(m)
	internalMatrix := m.toInternalMatrix()

	out, rxStatus := rectstroke.Stroke(ip, internalStyle, internalMatrix)
	if rxStatus == status.Success {
		return StrokeResult{Boxes: out}, status.Success
	}
	if rxStatus != status.Unsupported {
		return StrokeResult{}, rxStatus
	}

	poly, psStatus := strokepoly.Stroke(ip, internalStyle, internalMatrix)
	if psStatus != status.Success {
		return StrokeResult{}, psStatus
	}

	tr := traps.New()
	if e := sweep.Tessellate(poly, sweep.Winding, tr); e != nil {
		return StrokeResult{}, status.InternalInvariantViolation
	}
	return StrokeResult{Traps: tr}, status.Success
}

// fillBoxes builds the rectilinear fast path's polygon. When ip might
// still be a union of disjoint rectangle subpaths it tries the
// box-union builder first, which skips walking each box's edges one op
// at a time; any subpath that isn't box shaped falls back to the
// general rectilinear walk over the whole path.
func fillBoxes(ip *internalpath.Path) (*polygon.Polygon, error) {
	if ip.FillMaybeRegion() {
		if poly, ok, err := fillpoly.FillBoxUnion(ip, nil); err != nil {
			return nil, err
		} else if ok {
			return poly, nil
		}
	}
	return fillpoly.FillRectilinear(ip, nil)
}

func toSweepRule(r FillRule) sweep.FillRule {
	if r == FillRuleEvenOdd {
		return sweep.EvenOdd
	}
	return sweep.Winding
}

func toRectsweepRule(r FillRule) rectsweep.FillRule {
	if r == FillRuleEvenOdd {
		return rectsweep.EvenOdd
	}
	return rectsweep.Winding
}
