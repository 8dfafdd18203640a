package fillpoly

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/path"
	"github.com/gogpu/pathtess/internal/polygon"
)

// filler tracks the running current_point/last_move state
// interpret_flat's callbacks need to turn a line-segment stream into
// external polygon edges: every move_to first closes the previous
// subpath, and a final close is emitted after the walk ends.
type filler struct {
	poly    *polygon.Polygon
	current fixed.Point
	lastMov fixed.Point
}

func (f *filler) lineTo(p fixed.Point) error {
	err := f.poly.AddExternalEdge(f.current, p)
	f.current = p
	return err
}

func (f *filler) closeSubpath() error {
	return f.lineTo(f.lastMov)
}

func (f *filler) moveTo(p fixed.Point) error {
	if err := f.closeSubpath(); err != nil {
		return err
	}
	f.current = p
	f.lastMov = p
	return nil
}

// Fill walks p via InterpretFlat at the given tolerance and returns the
// resulting external-edge polygon, clipped to limits if any are given.
func Fill(p *path.Path, tolerance float64, limits []geom.Box) (*polygon.Polygon, error) {
	poly := polygon.New()
	if len(limits) > 0 {
		poly.SetLimits(limits)
	}

	f := &filler{poly: poly}
	if err := p.InterpretFlat(f.moveTo, f.lineTo, f.closeSubpath, tolerance); err != nil {
		return nil, err
	}
	if err := f.closeSubpath(); err != nil {
		return nil, err
	}
	return poly, nil
}

// rectilinearFiller is Fill's filler but rounds every vertex down to the
// pixel grid before it reaches the polygon, the antialias-none fast
// path: paths already known rectilinear produce exact integer edges,
// skipping any fractional-coverage bookkeeping downstream.
type rectilinearFiller struct {
	poly    *polygon.Polygon
	current fixed.Point
	lastMov fixed.Point
}

func roundDownPoint(p fixed.Point) fixed.Point {
	return fixed.Pt(fixed.RoundDown(p.X), fixed.RoundDown(p.Y))
}

func (f *rectilinearFiller) lineTo(p fixed.Point) error {
	p = roundDownPoint(p)
	err := f.poly.AddExternalEdge(f.current, p)
	f.current = p
	return err
}

func (f *rectilinearFiller) closeSubpath() error {
	return f.lineTo(f.lastMov)
}

func (f *rectilinearFiller) moveTo(p fixed.Point) error {
	if err := f.closeSubpath(); err != nil {
		return err
	}
	p = roundDownPoint(p)
	f.current = p
	f.lastMov = p
	return nil
}

// FillBoxUnion builds p's external-edge polygon directly from its
// BoxIter, the fast path for a clip region expressed as a union of
// disjoint axis-aligned rectangle subpaths (p.FillMaybeRegion() is the
// caller's precondition check). Each subpath's four corners are added
// as a single box's edges instead of being walked op by op; it returns
// false, without partial output, as soon as any subpath isn't box
// shaped, so the caller can fall back to FillRectilinear for the whole
// path.
func FillBoxUnion(p *path.Path, limits []geom.Box) (*polygon.Polygon, bool, error) {
	poly := polygon.New()
	if len(limits) > 0 {
		poly.SetLimits(limits)
	}

	it := p.NewBoxIter()
	for !it.AtEnd() {
		box, ok := it.NextFillBox()
		if !ok {
			return nil, false, nil
		}
		if err := addBoxEdges(poly, box); err != nil {
			return nil, false, err
		}
	}
	return poly, true, nil
}

func addBoxEdges(poly *polygon.Polygon, box geom.Box) error {
	x1, y1 := box.P1.X, box.P1.Y
	x2, y2 := box.P2.X, box.P2.Y
	if err := poly.AddExternalEdge(fixed.Pt(x1, y1), fixed.Pt(x2, y1)); err != nil {
		return err
	}
	if err := poly.AddExternalEdge(fixed.Pt(x2, y1), fixed.Pt(x2, y2)); err != nil {
		return err
	}
	if err := poly.AddExternalEdge(fixed.Pt(x2, y2), fixed.Pt(x1, y2)); err != nil {
		return err
	}
	if err := poly.AddExternalEdge(fixed.Pt(x1, y2), fixed.Pt(x1, y1)); err != nil {
		return err
	}
	return nil
}

// FillRectilinear walks p via InterpretFlat at zero tolerance, rounding
// every vertex down before emitting it. antialiasNone selects this fast
// path; callers with any other antialias mode should call Fill instead,
// per spec.md 4.PF.
func FillRectilinear(p *path.Path, limits []geom.Box) (*polygon.Polygon, error) {
	poly := polygon.New()
	if len(limits) > 0 {
		poly.SetLimits(limits)
	}

	f := &rectilinearFiller{poly: poly}
	if err := p.InterpretFlat(f.moveTo, f.lineTo, f.closeSubpath, 0); err != nil {
		return nil, err
	}
	if err := f.closeSubpath(); err != nil {
		return nil, err
	}
	return poly, nil
}
