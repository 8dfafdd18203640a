package path

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/spline"
)

// MoveToFunc, LineToFunc, CurveToFunc and CloseFunc are the four
// callbacks Interpret and InterpretFlat drive the op stream through.
type (
	MoveToFunc  func(p fixed.Point) error
	LineToFunc  func(p fixed.Point) error
	CurveToFunc func(p0, p1, p2 fixed.Point) error
	CloseFunc   func() error
)

// Interpret walks the recorded op stream once, dispatching each op to
// the matching callback. If the path ends with a deferred MoveTo still
// pending (a lone MoveTo with no draw op after it, or the subpath start
// a trailing ClosePath leaves as current point), that point is still
// delivered to moveTo so a caller that only sees
// move_to/line_to/curve_to/close_path never has to special-case it.
func (p *Path) Interpret(moveTo MoveToFunc, lineTo LineToFunc, curveTo CurveToFunc, closePath CloseFunc) error {
	idx := 0
	for _, op := range p.ops {
		switch op {
		case OpMoveTo:
			pt := p.pts.at(idx)
			idx++
			if err := moveTo(pt); err != nil {
				return err
			}
		case OpLineTo:
			pt := p.pts.at(idx)
			idx++
			if err := lineTo(pt); err != nil {
				return err
			}
		case OpCurveTo:
			p0, p1, p2 := p.pts.at(idx), p.pts.at(idx+1), p.pts.at(idx+2)
			idx += 3
			if err := curveTo(p0, p1, p2); err != nil {
				return err
			}
		case OpClose:
			if err := closePath(); err != nil {
				return err
			}
		}
	}

	if p.needsMoveTo && p.hasCurrentPoint {
		return moveTo(p.currentPoint)
	}
	return nil
}

// InterpretFlat behaves like Interpret but never calls a curveTo —
// every CurveTo op is flattened into a run of LineTo calls whose chord
// deviation from the true curve is within tolerance, per spec.md 4.S.
// Paths recorded without any CurveTo skip the flattening machinery
// entirely.
func (p *Path) InterpretFlat(moveTo MoveToFunc, lineTo LineToFunc, closePath CloseFunc, tolerance float64) error {
	if !p.hasCurveTo {
		return p.Interpret(moveTo, lineTo, nil, closePath)
	}

	var current fixed.Point
	wrapMoveTo := func(pt fixed.Point) error {
		current = pt
		return moveTo(pt)
	}
	wrapLineTo := func(pt fixed.Point) error {
		current = pt
		return lineTo(pt)
	}
	wrapCurveTo := func(p0, p1, p2 fixed.Point) error {
		from := current
		var flattenErr error
		spline.Flatten(from, p0, p1, p2, tolerance, func(pt fixed.Point) {
			if flattenErr != nil {
				return
			}
			flattenErr = lineTo(pt)
		})
		current = p2
		return flattenErr
	}

	return p.Interpret(wrapMoveTo, wrapLineTo, wrapCurveTo, closePath)
}
