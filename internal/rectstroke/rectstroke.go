package rectstroke

import (
	"math"

	"github.com/gogpu/pathtess/internal/boxes"
	"github.com/gogpu/pathtess/internal/dash"
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/path"
	"github.com/gogpu/pathtess/internal/polygon"
	"github.com/gogpu/pathtess/internal/rectsweep"
	"github.com/gogpu/pathtess/internal/status"
	"github.com/gogpu/pathtess/internal/style"
)

// Enabled reports whether st and m satisfy RX's preconditions: a miter
// join whose limit never bevels a right angle (miter_limit >= sqrt(2),
// the 1/sin(pi/4) cutoff), a butt or square cap, and a shear-free CTM.
// Any other combination must fall back to the general stroker.
func Enabled(st style.Stroke, m style.Matrix) bool {
	if st.LineJoin != style.JoinMiter {
		return false
	}
	if st.MiterLimit < math.Sqrt2 {
		return false
	}
	if st.LineCap != style.CapButt && st.LineCap != style.CapSquare {
		return false
	}
	return m.IsScale()
}

// Stroke runs the rectilinear stroker over p, returning the resulting
// box set. Callers must have already confirmed Enabled(st, m) and
// p.StrokeIsRectilinear(); Stroke returns status.Unsupported if either
// does not hold, so a caller that skips the check still falls back
// safely instead of producing wrong geometry.
func Stroke(p *path.Path, st style.Stroke, m style.Matrix) (*boxes.Boxes, status.Status) {
	if !Enabled(st, m) || !p.StrokeIsRectilinear() {
		return nil, status.Unsupported
	}
	if st.LineWidth <= 0 {
		return nil, status.NothingToDo
	}

	half := st.LineWidth / 2
	dx, _ := m.TransformDistance(half, 0)
	_, dy := m.TransformDistance(0, half)
	halfX := fixed.FromFloat64(math.Abs(dx))
	halfY := fixed.FromFloat64(math.Abs(dy))
	if halfX == 0 && halfY == 0 {
		return nil, status.NothingToDo
	}

	// extremeFastPath always draws a closed ring of four sides, so the
	// subpath must be explicitly closed: IsBox alone would also accept
	// an open 3-line "quad" with no closing op, which needs caps at its
	// two open ends rather than a sealed rectangle outline.
	if !st.Dashed() {
		if box, ok := p.IsStrokeBox(); ok {
			if out, ok := extremeFastPath(box, halfX, halfY); ok {
				return out, status.Success
			}
		} else if box, ok := p.IsRectangle(); ok {
			if out, ok := extremeFastPath(box, halfX, halfY); ok {
				return out, status.Success
			}
		}
	}

	scale := (math.Abs(m.XX) + math.Abs(m.YY)) / 2

	s := &stroker{
		halfX: halfX,
		halfY: halfY,
		cap:   st.LineCap,
		out:   boxes.New(),
	}
	if st.Dashed() {
		s.dash = dash.New(scaleDash(st.Dash, scale), st.DashOffset*scale)
	}

	if err := p.Interpret(s.moveTo, s.lineTo, nil, s.closePath); err != nil {
		return nil, status.InternalInvariantViolation
	}
	if err := s.flushOpen(); err != nil {
		return nil, status.AllocationFailure
	}
	if s.out.Len() == 0 {
		return nil, status.NothingToDo
	}

	poly := polygon.New()
	for _, b := range s.out.ToSlice() {
		if err := addBoxEdges(poly, b); err != nil {
			return nil, status.AllocationFailure
		}
	}

	deoverlapped := boxes.New()
	if err := rectsweep.TessellateToBoxes(poly, rectsweep.Winding, deoverlapped); err != nil {
		return nil, status.AllocationFailure
	}
	return deoverlapped, status.Success
}

// scaleDash scales every dash entry by a single factor derived from
// the CTM. RX's segments are already device-space, but the dash
// pattern is specified in user space; for a uniform scale this is
// exact, for a non-uniform one it is the average of the x and y scale
// factors, a documented simplification (see DESIGN.md).
func scaleDash(d []float64, scale float64) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = v * scale
	}
	return out
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

// extremeFastPath handles a single non-degenerate rectilinear box
// directly as four side rectangles, skipping segment accumulation and
// the de-overlap pass entirely: the four sides never overlap except
// at their own corners, which is within a single side's own box.
func extremeFastPath(box geom.Box, halfX, halfY fixed.Scalar) (*boxes.Boxes, bool) {
	if box.Width() <= 2*halfX || box.Height() <= 2*halfY {
		return nil, false
	}
	out := boxes.New()
	sides := [4]geom.Box{
		{P1: fixed.Pt(box.P1.X-halfX, box.P1.Y-halfY), P2: fixed.Pt(box.P2.X+halfX, box.P1.Y+halfY)}, // top
		{P1: fixed.Pt(box.P1.X-halfX, box.P1.Y+halfY), P2: fixed.Pt(box.P1.X+halfX, box.P2.Y-halfY)}, // left
		{P1: fixed.Pt(box.P2.X-halfX, box.P1.Y+halfY), P2: fixed.Pt(box.P2.X+halfX, box.P2.Y-halfY)}, // right
		{P1: fixed.Pt(box.P1.X-halfX, box.P2.Y-halfY), P2: fixed.Pt(box.P2.X+halfX, box.P2.Y+halfY)}, // bottom
	}
	for _, b := range sides {
		if err := out.Add(b, false); err != nil {
			return nil, false
		}
	}
	return out, true
}

// stroker accumulates one subpath's segments at a time, flushing them
// to boxes on every move_to and at the end of the path, per spec.md
// 4.RX.
type stroker struct {
	halfX, halfY fixed.Scalar
	cap          style.LineCap
	dash         *dash.State
	out          *boxes.Boxes

	segs       []segment
	current    fixed.Point
	hasCurrent bool
	closed     bool
}

func (s *stroker) moveTo(p fixed.Point) error {
	if err := s.flushOpen(); err != nil {
		return err
	}
	s.current = p
	s.hasCurrent = true
	if s.dash != nil {
		s.dash.Start()
	}
	return nil
}

func (s *stroker) lineTo(p fixed.Point) error {
	if !s.hasCurrent {
		s.current = p
		s.hasCurrent = true
		return nil
	}
	if p == s.current {
		return nil
	}
	if p.X != s.current.X && p.Y != s.current.Y {
		return status.Unsupported
	}
	s.segs = append(s.segs, newSegment(s.current, p))
	s.current = p
	return nil
}

func (s *stroker) closePath() error {
	s.closed = true
	if err := s.flush(); err != nil {
		return err
	}
	s.hasCurrent = false
	if s.dash != nil {
		s.dash.Start()
	}
	return nil
}

// flushOpen flushes the current subpath as an open one; used on
// move_to and at the end of the path, where no explicit ClosePath
// callback will run.
func (s *stroker) flushOpen() error {
	s.closed = false
	return s.flush()
}

func (s *stroker) flush() error {
	if len(s.segs) == 0 {
		s.segs = s.segs[:0]
		return nil
	}
	markJoins(s.segs, s.closed)

	var err error
	if s.dash != nil {
		err = emitSegmentsDashed(s.segs, s.closed, s.cap, s.halfX, s.halfY, s.dash, s.out)
	} else {
		err = emitSegments(s.segs, s.closed, s.cap, s.halfX, s.halfY, s.out)
	}
	s.segs = s.segs[:0]
	return err
}
