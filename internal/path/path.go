package path

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/status"
)

// OpKind identifies one entry in a Path's op stream.
type OpKind uint8

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpCurveTo
	OpClose
)

// NumPoints returns how many points a Path consumes from its point
// buffer for an op of this kind.
func (k OpKind) NumPoints() int {
	switch k {
	case OpMoveTo, OpLineTo:
		return 1
	case OpCurveTo:
		return 3
	default:
		return 0
	}
}

// Path is the op+point stream described by spec.md 4.P: a flat recording
// of MoveTo/LineTo/CurveTo/Close calls, with a handful of flags
// maintained incrementally so the fast-path detectors in query.go don't
// need to rescan the stream.
type Path struct {
	ops []OpKind
	pts pointChunks

	currentPoint    fixed.Point
	lastMovePoint   fixed.Point
	hasCurrentPoint bool
	needsMoveTo     bool

	hasExtents bool
	extents    geom.Box

	hasCurveTo          bool
	strokeIsRectilinear bool
	fillIsRectilinear   bool
	fillMaybeRegion     bool
	fillIsEmpty         bool

	Status status.Sticky
}

// New returns an empty Path, ready for its first MoveTo.
func New() *Path {
	p := &Path{}
	p.reset()
	return p
}

// Reset discards all recorded ops and returns the Path to its initial
// empty state, reusing the underlying point storage.
func (p *Path) Reset() {
	p.reset()
}

func (p *Path) reset() {
	p.ops = p.ops[:0]
	p.pts.reset()
	p.currentPoint = fixed.Point{}
	p.lastMovePoint = fixed.Point{}
	p.hasCurrentPoint = false
	p.needsMoveTo = true
	p.hasExtents = false
	p.extents = geom.Box{}
	p.hasCurveTo = false
	p.strokeIsRectilinear = true
	p.fillIsRectilinear = true
	p.fillMaybeRegion = true
	p.fillIsEmpty = true
	p.Status = status.Sticky{}
}

// HasCurrentPoint reports whether a current point is established (a
// MoveTo or successful draw op has occurred since New or the last
// Reset). ClosePath keeps the current point, moving it to the
// subpath's start.
func (p *Path) HasCurrentPoint() bool { return p.hasCurrentPoint }

// CurrentPoint returns the path's current point. Only meaningful when
// HasCurrentPoint is true.
func (p *Path) CurrentPoint() fixed.Point { return p.currentPoint }

// Extents returns the path's bounding box and whether it has recorded
// any points yet.
func (p *Path) Extents() (geom.Box, bool) { return p.extents, p.hasExtents }

// HasCurveTo reports whether the path contains at least one CurveTo.
func (p *Path) HasCurveTo() bool { return p.hasCurveTo }

// StrokeIsRectilinear reports whether every segment recorded so far is
// axis-aligned. Monotonic: once false, stays false.
func (p *Path) StrokeIsRectilinear() bool { return p.strokeIsRectilinear }

// FillIsRectilinear additionally requires that subpaths close
// rectilinearly. Monotonic: once false, stays false.
func (p *Path) FillIsRectilinear() bool { return p.fillIsRectilinear }

// FillMaybeRegion reports whether the path so far is still consistent
// with being a pixel-aligned region (integer coordinates, rectilinear).
// Once false it stays false, except that Transform's scale/translate
// fast path recomputes it from every transformed point.
func (p *Path) FillMaybeRegion() bool { return p.fillMaybeRegion }

// FillIsEmpty reports whether the path has yet to record any segment
// with nonzero length. Monotonic: once false, stays false.
func (p *Path) FillIsEmpty() bool { return p.fillIsEmpty }

// lastOp returns the most recently appended op and whether one exists.
func (p *Path) lastOp() (OpKind, bool) {
	if len(p.ops) == 0 {
		return 0, false
	}
	return p.ops[len(p.ops)-1], true
}

// penultimatePoint returns the point recorded immediately before the
// last op's own point(s). It is only called when the last op is
// OpLineTo, in which case it is exactly the current point as of just
// before that line was appended — regardless of what op produced it.
func (p *Path) penultimatePoint() fixed.Point {
	return p.pts.at(p.pts.len - 2)
}

// dropLineTo removes the most recently appended op, which must be a
// LineTo, undoing it entirely (used both to collapse degenerate segments
// and to merge collinear runs).
func (p *Path) dropLineTo() {
	p.ops = p.ops[:len(p.ops)-1]
	p.pts.dropLast()
}

func (p *Path) appendOp(k OpKind, pts ...fixed.Point) {
	p.ops = append(p.ops, k)
	for _, pt := range pts {
		p.pts.append(pt)
	}
}

func (p *Path) growExtents(pt fixed.Point) {
	if p.hasExtents {
		p.extents.AddPoint(pt)
	} else {
		p.extents = geom.NewBox(pt, pt)
		p.hasExtents = true
	}
}

// newSubPath ends the current subpath (if any) and arranges for the next
// drawing op to emit a fresh MoveTo first.
func (p *Path) newSubPath() {
	if !p.needsMoveTo {
		if p.fillIsRectilinear {
			p.fillIsRectilinear = p.currentPoint.X == p.lastMovePoint.X ||
				p.currentPoint.Y == p.lastMovePoint.Y
			p.fillMaybeRegion = p.fillMaybeRegion && p.fillIsRectilinear
		}
		p.needsMoveTo = true
	}
	p.hasCurrentPoint = false
}

// moveToApply emits the deferred MoveTo (if any) as an actual op,
// updating extents and the region hint.
func (p *Path) moveToApply() {
	if !p.needsMoveTo {
		return
	}
	p.needsMoveTo = false
	p.growExtents(p.currentPoint)
	if p.fillMaybeRegion {
		p.fillMaybeRegion = fixed.IsPixelAligned(p.currentPoint.X) &&
			fixed.IsPixelAligned(p.currentPoint.Y)
	}
	p.lastMovePoint = p.currentPoint
	p.appendOp(OpMoveTo, p.currentPoint)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y fixed.Scalar) error {
	p.newSubPath()
	p.hasCurrentPoint = true
	p.currentPoint = fixed.Pt(x, y)
	p.lastMovePoint = p.currentPoint
	return nil
}

// RelMoveTo starts a new subpath at the current point offset by (dx, dy).
func (p *Path) RelMoveTo(dx, dy fixed.Scalar) error {
	if !p.hasCurrentPoint {
		return p.fail(status.NoCurrentPoint)
	}
	return p.MoveTo(p.currentPoint.X+dx, p.currentPoint.Y+dy)
}

// LineTo appends a line segment to (x, y), or starts a subpath there if
// no current point exists yet. Degenerate segments are dropped; a run of
// collinear, same-direction segments is merged into one.
func (p *Path) LineTo(x, y fixed.Scalar) error {
	if !p.hasCurrentPoint {
		return p.MoveTo(x, y)
	}
	p.moveToApply()

	point := fixed.Pt(x, y)

	if k, ok := p.lastOp(); ok && k != OpMoveTo {
		if point == p.currentPoint {
			return nil
		}
	}

	if k, ok := p.lastOp(); ok && k == OpLineTo {
		prev := p.penultimatePoint()
		if prev == p.currentPoint {
			p.dropLineTo()
		} else {
			prevSlope := geom.SlopeBetween(prev, p.currentPoint)
			selfSlope := geom.SlopeBetween(p.currentPoint, point)
			if geom.SlopeCompare(prevSlope, selfSlope) == 0 &&
				!geom.SlopeBackwards(prevSlope, selfSlope) {
				p.dropLineTo()
			}
		}
	}

	if p.strokeIsRectilinear {
		p.strokeIsRectilinear = p.currentPoint.X == x || p.currentPoint.Y == y
		p.fillIsRectilinear = p.fillIsRectilinear && p.strokeIsRectilinear
		p.fillMaybeRegion = p.fillMaybeRegion && p.fillIsRectilinear
		if p.fillMaybeRegion {
			p.fillMaybeRegion = fixed.IsPixelAligned(x) && fixed.IsPixelAligned(y)
		}
		if p.fillIsEmpty {
			p.fillIsEmpty = p.currentPoint == point
		}
	}

	p.currentPoint = point
	p.growExtents(point)
	p.appendOp(OpLineTo, point)
	return nil
}

// RelLineTo appends a line segment to the current point offset by
// (dx, dy).
func (p *Path) RelLineTo(dx, dy fixed.Scalar) error {
	if !p.hasCurrentPoint {
		return p.fail(status.NoCurrentPoint)
	}
	return p.LineTo(p.currentPoint.X+dx, p.currentPoint.Y+dy)
}

// CurveTo appends a cubic Bezier through control points (x0,y0), (x1,y1)
// to endpoint (x2,y2). A curve whose four points all coincide with the
// current endpoint degenerates to LineTo, which is how rounded rects with
// a zero corner radius collapse to straight edges.
func (p *Path) CurveTo(x0, y0, x1, y1, x2, y2 fixed.Scalar) error {
	d := fixed.Pt(x2, y2)

	if p.hasCurrentPoint && p.currentPoint == d {
		b := fixed.Pt(x0, y0)
		c := fixed.Pt(x1, y1)
		if b == d && c == d {
			return p.LineTo(x2, y2)
		}
	}

	if !p.hasCurrentPoint {
		if err := p.MoveTo(x0, y0); err != nil {
			return err
		}
	}
	p.moveToApply()

	if k, ok := p.lastOp(); ok && k == OpLineTo {
		if p.penultimatePoint() == p.currentPoint {
			p.dropLineTo()
		}
	}

	b := fixed.Pt(x0, y0)
	c := fixed.Pt(x1, y1)
	p.growExtents(p.currentPoint)
	p.extents.AddCurveTo(p.currentPoint, b, c, d)

	p.currentPoint = d
	p.hasCurveTo = true
	p.strokeIsRectilinear = false
	p.fillIsRectilinear = false
	p.fillMaybeRegion = false
	p.fillIsEmpty = false
	p.appendOp(OpCurveTo, b, c, d)
	return nil
}

// RelCurveTo appends a cubic Bezier with all three points offset from the
// current point by the given deltas.
func (p *Path) RelCurveTo(dx0, dy0, dx1, dy1, dx2, dy2 fixed.Scalar) error {
	if !p.hasCurrentPoint {
		return p.fail(status.NoCurrentPoint)
	}
	cp := p.currentPoint
	return p.CurveTo(
		cp.X+dx0, cp.Y+dy0,
		cp.X+dx1, cp.Y+dy1,
		cp.X+dx2, cp.Y+dy2,
	)
}

// ClosePath draws a line back to the subpath's starting point and marks
// the subpath closed. A no-op if no current point exists (nothing has
// been recorded since New or Reset). Closing an already-closed subpath
// records a fresh MoveTo at its start followed by another close.
func (p *Path) ClosePath() error {
	if !p.hasCurrentPoint {
		return nil
	}

	// Adding the closing line_to first lets LineTo compute the flags and
	// resolve any degeneracy; it is dropped afterward; CLOSE_PATH itself
	// carries no points.
	if err := p.LineTo(p.lastMovePoint.X, p.lastMovePoint.Y); err != nil {
		return err
	}
	if k, ok := p.lastOp(); ok && k == OpLineTo {
		p.dropLineTo()
	}

	p.needsMoveTo = true
	p.ops = append(p.ops, OpClose)
	return nil
}

func (p *Path) fail(s status.Status) error {
	p.Status.Set(s)
	return s
}
