package path

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
)

// Transform applies matrix to every point recorded so far (including the
// deferred current/last-move points), and to the path's extents.
//
// A matrix with no rotation or shear (YX == XY == 0) hits a fast path
// that transforms each point directly and keeps the region-hint flag
// meaningful; a general matrix falls back to recomputing extents from
// the transformed control points, which is only an exact bound when the
// path has no CurveTo (a transformed cubic's control polygon still
// bounds the transformed curve, so the existing extents logic is reused
// rather than special-cased).
func (p *Path) Transform(m geom.Matrix) {
	if m.IsRectilinear() {
		p.transformRectilinear(m)
		return
	}

	p.lastMovePoint = m.TransformFixedPoint(p.lastMovePoint)
	p.currentPoint = m.TransformFixedPoint(p.currentPoint)

	if p.pts.len == 0 {
		return
	}

	var newExtents geom.Box
	hasExtents := false
	for _, chunk := range p.pts.chunks {
		for i := range chunk {
			chunk[i] = m.TransformFixedPoint(chunk[i])
			if hasExtents {
				newExtents.AddPoint(chunk[i])
			} else {
				newExtents = geom.NewBox(chunk[i], chunk[i])
				hasExtents = true
			}
		}
	}
	p.extents = newExtents
	p.hasExtents = hasExtents

	// A general transform may turn axis-aligned segments into diagonal
	// ones and can only make the region hint less permissive, never more.
	p.strokeIsRectilinear = false
	p.fillIsRectilinear = false
	p.fillIsEmpty = false
	p.fillMaybeRegion = false
}

// transformRectilinear is the fast path for scale+translate matrices
// (no rotation or shear), which preserves rectilinearity and lets the
// region hint survive if every transformed point stays pixel-aligned.
func (p *Path) transformRectilinear(m geom.Matrix) {
	p.lastMovePoint = m.TransformFixedPoint(p.lastMovePoint)
	p.currentPoint = m.TransformFixedPoint(p.currentPoint)

	p.fillMaybeRegion = true

	var newExtents geom.Box
	hasExtents := false
	for _, chunk := range p.pts.chunks {
		for i := range chunk {
			chunk[i] = m.TransformFixedPoint(chunk[i])
			if hasExtents {
				newExtents.AddPoint(chunk[i])
			} else {
				newExtents = geom.NewBox(chunk[i], chunk[i])
				hasExtents = true
			}
			if p.fillMaybeRegion {
				p.fillMaybeRegion = fixed.IsPixelAligned(chunk[i].X) &&
					fixed.IsPixelAligned(chunk[i].Y)
			}
		}
	}
	p.extents = newExtents
	p.hasExtents = hasExtents
	p.fillMaybeRegion = p.fillMaybeRegion && p.fillIsRectilinear
}
