// Package pathtess implements a 2-D path tessellation and stroking core.
//
// # Overview
//
// pathtess turns a path built from MoveTo/LineTo/CurveTo/ClosePath
// operations into the trapezoids or pixel-aligned boxes a rasterizer
// consumes, for both fill and stroke. It is a from-scratch Go port of
// comac's tessellation pipeline: a Bentley-Ottmann sweep-line
// tessellator for general polygons, a dedicated rectilinear fast path
// for axis-aligned fills and strokes, and a face-based stroker that
// expands a stroked path into a fillable polygon.
//
// # Quick start
//
//	p := pathtess.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//	p.Close()
//
//	result, st := pathtess.Fill(p, pathtess.DefaultStyle())
//	if !st.OK() {
//		// handle status
//	}
//
// # Architecture
//
// The public surface (Path, Style, Matrix, Point, Fill, Stroke) is a
// thin, user-space (float64) layer over an internal pipeline that
// works entirely in fixed point:
//
//   - internal/path records the op+point stream and derives
//     incremental properties (extents, rectilinearity) used to pick
//     fast paths.
//   - internal/fillpoly and internal/strokepoly turn a path into a
//     polygon of external edges, the fill polygon directly, the
//     stroke polygon via face/join/cap construction.
//   - internal/sweep (general) and internal/rectsweep (axis-aligned
//     only) tessellate a polygon into trapezoids or boxes.
//   - internal/rectstroke bypasses polygon construction entirely for
//     rectilinear strokes, emitting boxes straight from the path's
//     segments.
//
// # Coordinate system
//
// User-space coordinates follow the usual computer graphics
// convention: origin at the top-left, X increasing right, Y
// increasing down. Every coordinate is converted to fixed point before
// any geometry is computed, matching the precision the sweep-line
// tessellator's intersection arithmetic depends on.
//
// # Status reporting
//
// Fill and Stroke report failures via a status code rather than
// panicking, mirroring comac's own error-status convention.
package pathtess
