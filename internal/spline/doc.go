// Package spline flattens a cubic Bezier curve into a polyline within a
// caller-supplied tolerance, using adaptive De Casteljau midpoint
// subdivision.
//
// The error estimator is the distance of the two inner control points from
// the chord through the endpoints (spec.md 4.S): once both inner control
// points are within tolerance of the chord, the curve between the
// endpoints is treated as flat enough to emit as a single line segment.
// This is the same test gogpu/gg's internal/path/flatten.go uses (there
// called distanceToLine against both control points and maxed), adapted
// here to also report the curve's initial and final tangents (Result),
// which the teacher's flattener does not expose.
//
// Degenerate curves (all four control points coincident, or a control
// polygon too short to matter at the working tolerance) flatten to a
// single line segment instead of recursing, per spec.md 4.S.
package spline
