// Package strokepoly turns a stroked path into a polygon of external
// edges: the general-purpose stroker used whenever internal/rectstroke's
// preconditions don't hold. Each segment of the path contributes a pair
// of offset edges (the stroke "ribbon"), joined at interior vertices by
// a miter, bevel or round fan and capped at open subpath ends, following
// the face model of comac's path stroker.
//
// Grounded on original_source/src/comac-path-stroke.c. comac-pen.c,
// which builds the vertex table round joins/caps fan around, is not in
// the pack; its vertex count and the fan's active-vertex selection are
// reconstructed from well-known public circle-approximation and
// angular-sweep algorithms rather than copied from a source file.
package strokepoly
