// Package polygon implements the polygon store of spec.md 4 (data-flow
// diagram): an ordered list of external edges, plus an optional clip
// limit list and an overall extents box. PF (internal/fillpoly) and PS
// (internal/strokepoly) build polygons; BO (internal/sweep) and BR
// (internal/rectsweep) consume them.
//
// An "external edge" carries only a direction (its Dir, derived from
// whether it was added top-down or bottom-up) and says nothing about
// which side of it is "inside" — that's a function of the fill rule the
// sweep line applies when it walks the polygon, not a property of the
// edge itself.
package polygon
