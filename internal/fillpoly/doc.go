// Package fillpoly implements PF, spec.md 4.PF: turning a recorded path
// into the external-edge polygon BO/BR tessellate into trapezoids or
// boxes under a fill rule.
//
// The general path flattens every curve through internal/path's
// InterpretFlat and emits one polygon edge per line segment; the
// rectilinear fast path additionally rounds every vertex down to the
// pixel grid before emitting, for antialias-none rendering of paths
// internal/path already knows are axis-aligned.
package fillpoly
