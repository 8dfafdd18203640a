// Package boxes implements the box-set store of spec.md 4.B: an
// append-only list of (possibly winding-signed) rectangles, with
// optional limit clipping and an incrementally maintained
// "every box is pixel-aligned" hint.
//
// A box need not be in canonical (P1 <= P2) form here: Add preserves
// the box's winding direction through the limit clip — a clipped box
// gets canonical y order and carries a reversed winding as P1.X > P2.X —
// since the rectilinear sweep (BR) reads that ordering back out as the
// box's winding direction.
package boxes
