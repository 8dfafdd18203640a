// Package sweep implements BO, spec.md 4.BO: the general Bentley–Ottmann
// tessellator that turns a polygon's edge list into trapezoids under a
// fill rule.
//
// The driver here partitions the polygon's y-extent into bands at every
// edge top/bottom and every edge-pair crossing (computed with the exact
// 64/128-bit determinant arithmetic comac-bentley-ottmann.c's
// intersect_lines uses, including its paired rounding-bias nudge), then
// walks each band's edges left to right exactly as
// active_edges_to_traps does — accumulating winding (or even-odd
// parity) and opening/closing a deferred trap at each inside/outside
// transition. Adjacent bands that close and reopen a trap against the
// same pair of edge lines are coalesced back into one, the batch
// equivalent of the incremental "stopped list" continuation check.
//
// This trades the incremental doubly-linked active-edge list and
// intersection priority queue for an upfront, quadratic pairwise
// crossing search — same idea as this file's own
// edges_have_an_intersection_quadratic fallback, just promoted to the
// primary algorithm. See DESIGN.md for why: the stateful incremental
// structure cannot be hand-verified without running the code, while
// this batch form reduces to "sort, then linear scan" at each
// breakpoint and is straightforward to trace by hand against the
// spec's worked scenarios.
package sweep
