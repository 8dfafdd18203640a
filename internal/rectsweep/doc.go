// Package rectsweep implements BR, spec.md 4.BR: the rectilinear
// specialization of the Bentley–Ottmann tessellator for a polygon whose
// every edge is vertical.
//
// Because no two vertical edges can cross, the driver here skips
// internal/sweep's pairwise-crossing search entirely: band boundaries
// are just the edges' own tops and bottoms, and within a band the
// active edges' relative order never changes, since an edge's x is
// constant over its whole height. The per-band winding walk and
// cross-band trap coalescing are otherwise the same shape as BO's,
// grounded on comac-bentley-ottmann-rectilinear.c's
// _active_edges_to_traps and _comac_bo_edge_start_or_continue_trap.
package rectsweep
