// Package path implements the path store: an ordered op+point stream with
// incremental invariants (extents, rectilinearity, region hint), matching
// spec.md 4.P.
//
// The point storage is a chain of fixed-size chunks that double in
// capacity each time the trailing chunk fills, rather than one endlessly
// reallocated slice — the same "small embedded buffer, then doubling heap
// chunks" shape spec.md §3 describes for polygons and boxes sets, and the
// one gogpu/gg's own internal/path/flatten.go does not need (it flattens
// into a single []Point) but the teacher's top-level Path (path.go) at
// least gestures at with its `elements []PathElement` slice. Flags
// (extents, rectilinearity, "maybe a region") are maintained incrementally
// on every mutating call and only ever move from "maybe true" to "false" —
// never back — matching spec.md's monotonic-downgrade invariant. The one
// exception is the region hint, which Transform's scale/translate fast
// path recomputes from scratch over every transformed point.
package path
