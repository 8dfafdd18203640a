// Package geom provides the fixed-point geometric primitives shared by
// every later stage of the tessellator: points, vectors, boxes, lines and
// slopes, plus the box/segment intersection test and the slope comparator
// the sweep line and the hull builder both depend on.
//
// Everything here operates on internal/fixed.Scalar coordinates. Comparisons
// that could be sign-sensitive (slope ordering, segment/box intersection)
// are computed with 64-bit or wider intermediates via internal/wide so that
// topology decisions never depend on fixed-point rounding.
package geom
