// Package hull computes the convex hull of a point set via a Graham
// scan, per spec.md 4.H. It exists to turn an arbitrary pen shape
// (caller-supplied vertices for a non-circular nib) into the convex
// polygon the stroker actually walks.
//
// The scan sorts candidate points by their slope from a fixed extremal
// point and then strips any vertex that makes the running hull concave,
// exactly as comac-hull.c does it — including the curiosity that the
// sort comparator itself marks the losing point of an exact-slope tie
// for discard, rather than leaving that to a separate pass.
package hull
