// Package traps implements the trapezoid store of spec.md 4.T: the
// output of the sweep-line tessellator (BO/BR) before it is rasterized
// or re-walked into a fill-rule-correct polygon.
//
// A Trapezoid is bounded above and below by horizontal lines at Top and
// Bottom and on the sides by two (possibly slanted) edge lines
// (geom.Line); it is the
// shape comac-bentley-ottmann.c accumulates directly as its active
// edges enter and leave, without first building a full polygon mesh.
package traps
