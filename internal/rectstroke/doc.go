// Package rectstroke implements RX, spec.md 4.RX: the rectilinear
// fast-path stroker. It applies only to axis-aligned paths stroked with
// a miter join whose limit never bevels a right angle, a butt or
// square cap, and a shear-free CTM — the precondition comac's own
// rectilinear stroker checks before PS's general face/join machinery
// ever runs.
//
// Stroking a straight run of horizontal/vertical segments reduces to
// expanding each into a box and patching the corners where two
// differently-oriented segments meet; the result boxes generally
// overlap at those corners and at self-intersections of the original
// path, so the final step always routes them through rectsweep to
// de-overlap under the winding rule, matching comac's own "we do not
// eliminate self-intersections incrementally" approach.
//
// Grounded on original_source/src/comac-path-stroke-boxes.c.
package rectstroke
