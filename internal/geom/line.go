package geom

import "github.com/gogpu/pathtess/internal/fixed"

// Line is a line segment from P1 to P2, interpreted as infinite unless
// explicitly bounded by an Edge's Top/Bottom pair.
type Line struct {
	P1, P2 fixed.Point
}

// NewLine builds a Line.
func NewLine(p1, p2 fixed.Point) Line { return Line{P1: p1, P2: p2} }

// Dx returns the horizontal delta P2.X - P1.X.
func (l Line) Dx() fixed.Scalar { return l.P2.X - l.P1.X }

// Dy returns the vertical delta P2.Y - P1.Y.
func (l Line) Dy() fixed.Scalar { return l.P2.Y - l.P1.Y }

// Slope returns the Slope of the line from P1 to P2.
func (l Line) Slope() Slope { return Slope{Dx: l.Dx(), Dy: l.Dy()} }

// Reversed returns the line with its endpoints swapped.
func (l Line) Reversed() Line { return Line{P1: l.P2, P2: l.P1} }

// Edge is a polygon edge: a line bounded by [Top, Bottom] with a fill
// direction. Top <= Bottom is an invariant; for an unclipped polygon edge,
// Top == Line.P1.Y and Bottom == Line.P2.Y.
type Edge struct {
	Line       Line
	Top, Bottom fixed.Scalar
	Dir        int32 // +1 or -1
}

// XAtY returns the edge line's x coordinate at height y, computed with a
// 64-bit intermediate. y is expected to lie within [Top, Bottom]; the edge
// is treated as the infinite line through Line.P1/Line.P2.
func (e Edge) XAtY(y fixed.Scalar) fixed.Scalar {
	dy := e.Line.Dy()
	if dy == 0 {
		return e.Line.P1.X
	}
	dx := e.Line.Dx()
	num := int64(dx) * int64(y-e.Line.P1.Y)
	return e.Line.P1.X + fixed.Scalar(num/int64(dy))
}
