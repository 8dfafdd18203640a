package fixed

// Point is a fixed-point 2D point.
type Point struct {
	X, Y Scalar
}

// Pt builds a Point.
func Pt(x, y Scalar) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q as a displacement.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Eq reports whether p and q are identical.
func (p Point) Eq(q Point) bool { return p.X == q.X && p.Y == q.Y }

// PointFromFloat64 converts a user-space (x, y) pair to a fixed-point
// Point, clamping each component with FromFloat64Clamped.
func PointFromFloat64(x, y, tol float64) Point {
	return Point{FromFloat64Clamped(x, tol), FromFloat64Clamped(y, tol)}
}

// ToFloat64 converts p to user-space coordinates.
func (p Point) ToFloat64() (x, y float64) {
	return ToFloat64(p.X), ToFloat64(p.Y)
}
