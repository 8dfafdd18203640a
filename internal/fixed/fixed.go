package fixed

import (
	"math"

	"github.com/gogpu/pathtess/internal/wide"
)

// Scalar is a Q24.8 fixed-point number: the low Shift bits are the
// fractional part, the rest (including the sign bit) are the integer part.
type Scalar = int32

// Shift is the number of fractional bits. spec.md 4.F calls this F; 8 is
// the canonical value comac itself ships.
const Shift = 8

const (
	// One is 1.0 in fixed-point.
	One Scalar = 1 << Shift
	// Half is 0.5 in fixed-point.
	Half Scalar = 1 << (Shift - 1)
	// Epsilon is the smallest representable positive fixed-point value.
	Epsilon Scalar = 1
	// FracMask isolates the fractional bits of a Scalar.
	FracMask Scalar = One - 1
	// WholeMask isolates the integer bits of a Scalar.
	WholeMask Scalar = ^FracMask

	// Max and Min are the representable extremes.
	Max Scalar = math.MaxInt32
	Min Scalar = math.MinInt32
)

// MaxDouble and MinDouble are Max and Min expressed in user-space units.
var (
	MaxDouble = float64(Max) / float64(One)
	MinDouble = float64(Min) / float64(One)
)

// FromInt converts an integer to fixed-point. i must fit in the 24
// remaining integer bits; callers at the path-store boundary are
// responsible for rejecting coordinates that don't.
func FromInt(i int32) Scalar {
	return i << Shift
}

// ToFloat64 converts a Scalar to a float64.
func ToFloat64(f Scalar) float64 {
	return float64(f) / float64(One)
}

// magicNumber is the "add a large constant, read back the mantissa" trick
// for IEEE-754 round-to-nearest-even double-to-fixed conversion, following
// comac-fixed-private.h's derivation: (2^(52-Shift)) * 1.5. It relies on
// math.Float64bits to read the mantissa back out rather than a union cast,
// since Go has no union types.
var magicNumber = float64(int64(1)<<(52-Shift)) * 1.5

// FromFloat64 rounds d to the nearest fixed-point value, ties to even,
// using the magic-number technique. Behaviour is undefined (matches
// comac) if d is outside the representable range; callers needing a safe
// conversion should use FromFloat64Clamped.
func FromFloat64(d float64) Scalar {
	return int32(math.Float64bits(d+magicNumber) & 0xffffffff)
}

// FromFloat64Clamped clamps d into [MinDouble+tol, MaxDouble-tol] before
// converting, so that a 32-bit fixed-point delta computed from two clamped
// values can never overflow. tol is expressed in user-space units and is
// typically derived from the caller's largest expected coordinate delta.
func FromFloat64Clamped(d, tol float64) Scalar {
	lo := MinDouble + tol
	hi := MaxDouble - tol
	switch {
	case d < lo:
		d = lo
	case d > hi:
		d = hi
	}
	return FromFloat64(d)
}

// Floor returns the integer part of f, rounding toward negative infinity.
func Floor(f Scalar) Scalar {
	return f &^ FracMask
}

// Ceil returns the smallest fixed-point integer >= f.
func Ceil(f Scalar) Scalar {
	return (f + FracMask) &^ FracMask
}

// Round rounds f to the nearest fixed-point integer, with exact halfway
// values rounding toward positive infinity.
func Round(f Scalar) Scalar {
	return (f + Half) &^ FracMask
}

// RoundDown rounds f to the nearest fixed-point integer, with exact
// halfway values rounding toward negative infinity.
func RoundDown(f Scalar) Scalar {
	return (f + Half - 1) &^ FracMask
}

// IntegerFloor returns floor(f) as a plain integer, correctly handling
// negative f (Go's >> is arithmetic shift on signed integers already, so
// this is exact, unlike a naive division by One).
func IntegerFloor(f Scalar) int32 {
	return f >> Shift
}

// IntegerCeil returns ceil(f) as a plain integer.
func IntegerCeil(f Scalar) int32 {
	return (f + FracMask) >> Shift
}

// divRound divides p by c, rounding the exact result half-away-from-zero.
func divRound(p, c int64) int64 {
	q := p / c
	r := p % c
	if r == 0 {
		return q
	}
	if r < 0 {
		r = -r
	}
	ac := c
	if ac < 0 {
		ac = -ac
	}
	if 2*r >= ac {
		if (p < 0) != (c < 0) {
			q--
		} else {
			q++
		}
	}
	return q
}

// Mul returns round(a*b / One), computed in a 64-bit intermediate so the
// multiply itself never overflows.
func Mul(a, b Scalar) Scalar {
	p := int64(a) * int64(b)
	return int32(divRound(p, int64(One)))
}

// MulDiv returns round(a*b/c), computed with a 64-bit intermediate
// product. c must be non-zero.
func MulDiv(a, b, c Scalar) Scalar {
	p := int64(a) * int64(b)
	return int32(divRound(p, int64(c)))
}

// MulDivFloor returns floor(a*b/c), computed with a 64-bit intermediate
// product. c must be non-zero.
func MulDivFloor(a, b, c Scalar) Scalar {
	p := int64(a) * int64(b)
	q := p / int64(c)
	r := p % int64(c)
	if r != 0 && (r < 0) != (c < 0) {
		q--
	}
	return int32(q)
}

// Mul64 returns the exact 64-bit product of a and b without rounding,
// for callers (the sweep line) that need the unrounded determinant rather
// than a re-quantized fixed-point value.
func Mul64(a, b Scalar) int64 {
	return wide.MulS32x32(a, b)
}

// IsPixelAligned reports whether f has no fractional bits.
func IsPixelAligned(f Scalar) bool {
	return f&FracMask == 0
}
