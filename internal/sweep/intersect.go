package sweep

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/wide"
)

// det32_64 returns a*d - b*c as an exact int64, comac's det32_64.
func det32_64(a, b, c, d fixed.Scalar) int64 {
	return wide.MulS32x32(a, d) - wide.MulS32x32(b, c)
}

func isZero128(v wide.Int128) bool { return v.Hi == 0 && v.Lo == 0 }

// roundedQuotient applies comac's intersect_lines rounding-bias nudge: a
// quotient whose remainder is more than half the divisor (in magnitude,
// sign-aligned to the divisor) is nudged away from zero by one, per
// spec.md §9's "intersection rounding bias" open question. Returns the
// final int32 ordinate.
func roundedQuotient(qr wide.Quorem128, denDet int64) int32 {
	quo, rem := qr.Quo, qr.Rem
	if !isZero128(rem) {
		denNeg := denDet < 0
		if denNeg != rem.Negative() {
			rem = rem.Negate()
		}
		rem = rem.Add(rem)
		if c := rem.Cmp(wide.Int128From64(denDet)); (!denNeg && c > 0) || (denNeg && c < 0) {
			if quo.Negative() {
				quo = quo.Sub(wide.Int128From64(1))
			} else {
				quo = quo.Add(wide.Int128From64(1))
			}
		}
	}
	return int32(quo.Lo)
}

// intersectLines computes the intersection of the infinite lines through
// a and b's two endpoints, faithfully porting comac-bentley-ottmann.c's
// intersect_lines: it first rejects any intersection falling outside
// either line's own [P1, P2] range using only int64 determinants (no
// division), then computes the exact intersection ordinates via a
// 128-bit numerator over an int64 denominator.
func intersectLines(a, b geom.Line) (x, y fixed.Scalar, ok bool) {
	dx1 := a.P1.X - a.P2.X
	dy1 := a.P1.Y - a.P2.Y
	dx2 := b.P1.X - b.P2.X
	dy2 := b.P1.Y - b.P2.Y

	denDet := det32_64(dx1, dy1, dx2, dy2)
	if denDet == 0 {
		return 0, 0, false
	}

	r := det32_64(dx2, dy2, b.P1.X-a.P1.X, b.P1.Y-a.P1.Y)
	if denDet < 0 {
		if denDet >= r {
			return 0, 0, false
		}
	} else {
		if denDet <= r {
			return 0, 0, false
		}
	}

	r = det32_64(dy1, dx1, a.P1.Y-b.P1.Y, a.P1.X-b.P1.X)
	if denDet < 0 {
		if denDet >= r {
			return 0, 0, false
		}
	} else {
		if denDet <= r {
			return 0, 0, false
		}
	}

	aDet := det32_64(a.P1.X, a.P1.Y, a.P2.X, a.P2.Y)
	bDet := det32_64(b.P1.X, b.P1.Y, b.P2.X, b.P2.Y)
	den128 := wide.Int128From64(denDet)

	numX := wide.MulS64x32(aDet, dx2).Sub(wide.MulS64x32(bDet, dx1))
	qrX := numX.DivRem(den128)
	if qrX.Rem.Cmp(den128) == 0 {
		return 0, 0, false
	}
	x = fixed.Scalar(roundedQuotient(qrX, denDet))

	numY := wide.MulS64x32(aDet, dy2).Sub(wide.MulS64x32(bDet, dy1))
	qrY := numY.DivRem(den128)
	if qrY.Rem.Cmp(den128) == 0 {
		return 0, 0, false
	}
	y = fixed.Scalar(roundedQuotient(qrY, denDet))

	return x, y, true
}
