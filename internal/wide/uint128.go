package wide

import "math/bits"

// Uint128 is an unsigned 128-bit integer stored as two 64-bit halves.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 widens a uint64 to Uint128.
func Uint128From64(lo uint64) Uint128 {
	return Uint128{Lo: lo}
}

// Uint128From32s packs two uint32 halves into a single uint64-valued
// Uint128, matching comac's `_comac_uint32s_to_uint64` helper.
func Uint128From32s(hi, lo uint32) Uint128 {
	return Uint128{Lo: uint64(hi)<<32 | uint64(lo)}
}

// Add returns a+b with wraparound on overflow.
func (a Uint128) Add(b Uint128) Uint128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns a-b with wraparound on underflow.
func (a Uint128) Sub(b Uint128) Uint128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Not returns the bitwise complement of a.
func (a Uint128) Not() Uint128 {
	return Uint128{Hi: ^a.Hi, Lo: ^a.Lo}
}

// Negate returns the two's complement negation of a.
func (a Uint128) Negate() Uint128 {
	return a.Not().Add(Uint128From64(1))
}

// Lsl returns a shifted left by n bits (0 <= n <= 128).
func (a Uint128) Lsl(n uint) Uint128 {
	switch {
	case n == 0:
		return a
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: a.Lo << (n - 64)}
	default:
		return Uint128{
			Hi: a.Hi<<n | a.Lo>>(64-n),
			Lo: a.Lo << n,
		}
	}
}

// Rsl returns a shifted right logically by n bits (0 <= n <= 128).
func (a Uint128) Rsl(n uint) Uint128 {
	switch {
	case n == 0:
		return a
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: a.Hi >> (n - 64)}
	default:
		return Uint128{
			Hi: a.Hi >> n,
			Lo: a.Lo>>n | a.Hi<<(64-n),
		}
	}
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func (a Uint128) Cmp(b Uint128) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	switch {
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	default:
		return 0
	}
}

// Lt reports whether a < b.
func (a Uint128) Lt(b Uint128) bool { return a.Cmp(b) < 0 }

// Le reports whether a <= b.
func (a Uint128) Le(b Uint128) bool { return a.Cmp(b) <= 0 }

// Eq reports whether a == b.
func (a Uint128) Eq(b Uint128) bool { return a.Hi == b.Hi && a.Lo == b.Lo }

// IsZero reports whether a is zero.
func (a Uint128) IsZero() bool { return a.Hi == 0 && a.Lo == 0 }

// Lo64 extracts the low 64 bits. The caller asserts a.Hi == 0.
func (a Uint128) Lo64() uint64 { return a.Lo }

// msbSet64 reports whether bit 63 of hi is set, mirroring comac's
// `_comac_msbset64` used to decide when normalization must stop to avoid
// shifting the divisor's top bit out.
func msbSet64(hi uint64) bool {
	return hi&(1<<63) != 0
}

// Uquorem128 is the quotient/remainder pair returned by Uint128.DivRem.
type Uquorem128 struct {
	Quo, Rem Uint128
}

// DivRem computes num/den using bit-at-a-time restoring division: the
// divisor is shifted left until it would overflow or exceed the numerator,
// then one quotient bit is produced per iteration while shifting the
// divisor back down. This mirrors comac's `_comac_uint128_divrem` exactly,
// including its normalization stopping condition, so that two
// re-implementations of the fixed-point tessellator round identically on
// coincident edges.
func (num Uint128) DivRem(den Uint128) Uquorem128 {
	bit := Uint128From64(1)
	for den.Lt(num) && !msbSet64(den.Hi) {
		bit = bit.Lsl(1)
		den = den.Lsl(1)
	}
	quo := Uint128{}
	for !bit.IsZero() {
		if den.Le(num) {
			num = num.Sub(den)
			quo = quo.Add(bit)
		}
		bit = bit.Rsl(1)
		den = den.Rsl(1)
	}
	return Uquorem128{Quo: quo, Rem: num}
}

// Mul64x64 returns the full 128-bit product of two uint64 values.
func Mul64x64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul32x32 returns the 64-bit product of two uint32 values.
func Mul32x32(a, b uint32) uint64 {
	return uint64(a) * uint64(b)
}
