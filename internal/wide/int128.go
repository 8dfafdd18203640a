package wide

// Int128 is a signed 128-bit integer stored in two's complement as two
// 64-bit halves, with Hi's sign bit carrying the overall sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128From64 widens an int64 to Int128, sign-extending as needed.
func Int128From64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// Negative reports whether a is negative.
func (a Int128) Negative() bool { return a.Hi < 0 }

func (a Int128) asUint() Uint128 { return Uint128{Hi: uint64(a.Hi), Lo: a.Lo} }

func fromUint(u Uint128) Int128 { return Int128{Hi: int64(u.Hi), Lo: u.Lo} }

// Negate returns -a.
func (a Int128) Negate() Int128 {
	return fromUint(a.asUint().Negate())
}

// Add returns a+b.
func (a Int128) Add(b Int128) Int128 {
	return fromUint(a.asUint().Add(b.asUint()))
}

// Sub returns a-b.
func (a Int128) Sub(b Int128) Int128 {
	return fromUint(a.asUint().Sub(b.asUint()))
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b,
// taking sign into account.
func (a Int128) Cmp(b Int128) int {
	aNeg, bNeg := a.Negative(), b.Negative()
	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	default:
		return a.asUint().Cmp(b.asUint())
	}
}

// Quorem128 is the quotient/remainder pair returned by Int128.DivRem.
type Quorem128 struct {
	Quo, Rem Int128
}

// DivRem computes truncated division: the quotient's sign is the XOR of the
// operand signs and the remainder's sign follows the dividend, matching
// comac's `_comac_int128_divrem`.
func (num Int128) DivRem(den Int128) Quorem128 {
	numNeg, denNeg := num.Negative(), den.Negative()
	un, ud := num.asUint(), den.asUint()
	if numNeg {
		un = un.Negate()
	}
	if denNeg {
		ud = ud.Negate()
	}
	uqr := un.DivRem(ud)

	var qr Quorem128
	if numNeg {
		qr.Rem = fromUint(uqr.Rem).Negate()
	} else {
		qr.Rem = fromUint(uqr.Rem)
	}
	if numNeg != denNeg {
		qr.Quo = fromUint(uqr.Quo).Negate()
	} else {
		qr.Quo = fromUint(uqr.Quo)
	}
	return qr
}

// MulS32x32 returns the exact int64 product of two int32 values.
func MulS32x32(a, b int32) int64 {
	return int64(a) * int64(b)
}

// MulS64x64 returns the exact Int128 product of two int64 values.
func MulS64x64(a, b int64) Int128 {
	aNeg, bNeg := a < 0, b < 0
	ua, ub := uint64(a), uint64(b)
	if aNeg {
		ua = -ua
	}
	if bNeg {
		ub = -ub
	}
	p := Mul64x64(ua, ub)
	r := fromUint(p)
	if aNeg != bNeg {
		r = r.Negate()
	}
	return r
}

// MulS64x32 returns the exact Int128 product of an int64 and an int32.
func MulS64x32(a int64, b int32) Int128 {
	return MulS64x64(a, int64(b))
}
