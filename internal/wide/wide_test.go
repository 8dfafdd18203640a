package wide

import (
	"math"
	"testing"
)

func TestUint128AddSub(t *testing.T) {
	a := Uint128{Hi: 0, Lo: math.MaxUint64}
	b := Uint128From64(1)
	got := a.Add(b)
	want := Uint128{Hi: 1, Lo: 0}
	if !got.Eq(want) {
		t.Fatalf("Add carry: got %+v, want %+v", got, want)
	}
	if back := got.Sub(b); !back.Eq(a) {
		t.Fatalf("Sub borrow: got %+v, want %+v", back, a)
	}
}

func TestUint128ShiftRoundTrip(t *testing.T) {
	a := Uint128{Hi: 0x1, Lo: 0x8000000000000000}
	shifted := a.Lsl(1)
	want := Uint128{Hi: 0x3, Lo: 0}
	if !shifted.Eq(want) {
		t.Fatalf("Lsl: got %+v, want %+v", shifted, want)
	}
	back := shifted.Rsl(1)
	if !back.Eq(a) {
		t.Fatalf("Rsl: got %+v, want %+v", back, a)
	}
}

func TestUint128Cmp(t *testing.T) {
	small := Uint128From64(5)
	big := Uint128{Hi: 1, Lo: 0}
	if small.Cmp(big) >= 0 {
		t.Fatal("expected small < big")
	}
	if big.Cmp(small) <= 0 {
		t.Fatal("expected big > small")
	}
	if small.Cmp(small) != 0 {
		t.Fatal("expected equal")
	}
}

func TestUint128DivRem(t *testing.T) {
	tests := []struct {
		num, den   Uint128
		wantQ, wantR uint64
	}{
		{Uint128From64(100), Uint128From64(7), 14, 2},
		{Uint128From64(0), Uint128From64(5), 0, 0},
		{Uint128From64(1000000), Uint128From64(1), 1000000, 0},
	}
	for _, tt := range tests {
		qr := tt.num.DivRem(tt.den)
		if qr.Quo.Hi != 0 || qr.Quo.Lo != tt.wantQ || qr.Rem.Hi != 0 || qr.Rem.Lo != tt.wantR {
			t.Errorf("DivRem(%v,%v) = q=%v r=%v, want q=%d r=%d", tt.num, tt.den, qr.Quo, qr.Rem, tt.wantQ, tt.wantR)
		}
	}
}

func TestUint128DivRemLargeNormalizes(t *testing.T) {
	num := Uint128{Hi: 1, Lo: 0}
	den := Uint128From64(3)
	qr := num.DivRem(den)
	// 2^64 / 3 = 6148914691236517205 remainder 1.
	if qr.Quo.Hi != 0 || qr.Quo.Lo != 6148914691236517205 || qr.Rem.Lo != 1 {
		t.Fatalf("DivRem large: got q=%+v r=%+v", qr.Quo, qr.Rem)
	}
}

func TestInt128DivRemSigns(t *testing.T) {
	cases := []struct {
		num, den   int64
		wantQ, wantR int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
	}
	for _, c := range cases {
		qr := Int128From64(c.num).DivRem(Int128From64(c.den))
		gotQ := toInt64(qr.Quo)
		gotR := toInt64(qr.Rem)
		if gotQ != c.wantQ || gotR != c.wantR {
			t.Errorf("DivRem(%d,%d) = q=%d r=%d, want q=%d r=%d", c.num, c.den, gotQ, gotR, c.wantQ, c.wantR)
		}
	}
}

func toInt64(v Int128) int64 {
	if v.Negative() {
		neg := v.Negate()
		return -int64(neg.Lo)
	}
	return int64(v.Lo)
}

func TestMulS64x64(t *testing.T) {
	got := MulS64x64(-5, 7)
	want := Int128From64(-35)
	if got.Cmp(want) != 0 {
		t.Fatalf("MulS64x64(-5,7) = %+v, want %+v", got, want)
	}
}

func TestDivRem96by64Overflow(t *testing.T) {
	num := Uint128{Hi: 0, Lo: math.MaxUint64}
	got := DivRem96by64(num, 1)
	if got.Quo != math.MaxUint32 {
		t.Fatalf("expected saturated quotient, got %d", got.Quo)
	}
	if got.Rem != 1 {
		t.Fatalf("expected remainder == divisor on overflow, got %d", got.Rem)
	}
}

func TestDivRem96by64Normal(t *testing.T) {
	num := Uint128From64(1000)
	got := DivRem96by64(num, 7)
	if got.Quo != 142 || got.Rem != 6 {
		t.Fatalf("DivRem96by64(1000,7) = q=%d r=%d, want q=142 r=6", got.Quo, got.Rem)
	}
}
