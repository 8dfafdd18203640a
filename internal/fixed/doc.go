// Package fixed implements the Q24.8 fixed-point scalar and point
// arithmetic the tessellator builds on.
//
// A fixed-point representation is used instead of float64 because the
// sweep-line tessellator's topology (which edges cross, in what order)
// must not change when the same geometry is computed twice; floating-point
// rounding in intermediate sums can flip a comparison's sign between two
// otherwise-identical runs. Fixed-point values are plain int32s, so
// comparisons are exact, and every multiply or divide that could overflow
// 32 bits is computed in a 64-bit intermediate instead of silently
// wrapping.
//
// The fractional width is a compile-time constant (Shift, currently 8,
// giving 24 integer bits and 8 fractional bits — "Q24.8" in spec.md's
// terms). Changing Shift changes every derived constant in this file but
// nothing else in the tessellator, by design.
//
// # Rounding modes
//
// comac's sweep line deliberately uses different rounding rules at
// different boundaries — floor when accumulating a monotonically growing
// box, round-half-to-even when converting a user's double literal, and a
// round-half-down variant when rasterizing with antialiasing disabled — and
// swapping any one of them changes which pixels a shape covers at its
// edges. This package keeps the four modes spec.md 4.F names (Floor, Ceil,
// Round, RoundDown) as distinct functions rather than a single
// parameterized one, so a caller can't accidentally use the wrong rounding
// rule by passing the wrong enum value.
package fixed
