// Package wide provides overflow-safe wide integer arithmetic for the
// fixed-point tessellator.
//
// Line intersection in the sweep-line tessellator multiplies two 32-bit
// fixed-point deltas together and compares or divides the results; a plain
// int64 multiply already risks overflow once both operands approach the
// fixed-point layer's 32-bit range, and the division that turns a
// determinant ratio into an intersection coordinate needs a full 128-bit
// numerator over a 64-bit denominator. This package supplies exactly the
// mixed-width multiplies and the two division primitives
// (internal/sweep needs) that make those computations exact instead of
// approximate, without pulling in a general-purpose bignum package.
//
// # Types
//
//   - Uint128 / Int128: 128-bit values stored as (hi, lo) uint64 pairs.
//   - mixed-width multiplies: Mul32x32, Mul64x64, MulS32x32, MulS64x64,
//     MulS64x32, each producing the next integer width up.
//
// # Division
//
//   - Uint128.DivRem divides two Uint128 values using bit-at-a-time
//     restoring division (one iteration per bit of the normalization
//     shift, plus one), matching
//     the algorithm comac's wideint layer uses so that rounding behaviour
//     stays reproducible across re-implementations.
//   - DivRem96by64 divides a 96-bit numerator (supplied as a Uint128 whose
//     top 32 bits must be zero) by a 64-bit denominator, producing a
//     32-bit quotient and 64-bit remainder; on overflow it saturates the
//     quotient to math.MaxUint32 and sets the remainder to the divisor,
//     which callers use to detect and recover from DivisionOverflow.
package wide
