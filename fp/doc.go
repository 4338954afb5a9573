// Package fp implements the floating-point primitive suite: IEEE-754
// bit-level classification, sign manipulation, rounding, square root, and
// remainder, without calling into a math library for any primitive being
// provided.
//
// Classification (Signbit, IsNaN, IsInf, IsFinite) is computed purely from
// the sign/exponent/mantissa bit fields, never by arithmetic comparison
// against infinity constants. All edge cases resolve through IEEE-754
// special-value propagation; the suite has no error channel.
//
// Floor and Ceil pair a hardware path (the compiler's directed-rounding
// instruction on amd64/arm64) with a software path that installs a
// directed mode on the softfp control word under a guarded scope,
// restoring the prior mode on every exit path. Sqrt pairs the machine
// square-root instruction with a Newton-Raphson fallback. The pairing is
// resolved at build time, never inside the operation.
//
// Round uses the floor(x+0.5) formula, rounding ties away from zero. This
// formula has a known precision bias near half-integers at large
// magnitudes; that behavior is this suite's specification and is
// deliberately not replaced with round-half-to-even.
package fp
