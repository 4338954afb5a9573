package fp

import "math"

// IEEE-754 double-precision bit layout:
// {sign:1, exponent:11, mantissa:52}.
const (
	signMask64 = 1 << 63
	shift64    = 64 - 11 - 1
	expMask64  = 0x7FF
	fracMask64 = 1<<shift64 - 1
)

// Signbit reports whether the sign bit of x is set. This distinguishes
// -0.0 from +0.0 and reports the sign of NaN payloads as encoded.
func Signbit(x float64) bool {
	return math.Float64bits(x)&signMask64 != 0
}

// IsFinite reports whether x is neither infinite nor NaN: true unless the
// exponent field is all ones.
func IsFinite(x float64) bool {
	return math.Float64bits(x)>>shift64&expMask64 != expMask64
}

// IsInf reports whether x is an infinity of either sign: exponent field
// all ones and mantissa field zero.
func IsInf(x float64) bool {
	bits := math.Float64bits(x)
	return bits>>shift64&expMask64 == expMask64 && bits&fracMask64 == 0
}

// IsNaN reports whether x is a NaN of any payload: exponent field all
// ones and mantissa field nonzero.
func IsNaN(x float64) bool {
	bits := math.Float64bits(x)
	return bits>>shift64&expMask64 == expMask64 && bits&fracMask64 != 0
}
