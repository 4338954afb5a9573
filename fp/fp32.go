package fp

import "math"

// IEEE-754 single-precision bit layout:
// {sign:1, exponent:8, mantissa:23}.
const (
	signMask32 = 1 << 31
	shift32    = 32 - 8 - 1
	expMask32  = 0xFF
	fracMask32 = 1<<shift32 - 1
)

// Signbit32 reports whether the sign bit of x is set.
func Signbit32(x float32) bool {
	return math.Float32bits(x)&signMask32 != 0
}

// IsFinite32 reports whether x is neither infinite nor NaN.
func IsFinite32(x float32) bool {
	return math.Float32bits(x)>>shift32&expMask32 != expMask32
}

// IsInf32 reports whether x is an infinity of either sign.
func IsInf32(x float32) bool {
	bits := math.Float32bits(x)
	return bits>>shift32&expMask32 == expMask32 && bits&fracMask32 == 0
}

// IsNaN32 reports whether x is a NaN of any payload.
func IsNaN32(x float32) bool {
	bits := math.Float32bits(x)
	return bits>>shift32&expMask32 == expMask32 && bits&fracMask32 != 0
}

// Abs32 returns the absolute value of x by clearing the sign bit.
func Abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ signMask32)
}

// Copysign32 returns a value with the magnitude of x and the sign bit
// of y, used as-is.
func Copysign32(x, y float32) float32 {
	return math.Float32frombits(
		math.Float32bits(x)&^signMask32 | math.Float32bits(y)&signMask32,
	)
}

// Min32 returns the smaller of x and y, treating a single NaN operand as
// missing.
func Min32(x, y float32) float32 {
	if x != x { // x is NaN
		return y
	}
	if y != y { // y is NaN
		return x
	}
	if x < y {
		return x
	}
	return y
}

// Max32 returns the larger of x and y, treating a single NaN operand as
// missing.
func Max32(x, y float32) float32 {
	if x != x { // x is NaN
		return y
	}
	if y != y { // y is NaN
		return x
	}
	if x > y {
		return x
	}
	return y
}

// The single-precision rounding family is defined as the double-precision
// result narrowed to float32.

// Trunc32 returns the integer part of x, rounding toward zero.
func Trunc32(x float32) float32 { return float32(Trunc(float64(x))) }

// Floor32 returns the greatest integer value not greater than x.
func Floor32(x float32) float32 { return float32(Floor(float64(x))) }

// Ceil32 returns the least integer value not less than x.
func Ceil32(x float32) float32 { return float32(Ceil(float64(x))) }

// Round32 rounds x to the nearest integer, ties away from zero.
func Round32(x float32) float32 { return float32(Round(float64(x))) }

// Sqrt32 returns the square root of x.
func Sqrt32(x float32) float32 { return float32(Sqrt(float64(x))) }

// Mod32 returns the floating-point remainder of x/y with the sign of x.
func Mod32(x, y float32) float32 { return float32(Mod(float64(x), float64(y))) }
