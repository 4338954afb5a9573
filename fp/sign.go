package fp

import "math"

// Abs returns the absolute value of x by clearing the sign bit.
// Abs(NaN) is a NaN with the sign bit cleared; Abs(-0) is +0.
func Abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ signMask64)
}

// Copysign returns a value with the magnitude of x and the sign bit of y.
// The sign bit of y is used as-is, including when y is NaN or zero.
func Copysign(x, y float64) float64 {
	return math.Float64frombits(
		math.Float64bits(x)&^signMask64 | math.Float64bits(y)&signMask64,
	)
}

// Min returns the smaller of x and y. A single NaN operand is treated as
// missing rather than poisoning: the other operand is returned. If both
// operands are NaN, the result is NaN.
func Min(x, y float64) float64 {
	if IsNaN(x) {
		return y
	}
	if IsNaN(y) {
		return x
	}
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y. A single NaN operand is treated as
// missing rather than poisoning: the other operand is returned. If both
// operands are NaN, the result is NaN.
func Max(x, y float64) float64 {
	if IsNaN(x) {
		return y
	}
	if IsNaN(y) {
		return x
	}
	if x > y {
		return x
	}
	return y
}
