//go:build !purego && (amd64 || arm64)

package fp

import "math"

// Trunc returns the integer part of x, rounding toward zero.
// On this architecture the compiler lowers the call to the CPU's
// round-toward-zero instruction.
func Trunc(x float64) float64 {
	return math.Trunc(x)
}

// Floor returns the greatest integer value not greater than x (rounding
// toward negative infinity). On this architecture the compiler lowers the
// call to the CPU's directed-rounding instruction, so no rounding-mode
// control state is touched.
func Floor(x float64) float64 {
	return math.Floor(x)
}

// Ceil returns the least integer value not less than x (rounding toward
// positive infinity). On this architecture the compiler lowers the call
// to the CPU's directed-rounding instruction, so no rounding-mode control
// state is touched.
func Ceil(x float64) float64 {
	return math.Ceil(x)
}
