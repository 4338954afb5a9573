//go:build !purego && (amd64 || arm64)

package fp

import "math"

// Sqrt returns the square root of x. On this architecture the compiler
// lowers the call to the CPU's square-root instruction, whose rounding
// behavior maps directly onto the IEEE-correct contract:
// Sqrt(x<0) is NaN, Sqrt(±0) = ±0, Sqrt(+Inf) = +Inf, Sqrt(NaN) = NaN.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
