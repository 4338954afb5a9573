//go:build purego || !(amd64 || arm64)

package fp

import "github.com/cwbudde/algo-prim/internal/softfp"

// Sqrt returns the square root of x. This is the software path:
// Newton-Raphson iteration with an absolute convergence threshold, a
// documented precision/performance tradeoff against the hardware
// instruction. Edge cases follow IEEE-754: Sqrt(x<0) is NaN,
// Sqrt(±0) = ±0, Sqrt(+Inf) = +Inf, Sqrt(NaN) = NaN.
func Sqrt(x float64) float64 {
	return softfp.Sqrt(x)
}
