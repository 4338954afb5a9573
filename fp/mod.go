package fp

import "math"

// Mod returns the floating-point remainder of x/y with the sign of x:
// x - n*y where n = Trunc(x/y), for y != 0. Mod(x, 0) is NaN for every x.
// NaN and infinity operands resolve through IEEE propagation in the
// division and multiplication. The computed formula stays correct for
// large quotients, unlike repeated subtraction.
func Mod(x, y float64) float64 {
	if y == 0 {
		return math.NaN()
	}
	return x - Trunc(x/y)*y
}
