//go:build purego || !(amd64 || arm64)

package fp

import "github.com/cwbudde/algo-prim/internal/softfp"

// Trunc returns the integer part of x, rounding toward zero.
// This is the software path, computed on the bit pattern.
func Trunc(x float64) float64 {
	return softfp.Trunc(x)
}

// Floor returns the greatest integer value not greater than x (rounding
// toward negative infinity). This is the software path: it installs the
// directed round-down mode on the softfp control word, rounds, and
// restores the previous mode on every exit path. No caller ever observes
// an altered rounding mode after the call returns.
func Floor(x float64) float64 {
	restore := softfp.SetRound(softfp.RoundDown)
	defer restore()
	return softfp.RoundToInt(x)
}

// Ceil returns the least integer value not less than x (rounding toward
// positive infinity). This is the software path: it installs the directed
// round-up mode on the softfp control word, rounds, and restores the
// previous mode on every exit path.
func Ceil(x float64) float64 {
	restore := softfp.SetRound(softfp.RoundUp)
	defer restore()
	return softfp.RoundToInt(x)
}
