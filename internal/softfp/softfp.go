// Package softfp provides the portable software fallbacks for the
// floating-point primitive suite: bit-level truncation, directed rounding
// under an explicit rounding-mode control word, Newton-Raphson square
// root, and formula-based remainder.
//
// The control word models the hardware floating-point rounding-mode
// register that directed rounding on a real FPU would install and restore.
// SetRound returns a restore closure so callers can express the
// save/install/restore sequence as a guarded scope (defer), guaranteeing
// restoration on every exit path.
package softfp

import "math"

// IEEE-754 double-precision bit layout.
const (
	signMask = 1 << 63
	fracMask = 1<<shift - 1
	expMask  = 0x7FF
	shift    = 64 - 11 - 1
	bias     = 1023
)

// RoundingMode selects how RoundToInt resolves fractional values.
type RoundingMode uint8

const (
	// RoundNearest rounds to the nearest integer, ties to even.
	RoundNearest RoundingMode = iota

	// RoundZero rounds toward zero (truncation).
	RoundZero

	// RoundDown rounds toward negative infinity.
	RoundDown

	// RoundUp rounds toward positive infinity.
	RoundUp
)

// String returns a human-readable name for the rounding mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundNearest:
		return "Nearest"
	case RoundZero:
		return "Zero"
	case RoundDown:
		return "Down"
	case RoundUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// control is the software rendition of the FPU control register. Only the
// rounding-mode field exists. The suite is single-threaded by contract;
// the only writer is the SetRound/restore pair around a directed round.
var control = struct {
	round RoundingMode
}{round: RoundNearest}

// Mode returns the rounding mode currently installed in the control word.
func Mode() RoundingMode {
	return control.round
}

// SetRound installs mode in the control word and returns a closure that
// restores the previous mode. Callers must run the closure on every exit
// path, normally via defer:
//
//	restore := softfp.SetRound(softfp.RoundDown)
//	defer restore()
func SetRound(mode RoundingMode) (restore func()) {
	prev := control.round
	control.round = mode
	return func() {
		control.round = prev
	}
}

// Trunc returns the integer part of x, rounding toward zero, computed
// purely on the bit pattern. NaN, infinities, and values too large to
// carry a fraction pass through unchanged; signed zero keeps its sign.
func Trunc(x float64) float64 {
	bits := math.Float64bits(x)
	exp := int(bits>>shift&expMask) - bias

	switch {
	case exp < 0:
		// |x| < 1: only the sign survives.
		bits &= signMask
	case exp < shift:
		bits &^= fracMask >> uint(exp)
	}
	// exp >= shift: already integral (also covers Inf and NaN).

	return math.Float64frombits(bits)
}

// RoundToInt rounds x to an integral value honoring the rounding mode
// currently installed in the control word. NaN and infinities pass
// through unchanged via the truncation path.
func RoundToInt(x float64) float64 {
	t := Trunc(x)

	switch control.round {
	case RoundZero:
		return t
	case RoundDown:
		if t > x {
			return t - 1
		}
		return t
	case RoundUp:
		if t < x {
			return t + 1
		}
		return t
	}

	// RoundNearest, ties to even.
	d := x - t
	switch {
	case d > 0.5 || (d == 0.5 && Trunc(t/2)*2 != t):
		return t + 1
	case d < -0.5 || (d == -0.5 && Trunc(t/2)*2 != t):
		return t - 1
	}
	return t
}

// Sqrt computes the square root of x by Newton-Raphson iteration from an
// initial guess of x, refining until successive guesses differ by less
// than sqrtEpsilon. The absolute convergence threshold is a documented
// precision/performance tradeoff against a hardware square-root
// instruction: results are not bit-exact IEEE in all cases, and callers
// needing bit-exact rounding should prefer the hardware path.
//
// Edge cases follow IEEE-754: Sqrt(x<0) and Sqrt(NaN) are NaN,
// Sqrt(±0) = ±0, Sqrt(+Inf) = +Inf.
func Sqrt(x float64) float64 {
	const sqrtEpsilon = 1e-15

	bits := math.Float64bits(x)
	switch {
	case bits&^signMask == 0:
		// ±0: preserve the sign of zero.
		return x
	case bits&signMask != 0:
		// Negative (including -Inf): no real root.
		return math.NaN()
	case bits>>shift&expMask == expMask:
		// +Inf stays +Inf; NaN stays NaN.
		return x
	}

	// For large x the absolute threshold is below one ulp of the root, so
	// the loop also stops on a fixed point or on a one-ulp two-cycle
	// between successive guesses. Either way the iteration ends only once
	// the guess has stopped improving.
	guess := x
	var prev, prevPrev float64
	for {
		prevPrev = prev
		prev = guess
		guess = (guess + x/guess) * 0.5
		diff := guess - prev
		if diff < 0 {
			diff = -diff
		}
		if diff <= sqrtEpsilon || guess == prev || guess == prevPrev {
			break
		}
	}
	return guess
}

// Mod computes the remainder x - n*y where n = Trunc(x/y), carrying the
// sign of x for y != 0. Mod(x, 0) is NaN. The computed formula stays
// correct for large quotients, unlike repeated subtraction; NaN and
// infinity operands resolve through ordinary IEEE propagation in the
// division and multiplication.
func Mod(x, y float64) float64 {
	if y == 0 {
		return math.NaN()
	}
	return x - Trunc(x/y)*y
}
