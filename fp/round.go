package fp

// Round rounds x to the nearest integer, ties away from zero, using the
// floor(x+0.5) formula mirrored about zero: ceil(x-0.5) for negative x.
// The formula has a known precision bias near half-integers at large
// magnitudes (x±0.5 may not be representable); that behavior is part of
// this suite's contract and is kept as-is.
func Round(x float64) float64 {
	if Signbit(x) {
		return Ceil(x - 0.5)
	}
	return Floor(x + 0.5)
}
