package generic

// Fill stores c into each of the first n bytes of dst.
// Panics if dst is shorter than n.
// This is the pure Go byte-loop fallback implementation.
func Fill(dst []byte, c byte, n int) {
	if len(dst) < n {
		panic("memkernel: slice shorter than n")
	}
	for i := 0; i < n; i++ {
		dst[i] = c
	}
}
