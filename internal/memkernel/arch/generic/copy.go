package generic

// CopyForward copies n bytes from src to dst, lowest address first.
// Panics if either slice is shorter than n.
// This is the pure Go byte-loop fallback implementation.
func CopyForward(dst, src []byte, n int) {
	if len(dst) < n || len(src) < n {
		panic("memkernel: slice shorter than n")
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
}

// CopyBackward copies n bytes from src to dst, highest address first.
// Panics if either slice is shorter than n.
// This is the pure Go byte-loop fallback implementation.
func CopyBackward(dst, src []byte, n int) {
	if len(dst) < n || len(src) < n {
		panic("memkernel: slice shorter than n")
	}
	for i := n - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
}
