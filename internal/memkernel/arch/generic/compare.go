package generic

// Compare lexicographically compares the first n bytes of a and b as
// unsigned values. The result's sign carries the first byte difference:
// a[i]-b[i] at the first index i where the buffers differ, 0 if the
// prefixes are equal. Panics if either slice is shorter than n.
func Compare(a, b []byte, n int) int {
	if len(a) < n || len(b) < n {
		panic("memkernel: slice shorter than n")
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}
