//go:build !purego

package word

import "unsafe"

// Compare lexicographically compares the first n bytes of a and b as
// unsigned values. The result's sign carries the first byte difference:
// a[i]-b[i] at the first index i where the buffers differ, 0 if the
// prefixes are equal. Panics if either slice is shorter than n.
//
// Equal word-aligned runs are skipped a word at a time; the first unequal
// word is resolved byte-wise, which keeps the result independent of byte
// order.
func Compare(a, b []byte, n int) int {
	if len(a) < n || len(b) < n {
		panic("memkernel: slice shorter than n")
	}
	i := 0
	if n >= wordBytes && bothAligned(a, b) {
		for ; i+wordBytes <= n; i += wordBytes {
			wa := *(*uintptr)(unsafe.Pointer(&a[i]))
			wb := *(*uintptr)(unsafe.Pointer(&b[i]))
			if wa != wb {
				break
			}
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}
