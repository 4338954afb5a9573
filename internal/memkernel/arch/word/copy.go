//go:build !purego

package word

import "unsafe"

// wordBytes is the natural machine word size in bytes (4 or 8).
const wordBytes = int(unsafe.Sizeof(uintptr(0)))

// bothAligned reports whether the base addresses of dst and src are both
// word-aligned. Callers guarantee the slices are non-empty.
func bothAligned(dst, src []byte) bool {
	d := uintptr(unsafe.Pointer(&dst[0]))
	s := uintptr(unsafe.Pointer(&src[0]))
	return d%uintptr(wordBytes) == 0 && s%uintptr(wordBytes) == 0
}

// CopyForward copies n bytes from src to dst, lowest address first.
// Panics if either slice is shorter than n.
//
// When both base addresses are word-aligned and n covers at least one word,
// the aligned portion is transferred in word-sized chunks and the remainder
// (n mod word size) byte-by-byte. Each word is loaded fully before it is
// stored, so the word loop stays safe for overlapping ranges with dst
// below src.
func CopyForward(dst, src []byte, n int) {
	if len(dst) < n || len(src) < n {
		panic("memkernel: slice shorter than n")
	}
	i := 0
	if n >= wordBytes && bothAligned(dst, src) {
		for ; i+wordBytes <= n; i += wordBytes {
			*(*uintptr)(unsafe.Pointer(&dst[i])) = *(*uintptr)(unsafe.Pointer(&src[i]))
		}
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
}

// CopyBackward copies n bytes from src to dst, highest address first.
// Panics if either slice is shorter than n.
//
// The backward path transfers byte-wise: it only runs for overlapping
// ranges with dst above src, where the distance between the ranges bounds
// the usable chunk size anyway.
func CopyBackward(dst, src []byte, n int) {
	if len(dst) < n || len(src) < n {
		panic("memkernel: slice shorter than n")
	}
	for i := n - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
}
