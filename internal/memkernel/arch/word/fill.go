//go:build !purego

package word

import "unsafe"

// Fill stores c into each of the first n bytes of dst.
// Panics if dst is shorter than n.
//
// The run is filled byte-wise up to the first word boundary, then with
// word-sized stores of the broadcast pattern, then the tail byte-wise.
func Fill(dst []byte, c byte, n int) {
	if len(dst) < n {
		panic("memkernel: slice shorter than n")
	}
	if n == 0 {
		return
	}

	i := 0
	if n >= wordBytes {
		// Align the head.
		for uintptr(unsafe.Pointer(&dst[i]))%uintptr(wordBytes) != 0 {
			dst[i] = c
			i++
		}

		// Broadcast c into every byte lane of a machine word.
		pattern := uintptr(0)
		for k := 0; k < wordBytes; k++ {
			pattern = pattern<<8 | uintptr(c)
		}

		for ; i+wordBytes <= n; i += wordBytes {
			*(*uintptr)(unsafe.Pointer(&dst[i])) = pattern
		}
	}
	for ; i < n; i++ {
		dst[i] = c
	}
}
