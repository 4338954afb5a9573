package mem

import (
	"github.com/cwbudde/algo-prim/internal/memkernel"
)

// Copy copies the first n bytes of src into dst and returns dst for
// chaining. The ranges must not overlap; Copy does not check for overlap,
// that is the caller's contract (use Move for possibly-overlapping ranges).
// n=0 is a no-op. Panics if either slice is shorter than n.
func Copy(dst, src []byte, n int) []byte {
	if n == 0 {
		return dst
	}
	memkernel.CopyForward(dst, src, n)
	return dst
}

// Move copies the first n bytes of src into dst and returns dst for
// chaining. The ranges may overlap: the result is as if src were fully
// read into a temporary buffer before any byte of dst is written.
// n=0 is a no-op. Panics if either slice is shorter than n.
//
// The copy direction is chosen by an explicit three-way split:
// disjoint ranges and overlapping ranges with dst below src copy forward
// (writes never overtake unread source bytes); overlapping ranges with
// dst above src copy backward, starting from the last byte.
func Move(dst, src []byte, n int) []byte {
	if n == 0 {
		return dst
	}

	d := base(dst)
	s := base(src)
	if d == s {
		return dst
	}

	// Ranges [s, s+n) and [d, d+n) overlap iff s < d+n && d < s+n.
	if s < d+uintptr(n) && d < s+uintptr(n) {
		if d < s {
			memkernel.CopyForward(dst, src, n)
		} else {
			memkernel.CopyBackward(dst, src, n)
		}
		return dst
	}

	// Non-overlapping: forward copy for throughput.
	memkernel.CopyForward(dst, src, n)
	return dst
}

// Fill stores the byte c into each of the first n bytes of dst and returns
// dst for chaining. n=0 is a no-op. Panics if dst is shorter than n.
func Fill(dst []byte, c byte, n int) []byte {
	if n == 0 {
		return dst
	}
	memkernel.Fill(dst, c, n)
	return dst
}

// Compare lexicographically compares the first n bytes of a and b as
// unsigned byte values. It returns a negative value, 0, or a positive
// value; at the first differing byte the sign (and magnitude) is that of
// a[i]-b[i]. n=0, or n equal bytes, yield 0.
// Panics if either slice is shorter than n.
func Compare(a, b []byte, n int) int {
	if n == 0 {
		return 0
	}
	return memkernel.Compare(a, b, n)
}
