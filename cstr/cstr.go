// Package cstr provides string operations over NUL-terminated byte
// buffers, built on the block-memory engine plus terminator scans.
//
// Every function requires its string arguments to contain a NUL
// terminator within the slice; a missing terminator is a caller contract
// violation (the scan runs off the end of the slice). Destination buffers
// must be large enough for the bytes written, terminator included.
package cstr

import "github.com/cwbudde/algo-prim/mem"

// Len returns the number of bytes in s before the first NUL terminator.
func Len(s []byte) int {
	n := 0
	for s[n] != 0 {
		n++
	}
	return n
}

// Copy copies the string in src into dst, terminator included, and
// returns dst for chaining. The buffers must not overlap.
func Copy(dst, src []byte) []byte {
	mem.Copy(dst, src, Len(src)+1)
	return dst
}

// CopyN copies at most n bytes of the string in src into dst, then
// zero-fills the remainder of dst's first n bytes. Exactly n bytes are
// written; if src's string is n bytes or longer, dst is not terminated.
// Returns dst for chaining.
func CopyN(dst, src []byte, n int) []byte {
	k := 0
	for k < n && src[k] != 0 {
		k++
	}
	mem.Copy(dst, src, k)
	mem.Fill(dst[k:], 0, n-k)
	return dst
}

// Concat appends the string in src, terminator included, after the
// string in dst and returns dst for chaining.
func Concat(dst, src []byte) []byte {
	d := Len(dst)
	mem.Copy(dst[d:], src, Len(src)+1)
	return dst
}

// ConcatN appends at most n bytes of the string in src after the string
// in dst and always writes a terminator. Returns dst for chaining.
func ConcatN(dst, src []byte, n int) []byte {
	d := Len(dst)
	k := 0
	for k < n && src[k] != 0 {
		k++
	}
	mem.Copy(dst[d:], src, k)
	dst[d+k] = 0
	return dst
}

// Compare lexicographically compares the strings in a and b as unsigned
// byte values, stopping at the first difference or at the shorter
// string's terminator. The sign carries the first byte difference.
func Compare(a, b []byte) int {
	n := Len(a) + 1
	if m := Len(b) + 1; m < n {
		n = m
	}
	return mem.Compare(a, b, n)
}

// CompareN compares at most n bytes of the strings in a and b, stopping
// early at either string's terminator.
func CompareN(a, b []byte, n int) int {
	k := 0
	for k < n && a[k] != 0 && b[k] != 0 {
		k++
	}
	if k < n {
		k++ // include the terminator or the byte that stopped the scan
	}
	return mem.Compare(a, b, k)
}

// IndexByte returns the index of the first occurrence of c in the string
// in s, or -1 if c does not occur. Searching for the NUL terminator
// finds it: IndexByte(s, 0) returns Len(s).
func IndexByte(s []byte, c byte) int {
	i := 0
	for ; s[i] != 0; i++ {
		if s[i] == c {
			return i
		}
	}
	if c == 0 {
		return i
	}
	return -1
}

// LastIndexByte returns the index of the last occurrence of c in the
// string in s, the terminator included, or -1 if c does not occur.
func LastIndexByte(s []byte, c byte) int {
	last := -1
	for i := 0; ; i++ {
		if s[i] == c {
			last = i
		}
		if s[i] == 0 {
			return last
		}
	}
}
