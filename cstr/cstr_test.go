package cstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// str builds a NUL-terminated buffer from a Go string, with room spare
// bytes after the terminator.
func str(s string, room int) []byte {
	buf := make([]byte, len(s)+1+room)
	copy(buf, s)
	return buf
}

func TestLen(t *testing.T) {
	assert.Equal(t, 0, Len(str("", 0)))
	assert.Equal(t, 5, Len(str("hello", 0)))
	assert.Equal(t, 3, Len([]byte{'a', 'b', 'c', 0, 'd', 'e'}), "stops at the first terminator")
}

func TestCopy(t *testing.T) {
	dst := make([]byte, 8)
	got := Copy(dst, str("abc", 0))

	require.Equal(t, []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}, dst)
	assert.Equal(t, &dst[0], &got[0], "Copy returns dst")
}

func TestCopyN(t *testing.T) {
	tests := []struct {
		name string
		src  string
		n    int
		want []byte
	}{
		{"ShortSrcPadsZeros", "ab", 5, []byte{'a', 'b', 0, 0, 0, 0xFF}},
		{"ExactFit", "abcde", 5, []byte{'a', 'b', 'c', 'd', 'e', 0xFF}},
		{"LongSrcNoTerminator", "abcdefg", 5, []byte{'a', 'b', 'c', 'd', 'e', 0xFF}},
		{"ZeroN", "abc", 0, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
			CopyN(dst, str(tt.src, 0), tt.n)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestConcat(t *testing.T) {
	dst := str("foo", 4)
	Concat(dst, str("bar", 0))

	assert.Equal(t, []byte{'f', 'o', 'o', 'b', 'a', 'r', 0, 0}, dst)
}

func TestConcatN(t *testing.T) {
	tests := []struct {
		name string
		src  string
		n    int
		want string
	}{
		{"FullAppend", "bar", 8, "foobar"},
		{"Truncated", "barbaz", 3, "foobar"},
		{"ZeroN", "bar", 0, "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := str("foo", 10)
			ConcatN(dst, str(tt.src, 0), tt.n)

			require.Equal(t, tt.want, string(dst[:Len(dst)]))
			assert.Equal(t, byte(0), dst[Len(dst)], "always terminated")
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Zero(t, Compare(str("abc", 0), str("abc", 0)))
	assert.Zero(t, Compare(str("", 0), str("", 0)))
	assert.Negative(t, Compare(str("abc", 0), str("abd", 0)))
	assert.Positive(t, Compare(str("abd", 0), str("abc", 0)))
	assert.Negative(t, Compare(str("ab", 0), str("abc", 0)), "prefix orders first")
	assert.Positive(t, Compare(str("abc", 0), str("ab", 0)))
}

func TestCompareN(t *testing.T) {
	assert.Zero(t, CompareN(str("abcX", 0), str("abcY", 0), 3))
	assert.Negative(t, CompareN(str("abcX", 0), str("abcY", 0), 4))
	assert.Zero(t, CompareN(str("abc", 0), str("xyz", 0), 0))
	assert.Zero(t, CompareN(str("ab", 0), str("ab", 0), 10), "stops at the terminator")
	assert.Negative(t, CompareN(str("ab", 0), str("abc", 0), 10))
}

func TestIndexByte(t *testing.T) {
	s := str("hello", 0)

	assert.Equal(t, 2, IndexByte(s, 'l'), "first occurrence")
	assert.Equal(t, 0, IndexByte(s, 'h'))
	assert.Equal(t, -1, IndexByte(s, 'z'))
	assert.Equal(t, 5, IndexByte(s, 0), "searching for NUL finds the terminator")
}

func TestLastIndexByte(t *testing.T) {
	s := str("hello", 0)

	assert.Equal(t, 3, LastIndexByte(s, 'l'), "last occurrence")
	assert.Equal(t, -1, LastIndexByte(s, 'z'))
	assert.Equal(t, 5, LastIndexByte(s, 0), "terminator is searchable")
}
