// Package num provides integer helpers: absolute values and
// find-first-set bit scans.
package num

// Abs returns the absolute value of x. The minimum int value has no
// positive counterpart and maps to itself.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Abs32 returns the absolute value of x.
func Abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Abs64 returns the absolute value of x.
func Abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// FFS32 returns the 1-based position of the least significant set bit of
// x, or 0 if x is 0.
func FFS32(x uint32) int {
	if x == 0 {
		return 0
	}

	pos := 1
	if x&0xFFFF == 0 {
		pos += 16
		x >>= 16
	}
	if x&0xFF == 0 {
		pos += 8
		x >>= 8
	}
	if x&0xF == 0 {
		pos += 4
		x >>= 4
	}
	if x&0x3 == 0 {
		pos += 2
		x >>= 2
	}
	if x&0x1 == 0 {
		pos++
	}
	return pos
}

// FFS64 returns the 1-based position of the least significant set bit of
// x, or 0 if x is 0.
func FFS64(x uint64) int {
	if x == 0 {
		return 0
	}
	if low := uint32(x); low != 0 {
		return FFS32(low)
	}
	return 32 + FFS32(uint32(x>>32))
}
