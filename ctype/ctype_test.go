package ctype

import "testing"

func TestClassification(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)

		wantAlpha := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		wantDigit := b >= '0' && b <= '9'

		if got := IsAlpha(b); got != wantAlpha {
			t.Errorf("IsAlpha(%#x) = %v, want %v", b, got, wantAlpha)
		}
		if got := IsDigit(b); got != wantDigit {
			t.Errorf("IsDigit(%#x) = %v, want %v", b, got, wantDigit)
		}
		if got := IsAlnum(b); got != (wantAlpha || wantDigit) {
			t.Errorf("IsAlnum(%#x) = %v", b, got)
		}
		if got := IsUpper(b); got != (b >= 'A' && b <= 'Z') {
			t.Errorf("IsUpper(%#x) = %v", b, got)
		}
		if got := IsLower(b); got != (b >= 'a' && b <= 'z') {
			t.Errorf("IsLower(%#x) = %v", b, got)
		}
	}
}

func TestIsSpace(t *testing.T) {
	spaces := []byte{' ', '\t', '\n', '\r', '\v', '\f'}
	for _, c := range spaces {
		if !IsSpace(c) {
			t.Errorf("IsSpace(%#x) = false", c)
		}
	}

	for _, c := range []byte{'a', '0', 0, 0xA0, '_'} {
		if IsSpace(c) {
			t.Errorf("IsSpace(%#x) = true", c)
		}
	}
}

func TestCaseMapping(t *testing.T) {
	if got := ToLower('A'); got != 'a' {
		t.Errorf("ToLower('A') = %c", got)
	}
	if got := ToUpper('z'); got != 'Z' {
		t.Errorf("ToUpper('z') = %c", got)
	}

	// Non-letters pass through unchanged.
	for _, c := range []byte{'0', ' ', 0, 0xFF, '-'} {
		if ToLower(c) != c || ToUpper(c) != c {
			t.Errorf("case mapping changed non-letter %#x", c)
		}
	}

	// Round trip over the alphabet.
	for c := byte('a'); c <= 'z'; c++ {
		if ToLower(ToUpper(c)) != c {
			t.Errorf("round trip failed for %c", c)
		}
	}
}
