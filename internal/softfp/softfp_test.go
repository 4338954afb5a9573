package softfp

import (
	"math"
	"testing"
)

func TestSetRoundRestores(t *testing.T) {
	if Mode() != RoundNearest {
		t.Fatalf("initial mode = %v, want Nearest", Mode())
	}

	restore := SetRound(RoundDown)
	if Mode() != RoundDown {
		t.Fatalf("mode after SetRound = %v, want Down", Mode())
	}

	// Nested installation restores in LIFO order.
	inner := SetRound(RoundUp)
	if Mode() != RoundUp {
		t.Fatalf("nested mode = %v, want Up", Mode())
	}
	inner()
	if Mode() != RoundDown {
		t.Fatalf("mode after inner restore = %v, want Down", Mode())
	}

	restore()
	if Mode() != RoundNearest {
		t.Fatalf("mode after restore = %v, want Nearest", Mode())
	}
}

func TestSetRoundRestoresOnEveryExitPath(t *testing.T) {
	// A deferred restore must run even when the scope panics.
	func() {
		defer func() { recover() }()
		restore := SetRound(RoundUp)
		defer restore()
		panic("exit")
	}()

	if Mode() != RoundNearest {
		t.Fatalf("mode after panic = %v, want Nearest", Mode())
	}
}

func TestTrunc(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{0.5, 0},
		{0.9999, 0},
		{1, 1},
		{1.5, 1},
		{2.5, 2},
		{-0.5, 0},
		{-1.5, -1},
		{-2.5, -2},
		{1e18, 1e18},
		{-1e18, -1e18},
	}

	for _, tt := range tests {
		if got := Trunc(tt.x); got != tt.want {
			t.Errorf("Trunc(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	if got := Trunc(math.Copysign(0, -1)); math.Float64bits(got) != math.Float64bits(math.Copysign(0, -1)) {
		t.Error("Trunc(-0) must keep the sign of zero")
	}
	if !math.IsNaN(Trunc(math.NaN())) {
		t.Error("Trunc(NaN) must be NaN")
	}
	if got := Trunc(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Trunc(+Inf) = %v", got)
	}
}

func TestRoundToIntModes(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		x    float64
		want float64
	}{
		{RoundZero, 2.7, 2},
		{RoundZero, -2.7, -2},
		{RoundDown, 2.7, 2},
		{RoundDown, -2.1, -3},
		{RoundDown, 2.0, 2},
		{RoundUp, 2.1, 3},
		{RoundUp, -2.7, -2},
		{RoundUp, -2.0, -2},
		{RoundNearest, 2.4, 2},
		{RoundNearest, 2.6, 3},
		{RoundNearest, 2.5, 2}, // tie to even
		{RoundNearest, 3.5, 4}, // tie to even
		{RoundNearest, -2.5, -2},
		{RoundNearest, -3.5, -4},
	}

	for _, tt := range tests {
		restore := SetRound(tt.mode)
		got := RoundToInt(tt.x)
		restore()

		if got != tt.want {
			t.Errorf("RoundToInt(%v) in mode %v = %v, want %v", tt.x, tt.mode, got, tt.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	// Exact cases
	exact := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{16, 4},
		{1, 1},
	}
	for _, tt := range exact {
		if got := Sqrt(tt.x); got != tt.want {
			t.Errorf("Sqrt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	// Convergence within the documented threshold against the reference.
	// Starting from guess = x, large magnitudes need hundreds of halving
	// steps before the quadratic phase kicks in, so the sweep reaches the
	// top of the double range.
	for _, x := range []float64{2, 3, 10, 0.25, 123.456, 1e6, 1e-6, 1e80, 1e150, 1e300, math.MaxFloat64} {
		got := Sqrt(x)
		want := math.Sqrt(x)
		if diff := math.Abs(got - want); diff > 1e-12*want {
			t.Errorf("Sqrt(%v) = %v, reference %v", x, got, want)
		}
	}

	// IEEE edge cases
	if !math.IsNaN(Sqrt(-1)) {
		t.Error("Sqrt(-1) must be NaN")
	}
	if !math.IsNaN(Sqrt(math.NaN())) {
		t.Error("Sqrt(NaN) must be NaN")
	}
	if got := Sqrt(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Sqrt(+Inf) = %v, want +Inf", got)
	}
	if got := Sqrt(math.Copysign(0, -1)); math.Float64bits(got) != math.Float64bits(math.Copysign(0, -1)) {
		t.Error("Sqrt(-0) must preserve the sign of zero")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
		tol  float64
	}{
		{5.3, 2.0, 1.3, 1e-12},
		{7, 3, 1, 0},
		{-7, 3, -1, 0},
		{7, -3, 1, 0},
		{1e10, 7, math.Mod(1e10, 7), 1e-3},
	}

	for _, tt := range tests {
		got := Mod(tt.x, tt.y)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if !math.IsNaN(Mod(5, 0)) {
		t.Error("Mod(x, 0) must be NaN")
	}
	if !math.IsNaN(Mod(math.Inf(1), 3)) {
		t.Error("Mod(+Inf, y) must be NaN")
	}
	// The computed formula propagates 0*Inf = NaN for an infinite divisor.
	if !math.IsNaN(Mod(5, math.Inf(1))) {
		t.Error("Mod(x, +Inf) resolves to NaN through the formula")
	}
}
