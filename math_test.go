package kestrel

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Error("Abs(int) wrong")
	}
	assertNear(t, "Abs(-2.5)", Abs(-2.5), 2.5)
}

func TestPow(t *testing.T) {
	tests := []struct {
		base float64
		exp  int
		want float64
	}{
		{2, 0, 1},
		{2, 1, 2},
		{2, 10, 1024},
		{-3, 3, -27},
		{0.5, 2, 0.25},
		{7, -2, 1},
	}
	for _, tt := range tests {
		assertNear(t, "Pow", Pow(tt.base, tt.exp), tt.want)
	}
	if Pow(3, 4) != 81 {
		t.Errorf("Pow(3, 4) = %d, want 81", Pow(3, 4))
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-2.5, -3},
		{2.4999, 2},
		{-2.4999, -2},
	}
	for _, tt := range tests {
		if got := RoundInt(tt.in); got != tt.want {
			t.Errorf("RoundInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	assertNear(t, "Floor(-1.5)", Floor(-1.5), -2)
	assertNear(t, "Ceil(-1.5)", Ceil(-1.5), -1)
}

func TestMinMax(t *testing.T) {
	if Min(3, 1, 2) != 1 {
		t.Error("Min(3,1,2) != 1")
	}
	if Max(3, 1, 2) != 3 {
		t.Error("Max(3,1,2) != 3")
	}
	assertNear(t, "Min single", Min(4.5), 4.5)
	assertPanics(t, "Min()", func() { Min[int]() })
	assertPanics(t, "Max()", func() { Max[float64]() })
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp wrong")
	}
}

func TestLerpEndpointsExact(t *testing.T) {
	lo, hi := 0.1, 0.7
	for _, e := range Easings() {
		if got := Lerp(lo, hi, 0, e); got != lo {
			t.Errorf("Lerp(%v, blend 0) = %v, want exactly %v", e, got, lo)
		}
		if got := Lerp(lo, hi, 1, e); got != hi {
			t.Errorf("Lerp(%v, blend 1) = %v, want exactly %v", e, got, hi)
		}
	}
	assertNear(t, "Lerp linear mid", Lerp(10, 20, 0.5, Linear), 15)
}

func TestNormalize360(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{720, 0},
		{-90, 270},
		{450, 90},
		{-360, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		assertNear(t, "Normalize360", Normalize360(tt.in), tt.want)
	}
}

func TestSnapAngle(t *testing.T) {
	tests := []struct{ in, step, want float64 }{
		{44, 90, 0},
		{46, 90, 90},
		{135, 90, 180},
		{-100, 90, 270},
		{359, 90, 0},
		{30, 0, 30},
	}
	for _, tt := range tests {
		assertNear(t, "SnapAngle", SnapAngle(tt.in, tt.step), tt.want)
	}
}
