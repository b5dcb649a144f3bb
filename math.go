package kestrel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any signed integer or floating-point type. Unsigned types are
// excluded since coordinate differences may be negative.
type Number interface {
	constraints.Signed | constraints.Float
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Pow raises base to a non-negative integer exponent by repeated squaring.
// Negative exponents are treated as zero.
func Pow[T Number](base T, exp int) T {
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Round rounds half away from zero.
func Round(v float64) float64 {
	return math.Round(v)
}

// RoundInt rounds half away from zero and converts to int.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// Floor returns the greatest integer value <= v.
func Floor(v float64) float64 {
	return math.Floor(v)
}

// Ceil returns the least integer value >= v.
func Ceil(v float64) float64 {
	return math.Ceil(v)
}

// Min returns the smallest of its arguments. Panics when called with none.
func Min[T Number](values ...T) T {
	if len(values) == 0 {
		panic("kestrel: Min called with no values")
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest of its arguments. Panics when called with none.
func Max[T Number](values ...T) T {
	if len(values) == 0 {
		panic("kestrel: Max called with no values")
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Clamp restricts v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between lo and hi. The blend is shaped by easing before
// mixing, and the endpoints are returned exactly for blend 0 and 1.
func Lerp(lo, hi, blend float64, easing Easing) float64 {
	e := easing.Apply(blend)
	return lo*(1-e) + hi*e
}

// Normalize360 wraps an angle in degrees into [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// SnapAngle rounds deg to the nearest multiple of step and normalizes it.
// A step <= 0 leaves the angle free.
func SnapAngle(deg, step float64) float64 {
	if step <= 0 {
		return Normalize360(deg)
	}
	return Normalize360(math.Round(deg/step) * step)
}
