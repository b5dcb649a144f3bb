package kestrel

import "math"

// Vector is an (X, Y) pair. Integer vectors live in pixel space, float
// vectors in world space.
type Vector[T Number] struct {
	X, Y T
}

// Vec2 is a world-space vector: translates, scales and pivots.
type Vec2 = Vector[float64]

// PixelPos is an integer screen-space position (y down).
type PixelPos = Vector[int]

// PixelSize is an integer screen-space size.
type PixelSize = Vector[int]

// Vec builds a Vector.
func Vec[T Number](x, y T) Vector[T] {
	return Vector[T]{X: x, Y: y}
}

// Add returns v + o.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	return Vector[T]{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	return Vector[T]{v.X - o.X, v.Y - o.Y}
}

// Mul returns the componentwise product.
func (v Vector[T]) Mul(o Vector[T]) Vector[T] {
	return Vector[T]{v.X * o.X, v.Y * o.Y}
}

// Div returns the componentwise quotient. Integer division by a zero
// component panics like any Go integer division.
func (v Vector[T]) Div(o Vector[T]) Vector[T] {
	return Vector[T]{v.X / o.X, v.Y / o.Y}
}

// Scale multiplies both components by k.
func (v Vector[T]) Scale(k T) Vector[T] {
	return Vector[T]{v.X * k, v.Y * k}
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{-v.X, -v.Y}
}

// Half returns v with both components halved: the center offset of a size.
func (v Vector[T]) Half() Vector[T] {
	return Vector[T]{v.X / 2, v.Y / 2}
}

// Magnitude is |X| + |Y|, the ordering key used by Less. It is not the
// Euclidean length.
func (v Vector[T]) Magnitude() T {
	return Abs(v.X) + Abs(v.Y)
}

// Less orders vectors by Magnitude.
func (v Vector[T]) Less(o Vector[T]) bool {
	return v.Magnitude() < o.Magnitude()
}

// IsZero reports whether both components are zero.
func (v Vector[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates v around pivot by deg degrees, counter-clockwise in a
// y-up space. Integer vectors are rounded half away from zero.
func (v Vector[T]) Rotate(pivot Vector[T], deg float64) Vector[T] {
	if deg == 0 {
		return v
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	dx := float64(v.X - pivot.X)
	dy := float64(v.Y - pivot.Y)
	x := float64(pivot.X) + dx*cos - dy*sin
	y := float64(pivot.Y) + dx*sin + dy*cos
	return Vector[T]{fromFloat[T](x), fromFloat[T](y)}
}

// MakeRect builds the rect centered at v with the given size.
func (v Vector[T]) MakeRect(size Vector[T]) Rect[T] {
	return Rect[T]{X: v.X, Y: v.Y, W: size.X, H: size.Y}
}

// Float converts the vector to world-space float components.
func (v Vector[T]) Float() Vec2 {
	return Vec2{float64(v.X), float64(v.Y)}
}

// ToPixel rounds a world-space vector to pixel space, half away from zero.
func ToPixel(v Vec2) PixelPos {
	return PixelPos{RoundInt(v.X), RoundInt(v.Y)}
}

// fromFloat converts f to T, rounding when T is an integer type.
func fromFloat[T Number](f float64) T {
	half := 0.5
	if T(half) == 0 {
		return T(math.Round(f))
	}
	return T(f)
}
