package kestrel

import "math"

// Rect is a centered rectangle: (X, Y) is the CENTER and (W, H) the full
// width and height. Edges are center ± half extent.
type Rect[T Number] struct {
	X, Y, W, H T
}

// WorldRect is a rect in world units.
type WorldRect = Rect[float64]

// MinX returns the left edge.
func (r Rect[T]) MinX() T { return r.X - r.W/2 }

// MaxX returns the right edge.
func (r Rect[T]) MaxX() T { return r.X + r.W/2 }

// MinY returns the bottom edge in world space (top edge in pixel space).
func (r Rect[T]) MinY() T { return r.Y - r.H/2 }

// MaxY returns the top edge in world space (bottom edge in pixel space).
func (r Rect[T]) MaxY() T { return r.Y + r.H/2 }

// Center returns (X, Y).
func (r Rect[T]) Center() Vector[T] { return Vector[T]{r.X, r.Y} }

// Size returns (W, H).
func (r Rect[T]) Size() Vector[T] { return Vector[T]{r.W, r.H} }

// Empty reports whether the rect has no area.
func (r Rect[T]) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Moved returns r translated by d.
func (r Rect[T]) Moved(d Vector[T]) Rect[T] {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Collides reports whether r and o overlap. Rects that share only an edge
// collide. Empty rects never collide.
func (r Rect[T]) Collides(o Rect[T]) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	// Compare doubled distances so integer rects keep odd extents exact.
	return 2*Abs(r.X-o.X) <= r.W+o.W && 2*Abs(r.Y-o.Y) <= r.H+o.H
}

// ContainsPoint reports whether p lies inside r. Points on an edge count.
func (r Rect[T]) ContainsPoint(p Vector[T]) bool {
	return 2*Abs(p.X-r.X) <= r.W && 2*Abs(p.Y-r.Y) <= r.H
}

// CollidesCircle reports whether the circle at p with the given radius
// touches or overlaps r.
func (r Rect[T]) CollidesCircle(p Vector[T], radius T) bool {
	if radius < 0 {
		return false
	}
	cx := Clamp(float64(p.X), float64(r.MinX()), float64(r.MaxX()))
	cy := Clamp(float64(p.Y), float64(r.MinY()), float64(r.MaxY()))
	dx := float64(p.X) - cx
	dy := float64(p.Y) - cy
	rr := float64(radius)
	return dx*dx+dy*dy <= rr*rr
}

// CollidedFace returns the side of r that o penetrates least, or FaceNone
// when the rects do not collide.
//
// Ties prefer vertical resolution and are broken in the fixed order
// bottom, top, left, right: landing on a platform wins over bumping its side.
func (r Rect[T]) CollidedFace(o Rect[T]) Face {
	if !r.Collides(o) {
		return FaceNone
	}
	candidates := [4]struct {
		face  Face
		depth T
	}{
		{FaceBottom, o.MaxY() - r.MinY()},
		{FaceTop, r.MaxY() - o.MinY()},
		{FaceLeft, o.MaxX() - r.MinX()},
		{FaceRight, r.MaxX() - o.MinX()},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.depth < best.depth {
			best = c
		}
	}
	return best.face
}

// Snap moves r so that its edge on face touches the opposite edge of o.
// Size and the perpendicular coordinate are unchanged.
func (r *Rect[T]) Snap(o Rect[T], face Face) {
	switch face {
	case FaceBottom:
		r.Y = o.MaxY() + r.H/2
	case FaceTop:
		r.Y = o.MinY() - r.H/2
	case FaceLeft:
		r.X = o.MaxX() + r.W/2
	case FaceRight:
		r.X = o.MinX() - r.W/2
	}
}

// RotatedBounds returns the axis-aligned bounds of r rotated by deg degrees
// (counter-clockwise, y-up) around pivot.
func (r Rect[T]) RotatedBounds(pivot Vector[T], deg float64) Rect[T] {
	if math.Mod(deg, 360) == 0 {
		return r
	}
	corners := [4]Vector[T]{
		{r.MinX(), r.MinY()},
		{r.MaxX(), r.MinY()},
		{r.MaxX(), r.MaxY()},
		{r.MinX(), r.MaxY()},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := c.Float().Rotate(pivot.Float(), deg)
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect[T]{
		X: fromFloat[T]((minX + maxX) / 2),
		Y: fromFloat[T]((minY + maxY) / 2),
		W: fromFloat[T](maxX - minX),
		H: fromFloat[T](maxY - minY),
	}
}

// Float converts r to world-space float components.
func (r Rect[T]) Float() WorldRect {
	return WorldRect{float64(r.X), float64(r.Y), float64(r.W), float64(r.H)}
}
