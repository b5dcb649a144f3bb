package kestrel

// Padding is a per-side inset in world units.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Camera maps world and interface space onto the viewport. The world is
// y-up with the camera translate at the viewport center; pixels are y-down.
type Camera struct {
	// Translate is the world-space point at the viewport center.
	Translate Vec2
	// Viewport is the size of the render target in pixels.
	Viewport PixelSize
	// Origin selects the viewport edge or corner used as the interface-space
	// origin. FaceNone is the viewport center.
	Origin Face
	// Smoothing slows follow movement: 0 snaps, values toward 1 lag more.
	Smoothing float64

	gameWidth      float64
	interfaceWidth float64

	follow  *Object
	padding Padding

	boundsEnabled bool
	bounds        WorldRect

	sched *Scheduler
}

// newCamera creates a Camera with the given widths. sched drives the
// Animate* helpers.
func newCamera(viewport PixelSize, gameWidth, interfaceWidth float64, sched *Scheduler) *Camera {
	c := &Camera{Viewport: viewport, sched: sched}
	c.SetGameWidth(gameWidth)
	c.SetInterfaceWidth(interfaceWidth)
	return c
}

// GameWidth returns the number of world units spanning the viewport width.
func (c *Camera) GameWidth() float64 { return c.gameWidth }

// InterfaceWidth returns the number of interface units spanning the viewport
// width.
func (c *Camera) InterfaceWidth() float64 { return c.interfaceWidth }

// SetGameWidth sets the world units visible across the viewport. Panics if
// w <= 0.
func (c *Camera) SetGameWidth(w float64) {
	if w <= 0 {
		panic("kestrel: camera game width must be positive")
	}
	c.gameWidth = w
}

// SetInterfaceWidth sets the interface units across the viewport. Panics if
// w <= 0.
func (c *Camera) SetInterfaceWidth(w float64) {
	if w <= 0 {
		panic("kestrel: camera interface width must be positive")
	}
	c.interfaceWidth = w
}

// SetTranslate moves the camera center.
func (c *Camera) SetTranslate(v Vec2) { c.Translate = v }

// AnimateTranslate scrolls the camera to v.
func (c *Camera) AnimateTranslate(v Vec2, a Anim) *Timeline {
	return c.sched.TweenVec(c.Translate, v, c.SetTranslate, a)
}

// AnimateGameWidth zooms by animating the game width.
func (c *Camera) AnimateGameWidth(w float64, a Anim) *Timeline {
	if w <= 0 {
		panic("kestrel: camera game width must be positive")
	}
	return c.sched.TweenFloat(c.gameWidth, w, c.SetGameWidth, a)
}

// AnimateInterfaceWidth animates the interface width.
func (c *Camera) AnimateInterfaceWidth(w float64, a Anim) *Timeline {
	if w <= 0 {
		panic("kestrel: camera interface width must be positive")
	}
	return c.sched.TweenFloat(c.interfaceWidth, w, c.SetInterfaceWidth, a)
}

// GameScale returns pixels per world unit.
func (c *Camera) GameScale() float64 {
	return float64(c.Viewport.X) / c.gameWidth
}

// InterfaceScale returns pixels per interface unit.
func (c *Camera) InterfaceScale() float64 {
	return float64(c.Viewport.X) / c.interfaceWidth
}

// WorldRect returns the world-space rect visible through the viewport.
func (c *Camera) WorldRect() WorldRect {
	s := c.GameScale()
	return WorldRect{
		X: c.Translate.X,
		Y: c.Translate.Y,
		W: float64(c.Viewport.X) / s,
		H: float64(c.Viewport.Y) / s,
	}
}

// InterfaceRect returns the interface-space rect covered by the viewport.
func (c *Camera) InterfaceRect() WorldRect {
	s := c.InterfaceScale()
	center := c.PixelToInterface(Vec2{float64(c.Viewport.X) / 2, float64(c.Viewport.Y) / 2})
	return WorldRect{
		X: center.X,
		Y: center.Y,
		W: float64(c.Viewport.X) / s,
		H: float64(c.Viewport.Y) / s,
	}
}

// ContainsRect reports whether r intersects the visible world rect.
func (c *Camera) ContainsRect(r WorldRect) bool {
	return c.WorldRect().Collides(r)
}

// ContainsPoint reports whether p lies inside the visible world rect.
func (c *Camera) ContainsPoint(p Vec2) bool {
	return c.WorldRect().ContainsPoint(p)
}

// ContainsObject reports whether the object's rect is on screen. Absolute
// objects are tested against the interface rect.
func (c *Camera) ContainsObject(o *Object) bool {
	if o.Absolute {
		return c.InterfaceRect().Collides(o.Rect())
	}
	return c.ContainsRect(o.Rect())
}

// WorldToPixel converts a world point to viewport pixels.
func (c *Camera) WorldToPixel(v Vec2) Vec2 {
	s := c.GameScale()
	return Vec2{
		X: float64(c.Viewport.X)/2 + (v.X-c.Translate.X)*s,
		Y: float64(c.Viewport.Y)/2 - (v.Y-c.Translate.Y)*s,
	}
}

// PixelToWorld converts viewport pixels to a world point.
func (c *Camera) PixelToWorld(p Vec2) Vec2 {
	s := c.GameScale()
	return Vec2{
		X: c.Translate.X + (p.X-float64(c.Viewport.X)/2)/s,
		Y: c.Translate.Y - (p.Y-float64(c.Viewport.Y)/2)/s,
	}
}

// InterfaceToPixel converts an interface point to viewport pixels.
func (c *Camera) InterfaceToPixel(v Vec2) Vec2 {
	o := c.originPixel()
	s := c.InterfaceScale()
	return Vec2{X: o.X + v.X*s, Y: o.Y - v.Y*s}
}

// PixelToInterface converts viewport pixels to an interface point.
func (c *Camera) PixelToInterface(p Vec2) Vec2 {
	o := c.originPixel()
	s := c.InterfaceScale()
	return Vec2{X: (p.X - o.X) / s, Y: (o.Y - p.Y) / s}
}

func (c *Camera) originPixel() Vec2 {
	w, h := float64(c.Viewport.X), float64(c.Viewport.Y)
	o := Vec2{w / 2, h / 2}
	switch {
	case c.Origin&FaceLeft != 0:
		o.X = 0
	case c.Origin&FaceRight != 0:
		o.X = w
	}
	switch {
	case c.Origin&FaceTop != 0:
		o.Y = 0
	case c.Origin&FaceBottom != 0:
		o.Y = h
	}
	return o
}

// Follow keeps obj inside the visible world rect shrunk by padding.
func (c *Camera) Follow(obj *Object, padding Padding) {
	c.follow = obj
	c.padding = padding
}

// Unfollow stops tracking the current object.
func (c *Camera) Unfollow() {
	c.follow = nil
}

// Following returns the tracked object, or nil.
func (c *Camera) Following() *Object { return c.follow }

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds WorldRect) {
	c.boundsEnabled = true
	c.bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.boundsEnabled = false
}

// ClampToBounds immediately clamps the translate so the visible area stays
// within the bounds. No-op if bounds are not set.
func (c *Camera) ClampToBounds() {
	if c.boundsEnabled {
		c.clampToBounds()
	}
}

// update advances follow and bounds clamping. Called from Engine.Update.
func (c *Camera) update() {
	if c.follow != nil {
		if c.follow.Destroyed() {
			c.follow = nil
		} else {
			target := c.followTarget(c.follow.Rect())
			s := Clamp(c.Smoothing, 0, 0.999999)
			if s == 0 {
				c.Translate = target
			} else {
				c.Translate = c.Translate.Add(target.Sub(c.Translate).Scale(1 - s))
			}
		}
	}
	if c.boundsEnabled {
		c.clampToBounds()
	}
}

// followTarget returns the nearest translate that keeps r inside the padded
// world rect. An object larger than the padded area is centered.
func (c *Camera) followTarget(r WorldRect) Vec2 {
	wr := c.WorldRect()
	minX := wr.MinX() + c.padding.Left
	maxX := wr.MaxX() - c.padding.Right
	minY := wr.MinY() + c.padding.Bottom
	maxY := wr.MaxY() - c.padding.Top

	t := c.Translate
	switch {
	case maxX-minX < r.W:
		t.X += r.X - (minX+maxX)/2
	case r.MinX() < minX:
		t.X -= minX - r.MinX()
	case r.MaxX() > maxX:
		t.X += r.MaxX() - maxX
	}
	switch {
	case maxY-minY < r.H:
		t.Y += r.Y - (minY+maxY)/2
	case r.MinY() < minY:
		t.Y -= minY - r.MinY()
	case r.MaxY() > maxY:
		t.Y += r.MaxY() - maxY
	}
	return t
}

// clampToBounds restricts the translate so the visible area stays within
// bounds.
func (c *Camera) clampToBounds() {
	wr := c.WorldRect()
	halfW, halfH := wr.W/2, wr.H/2

	minX := c.bounds.MinX() + halfW
	maxX := c.bounds.MaxX() - halfW
	minY := c.bounds.MinY() + halfH
	maxY := c.bounds.MaxY() - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.Translate.X = c.bounds.X
	} else {
		c.Translate.X = Clamp(c.Translate.X, minX, maxX)
	}
	if minY > maxY {
		c.Translate.Y = c.bounds.Y
	} else {
		c.Translate.Y = Clamp(c.Translate.Y, minY, maxY)
	}
}
