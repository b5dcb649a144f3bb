package kestrel

import (
	"testing"
	"time"
)

func newTestCamera() *Camera {
	return newCamera(PixelSize{1280, 720}, 20, 100, newTestScheduler())
}

func TestCameraScales(t *testing.T) {
	c := newTestCamera()
	assertNear(t, "GameScale", c.GameScale(), 64)
	assertNear(t, "InterfaceScale", c.InterfaceScale(), 12.8)

	wr := c.WorldRect()
	assertNear(t, "world W", wr.W, 20)
	assertNear(t, "world H", wr.H, 11.25)
}

func TestCameraWorldToPixel(t *testing.T) {
	c := newTestCamera()
	tests := []struct {
		world Vec2
		pixel Vec2
	}{
		{Vec2{0, 0}, Vec2{640, 360}},
		{Vec2{1, 0}, Vec2{704, 360}},
		{Vec2{0, 1}, Vec2{640, 296}},
		{Vec2{-10, -5.625}, Vec2{0, 720}},
	}
	for _, tt := range tests {
		got := c.WorldToPixel(tt.world)
		assertNear(t, "px X", got.X, tt.pixel.X)
		assertNear(t, "px Y", got.Y, tt.pixel.Y)
		back := c.PixelToWorld(got)
		assertNear(t, "world X", back.X, tt.world.X)
		assertNear(t, "world Y", back.Y, tt.world.Y)
	}

	c.SetTranslate(Vec2{3, 2})
	got := c.WorldToPixel(Vec2{3, 2})
	assertNear(t, "center X", got.X, 640)
	assertNear(t, "center Y", got.Y, 360)
}

func TestCameraInterfaceOrigin(t *testing.T) {
	tests := []struct {
		origin Face
		want   Vec2
	}{
		{FaceNone, Vec2{640, 360}},
		{FaceTop | FaceLeft, Vec2{0, 0}},
		{FaceBottom | FaceRight, Vec2{1280, 720}},
		{FaceTop, Vec2{640, 0}},
		{FaceLeft, Vec2{0, 360}},
	}
	for _, tt := range tests {
		c := newTestCamera()
		c.Origin = tt.origin
		got := c.InterfaceToPixel(Vec2{})
		if got != tt.want {
			t.Errorf("origin %d: InterfaceToPixel(0,0) = %v, want %v", tt.origin, got, tt.want)
		}
		p := c.InterfaceToPixel(Vec2{10, -5})
		back := c.PixelToInterface(p)
		assertNear(t, "round trip X", back.X, 10)
		assertNear(t, "round trip Y", back.Y, -5)
	}
}

func TestCameraInterfaceRect(t *testing.T) {
	c := newTestCamera()
	c.Origin = FaceBottom | FaceLeft
	r := c.InterfaceRect()
	assertNear(t, "W", r.W, 100)
	assertNear(t, "H", r.H, 56.25)
	assertNear(t, "MinX", r.MinX(), 0)
	assertNear(t, "MinY", r.MinY(), 0)
}

func TestCameraContains(t *testing.T) {
	c := newTestCamera()
	if !c.ContainsPoint(Vec2{9.9, 5}) || c.ContainsPoint(Vec2{10.5, 0}) {
		t.Error("ContainsPoint wrong")
	}
	if !c.ContainsRect(WorldRect{X: 10.5, Y: 0, W: 2, H: 2}) {
		t.Error("rect straddling the edge should be visible")
	}
	if c.ContainsRect(WorldRect{X: 30, Y: 0, W: 2, H: 2}) {
		t.Error("rect far off screen should not be visible")
	}
}

func TestCameraWidthPanics(t *testing.T) {
	c := newTestCamera()
	assertPanics(t, "SetGameWidth(0)", func() { c.SetGameWidth(0) })
	assertPanics(t, "SetInterfaceWidth(-1)", func() { c.SetInterfaceWidth(-1) })
	assertPanics(t, "AnimateGameWidth(0)", func() { c.AnimateGameWidth(0, Anim{}) })
}

func TestCameraAnimateGameWidth(t *testing.T) {
	c := newTestCamera()
	c.AnimateGameWidth(40, Anim{Duration: 2 * DefaultStep})
	c.sched.Tick()
	assertNear(t, "mid width", c.GameWidth(), 30)
	c.sched.Tick()
	assertNear(t, "final width", c.GameWidth(), 40)
	assertNear(t, "GameScale", c.GameScale(), 32)
}

func TestCameraAnimateTranslate(t *testing.T) {
	c := newTestCamera()
	done := false
	c.AnimateTranslate(Vec2{4, -2}, Anim{Duration: 100 * time.Millisecond, OnComplete: func() { done = true }})
	for i := 0; i < 5; i++ {
		c.sched.Tick()
	}
	if done {
		t.Fatal("100ms animation completed before its sixth tick")
	}
	c.sched.Tick()
	if !done || c.Translate != (Vec2{4, -2}) {
		t.Errorf("translate = %v done = %v", c.Translate, done)
	}
}

func TestCameraFollowDeadZone(t *testing.T) {
	c := newTestCamera()
	target := newObject(ObjectBasic, "hero", Sized(0, 0, 1, 1), c.sched)
	c.Follow(target, Padding{Top: 1, Right: 2, Bottom: 1, Left: 2})

	// Inside the padded area the camera does not move.
	target.SetTranslate(Vec2{5, 2})
	c.update()
	if c.Translate != (Vec2{}) {
		t.Fatalf("camera moved inside dead zone: %v", c.Translate)
	}

	// Past the right edge (10 - 2 = 8) by 1.5 units.
	target.SetTranslate(Vec2{9, 0})
	c.update()
	assertNear(t, "follow X", c.Translate.X, 1.5)
	assertNear(t, "follow Y", c.Translate.Y, 0)

	// Below the bottom edge (-5.625 + 1).
	target.SetTranslate(Vec2{9, -6})
	c.update()
	assertNear(t, "follow Y down", c.Translate.Y, -6.5-(-4.625))
}

func TestCameraFollowSmoothing(t *testing.T) {
	c := newTestCamera()
	c.Smoothing = 0.5
	target := newObject(ObjectBasic, "hero", Sized(12, 0, 1, 1), c.sched)
	c.Follow(target, Padding{})

	// Target translate is 12.5 - 10 = 2.5; half the distance each update.
	c.update()
	assertNear(t, "first step", c.Translate.X, 1.25)
	c.update()
	assertNear(t, "second step", c.Translate.X, 1.875)
}

func TestCameraFollowCentersLargeObject(t *testing.T) {
	c := newTestCamera()
	target := newObject(ObjectBasic, "boss", Sized(3, 1, 30, 1), c.sched)
	c.Follow(target, Padding{})
	c.update()
	assertNear(t, "X", c.Translate.X, 3)
}

func TestCameraFollowDestroyedTarget(t *testing.T) {
	c := newTestCamera()
	target := newObject(ObjectBasic, "hero", Sized(50, 0, 1, 1), c.sched)
	c.Follow(target, Padding{})
	target.Destroy()
	c.update()
	if c.Following() != nil {
		t.Error("destroyed target should be dropped")
	}
	if c.Translate != (Vec2{}) {
		t.Errorf("camera followed a destroyed object to %v", c.Translate)
	}
}

func TestCameraBounds(t *testing.T) {
	c := newTestCamera()
	c.SetBounds(WorldRect{X: 0, Y: 0, W: 40, H: 20})

	c.SetTranslate(Vec2{100, -100})
	c.ClampToBounds()
	assertNear(t, "X", c.Translate.X, 10)
	assertNear(t, "Y", c.Translate.Y, -10+5.625)

	c.SetBounds(WorldRect{X: 7, Y: 3, W: 10, H: 5})
	c.update()
	if c.Translate != (Vec2{7, 3}) {
		t.Errorf("small bounds should center the camera, got %v", c.Translate)
	}

	c.ClearBounds()
	c.SetTranslate(Vec2{100, 100})
	c.ClampToBounds()
	if c.Translate != (Vec2{100, 100}) {
		t.Error("ClampToBounds should be a no-op without bounds")
	}
}
