package kestrel

import (
	"image"
	"testing"
	"time"
)

func TestSurfaceVisible(t *testing.T) {
	tests := []struct {
		name string
		s    *Surface
		want bool
	}{
		{"color", NewColorSurface("c", ColorWhite, Identity()), true},
		{"transparent", NewColorSurface("c", Color{R: 1}, Identity()), false},
		{"texture", NewTextureSurface("t", "hero", Identity()), true},
		{"no texture", NewTextureSurface("t", "", Identity()), false},
		{"border", NewBorderSurface("b", ColorWhite, 0.1, BorderInside, Identity()), true},
		{"zero border", NewBorderSurface("b", ColorWhite, 0, BorderInside, Identity()), false},
	}
	for _, tt := range tests {
		if got := tt.s.Visible(); got != tt.want {
			t.Errorf("%s: Visible = %v, want %v", tt.name, got, tt.want)
		}
	}
	s := NewColorSurface("c", ColorWhite, Identity())
	s.Opacity = 0
	if s.Visible() {
		t.Error("zero opacity surface should not be visible")
	}
}

func TestSurfaceSetFrameWraps(t *testing.T) {
	s := NewSpriteSurface("s", "sheet", PixelSize{16, 16}, 6, 3, Identity())
	tests := []struct{ in, want int }{
		{0, 0}, {5, 5}, {6, 0}, {7, 1}, {-1, 5},
	}
	for _, tt := range tests {
		s.SetFrame(tt.in)
		if s.Frame != tt.want {
			t.Errorf("SetFrame(%d) = %d, want %d", tt.in, s.Frame, tt.want)
		}
	}
}

func TestSurfaceSourceRect(t *testing.T) {
	s := NewSpriteSurface("s", "sheet", PixelSize{16, 16}, 6, 3, Identity())
	s.SetFrame(4)
	if got := s.SourceRect(PixelSize{48, 32}); got != image.Rect(16, 16, 32, 32) {
		t.Errorf("frame 4 = %v", got)
	}

	tex := NewTextureSurface("t", "atlas", Identity())
	if got := tex.SourceRect(PixelSize{64, 64}); got != image.Rect(0, 0, 64, 64) {
		t.Errorf("whole texture = %v", got)
	}
	sub := image.Rect(48, 48, 80, 80)
	tex.Source = &sub
	if got := tex.SourceRect(PixelSize{64, 64}); got != image.Rect(48, 48, 64, 64) {
		t.Errorf("clipped source = %v", got)
	}
}

func TestSurfacePlayFrames(t *testing.T) {
	sched := newTestScheduler()
	o := newObject(ObjectBasic, "o", Identity(), sched)
	s := o.AddSurface(NewSpriteSurface("s", "sheet", PixelSize{8, 8}, 4, 4, Identity()))

	var seen []int
	tl := s.PlayFrames(2*DefaultStep, 1, false)
	for !tl.Done() {
		sched.Tick()
		seen = append(seen, s.Frame)
	}
	want := []int{0, 1, 1, 2, 2, 3, 3, 3}
	if len(seen) != len(want) {
		t.Fatalf("frames = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, want %v", seen, want)
		}
	}
}

func TestSurfaceAnimateColor(t *testing.T) {
	sched := newTestScheduler()
	o := newObject(ObjectBasic, "o", Identity(), sched)
	s := o.AddSurface(NewColorSurface("fill", Color{A: 1}, Identity()))
	s.AnimateColor(Color{R: 1, G: 1, A: 1}, Anim{Duration: 2 * DefaultStep, Easing: Linear})
	sched.Tick()
	assertNear(t, "mid R", s.Color.R, 0.5)
	sched.Tick()
	if s.Color != (Color{R: 1, G: 1, A: 1}) {
		t.Errorf("final = %+v", s.Color)
	}
}

func TestSurfaceAnimateDetachedPanics(t *testing.T) {
	s := NewColorSurface("fill", ColorWhite, Identity())
	assertPanics(t, "AnimateScale", func() { s.AnimateScale(Vec2{2, 2}, Anim{}) })
	assertPanics(t, "PlayFrames", func() { s.PlayFrames(time.Second, 1, false) })
}
