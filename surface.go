package kestrel

import (
	"image"
	"time"
)

// BorderPlacement positions a border's stroke relative to the surface rect.
type BorderPlacement uint8

const (
	BorderInside  BorderPlacement = iota // stroke fully inside the rect
	BorderCenter                         // stroke centered on the edge
	BorderOutside                        // stroke fully outside the rect
)

// Surface is one drawable layer of an Object. A single flat struct is used
// for all surface kinds; the variant fields that apply depend on Kind.
type Surface struct {
	Name string
	Kind SurfaceKind

	// Transform is relative to the owning object: the translate is scaled by
	// the object's size and Scale is a fraction of it.
	Transform Transform
	ScaleMode ScaleMode
	BlendMode BlendMode
	Z         int
	Hidden    bool

	// Color tints textures and sprites and fills color and border surfaces.
	Color   Color
	Opacity float64

	// Texture and sprite fields
	Texture string
	Source  *image.Rectangle // sub-rectangle in texture pixels; nil = whole texture

	// Sprite fields
	FrameSize PixelSize
	Frames    int
	Columns   int
	Frame     int

	// Border fields
	Thickness float64 // world units
	Placement BorderPlacement
	Fill      bool // also fill the interior

	owner *Object
	seq   int
}

func newSurface(name string, kind SurfaceKind, t Transform) *Surface {
	return &Surface{
		Name:      name,
		Kind:      kind,
		Transform: t,
		Color:     ColorWhite,
		Opacity:   1,
	}
}

// NewTextureSurface creates a surface that draws the named texture.
func NewTextureSurface(name, texture string, t Transform) *Surface {
	s := newSurface(name, SurfaceTexture, t)
	s.Texture = texture
	return s
}

// NewSpriteSurface creates a surface that draws one frame of a sprite sheet.
// Frames are laid out left to right, top to bottom, columns per row.
func NewSpriteSurface(name, texture string, frameSize PixelSize, frames, columns int, t Transform) *Surface {
	s := newSurface(name, SurfaceSprite, t)
	s.Texture = texture
	s.FrameSize = frameSize
	s.Frames = max(frames, 1)
	s.Columns = max(columns, 1)
	return s
}

// NewColorSurface creates a flat color quad.
func NewColorSurface(name string, c Color, t Transform) *Surface {
	s := newSurface(name, SurfaceColor, t)
	s.Color = c
	return s
}

// NewBorderSurface creates a rectangular outline.
func NewBorderSurface(name string, c Color, thickness float64, placement BorderPlacement, t Transform) *Surface {
	s := newSurface(name, SurfaceBorder, t)
	s.Color = c
	s.Thickness = thickness
	s.Placement = placement
	return s
}

// Owner returns the object the surface belongs to, or nil.
func (s *Surface) Owner() *Object { return s.owner }

// Visible reports whether the surface itself would draw.
func (s *Surface) Visible() bool {
	if s.Hidden || s.Opacity <= 0 || s.Color.A <= 0 {
		return false
	}
	switch s.Kind {
	case SurfaceTexture, SurfaceSprite:
		return s.Texture != ""
	case SurfaceBorder:
		return s.Thickness > 0 || s.Fill
	}
	return true
}

// SetColor sets the tint or fill color.
func (s *Surface) SetColor(c Color) { s.Color = c }

// AnimateColor blends the color to c in RGB space. The timeline is owned by
// the surface's object. Panics if the surface is detached.
func (s *Surface) AnimateColor(c Color, a Anim) *Timeline {
	o := s.mustOwner("AnimateColor")
	return o.track(o.sched.TweenColor(s.Color, c, s.SetColor, a))
}

// SetTranslate sets the offset from the object center.
func (s *Surface) SetTranslate(v Vec2) { s.Transform.SetTranslate(v) }

// AnimateTranslate moves the surface within its object.
func (s *Surface) AnimateTranslate(v Vec2, a Anim) *Timeline {
	o := s.mustOwner("AnimateTranslate")
	return o.track(o.sched.TweenVec(s.Transform.Translate, v, s.SetTranslate, a))
}

// SetScale sets the size as a fraction of the object size.
func (s *Surface) SetScale(v Vec2) { s.Transform.SetScale(v) }

// AnimateScale resizes the surface within its object.
func (s *Surface) AnimateScale(v Vec2, a Anim) *Timeline {
	o := s.mustOwner("AnimateScale")
	return o.track(o.sched.TweenVec(s.Transform.Scale, v, s.SetScale, a))
}

// SetRotation sets the surface rotation in degrees, added to the object's.
func (s *Surface) SetRotation(deg float64) { s.Transform.SetRotation(deg) }

// Flip mirrors the surface about its own center.
func (s *Surface) Flip(f Flip) {
	union := s.owner != nil && s.owner.flipUnion
	s.Transform.Flip(f, union)
}

// SetFrame selects a sprite frame, wrapping around the frame count.
func (s *Surface) SetFrame(i int) {
	if s.Frames <= 0 {
		s.Frame = 0
		return
	}
	i %= s.Frames
	if i < 0 {
		i += s.Frames
	}
	s.Frame = i
}

// PlayFrames steps through every sprite frame once per pass, each frame
// shown for frameTime. Pass LoopForever to cycle until stopped.
func (s *Surface) PlayFrames(frameTime time.Duration, loops int, pauseSensitive bool) *Timeline {
	o := s.mustOwner("PlayFrames")
	frames := max(s.Frames, 1)
	return o.track(o.sched.NewTimeline(TimelineConfig{
		Duration: frameTime * time.Duration(frames),
		OnUpdate: func(blend float64) {
			s.SetFrame(min(int(blend*float64(frames)), frames-1))
		},
		Loops:          loops,
		PauseSensitive: pauseSensitive,
	}))
}

// SourceRect returns the region of the texture to draw, given the texture's
// pixel size. The result is clipped to the texture bounds.
func (s *Surface) SourceRect(texSize PixelSize) image.Rectangle {
	bounds := image.Rect(0, 0, texSize.X, texSize.Y)
	switch s.Kind {
	case SurfaceSprite:
		cols := max(s.Columns, 1)
		x := (s.Frame % cols) * s.FrameSize.X
		y := (s.Frame / cols) * s.FrameSize.Y
		return image.Rect(x, y, x+s.FrameSize.X, y+s.FrameSize.Y).Intersect(bounds)
	case SurfaceTexture:
		if s.Source != nil {
			return s.Source.Intersect(bounds)
		}
	}
	return bounds
}

func (s *Surface) mustOwner(op string) *Object {
	if s.owner == nil {
		panic("kestrel: " + op + " on surface " + s.Name + " with no owner")
	}
	return s.owner
}
