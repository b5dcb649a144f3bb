package kestrel

import (
	"cmp"
	"image"
	"slices"
)

// geometry is the world-space placement of a surface or hitbox. Rect is the
// unrotated rect, positioned so that rotating it clockwise by Rotation about
// Pivot yields the final placement.
type geometry struct {
	Rect     WorldRect
	Rotation float64 // degrees, clockwise on screen, [0, 360)
	Pivot    Vec2    // absolute world point
	Flip     Flip    // composed object + child flip
}

// Bounds returns the axis-aligned bounds of the rotated rect.
func (g geometry) Bounds() WorldRect {
	return g.Rect.RotatedBounds(g.Pivot, -g.Rotation)
}

// childGeometry places a child transform (surface or hitbox) inside its
// object. snap > 0 buckets rotations to multiples of snap degrees.
//
// Order matters: the object's flip is applied to the child's offset and
// pivot on the unrotated extents first, then everything is scaled into world
// units, and only then is the object rotation applied.
func childGeometry(o *Object, ct *Transform, snap float64) geometry {
	ot := &o.Transform
	objFlip := ot.Flipped()

	offset := ct.Translate
	pivot := ct.Pivot
	if objFlip.Has(FlipX) {
		offset.X = -offset.X
		pivot.X = -pivot.X
	}
	if objFlip.Has(FlipY) {
		offset.Y = -offset.Y
		pivot.Y = -pivot.Y
	}

	size := Vec2{Abs(ct.Scale.X * ot.Scale.X), Abs(ct.Scale.Y * ot.Scale.Y)}
	center := ot.Translate.Add(offset.Mul(ot.Scale))
	pivotPt := center.Add(pivot.Mul(ot.Scale))

	objRot := ot.Rotation
	if snap > 0 {
		objRot = SnapAngle(objRot, snap)
	}
	if objRot != 0 {
		// The object pivot is already mirrored by Transform.Flip.
		objPivot := ot.Translate.Add(ot.Pivot)
		moved := pivotPt.Rotate(objPivot, -objRot)
		center = center.Add(moved.Sub(pivotPt))
		pivotPt = moved
	}

	return geometry{
		Rect:     WorldRect{X: center.X, Y: center.Y, W: size.X, H: size.Y},
		Rotation: SnapAngle(objRot+ct.Rotation, snap),
		Pivot:    pivotPt,
		Flip:     objFlip.Compose(ct.Flipped(), o.flipUnion),
	}
}

// SurfaceBuffer is one fully resolved draw: world placement plus the pixel
// rect, angle and pivot handed to the draw backend.
type SurfaceBuffer struct {
	Object  *Object
	Surface *Surface // nil for text and hitbox buffers
	Hitbox  *Hitbox  // set for debug hitbox buffers
	Text    string   // set for text and timer objects

	World    WorldRect // unrotated world rect
	Rotation float64   // degrees clockwise
	Pivot    Vec2      // world-space pivot point
	Flip     Flip

	Dst      image.Rectangle // pixel rect before rotation
	DstPivot PixelPos        // pivot relative to Dst.Min
	Color    Color           // alpha includes object and surface opacity

	order int
}

// Pipeline converts object and child transforms into SurfaceBuffers through
// a camera.
type Pipeline struct {
	cam *Camera
}

// NewPipeline creates a pipeline rendering through cam.
func NewPipeline(cam *Camera) *Pipeline {
	return &Pipeline{cam: cam}
}

// SurfaceGeometry resolves one surface of o.
func (p *Pipeline) SurfaceGeometry(o *Object, s *Surface) SurfaceBuffer {
	g := childGeometry(o, &s.Transform, 0)
	b := p.buffer(o, g)
	b.Surface = s
	b.Color = s.Color.WithAlpha(s.Opacity * o.Opacity)
	return b
}

// HitboxGeometry resolves one hitbox of o for debug drawing. The rotation
// is bucketed to 90°.
func (p *Pipeline) HitboxGeometry(o *Object, h *Hitbox) SurfaceBuffer {
	g := childGeometry(o, &h.Transform, 90)
	b := p.buffer(o, g)
	b.Hitbox = h
	b.Color = h.Color
	return b
}

// TextGeometry resolves the text box of a text or timer object: the
// object's own rect.
func (p *Pipeline) TextGeometry(o *Object) SurfaceBuffer {
	id := Identity()
	g := childGeometry(o, &id, 0)
	b := p.buffer(o, g)
	b.Color = o.Text.Color.WithAlpha(o.Opacity)
	b.Text = o.Text.Content
	return b
}

// Visible reports whether a resolved buffer intersects the camera's view of
// its space.
func (p *Pipeline) Visible(b *SurfaceBuffer) bool {
	g := geometry{Rect: b.World, Rotation: b.Rotation, Pivot: b.Pivot}
	if b.Object != nil && b.Object.Absolute {
		return p.cam.InterfaceRect().Collides(g.Bounds())
	}
	return p.cam.ContainsRect(g.Bounds())
}

func (p *Pipeline) buffer(o *Object, g geometry) SurfaceBuffer {
	toPixel := p.cam.WorldToPixel
	scale := p.cam.GameScale()
	if o.Absolute {
		toPixel = p.cam.InterfaceToPixel
		scale = p.cam.InterfaceScale()
	}
	c := toPixel(g.Rect.Center())
	hw := g.Rect.W * scale / 2
	hh := g.Rect.H * scale / 2
	dst := image.Rect(RoundInt(c.X-hw), RoundInt(c.Y-hh), RoundInt(c.X+hw), RoundInt(c.Y+hh))
	pv := toPixel(g.Pivot)
	return SurfaceBuffer{
		Object:   o,
		World:    g.Rect,
		Rotation: g.Rotation,
		Pivot:    g.Pivot,
		Flip:     g.Flip,
		Dst:      dst,
		DstPivot: PixelPos{RoundInt(pv.X) - dst.Min.X, RoundInt(pv.Y) - dst.Min.Y},
	}
}

// sortBuffers orders buffers by object Z, then surface Z, then emission
// order. The sort is stable.
func sortBuffers(bufs []SurfaceBuffer) {
	slices.SortStableFunc(bufs, func(a, b SurfaceBuffer) int {
		if c := cmp.Compare(a.Object.Z, b.Object.Z); c != 0 {
			return c
		}
		if c := cmp.Compare(surfaceZ(&a), surfaceZ(&b)); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
}

func surfaceZ(b *SurfaceBuffer) int {
	if b.Surface != nil {
		return b.Surface.Z
	}
	return 0
}
