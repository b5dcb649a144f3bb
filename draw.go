package kestrel

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Draw renders every surface buffer to screen.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.cfg.ClearColor.toRGBA())

	bufs, stats := e.buildBuffers()

	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}
	var op ebiten.DrawImageOptions
	for i := range bufs {
		if e.drawBuffer(screen, &bufs[i], &op) {
			stats.drawCount++
		}
	}
	if e.debug {
		stats.submitTime = time.Since(t0)
		e.debugLog(stats)
	}
	e.flushScreenshots(screen)
}

// drawBuffer issues the draw calls for one buffer. It reports whether
// anything was drawn.
func (e *Engine) drawBuffer(dst *ebiten.Image, b *SurfaceBuffer, op *ebiten.DrawImageOptions) bool {
	if b.Dst.Empty() {
		return false
	}
	switch {
	case b.Hitbox != nil:
		e.drawSolid(dst, b, b.Dst, b.Color, BlendNormal, op)
		return true
	case b.Surface == nil:
		return e.drawText(dst, b)
	}

	s := b.Surface
	switch s.Kind {
	case SurfaceTexture, SurfaceSprite:
		img := e.textures.Texture(s.Texture)
		if img == nil {
			e.warnMissing(s.Texture, b.Object)
			return false
		}
		src := s.SourceRect(PixelSize{img.Bounds().Dx(), img.Bounds().Dy()})
		if src.Empty() {
			return false
		}
		op.GeoM = bufferGeoM(b, src.Size())
		op.ColorScale.Reset()
		applyColor(&op.ColorScale, b.Color)
		op.Blend = s.BlendMode.EbitenBlend()
		op.Filter = s.ScaleMode.filter()
		dst.DrawImage(img.SubImage(src).(*ebiten.Image), op)
		return true
	case SurfaceColor:
		e.drawSolid(dst, b, b.Dst, b.Color, s.BlendMode, op)
		return true
	case SurfaceBorder:
		return e.drawBorder(dst, b, op)
	}
	return false
}

// drawSolid fills rect (absolute pixels) with c, rotating about the
// buffer's pivot.
func (e *Engine) drawSolid(dst *ebiten.Image, b *SurfaceBuffer, rect image.Rectangle, c Color, blend BlendMode, op *ebiten.DrawImageOptions) {
	if rect.Empty() {
		return
	}
	pivot := b.Dst.Min.Add(image.Pt(b.DstPivot.X, b.DstPivot.Y))
	q := SurfaceBuffer{
		Rotation: b.Rotation,
		Dst:      rect,
		DstPivot: PixelPos{pivot.X - rect.Min.X, pivot.Y - rect.Min.Y},
	}
	op.GeoM = bufferGeoM(&q, image.Pt(1, 1))
	op.ColorScale.Reset()
	applyColor(&op.ColorScale, c)
	op.Blend = blend.EbitenBlend()
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(e.pixel(), op)
}

// drawBorder draws four edge quads, plus the interior when Fill is set.
func (e *Engine) drawBorder(dst *ebiten.Image, b *SurfaceBuffer, op *ebiten.DrawImageOptions) bool {
	s := b.Surface
	outer, inner := borderRects(b.Dst, s.Thickness*e.bufferScale(b), s.Placement)
	for _, q := range borderQuads(outer, inner) {
		e.drawSolid(dst, b, q, b.Color, s.BlendMode, op)
	}
	if s.Fill {
		e.drawSolid(dst, b, inner, b.Color, s.BlendMode, op)
	}
	return true
}

func (e *Engine) bufferScale(b *SurfaceBuffer) float64 {
	if b.Object != nil && b.Object.Absolute {
		return e.cam.InterfaceScale()
	}
	return e.cam.GameScale()
}

// borderRects returns the outer and inner edges of a border stroke of
// thickness t pixels around r.
func borderRects(r image.Rectangle, t float64, placement BorderPlacement) (outer, inner image.Rectangle) {
	grow := func(r image.Rectangle, n int) image.Rectangle {
		return image.Rect(r.Min.X-n, r.Min.Y-n, r.Max.X+n, r.Max.Y+n)
	}
	px := max(RoundInt(t), 1)
	switch placement {
	case BorderCenter:
		half := px / 2
		outer = grow(r, px-half)
		inner = grow(r, -half)
	case BorderOutside:
		outer = grow(r, px)
		inner = r
	default:
		outer = r
		inner = grow(r, -px)
	}
	if inner.Dx() <= 0 || inner.Dy() <= 0 {
		inner = image.Rectangle{Min: outer.Min, Max: outer.Min}
	}
	return outer, inner
}

// borderQuads splits the ring between outer and inner into top and bottom
// strips spanning the full width and left and right strips between them.
func borderQuads(outer, inner image.Rectangle) []image.Rectangle {
	if inner.Empty() {
		return []image.Rectangle{outer}
	}
	return []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y),
		image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y),
	}
}

// bufferGeoM maps a source image of size src onto the buffer's pixel rect:
// scale to the rect, flip about its center, rotate clockwise about the
// pivot, then translate into place.
func bufferGeoM(b *SurfaceBuffer, src image.Point) ebiten.GeoM {
	var m ebiten.GeoM
	if src.X <= 0 || src.Y <= 0 {
		return m
	}
	dw, dh := float64(b.Dst.Dx()), float64(b.Dst.Dy())
	m.Scale(dw/float64(src.X), dh/float64(src.Y))
	if b.Flip.Has(FlipX) {
		m.Scale(-1, 1)
		m.Translate(dw, 0)
	}
	if b.Flip.Has(FlipY) {
		m.Scale(1, -1)
		m.Translate(0, dh)
	}
	rotateAboutPivot(&m, b)
	m.Translate(float64(b.Dst.Min.X), float64(b.Dst.Min.Y))
	return m
}

func rotateAboutPivot(m *ebiten.GeoM, b *SurfaceBuffer) {
	if b.Rotation == 0 {
		return
	}
	px, py := float64(b.DstPivot.X), float64(b.DstPivot.Y)
	m.Translate(-px, -py)
	// Positive GeoM rotation is clockwise on a y-down target.
	m.Rotate(b.Rotation * math.Pi / 180)
	m.Translate(px, py)
}

// applyColor scales by c with premultiplied alpha.
func applyColor(cs *ebiten.ColorScale, c Color) {
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

// pixel returns the shared 1x1 white image, creating it on first use.
func (e *Engine) pixel() *ebiten.Image {
	if e.whitePixel == nil {
		e.whitePixel = ebiten.NewImage(1, 1)
		e.whitePixel.Fill(color.White)
	}
	return e.whitePixel
}

// warnMissing logs a missing texture once per name.
func (e *Engine) warnMissing(name string, o *Object) {
	if _, ok := e.missing[name]; ok {
		return
	}
	e.missing[name] = struct{}{}
	e.log.Warn("texture not found; surface skipped",
		zap.String("texture", name),
		zap.String("object", o.Name))
}
