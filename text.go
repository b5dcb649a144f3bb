package kestrel

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LoadFontFace parses TrueType or OpenType data into a face for
// WithFontFace. size is the nominal glyph size in pixels; text objects
// rescale it to their box.
func LoadFontFace(ttfData []byte, size float64) (text.Face, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("kestrel: failed to parse font data: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// lineHeight returns the ascent plus descent of face.
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	if lh := m.HAscent + m.HDescent; lh > 0 {
		return lh
	}
	return 1
}

// textGeoM places content inside the buffer's pixel rect: glyphs are scaled
// to Size times the rect height, aligned horizontally and centered
// vertically, then rotated about the pivot.
func textGeoM(b *SurfaceBuffer, ts *TextState, face text.Face) ebiten.GeoM {
	lh := lineHeight(face)
	w, _ := text.Measure(b.Text, face, lh)

	dw, dh := float64(b.Dst.Dx()), float64(b.Dst.Dy())
	glyph := ts.Size * dh
	k := glyph / lh

	var x float64
	switch ts.Align {
	case AlignCenter:
		x = (dw - w*k) / 2
	case AlignRight:
		x = dw - w*k
	}

	var m ebiten.GeoM
	m.Scale(k, k)
	m.Translate(x, (dh-glyph)/2)
	rotateAboutPivot(&m, b)
	m.Translate(float64(b.Dst.Min.X), float64(b.Dst.Min.Y))
	return m
}

func (e *Engine) drawText(dst *ebiten.Image, b *SurfaceBuffer) bool {
	ts := b.Object.Text
	if ts == nil || b.Dst.Dy() <= 0 || ts.Size <= 0 {
		return false
	}
	op := &text.DrawOptions{}
	op.GeoM = textGeoM(b, ts, e.face)
	applyColor(&op.ColorScale, b.Color)
	op.Filter = ebiten.FilterLinear
	op.LineSpacing = lineHeight(e.face)
	text.Draw(dst, b.Text, e.face, op)
	return true
}
