package kestrel

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA builds a Color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{c.R, c.G, c.B, alpha}, nil
}

// UnmarshalText decodes a hex color from config files.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	r := c.toRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r.R, r.G, r.B, r.A)
}

// toRGBA converts to a non-premultiplied 8-bit color.
func (c Color) toRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(RoundInt(Clamp(c.R, 0, 1) * 255)),
		G: uint8(RoundInt(Clamp(c.G, 0, 1) * 255)),
		B: uint8(RoundInt(Clamp(c.B, 0, 1) * 255)),
		A: uint8(RoundInt(Clamp(c.A, 0, 1) * 255)),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// LerpColor interpolates each RGBA component independently in RGB space.
func LerpColor(from, to Color, blend float64, easing Easing) Color {
	return Color{
		R: Lerp(from.R, to.R, blend, easing),
		G: Lerp(from.G, to.G, blend, easing),
		B: Lerp(from.B, to.B, blend, easing),
		A: Lerp(from.A, to.A, blend, easing),
	}
}

// HSVChannel names one channel of the HSV representation.
type HSVChannel uint8

const (
	Hue        HSVChannel = iota // degrees, wraps around [0, 360)
	Saturation                   // [0, 1], clamped
	Value                        // [0, 1], clamped
)

// ColorOp is the arithmetic applied by AdjustHSV.
type ColorOp uint8

const (
	OpAdd ColorOp = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// HSV returns hue in degrees and saturation/value in [0, 1].
func (c Color) HSV() (h, s, v float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hsv()
}

// ColorFromHSV builds an opaque color from HSV components.
func ColorFromHSV(h, s, v float64) Color {
	cc := colorful.Hsv(Normalize360(h), Clamp(s, 0, 1), Clamp(v, 0, 1))
	return Color{cc.R, cc.G, cc.B, 1}
}

// AdjustHSV applies op with amount to one HSV channel and converts back.
// It does not interpolate. Alpha is preserved. Dividing by zero leaves the
// channel unchanged.
func (c Color) AdjustHSV(ch HSVChannel, op ColorOp, amount float64) Color {
	h, s, v := c.HSV()
	var target *float64
	switch ch {
	case Hue:
		target = &h
	case Saturation:
		target = &s
	default:
		target = &v
	}
	switch op {
	case OpAdd:
		*target += amount
	case OpSubtract:
		*target -= amount
	case OpMultiply:
		*target *= amount
	case OpDivide:
		if amount != 0 {
			*target /= amount
		}
	}
	if math.IsNaN(h) {
		h = 0
	}
	out := ColorFromHSV(h, s, v)
	out.A = c.A
	return out
}
