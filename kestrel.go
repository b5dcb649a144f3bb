package kestrel

import "github.com/hajimehoshi/ebiten/v2"

// Face identifies one axis-aligned side of a rectangle. Faces are also used
// as a bitmask (e.g. FaceTop|FaceLeft) where a corner or edge is meant.
type Face uint8

const (
	FaceNone   Face = 0
	FaceTop    Face = 1 << iota // maximum Y edge (world space is y-up)
	FaceRight                   // maximum X edge
	FaceBottom                  // minimum Y edge
	FaceLeft                    // minimum X edge
)

// Opposite returns the face on the other side of the rectangle.
func (f Face) Opposite() Face {
	switch f {
	case FaceTop:
		return FaceBottom
	case FaceBottom:
		return FaceTop
	case FaceLeft:
		return FaceRight
	case FaceRight:
		return FaceLeft
	default:
		return FaceNone
	}
}

// Vertical reports whether f is FaceTop or FaceBottom.
func (f Face) Vertical() bool {
	return f == FaceTop || f == FaceBottom
}

func (f Face) String() string {
	switch f {
	case FaceNone:
		return "none"
	case FaceTop:
		return "top"
	case FaceRight:
		return "right"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	default:
		return "mask"
	}
}

// Flip is a 2-bit mirror mask. FlipXY is geometrically a 180° rotation but is
// tracked separately from Transform.Rotation.
type Flip uint8

const (
	FlipNone Flip = 0
	FlipX    Flip = 1 << 0 // mirror across the vertical center line
	FlipY    Flip = 1 << 1 // mirror across the horizontal center line
	FlipXY        = FlipX | FlipY
)

// Has reports whether every axis in axis is flipped in f.
func (f Flip) Has(axis Flip) bool {
	return f&axis == axis
}

// Compose combines two flip masks. The default composition is XOR, so
// flipping twice on the same axis cancels. With union set the masks are
// OR-ed together and never cancel.
func (f Flip) Compose(other Flip, union bool) Flip {
	if union {
		return (f | other) & FlipXY
	}
	return (f ^ other) & FlipXY
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// ScaleMode selects the texture filter used when a surface is stretched.
type ScaleMode uint8

const (
	ScaleNearest ScaleMode = iota // pixel art
	ScaleLinear                   // smooth
)

func (m ScaleMode) filter() ebiten.Filter {
	if m == ScaleLinear {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}

// ObjectKind distinguishes the behavior of an Object.
type ObjectKind uint8

const (
	ObjectBasic  ObjectKind = iota // plain container of surfaces and hitboxes
	ObjectBar                      // progress bar with a value-scaled fill surface
	ObjectButton                   // pointer-interactive object
	ObjectText                     // renders a text string
	ObjectTimer                    // renders a running Chrono
)

// SurfaceKind distinguishes how a Surface is drawn.
type SurfaceKind uint8

const (
	SurfaceTexture SurfaceKind = iota // a named texture, optionally a sub-rectangle of it
	SurfaceSprite                     // one frame of a sprite sheet texture
	SurfaceColor                      // a flat color quad
	SurfaceBorder                     // a rectangular outline
)
