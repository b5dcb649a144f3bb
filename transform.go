package kestrel

// Transform places an entity in world units. Translate, Scale, Rotation and
// Pivot are live state; the values the Transform was built with are kept as
// defaults and only change through Rebase.
//
// For objects the translate is absolute (world or interface units). For
// surfaces and hitboxes it is an offset from the owning object's center,
// multiplied by the object's scale, and Scale is a fraction of the object's
// size.
type Transform struct {
	Translate Vec2
	Scale     Vec2
	Rotation  float64 // degrees, clockwise on screen
	Pivot     Vec2    // offset from the entity center

	flip Flip

	defTranslate Vec2
	defScale     Vec2
	defPivot     Vec2
}

// NewTransform creates a Transform and records its defaults.
func NewTransform(translate, scale Vec2, rotation float64, pivot Vec2) Transform {
	return Transform{
		Translate:    translate,
		Scale:        scale,
		Rotation:     rotation,
		Pivot:        pivot,
		defTranslate: translate,
		defScale:     scale,
		defPivot:     pivot,
	}
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return NewTransform(Vec2{}, Vec2{1, 1}, 0, Vec2{})
}

// At returns a unit-scale transform at (x, y).
func At(x, y float64) Transform {
	return NewTransform(Vec2{x, y}, Vec2{1, 1}, 0, Vec2{})
}

// Sized returns a transform at (x, y) with size (w, h).
func Sized(x, y, w, h float64) Transform {
	return NewTransform(Vec2{x, y}, Vec2{w, h}, 0, Vec2{})
}

// SetTranslate sets the live translate. Defaults are unchanged.
func (t *Transform) SetTranslate(v Vec2) { t.Translate = v }

// SetScale sets the live scale. Defaults are unchanged.
func (t *Transform) SetScale(v Vec2) { t.Scale = v }

// SetRotation sets the rotation in degrees, normalized to [0, 360).
func (t *Transform) SetRotation(deg float64) { t.Rotation = Normalize360(deg) }

// SetPivot sets the live pivot. Defaults are unchanged.
func (t *Transform) SetPivot(v Vec2) { t.Pivot = v }

// DefaultTranslate returns the translate recorded at construction or the
// last Rebase.
func (t *Transform) DefaultTranslate() Vec2 { return t.defTranslate }

// DefaultScale returns the recorded default scale.
func (t *Transform) DefaultScale() Vec2 { return t.defScale }

// DefaultPivot returns the recorded default pivot.
func (t *Transform) DefaultPivot() Vec2 { return t.defPivot }

// Rebase records the current live values as the new defaults. The current
// flip becomes the unflipped baseline.
func (t *Transform) Rebase() {
	t.defTranslate = t.Translate
	t.defScale = t.Scale
	t.defPivot = t.Pivot
	t.flip = FlipNone
}

// Flipped returns the current flip mask.
func (t *Transform) Flipped() Flip { return t.flip }

// Flip composes f into the flip mask and re-derives the live pivot from the
// default for every axis in f: mirrored across the entity's own center line
// when that axis ends up flipped, restored otherwise. The translate is not
// touched; an object's flip mirrors its children at render time.
func (t *Transform) Flip(f Flip, union bool) {
	t.flip = t.flip.Compose(f, union)
	if f.Has(FlipX) {
		sign := 1.0
		if t.flip.Has(FlipX) {
			sign = -1
		}
		t.Pivot.X = sign * t.defPivot.X
	}
	if f.Has(FlipY) {
		sign := 1.0
		if t.flip.Has(FlipY) {
			sign = -1
		}
		t.Pivot.Y = sign * t.defPivot.Y
	}
}

// Reset restores the live values to the defaults and clears the flip.
func (t *Transform) Reset() {
	t.Translate = t.defTranslate
	t.Scale = t.defScale
	t.Pivot = t.defPivot
	t.Rotation = 0
	t.flip = FlipNone
}
