package kestrel

import "testing"

func TestTransformDefaults(t *testing.T) {
	tr := Sized(1, 2, 3, 4)
	tr.SetTranslate(Vec2{9, 9})
	tr.SetScale(Vec2{0.5, 0.5})
	if tr.DefaultTranslate() != (Vec2{1, 2}) || tr.DefaultScale() != (Vec2{3, 4}) {
		t.Errorf("setters should not change defaults: %v %v", tr.DefaultTranslate(), tr.DefaultScale())
	}
	tr.Reset()
	if tr.Translate != (Vec2{1, 2}) || tr.Scale != (Vec2{3, 4}) {
		t.Errorf("Reset = %v %v", tr.Translate, tr.Scale)
	}
}

func TestTransformSetRotationNormalizes(t *testing.T) {
	tr := Identity()
	tr.SetRotation(-90)
	assertNear(t, "Rotation", tr.Rotation, 270)
	tr.SetRotation(720)
	assertNear(t, "Rotation", tr.Rotation, 0)
}

func TestTransformFlipRoundTrip(t *testing.T) {
	tr := NewTransform(Vec2{}, Vec2{1, 1}, 0, Vec2{0.5, -0.25})

	tr.Flip(FlipX, false)
	if tr.Flipped() != FlipX {
		t.Fatalf("Flipped = %d, want FlipX", tr.Flipped())
	}
	if tr.Pivot != (Vec2{-0.5, -0.25}) {
		t.Errorf("pivot after FlipX = %v", tr.Pivot)
	}

	tr.Flip(FlipXY, false)
	if tr.Flipped() != FlipY {
		t.Fatalf("Flipped = %d, want FlipY", tr.Flipped())
	}
	if tr.Pivot != (Vec2{0.5, 0.25}) {
		t.Errorf("pivot after FlipXY = %v", tr.Pivot)
	}

	tr.Flip(FlipY, false)
	if tr.Flipped() != FlipNone || tr.Pivot != tr.DefaultPivot() {
		t.Errorf("double flip should restore: flip=%d pivot=%v", tr.Flipped(), tr.Pivot)
	}
}

func TestTransformFlipUnion(t *testing.T) {
	tr := NewTransform(Vec2{}, Vec2{1, 1}, 0, Vec2{1, 0})
	tr.Flip(FlipX, true)
	tr.Flip(FlipX, true)
	if tr.Flipped() != FlipX {
		t.Errorf("union flip should stick, got %d", tr.Flipped())
	}
	if tr.Pivot.X != -1 {
		t.Errorf("pivot X = %v, want -1", tr.Pivot.X)
	}
}

func TestTransformRebase(t *testing.T) {
	tr := At(0, 0)
	tr.SetTranslate(Vec2{3, 4})
	tr.SetPivot(Vec2{1, 1})
	tr.Flip(FlipX, false)
	tr.Rebase()

	if tr.DefaultTranslate() != (Vec2{3, 4}) {
		t.Errorf("default translate = %v", tr.DefaultTranslate())
	}
	if tr.Flipped() != FlipNone {
		t.Errorf("Rebase should clear flip, got %d", tr.Flipped())
	}
	tr.SetTranslate(Vec2{})
	tr.Reset()
	if tr.Translate != (Vec2{3, 4}) {
		t.Errorf("Reset after Rebase = %v", tr.Translate)
	}
}
