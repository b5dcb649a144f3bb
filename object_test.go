package kestrel

import (
	"testing"
	"time"
)

func TestNewObjectKindPayloads(t *testing.T) {
	sched := newTestScheduler()
	tests := []struct {
		kind                      ObjectKind
		bar, button, text, chrono bool
	}{
		{ObjectBasic, false, false, false, false},
		{ObjectBar, true, false, false, false},
		{ObjectButton, false, true, false, false},
		{ObjectText, false, false, true, false},
		{ObjectTimer, false, false, true, true},
	}
	for _, tt := range tests {
		o := newObject(tt.kind, "o", Identity(), sched)
		if (o.Bar != nil) != tt.bar || (o.Button != nil) != tt.button ||
			(o.Text != nil) != tt.text || (o.Chrono != nil) != tt.chrono {
			t.Errorf("kind %d payloads wrong: %+v", tt.kind, o)
		}
		if o.Opacity != 1 {
			t.Errorf("kind %d opacity = %v", tt.kind, o.Opacity)
		}
	}
}

func TestObjectIDsPerEngine(t *testing.T) {
	e := newTestEngine(t)
	a := e.NewObject(ObjectBasic, "a", Identity())
	b := e.NewObject(ObjectBasic, "b", Identity())
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("ids %d %d, want 1 and 2", a.ID, b.ID)
	}

	// A second engine numbers its objects independently.
	other := newTestEngine(t)
	if c := other.NewObject(ObjectBasic, "c", Identity()); c.ID != 1 {
		t.Errorf("second engine id = %d, want 1", c.ID)
	}
}

func TestObjectRect(t *testing.T) {
	o := newObject(ObjectBasic, "o", Sized(1, 2, -3, 4), newTestScheduler())
	if o.Rect() != (WorldRect{X: 1, Y: 2, W: 3, H: 4}) {
		t.Errorf("Rect = %+v", o.Rect())
	}
}

func TestObjectSurfaces(t *testing.T) {
	o := newObject(ObjectBasic, "o", Identity(), newTestScheduler())
	a := o.AddSurface(NewColorSurface("a", ColorWhite, Identity()))
	b := o.AddSurface(NewColorSurface("b", ColorWhite, Identity()))

	if o.Surface("a") != a || !o.HasSurface("b") || o.HasSurface("c") {
		t.Fatal("lookup wrong")
	}
	if a.Owner() != o {
		t.Error("owner not set")
	}
	assertPanics(t, "duplicate name", func() { o.AddSurface(NewColorSurface("a", ColorWhite, Identity())) })
	assertPanics(t, "already owned", func() {
		newObject(ObjectBasic, "other", Identity(), o.sched).AddSurface(a)
	})
	assertPanics(t, "nil", func() { o.AddSurface(nil) })
	assertPanics(t, "missing", func() { o.Surface("c") })

	if got := o.RemoveSurface("a"); got != a || a.Owner() != nil {
		t.Error("RemoveSurface should detach")
	}
	if s := o.Surfaces(); len(s) != 1 || s[0] != b {
		t.Errorf("Surfaces = %v", s)
	}
	o.AddSurface(a)
	if s := o.Surfaces(); s[1] != a {
		t.Error("re-added surface should go last")
	}
}

func TestObjectHitboxes(t *testing.T) {
	o := newObject(ObjectBasic, "o", Sized(0, 0, 2, 2), newTestScheduler())
	h := o.AddHitbox(NewHitbox("body", Sized(0, 0.25, 1, 0.5)))
	if o.Hitbox("body") != h || !o.HasHitbox("body") {
		t.Fatal("lookup wrong")
	}
	assertRect(t, "HitboxRect", o.HitboxRect("body"), WorldRect{X: 0, Y: 0.5, W: 2, H: 1})
	assertPanics(t, "duplicate", func() { o.AddHitbox(NewHitbox("body", Identity())) })

	o.RemoveHitbox("body")
	if len(o.Hitboxes()) != 0 || h.Owner() != nil {
		t.Error("RemoveHitbox should detach")
	}
	assertPanics(t, "detached WorldRect", func() { h.WorldRect() })
}

func TestObjectAnimatedSetters(t *testing.T) {
	sched := newTestScheduler()
	o := newObject(ObjectBasic, "o", Identity(), sched)
	o.AnimateTranslate(Vec2{4, 2}, Anim{Duration: 2 * DefaultStep})
	o.AnimateScale(Vec2{3, 3}, Anim{Duration: 2 * DefaultStep})
	o.AnimateRotation(450, Anim{Duration: 2 * DefaultStep})
	o.AnimateOpacity(0, Anim{Duration: 2 * DefaultStep})

	sched.Tick()
	if o.Transform.Translate != (Vec2{2, 1}) || o.Transform.Scale != (Vec2{2, 2}) {
		t.Errorf("mid: %v %v", o.Transform.Translate, o.Transform.Scale)
	}
	assertNear(t, "mid rotation", o.Transform.Rotation, 225)
	assertNear(t, "mid opacity", o.Opacity, 0.5)

	sched.Tick()
	assertNear(t, "final rotation", o.Transform.Rotation, 90)
	assertNear(t, "final opacity", o.Opacity, 0)
	if o.Visible() {
		t.Error("fully transparent object should not be visible")
	}
}

func TestObjectDestroyStopsTimelines(t *testing.T) {
	sched := newTestScheduler()
	o := newObject(ObjectButton, "o", Identity(), sched)
	s := o.AddSurface(NewColorSurface("fill", ColorWhite, Identity()))
	h := o.AddHitbox(NewHitbox("body", Identity()))
	h.OnCollide = func(Contact) {}
	o.Button.OnClick = func(*Object) {}
	completed := false
	o.AnimateTranslate(Vec2{5, 5}, Anim{Duration: time.Second, OnComplete: func() { completed = true }})
	s.AnimateColor(Color{A: 1}, Anim{Duration: time.Second})

	o.Destroy()
	o.Destroy()
	if !o.Destroyed() || o.Visible() {
		t.Fatal("object should be destroyed and invisible")
	}
	if sched.Len() != 0 {
		t.Errorf("owned timelines still registered: %d", sched.Len())
	}
	if completed {
		t.Error("Destroy should not run completion callbacks")
	}
	if s.Owner() != nil || h.Owner() != nil || h.OnCollide != nil || o.Button.OnClick != nil {
		t.Error("Destroy should release children and callbacks")
	}
	assertPanics(t, "add after destroy", func() { o.AddSurface(NewColorSurface("x", ColorWhite, Identity())) })
}

func TestObjectTrackPrunesFinished(t *testing.T) {
	sched := newTestScheduler()
	o := newObject(ObjectBasic, "o", Identity(), sched)
	for i := 0; i < 5; i++ {
		o.AnimateOpacity(0.5, Anim{})
		sched.Tick()
	}
	o.AnimateOpacity(1, Anim{Duration: time.Second})
	if len(o.timelines) != 1 {
		t.Errorf("tracked timelines = %d, want 1", len(o.timelines))
	}
}

func TestObjectVisible(t *testing.T) {
	sched := newTestScheduler()
	label := newObject(ObjectText, "label", Identity(), sched)
	if label.Visible() {
		t.Error("empty text should not be visible")
	}
	label.SetText("x")
	if !label.Visible() {
		t.Error("text with content should be visible")
	}
	label.Hidden = true
	if label.Visible() {
		t.Error("hidden object should not be visible")
	}
	assertPanics(t, "SetText on basic", func() { newObject(ObjectBasic, "b", Identity(), sched).SetText("x") })
}

func TestObjectFlipLegacyUnion(t *testing.T) {
	o := newObject(ObjectBasic, "o", Identity(), newTestScheduler())
	o.flipUnion = true
	o.Flip(FlipX)
	o.Flip(FlipX)
	if o.Transform.Flipped() != FlipX {
		t.Errorf("legacy flip = %d, want FlipX", o.Transform.Flipped())
	}
}
