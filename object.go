package kestrel

import "fmt"

// Object is the unit of the engine's object list. A single flat struct is
// used for all object kinds; kind-specific state lives in the pointer fields
// that match Kind.
type Object struct {
	// Identity
	ID   uint32
	Name string
	Kind ObjectKind

	// Transform is in world units, or in interface units relative to the
	// camera origin when Absolute is set.
	Transform Transform
	Absolute  bool

	// Visibility & ordering
	Opacity float64
	Z       int
	Hidden  bool

	// CollisionGroup selects which objects this object is tested against
	// in the engine's collision pass. Zero opts out.
	CollisionGroup int

	// Metadata
	UserData any

	// Kind payloads
	Bar    *BarState    // ObjectBar
	Button *ButtonState // ObjectButton
	Text   *TextState   // ObjectText, ObjectTimer
	Chrono *Chrono      // ObjectTimer

	surfaces     map[string]*Surface
	surfaceOrder []*Surface
	hitboxes     map[string]*Hitbox
	hitboxOrder  []*Hitbox

	sched     *Scheduler
	flipUnion bool
	timelines []*Timeline
	seq       int
	destroyed bool
}

// newObject sets the common default field values shared by all constructors.
// The ID is assigned by the owning Engine.
func newObject(kind ObjectKind, name string, t Transform, sched *Scheduler) *Object {
	o := &Object{
		Name:      name,
		Kind:      kind,
		Transform: t,
		Opacity:   1,
		surfaces:  make(map[string]*Surface),
		hitboxes:  make(map[string]*Hitbox),
		sched:     sched,
	}
	switch kind {
	case ObjectBar:
		o.Bar = &BarState{Max: 1, Value: 1, Fill: "fill", From: FaceLeft}
	case ObjectButton:
		o.Button = &ButtonState{Idle: ColorWhite, Hover: ColorWhite, Press: ColorWhite, Base: "base"}
	case ObjectText:
		o.Text = &TextState{Color: ColorWhite, Size: 1}
	case ObjectTimer:
		o.Text = &TextState{Color: ColorWhite, Size: 1}
		o.Chrono = NewChrono(Time{}, false)
	}
	return o
}

// Rect returns the object's unrotated world rect: centered at the translate,
// sized by the absolute scale.
func (o *Object) Rect() WorldRect {
	t := &o.Transform
	return WorldRect{X: t.Translate.X, Y: t.Translate.Y, W: Abs(t.Scale.X), H: Abs(t.Scale.Y)}
}

// Destroyed reports whether Destroy was called.
func (o *Object) Destroyed() bool { return o.destroyed }

// --- Transform setters ---

// SetTranslate sets the object's position.
func (o *Object) SetTranslate(v Vec2) { o.Transform.SetTranslate(v) }

// AnimateTranslate moves the object to v over the animation.
func (o *Object) AnimateTranslate(v Vec2, a Anim) *Timeline {
	return o.track(o.sched.TweenVec(o.Transform.Translate, v, o.SetTranslate, a))
}

// SetScale sets the object's size in world units.
func (o *Object) SetScale(v Vec2) { o.Transform.SetScale(v) }

// AnimateScale resizes the object to v over the animation.
func (o *Object) AnimateScale(v Vec2, a Anim) *Timeline {
	return o.track(o.sched.TweenVec(o.Transform.Scale, v, o.SetScale, a))
}

// SetRotation sets the rotation in degrees (clockwise on screen).
func (o *Object) SetRotation(deg float64) { o.Transform.SetRotation(deg) }

// AnimateRotation turns the object to deg. The animation does not take the
// shortest arc; it interpolates the raw degree values.
func (o *Object) AnimateRotation(deg float64, a Anim) *Timeline {
	return o.track(o.sched.TweenFloat(o.Transform.Rotation, deg, o.SetRotation, a))
}

// SetPivot sets the rotation pivot, relative to the object center.
func (o *Object) SetPivot(v Vec2) { o.Transform.SetPivot(v) }

// SetOpacity sets the opacity multiplier applied to every surface.
func (o *Object) SetOpacity(a float64) { o.Opacity = Clamp(a, 0, 1) }

// AnimateOpacity fades the object to a.
func (o *Object) AnimateOpacity(a float64, anim Anim) *Timeline {
	return o.track(o.sched.TweenFloat(o.Opacity, a, o.SetOpacity, anim))
}

// Flip mirrors the object. Surfaces and hitboxes follow at render and
// collision time.
func (o *Object) Flip(f Flip) {
	o.Transform.Flip(f, o.flipUnion)
}

// track records a timeline owned by this object so Destroy can stop it.
func (o *Object) track(t *Timeline) *Timeline {
	live := o.timelines[:0]
	for _, c := range o.timelines {
		if !c.Done() {
			live = append(live, c)
		}
	}
	o.timelines = append(live, t)
	return t
}

// --- Surfaces ---

// AddSurface attaches s to the object and returns it.
// Panics if s is nil, already owned, or its name is taken.
func (o *Object) AddSurface(s *Surface) *Surface {
	if s == nil {
		panic("kestrel: cannot add nil surface")
	}
	if o.destroyed {
		panic(fmt.Sprintf("kestrel: cannot add surface %q to destroyed object %q", s.Name, o.Name))
	}
	if s.owner != nil {
		panic(fmt.Sprintf("kestrel: surface %q already belongs to object %q", s.Name, s.owner.Name))
	}
	if _, ok := o.surfaces[s.Name]; ok {
		panic(fmt.Sprintf("kestrel: object %q already has a surface named %q", o.Name, s.Name))
	}
	s.owner = o
	s.seq = len(o.surfaceOrder)
	o.surfaces[s.Name] = s
	o.surfaceOrder = append(o.surfaceOrder, s)
	return s
}

// Surface returns the named surface. Panics if it does not exist.
func (o *Object) Surface(name string) *Surface {
	s, ok := o.surfaces[name]
	if !ok {
		panic(fmt.Sprintf("kestrel: object %q has no surface named %q", o.Name, name))
	}
	return s
}

// HasSurface reports whether a surface with that name exists.
func (o *Object) HasSurface(name string) bool {
	_, ok := o.surfaces[name]
	return ok
}

// RemoveSurface detaches and returns the named surface. Panics if it does
// not exist.
func (o *Object) RemoveSurface(name string) *Surface {
	s := o.Surface(name)
	delete(o.surfaces, name)
	for i, c := range o.surfaceOrder {
		if c == s {
			copy(o.surfaceOrder[i:], o.surfaceOrder[i+1:])
			o.surfaceOrder[len(o.surfaceOrder)-1] = nil
			o.surfaceOrder = o.surfaceOrder[:len(o.surfaceOrder)-1]
			break
		}
	}
	s.owner = nil
	return s
}

// Surfaces returns the surfaces in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (o *Object) Surfaces() []*Surface {
	return o.surfaceOrder
}

// --- Hitboxes ---

// AddHitbox attaches h to the object and returns it.
// Panics if h is nil, already owned, or its name is taken.
func (o *Object) AddHitbox(h *Hitbox) *Hitbox {
	if h == nil {
		panic("kestrel: cannot add nil hitbox")
	}
	if o.destroyed {
		panic(fmt.Sprintf("kestrel: cannot add hitbox %q to destroyed object %q", h.Name, o.Name))
	}
	if h.owner != nil {
		panic(fmt.Sprintf("kestrel: hitbox %q already belongs to object %q", h.Name, h.owner.Name))
	}
	if _, ok := o.hitboxes[h.Name]; ok {
		panic(fmt.Sprintf("kestrel: object %q already has a hitbox named %q", o.Name, h.Name))
	}
	h.owner = o
	o.hitboxes[h.Name] = h
	o.hitboxOrder = append(o.hitboxOrder, h)
	return h
}

// Hitbox returns the named hitbox. Panics if it does not exist.
func (o *Object) Hitbox(name string) *Hitbox {
	h, ok := o.hitboxes[name]
	if !ok {
		panic(fmt.Sprintf("kestrel: object %q has no hitbox named %q", o.Name, name))
	}
	return h
}

// HasHitbox reports whether a hitbox with that name exists.
func (o *Object) HasHitbox(name string) bool {
	_, ok := o.hitboxes[name]
	return ok
}

// RemoveHitbox detaches and returns the named hitbox. Panics if it does
// not exist.
func (o *Object) RemoveHitbox(name string) *Hitbox {
	h := o.Hitbox(name)
	delete(o.hitboxes, name)
	for i, c := range o.hitboxOrder {
		if c == h {
			copy(o.hitboxOrder[i:], o.hitboxOrder[i+1:])
			o.hitboxOrder[len(o.hitboxOrder)-1] = nil
			o.hitboxOrder = o.hitboxOrder[:len(o.hitboxOrder)-1]
			break
		}
	}
	h.owner = nil
	return h
}

// Hitboxes returns the hitboxes in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (o *Object) Hitboxes() []*Hitbox {
	return o.hitboxOrder
}

// HitboxRect returns the axis-aligned world rect of the named hitbox after
// the object's flip, scale and 90°-bucketed rotation.
func (o *Object) HitboxRect(name string) WorldRect {
	return o.Hitbox(name).WorldRect()
}

// --- Visibility ---

// Visible reports whether the object produces any output.
func (o *Object) Visible() bool {
	if o.destroyed || o.Hidden || o.Opacity <= 0 {
		return false
	}
	switch o.Kind {
	case ObjectText:
		return o.Text != nil && o.Text.Content != ""
	}
	return true
}

// --- Disposal ---

// Destroy stops owned timelines and releases surfaces and hitboxes. The
// engine drops destroyed objects from its list on the next update.
// Destroying twice is a no-op.
func (o *Object) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true
	for _, t := range o.timelines {
		t.Stop(false)
	}
	o.timelines = nil
	for _, s := range o.surfaceOrder {
		s.owner = nil
	}
	for _, h := range o.hitboxOrder {
		h.owner = nil
		h.OnCollide = nil
	}
	o.surfaces = nil
	o.surfaceOrder = nil
	o.hitboxes = nil
	o.hitboxOrder = nil
	if o.Chrono != nil {
		o.Chrono.Stop()
		o.Chrono.OnExpire = nil
	}
	if o.Button != nil {
		o.Button.OnClick = nil
	}
	o.UserData = nil
}
