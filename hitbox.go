package kestrel

// Contact describes one hitbox overlap found by the engine's collision pass.
type Contact struct {
	Self        *Object
	Other       *Object
	Hitbox      *Hitbox
	OtherHitbox *Hitbox
	// Face is the side of Hitbox's rect that OtherHitbox penetrated least.
	Face Face
}

// Hitbox is a named collision rect attached to an Object. Its transform is
// relative to the object like a surface's. Rotation is bucketed to 90° so
// the world rect stays axis-aligned.
type Hitbox struct {
	Name      string
	Transform Transform

	// Color is used only when hitboxes are drawn in debug mode.
	Color      Color
	Collidable bool
	Visible    bool

	// OnCollide runs for every contact found by the collision pass.
	OnCollide func(Contact)

	owner *Object
}

// NewHitbox creates a collidable hitbox.
func NewHitbox(name string, t Transform) *Hitbox {
	return &Hitbox{
		Name:       name,
		Transform:  t,
		Color:      Color{R: 1, A: 0.5},
		Collidable: true,
		Visible:    true,
	}
}

// Owner returns the object the hitbox belongs to, or nil.
func (h *Hitbox) Owner() *Object { return h.owner }

// Flip mirrors the hitbox about its own center.
func (h *Hitbox) Flip(f Flip) {
	union := h.owner != nil && h.owner.flipUnion
	h.Transform.Flip(f, union)
}

// WorldRect returns the hitbox's axis-aligned rect in the owner's space.
// Panics if the hitbox is detached.
func (h *Hitbox) WorldRect() WorldRect {
	if h.owner == nil {
		panic("kestrel: WorldRect on hitbox " + h.Name + " with no owner")
	}
	g := childGeometry(h.owner, &h.Transform, 90)
	return g.Bounds()
}
