package kestrel

// Gravity selects which way "down" is for snapping policy.
type Gravity uint8

const (
	GravityDown Gravity = iota // world -Y
	GravityUp                  // world +Y
)

// LeadingFace returns the face of a falling body that lands on ground.
func (g Gravity) LeadingFace() Face {
	if g == GravityUp {
		return FaceTop
	}
	return FaceBottom
}

// SnapEligible reports whether a contact on face may be snapped out of.
// Only the leading face qualifies, and only while the body is not moving
// away from the ground.
func SnapEligible(face Face, g Gravity, velocityY float64) bool {
	if face != g.LeadingFace() {
		return false
	}
	if g == GravityUp {
		return velocityY >= 0
	}
	return velocityY <= 0
}

// ResolveSolid tests obj against a solid object using a two-hitbox scheme:
// the broad hitbox yields the contact face, and a fine hitbox contact means
// the body ran into the solid rather than landing on it. The solid is
// represented by its first hitbox, or its rect when it has none.
//
// When the broad contact is on the leading face and snapping is allowed,
// obj is moved so the broad hitbox rests on the solid and face is returned
// with hit false. Any fine contact returns hit true without moving obj.
func ResolveSolid(obj *Object, broad, fine string, solid *Object, g Gravity, velocityY float64) (face Face, hit bool) {
	broadRect := obj.HitboxRect(broad)
	solidRect := solid.Rect()
	if len(solid.hitboxOrder) > 0 {
		solidRect = solid.hitboxOrder[0].WorldRect()
	}
	if !broadRect.Collides(solidRect) {
		return FaceNone, false
	}
	face = broadRect.CollidedFace(solidRect)
	if fine != "" && obj.HitboxRect(fine).Collides(solidRect) {
		return face, true
	}
	if SnapEligible(face, g, velocityY) {
		snapped := broadRect
		snapped.Snap(solidRect, face)
		obj.SetTranslate(obj.Transform.Translate.Add(snapped.Center().Sub(broadRect.Center())))
	}
	return face, false
}

// CollisionEvent is published to the engine's EventSink for each contact.
type CollisionEvent struct {
	Frame       uint64
	ObjectID    uint32
	OtherID     uint32
	Hitbox      string
	OtherHitbox string
	Face        Face
}

// ClickEvent is published to the engine's EventSink when a button is clicked.
type ClickEvent struct {
	Frame    uint64
	ObjectID uint32
	Name     string
}

// EventSink receives engine events. See the ecs subpackage for a donburi
// adapter.
type EventSink interface {
	EmitCollision(CollisionEvent)
	EmitClick(ClickEvent)
}

// collide runs the collision pass: every pair of live objects sharing a
// non-zero CollisionGroup, every pair of their collidable hitboxes. An
// object whose group changes inside a callback gets no further contacts
// this pass.
func (e *Engine) collide() {
	groups := make(map[int][]*Object)
	var keys []int
	for _, o := range e.objects {
		if o.destroyed || o.CollisionGroup == 0 || len(o.hitboxOrder) == 0 {
			continue
		}
		if _, ok := groups[o.CollisionGroup]; !ok {
			keys = append(keys, o.CollisionGroup)
		}
		groups[o.CollisionGroup] = append(groups[o.CollisionGroup], o)
	}
	for _, k := range keys {
		objs := groups[k]
		for i := 0; i < len(objs); i++ {
			for j := i + 1; j < len(objs); j++ {
				e.collidePair(objs[i], objs[j])
			}
		}
	}
}

func (e *Engine) collidePair(a, b *Object) {
	for _, ha := range a.Hitboxes() {
		for _, hb := range b.Hitboxes() {
			// Callbacks may destroy either object or move it out of the group.
			if a.destroyed || b.destroyed || a.CollisionGroup == 0 || a.CollisionGroup != b.CollisionGroup {
				return
			}
			if !ha.Collidable || !hb.Collidable || ha.owner == nil || hb.owner == nil {
				continue
			}
			ra, rb := ha.WorldRect(), hb.WorldRect()
			if !ra.Collides(rb) {
				continue
			}
			e.contact(Contact{Self: a, Other: b, Hitbox: ha, OtherHitbox: hb, Face: ra.CollidedFace(rb)})
			if a.destroyed || b.destroyed || a.CollisionGroup != b.CollisionGroup {
				return
			}
			if hb.owner == nil || ha.owner == nil {
				continue
			}
			e.contact(Contact{Self: b, Other: a, Hitbox: hb, OtherHitbox: ha, Face: rb.CollidedFace(ra)})
		}
	}
}

func (e *Engine) contact(c Contact) {
	if c.Hitbox.OnCollide != nil {
		c.Hitbox.OnCollide(c)
	}
	if e.events != nil {
		e.events.EmitCollision(CollisionEvent{
			Frame:       e.sched.Frame(),
			ObjectID:    c.Self.ID,
			OtherID:     c.Other.ID,
			Hitbox:      c.Hitbox.Name,
			OtherHitbox: c.OtherHitbox.Name,
			Face:        c.Face,
		})
	}
}
