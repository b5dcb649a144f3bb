package ecs

import (
	"github.com/phanxgames/kestrel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for kestrel collision events.
// One event is published per hitbox contact, from each side.
var CollisionEventType = events.NewEventType[kestrel.CollisionEvent]()

// ClickEventType is the Donburi event type for kestrel button clicks.
var ClickEventType = events.NewEventType[kestrel.ClickEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued and can be consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) kestrel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event kestrel.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}

func (s *donburiSink) EmitClick(event kestrel.ClickEvent) {
	ClickEventType.Publish(s.world, event)
}
