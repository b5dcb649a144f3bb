// Package ecs provides ECS adapters for kestrel's engine events.
//
// The primary adapter is [NewDonburiSink], which bridges kestrel collision
// and click events into a [Donburi] world as typed events. Subscribe to
// [CollisionEventType] or [ClickEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	eng, err := kestrel.NewEngine(cfg, kestrel.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
