// Package kestrel is a small 2D game engine core for [Ebitengine].
//
// Kestrel resolves game objects into draw calls through a fixed transform
// pipeline, resolves rectangle collisions down to the face that was hit,
// and drives every animation from a frame-stepped timeline scheduler.
//
// # Quick start
//
//	cfg := kestrel.DefaultConfig()
//	eng, err := kestrel.NewEngine(cfg, kestrel.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//	box := eng.NewObject(kestrel.ObjectBasic, "box", kestrel.Sized(0, 0, 2, 1))
//	box.AddSurface(kestrel.NewColorSurface("fill", kestrel.RGBA(80, 180, 255, 255), kestrel.Identity()))
//	log.Fatal(kestrel.Run(eng))
//
// [Engine] implements [ebiten.Game], so it can also be embedded in a game
// that owns its own loop.
//
// # Spaces
//
// World space is y-up and measured in world units; the camera translate is
// the world point at the viewport center and [Camera.GameScale] converts
// units to pixels. Objects with Absolute set live in interface space, whose
// origin is chosen by [Camera.Origin] and scaled by
// [Camera.InterfaceScale]. Pixel space is y-down. Rotations are degrees,
// positive clockwise on screen.
//
// # Objects, surfaces and hitboxes
//
// An [Object] is a centered rect (translate and scale) with named
// [Surface] layers and named [Hitbox] rects. Child transforms are relative
// to the object: the translate is multiplied by the object's scale and the
// child scale is a fraction of the object's size. The [Pipeline] applies the
// object flip first, then scale, then rotation about the object pivot.
// Hitbox rotations are bucketed to 90° so collision stays axis-aligned.
//
// # Timelines
//
// The [Scheduler] advances every [Timeline] by one fixed step per update.
// Animated setters such as [Object.AnimateTranslate] take an [Anim] and
// return the timeline, which the object owns and stops on destroy.
// Pause-sensitive timelines stop while the engine is paused.
//
// # Collision
//
// [Rect.Collides], [Rect.CollidedFace] and [Rect.Snap] are the geometric
// primitives. [ResolveSolid] layers a gravity-aware snapping policy over
// them, and the engine's collision pass reports contacts between objects
// sharing a CollisionGroup to [Hitbox.OnCollide] and to an [EventSink]
// (see the ecs subpackage for a [Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package kestrel
