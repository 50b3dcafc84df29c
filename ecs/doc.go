// Package ecs mirrors sunflower generation passes into a [Donburi] world.
//
// [Sink] implements sunflower.Renderer. Each pass despawns every entity
// tagged with [PatternTag] and spawns one entity per element carrying
// [PlacementComponent] and [ShapeComponent]; nested elements also carry
// [ParentComponent]. After the spawn a [Regenerated] event is published to
// [RegeneratedEvent].
//
// Usage:
//
//	world := donburi.NewWorld()
//	sink := ecs.NewSink(world)
//	ctrl := sunflower.NewController(params, sunflower.Renderers{scene, sink})
//
//	ecs.RegeneratedEvent.Subscribe(world, func(w donburi.World, e ecs.Regenerated) {
//		// react to the new pass
//	})
//	ecs.RegeneratedEvent.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
