// Package ecs runs marionette rigs inside a [Donburi] world.
//
// Attach a rig to an entity with [AddRig] and call [Step] once per frame from
// your update system. When a non-looping clip reaches its end, a
// [PlaybackStopped] event is published; subscribe to [PlaybackStoppedEvent]
// and drain it with events.ProcessAllEvents.
//
// Usage:
//
//	world := donburi.NewWorld()
//	e := ecs.AddRig(world, rig)
//	// each frame
//	ecs.Step(world, dt)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
