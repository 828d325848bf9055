package ecs

import (
	"github.com/phanxgames/marionette"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// RigData is the component stored on rig entities.
type RigData struct {
	Rig *marionette.Rig
}

// Rig is the Donburi component type holding a RigData.
var Rig = donburi.NewComponentType[RigData]()

// PlaybackStopped is published when a rig's animator stops by reaching the
// end (or, in reverse, the start) of a non-looping clip.
type PlaybackStopped struct {
	Entity donburi.Entity
	Clip   string
	Time   float32
}

// PlaybackStoppedEvent is the Donburi event type for PlaybackStopped.
var PlaybackStoppedEvent = events.NewEventType[PlaybackStopped]()

var rigQuery = donburi.NewQuery(filter.Contains(Rig))

// AddRig creates an entity carrying r.
func AddRig(world donburi.World, r *marionette.Rig) donburi.Entity {
	e := world.Create(Rig)
	Rig.SetValue(world.Entry(e), RigData{Rig: r})
	return e
}

// RigOf returns the rig attached to e, or nil.
func RigOf(world donburi.World, e donburi.Entity) *marionette.Rig {
	if !world.Valid(e) {
		return nil
	}
	entry := world.Entry(e)
	if !entry.HasComponent(Rig) {
		return nil
	}
	return Rig.Get(entry).Rig
}

// Step advances every rig in the world by dt and queues a PlaybackStopped
// event for each animator that stopped during this step.
func Step(world donburi.World, dt float32) {
	rigQuery.Each(world, func(entry *donburi.Entry) {
		r := Rig.Get(entry).Rig
		if r == nil {
			return
		}
		wasPlaying := r.Animator.Playing
		r.Step(dt)
		if wasPlaying && !r.Animator.Playing {
			PlaybackStoppedEvent.Publish(world, PlaybackStopped{
				Entity: entry.Entity(),
				Clip:   r.Animator.Clip.Name,
				Time:   r.Animator.Time,
			})
		}
	})
}
