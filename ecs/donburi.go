// Package ecs provides ECS adapters for garden.
package ecs

import (
	"github.com/phanxgames/garden"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for garden animation
// lifecycle events. Subscribe to it in your ECS systems to react when
// animations start, finish, or are cancelled.
var AnimationEventType = events.NewEventType[garden.AnimationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Animation events are published to AnimationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) garden.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitAnimationEvent(event garden.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}
