package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType is the Donburi event type for easel editor events.
var EditorEventType = events.NewEventType[easel.EditorEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Editor
// events are published to EditorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) easel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event easel.EditorEvent) {
	EditorEventType.Publish(s.world, event)
}
