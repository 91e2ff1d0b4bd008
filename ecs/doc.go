// Package ecs provides ECS adapters for easel's polygon editor.
//
// [NewDonburiSink] bridges editor events (shape created, rotated, scene
// cleared, editing toggled) into a [Donburi] world as typed events.
// Subscribe to [EditorEventType] in your ECS systems to receive them.
// [InstallMirror] keeps one entity per polygon in sync with those events.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ecs.InstallMirror(world)
//	editor.SetEventSink(sink)
//	// each frame:
//	ecs.EditorEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
