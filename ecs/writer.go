// Package ecs provides Donburi adapters for blitfx.
package ecs

import (
	"github.com/phanxgames/blitfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// WriterComponent holds the shader writer owned by an entity.
var WriterComponent = donburi.NewComponentType[blitfx.ShaderWriter]()

// RefreshEvent asks the writer on Entity to re-run its pass.
type RefreshEvent struct {
	Entity donburi.Entity
}

// RefreshEventType is the Donburi event type for manual refreshes.
var RefreshEventType = events.NewEventType[RefreshEvent]()

var writers = donburi.NewQuery(filter.Contains(WriterComponent))

// StartWriters activates every writer in the world. Writers that have already
// started are left alone, so it is safe to call every frame.
func StartWriters(world donburi.World) {
	writers.Each(world, func(entry *donburi.Entry) {
		WriterComponent.Get(entry).Start()
	})
}

// RequestRefresh queues a refresh of the writer on entity. It runs when the
// world's events are processed.
func RequestRefresh(world donburi.World, entity donburi.Entity) {
	RefreshEventType.Publish(world, RefreshEvent{Entity: entity})
}

// HandleRefresh subscribes the world to refresh events. Events for entities
// that no longer exist or carry no writer are dropped.
func HandleRefresh(world donburi.World) {
	RefreshEventType.Subscribe(world, refresh)
}

func refresh(world donburi.World, e RefreshEvent) {
	if !world.Valid(e.Entity) {
		return
	}
	entry := world.Entry(e.Entity)
	if !entry.HasComponent(WriterComponent) {
		return
	}
	WriterComponent.Get(entry).Refresh()
}
