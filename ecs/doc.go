// Package ecs hosts blitfx shader writers in a [Donburi] world.
//
// Attach a [WriterComponent] to an entity, call [StartWriters] from the
// system that activates new entities, and register [HandleRefresh] once so
// that [RequestRefresh] re-runs a writer on demand:
//
//	e := world.Create(ecs.WriterComponent)
//	ecs.WriterComponent.Set(world.Entry(e), blitfx.NewShaderWriter(rt, shader))
//	ecs.HandleRefresh(world)
//
//	// each frame
//	ecs.StartWriters(world)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
