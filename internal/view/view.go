// Package view is the boundary between the simulation and whatever presents
// it. The simulation calls into a MapView; the view only talks back through
// runner commands.
package view

import (
	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
)

// MapView receives objects and notifications from the simulation.
type MapView interface {
	AddObject(t component.ObjectType, e ecs.Entity, sendUpdate bool)
	RemoveAllObjects()

	EntityHit(event.EntityHit)
	EntityKilled(event.EntityKilled)
	EntitiesRemoved(event.EntitiesRemoved)

	PrepareToLoadNextLevel()
	LevelStarted(name string)
	LevelCompleted(name string, result event.LevelResult)
	GameCompleted()
}

// Bridge forwards bus events to a MapView.
type Bridge struct {
	bus     *event.Bus
	view    MapView
	handles []event.Handle
}

// Connect subscribes v to every event type a MapView understands.
func Connect(bus *event.Bus, v MapView) *Bridge {
	b := &Bridge{bus: bus, view: v}
	b.handles = append(b.handles,
		event.Subscribe(bus, v.EntityHit),
		event.Subscribe(bus, v.EntityKilled),
		event.Subscribe(bus, v.EntitiesRemoved),
		event.Subscribe(bus, func(event.PrepareNextLevel) { v.PrepareToLoadNextLevel() }),
		event.Subscribe(bus, func(ev event.LevelStarted) { v.LevelStarted(ev.Name) }),
		event.Subscribe(bus, func(ev event.LevelCompleted) { v.LevelCompleted(ev.Name, ev.Result) }),
		event.Subscribe(bus, func(event.GameCompleted) { v.GameCompleted() }),
	)
	return b
}

// Disconnect drops every subscription made by Connect.
func (b *Bridge) Disconnect() {
	for _, h := range b.handles {
		b.bus.Unsubscribe(h)
	}
	b.handles = nil
}
