package system

import (
	"image"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	coresys "github.com/battlecity/engine/internal/core/system"
)

// MovementSystem moves every entity with a heading by its speed.
//
// Tanks stop at the map edge, at walls, at non-traversible objects and at
// other tanks, and get component.Blocked. Flying entities (projectiles) pass
// through everything; leaving the map expires them. Collisions with targets
// are CollisionSystem's job.
//
// Entities still waiting out a RespawnDelay stay put.
//
// Every entity that moved gets its own GeometryChanged, emitted after the
// walk so listeners never run while positions are half updated.
type MovementSystem struct {
	coresys.Base
	bus   *event.Bus
	clock *Clock
}

func NewMovementSystem(world *ecs.World, bus *event.Bus, clock *Clock) *MovementSystem {
	return &MovementSystem{Base: coresys.NewBase(world), bus: bus, clock: clock}
}

func (s *MovementSystem) Tick() {
	w := s.World()
	bounds, hasBounds := mapBounds(w)

	var moved []event.GeometryChanged
	ecs.Each2(w, func(e ecs.Entity, mv *component.Movement, geo *component.Geometry) {
		if mv.Direction == component.DirNone || mv.Speed == 0 {
			return
		}
		if ecs.HasComponent[component.Expired](e) || s.waiting(e) {
			return
		}
		geo.Rotation = mv.Direction.Rotation()
		next := geo.Rect.Add(mv.Delta())
		flying := ecs.HasComponent[component.Flying](e)

		if hasBounds && !next.In(bounds) {
			if flying {
				mark(e, component.Expired{})
				return
			}
			mark(e, component.Blocked{})
			return
		}
		if !flying && s.obstructed(e, next) {
			mark(e, component.Blocked{})
			return
		}

		geo.Rect = next
		ecs.RemoveComponent[component.Blocked](e)
		ev := event.GeometryChanged{Rect: geo.Rect, Rotation: geo.Rotation}
		ev.AddTarget(e.ID())
		moved = append(moved, ev)
	})

	for _, ev := range moved {
		event.Emit(s.bus, ev)
	}
}

func (s *MovementSystem) waiting(e ecs.Entity) bool {
	delay, err := ecs.GetComponent[component.RespawnDelay](e)
	return err == nil && !delay.Ready(s.clock.Now())
}

// mark attaches a marker to an entity taken from a live query.
func mark[T any](e ecs.Entity, v T) {
	_, _ = ecs.AddComponent(e, v)
}

// obstructed reports whether a tank at rect would overlap something solid.
func (s *MovementSystem) obstructed(self ecs.Entity, rect image.Rectangle) bool {
	w := s.World()
	for _, other := range solids(w) {
		if other == self {
			continue
		}
		geo, err := ecs.GetComponent[component.Geometry](other)
		if err != nil {
			continue
		}
		if geo.IntersectsRect(rect) {
			return true
		}
	}
	return false
}

// solids returns every entity a tank cannot drive through.
func solids(w *ecs.World) []ecs.Entity {
	out := ecs.EntitiesWith[component.NonTraversibleTile](w)
	out = append(out, ecs.EntitiesWith[component.NonTraversible](w)...)
	for _, e := range ecs.EntitiesWith[component.TankObject](w) {
		if !ecs.HasComponent[component.NonTraversible](e) {
			out = append(out, e)
		}
	}
	return out
}

// mapBounds returns the playfield rectangle from the GameMap entity.
func mapBounds(w *ecs.World) (image.Rectangle, bool) {
	for _, e := range ecs.EntitiesWith[component.GameMap](w) {
		if geo, err := ecs.GetComponent[component.Geometry](e); err == nil {
			return geo.Rect, true
		}
	}
	return image.Rectangle{}, false
}
