package ecs

import "fmt"

// World is the top-level ECS container. It owns every entity and its
// components, a per-type component index, the registered systems, and the
// deferred removal queues drained at the start of each Tick.
//
// A World is not safe for concurrent use.
type World struct {
	ids        idGenerator
	entities   map[EntityID]*entityRecord
	components map[ComponentID]map[EntityID]*Wrapper
	systems    *Registry

	entitiesToRemove []EntityID
	systemsToRemove  []System
}

func NewWorld() *World {
	return &World{
		entities:         make(map[EntityID]*entityRecord, 256),
		components:       make(map[ComponentID]map[EntityID]*Wrapper, 32),
		systems:          NewRegistry(),
		entitiesToRemove: make([]EntityID, 0, 64),
	}
}

func (w *World) Registry() *Registry { return w.systems }

// Tick applies the removals scheduled since the previous Tick (entities
// first, then systems) and then runs every registered system once, in
// registration order. Removals scheduled while systems run take effect at
// the start of the next Tick.
func (w *World) Tick() {
	w.cleanup()

	for _, s := range w.systems.Snapshot() {
		if !w.systems.Contains(s) {
			continue // removed earlier in this tick
		}
		s.Tick()
	}
}

// Reset drops all entities, components and pending removals. Systems stay
// registered and each gets one Clean call.
func (w *World) Reset() {
	w.dropEntities()

	for _, s := range w.systems.Snapshot() {
		s.Clean()
	}
}

// Clean tears everything down, systems included, without invoking hooks.
func (w *World) Clean() {
	w.dropEntities()
	w.systems.Clear()
}

func (w *World) dropEntities() {
	clear(w.entities)
	clear(w.components)
	w.entitiesToRemove = w.entitiesToRemove[:0]
	clear(w.systemsToRemove)
	w.systemsToRemove = w.systemsToRemove[:0]
}

// CreateEntity allocates a fresh id and inserts an empty entity for it.
func (w *World) CreateEntity() Entity {
	id := w.ids.generate(w.EntityPresent)
	w.entities[id] = newEntityRecord(id)
	return Entity{world: w, id: id}
}

func (w *World) EntityPresent(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

func (w *World) GetEntity(id EntityID) (Entity, error) {
	if !w.EntityPresent(id) {
		return Entity{}, fmt.Errorf("entity %s: %w", id, ErrEntityNotFound)
	}
	return Entity{world: w, id: id}, nil
}

// Entities returns the number of present entities.
func (w *World) Entities() int { return len(w.entities) }

// ComponentCount returns the number of entries in the component index.
func (w *World) ComponentCount() int {
	n := 0
	for _, bucket := range w.components {
		n += len(bucket)
	}
	return n
}

// RemoveEntity deregisters every component of e from the index and then
// erases the entity. Handles to e report it absent afterwards; a handle from
// another world is ignored. Must not be
// called while the world is iterating e's component types; use
// ScheduleRemoveEntity from systems and event listeners.
func (w *World) RemoveEntity(e Entity) {
	if e.world != w {
		return
	}
	w.removeEntity(e.id)
}

func (w *World) removeEntity(id EntityID) {
	rec, ok := w.entities[id]
	if !ok {
		return
	}
	for cid := range rec.components {
		w.unindex(id, cid)
	}
	delete(w.entities, id)
}

// ScheduleRemoveEntity queues e for removal at the start of the next Tick.
// It does not touch entity storage and may be called repeatedly. Handles
// from another world are ignored.
func (w *World) ScheduleRemoveEntity(e Entity) {
	if e.world != w {
		return
	}
	w.entitiesToRemove = append(w.entitiesToRemove, e.id)
}

// PendingRemovals returns the number of entity removals queued for the next Tick.
func (w *World) PendingRemovals() int { return len(w.entitiesToRemove) }

// AddSystem runs s.Init and registers s. Adding a registered system again
// is a no-op.
func (w *World) AddSystem(s System) {
	if w.systems.Contains(s) {
		return
	}
	s.Init()
	w.systems.Register(s)
}

func (w *World) RemoveSystem(s System) {
	w.systems.Unregister(s)
}

// ScheduleRemoveSystem queues s for removal at the start of the next Tick.
func (w *World) ScheduleRemoveSystem(s System) {
	w.systemsToRemove = append(w.systemsToRemove, s)
}

func (w *World) HasSystem(s System) bool { return w.systems.Contains(s) }

// AddComponent attaches cw to e, replacing any component of the same type,
// and records it in the index.
func (w *World) AddComponent(e Entity, cw *Wrapper) error {
	rec, ok := w.entities[e.id]
	if !ok || e.world != w {
		return fmt.Errorf("add %s to %s: %w", cw.id, e, ErrEntityNotFound)
	}
	rec.components[cw.id] = cw

	bucket, ok := w.components[cw.id]
	if !ok {
		bucket = make(map[EntityID]*Wrapper)
		w.components[cw.id] = bucket
	}
	bucket[e.id] = cw
	return nil
}

// RemoveComponent detaches the component of type cid from e. The index
// bucket for cid is deleted once its last holder is gone.
func (w *World) RemoveComponent(e Entity, cid ComponentID) {
	rec, ok := w.entities[e.id]
	if !ok || e.world != w {
		return
	}
	if _, ok := rec.components[cid]; !ok {
		return
	}
	delete(rec.components, cid)
	w.unindex(e.id, cid)
}

func (w *World) unindex(id EntityID, cid ComponentID) {
	bucket, ok := w.components[cid]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(w.components, cid)
	}
}

func (w *World) cleanup() {
	for _, id := range w.entitiesToRemove {
		w.removeEntity(id)
	}
	for _, s := range w.systemsToRemove {
		w.systems.Unregister(s)
	}

	w.entitiesToRemove = w.entitiesToRemove[:0]
	clear(w.systemsToRemove)
	w.systemsToRemove = w.systemsToRemove[:0]
}
