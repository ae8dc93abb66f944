package ecs

import "strconv"

// EntityID is an opaque identifier, unique among the entities present in one world.
type EntityID uint64

// InvalidID is never issued to an entity.
const InvalidID EntityID = 0

func (id EntityID) IsZero() bool { return id == InvalidID }

func (id EntityID) String() string { return strconv.FormatUint(uint64(id), 10) }

// idGenerator hands out ids from a counter, skipping the sentinel and any id
// still held by a present entity (only possible after wraparound).
type idGenerator struct {
	next uint64
}

func (g *idGenerator) generate(present func(EntityID) bool) EntityID {
	for {
		g.next++
		id := EntityID(g.next)
		if id == InvalidID || present(id) {
			continue
		}
		return id
	}
}

// Entity is a handle to an entity owned by a World. It carries no state of
// its own: every access resolves the id against the world, so a handle kept
// past RemoveEntity simply reports the entity as absent.
type Entity struct {
	world *World
	id    EntityID
}

func (e Entity) ID() EntityID   { return e.id }
func (e Entity) World() *World  { return e.world }
func (e Entity) IsZero() bool   { return e.world == nil || e.id == InvalidID }
func (e Entity) String() string { return "entity#" + e.id.String() }

// Present reports whether the entity still exists in its world.
func (e Entity) Present() bool {
	return !e.IsZero() && e.world.EntityPresent(e.id)
}

// ComponentIDs returns the component types the entity currently owns.
func (e Entity) ComponentIDs() []ComponentID {
	if e.IsZero() {
		return nil
	}
	rec, ok := e.world.entities[e.id]
	if !ok {
		return nil
	}
	ids := make([]ComponentID, 0, len(rec.components))
	for cid := range rec.components {
		ids = append(ids, cid)
	}
	return ids
}

// entityRecord is the world-side storage of one entity.
type entityRecord struct {
	id         EntityID
	components map[ComponentID]*Wrapper
}

func newEntityRecord(id EntityID) *entityRecord {
	return &entityRecord{
		id:         id,
		components: make(map[ComponentID]*Wrapper, 8),
	}
}
