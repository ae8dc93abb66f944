package ecs

// System is a unit of per-tick logic bound to one world at construction.
// Registration is by identity, so implementations should be pointer types.
type System interface {
	// Init is called once by AddSystem, before the first Tick.
	Init()
	// Tick is called once per World.Tick, in registration order.
	Tick()
	// Clean is called by World.Reset.
	Clean()
}

// Registry is the ordered set of systems registered with a world.
type Registry struct {
	systems []System
}

func NewRegistry() *Registry {
	return &Registry{
		systems: make([]System, 0, 16),
	}
}

// Register appends s unless it is already present. Reports whether s was added.
func (r *Registry) Register(s System) bool {
	if r.Contains(s) {
		return false
	}
	r.systems = append(r.systems, s)
	return true
}

// Unregister removes s, keeping the relative order of the rest.
func (r *Registry) Unregister(s System) {
	for i, have := range r.systems {
		if have == s {
			r.systems = append(r.systems[:i], r.systems[i+1:]...)
			return
		}
	}
}

func (r *Registry) Contains(s System) bool {
	for _, have := range r.systems {
		if have == s {
			return true
		}
	}
	return false
}

func (r *Registry) Len() int { return len(r.systems) }

// Snapshot copies the registration order so callers may iterate while
// systems are added or removed.
func (r *Registry) Snapshot() []System {
	out := make([]System, len(r.systems))
	copy(out, r.systems)
	return out
}

func (r *Registry) Clear() {
	clear(r.systems)
	r.systems = r.systems[:0]
}
