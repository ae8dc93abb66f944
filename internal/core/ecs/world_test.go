package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Y int }
type tag struct{}

// recorder logs hook calls into a shared journal.
type recorder struct {
	name    string
	journal *[]string
	inits   int
	ticks   int
	cleans  int
	onTick  func()
}

func (r *recorder) Init()  { r.inits++ }
func (r *recorder) Clean() { r.cleans++ }
func (r *recorder) Tick() {
	r.ticks++
	if r.journal != nil {
		*r.journal = append(*r.journal, r.name)
	}
	if r.onTick != nil {
		r.onTick()
	}
}

func TestCreateEntityPresent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	assert.NotEqual(t, InvalidID, e.ID())
	assert.True(t, w.EntityPresent(e.ID()))
	assert.True(t, e.Present())

	got, err := w.GetEntity(e.ID())
	require.NoError(t, err)
	assert.Equal(t, e, got)

	w.RemoveEntity(e)
	assert.False(t, w.EntityPresent(e.ID()))
	assert.False(t, e.Present())

	_, err = w.GetEntity(e.ID())
	assert.True(t, errors.Is(err, ErrEntityNotFound))
}

func TestIDsUniqueAndNeverInvalid(t *testing.T) {
	w := NewWorld()
	seen := make(map[EntityID]bool)
	for i := 0; i < 1000; i++ {
		e := w.CreateEntity()
		require.NotEqual(t, InvalidID, e.ID())
		require.False(t, seen[e.ID()], "duplicate id %s", e.ID())
		seen[e.ID()] = true
	}
}

func TestIDGeneratorSkipsPresentAndSentinel(t *testing.T) {
	w := NewWorld()
	w.ids.next = ^uint64(0) - 1 // next generate yields max, then wraps to 0
	a := w.CreateEntity()
	assert.Equal(t, EntityID(^uint64(0)), a.ID())

	// Occupy id 1 so the wrapped counter must skip 0 (sentinel) and 1.
	w.entities[1] = newEntityRecord(1)
	b := w.CreateEntity()
	assert.Equal(t, EntityID(2), b.ID())
}

func TestRemoveEntityDeregistersComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	_, err := AddComponent(e, position{1, 2})
	require.NoError(t, err)
	_, err = AddComponent(e, tag{})
	require.NoError(t, err)
	require.Equal(t, 2, w.ComponentCount())

	w.RemoveEntity(e)

	assert.Equal(t, 0, w.ComponentCount())
	assert.False(t, HasBucket[position](w))
	assert.False(t, HasBucket[tag](w))
	assert.Equal(t, 0, w.Entities())
}

func TestRemoveUnknownEntityIsNoop(t *testing.T) {
	w := NewWorld()
	keep := w.CreateEntity()
	gone := w.CreateEntity()
	w.RemoveEntity(gone)
	w.RemoveEntity(gone)
	assert.True(t, keep.Present())
	assert.Equal(t, 1, w.Entities())
}

func TestForeignHandleDoesNotTouchWorld(t *testing.T) {
	local := NewWorld()
	other := NewWorld()
	mine := local.CreateEntity()
	theirs := other.CreateEntity()
	require.Equal(t, mine.ID(), theirs.ID(), "ids overlap across worlds")
	_, err := AddComponent(mine, position{X: 1})
	require.NoError(t, err)

	local.RemoveComponent(theirs, ComponentIDOf[position]())
	assert.True(t, HasComponent[position](mine))

	local.RemoveEntity(theirs)
	local.ScheduleRemoveEntity(theirs)
	assert.Equal(t, 0, local.PendingRemovals())
	local.Tick()

	assert.True(t, mine.Present())
	assert.True(t, IndexHas[position](local, mine.ID()))
	assert.True(t, theirs.Present())
}

func TestScheduledRemovalTakesEffectNextTick(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	_, err := AddComponent(e, position{})
	require.NoError(t, err)

	w.ScheduleRemoveEntity(e)
	w.ScheduleRemoveEntity(e)
	assert.True(t, e.Present())
	assert.Equal(t, 2, w.PendingRemovals())

	w.Tick()
	assert.False(t, e.Present())
	assert.False(t, IndexHas[position](w, e.ID()))
	assert.Equal(t, 0, w.PendingRemovals())
}

func TestScheduledRemovalVisibleThroughTick(t *testing.T) {
	w := NewWorld()
	victim := w.CreateEntity()

	var sawInSameTick, sawInFirstSystemNextTick bool
	tick := 0
	first := &recorder{name: "first"}
	first.onTick = func() {
		tick++
		if tick == 1 {
			w.ScheduleRemoveEntity(victim)
			return
		}
		sawInFirstSystemNextTick = victim.Present()
	}
	second := &recorder{name: "second"}
	second.onTick = func() {
		if tick == 1 {
			sawInSameTick = w.EntityPresent(victim.ID())
		}
	}
	w.AddSystem(first)
	w.AddSystem(second)

	w.Tick()
	assert.True(t, sawInSameTick)
	assert.True(t, victim.Present())

	w.Tick()
	assert.False(t, sawInFirstSystemNextTick)
}

func TestSystemsRunInRegistrationOrder(t *testing.T) {
	w := NewWorld()
	var journal []string
	a := &recorder{name: "a", journal: &journal}
	b := &recorder{name: "b", journal: &journal}
	c := &recorder{name: "c", journal: &journal}
	w.AddSystem(b)
	w.AddSystem(a)
	w.AddSystem(c)
	w.AddSystem(a)

	w.Tick()
	w.Tick()

	assert.Equal(t, []string{"b", "a", "c", "b", "a", "c"}, journal)
	assert.Equal(t, 1, a.inits)
	assert.Equal(t, 3, w.Registry().Len())
}

func TestRemoveSystem(t *testing.T) {
	w := NewWorld()
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}
	w.AddSystem(a)
	w.AddSystem(b)

	w.RemoveSystem(a)
	w.Tick()
	assert.Equal(t, 0, a.ticks)
	assert.Equal(t, 1, b.ticks)
	assert.False(t, w.HasSystem(a))
}

func TestScheduleRemoveSystem(t *testing.T) {
	w := NewWorld()
	a := &recorder{name: "a"}
	a.onTick = func() { w.ScheduleRemoveSystem(a) }
	w.AddSystem(a)

	w.Tick()
	assert.True(t, w.HasSystem(a))
	w.Tick()
	assert.False(t, w.HasSystem(a))
	assert.Equal(t, 1, a.ticks)
}

func TestReset(t *testing.T) {
	w := NewWorld()
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}
	w.AddSystem(a)
	w.AddSystem(b)
	for i := 0; i < 3; i++ {
		e := w.CreateEntity()
		_, err := AddComponent(e, position{X: i})
		require.NoError(t, err)
		w.ScheduleRemoveEntity(e)
	}

	w.Reset()

	assert.Equal(t, 0, w.Entities())
	assert.Equal(t, 0, w.ComponentCount())
	assert.Equal(t, 0, w.PendingRemovals())
	assert.True(t, w.HasSystem(a))
	assert.True(t, w.HasSystem(b))
	assert.Equal(t, 1, a.cleans)
	assert.Equal(t, 1, b.cleans)
}

func TestClean(t *testing.T) {
	w := NewWorld()
	a := &recorder{name: "a"}
	w.AddSystem(a)
	e := w.CreateEntity()
	_, err := AddComponent(e, tag{})
	require.NoError(t, err)
	w.ScheduleRemoveSystem(a)

	w.Clean()

	assert.Equal(t, 0, w.Entities())
	assert.Equal(t, 0, w.ComponentCount())
	assert.Equal(t, 0, w.Registry().Len())
	assert.Equal(t, 0, a.cleans)
	assert.Equal(t, 1, a.inits)

	w.Tick()
	assert.Equal(t, 0, a.ticks)
}

func TestEntitiesCreatedDuringTickAreVisibleImmediately(t *testing.T) {
	w := NewWorld()
	var spawned Entity
	s := &recorder{name: "spawner"}
	s.onTick = func() {
		if spawned.IsZero() {
			spawned = w.CreateEntity()
		}
	}
	w.AddSystem(s)
	w.Tick()
	assert.True(t, spawned.Present())
}
