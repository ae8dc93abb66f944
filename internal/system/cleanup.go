package system

import (
	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	coresys "github.com/battlecity/engine/internal/core/system"
	"github.com/battlecity/engine/internal/factory"
)

// Explosion animation parameters; the animation lives explosionTicks ticks.
const (
	explosionFrames = 3
	explosionRate   = 10
	explosionTicks  = 6
	fragScore       = 100
)

// ReaperSystem collects everything that should leave the world this tick
// and schedules its removal, so the entities stay visible to the systems
// after it and disappear at the start of the next tick. Register it after
// the systems that expire or kill entities.
//
//   - Expired entities and entities whose TTL ran out are removed.
//   - Dead player tanks with lives left are healed in place instead.
//   - Other dead entities are removed; dead enemy tanks leave an explosion
//     and a frag behind.
//
// All removals of one tick are announced in a single EntitiesRemoved.
type ReaperSystem struct {
	coresys.Base
	bus     *event.Bus
	factory *factory.Factory
	clock   *Clock
	log     *zap.Logger
}

func NewReaperSystem(world *ecs.World, bus *event.Bus, f *factory.Factory, clock *Clock, log *zap.Logger) *ReaperSystem {
	return &ReaperSystem{Base: coresys.NewBase(world), bus: bus, factory: f, clock: clock, log: log}
}

func (s *ReaperSystem) Tick() {
	w := s.World()
	var removed event.EntitiesRemoved
	reap := func(e ecs.Entity) {
		w.ScheduleRemoveEntity(e)
		removed.AddTarget(e.ID())
	}

	ecs.Each(w, func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Ticks > 0 {
			ttl.Ticks--
		}
		if ttl.Ticks == 0 {
			mark(e, component.Expired{})
		}
	})

	ecs.Each(w, func(e ecs.Entity, _ *component.Expired) {
		reap(e)
	})

	ecs.Each(w, func(e ecs.Entity, hp *component.Health) {
		if hp.Alive() || ecs.HasComponent[component.Expired](e) {
			return
		}
		if s.respawn(e, hp) {
			return
		}
		if ecs.HasComponent[component.Enemy](e) {
			s.leaveRemains(e)
		}
		reap(e)
	})

	if len(removed.Entities()) > 0 {
		event.Emit(s.bus, removed)
	}
}

// respawn heals a dead player tank that still has lives and reports whether it did.
func (s *ReaperSystem) respawn(e ecs.Entity, hp *component.Health) bool {
	if !ecs.HasComponent[component.Player](e) {
		return false
	}
	lives, err := ecs.GetComponent[component.Lives](e)
	if err != nil || !lives.Decrease() {
		return false
	}
	hp.Increase(hp.MaxHealth())
	if delay, err := ecs.GetComponent[component.RespawnDelay](e); err == nil {
		delay.Start(s.clock.Now())
	}
	s.log.Info("player respawned", zap.Stringer("entity", e.ID()), zap.Uint32("lives", lives.Count))
	return true
}

func (s *ReaperSystem) leaveRemains(e ecs.Entity) {
	geo, err := ecs.GetComponent[component.Geometry](e)
	if err != nil {
		return
	}
	anim, err := s.factory.Animation(geo.Rect, component.AnimationInfo{
		Type:      component.AnimExplosion,
		FrameNum:  explosionFrames,
		FrameRate: explosionRate,
		Loops:     1,
		Duration:  explosionTicks * s.clock.rate,
	})
	if err != nil {
		s.log.Error("explosion animation", zap.Error(err))
		return
	}
	mark(anim, component.TTL{Ticks: explosionTicks})

	frag, err := s.factory.Frag(geo.Rect, fragScore)
	if err != nil {
		s.log.Error("frag", zap.Error(err))
		return
	}
	mark(frag, component.TTL{Ticks: explosionTicks * 2})
}
