package system

import (
	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	coresys "github.com/battlecity/engine/internal/core/system"
)

// LevelSystem decides when the current level is over. The level is lost once
// the player base or the last player tank is dead or gone, and won once no
// enemy tank is left. Levels without a player tank can only be lost through
// the base. LevelCompleted is emitted once per level; Clean (run by
// World.Reset between levels) re-arms it.
type LevelSystem struct {
	coresys.Base
	bus       *event.Bus
	log       *zap.Logger
	name      string
	done      bool
	sawPlayer bool
}

func NewLevelSystem(world *ecs.World, bus *event.Bus, log *zap.Logger) *LevelSystem {
	s := &LevelSystem{Base: coresys.NewBase(world), bus: bus, log: log}
	event.Subscribe(bus, func(ev event.LevelStarted) { s.name = ev.Name })
	return s
}

// Done reports whether the current level has been decided.
func (s *LevelSystem) Done() bool { return s.done }

func (s *LevelSystem) Tick() {
	if s.done {
		return
	}
	w := s.World()
	playerAlive := anyAlive[component.Player](w)
	s.sawPlayer = s.sawPlayer || playerAlive

	var result event.LevelResult
	switch {
	case !anyAlive[component.PlayerBase](w) || (s.sawPlayer && !playerAlive):
		result = event.LevelLost
	case !ecs.HasBucket[component.Enemy](w):
		result = event.LevelWon
	default:
		return
	}
	s.done = true
	s.log.Info("level decided", zap.String("level", s.name), zap.Stringer("result", result))
	event.Emit(s.bus, event.LevelCompleted{Name: s.name, Result: result})
}

func (s *LevelSystem) Clean() {
	s.done = false
	s.sawPlayer = false
}

// anyAlive reports whether some entity with marker T is not expired and,
// if it has Health, still alive.
func anyAlive[T any](w *ecs.World) bool {
	for _, e := range ecs.EntitiesWith[T](w) {
		if ecs.HasComponent[component.Expired](e) {
			continue
		}
		if hp, err := ecs.GetComponent[component.Health](e); err == nil && !hp.Alive() {
			continue
		}
		return true
	}
	return false
}
