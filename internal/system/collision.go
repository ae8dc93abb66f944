package system

import (
	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	coresys "github.com/battlecity/engine/internal/core/system"
)

// CollisionSystem resolves projectile hits. A projectile overlapping a
// damageable entity (anything with Health) damages it and expires; iron
// walls absorb projectiles without taking damage. A projectile never hits
// its owner, and enemy projectiles pass through other enemies.
//
// Emits EntityHit for every hit and EntityKilled when health reaches zero.
// Removal of dead entities is left to ReaperSystem.
type CollisionSystem struct {
	coresys.Base
	bus *event.Bus
	log *zap.Logger
}

func NewCollisionSystem(world *ecs.World, bus *event.Bus, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{Base: coresys.NewBase(world), bus: bus, log: log}
}

func (s *CollisionSystem) Tick() {
	w := s.World()
	ecs.Each2(w, func(p ecs.Entity, proj *component.Projectile, geo *component.Geometry) {
		if ecs.HasComponent[component.Expired](p) {
			return
		}
		target, ok := s.firstHit(p, proj, geo)
		if !ok {
			return
		}
		mark(p, component.Expired{})
		s.hit(proj, target)
	})
}

// firstHit returns the lowest-id entity the projectile overlaps.
func (s *CollisionSystem) firstHit(p ecs.Entity, proj *component.Projectile, geo *component.Geometry) (ecs.Entity, bool) {
	w := s.World()
	enemyShot := false
	if owner, err := w.GetEntity(proj.Owner); err == nil {
		enemyShot = ecs.HasComponent[component.Enemy](owner)
	}

	for _, t := range ecs.EntitiesWith[component.Geometry](w) {
		if t == p || t.ID() == proj.Owner {
			continue
		}
		if ecs.HasComponent[component.Projectile](t) || ecs.HasComponent[component.Expired](t) {
			continue
		}
		if enemyShot && ecs.HasComponent[component.Enemy](t) {
			continue
		}
		if !damageable(t) && !isIronWall(t) {
			continue
		}
		tg := ecs.MustComponent[component.Geometry](t)
		if geo.Intersects(tg) {
			return t, true
		}
	}
	return ecs.Entity{}, false
}

func (s *CollisionSystem) hit(proj *component.Projectile, target ecs.Entity) {
	if isIronWall(target) {
		return
	}
	hp := ecs.MustComponent[component.Health](target)
	hp.Decrease(proj.Damage)

	hitEv := event.EntityHit{Damage: proj.Damage}
	hitEv.AddTarget(target.ID())
	event.Emit(s.bus, hitEv)

	if hp.Alive() {
		return
	}
	if owner, err := s.World().GetEntity(proj.Owner); err == nil {
		if kc, err := ecs.GetComponent[component.KillsCounter](owner); err == nil {
			kc.Kills++
		}
	}
	killed := event.EntityKilled{Killer: proj.Owner}
	killed.AddTarget(target.ID())
	event.Emit(s.bus, killed)
	s.log.Debug("entity killed", zap.Stringer("entity", target.ID()), zap.Stringer("killer", proj.Owner))
}

func damageable(e ecs.Entity) bool {
	hp, err := ecs.GetComponent[component.Health](e)
	return err == nil && hp.Alive()
}

func isIronWall(e ecs.Entity) bool {
	tile, err := ecs.GetComponent[component.TileObject](e)
	return err == nil && tile.Type == component.TileIronWall
}
