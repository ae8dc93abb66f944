package system

import (
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/config"
	"github.com/battlecity/engine/internal/core/ecs"
	coresys "github.com/battlecity/engine/internal/core/system"
	"github.com/battlecity/engine/internal/factory"
	"github.com/battlecity/engine/internal/scripting"
)

// TankBrain decides an enemy tank's next move. scripting.Engine is the
// production implementation.
type TankBrain interface {
	RunTankAI(ctx scripting.TankAIContext) scripting.TankAICommand
}

// EnemyAISystem steers enemy tanks: Go collects what a tank can see, the
// brain decides, Go applies the heading and fires through the turret.
// Register it before MovementSystem so a new heading applies this tick.
type EnemyAISystem struct {
	coresys.Base
	brain   TankBrain
	factory *factory.Factory
	clock   *Clock
	cfg     config.GameConfig
	log     *zap.Logger
}

func NewEnemyAISystem(world *ecs.World, brain TankBrain, f *factory.Factory, clock *Clock, cfg config.GameConfig, log *zap.Logger) *EnemyAISystem {
	return &EnemyAISystem{Base: coresys.NewBase(world), brain: brain, factory: f, clock: clock, cfg: cfg, log: log}
}

func (s *EnemyAISystem) Tick() {
	w := s.World()
	target, hasTarget := baseCenter(w)
	now := s.clock.Now()

	var shooters []ecs.Entity
	ecs.Each(w, func(e ecs.Entity, _ *component.Enemy) {
		if ecs.HasComponent[component.Expired](e) {
			return
		}
		mv, err := ecs.GetComponent[component.Movement](e)
		if err != nil {
			return
		}
		geo, err := ecs.GetComponent[component.Geometry](e)
		if err != nil {
			return
		}
		turret, _ := ecs.GetComponent[component.Turret](e)

		ctx := scripting.TankAIContext{
			TankID:    uint64(e.ID()),
			Tick:      s.clock.Ticks(),
			X:         geo.Rect.Min.X,
			Y:         geo.Rect.Min.Y,
			Direction: mv.Direction,
			Blocked:   ecs.HasComponent[component.Blocked](e),
			CanFire:   turret != nil && turretReady(turret, now),
			HasTarget: hasTarget,
			TargetX:   target.X,
			TargetY:   target.Y,
		}
		cmd := s.brain.RunTankAI(ctx)
		mv.Direction = cmd.Direction
		if cmd.Fire && turret != nil && turret.Fire(now) {
			shooters = append(shooters, e)
		}
	})

	// Projectiles are created after the walk; the Enemy bucket stays untouched either way.
	for _, e := range shooters {
		if _, err := s.shoot(e); err != nil {
			s.log.Warn("enemy fire failed", zap.Stringer("tank", e.ID()), zap.Error(err))
		}
	}
}

// shoot launches a projectile from the centre of tank e along its heading.
// A tank without a heading fires along its current rotation.
func (s *EnemyAISystem) shoot(e ecs.Entity) (ecs.Entity, error) {
	geo := ecs.MustComponent[component.Geometry](e)
	mv := ecs.MustComponent[component.Movement](e)
	dir := mv.Direction
	if dir == component.DirNone {
		dir = directionOfRotation(geo.Rotation)
	}
	return s.factory.Projectile(factory.ProjectileSpec{
		Rect:      projectileRect(geo.Rect, s.cfg.ProjectileSize),
		Damage:    s.cfg.ProjectileDamage,
		Speed:     s.cfg.ProjectileSpeed,
		Direction: dir,
		Owner:     e,
	})
}

// turretReady reports whether Fire would succeed now without recording a shot.
func turretReady(t *component.Turret, now time.Time) bool {
	probe := *t
	return probe.Fire(now)
}

func projectileRect(tank image.Rectangle, size int) image.Rectangle {
	c := image.Pt((tank.Min.X+tank.Max.X)/2, (tank.Min.Y+tank.Max.Y)/2)
	half := size / 2
	return image.Rect(c.X-half, c.Y-half, c.X-half+size, c.Y-half+size)
}

func directionOfRotation(deg int) component.Direction {
	for _, d := range []component.Direction{component.DirUp, component.DirRight, component.DirDown, component.DirLeft} {
		if d.Rotation() == deg {
			return d
		}
	}
	return component.DirUp
}

// baseCenter locates the player base the enemies head for.
func baseCenter(w *ecs.World) (image.Point, bool) {
	for _, e := range ecs.EntitiesWith[component.PlayerBase](w) {
		if geo, err := ecs.GetComponent[component.Geometry](e); err == nil {
			r := geo.Rect
			return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2), true
		}
	}
	return image.Point{}, false
}
