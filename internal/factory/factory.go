package factory

import (
	"fmt"
	"image"
	"time"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
)

// Factory assembles archetypes: fixed component recipes for each kind of
// game object. Every constructor is all-or-nothing; if any step fails the
// half-built entity is removed before the error is returned.
type Factory struct {
	world  *ecs.World
	images Images
}

func New(world *ecs.World, images Images) *Factory {
	return &Factory{world: world, images: images}
}

func (f *Factory) World() *ecs.World { return f.world }
func (f *Factory) Images() Images    { return f.images }

// step attaches one or more components to an entity under construction.
type step func(ecs.Entity) error

func add[T any](v T) step {
	return func(e ecs.Entity) error {
		_, err := ecs.AddComponent(e, v)
		return err
	}
}

// addResolved defers a fallible lookup to the moment the step runs, so a
// failure surfaces inside the transaction.
func addResolved[T any](resolve func() (T, error)) step {
	return func(e ecs.Entity) error {
		v, err := resolve()
		if err != nil {
			return err
		}
		_, err = ecs.AddComponent(e, v)
		return err
	}
}

func (f *Factory) assemble(kind string, steps []step) (ecs.Entity, error) {
	e := f.world.CreateEntity()
	for i, s := range steps {
		if err := s(e); err != nil {
			f.world.RemoveEntity(e)
			return ecs.Entity{}, fmt.Errorf("build %s (step %d): %w", kind, i+1, err)
		}
	}
	return e, nil
}

func (f *Factory) graphics(path func() (string, error), visible bool) step {
	return addResolved(func() (component.Graphics, error) {
		p, err := path()
		if err != nil {
			return component.Graphics{}, err
		}
		return component.Graphics{ImagePath: p, Visible: visible}, nil
	})
}

func (f *Factory) namedGraphics(name string) step {
	return add(component.Graphics{ImagePath: f.images.Path(name), Visible: true})
}

// Map creates the entity describing the playfield bounds.
func (f *Factory) Map(rect image.Rectangle) (ecs.Entity, error) {
	return f.assemble("map", []step{
		add(component.GameMap{}),
		add(component.NewGeometry(rect)),
	})
}

func (f *Factory) PlayerBase(rect image.Rectangle, health uint32) (ecs.Entity, error) {
	return f.assemble("player base", []step{
		add(component.PlayerBase{}),
		add(component.NewGeometry(rect)),
		add(component.NewHealth(health)),
		add(component.NonTraversible{}),
		f.namedGraphics(imagePlayerBase),
	})
}

// Tile creates a map tile. Walls get health and block movement.
func (f *Factory) Tile(t component.TileType, rect image.Rectangle, health uint32) (ecs.Entity, error) {
	return f.assemble("tile", []step{
		add(component.NewGeometry(rect)),
		add(component.TileObject{Type: t}),
		f.graphics(func() (string, error) { return f.images.Tile(t) }, true),
		func(e ecs.Entity) error {
			ok, err := TileTraversible(t)
			if err != nil || ok {
				return err
			}
			if _, err := ecs.AddComponent(e, component.NonTraversibleTile{}); err != nil {
				return err
			}
			_, err = ecs.AddComponent(e, component.NewHealth(health))
			return err
		},
	})
}

// TankSpec parameterises the tank archetype.
type TankSpec struct {
	Rect           image.Rectangle
	Alignment      component.Alignment
	Speed          uint32
	Health         uint32
	Lives          uint32
	TurretCooldown time.Duration
	RespawnDelay   time.Duration
}

func (f *Factory) Tank(spec TankSpec) (ecs.Entity, error) {
	return f.assemble("tank", f.tankRecipe(spec))
}

func (f *Factory) tankRecipe(spec TankSpec) []step {
	steps := []step{
		add(component.TankObject{}),
		add(component.NewGeometry(spec.Rect)),
		add(component.NewHealth(spec.Health)),
		add(component.NewMovement(spec.Speed, component.DirNone)),
		add(component.KillsCounter{}),
		add(component.NewPowerupAnimations()),
		f.graphics(func() (string, error) { return f.images.Tank(spec.Alignment) }, true),
		add(component.NewRespawnDelay(spec.RespawnDelay)),
		add(component.NewTurret(spec.TurretCooldown)),
	}
	if spec.Alignment == component.AlignPlayer {
		return append(steps,
			add(component.Player{}),
			add(component.NonTraversible{}),
			add(component.FiniteLives(spec.Lives)),
		)
	}
	return append(steps,
		add(component.Enemy{}),
		add(component.InfiniteLives()),
	)
}

// ProjectileSpec parameterises the projectile archetype. Owner must be present.
type ProjectileSpec struct {
	Rect      image.Rectangle
	Damage    uint32
	Speed     uint32
	Direction component.Direction
	Owner     ecs.Entity
}

func (f *Factory) Projectile(spec ProjectileSpec) (ecs.Entity, error) {
	return f.assemble("projectile", []step{
		func(ecs.Entity) error {
			if !spec.Owner.Present() {
				return fmt.Errorf("projectile owner %s: %w", spec.Owner, ecs.ErrEntityNotFound)
			}
			return nil
		},
		add(component.Projectile{Damage: spec.Damage, Owner: spec.Owner.ID()}),
		add(component.Geometry{Rect: spec.Rect, Rotation: spec.Direction.Rotation()}),
		add(component.Flying{}),
		add(component.NewMovement(spec.Speed, spec.Direction)),
		f.namedGraphics(imageProjectile),
	})
}

func (f *Factory) Frag(rect image.Rectangle, num uint32) (ecs.Entity, error) {
	return f.assemble("frag", []step{
		add(component.Frag{Num: num}),
		add(component.NewGeometry(rect)),
		f.namedGraphics(imageFrag),
	})
}

func (f *Factory) Animation(rect image.Rectangle, info component.AnimationInfo) (ecs.Entity, error) {
	return f.assemble("animation", []step{
		add(component.Animation{}),
		add(info),
		add(component.NewGeometry(rect)),
		f.graphics(func() (string, error) { return f.images.Animation(info.Type) }, true),
	})
}

// PowerUp creates a power-up with hidden graphics and a respawn delay.
func (f *Factory) PowerUp(rect image.Rectangle, t component.PowerupType, respawn time.Duration) (ecs.Entity, error) {
	return f.assemble("power-up", []step{
		add(component.NewGeometry(rect)),
		add(component.PowerUp{Type: t}),
		add(component.NewRespawnDelay(respawn)),
		f.graphics(func() (string, error) { return f.images.Powerup(t) }, false),
		add(component.InfiniteLives()),
	})
}

func (f *Factory) RespawnPoint(rect image.Rectangle) (ecs.Entity, error) {
	return f.assemble("respawn point", []step{
		add(component.RespawnPoint{}),
		add(component.NewGeometry(rect)),
	})
}
