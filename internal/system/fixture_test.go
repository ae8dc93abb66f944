package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/config"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	"github.com/battlecity/engine/internal/factory"
)

type fixture struct {
	t       *testing.T
	world   *ecs.World
	bus     *event.Bus
	factory *factory.Factory
	clock   *Clock
	cfg     config.GameConfig
}

func newFixture(t *testing.T) *fixture {
	cfg := config.Defaults().Game
	w := ecs.NewWorld()
	return &fixture{
		t:       t,
		world:   w,
		bus:     event.NewBus(),
		factory: factory.New(w, factory.Images{Template: factory.DefaultImageTemplate}),
		clock:   NewClock(cfg.TickRate),
		cfg:     cfg,
	}
}

func (f *fixture) arena(w, h int) ecs.Entity {
	e, err := f.factory.Map(image.Rect(0, 0, w, h))
	require.NoError(f.t, err)
	return e
}

func (f *fixture) tank(align component.Alignment, rect image.Rectangle) ecs.Entity {
	e, err := f.factory.Tank(factory.TankSpec{
		Rect:           rect,
		Alignment:      align,
		Speed:          f.cfg.TankSpeed,
		Health:         100,
		Lives:          f.cfg.PlayerLives,
		TurretCooldown: f.cfg.TurretCooldown,
		RespawnDelay:   f.cfg.RespawnDelay,
	})
	require.NoError(f.t, err)
	return e
}

func (f *fixture) base(rect image.Rectangle) ecs.Entity {
	e, err := f.factory.PlayerBase(rect, f.cfg.BaseHealth)
	require.NoError(f.t, err)
	return e
}

func (f *fixture) projectile(owner ecs.Entity, rect image.Rectangle, damage uint32, dir component.Direction) ecs.Entity {
	e, err := f.factory.Projectile(factory.ProjectileSpec{
		Rect:      rect,
		Damage:    damage,
		Speed:     f.cfg.ProjectileSpeed,
		Direction: dir,
		Owner:     owner,
	})
	require.NoError(f.t, err)
	return e
}

// collect records every event of type E emitted on bus.
func collect[E any](bus *event.Bus) *[]E {
	var got []E
	event.Subscribe(bus, func(ev E) { got = append(got, ev) })
	return &got
}

func cell(col, row int) image.Rectangle {
	return image.Rect(col*16, row*16, (col+1)*16, (row+1)*16)
}
