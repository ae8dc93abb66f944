package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/scripting"
)

// scriptedBrain always answers with cmd and remembers what it was shown.
type scriptedBrain struct {
	cmd  scripting.TankAICommand
	seen []scripting.TankAIContext
}

func (b *scriptedBrain) RunTankAI(ctx scripting.TankAIContext) scripting.TankAICommand {
	b.seen = append(b.seen, ctx)
	return b.cmd
}

func newEnemyAI(f *fixture, brain TankBrain) *EnemyAISystem {
	return NewEnemyAISystem(f.world, brain, f.factory, f.clock, f.cfg, zaptest.NewLogger(f.t))
}

func TestEnemyAISteersAndFires(t *testing.T) {
	f := newFixture(t)
	f.arena(64, 64)
	f.base(cell(2, 3))
	player := f.tank(component.AlignPlayer, cell(0, 3))
	enemy := f.tank(component.AlignEnemy, cell(2, 0))
	brain := &scriptedBrain{cmd: scripting.TankAICommand{Direction: component.DirDown, Fire: true}}
	sys := newEnemyAI(f, brain)

	sys.Tick()

	require.Len(t, brain.seen, 1, "only enemies are asked")
	ctx := brain.seen[0]
	assert.Equal(t, uint64(enemy.ID()), ctx.TankID)
	assert.Equal(t, 32, ctx.X)
	assert.Equal(t, 0, ctx.Y)
	assert.True(t, ctx.CanFire)
	assert.True(t, ctx.HasTarget)
	assert.Equal(t, 40, ctx.TargetX)
	assert.Equal(t, 56, ctx.TargetY)

	assert.Equal(t, component.DirDown, ecs.MustComponent[component.Movement](enemy).Direction)
	shots := ecs.EntitiesWith[component.Projectile](f.world)
	require.Len(t, shots, 1)
	proj := ecs.MustComponent[component.Projectile](shots[0])
	assert.Equal(t, enemy.ID(), proj.Owner)
	assert.Equal(t, f.cfg.ProjectileDamage, proj.Damage)
	assert.Equal(t, image.Rect(38, 6, 42, 10), rectOf(shots[0]))
	assert.Equal(t, component.DirDown, ecs.MustComponent[component.Movement](shots[0]).Direction)
	assert.NotEqual(t, player.ID(), proj.Owner)
}

func TestEnemyAIRespectsTurretCooldown(t *testing.T) {
	f := newFixture(t)
	f.arena(64, 64)
	f.tank(component.AlignEnemy, cell(0, 0))
	brain := &scriptedBrain{cmd: scripting.TankAICommand{Direction: component.DirNone, Fire: true}}
	sys := newEnemyAI(f, brain)

	sys.Tick()
	f.clock.Advance()
	sys.Tick()
	assert.Equal(t, 1, ecs.BucketLen[component.Projectile](f.world))
	assert.False(t, brain.seen[1].CanFire)

	steps := int(f.cfg.TurretCooldown / f.cfg.TickRate)
	for i := 0; i < steps; i++ {
		f.clock.Advance()
	}
	sys.Tick()
	assert.Equal(t, 2, ecs.BucketLen[component.Projectile](f.world))

	// A tank without a heading fires along its rotation, which starts facing up.
	for _, p := range ecs.EntitiesWith[component.Projectile](f.world) {
		assert.Equal(t, component.DirUp, ecs.MustComponent[component.Movement](p).Direction)
	}
}

func TestEnemyAIWithLuaEngine(t *testing.T) {
	f := newFixture(t)
	f.arena(64, 64)
	enemy := f.tank(component.AlignEnemy, cell(0, 0))
	_, _ = ecs.AddComponent(enemy, component.Blocked{})

	engine, err := scripting.NewEngine("../../scripts", zaptest.NewLogger(t))
	require.NoError(t, err)
	defer engine.Close()

	newEnemyAI(f, engine).Tick()

	dir := ecs.MustComponent[component.Movement](enemy).Direction
	assert.NotEqual(t, component.DirNone, dir)
	assert.Equal(t, 1, ecs.BucketLen[component.Projectile](f.world))
}

func TestDirectionOfRotation(t *testing.T) {
	for _, d := range []component.Direction{component.DirUp, component.DirRight, component.DirDown, component.DirLeft} {
		assert.Equal(t, d, directionOfRotation(d.Rotation()))
	}
	assert.Equal(t, component.DirUp, directionOfRotation(-1))
}
