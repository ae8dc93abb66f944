package system

import (
	"time"

	"github.com/battlecity/engine/internal/core/ecs"
	coresys "github.com/battlecity/engine/internal/core/system"
)

// Clock is simulated game time: one tick advances it by the tick rate, so
// cooldowns behave the same however fast the runner actually goes.
type Clock struct {
	rate  time.Duration
	epoch time.Time
	ticks uint64
}

func NewClock(rate time.Duration) *Clock {
	return &Clock{rate: rate, epoch: time.Unix(0, 0)}
}

func (c *Clock) Now() time.Time { return c.epoch.Add(time.Duration(c.ticks) * c.rate) }
func (c *Clock) Ticks() uint64  { return c.ticks }
func (c *Clock) Advance()       { c.ticks++ }

// ClockSystem advances the Clock once per tick. Register it first.
type ClockSystem struct {
	coresys.Base
	clock *Clock
}

func NewClockSystem(world *ecs.World, clock *Clock) *ClockSystem {
	return &ClockSystem{Base: coresys.NewBase(world), clock: clock}
}

func (s *ClockSystem) Tick() { s.clock.Advance() }
