package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/battlecity/engine/internal/core/ecs"
)

func TestClockSystemAdvancesPerTick(t *testing.T) {
	w := ecs.NewWorld()
	clock := NewClock(50 * time.Millisecond)
	start := clock.Now()
	w.AddSystem(NewClockSystem(w, clock))

	for i := 0; i < 4; i++ {
		w.Tick()
	}
	assert.Equal(t, uint64(4), clock.Ticks())
	assert.Equal(t, 200*time.Millisecond, clock.Now().Sub(start))
}
