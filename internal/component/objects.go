package component

import (
	"time"

	"github.com/battlecity/engine/internal/core/ecs"
)

type TileObject struct {
	Type TileType
}

// Projectile references its shooter by id only; the shooter may be gone by
// the time the projectile lands.
type Projectile struct {
	Damage uint32
	Owner  ecs.EntityID
}

// Graphics names the image a view should draw for an entity.
type Graphics struct {
	ImagePath string
	Visible   bool
}

type KillsCounter struct {
	Kills uint32
}

// Frag is a score label left where an enemy died.
type Frag struct {
	Num uint32
}

type PowerUp struct {
	Type PowerupType
}

// PowerupAnimations maps an active power-up on a tank to its animation entity.
type PowerupAnimations struct {
	Active map[PowerupType]ecs.EntityID
}

func NewPowerupAnimations() PowerupAnimations {
	return PowerupAnimations{Active: make(map[PowerupType]ecs.EntityID)}
}

type AnimationInfo struct {
	Type      AnimationType
	FrameNum  uint32
	FrameRate uint32
	Loops     uint32
	Duration  time.Duration
}

// Lives counts remaining respawns. Infinite lives never run out.
type Lives struct {
	Infinite bool
	Count    uint32
}

func InfiniteLives() Lives { return Lives{Infinite: true} }

func FiniteLives(n uint32) Lives { return Lives{Count: n} }

// Decrease spends one life and reports whether any remain.
func (l *Lives) Decrease() bool {
	if l.Infinite {
		return true
	}
	if l.Count > 0 {
		l.Count--
	}
	return l.Count > 0
}

func (l *Lives) Left() bool { return l.Infinite || l.Count > 0 }
