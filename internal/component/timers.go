package component

import "time"

// Turret gates firing on a cooldown. Times are passed in so the game clock
// stays under the caller's control.
type Turret struct {
	Cooldown  time.Duration
	fired     bool
	lastFired time.Time
}

func NewTurret(cooldown time.Duration) Turret {
	return Turret{Cooldown: cooldown}
}

// Fire records a shot at now if the cooldown has elapsed since the previous
// one and reports whether the shot happened.
func (t *Turret) Fire(now time.Time) bool {
	if t.fired && now.Sub(t.lastFired) < t.Cooldown {
		return false
	}
	t.fired = true
	t.lastFired = now
	return true
}

func (t *Turret) HasFired() bool { return t.fired }

// RespawnDelay holds an entity back for Delay after Start.
type RespawnDelay struct {
	Delay time.Duration
	until time.Time
}

func NewRespawnDelay(d time.Duration) RespawnDelay {
	return RespawnDelay{Delay: d}
}

func (r *RespawnDelay) Start(now time.Time) { r.until = now.Add(r.Delay) }

func (r *RespawnDelay) Ready(now time.Time) bool { return !now.Before(r.until) }
