package component

// Health tracks hit points between zero and the maximum it was created with.
type Health struct {
	health    uint32
	maxHealth uint32
}

// NewHealth returns full health.
func NewHealth(maxHealth uint32) Health {
	return Health{health: maxHealth, maxHealth: maxHealth}
}

// Increase heals by value, capped at the maximum.
func (h *Health) Increase(value uint32) {
	if value >= h.maxHealth-h.health {
		h.health = h.maxHealth
		return
	}
	h.health += value
}

// Decrease damages by value, floored at zero.
func (h *Health) Decrease(value uint32) {
	if value >= h.health {
		h.health = 0
		return
	}
	h.health -= value
}

func (h *Health) Health() uint32    { return h.health }
func (h *Health) MaxHealth() uint32 { return h.maxHealth }
func (h *Health) Alive() bool       { return h.health > 0 }
