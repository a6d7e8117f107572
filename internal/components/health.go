package components

import (
	"fmt"

	"crosshair/internal/engine"
)

func init() {
	engine.RegisterScript("Health", func(props map[string]any) (engine.Component, error) {
		maxHealth := engine.PropInt(props, "maxHealth", DefaultMaxHealth)
		if maxHealth <= 0 {
			return nil, fmt.Errorf("maxHealth must be positive, got %d", maxHealth)
		}
		return NewHealth(maxHealth), nil
	})
}

const DefaultMaxHealth = 100

// HealthChange is passed to OnHealthChanged listeners.
type HealthChange struct {
	Current int
	Max     int
}

// Health is the damage sink for targets. It implements engine.Damageable.
type Health struct {
	engine.BaseComponent
	MaxHealth int
	current   int
	dead      bool

	OnHealthChanged engine.EventWithArg[HealthChange]
	OnDeath         engine.Event
}

func NewHealth(maxHealth int) *Health {
	return &Health{
		MaxHealth: maxHealth,
		current:   maxHealth,
	}
}

func (h *Health) Start() {
	h.OnHealthChanged.Invoke(HealthChange{Current: h.current, Max: h.MaxHealth})
}

func (h *Health) Current() int {
	return h.current
}

func (h *Health) IsDead() bool {
	return h.dead
}

// TakeDamage ignores non-positive amounts and clamps health at zero.
// OnDeath fires once, on the hit that reaches zero.
func (h *Health) TakeDamage(amount int) {
	if amount <= 0 || h.dead {
		return
	}

	h.current = max(0, h.current-amount)
	h.OnHealthChanged.Invoke(HealthChange{Current: h.current, Max: h.MaxHealth})

	if h.current == 0 {
		h.dead = true
		h.OnDeath.Invoke()
	}
}

func (h *Health) Heal(amount int) {
	if amount <= 0 || h.dead {
		return
	}
	h.current = min(h.MaxHealth, h.current+amount)
	h.OnHealthChanged.Invoke(HealthChange{Current: h.current, Max: h.MaxHealth})
}
