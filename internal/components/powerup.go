package components

import (
	"fmt"
	"log"

	"crosshair/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerTag marks the object power-ups look for.
const PlayerTag = "Player"

func init() {
	engine.RegisterScript("DamagePowerUp", func(props map[string]any) (engine.Component, error) {
		p := NewDamagePowerUp(
			engine.PropFloat(props, "multiplier", 2),
			engine.PropFloat(props, "duration", 10),
		)
		p.Radius = engine.PropFloat(props, "radius", p.Radius)
		if p.Multiplier <= 0 || p.Duration <= 0 || p.Radius <= 0 {
			return nil, fmt.Errorf("multiplier, duration and radius must be positive")
		}
		return p, nil
	})
}

// DamagePowerUp boosts the damage of the first tagged player that comes
// within Radius, then deactivates itself.
type DamagePowerUp struct {
	engine.BaseComponent
	Multiplier float32
	Duration   float32
	Radius     float32

	OnPickedUp engine.EventWithArg[*engine.GameObject]
}

func NewDamagePowerUp(multiplier, duration float32) *DamagePowerUp {
	return &DamagePowerUp{
		Multiplier: multiplier,
		Duration:   duration,
		Radius:     1,
	}
}

func (p *DamagePowerUp) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}

	pos := g.WorldPosition()
	for _, player := range g.Scene.FindByTag(PlayerTag) {
		if !player.ActiveInHierarchy() || rl.Vector3Distance(pos, player.WorldPosition()) > p.Radius {
			continue
		}
		shooter := engine.GetComponent[*Shooter](player)
		if shooter == nil {
			continue
		}

		shooter.ApplyDamageBoost(p.Multiplier, p.Duration)
		g.Active = false
		log.Printf("PowerUp: %s picked up %s", player.Name, g.Name)
		p.OnPickedUp.Invoke(player)
		return
	}
}
