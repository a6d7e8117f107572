package components

import (
	"testing"

	"crosshair/internal/engine"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newPickupScene(playerPos rl.Vector3) (*engine.Scene, *Shooter, *DamagePowerUp) {
	scene := engine.NewScene("Test")

	player := engine.NewGameObject("Player")
	player.Tags = []string{PlayerTag}
	player.Transform.Position = playerPos
	shooter := NewShooter(DefaultShooterConfig(), targeting.NewResolver(targeting.DefaultConfig(), nil))
	player.AddComponent(shooter)
	scene.AddGameObject(player)

	pickup := engine.NewGameObject("Boost")
	pickup.Transform.Position = rl.Vector3{Z: -5}
	p := NewDamagePowerUp(3, 4)
	p.Radius = 1.5
	pickup.AddComponent(p)
	scene.AddGameObject(pickup)

	return scene, shooter, p
}

func TestDamagePowerUpOutOfReach(t *testing.T) {
	scene, shooter, p := newPickupScene(rl.Vector3{})

	scene.Update(0.1)

	if shooter.DamageMultiplier() != 1 {
		t.Errorf("Expected no boost out of reach, got %f", shooter.DamageMultiplier())
	}
	if !p.GetGameObject().Active {
		t.Error("Expected power-up to stay active")
	}
}

func TestDamagePowerUpPickup(t *testing.T) {
	scene, shooter, p := newPickupScene(rl.Vector3{Z: -4})
	var picked *engine.GameObject
	p.OnPickedUp.AddListener(func(g *engine.GameObject) { picked = g })

	scene.Update(0.1)

	if shooter.DamageMultiplier() != 3 {
		t.Errorf("Expected multiplier 3, got %f", shooter.DamageMultiplier())
	}
	if p.GetGameObject().Active {
		t.Error("Expected power-up to deactivate after pickup")
	}
	if picked != shooter.GetGameObject() {
		t.Error("Expected OnPickedUp with the player")
	}

	// Consumed: a second boost must not be applied
	shooter.Update(4)
	scene.Update(0.1)
	if shooter.DamageMultiplier() != 1 {
		t.Errorf("Expected boost to expire and not reapply, got %f", shooter.DamageMultiplier())
	}
}

func TestDamagePowerUpIgnoresUntaggedObjects(t *testing.T) {
	scene, shooter, _ := newPickupScene(rl.Vector3{Z: -5})
	shooter.GetGameObject().Tags = nil

	scene.Update(0.1)

	if shooter.DamageMultiplier() != 1 {
		t.Errorf("Expected no boost without the player tag, got %f", shooter.DamageMultiplier())
	}
}

func TestDamagePowerUpScript(t *testing.T) {
	c, err := engine.CreateScript("DamagePowerUp", map[string]any{"multiplier": 1.5, "radius": 2.0})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	p := c.(*DamagePowerUp)
	if p.Multiplier != 1.5 || p.Duration != 10 || p.Radius != 2 {
		t.Errorf("Expected 1.5x for 10s within 2, got %+v", p)
	}

	if _, err := engine.CreateScript("DamagePowerUp", map[string]any{"duration": 0.0}); err == nil {
		t.Error("Expected error for zero duration")
	}
}
