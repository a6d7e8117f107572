package components

import (
	"math"
	"testing"

	"crosshair/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLoopingMoverMovesAlongX(t *testing.T) {
	g := engine.NewGameObject("Target")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: -10}
	m := NewLoopingMover(2, 4)
	m.Smooth = false
	g.AddComponent(m)
	g.Start()

	g.Update(1)
	if math.Abs(float64(g.Transform.Position.X-3)) > 1e-3 {
		t.Errorf("Expected X=3 halfway through the first leg, got %f", g.Transform.Position.X)
	}

	g.Update(0.5)
	if math.Abs(float64(g.Transform.Position.X-4)) > 1e-3 {
		t.Errorf("Expected X=4, got %f", g.Transform.Position.X)
	}
	if g.Transform.Position.Y != 2 || g.Transform.Position.Z != -10 {
		t.Errorf("Expected Y and Z untouched, got %v", g.Transform.Position)
	}
}

func TestLoopingMoverWithoutStart(t *testing.T) {
	g := engine.NewGameObject("Target")
	m := NewLoopingMover(2, 4)
	g.AddComponent(m)

	m.Update(1)
	if g.Transform.Position.X != 0 {
		t.Errorf("Expected no movement before Start, got %f", g.Transform.Position.X)
	}
}

func TestLoopingMoverScript(t *testing.T) {
	c, err := engine.CreateScript("LoopingMover", map[string]any{"speed": 3.0, "smooth": false})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m := c.(*LoopingMover)
	if m.Speed != 3 || m.Distance != 5 || m.Smooth {
		t.Errorf("Expected speed 3, distance 5, linear; got %+v", m)
	}

	if _, err := engine.CreateScript("LoopingMover", map[string]any{"distance": -1.0}); err == nil {
		t.Error("Expected error for negative distance")
	}
}
