package debugview

import (
	"testing"

	"crosshair/internal/camera"
	"crosshair/internal/components"
	"crosshair/internal/engine"
	"crosshair/internal/physics"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func addBody(w *physics.World, name string, layer int, pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Layer = layer
	g.Transform.Position = pos
	box := components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	g.AddComponent(box)
	w.AddCollider(box)
	return g
}

func newView() *camera.View {
	cam := camera.New(rl.Vector3{})
	return camera.NewView(cam.GetRaylibCamera(), 800, 600)
}

func TestInspectClassifiesCandidates(t *testing.T) {
	w := physics.NewWorld()
	addBody(w, "Ahead", physics.LayerEnemy, rl.Vector3{Z: -10})
	addBody(w, "Aside", physics.LayerEnemy, rl.Vector3{X: 8, Z: -10})
	addBody(w, "Wall", physics.LayerEnvironment, rl.Vector3{X: -8, Z: -10})
	view := newView()

	o := Inspect(targeting.DefaultConfig(), w, rl.Vector3{}, 100, view, view.ScreenCenter())

	if len(o.Bodies) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(o.Bodies))
	}
	if !o.Bodies[0].Detection.Visible || o.Bodies[0].Detection.Pass != targeting.PassBounds {
		t.Error("Expected Ahead visible through the bounds pass")
	}
	if o.Bodies[1].Detection.Visible {
		t.Error("Expected Aside missed")
	}
	if o.Visible() != 1 {
		t.Errorf("Expected 1 visible, got %d", o.Visible())
	}
	if len(o.Samples) != 18 {
		t.Errorf("Expected 9 samples per body, got %d", len(o.Samples))
	}
	if !o.Samples[0].InCircle || o.Samples[9].InCircle {
		t.Error("Expected only the centered body's center sample in the circle")
	}
	if len(o.Rays) != 24 {
		t.Errorf("Expected 8x3 fallback rays, got %d", len(o.Rays))
	}
}

func TestInspectKeepsNonDamageableBodies(t *testing.T) {
	w := physics.NewWorld()
	addBody(w, "Prop", physics.LayerEnemy, rl.Vector3{Z: -10})
	view := newView()
	cfg := targeting.DefaultConfig()

	o := Inspect(cfg, w, rl.Vector3{}, 100, view, view.ScreenCenter())
	if o.Visible() != 1 {
		t.Errorf("Expected the prop to be shown as visible, got %d", o.Visible())
	}

	if _, ok := targeting.NewResolver(cfg, w).ResolveTargets(rl.Vector3{}, 100, o.Circle, view); ok {
		t.Error("Resolver should still skip bodies without a damage sink")
	}
}

func TestInspectWithoutFallbackHasNoRays(t *testing.T) {
	cfg := targeting.DefaultConfig()
	cfg.UseScreenRaycastFallback = false
	view := newView()

	o := Inspect(cfg, physics.NewWorld(), rl.Vector3{}, 100, view, view.ScreenCenter())
	if len(o.Rays) != 0 {
		t.Errorf("Expected no rays, got %d", len(o.Rays))
	}
	if o.Circle.Radius != cfg.CircleRadius || o.Circle.Center != view.ScreenCenter() {
		t.Errorf("Expected circle at screen center, got %+v", o.Circle)
	}
}

func TestInspectNilView(t *testing.T) {
	w := physics.NewWorld()
	addBody(w, "Ahead", physics.LayerEnemy, rl.Vector3{Z: -10})

	o := Inspect(targeting.DefaultConfig(), w, rl.Vector3{}, 100, nil, rl.Vector2{})
	if len(o.Bodies) != 0 || len(o.Rays) != 0 {
		t.Error("Expected empty overlay without a view")
	}
}

func TestConfigEqual(t *testing.T) {
	a := targeting.DefaultConfig()
	b := targeting.DefaultConfig()
	if !configEqual(a, b) {
		t.Error("Expected default configs to be equal")
	}
	b.ScreenRaycastRadii[2] = 0.9
	if configEqual(a, b) {
		t.Error("Expected radii change to be detected")
	}
}
