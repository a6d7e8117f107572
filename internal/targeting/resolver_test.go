package targeting_test

import (
	"math"
	"testing"

	"crosshair/internal/components"
	"crosshair/internal/engine"
	"crosshair/internal/physics"
	"crosshair/internal/targeting"
	"crosshair/internal/targeting/mocks"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/mock/gomock"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestResolveSingleTargetOnAxis(t *testing.T) {
	f := newFixture()
	enemy := f.addTarget("Enemy", rl.Vector3{Z: -10}, unit())

	targets, hasTarget := f.resolve(targeting.DefaultConfig())

	if !hasTarget {
		t.Fatal("Expected hasTarget to be true")
	}
	if len(targets) != 1 {
		t.Fatalf("Expected 1 target, got %d", len(targets))
	}
	if targets[0].GameObject != enemy {
		t.Errorf("Expected target %s, got %s", enemy.Name, targets[0].GameObject.Name)
	}
	if !approx(targets[0].Distance, 10) {
		t.Errorf("Expected distance 10, got %f", targets[0].Distance)
	}
	if targets[0].Target != engine.GetComponent[*components.Health](enemy) {
		t.Error("Expected the target's Health to be surfaced as damageable")
	}
}

func TestResolveUnoccludedCenterWithoutFallback(t *testing.T) {
	f := newFixture()
	f.addTarget("Enemy", rl.Vector3{Z: -10}, unit())

	targets, _ := f.resolve(withoutFallback())

	if len(targets) != 1 {
		t.Fatalf("Expected 1 target with fallback disabled, got %d", len(targets))
	}
}

func TestResolveWallBlocksTarget(t *testing.T) {
	f := newFixture()
	f.addTarget("Enemy", rl.Vector3{Z: -10}, unit())
	f.addWall("Wall", rl.Vector3{Z: -5}, rl.Vector3{X: 20, Y: 20, Z: 1})

	targets, hasTarget := f.resolve(withoutFallback())
	if hasTarget || len(targets) != 0 {
		t.Errorf("Expected no targets behind wall without fallback, got %d", len(targets))
	}

	targets, hasTarget = f.resolve(targeting.DefaultConfig())
	if hasTarget || len(targets) != 0 {
		t.Errorf("Expected no targets behind wall with fallback, got %d", len(targets))
	}
}

func TestResolveDeduplicatesColliders(t *testing.T) {
	f := newFixture()
	enemy := f.addTarget("Enemy", rl.Vector3{Z: -10}, unit())
	second := components.NewBoxCollider(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	second.Offset = rl.Vector3{X: 0.3}
	enemy.AddComponent(second)
	f.world.AddCollider(second)

	targets, _ := f.resolve(targeting.DefaultConfig())

	if len(targets) != 1 {
		t.Fatalf("Expected 1 target for an entity with two colliders, got %d", len(targets))
	}
	if targets[0].GameObject != enemy {
		t.Error("Wrong GameObject resolved")
	}
}

func TestResolveBehindCamera(t *testing.T) {
	f := newFixture()
	f.addTarget("Behind", rl.Vector3{Z: 10}, unit())

	targets, hasTarget := f.resolve(targeting.DefaultConfig())
	if hasTarget || len(targets) != 0 {
		t.Errorf("Expected target behind camera to be invisible, got %d", len(targets))
	}
}

func TestResolveSkipsNonDamageable(t *testing.T) {
	f := newFixture()
	g := engine.NewGameObject("Crate")
	g.Layer = physics.LayerEnemy
	g.Transform.Position = rl.Vector3{Z: -10}
	box := components.NewBoxCollider(unit())
	g.AddComponent(box)
	f.world.AddCollider(box)

	targets, hasTarget := f.resolve(targeting.DefaultConfig())
	if hasTarget || len(targets) != 0 {
		t.Errorf("Expected non-damageable body to be skipped, got %d", len(targets))
	}
}

func TestResolveOutOfRange(t *testing.T) {
	f := newFixture()
	f.addTarget("Far", rl.Vector3{Z: -150}, unit())

	targets, _ := f.resolve(targeting.DefaultConfig())
	if len(targets) != 0 {
		t.Errorf("Expected target beyond max range to be ignored, got %d", len(targets))
	}
}

func TestResolveIgnoresTargetsOutsideCircle(t *testing.T) {
	f := newFixture()
	f.addTarget("Aside", rl.Vector3{X: 8, Z: -10}, unit())

	targets, _ := f.resolve(targeting.DefaultConfig())
	if len(targets) != 0 {
		t.Errorf("Expected target far from crosshair to be ignored, got %d", len(targets))
	}
}

func TestResolveOrderAndDeterminism(t *testing.T) {
	f := newFixture()
	near := f.addTarget("Near", rl.Vector3{X: 0.2, Z: -8}, unit())
	far := f.addTarget("Far", rl.Vector3{X: -0.2, Z: -30}, unit())

	first, _ := f.resolve(targeting.DefaultConfig())
	second, _ := f.resolve(targeting.DefaultConfig())

	if len(first) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(first))
	}
	if first[0].GameObject != near || first[1].GameObject != far {
		t.Error("Expected targets in broad-phase order")
	}
	if len(second) != len(first) {
		t.Fatalf("Expected identical results, got %d and %d targets", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Result %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestResolveNilViewShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	query := mocks.NewMockSpatialQuery(ctrl)

	r := targeting.NewResolver(targeting.DefaultConfig(), query)
	targets, hasTarget := r.ResolveTargets(rl.Vector3{}, 100, targeting.AimCircle{Radius: 50}, nil)

	if hasTarget || targets != nil {
		t.Error("Expected empty result without a camera")
	}
}

func TestResolveInvalidCircle(t *testing.T) {
	ctrl := gomock.NewController(t)
	query := mocks.NewMockSpatialQuery(ctrl)
	view := mocks.NewMockProjector(ctrl)

	r := targeting.NewResolver(targeting.DefaultConfig(), query)
	if _, hasTarget := r.ResolveTargets(rl.Vector3{}, 100, targeting.AimCircle{Radius: 0}, view); hasTarget {
		t.Error("Expected no targets for a zero radius circle")
	}
}

func TestResolveEmptyBroadPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	query := mocks.NewMockSpatialQuery(ctrl)
	view := mocks.NewMockProjector(ctrl)

	cfg := targeting.DefaultConfig()
	shooter := rl.Vector3{X: 1, Y: 2, Z: 3}
	query.EXPECT().OverlapSphere(shooter, float32(40), cfg.TargetLayers).Return(nil)

	r := targeting.NewResolver(cfg, query)
	targets, hasTarget := r.ResolveTargets(shooter, 40, cfg.AimCircle(rl.Vector2{X: 400, Y: 300}), view)

	if hasTarget || len(targets) != 0 {
		t.Errorf("Expected no targets from an empty broad-phase, got %d", len(targets))
	}
}

func TestResolveDistanceFromShooter(t *testing.T) {
	ctrl := gomock.NewController(t)
	query := mocks.NewMockSpatialQuery(ctrl)
	view := mocks.NewMockProjector(ctrl)

	enemy := engine.NewGameObject("Enemy")
	enemy.Layer = physics.LayerEnemy
	enemy.Transform.Position = rl.Vector3{Z: -10}
	box := components.NewBoxCollider(unit())
	enemy.AddComponent(box)
	enemy.AddComponent(components.NewHealth(100))

	cfg := targeting.DefaultConfig()
	shooter := rl.Vector3{Y: -2}
	query.EXPECT().OverlapSphere(shooter, float32(100), cfg.TargetLayers).Return([]physics.Collider{box})
	view.EXPECT().Position().Return(rl.Vector3{})
	view.EXPECT().WorldToScreen(rl.Vector3{Z: -10}).Return(rl.Vector2{X: 400, Y: 300}, float32(10))
	query.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any(), cfg.ObstacleLayers).Return(physics.RaycastHit{}, false)

	r := targeting.NewResolver(cfg, query)
	targets, _ := r.ResolveTargets(shooter, 100, cfg.AimCircle(rl.Vector2{X: 400, Y: 300}), view)

	if len(targets) != 1 {
		t.Fatalf("Expected 1 target, got %d", len(targets))
	}
	want := float32(math.Sqrt(104))
	if !approx(targets[0].Distance, want) {
		t.Errorf("Expected distance from shooter %f, got %f", want, targets[0].Distance)
	}
}
