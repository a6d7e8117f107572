package targeting_test

import (
	"crosshair/internal/camera"
	"crosshair/internal/components"
	"crosshair/internal/engine"
	"crosshair/internal/physics"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fixture is a camera at the origin looking down -Z over an 800x600 viewport.
type fixture struct {
	world *physics.World
	view  *camera.View
}

func newFixture() *fixture {
	cam := camera.New(rl.Vector3{})
	return &fixture{
		world: physics.NewWorld(),
		view:  camera.NewView(cam.GetRaylibCamera(), 800, 600),
	}
}

func (f *fixture) addTarget(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Layer = physics.LayerEnemy
	g.Transform.Position = pos
	box := components.NewBoxCollider(size)
	g.AddComponent(box)
	g.AddComponent(components.NewHealth(100))
	f.world.AddCollider(box)
	return g
}

func (f *fixture) addWall(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Layer = physics.LayerEnvironment
	g.Transform.Position = pos
	box := components.NewBoxCollider(size)
	g.AddComponent(box)
	f.world.AddCollider(box)
	return g
}

func (f *fixture) resolve(cfg targeting.Config) ([]targeting.TargetInfo, bool) {
	r := targeting.NewResolver(cfg, f.world)
	return r.ResolveTargets(rl.Vector3{}, 100, cfg.AimCircle(f.view.ScreenCenter()), f.view)
}

func withoutFallback() targeting.Config {
	cfg := targeting.DefaultConfig()
	cfg.UseScreenRaycastFallback = false
	return cfg
}

func unit() rl.Vector3 {
	return rl.Vector3{X: 1, Y: 1, Z: 1}
}
