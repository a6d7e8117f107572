// Stress test comparing the spatial grid against a linear scan for the
// targeting broad-phase, and timing full target resolution.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"crosshair/internal/camera"
	"crosshair/internal/components"
	"crosshair/internal/engine"
	"crosshair/internal/physics"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	queryRange = 60
	iterations = 20
)

func main() {
	// Test various object counts
	testCounts := []int{100, 500, 1000, 2000, 5000, 10000}

	for _, count := range testCounts {
		testBroadPhase(count)
	}
}

func testBroadPhase(count int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	world := physics.NewWorld()

	// Spawn in front of the camera, size scales with count to keep density reasonable
	spawnSize := float32(80.0) + float32(count)/50.0
	colliders := make([]physics.Collider, 0, count)

	for i := 0; i < count; i++ {
		g := engine.NewGameObject(fmt.Sprintf("Body_%d", i))
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32() * 10,
			Z: -rng.Float32() * spawnSize,
		}
		var c physics.Collider
		if i%4 == 0 {
			g.Layer = physics.LayerEnvironment
			c = components.NewBoxCollider(rl.Vector3{X: 2, Y: 3, Z: 0.5})
		} else {
			g.Layer = physics.LayerEnemy
			c = components.NewSphereCollider(0.5 + rng.Float32()*0.5)
			g.AddComponent(components.NewHealth(100))
		}
		g.AddComponent(c.(engine.Component))
		world.AddCollider(c)
		colliders = append(colliders, c)
	}

	origin := rl.Vector3{Y: 5}
	mask := physics.MaskOf(physics.LayerEnemy)

	// Spatial grid
	gridStart := time.Now()
	var gridFound []physics.Collider
	for i := 0; i < iterations; i++ {
		gridFound = world.OverlapSphere(origin, queryRange, mask)
	}
	gridTime := time.Since(gridStart) / iterations

	// Linear scan
	scanStart := time.Now()
	var scanCount int
	for iter := 0; iter < iterations; iter++ {
		scanCount = 0
		for _, c := range colliders {
			if mask.Contains(c.GetGameObject().Layer) && c.OverlapsSphere(origin, queryRange) {
				scanCount++
			}
		}
	}
	scanTime := time.Since(scanStart) / iterations

	// Full resolution through the crosshair
	cam := camera.New(origin)
	view := camera.NewView(cam.GetRaylibCamera(), 1280, 720)
	cfg := targeting.DefaultConfig()
	resolver := targeting.NewResolver(cfg, world)
	circle := cfg.AimCircle(view.ScreenCenter())

	resolveStart := time.Now()
	var targets []targeting.TargetInfo
	for i := 0; i < iterations; i++ {
		targets, _ = resolver.ResolveTargets(origin, queryRange, circle, view)
	}
	resolveTime := time.Since(resolveStart) / iterations

	fmt.Printf("%5d objects (grid %-5v): grid %8v (%4d found) | scan %8v (%4d found) | resolve %8v (%d targets)\n",
		count, world.UsingGrid(),
		gridTime.Round(time.Microsecond), len(gridFound),
		scanTime.Round(time.Microsecond), scanCount,
		resolveTime.Round(time.Microsecond), len(targets))
}
