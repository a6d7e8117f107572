// crosshair-debug walks through a scene with the targeting overlay on.
//
// WASD moves, the mouse looks, left click fires, F1 toggles the overlay and
// Tab releases the cursor to edit the targeting panel.
package main

import (
	"flag"
	"log"

	"crosshair/internal/components"
	"crosshair/internal/debugview"
	"crosshair/internal/scene"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	moveSpeed        = 6.0
	mouseSensitivity = 0.1
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/range.json", "scene file")
	configPath := flag.String("config", "", "targeting config (overrides the scene's)")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("Debug: %v", err)
	}
	if *configPath != "" {
		cfg, err := targeting.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Debug: %v", err)
		}
		s.SetTargeting(cfg)
	}

	run(s, int32(*width), int32(*height))
}

func run(s *scene.Scene, width, height int32) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(width, height, "crosshair debug")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	s.Start()

	renderer := debugview.NewRenderer()
	panel := debugview.NewPanel(float32(width)-270, 10)
	showOverlay := true
	cursorFree := false
	var lastHits []components.Hit

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		panel.X = float32(screenW) - 270

		if rl.IsKeyPressed(rl.KeyF1) {
			showOverlay = !showOverlay
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			cursorFree = !cursorFree
			if cursorFree {
				rl.EnableCursor()
			} else {
				rl.DisableCursor()
			}
		}

		if !cursorFree {
			mouse := rl.GetMouseDelta()
			s.Camera.Look(mouse.X*mouseSensitivity, -mouse.Y*mouseSensitivity)
			moveCamera(s, dt)
		}

		s.Update(dt)
		view := s.SyncView(float32(screenW), float32(screenH))

		if !cursorFree && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if hits := s.Shooter.Fire(); hits != nil {
				lastHits = hits
			}
		}

		overlay := debugview.Inspect(s.Targeting, s.Physics, s.Player.WorldPosition(),
			s.Shooter.Config.MaxRange, view, view.ScreenCenter())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

		rl.BeginMode3D(view.Camera)
		rl.DrawGrid(40, 1)
		drawColliders(s)
		if showOverlay {
			renderer.Draw3D(overlay)
		}
		rl.EndMode3D()

		if showOverlay {
			renderer.Draw2D(overlay)
			if cfg, changed := panel.Draw(s.Targeting); changed {
				if err := cfg.Validate(); err != nil {
					log.Printf("Debug: rejected config: %v", err)
				} else {
					s.SetTargeting(cfg)
				}
			}
		}
		renderer.DrawHits(lastHits, screenW, screenH)
		rl.DrawFPS(10, screenH-30)
		rl.EndDrawing()
	}
}

func moveCamera(s *scene.Scene, dt float32) {
	forward := s.Camera.Forward()
	forward.Y = 0
	forward = rl.Vector3Normalize(forward)
	right := rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1})

	var move rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	if rl.Vector3Length(move) > 0 {
		move = rl.Vector3Scale(rl.Vector3Normalize(move), moveSpeed*dt)
		s.Camera.Position = rl.Vector3Add(s.Camera.Position, move)
	}
}

// drawColliders draws every active collider as a flat shaded box.
func drawColliders(s *scene.Scene) {
	for _, g := range s.Objects.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		for _, c := range g.Components() {
			switch col := c.(type) {
			case *components.BoxCollider:
				b := col.Bounds()
				rl.DrawCubeV(b.Center(), rl.Vector3Scale(b.Extents(), 2), rl.Fade(rl.Gray, 0.6))
			case *components.SphereCollider:
				rl.DrawSphere(col.GetCenter(), col.Radius, rl.Fade(rl.Maroon, 0.6))
			}
		}
	}
}
