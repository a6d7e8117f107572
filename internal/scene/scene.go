// Package scene loads shooting-range scenes from JSON and keeps the object
// graph, the physics world and the player's weapon in step.
package scene

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"crosshair/internal/camera"
	"crosshair/internal/components"
	"crosshair/internal/engine"
	"crosshair/internal/physics"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Scene struct {
	Objects   *engine.Scene
	Physics   *physics.World
	Targeting targeting.Config
	Resolver  *targeting.Resolver

	Camera  *camera.FPSCamera
	Player  *engine.GameObject
	Shooter *components.Shooter

	destroyed []*engine.GameObject // leave Objects at the end of the next Update
}

func newScene(name string, cfg targeting.Config) *Scene {
	world := physics.NewWorld()
	return &Scene{
		Objects:   engine.NewScene(name),
		Physics:   world,
		Targeting: cfg,
		Resolver:  targeting.NewResolver(cfg, world),
	}
}

func (s *Scene) spawnPlayer(def *PlayerDef) error {
	s.Camera = camera.New(rl.Vector3{Y: 1.7})
	shooterCfg := components.DefaultShooterConfig()

	if def != nil {
		s.Camera.Position = vec3(def.Position)
		if def.Yaw != nil {
			s.Camera.Yaw = *def.Yaw
		}
		s.Camera.Look(0, def.Pitch)
		if def.Fovy > 0 {
			s.Camera.Fovy = def.Fovy
		}
		if len(def.Shooter) > 0 {
			if err := json.Unmarshal(def.Shooter, &shooterCfg); err != nil {
				return fmt.Errorf("parse shooter: %w", err)
			}
		}
	}

	s.Player = engine.NewGameObject("Player")
	s.Player.Layer = physics.LayerPlayer
	s.Player.Tags = []string{components.PlayerTag}
	s.Player.Transform.Position = s.Camera.Position
	s.Shooter = components.NewShooter(shooterCfg, s.Resolver)
	s.Player.AddComponent(s.Shooter)
	s.Objects.AddGameObject(s.Player)
	return nil
}

// SetTargeting swaps the targeting configuration used by the shooter.
func (s *Scene) SetTargeting(cfg targeting.Config) {
	s.Targeting = cfg
	s.Resolver = targeting.NewResolver(cfg, s.Physics)
	s.Shooter.Resolver = s.Resolver
}

// SyncView moves the player to the camera and rebuilds the shooter's view
// for a viewport of the given size.
func (s *Scene) SyncView(width, height float32) *camera.View {
	s.Player.Transform.Position = s.Camera.Position
	view := camera.NewView(s.Camera.GetRaylibCamera(), width, height)
	s.Shooter.View = view
	return view
}

func (s *Scene) Start() {
	s.Objects.Start()
	log.Printf("Scene: %s started (%d objects, %d colliders)", s.Objects.Name, len(s.Objects.GameObjects), s.Physics.Count())
}

// Update ticks every script and marks the physics world dirty, since any
// script may have moved a collider.
func (s *Scene) Update(deltaTime float32) {
	s.Objects.Update(deltaTime)
	for _, g := range s.destroyed {
		s.Objects.RemoveGameObject(g)
	}
	s.destroyed = s.destroyed[:0]
	s.Physics.MarkDirty()
}

// destroy takes g and its children out of play. Colliders leave the physics
// world at once so the next query cannot see them; the objects themselves
// leave the scene on the next Update, which may be iterating right now.
func (s *Scene) destroy(g *engine.GameObject) {
	if g.Scene == nil || slices.Contains(s.destroyed, g) {
		return
	}
	g.Active = false
	s.removeColliders(g)
	s.destroyed = append(s.destroyed, g)
	log.Printf("Scene: %s destroyed", g.Name)
}

func (s *Scene) removeColliders(g *engine.GameObject) {
	for _, c := range g.Components() {
		if col, ok := c.(physics.Collider); ok {
			s.Physics.RemoveCollider(col)
		}
	}
	for _, child := range g.Children {
		s.removeColliders(child)
	}
}

// Resolve runs targeting through view without firing.
func (s *Scene) Resolve(view *camera.View) ([]targeting.TargetInfo, bool) {
	if view == nil {
		return nil, false
	}
	circle := s.Targeting.AimCircle(view.ScreenCenter())
	return s.Resolver.ResolveTargets(s.Player.WorldPosition(), s.Shooter.Config.MaxRange, circle, view)
}
