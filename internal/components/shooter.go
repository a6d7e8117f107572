package components

import (
	"log"
	"math"

	"crosshair/internal/engine"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShooterConfig is the weapon tuning block of a scene file.
type ShooterConfig struct {
	Damage       int     `json:"damage"`
	FireRate     float32 `json:"fireRate"` // shots per second, <= 0 means no cooldown
	MaxRange     float32 `json:"maxRange"`
	FalloffStart float32 `json:"falloffStart"`
	MinFalloff   float32 `json:"minFalloff"`
}

func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Damage:       25,
		FireRate:     4,
		MaxRange:     100,
		FalloffStart: 30,
		MinFalloff:   0.5,
	}
}

// AimView is the camera a Shooter aims through. camera.View implements it.
type AimView interface {
	targeting.Projector
	ScreenCenter() rl.Vector2
}

// Hit is one target damaged by a shot.
type Hit struct {
	targeting.TargetInfo
	Damage int
}

// Shooter is a hitscan weapon. Every damageable body inside the aim circle
// takes damage on Fire. Time only advances through Update, so cooldowns and
// boosts follow the scene clock.
type Shooter struct {
	engine.BaseComponent
	Config   ShooterConfig
	Resolver *targeting.Resolver
	View     AimView

	clock      float32
	nextShot   float32
	boost      float32
	boostUntil float32
	warnedView bool
}

func NewShooter(cfg ShooterConfig, resolver *targeting.Resolver) *Shooter {
	return &Shooter{
		Config:   cfg,
		Resolver: resolver,
		boost:    1,
	}
}

func (s *Shooter) Update(deltaTime float32) {
	s.clock += deltaTime
	if s.boost != 1 && s.clock >= s.boostUntil {
		s.boost = 1
		log.Printf("Shooter: damage boost expired")
	}
}

// ApplyDamageBoost multiplies damage for duration seconds. A new boost
// replaces the current one.
func (s *Shooter) ApplyDamageBoost(multiplier, duration float32) {
	if multiplier <= 0 || duration <= 0 {
		return
	}
	s.boost = multiplier
	s.boostUntil = s.clock + duration
	log.Printf("Shooter: damage boost x%.2f for %.1fs", multiplier, duration)
}

func (s *Shooter) DamageMultiplier() float32 {
	return s.boost
}

func (s *Shooter) CanFire() bool {
	return s.clock >= s.nextShot
}

// Falloff returns the damage factor at distance: 1 up to FalloffStart, then
// linear down to MinFalloff at MaxRange.
func (s *Shooter) Falloff(distance float32) float32 {
	c := s.Config
	if distance <= c.FalloffStart || c.MaxRange <= c.FalloffStart {
		return 1
	}
	if distance >= c.MaxRange {
		return c.MinFalloff
	}
	t := (distance - c.FalloffStart) / (c.MaxRange - c.FalloffStart)
	return 1 + (c.MinFalloff-1)*t
}

// DamageAt is the damage dealt to a target at distance with the current boost.
func (s *Shooter) DamageAt(distance float32) int {
	d := float64(s.Config.Damage) * float64(s.boost) * float64(s.Falloff(distance))
	return int(math.Round(d))
}

// origin is where range and falloff are measured from.
func (s *Shooter) origin() rl.Vector3 {
	if g := s.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return s.View.Position()
}

// Fire resolves the targets in the aim circle and damages each of them.
// It returns nothing while cooling down or without a camera. A shot that
// hits nothing still starts the cooldown.
func (s *Shooter) Fire() []Hit {
	if !s.CanFire() || s.Resolver == nil {
		return nil
	}
	if s.View == nil {
		if !s.warnedView {
			log.Printf("Shooter: no camera, cannot aim")
			s.warnedView = true
		}
		return nil
	}

	if s.Config.FireRate > 0 {
		s.nextShot = s.clock + 1/s.Config.FireRate
	}

	circle := s.Resolver.Config().AimCircle(s.View.ScreenCenter())
	targets, ok := s.Resolver.ResolveTargets(s.origin(), s.Config.MaxRange, circle, s.View)
	if !ok {
		return nil
	}

	hits := make([]Hit, 0, len(targets))
	for _, t := range targets {
		dmg := s.DamageAt(t.Distance)
		if dmg > 0 {
			t.Target.TakeDamage(dmg)
		}
		hits = append(hits, Hit{TargetInfo: t, Damage: dmg})
	}
	return hits
}
