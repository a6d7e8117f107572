package components

import (
	"fmt"
	"math"
	"math/rand"

	"crosshair/internal/engine"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func init() {
	engine.RegisterScript("WanderMover", func(props map[string]any) (engine.Component, error) {
		m := NewWanderMover(
			engine.PropFloat(props, "speed", 2),
			engine.PropFloat(props, "radius", 5),
		)
		m.Seed = int64(engine.PropInt(props, "seed", 1))
		if m.Speed <= 0 || m.Radius <= 0 {
			return nil, fmt.Errorf("speed and radius must be positive")
		}
		return m, nil
	})
}

// minLeg keeps a leg from collapsing to zero duration when the next point
// lands on the current one.
const minLeg = 0.1

// WanderMover walks its GameObject between random points on the XZ plane,
// never leaving a disc of Radius around where it started. The same Seed
// always produces the same path.
type WanderMover struct {
	engine.BaseComponent
	Speed  float32
	Radius float32
	Seed   int64

	rng            *rand.Rand
	homeX, homeZ   float32
	tweenX, tweenZ *gween.Tween
}

func NewWanderMover(speed, radius float32) *WanderMover {
	return &WanderMover{
		Speed:  speed,
		Radius: radius,
		Seed:   1,
	}
}

func (m *WanderMover) Start() {
	g := m.GetGameObject()
	if g == nil {
		return
	}
	m.rng = rand.New(rand.NewSource(m.Seed))
	m.homeX, m.homeZ = g.Transform.Position.X, g.Transform.Position.Z
	m.nextLeg()
}

// nextLeg tweens from the current position to a uniform random point in the disc.
func (m *WanderMover) nextLeg() {
	pos := m.GetGameObject().Transform.Position

	angle := m.rng.Float64() * 2 * math.Pi
	dist := float64(m.Radius) * math.Sqrt(m.rng.Float64())
	x := m.homeX + float32(math.Cos(angle)*dist)
	z := m.homeZ + float32(math.Sin(angle)*dist)

	dx, dz := float64(x-pos.X), float64(z-pos.Z)
	leg := max(float32(math.Hypot(dx, dz))/m.Speed, minLeg)

	m.tweenX = gween.New(pos.X, x, leg, ease.InOutSine)
	m.tweenZ = gween.New(pos.Z, z, leg, ease.InOutSine)
}

func (m *WanderMover) Update(deltaTime float32) {
	if m.tweenX == nil {
		return
	}
	g := m.GetGameObject()
	x, done := m.tweenX.Update(deltaTime)
	z, _ := m.tweenZ.Update(deltaTime)
	g.Transform.Position.X = x
	g.Transform.Position.Z = z
	if done {
		m.nextLeg()
	}
}
