package components

import (
	"fmt"

	"crosshair/internal/engine"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func init() {
	engine.RegisterScript("LoopingMover", func(props map[string]any) (engine.Component, error) {
		m := NewLoopingMover(
			engine.PropFloat(props, "speed", 2),
			engine.PropFloat(props, "distance", 5),
		)
		if smooth, ok := props["smooth"].(bool); ok {
			m.Smooth = smooth
		}
		if m.Speed <= 0 || m.Distance <= 0 {
			return nil, fmt.Errorf("speed and distance must be positive")
		}
		return m, nil
	})
}

// LoopingMover moves its GameObject back and forth along X, Distance units
// from where it started, forever.
type LoopingMover struct {
	engine.BaseComponent
	Speed    float32
	Distance float32
	Smooth   bool

	seq *gween.Sequence
}

func NewLoopingMover(speed, distance float32) *LoopingMover {
	return &LoopingMover{
		Speed:    speed,
		Distance: distance,
		Smooth:   true,
	}
}

func (m *LoopingMover) Start() {
	g := m.GetGameObject()
	if g == nil {
		return
	}
	startX := g.Transform.Position.X
	leg := m.Distance / m.Speed

	easing := ease.Linear
	if m.Smooth {
		easing = ease.InOutSine
	}
	m.seq = gween.NewSequence()
	m.seq.Add(
		gween.New(startX, startX+m.Distance, leg, easing),
		gween.New(startX+m.Distance, startX, leg, easing),
	)
}

func (m *LoopingMover) Update(deltaTime float32) {
	if m.seq == nil {
		return
	}
	x, _, complete := m.seq.Update(deltaTime)
	m.GetGameObject().Transform.Position.X = x
	if complete {
		m.seq.Reset()
	}
}
