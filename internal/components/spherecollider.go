package components

import (
	"crosshair/internal/engine"
	"crosshair/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

func (s *SphereCollider) Bounds() physics.AABB {
	d := s.Radius * 2
	return physics.NewAABBFromCenter(s.GetCenter(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereCollider) OverlapsSphere(center rl.Vector3, radius float32) bool {
	r := s.Radius + radius
	d := rl.Vector3Subtract(s.GetCenter(), center)
	return rl.Vector3DotProduct(d, d) <= r*r
}

func (s *SphereCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.RaycastHit, bool) {
	return physics.RaycastSphere(origin, direction, s.GetCenter(), s.Radius, maxDistance)
}
