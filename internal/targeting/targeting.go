// Package targeting decides which damageable bodies are inside the
// crosshair circle with a clear line of sight from the camera.
//
// A resolution call is synchronous and keeps no state between calls; the
// only long-lived input is Config. Spatial queries and screen projection are
// provided by the caller through SpatialQuery and Projector.
package targeting

import (
	"crosshair/internal/engine"
	"crosshair/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:generate go tool mockgen -destination=./mocks/targeting_mock.go -package=mocks . SpatialQuery,Projector

// SpatialQuery is the physics side of targeting. physics.World implements it.
type SpatialQuery interface {
	// OverlapSphere returns the colliders touching the sphere, in a stable order.
	OverlapSphere(center rl.Vector3, radius float32, mask physics.LayerMask) []physics.Collider
	// Raycast returns the nearest hit within maxDistance.
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool)
	// RaycastAll returns every hit within maxDistance, unsorted.
	RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit
}

// Projector maps between world space and screen pixels for one camera.
// camera.View implements it.
type Projector interface {
	Position() rl.Vector3
	// WorldToScreen returns the pixel position and the depth along the view
	// direction. Depth <= 0 means the point is behind the camera.
	WorldToScreen(point rl.Vector3) (rl.Vector2, float32)
	ScreenToWorldRay(screen rl.Vector2) rl.Ray
}

// AimCircle is the crosshair tolerance region in screen pixels.
type AimCircle struct {
	Center rl.Vector2
	Radius float32
}

// Contains reports whether p lies inside the circle. The boundary counts as inside.
func (a AimCircle) Contains(p rl.Vector2) bool {
	return rl.Vector2Distance(p, a.Center) <= a.Radius
}

// TargetInfo is one resolved target.
type TargetInfo struct {
	Target     engine.Damageable
	HitPoint   rl.Vector3
	Distance   float32 // from the shooter to HitPoint
	GameObject *engine.GameObject
	Collider   physics.Collider
}
