package targeting

import (
	"cmp"
	"math"
	"slices"

	"crosshair/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pass identifies which detection method found a target.
type Pass int

const (
	PassNone      Pass = iota
	PassBounds         // bounds-point projection
	PassScreenRay      // screen raycast fallback
)

func (p Pass) String() string {
	switch p {
	case PassBounds:
		return "bounds"
	case PassScreenRay:
		return "screen-ray"
	default:
		return "none"
	}
}

// Detection is the outcome of classifying one candidate.
type Detection struct {
	Visible  bool
	HitPoint rl.Vector3
	Pass     Pass
}

// Classifier decides whether a single candidate is inside the aim circle
// and unoccluded. The bounds pass runs first; the screen raycast pass only
// runs when it fails and the fallback is enabled.
type Classifier struct {
	cfg   Config
	query SpatialQuery
}

func NewClassifier(cfg Config, query SpatialQuery) *Classifier {
	return &Classifier{cfg: cfg, query: query}
}

// IsVisible reports whether candidate is visible in the circle and where.
func (c *Classifier) IsVisible(candidate physics.Collider, circle AimCircle, view Projector) (rl.Vector3, bool) {
	d := c.Classify(candidate, circle, view)
	return d.HitPoint, d.Visible
}

func (c *Classifier) Classify(candidate physics.Collider, circle AimCircle, view Projector) Detection {
	if p, ok := c.checkBoundsPoints(candidate, circle, view); ok {
		return Detection{Visible: true, HitPoint: p, Pass: PassBounds}
	}
	if c.cfg.UseScreenRaycastFallback {
		if p, ok := c.checkScreenRaycasts(candidate, circle, view); ok {
			return Detection{Visible: true, HitPoint: p, Pass: PassScreenRay}
		}
	}
	return Detection{}
}

// BoundsSamplePoints returns the center of b followed by its eight corners,
// in the order the bounds pass tests them.
func BoundsSamplePoints(b physics.AABB) [9]rl.Vector3 {
	c, e := b.Center(), b.Extents()
	at := func(sx, sy, sz float32) rl.Vector3 {
		return rl.Vector3{X: c.X + sx*e.X, Y: c.Y + sy*e.Y, Z: c.Z + sz*e.Z}
	}
	return [9]rl.Vector3{
		c,
		at(1, 1, 1),
		at(-1, -1, -1),
		at(1, 1, -1),
		at(1, -1, 1),
		at(-1, 1, 1),
		at(-1, -1, 1),
		at(1, -1, -1),
		at(-1, 1, -1),
	}
}

// FallbackScreenPoints returns the screen samples of the fallback pass:
// count evenly spaced angles, and for each angle every radius fraction.
func FallbackScreenPoints(circle AimCircle, count int, radii []float32) []rl.Vector2 {
	if count <= 0 || len(radii) == 0 {
		return nil
	}
	points := make([]rl.Vector2, 0, count*len(radii))
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi / float64(count) * float64(i)
		cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
		for _, fraction := range radii {
			r := circle.Radius * fraction
			points = append(points, rl.Vector2{
				X: circle.Center.X + cos*r,
				Y: circle.Center.Y + sin*r,
			})
		}
	}
	return points
}

func (c *Classifier) checkBoundsPoints(candidate physics.Collider, circle AimCircle, view Projector) (rl.Vector3, bool) {
	cameraPosition := view.Position()

	for _, point := range BoundsSamplePoints(candidate.Bounds()) {
		screen, depth := view.WorldToScreen(point)
		if depth <= 0 {
			continue
		}
		if !circle.Contains(screen) {
			continue
		}
		// Blocked points do not rule out the candidate; try the next one
		if c.hasLineOfSight(cameraPosition, point) {
			return point, true
		}
	}
	return rl.Vector3{}, false
}

// hasLineOfSight is true when no obstacle is hit strictly before point.
func (c *Classifier) hasLineOfSight(from, point rl.Vector3) bool {
	toPoint := rl.Vector3Subtract(point, from)
	distance := rl.Vector3Length(toPoint)
	if distance == 0 {
		return true
	}
	direction := rl.Vector3Scale(toPoint, 1/distance)
	hit, blocked := c.query.Raycast(from, direction, distance, c.cfg.ObstacleLayers)
	return !blocked || hit.Distance >= distance
}

func (c *Classifier) checkScreenRaycasts(candidate physics.Collider, circle AimCircle, view Projector) (rl.Vector3, bool) {
	mask := c.cfg.TargetLayers.Union(c.cfg.ObstacleLayers)

	for _, screenPoint := range FallbackScreenPoints(circle, c.cfg.ScreenRaycastCount, c.cfg.ScreenRaycastRadii) {
		ray := view.ScreenToWorldRay(screenPoint)
		hits := c.query.RaycastAll(ray.Position, ray.Direction, math.MaxFloat32, mask)
		c.sortHits(hits)

		for _, hit := range hits {
			if hit.Collider == candidate {
				return hit.Point, true
			}
			if c.isObstacle(hit) {
				break
			}
		}
	}
	return rl.Vector3{}, false
}

// sortHits orders hits by distance. Obstacles sort before non-obstacles at
// equal distance, so an obstacle flush with a target occludes it.
func (c *Classifier) sortHits(hits []physics.RaycastHit) {
	slices.SortStableFunc(hits, func(a, b physics.RaycastHit) int {
		if n := cmp.Compare(a.Distance, b.Distance); n != 0 {
			return n
		}
		ao, bo := c.isObstacle(a), c.isObstacle(b)
		switch {
		case ao && !bo:
			return -1
		case bo && !ao:
			return 1
		}
		return 0
	})
}

func (c *Classifier) isObstacle(hit physics.RaycastHit) bool {
	return hit.GameObject != nil && c.cfg.ObstacleLayers.Contains(hit.GameObject.Layer)
}
