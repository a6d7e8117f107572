// Package debugview shows what targeting sees: candidate bodies, the
// points and rays each pass tested, and the aim circle.
package debugview

import (
	"crosshair/internal/physics"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is one broad-phase candidate and how it classified.
type Body struct {
	Collider  physics.Collider
	Bounds    physics.AABB
	Detection targeting.Detection
}

// Sample is a bounds-pass point and whether it projected inside the circle.
type Sample struct {
	Point    rl.Vector3
	InCircle bool
}

// Overlay is a snapshot of one targeting evaluation, ready to draw.
type Overlay struct {
	Circle  targeting.AimCircle
	Bodies  []Body
	Samples []Sample
	Rays    []rl.Ray
}

// Visible returns the number of bodies that classified as visible.
func (o Overlay) Visible() int {
	n := 0
	for _, b := range o.Bodies {
		if b.Detection.Visible {
			n++
		}
	}
	return n
}

// Inspect evaluates every candidate within maxRange of origin the way the
// resolver does, keeping the intermediate geometry. Unlike the resolver it
// keeps bodies without a damage sink, so misconfigured targets show up.
func Inspect(cfg targeting.Config, query targeting.SpatialQuery, origin rl.Vector3, maxRange float32, view targeting.Projector, center rl.Vector2) Overlay {
	o := Overlay{Circle: cfg.AimCircle(center)}
	if view == nil || maxRange <= 0 {
		return o
	}

	classifier := targeting.NewClassifier(cfg, query)
	for _, c := range query.OverlapSphere(origin, maxRange, cfg.TargetLayers) {
		bounds := c.Bounds()
		o.Bodies = append(o.Bodies, Body{
			Collider:  c,
			Bounds:    bounds,
			Detection: classifier.Classify(c, o.Circle, view),
		})
		for _, p := range targeting.BoundsSamplePoints(bounds) {
			screen, depth := view.WorldToScreen(p)
			o.Samples = append(o.Samples, Sample{
				Point:    p,
				InCircle: depth > 0 && o.Circle.Contains(screen),
			})
		}
	}

	if cfg.UseScreenRaycastFallback {
		for _, p := range targeting.FallbackScreenPoints(o.Circle, cfg.ScreenRaycastCount, cfg.ScreenRaycastRadii) {
			o.Rays = append(o.Rays, view.ScreenToWorldRay(p))
		}
	}
	return o
}
