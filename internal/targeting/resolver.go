package targeting

import (
	"crosshair/internal/engine"
	"crosshair/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Resolver finds every damageable target in the crosshair. It owns no
// per-call state, so one Resolver may serve any number of calls.
type Resolver struct {
	cfg        Config
	query      SpatialQuery
	classifier *Classifier
}

func NewResolver(cfg Config, query SpatialQuery) *Resolver {
	return &Resolver{
		cfg:        cfg,
		query:      query,
		classifier: NewClassifier(cfg, query),
	}
}

func (r *Resolver) Config() Config {
	return r.cfg
}

func (r *Resolver) Classifier() *Classifier {
	return r.classifier
}

// ResolveTargets returns the visible damageable targets within maxRange of
// shooter, in broad-phase order, and whether any target was found.
//
// Each GameObject contributes at most one target: the first of its colliders
// that classifies as visible. A nil view or a non-positive circle radius
// yields no targets.
func (r *Resolver) ResolveTargets(shooter rl.Vector3, maxRange float32, circle AimCircle, view Projector) ([]TargetInfo, bool) {
	if view == nil || circle.Radius <= 0 || maxRange <= 0 {
		return nil, false
	}

	// The volume query is what guarantees no target slips between rays
	candidates := r.query.OverlapSphere(shooter, maxRange, r.cfg.TargetLayers)

	var targets []TargetInfo
	processed := make(map[*engine.GameObject]bool)

	for _, collider := range candidates {
		g := collider.GetGameObject()
		if g == nil || processed[g] {
			continue
		}

		damageable := engine.GetComponent[engine.Damageable](g)
		if damageable == nil {
			continue
		}

		hitPoint, visible := r.classifier.IsVisible(collider, circle, view)
		if !visible {
			continue
		}

		processed[g] = true
		targets = append(targets, TargetInfo{
			Target:     damageable,
			HitPoint:   hitPoint,
			Distance:   rl.Vector3Distance(shooter, hitPoint),
			GameObject: g,
			Collider:   collider,
		})
	}

	return targets, len(targets) > 0
}

var _ SpatialQuery = (*physics.World)(nil)
