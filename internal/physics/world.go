package physics

import (
	"log"
	"math"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - colliders are bucketed by the cells their bounds cover
const CellSize = 5.0

// GridThreshold is the minimum collider count before the spatial grid kicks in.
// Below this, a linear scan is faster than maintaining the grid.
const GridThreshold = 64

// maxCellsPerCollider caps grid insertion; larger colliders (floors, walls)
// go to an always-checked list instead.
const maxCellsPerCollider = 512

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// World answers spatial queries over registered colliders. Query results
// always come back in registration order so callers stay deterministic.
type World struct {
	colliders []Collider

	grid      map[CellKey][]int // indices into colliders
	oversized []int
	dirty     bool
	useGrid   bool
}

func NewWorld() *World {
	return &World{
		colliders: make([]Collider, 0),
		grid:      make(map[CellKey][]int),
	}
}

func (w *World) AddCollider(c Collider) {
	w.colliders = append(w.colliders, c)
	w.dirty = true
}

func (w *World) RemoveCollider(c Collider) {
	for i, other := range w.colliders {
		if other == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			w.dirty = true
			return
		}
	}
}

// MarkDirty must be called after colliders move so the grid is rebuilt
// before the next overlap query.
func (w *World) MarkDirty() {
	w.dirty = true
}

func (w *World) Count() int {
	return len(w.colliders)
}

// UsingGrid returns true if overlap queries currently go through the spatial grid
func (w *World) UsingGrid() bool {
	w.syncGrid()
	return w.useGrid
}

// syncGrid clears and repopulates the spatial hash grid when needed
func (w *World) syncGrid() {
	if !w.dirty {
		return
	}
	w.dirty = false

	wasUsingGrid := w.useGrid
	w.useGrid = len(w.colliders) >= GridThreshold
	if w.useGrid && !wasUsingGrid {
		log.Printf("Physics: spatial grid ON (%d colliders)", len(w.colliders))
	} else if !w.useGrid && wasUsingGrid {
		log.Printf("Physics: spatial grid OFF (%d colliders)", len(w.colliders))
	}

	for k := range w.grid {
		delete(w.grid, k)
	}
	w.oversized = w.oversized[:0]
	if !w.useGrid {
		return
	}

	for i, c := range w.colliders {
		b := c.Bounds()
		lo, hi := posToCell(b.Min), posToCell(b.Max)
		cells := (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1) * (hi.Z - lo.Z + 1)
		if cells > maxCellsPerCollider {
			w.oversized = append(w.oversized, i)
			continue
		}
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				for z := lo.Z; z <= hi.Z; z++ {
					key := CellKey{x, y, z}
					w.grid[key] = append(w.grid[key], i)
				}
			}
		}
	}
}

// queryable reports whether c is visible to a query with the given mask.
func queryable(c Collider, mask LayerMask) bool {
	g := c.GetGameObject()
	return g != nil && g.ActiveInHierarchy() && mask.Contains(g.Layer)
}

// OverlapSphere returns every collider on a layer in mask whose shape
// touches the sphere, in registration order.
func (w *World) OverlapSphere(center rl.Vector3, radius float32, mask LayerMask) []Collider {
	var result []Collider
	for _, i := range w.sphereCandidates(center, radius) {
		c := w.colliders[i]
		if queryable(c, mask) && c.OverlapsSphere(center, radius) {
			result = append(result, c)
		}
	}
	return result
}

// cellSpan counts the grid cells a sphere's bounds cover. It works in
// float64 so huge radii cannot overflow the integer cell coordinates.
func cellSpan(center rl.Vector3, radius float32) float64 {
	axis := func(c float32) float64 {
		lo := math.Floor((float64(c) - float64(radius)) / CellSize)
		hi := math.Floor((float64(c) + float64(radius)) / CellSize)
		return hi - lo + 1
	}
	return axis(center.X) * axis(center.Y) * axis(center.Z)
}

// sphereCandidates returns sorted collider indices that may touch the sphere.
func (w *World) sphereCandidates(center rl.Vector3, radius float32) []int {
	w.syncGrid()

	// A query covering more cells than there are colliders is cheaper as a scan.
	// The negated compare also sends NaN and infinite spans to the scan.
	if !w.useGrid || !(cellSpan(center, radius) <= float64(len(w.colliders))) {
		all := make([]int, len(w.colliders))
		for i := range all {
			all[i] = i
		}
		return all
	}

	ext := rl.Vector3{X: radius, Y: radius, Z: radius}
	lo := posToCell(rl.Vector3Subtract(center, ext))
	hi := posToCell(rl.Vector3Add(center, ext))

	seen := make(map[int]bool)
	indices := append([]int(nil), w.oversized...)
	for _, i := range w.oversized {
		seen[i] = true
	}
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				for _, i := range w.grid[CellKey{x, y, z}] {
					if !seen[i] {
						seen[i] = true
						indices = append(indices, i)
					}
				}
			}
		}
	}
	slices.Sort(indices)
	return indices
}

// Raycast returns the closest hit within maxDistance on a layer in mask.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, c := range w.colliders {
		if !queryable(c, mask) {
			continue
		}
		if hitInfo, ok := c.Raycast(origin, direction, maxDistance); ok {
			if !hit || hitInfo.Distance < closestHit.Distance {
				closestHit = hitInfo
				closestHit.Collider = c
				closestHit.GameObject = c.GetGameObject()
				hit = true
			}
		}
	}

	return closestHit, hit
}

// RaycastAll returns every hit within maxDistance on a layer in mask.
// Hits are in registration order, not sorted by distance.
func (w *World) RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) []RaycastHit {
	if rl.Vector3Length(direction) == 0 {
		return nil
	}
	direction = rl.Vector3Normalize(direction)

	var hits []RaycastHit
	for _, c := range w.colliders {
		if !queryable(c, mask) {
			continue
		}
		if hitInfo, ok := c.Raycast(origin, direction, maxDistance); ok {
			hitInfo.Collider = c
			hitInfo.GameObject = c.GetGameObject()
			hits = append(hits, hitInfo)
		}
	}
	return hits
}
