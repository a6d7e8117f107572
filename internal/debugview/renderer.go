package debugview

import (
	"fmt"

	"crosshair/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const rayLength = 60

var (
	colorVisible = rl.Green
	colorMissed  = rl.Yellow
	colorSample  = rl.SkyBlue
	colorRay     = rl.NewColor(255, 0, 255, 120)
	colorCircle  = rl.NewColor(255, 255, 255, 200)
)

// Renderer draws an Overlay. The Draw3D half must run inside
// rl.BeginMode3D, the Draw2D half after rl.EndMode3D.
type Renderer struct {
	ShowSamples bool
	ShowRays    bool
}

func NewRenderer() *Renderer {
	return &Renderer{ShowSamples: true, ShowRays: true}
}

func (r *Renderer) Draw3D(o Overlay) {
	for _, b := range o.Bodies {
		color := colorMissed
		if b.Detection.Visible {
			color = colorVisible
		}
		center := b.Bounds.Center()
		size := rl.Vector3Scale(b.Bounds.Extents(), 2)
		rl.DrawCubeWiresV(center, size, color)

		if b.Detection.Visible {
			rl.DrawSphere(b.Detection.HitPoint, 0.08, rl.Red)
		}
	}

	if r.ShowSamples {
		for _, s := range o.Samples {
			color := rl.Fade(colorSample, 0.4)
			if s.InCircle {
				color = colorSample
			}
			rl.DrawSphere(s.Point, 0.05, color)
		}
	}

	if r.ShowRays {
		for _, ray := range o.Rays {
			end := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, rayLength))
			rl.DrawLine3D(ray.Position, end, colorRay)
		}
	}
}

func (r *Renderer) Draw2D(o Overlay) {
	c := o.Circle
	rl.DrawCircleLines(int32(c.Center.X), int32(c.Center.Y), c.Radius, colorCircle)
	rl.DrawPixel(int32(c.Center.X), int32(c.Center.Y), colorCircle)

	rl.DrawText(fmt.Sprintf("Candidates: %d  Visible: %d", len(o.Bodies), o.Visible()), 10, 10, 20, rl.RayWhite)
	y := int32(35)
	for _, b := range o.Bodies {
		if !b.Detection.Visible {
			continue
		}
		name := "?"
		if g := b.Collider.GetGameObject(); g != nil {
			name = g.Name
		}
		rl.DrawText(fmt.Sprintf("%s (%s)", name, b.Detection.Pass), 10, y, 16, colorVisible)
		y += 18
	}
}

// DrawHits lists the last shot's damage under the crosshair.
func (r *Renderer) DrawHits(hits []components.Hit, screenW, screenH int32) {
	y := screenH/2 + 60
	for _, h := range hits {
		label := fmt.Sprintf("%s -%d", h.GameObject.Name, h.Damage)
		w := rl.MeasureText(label, 16)
		rl.DrawText(label, screenW/2-w/2, y, 16, rl.Orange)
		y += 18
	}
}
