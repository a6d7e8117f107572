package debugview

import (
	"fmt"
	"math"
	"slices"

	"crosshair/internal/targeting"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 260
	rowHeight   = 24
	labelWidth  = 90
	sliderWidth = 130
)

// Panel edits a targeting config live. Draw returns the edited config and
// whether anything changed since the last frame.
type Panel struct {
	X, Y   float32
	Hidden bool
}

func NewPanel(x, y float32) *Panel {
	return &Panel{X: x, Y: y}
}

func (p *Panel) Draw(cfg targeting.Config) (targeting.Config, bool) {
	if p.Hidden {
		return cfg, false
	}

	rows := float32(5)
	bg := rl.Rectangle{X: p.X, Y: p.Y, Width: panelWidth, Height: rows*rowHeight + 36}
	rl.DrawRectangleRec(bg, rl.NewColor(22, 22, 30, 230))
	rl.DrawRectangleLinesEx(bg, 1, rl.NewColor(50, 50, 65, 255))
	rl.DrawText("Targeting", int32(p.X+8), int32(p.Y+6), 16, rl.RayWhite)

	next := cfg
	next.ScreenRaycastRadii = slices.Clone(cfg.ScreenRaycastRadii)
	y := p.Y + 30

	next.CircleRadius = p.slider(y, "Radius", next.CircleRadius, 5, 200)
	y += rowHeight

	next.UseScreenRaycastFallback = gui.CheckBox(
		rl.Rectangle{X: p.X + 8, Y: y + 4, Width: 16, Height: 16},
		"Screen ray fallback", next.UseScreenRaycastFallback)
	y += rowHeight

	count := p.slider(y, "Rays", float32(next.ScreenRaycastCount), 0, 32)
	next.ScreenRaycastCount = int(math.Round(float64(count)))
	y += rowHeight

	// The outermost ring is the one worth tuning; inner rings scale with it.
	if n := len(next.ScreenRaycastRadii); n > 0 {
		outer := next.ScreenRaycastRadii[n-1]
		scaled := p.slider(y, "Outer ring", outer, 0, 1)
		if outer > 0 && scaled != outer {
			for i := range next.ScreenRaycastRadii {
				next.ScreenRaycastRadii[i] *= scaled / outer
			}
		} else if outer == 0 {
			next.ScreenRaycastRadii[n-1] = scaled
		}
	}
	y += rowHeight

	rays := 0
	if next.UseScreenRaycastFallback {
		rays = next.ScreenRaycastCount * len(next.ScreenRaycastRadii)
	}
	rl.DrawText(fmt.Sprintf("Fallback rays/target: %d", rays), int32(p.X+8), int32(y+4), 14, rl.LightGray)

	return next, !configEqual(cfg, next)
}

func (p *Panel) slider(y float32, label string, value, min, max float32) float32 {
	rl.DrawText(label, int32(p.X+8), int32(y+4), 14, rl.LightGray)
	bounds := rl.Rectangle{X: p.X + labelWidth, Y: y, Width: sliderWidth, Height: rowHeight - 4}
	return gui.Slider(bounds, "", fmt.Sprintf("%.1f", value), value, min, max)
}

func configEqual(a, b targeting.Config) bool {
	return a.CircleRadius == b.CircleRadius &&
		a.TargetLayers == b.TargetLayers &&
		a.ObstacleLayers == b.ObstacleLayers &&
		a.UseScreenRaycastFallback == b.UseScreenRaycastFallback &&
		a.ScreenRaycastCount == b.ScreenRaycastCount &&
		slices.Equal(a.ScreenRaycastRadii, b.ScreenRaycastRadii)
}
