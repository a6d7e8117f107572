// targetprobe loads a scene, aims the player camera and prints what the
// crosshair would hit. It needs no window.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"crosshair/internal/debugview"
	"crosshair/internal/scene"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type options struct {
	scenePath  string
	configPath string
	width      float64
	height     float64
	pos        string
	yaw        float64
	pitch      float64
	advance    float64
	fire       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.scenePath, "scene", "assets/scenes/range.json", "scene file")
	flag.StringVar(&opts.configPath, "config", "", "targeting config (overrides the scene's)")
	flag.Float64Var(&opts.width, "width", 1280, "viewport width in pixels")
	flag.Float64Var(&opts.height, "height", 720, "viewport height in pixels")
	flag.StringVar(&opts.pos, "pos", "", "camera position as x,y,z (default: scene player)")
	flag.Float64Var(&opts.yaw, "yaw", 0, "yaw delta in degrees")
	flag.Float64Var(&opts.pitch, "pitch", 0, "pitch delta in degrees")
	flag.Float64Var(&opts.advance, "advance", 0, "seconds to simulate before aiming")
	flag.BoolVar(&opts.fire, "fire", false, "fire once and report damage")
	flag.Parse()

	if err := probe(os.Stdout, opts); err != nil {
		log.Fatalf("targetprobe: %v", err)
	}
}

func probe(out io.Writer, opts options) error {
	s, err := scene.Load(opts.scenePath)
	if err != nil {
		return err
	}
	if opts.configPath != "" {
		cfg, err := targeting.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		s.SetTargeting(cfg)
	}
	if opts.pos != "" {
		p, err := parseVec3(opts.pos)
		if err != nil {
			return fmt.Errorf("-pos: %w", err)
		}
		s.Camera.Position = p
	}
	s.Camera.Look(float32(opts.yaw), float32(opts.pitch))

	s.Start()
	// Tick at 60 Hz so movers land where they would in the game
	const step = 1.0 / 60
	for t := 0.0; t+step/2 < opts.advance; t += step {
		s.Update(step)
	}

	view := s.SyncView(float32(opts.width), float32(opts.height))
	overlay := debugview.Inspect(s.Targeting, s.Physics, s.Player.WorldPosition(),
		s.Shooter.Config.MaxRange, view, view.ScreenCenter())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "camera\t%s\tyaw %.1f pitch %.1f\n", formatVec3(s.Camera.Position), s.Camera.Yaw, s.Camera.Pitch)
	fmt.Fprintf(w, "circle\tr=%.0fpx\tfallback=%v rays=%d\n", overlay.Circle.Radius,
		s.Targeting.UseScreenRaycastFallback, len(overlay.Rays))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OBJECT\tPASS\tHIT POINT")
	for _, b := range overlay.Bodies {
		name := b.Collider.GetGameObject().Name
		if !b.Detection.Visible {
			fmt.Fprintf(w, "%s\t-\t-\n", name)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, b.Detection.Pass, formatVec3(b.Detection.HitPoint))
	}

	if opts.fire {
		fmt.Fprintln(w)
		hits := s.Shooter.Fire()
		if len(hits) == 0 {
			fmt.Fprintln(w, "shot missed")
		}
		for _, h := range hits {
			fmt.Fprintf(w, "hit %s\t%.2fm\t-%d\n", h.GameObject.Name, h.Distance, h.Damage)
		}
	}
	return w.Flush()
}

func parseVec3(s string) (rl.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rl.Vector3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return rl.Vector3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func formatVec3(v rl.Vector3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
