package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"crosshair/internal/components"
	"crosshair/internal/engine"
	"crosshair/internal/physics"
	"crosshair/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name      string          `json:"name"`
	Targeting json.RawMessage `json:"targeting,omitempty"`
	Player    *PlayerDef      `json:"player,omitempty"`
	Objects   []ObjectDef     `json:"objects"`
}

type PlayerDef struct {
	Position [3]float32      `json:"position"`
	Yaw      *float32        `json:"yaw,omitempty"`
	Pitch    float32         `json:"pitch,omitempty"`
	Fovy     float32         `json:"fovy,omitempty"`
	Shooter  json.RawMessage `json:"shooter,omitempty"` // components.ShooterConfig, missing fields keep defaults
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      string            `json:"layer,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

// Load reads a scene file from disk.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from JSON. The returned scene has not been started.
func Parse(data []byte) (*Scene, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	cfg := targeting.DefaultConfig()
	if len(sf.Targeting) > 0 {
		if err := json.Unmarshal(sf.Targeting, &cfg); err != nil {
			return nil, fmt.Errorf("parse targeting: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("targeting: %w", err)
	}

	name := sf.Name
	if name == "" {
		name = "Main"
	}
	s := newScene(name, cfg)

	for _, objDef := range sf.Objects {
		if _, err := s.loadObject(objDef, nil); err != nil {
			return nil, err
		}
	}

	if err := s.spawnPlayer(sf.Player); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) loadObject(objDef ObjectDef, parent *engine.GameObject) (*engine.GameObject, error) {
	g := engine.NewGameObject(objDef.Name)
	g.Tags = objDef.Tags
	g.Transform.Position = vec3(objDef.Position)

	// Default scale to 1 if zero
	if objDef.Scale != [3]float32{} {
		g.Transform.Scale = vec3(objDef.Scale)
	}
	if objDef.Active != nil {
		g.Active = *objDef.Active
	}

	if objDef.Layer != "" {
		layer, err := physics.LayerFromName(objDef.Layer)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", objDef.Name, err)
		}
		g.Layer = layer
	} else if parent != nil {
		g.Layer = parent.Layer
	}

	for _, raw := range objDef.Components {
		if err := loadComponent(g, raw); err != nil {
			return nil, fmt.Errorf("object %q: %w", objDef.Name, err)
		}
	}

	if parent != nil {
		parent.AddChild(g)
	}
	s.Objects.AddGameObject(g)
	for _, c := range g.Components() {
		if col, ok := c.(physics.Collider); ok {
			s.Physics.AddCollider(col)
		}
	}
	if h := engine.GetComponent[*components.Health](g); h != nil {
		h.OnDeath.AddListener(func() { s.destroy(g) })
	}

	for _, childDef := range objDef.Children {
		if _, err := s.loadObject(childDef, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return fmt.Errorf("component header: %w", err)
	}

	switch header.Type {
	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("BoxCollider: %w", err)
		}
		col := components.NewBoxCollider(vec3(def.Size))
		col.Offset = vec3(def.Offset)
		g.AddComponent(col)
	case "SphereCollider":
		var def sphereColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("SphereCollider: %w", err)
		}
		col := components.NewSphereCollider(def.Radius)
		col.Offset = vec3(def.Offset)
		g.AddComponent(col)
	case "Script":
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("Script: %w", err)
		}
		comp, err := engine.CreateScript(def.Name, def.Props)
		if err != nil {
			return err
		}
		g.AddComponent(comp)
	default:
		return fmt.Errorf("unknown component type %q", header.Type)
	}
	return nil
}
