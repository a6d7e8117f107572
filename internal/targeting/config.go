package targeting

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"crosshair/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrInvalidRadius   = errors.New("circle radius must be positive")
	ErrInvalidRayCount = errors.New("screen raycast count must not be negative")
)

// Config is the targeting configuration. It is set once and read by every
// resolution call.
type Config struct {
	CircleRadius   float32           `json:"circleRadius"` // screen pixels
	TargetLayers   physics.LayerMask `json:"targetLayers"`
	ObstacleLayers physics.LayerMask `json:"obstacleLayers"`

	// Screen raycast fallback for targets only visible through gaps
	UseScreenRaycastFallback bool      `json:"useScreenRaycastFallback"`
	ScreenRaycastCount       int       `json:"screenRaycastCount"`
	ScreenRaycastRadii       []float32 `json:"screenRaycastRadii"` // fractions of CircleRadius
}

func DefaultConfig() Config {
	return Config{
		CircleRadius:             50,
		TargetLayers:             physics.MaskOf(physics.LayerEnemy),
		ObstacleLayers:           physics.MaskOf(physics.LayerDefault, physics.LayerEnvironment),
		UseScreenRaycastFallback: true,
		ScreenRaycastCount:       8,
		ScreenRaycastRadii:       []float32{0, 0.5, 1},
	}
}

func (c Config) Validate() error {
	if c.CircleRadius <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, c.CircleRadius)
	}
	if c.ScreenRaycastCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRayCount, c.ScreenRaycastCount)
	}
	return nil
}

// AimCircle centers the configured circle on the given screen point.
func (c Config) AimCircle(center rl.Vector2) AimCircle {
	return AimCircle{Center: center, Radius: c.CircleRadius}
}

// LoadConfig reads a JSON config. Fields missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read targeting config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse targeting config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("targeting config %s: %w", path, err)
	}
	return cfg, nil
}
