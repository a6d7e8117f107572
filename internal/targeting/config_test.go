package targeting

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"crosshair/internal/physics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targeting.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CircleRadius != 50 {
		t.Errorf("Expected radius 50, got %f", cfg.CircleRadius)
	}
	if !cfg.UseScreenRaycastFallback || cfg.ScreenRaycastCount != 8 {
		t.Error("Expected fallback enabled with 8 rays")
	}
	if len(cfg.ScreenRaycastRadii) != 3 {
		t.Errorf("Expected 3 radius fractions, got %v", cfg.ScreenRaycastRadii)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{"circleRadius": 80, "targetLayers": 20}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.CircleRadius != 80 {
		t.Errorf("Expected radius 80, got %f", cfg.CircleRadius)
	}
	if cfg.TargetLayers != physics.MaskOf(2, 4) {
		t.Errorf("Expected target layers 2 and 4, got %b", cfg.TargetLayers)
	}
	if cfg.ScreenRaycastCount != 8 {
		t.Errorf("Expected default ray count to survive, got %d", cfg.ScreenRaycastCount)
	}
}

func TestLoadConfigEmptyRadii(t *testing.T) {
	path := writeConfig(t, `{"screenRaycastRadii": []}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("An empty radius list is allowed: %v", err)
	}
	if len(cfg.ScreenRaycastRadii) != 0 {
		t.Errorf("Expected empty radius list, got %v", cfg.ScreenRaycastRadii)
	}
}

func TestLoadConfigInvalidRadius(t *testing.T) {
	path := writeConfig(t, `{"circleRadius": 0}`)

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Expected ErrInvalidRadius, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `{"circleRadius": `)

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error for malformed JSON")
	}
}

func TestValidateNegativeRayCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScreenRaycastCount = -1

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRayCount) {
		t.Errorf("Expected ErrInvalidRayCount, got %v", err)
	}
}
