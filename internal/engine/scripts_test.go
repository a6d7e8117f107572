package engine

import (
	"errors"
	"testing"
)

// Mock script for testing
type MockScript struct {
	BaseComponent
	Speed  float32
	Health int
}

func mockFactory(props map[string]any) (Component, error) {
	return &MockScript{
		Speed:  PropFloat(props, "speed", 1),
		Health: PropInt(props, "health", 10),
	}, nil
}

func TestRegisterScript(t *testing.T) {
	// Clear registry for clean test
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("MockScript", mockFactory)

	if _, exists := scriptRegistry["MockScript"]; !exists {
		t.Error("Script not registered")
	}
}

func TestRegisterScriptDuplicate(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("Duplicate", mockFactory)

	// Should panic on duplicate registration
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()

	RegisterScript("Duplicate", mockFactory)
}

func TestCreateScript(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("MockScript", mockFactory)

	props := map[string]any{
		"speed":  float64(10.5),
		"health": float64(100),
	}

	component, err := CreateScript("MockScript", props)
	if err != nil {
		t.Fatalf("CreateScript returned error: %v", err)
	}

	script, ok := component.(*MockScript)
	if !ok {
		t.Fatal("CreateScript didn't return MockScript")
	}

	if script.Speed != 10.5 {
		t.Errorf("Expected Speed 10.5, got %f", script.Speed)
	}

	if script.Health != 100 {
		t.Errorf("Expected Health 100, got %d", script.Health)
	}
}

func TestCreateScriptDefaults(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("MockScript", mockFactory)

	component, err := CreateScript("MockScript", nil)
	if err != nil {
		t.Fatalf("CreateScript returned error: %v", err)
	}
	script := component.(*MockScript)
	if script.Speed != 1 || script.Health != 10 {
		t.Errorf("Expected defaults (1, 10), got (%f, %d)", script.Speed, script.Health)
	}
}

func TestCreateScriptNotFound(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	component, err := CreateScript("DoesNotExist", nil)
	if err == nil {
		t.Error("CreateScript should fail for non-existent script")
	}
	if component != nil {
		t.Error("CreateScript should return nil for non-existent script")
	}
}

func TestCreateScriptFactoryError(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	errBadProps := errors.New("bad props")
	RegisterScript("Broken", func(map[string]any) (Component, error) {
		return nil, errBadProps
	})

	_, err := CreateScript("Broken", nil)
	if !errors.Is(err, errBadProps) {
		t.Errorf("Expected wrapped factory error, got %v", err)
	}
}

func TestGetRegisteredScripts(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("ScriptC", mockFactory)
	RegisterScript("ScriptA", mockFactory)
	RegisterScript("ScriptB", mockFactory)

	scripts := GetRegisteredScripts()

	if len(scripts) != 3 {
		t.Fatalf("Expected 3 scripts, got %d", len(scripts))
	}

	// Verify sorted order
	if scripts[0] != "ScriptA" || scripts[1] != "ScriptB" || scripts[2] != "ScriptC" {
		t.Errorf("Scripts not in sorted order: %v", scripts)
	}
}
