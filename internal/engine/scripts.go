package engine

import (
	"fmt"
	"slices"
)

// ScriptFactory creates a Component from JSON props.
type ScriptFactory func(props map[string]any) (Component, error)

var scriptRegistry = map[string]ScriptFactory{}

// RegisterScript registers a named script so scene files can attach it.
// Registering the same name twice panics.
func RegisterScript(name string, factory ScriptFactory) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = factory
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props map[string]any) (Component, error) {
	factory, ok := scriptRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown script %q", name)
	}
	c, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("create script %q: %w", name, err)
	}
	return c, nil
}

// GetRegisteredScripts returns a sorted list of all registered script names.
func GetRegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PropFloat reads a numeric prop decoded from JSON, falling back to def.
func PropFloat(props map[string]any, key string, def float32) float32 {
	if v, ok := props[key].(float64); ok {
		return float32(v)
	}
	return def
}

// PropInt reads an integer prop decoded from JSON, falling back to def.
func PropInt(props map[string]any, key string, def int) int {
	if v, ok := props[key].(float64); ok {
		return int(v)
	}
	return def
}
