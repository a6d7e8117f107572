package physics

import (
	"fmt"
	"strconv"
)

// Built-in layers. Layers 4-31 are free for scene files to use by number.
const (
	LayerDefault     = 0
	LayerEnvironment = 1
	LayerEnemy       = 2
	LayerPlayer      = 3
)

// MaxLayers is the number of layers a LayerMask can address.
const MaxLayers = 32

var layerByName = map[string]int{
	"Default":     LayerDefault,
	"Environment": LayerEnvironment,
	"Enemy":       LayerEnemy,
	"Player":      LayerPlayer,
}

// LayerMask is a bit set of layers; bit n selects layer n.
type LayerMask uint32

// AllLayers selects every layer.
const AllLayers LayerMask = ^LayerMask(0)

// MaskOf builds a mask from layer numbers. Out-of-range layers are ignored.
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < MaxLayers {
			m |= 1 << uint(l)
		}
	}
	return m
}

func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= MaxLayers {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

func (m LayerMask) Union(other LayerMask) LayerMask {
	return m | other
}

// LayerFromName resolves a layer name or a decimal layer number.
func LayerFromName(name string) (int, error) {
	if l, ok := layerByName[name]; ok {
		return l, nil
	}
	l, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("unknown layer %q", name)
	}
	if l < 0 || l >= MaxLayers {
		return 0, fmt.Errorf("layer %d out of range", l)
	}
	return l, nil
}
