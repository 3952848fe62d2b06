package scene

import (
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/visual"
)

// DefaultFactories returns the fixed gesture-to-entity table. Labels outside
// the table (and Idle) are no-ops for the pipeline.
func DefaultFactories() map[gesture.Label]Factory {
	return map[gesture.Label]Factory{
		gesture.ThreeFingers: func() Entity { return visual.NewGalaxy() },
		gesture.OpenPalm:     func() Entity { return visual.NewNebula() },
		gesture.Fist:         func() Entity { return visual.NewOrb() },
		gesture.Peace:        func() Entity { return visual.NewBloom() },
	}
}
