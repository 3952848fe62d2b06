// Package gesture turns raw hand landmarks into debounced, cooldown-guarded
// gesture switch events. It is the stateful heart of mudra: per-finger
// predicates feed a fixed-priority classifier, and a stability-locked
// controller decides when a raw classification becomes actionable.
package gesture

// Label is a discrete gesture classification. Idle means "nothing actionable
// this frame" and covers both the no-hand case and unrecognized poses.
type Label string

const (
	Idle         Label = "IDLE"
	ThreeFingers Label = "THREE_FINGERS"
	OpenPalm     Label = "OPEN_PALM"
	Fist         Label = "FIST"
	Peace        Label = "PEACE"
)

// Labels lists every actionable gesture, in classifier priority order.
func Labels() []Label {
	return []Label{OpenPalm, ThreeFingers, Peace, Fist}
}
