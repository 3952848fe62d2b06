// Package scene owns the single on-screen visual entity. It is a single-slot
// register, not a collection: at most one entity is ever live, it never
// expires on its own, and only a confirmed, different gesture may replace it.
package scene

import (
	"log"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
)

// Entity is a procedural visual object. Update advances animation state and
// returns a liveness signal; Draw submits primitives to the canvas.
type Entity interface {
	Update(dt float64) bool
	Draw(c render.Canvas)
}

// Factory constructs a fresh Entity.
type Factory func() Entity

// Scene is the single-slot scene ownership controller.
type Scene struct {
	entity Entity
	owner  gesture.Label
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{owner: gesture.Idle}
}

// Spawn replaces the current entity only if label differs from the gesture
// that produced it, or if no entity is active. The new entity is fully
// constructed before the old reference is dropped. Returns whether a
// replacement occurred.
func (s *Scene) Spawn(label gesture.Label, f Factory) bool {
	if f == nil {
		return false
	}
	if label == s.owner && s.entity != nil {
		// Same gesture re-fired; keep the existing entity untouched.
		return false
	}

	s.entity = f()
	s.owner = label
	log.Printf("scene: spawned entity for gesture %s", label)
	return true
}

// Update advances the active entity's animation. The entity's liveness return
// is deliberately ignored: entities live until explicitly replaced, never
// expiring on their own.
func (s *Scene) Update(dt float64) {
	if s.entity != nil {
		s.entity.Update(dt)
	}
}

// Draw delegates to the active entity; a no-op when the scene is empty.
func (s *Scene) Draw(c render.Canvas) {
	if s.entity != nil {
		s.entity.Draw(c)
	}
}

// Active returns the gesture owning the current entity, or gesture.Idle when
// the scene is empty.
func (s *Scene) Active() gesture.Label {
	if s.entity == nil {
		return gesture.Idle
	}
	return s.owner
}

// Empty reports whether no entity is live.
func (s *Scene) Empty() bool {
	return s.entity == nil
}

// Clear force-drops the entity. Not part of the normal gesture flow.
func (s *Scene) Clear() {
	s.entity = nil
	s.owner = gesture.Idle
}
