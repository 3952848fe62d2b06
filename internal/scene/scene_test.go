package scene

import (
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
)

// stubEntity counts lifecycle calls and returns a scripted liveness value.
type stubEntity struct {
	updates int
	draws   int
	alive   bool
}

func (e *stubEntity) Update(dt float64) bool {
	e.updates++
	return e.alive
}

func (e *stubEntity) Draw(c render.Canvas) {
	e.draws++
}

// stubFactory returns a Factory that records how many entities it built.
func stubFactory(alive bool) (Factory, *[]*stubEntity) {
	built := &[]*stubEntity{}
	f := func() Entity {
		e := &stubEntity{alive: alive}
		*built = append(*built, e)
		return e
	}
	return f, built
}

func TestSceneSpawn(t *testing.T) {
	s := New()
	f, built := stubFactory(true)

	if s.Active() != gesture.Idle || !s.Empty() {
		t.Fatal("new scene should be empty and idle")
	}

	if !s.Spawn(gesture.OpenPalm, f) {
		t.Error("spawn into an empty scene should replace")
	}
	if s.Active() != gesture.OpenPalm {
		t.Errorf("Active() = %v, want %v", s.Active(), gesture.OpenPalm)
	}
	if len(*built) != 1 {
		t.Errorf("factory called %d times, want 1", len(*built))
	}
}

func TestSceneSpawnSameGestureKeepsEntity(t *testing.T) {
	s := New()
	f, built := stubFactory(true)

	s.Spawn(gesture.Fist, f)
	if s.Spawn(gesture.Fist, f) {
		t.Error("re-firing the owning gesture should not replace")
	}
	if len(*built) != 1 {
		t.Errorf("factory called %d times, want 1", len(*built))
	}
}

func TestSceneSpawnReplaces(t *testing.T) {
	s := New()
	f, built := stubFactory(true)

	s.Spawn(gesture.Fist, f)
	if !s.Spawn(gesture.Peace, f) {
		t.Error("a different gesture should replace")
	}
	if s.Active() != gesture.Peace {
		t.Errorf("Active() = %v, want %v", s.Active(), gesture.Peace)
	}
	if len(*built) != 2 {
		t.Errorf("factory called %d times, want 2", len(*built))
	}

	// The old entity no longer receives updates or draws.
	old := (*built)[0]
	s.Update(0.016)
	s.Draw(&render.Recorder{})
	if old.updates != 0 || old.draws != 0 {
		t.Errorf("replaced entity still driven: updates=%d draws=%d", old.updates, old.draws)
	}
	if cur := (*built)[1]; cur.updates != 1 || cur.draws != 1 {
		t.Errorf("current entity not driven: updates=%d draws=%d", cur.updates, cur.draws)
	}
}

func TestSceneSpawnNilFactory(t *testing.T) {
	s := New()
	if s.Spawn(gesture.OpenPalm, nil) {
		t.Error("nil factory should not replace")
	}
	if !s.Empty() {
		t.Error("scene should stay empty after nil factory")
	}
}

func TestSceneIgnoresLiveness(t *testing.T) {
	s := New()
	f, built := stubFactory(false)

	s.Spawn(gesture.Fist, f)

	// The entity reports dead every frame; the scene keeps it anyway.
	for i := 0; i < 10; i++ {
		s.Update(0.016)
	}
	if s.Empty() {
		t.Error("scene dropped an entity on its own")
	}
	if s.Active() != gesture.Fist {
		t.Errorf("Active() = %v, want %v", s.Active(), gesture.Fist)
	}
	if got := (*built)[0].updates; got != 10 {
		t.Errorf("entity updated %d times, want 10", got)
	}
}

func TestSceneEmptyOps(t *testing.T) {
	s := New()

	// Update and Draw on an empty scene are no-ops, not panics.
	s.Update(0.016)
	rec := &render.Recorder{}
	s.Draw(rec)
	if len(rec.Points) != 0 || len(rec.Lines) != 0 {
		t.Error("empty scene drew primitives")
	}
}

func TestSceneClear(t *testing.T) {
	s := New()
	f, _ := stubFactory(true)

	s.Spawn(gesture.Peace, f)
	s.Clear()

	if !s.Empty() {
		t.Error("scene not empty after Clear")
	}
	if s.Active() != gesture.Idle {
		t.Errorf("Active() = %v after Clear, want %v", s.Active(), gesture.Idle)
	}

	// Clearing makes the same gesture spawnable again.
	if !s.Spawn(gesture.Peace, f) {
		t.Error("spawn after Clear should replace")
	}
}

func TestDefaultFactories(t *testing.T) {
	factories := DefaultFactories()

	for _, label := range []gesture.Label{
		gesture.ThreeFingers, gesture.OpenPalm, gesture.Fist, gesture.Peace,
	} {
		f, ok := factories[label]
		if !ok {
			t.Errorf("no factory for %v", label)
			continue
		}
		if f() == nil {
			t.Errorf("factory for %v built nil entity", label)
		}
	}

	if _, ok := factories[gesture.Idle]; ok {
		t.Error("idle must not have a factory")
	}
}
