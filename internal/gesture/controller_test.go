package gesture

import (
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// fakeClock is an injectable wall clock for cooldown tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newTestController(clk *fakeClock) *Controller {
	cfg := DefaultConfig()
	cfg.Now = clk.Now
	return NewController(cfg)
}

// feed runs the same landmarks through n Update calls and returns the emitted
// labels.
func feed(c *Controller, lm []detector.Point3D, n int) []Label {
	out := make([]Label, n)
	for i := range out {
		out[i] = c.Update(lm, 1.0/60)
	}
	return out
}

func TestControllerDebounce(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points

	// One frame short of the stability threshold: nothing confirmed.
	for i, got := range feed(c, open, DefaultStabilityFrames-1) {
		if got != Idle {
			t.Errorf("frame %d: got %v, want %v", i+1, got, Idle)
		}
	}
	if c.Active() != Idle {
		t.Errorf("active = %v before confirmation, want %v", c.Active(), Idle)
	}

	// The threshold frame confirms.
	if got := c.Update(open, 1.0/60); got != OpenPalm {
		t.Errorf("threshold frame: got %v, want %v", got, OpenPalm)
	}
	if c.Active() != OpenPalm {
		t.Errorf("active = %v after confirmation, want %v", c.Active(), OpenPalm)
	}
}

func TestControllerNoSelfReconfirmation(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points

	feed(c, open, DefaultStabilityFrames)

	// Holding the same pose forever emits nothing further, even with the
	// cooldown long expired.
	clk.Advance(10 * time.Second)
	for i, got := range feed(c, open, 120) {
		if got != Idle {
			t.Fatalf("held frame %d: got %v, want %v", i+1, got, Idle)
		}
	}
}

func TestControllerCooldown(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points
	fist := detector.FistHand().Points

	if got := feed(c, open, DefaultStabilityFrames); got[len(got)-1] != OpenPalm {
		t.Fatalf("setup: open palm not confirmed, got %v", got)
	}

	// A second pose becomes stable inside the cooldown window: suppressed.
	clk.Advance(DefaultCooldown - 50*time.Millisecond)
	for i, got := range feed(c, fist, DefaultStabilityFrames+5) {
		if got != Idle {
			t.Errorf("cooldown frame %d: got %v, want %v", i+1, got, Idle)
		}
	}
	if c.Active() != OpenPalm {
		t.Errorf("active = %v during cooldown, want %v", c.Active(), OpenPalm)
	}

	// Once the cooldown elapses the still-held pose confirms on the next
	// frame; no re-accumulation is required.
	clk.Advance(100 * time.Millisecond)
	if got := c.Update(fist, 1.0/60); got != Fist {
		t.Errorf("post-cooldown frame: got %v, want %v", got, Fist)
	}
	if c.Active() != Fist {
		t.Errorf("active = %v, want %v", c.Active(), Fist)
	}
}

func TestControllerCooldownBoundary(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points
	fist := detector.FistHand().Points

	feed(c, open, DefaultStabilityFrames)
	feed(c, fist, DefaultStabilityFrames-1)

	// Exactly at the cooldown interval the switch is allowed.
	clk.Advance(DefaultCooldown)
	if got := c.Update(fist, 1.0/60); got != Fist {
		t.Errorf("at-boundary frame: got %v, want %v", got, Fist)
	}
}

func TestControllerDropoutKeepsHold(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points

	tests := []struct {
		name string
		lm   []detector.Point3D
	}{
		{"nil landmarks", nil},
		{"truncated set", detector.PartialHand(10).Points},
		{"oversized set", make([]detector.Point3D, detector.NumLandmarks+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c = newTestController(clk)
			clk.Advance(time.Second)

			feed(c, open, DefaultStabilityFrames-2)

			// A dropout frame emits Idle but must not erase the hold.
			if got := c.Update(tt.lm, 1.0/60); got != Idle {
				t.Fatalf("dropout frame: got %v, want %v", got, Idle)
			}

			// One more open frame reaches the threshold and confirms.
			if got := c.Update(open, 1.0/60); got != Idle {
				t.Errorf("resumed frame: got %v, want %v", got, Idle)
			}
			if got := c.Update(open, 1.0/60); got != OpenPalm {
				t.Errorf("threshold frame after dropout: got %v, want %v", got, OpenPalm)
			}
		})
	}
}

func TestControllerIdlePoseResetsHold(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points

	// A real hand in an unrecognized pose, unlike a dropout, restarts the
	// count.
	idlePose := detector.OpenPalmHand()
	idlePose.Points[detector.RingTip].Y = idlePose.Points[detector.RingPIP].Y - DefaultTolerance*0.75

	feed(c, open, DefaultStabilityFrames-1)
	if got := c.Update(idlePose.Points, 1.0/60); got != Idle {
		t.Fatalf("idle pose: got %v, want %v", got, Idle)
	}

	// The previous accumulation is gone; a full run is needed again.
	labels := feed(c, open, DefaultStabilityFrames)
	for i, got := range labels[:len(labels)-1] {
		if got != Idle {
			t.Errorf("frame %d after reset: got %v, want %v", i+1, got, Idle)
		}
	}
	if got := labels[len(labels)-1]; got != OpenPalm {
		t.Errorf("final frame: got %v, want %v", got, OpenPalm)
	}
}

func TestControllerAlternatingNeverConfirms(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points
	fist := detector.FistHand().Points

	for i := 0; i < 200; i++ {
		lm := open
		if i%2 == 1 {
			lm = fist
		}
		if got := c.Update(lm, 1.0/60); got != Idle {
			t.Fatalf("frame %d: flickering input confirmed %v", i+1, got)
		}
		clk.Advance(16 * time.Millisecond)
	}
}

func TestControllerSetActive(t *testing.T) {
	clk := newFakeClock()
	c := newTestController(clk)
	open := detector.OpenPalmHand().Points

	c.SetActive(OpenPalm)

	// The externally-set owner blocks reconfirmation of the same gesture.
	for i, got := range feed(c, open, DefaultStabilityFrames+10) {
		if got != Idle {
			t.Fatalf("frame %d: got %v, want %v", i+1, got, Idle)
		}
	}

	// A different gesture still switches.
	if got := feed(c, detector.FistHand().Points, DefaultStabilityFrames); got[len(got)-1] != Fist {
		t.Errorf("fist not confirmed against externally set owner, got %v", got)
	}
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController(Config{})

	if c.cfg.Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %v, want %v", c.cfg.Tolerance, DefaultTolerance)
	}
	if c.cfg.StabilityFrames != DefaultStabilityFrames {
		t.Errorf("StabilityFrames = %v, want %v", c.cfg.StabilityFrames, DefaultStabilityFrames)
	}
	if c.cfg.Cooldown != DefaultCooldown {
		t.Errorf("Cooldown = %v, want %v", c.cfg.Cooldown, DefaultCooldown)
	}
	if c.cfg.Now == nil {
		t.Error("Now not defaulted")
	}
}

func TestControllerFrames(t *testing.T) {
	c := NewController(Config{})
	c.Update(nil, 1.0/60)
	c.Update(detector.OpenPalmHand().Points, 1.0/60)
	if got := c.Frames(); got != 2 {
		t.Errorf("Frames() = %d, want 2", got)
	}
}
