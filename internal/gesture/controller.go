package gesture

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// Default stability-lock settings.
const (
	// DefaultStabilityFrames is how many consecutive identical raw
	// classifications a gesture must hold before it is confirmed. Six frames
	// is roughly 100 ms at 60 FPS, enough to filter flicker.
	DefaultStabilityFrames = 6

	// DefaultCooldown is the minimum wall-clock interval between any two
	// confirmed gesture switches.
	DefaultCooldown = 350 * time.Millisecond
)

// Config holds the tuning constants for a Controller.
type Config struct {
	// Tolerance is the finger extension tolerance in normalized units.
	Tolerance float64

	// StabilityFrames is the consecutive-frame threshold for confirmation.
	StabilityFrames int

	// Cooldown is the minimum interval between confirmed switches. It is
	// measured against the wall clock, not accumulated frame deltas, so a
	// stalled or throttled render loop cannot bypass it.
	Cooldown time.Duration

	// Now supplies the wall clock; tests inject a fake. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the standard controller tuning.
func DefaultConfig() Config {
	return Config{
		Tolerance:       DefaultTolerance,
		StabilityFrames: DefaultStabilityFrames,
		Cooldown:        DefaultCooldown,
	}
}

// Controller is the gesture FSM with a hard stability lock.
//
// Rules:
//   - A raw gesture must be seen for StabilityFrames consecutive frames
//     before it is considered confirmed.
//   - A confirmed gesture is only emitted if it differs from the gesture
//     currently owning the scene.
//   - Idle frames and tracking dropouts are never actionable and never clear
//     the active gesture.
//   - Cooldown suppresses rapid oscillation between two stable poses.
//
// One confirmed switch is emitted per qualifying transition; every other
// Update returns Idle, which consumers treat as "do nothing".
type Controller struct {
	cfg        Config
	held       Label
	holdFrames int
	active     Label
	lastSwitch time.Time
	frames     uint64
}

// NewController creates a Controller with the given config. Zero fields fall
// back to the defaults.
func NewController(cfg Config) *Controller {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}
	if cfg.StabilityFrames <= 0 {
		cfg.StabilityFrames = DefaultStabilityFrames
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller{
		cfg:  cfg,
		held: Idle,
	}
}

// Update feeds one frame of landmarks (nil or short-measure sets mean no
// hand) and returns the confirmed switch label, or Idle when nothing
// actionable happened. dt is accepted for interface symmetry with the rest of
// the pipeline; confirmation counts frames and cooldown reads the wall clock.
func (c *Controller) Update(lm []detector.Point3D, dt float64) Label {
	c.frames++

	// No hand or malformed set: emit Idle but keep the hold counter. A brief
	// tracking dropout must not erase accumulated stability.
	if len(lm) != detector.NumLandmarks {
		return Idle
	}

	raw := Classify(ReadFingers(lm, c.cfg.Tolerance))

	if raw == c.held {
		c.holdFrames++
	} else {
		c.held = raw
		c.holdFrames = 1
	}

	// Idle is never held toward confirmation.
	if raw == Idle {
		return Idle
	}

	if c.holdFrames < c.cfg.StabilityFrames {
		return Idle
	}

	// Re-affirming the gesture already on screen is not an event.
	if raw == c.active {
		return Idle
	}

	now := c.cfg.Now()
	if now.Sub(c.lastSwitch) < c.cfg.Cooldown {
		return Idle
	}

	// Confirmed: new, stable, different gesture.
	c.lastSwitch = now
	c.active = raw
	return raw
}

// Active returns the gesture currently credited with owning the scene.
func (c *Controller) Active() Label {
	return c.active
}

// SetActive informs the controller what gesture actually owns the displayed
// entity. The scene controller calls this after a spawn so the two components
// stay synchronized.
func (c *Controller) SetActive(label Label) {
	c.active = label
}

// Tolerance returns the configured finger extension tolerance.
func (c *Controller) Tolerance() float64 {
	return c.cfg.Tolerance
}

// Frames returns the number of frames processed, for diagnostics.
func (c *Controller) Frames() uint64 {
	return c.frames
}
