// Package app wires the mudra pipeline together: camera frames through hand
// detection, gesture classification, the stability lock, and finally the
// single-slot scene.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/scene"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	Gesture      gesture.Config
	Detector     detector.Config
}

// Snapshot is a point-in-time view of the pipeline, served over the HTTP API
// and the websocket feed.
type Snapshot struct {
	Landmarks []detector.Point3D `json:"landmarks,omitempty"`
	Raw       gesture.Label      `json:"raw"`
	Active    gesture.Label      `json:"active"`
	Enabled   bool               `json:"enabled"`
	Timestamp int64              `json:"timestamp"`
}

// App orchestrates the frame pipeline and owns all pipeline state. There is
// exactly one writer, the tick path, so components themselves need no locks;
// the mutex here only guards the enabled flag and the published snapshot.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	controller *gesture.Controller
	scene      *scene.Scene
	factories  map[gesture.Label]scene.Factory

	mu       sync.RWMutex
	enabled  bool
	snapshot Snapshot
	onSwitch func(gesture.Label)
	stopCh   chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}
	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		controller: gesture.NewController(config.Gesture),
		scene:      scene.New(),
		factories:  scene.DefaultFactories(),
		enabled:    true,
	}

	// Try MediaPipe first, fall back to the mock detector so the engine still
	// runs (showing nothing but an empty scene) without the python service.
	if mp, err := detector.NewMediaPipe(config.Detector); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMock()
	}

	// The enabled flag survives restarts.
	if config.Store != nil {
		if v, err := config.Store.Settings().Get(settingEnabled); err == nil {
			a.enabled = v == "true"
		}
	}

	return a
}

// settingEnabled is the settings key persisting the detection toggle.
const settingEnabled = "enabled"

// SetEnabled enables or disables gesture detection. The active entity keeps
// animating either way.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	if a.config.Store != nil {
		v := "false"
		if enabled {
			v = "true"
		}
		if err := a.config.Store.Settings().Set(settingEnabled, v); err != nil {
			log.Printf("failed to persist enabled setting: %v", err)
		}
	}
}

// IsEnabled returns whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// OnSwitch registers a callback invoked on every confirmed gesture switch.
func (a *App) OnSwitch(fn func(gesture.Label)) {
	a.onSwitch = fn
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Scene returns the scene controller.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Snapshot returns the most recently published pipeline state.
func (a *App) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// publishSnapshot stores the current pipeline state for readers.
func (a *App) publishSnapshot(lm []detector.Point3D, raw gesture.Label) {
	a.mu.Lock()
	a.snapshot = Snapshot{
		Landmarks: lm,
		Raw:       raw,
		Active:    a.controller.Active(),
		Enabled:   a.enabled,
		Timestamp: time.Now().UnixMilli(),
	}
	a.mu.Unlock()
}

// step advances the gesture FSM and the scene by one frame. lm may be nil for
// a no-hand frame. It is the single entry point for both the windowed tick
// and the headless pipeline.
func (a *App) step(lm []detector.Point3D, dt float64) {
	var raw gesture.Label = gesture.Idle
	if len(lm) == detector.NumLandmarks {
		raw = gesture.Classify(gesture.ReadFingers(lm, a.controller.Tolerance()))
	}

	confirmed := a.controller.Update(lm, dt)
	if confirmed != gesture.Idle {
		a.handleSwitch(confirmed)
	}

	a.publishSnapshot(lm, raw)
	a.scene.Update(dt)
}

// handleSwitch spawns the entity mapped to a confirmed gesture and records
// the switch. Labels outside the factory table are ignored.
func (a *App) handleSwitch(label gesture.Label) {
	factory, ok := a.factories[label]
	if !ok {
		return
	}

	previous := a.scene.Active()
	if !a.scene.Spawn(label, factory) {
		return
	}
	a.controller.SetActive(label)
	log.Printf("gesture confirmed: %s", label)

	if a.config.Store != nil {
		err := a.config.Store.Events().Insert(&store.Event{
			ID:       uuid.NewString(),
			Label:    string(label),
			Previous: string(previous),
		})
		if err != nil {
			log.Printf("failed to record switch event: %v", err)
		}
	}

	if a.onSwitch != nil {
		a.onSwitch(label)
	}
}

// Tick runs one frame of the full pipeline: frame acquisition, detection,
// classification, possible entity replacement, and animation update. Any
// failure along the way degrades to a no-hand frame; the tick itself never
// fails.
func (a *App) Tick(dt float64) {
	if !a.IsEnabled() {
		a.step(nil, dt)
		return
	}

	var lm []detector.Point3D

	frame, err := a.camera.ReadFrame()
	if err == nil {
		hands, derr := a.detector.Detect(frame)
		frame.Close()
		if derr != nil {
			log.Printf("Error detecting hands: %v", derr)
		} else if len(hands) > 0 && hands[0].Valid() {
			lm = hands[0].Points
		}
	}

	a.step(lm, dt)
}

// Close releases the camera, motion detector, and hand detector.
func (a *App) Close() {
	if err := a.camera.Close(); err != nil && err != capture.ErrCameraNotOpen {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}
}
