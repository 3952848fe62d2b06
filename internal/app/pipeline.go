package app

import (
	"log"
	"time"
)

// Headless pipeline timing constants.
const (
	// IdleFPS is the frame rate while no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 30
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
)

// Start begins the headless detection pipeline. In windowed mode the
// presentation layer drives Tick instead and Start must not be called.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the headless pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	a.mu.Unlock()

	a.Close()
	log.Println("Detection pipeline stopped")
}

// runPipeline is the headless frame loop. Motion detection gates the
// expensive pose estimation: while the view is still, the loop idles at a low
// frame rate and the gesture FSM just sees no-hand frames, which never disturb
// accumulated stability or the active entity.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotion := time.Now()

	frameInterval := time.Second / IdleFPS
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			if !a.IsEnabled() {
				a.step(nil, dt)
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				a.step(nil, dt)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)
			if motionDetected {
				lastMotion = now
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / ActiveFPS
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && now.Sub(lastMotion) > IdleTimeout {
				activeMode = false
				a.camera.SetFPS(IdleFPS)
				frameInterval = time.Second / IdleFPS
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				a.step(nil, dt)
				continue
			}

			hands, derr := a.detector.Detect(frame)
			frame.Close()
			if derr != nil {
				log.Printf("Error detecting hands: %v", derr)
				a.step(nil, dt)
				continue
			}

			if len(hands) > 0 && hands[0].Valid() {
				a.step(hands[0].Points, dt)
			} else {
				a.step(nil, dt)
			}
		}
	}
}
