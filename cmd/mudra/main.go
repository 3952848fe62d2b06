package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to YAML config file")
	headless := flag.Bool("headless", false, "run without a window (tray + HTTP API only)")
	flag.Parse()

	fmt.Println("Mudra - Gesture-Driven Procedural Visuals")

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *headless {
		cfg.Headless = true
	}

	st, err := openStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.New(app.Config{
		Store:        st,
		CameraID:     cfg.Camera.Device,
		MotionThresh: cfg.Camera.MotionThreshold,
		Gesture:      cfg.GestureSettings(),
		Detector:     cfg.DetectorSettings(),
	})

	if cfg.Server.Addr != "" {
		srv := server.New(server.Config{
			Store: st,
			State: a,
		})
		go func() {
			log.Printf("API server listening on %s", cfg.Server.Addr)
			if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
				log.Printf("Server failed: %v", err)
			}
		}()
	}

	if cfg.Headless {
		runHeadless(a)
		return
	}
	runWindowed(cfg, a)
}

// runWindowed drives the pipeline from the window's frame loop: one tick per
// display frame, then the scene is drawn through the projecting canvas.
func runWindowed(cfg Config, a *app.App) {
	if err := a.Camera().Open(); err != nil {
		log.Printf("Camera unavailable (%v); running with no hand input", err)
	}
	defer a.Close()

	window := render.NewWindow(render.WindowConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		FOV:    cfg.Window.FOV,
	}, func(dt float64) error {
		a.Tick(dt)
		return nil
	}, func(c render.Canvas) {
		a.Scene().Draw(c)
	})

	if err := window.Run(); err != nil {
		log.Fatalf("Window failed: %v", err)
	}
}

// runHeadless keeps the pipeline in a background loop and gives the main
// goroutine to the system tray, which requires it on some platforms.
func runHeadless(a *app.App) {
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}

	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnQuit(a.Stop)
	a.OnSwitch(func(label gesture.Label) {
		t.SetActiveGesture(string(label))
	})

	t.Run()
}

// openStore opens the sqlite store, defaulting to ~/.mudra/mudra.db.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir := filepath.Join(homeDir, ".mudra")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		path = filepath.Join(dir, "mudra.db")
	}
	return store.New(path)
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "mudra.yaml"
	}
	return filepath.Join(homeDir, ".mudra", "config.yaml")
}
