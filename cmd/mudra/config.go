package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
)

// Config is the top-level YAML configuration for mudra. Defaults and
// validation are centralized here so the rest of the code can assume a
// well-formed config.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Detector DetectorConfig `yaml:"detector"`
	Gesture  GestureConfig  `yaml:"gesture"`
	Window   WindowConfig   `yaml:"window"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Headless bool           `yaml:"headless"`
}

type CameraConfig struct {
	Device          int     `yaml:"device"`
	MotionThreshold float64 `yaml:"motion_threshold"`
}

type DetectorConfig struct {
	MaxHands               int     `yaml:"max_hands"`
	MinDetectionConfidence float64 `yaml:"min_detection_confidence"`
	MinTrackingConfidence  float64 `yaml:"min_tracking_confidence"`
}

type GestureConfig struct {
	Tolerance       float64 `yaml:"tolerance"`
	StabilityFrames int     `yaml:"stability_frames"`
	CooldownMS      int     `yaml:"cooldown_ms"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FOV    float64 `yaml:"fov"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			Device:          0,
			MotionThreshold: 1.0,
		},
		Detector: DetectorConfig{
			MaxHands:               1,
			MinDetectionConfidence: 0.8,
			MinTrackingConfidence:  0.5,
		},
		Gesture: GestureConfig{
			Tolerance:       gesture.DefaultTolerance,
			StabilityFrames: gesture.DefaultStabilityFrames,
			CooldownMS:      int(gesture.DefaultCooldown / time.Millisecond),
		},
		Window: WindowConfig{
			Title:  "Mudra",
			Width:  1280,
			Height: 720,
			FOV:    render.DefaultFOV,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// LoadConfig reads the YAML config at path, filling unset fields from the
// defaults. A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Gesture.Tolerance < 0 {
		return fmt.Errorf("gesture.tolerance must not be negative")
	}
	if c.Gesture.StabilityFrames < 1 {
		return fmt.Errorf("gesture.stability_frames must be at least 1")
	}
	if c.Gesture.CooldownMS < 0 {
		return fmt.Errorf("gesture.cooldown_ms must not be negative")
	}
	if c.Window.FOV <= 0 || c.Window.FOV >= 180 {
		return fmt.Errorf("window.fov must be between 0 and 180")
	}
	return nil
}

// GestureSettings converts the config section into the controller config.
func (c *Config) GestureSettings() gesture.Config {
	cfg := gesture.DefaultConfig()
	if c.Gesture.Tolerance > 0 {
		cfg.Tolerance = c.Gesture.Tolerance
	}
	if c.Gesture.StabilityFrames > 0 {
		cfg.StabilityFrames = c.Gesture.StabilityFrames
	}
	if c.Gesture.CooldownMS > 0 {
		cfg.Cooldown = time.Duration(c.Gesture.CooldownMS) * time.Millisecond
	}
	return cfg
}

// DetectorSettings converts the config section into the detector config.
func (c *Config) DetectorSettings() detector.Config {
	cfg := detector.DefaultConfig()
	if c.Detector.MaxHands > 0 {
		cfg.MaxHands = c.Detector.MaxHands
	}
	if c.Detector.MinDetectionConfidence > 0 {
		cfg.MinConfidence = c.Detector.MinDetectionConfidence
	}
	if c.Detector.MinTrackingConfidence > 0 {
		cfg.MinTrackingConf = c.Detector.MinTrackingConfidence
	}
	return cfg
}
