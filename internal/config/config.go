// Package config loads simulator settings from a JSON file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"parking-sim/internal/logging"
	"parking-sim/internal/physics"
)

// Environment variables applied on top of the file configuration.
const (
	EnvSaveDir          = "PARKSIM_SAVE_DIR"
	EnvSpeedFactor      = "PARKSIM_SPEED_FACTOR"
	EnvFrameIndependent = "PARKSIM_FRAME_INDEPENDENT"
	EnvLogLevel         = logging.EnvLevel
)

// Speed factor range offered by the control panel.
const (
	MinSpeedFactor = 1.0
	MaxSpeedFactor = 5.0
	MaxSlots       = 9
)

// Config contains everything the simulator reads at startup.
type Config struct {
	Canvas  CanvasConfig    `json:"canvas"`
	Car     CarConfig       `json:"car"`
	Physics PhysicsConfig   `json:"physics"`
	Walls   WallsConfig     `json:"walls"`
	Save    SaveSlotsConfig `json:"save"`
	Logging LoggingConfig   `json:"logging"`
}

// CanvasConfig sizes the drivable area in pixels.
type CanvasConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CarConfig describes the car body and control rates.
type CarConfig struct {
	Width          float64 `json:"width"`
	Length         float64 `json:"length"`
	WheelbaseRatio float64 `json:"wheelbaseRatio"`
	Acceleration   float64 `json:"acceleration"`
	Friction       float64 `json:"friction"`
	SteerRate      float64 `json:"steerRate"`
	MaxSteerAngle  float64 `json:"maxSteerAngle"`
	MaxSpeed       float64 `json:"maxSpeed"`
}

// PhysicsConfig holds simulation options.
type PhysicsConfig struct {
	SpeedFactor      float64 `json:"speedFactor"`
	FrameIndependent bool    `json:"frameIndependent"`
}

// WallsConfig controls random wall generation.
type WallsConfig struct {
	RandomCount int     `json:"randomCount"`
	Padding     float64 `json:"padding"`
}

// SaveSlotsConfig locates the save slots.
type SaveSlotsConfig struct {
	Dir   string `json:"dir"`
	Slots int    `json:"slots"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

// DefaultConfig returns the standard 800x800 practice lot.
func DefaultConfig() *Config {
	p := physics.DefaultParams()
	return &Config{
		Canvas: CanvasConfig{Width: 800, Height: 800},
		Car: CarConfig{
			Width:          p.Width,
			Length:         p.Length,
			WheelbaseRatio: 0.8,
			Acceleration:   p.Acceleration,
			Friction:       p.Friction,
			SteerRate:      p.SteerRate,
			MaxSteerAngle:  p.MaxSteerAngle,
			MaxSpeed:       p.MaxSpeed,
		},
		Physics: PhysicsConfig{SpeedFactor: 1},
		Walls:   WallsConfig{RandomCount: 5, Padding: 50},
		Save:    SaveSlotsConfig{Dir: "saves", Slots: 3},
		Logging: LoggingConfig{Level: "INFO"},
	}
}

// LoadConfig reads a configuration file. Fields missing from the file keep
// their default values. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as indented JSON.
func SaveConfig(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnvironmentOverrides replaces settings with any PARKSIM_* variables set.
func ApplyEnvironmentOverrides(cfg *Config) error {
	if v := os.Getenv(EnvSaveDir); v != "" {
		cfg.Save.Dir = v
	}
	if v := os.Getenv(EnvSpeedFactor); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSpeedFactor, err)
		}
		cfg.Physics.SpeedFactor = f
	}
	if v := os.Getenv(EnvFrameIndependent); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFrameIndependent, err)
		}
		cfg.Physics.FrameIndependent = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks that the configuration describes a drivable lot.
func (c *Config) Validate() error {
	var errs []string

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, "canvas dimensions must be positive")
	}
	car := c.Car
	if car.Width <= 0 || car.Length <= 0 {
		errs = append(errs, "car dimensions must be positive")
	}
	if car.Width >= c.Canvas.Width || car.Length >= c.Canvas.Height {
		errs = append(errs, "car must fit on the canvas")
	}
	if car.WheelbaseRatio <= 0 || car.WheelbaseRatio > 1 {
		errs = append(errs, "car wheelbaseRatio must be in (0, 1]")
	}
	if car.Acceleration <= 0 || car.Friction < 0 || car.SteerRate <= 0 || car.MaxSpeed <= 0 {
		errs = append(errs, "car control rates must be positive")
	}
	if car.MaxSteerAngle <= 0 || car.MaxSteerAngle >= 1.5 {
		errs = append(errs, "car maxSteerAngle must be in (0, 1.5)")
	}
	if c.Physics.SpeedFactor < MinSpeedFactor || c.Physics.SpeedFactor > MaxSpeedFactor {
		errs = append(errs, fmt.Sprintf("physics speedFactor must be between %g and %g", MinSpeedFactor, MaxSpeedFactor))
	}
	if c.Walls.RandomCount < 0 {
		errs = append(errs, "walls randomCount cannot be negative")
	}
	if c.Walls.Padding < 0 || 2*c.Walls.Padding >= c.Canvas.Width || 2*c.Walls.Padding >= c.Canvas.Height {
		errs = append(errs, "walls padding must leave room on the canvas")
	}
	if c.Save.Dir == "" {
		errs = append(errs, "save dir is required")
	}
	if c.Save.Slots < 1 || c.Save.Slots > MaxSlots {
		errs = append(errs, fmt.Sprintf("save slots must be between 1 and %d", MaxSlots))
	}
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// CarParams returns the vehicle parameters at speed factor 1. The factor is
// applied by the simulation so it can change at runtime.
func (c *Config) CarParams() physics.Params {
	return physics.Params{
		Width:            c.Car.Width,
		Length:           c.Car.Length,
		Wheelbase:        c.Car.Length * c.Car.WheelbaseRatio,
		Acceleration:     c.Car.Acceleration,
		Friction:         c.Car.Friction,
		SteerRate:        c.Car.SteerRate,
		MaxSteerAngle:    c.Car.MaxSteerAngle,
		MaxSpeed:         c.Car.MaxSpeed,
		FrameIndependent: c.Physics.FrameIndependent,
	}
}

// Bounds returns the canvas as collision bounds.
func (c *Config) Bounds() physics.Bounds {
	return physics.Bounds{Width: c.Canvas.Width, Height: c.Canvas.Height}
}
