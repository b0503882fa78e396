// Package config holds the settings of the event gate tools. Settings are
// loaded from a JSON file on top of defaults so a file only has to name the
// values it changes.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/eventgate/internal/core/gate"
	"chosenoffset.com/eventgate/internal/core/trail"
)

// Config holds every setting of the visualizer and the terminal frontend.
type Config struct {
	Window   WindowConfig   `json:"window"`
	Gate     GateConfig     `json:"gate"`
	Overlay  OverlayConfig  `json:"overlay"`
	Trail    TrailConfig    `json:"trail"`
	Snapshot SnapshotConfig `json:"snapshot"`
	Terminal TerminalConfig `json:"terminal"`
}

// WindowConfig defines the canvas the gate lives on.
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// GateConfig is the initial gate.
type GateConfig struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Width int `json:"width"`
	Alpha int `json:"alpha"`
}

// OverlayConfig toggles the classification grid and the trail drawing.
type OverlayConfig struct {
	DrawGrid   bool `json:"draw_grid"`
	DrawShadow bool `json:"draw_shadow"`
	GridPoints int  `json:"grid_points"` // Lattice points per axis
}

// TrailConfig sizes the point history.
type TrailConfig struct {
	Capacity   int `json:"capacity"`
	PickMargin int `json:"pick_margin"` // Pixels around a click that select a point
}

// SnapshotConfig controls PNG export.
type SnapshotConfig struct {
	Path   string `json:"path"`
	Unique bool   `json:"unique"` // Add a random id to every file name
}

// TerminalConfig controls the terminal frontend.
type TerminalConfig struct {
	Chime       bool    `json:"chime"`
	ChimeHz     float64 `json:"chime_hz"`
	ChimeMillis int     `json:"chime_millis"`
	TickMillis  int     `json:"tick_millis"`
}

// DefaultConfig returns a 1000x500 canvas with a horizontal gate in the middle.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 500,
			Title:  "DISPLAY",
		},
		Gate: GateConfig{
			X:     500,
			Y:     250,
			Width: 200,
			Alpha: 0,
		},
		Overlay: OverlayConfig{
			DrawGrid:   true,
			DrawShadow: true,
			GridPoints: 10,
		},
		Trail: TrailConfig{
			Capacity:   trail.DefaultCapacity,
			PickMargin: 5,
		},
		Snapshot: SnapshotConfig{
			Path: "eventgate.png",
		},
		Terminal: TerminalConfig{
			Chime:       true,
			ChimeHz:     880,
			ChimeMillis: 50,
			TickMillis:  16,
		},
	}
}

// LoadConfig loads settings from a JSON file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the settings and the initial gate.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Overlay.GridPoints < 0 {
		errs = append(errs, fmt.Errorf("grid_points %d must not be negative", c.Overlay.GridPoints))
	}
	if c.Trail.Capacity < 1 {
		errs = append(errs, fmt.Errorf("trail capacity %d must be at least 1", c.Trail.Capacity))
	}
	if c.Trail.PickMargin < 0 {
		errs = append(errs, fmt.Errorf("pick_margin %d must not be negative", c.Trail.PickMargin))
	}
	if c.Terminal.ChimeHz <= 0 || c.Terminal.ChimeMillis <= 0 || c.Terminal.TickMillis <= 0 {
		errs = append(errs, errors.New("terminal chime_hz, chime_millis and tick_millis must be positive"))
	}
	if _, err := c.NewGate(); err != nil {
		errs = append(errs, fmt.Errorf("gate: %w", err))
	}
	return errors.Join(errs...)
}

// NewGate builds the configured initial gate.
func (c *Config) NewGate() (*gate.Gate, error) {
	return gate.New(c.Gate.X, c.Gate.Y, c.Gate.Width, c.Gate.Alpha)
}

// NewTrail builds an empty trail of the configured capacity.
func (c *Config) NewTrail() *trail.Trail {
	return trail.New(c.Trail.Capacity)
}
