// Package config provides the application settings.
// Settings are loaded from an optional JSON file layered over defaults.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"

	"chosenoffset.com/thickline/internal/core/geometry"
	"chosenoffset.com/thickline/internal/core/polyline"
)

// Config holds all application settings
type Config struct {
	Window WindowConfig `json:"window"`
	Scene  SceneConfig  `json:"scene"`
	Input  InputConfig  `json:"input"`

	// ShaderPath overrides the built-in shader when set
	ShaderPath string `json:"shader_path"`

	// ExportDir is where PDF exports are written
	ExportDir string `json:"export_dir"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// SceneConfig defines colors and the starting polyline
type SceneConfig struct {
	Background string          `json:"background"` // Color name or #rrggbb
	Foreground string          `json:"foreground"`
	Seed       []SegmentConfig `json:"seed"`
}

// SegmentConfig is one seed segment
type SegmentConfig struct {
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
	Width float64    `json:"width"`
}

// InputConfig defines the control panel defaults
type InputConfig struct {
	InitialWidth string `json:"initial_width"` // Text pre-filled in the width field
	RandomSeed   int64  `json:"random_seed"`   // 0 means seed from the clock
}

// DefaultConfig returns the settings used when no file is present
func DefaultConfig() *Config {
	seed := polyline.DefaultSeed()
	segs := make([]SegmentConfig, len(seed))
	for i, s := range seed {
		segs[i] = SegmentConfig{
			Start: [2]float64{s.Start.X, s.Start.Y},
			End:   [2]float64{s.End.X, s.End.Y},
			Width: s.Width,
		}
	}

	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Thick Lines",
			Resizable: true,
		},
		Scene: SceneConfig{
			Background: "white",
			Foreground: "black",
			Seed:       segs,
		},
		Input: InputConfig{
			InitialWidth: "2",
		},
		ExportDir: ".",
	}
}

// LoadConfig loads settings from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", config.Window.Width, config.Window.Height)
	}

	return config, nil
}

// SeedSegments converts the seed into polyline segments
func (c *Config) SeedSegments() []polyline.Segment {
	segs := make([]polyline.Segment, len(c.Scene.Seed))
	for i, s := range c.Scene.Seed {
		segs[i] = polyline.Segment{
			Start: geometry.Point{X: s.Start[0], Y: s.Start[1]},
			End:   geometry.Point{X: s.End[0], Y: s.End[1]},
			Width: s.Width,
		}
	}
	return segs
}

// BackgroundColor returns the parsed scene background
func (c *Config) BackgroundColor() color.Color {
	return ParseColor(c.Scene.Background, color.White)
}

// ForegroundColor returns the parsed line color
func (c *Config) ForegroundColor() color.Color {
	return ParseColor(c.Scene.Foreground, color.Black)
}

// ParseColor parses a color name or #rrggbb hex string, returning fallback
// when s is not recognized.
func ParseColor(s string, fallback color.Color) color.Color {
	// Handle common color names
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return color.RGBA{0, 0, 0, 255}
	case "white":
		return color.RGBA{255, 255, 255, 255}
	case "red":
		return color.RGBA{255, 0, 0, 255}
	case "green":
		return color.RGBA{0, 255, 0, 255}
	case "blue":
		return color.RGBA{0, 0, 255, 255}
	case "gray", "grey":
		return color.RGBA{128, 128, 128, 255}
	}

	// Try to parse as hex
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return fallback
}
