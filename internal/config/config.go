// Package config loads render settings from JSON with CLI flag overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"skelwalk/internal/geometry"
	"skelwalk/internal/walk"
)

// Config holds settings for the offline renderer.
type Config struct {
	OutputDir   string `json:"output_dir"`
	Format      string `json:"format"` // "webp" or "tga"
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	FPS         int    `json:"fps"`
	Frames      int    `json:"frames"`
	Stacks      int    `json:"stacks"`
	Slices      int    `json:"slices"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Size      int
	FPS       int
	Frames    int
	Workers   int
}

// Resolve applies CLI overrides and fills remaining fields with defaults.
// The default frame count covers exactly one walk period at the frame rate.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Frames <= 0 {
		c.Frames = int(float64(c.FPS)*walk.Period + 0.5)
	}
	if c.Stacks <= 0 {
		c.Stacks = geometry.DefaultStacks
	}
	if c.Slices <= 0 {
		c.Slices = geometry.DefaultSlices
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
