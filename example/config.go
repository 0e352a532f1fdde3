package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	gui "github.com/go-theft-auto/pixelgui"
)

// Backends the demo can run on.
const (
	backendOpenGL   = "opengl"
	backendTerminal = "terminal"
)

// Config is the demo configuration file.
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Theme   string `yaml:"theme"`   // "light" or "dark"
	Backend string `yaml:"backend"` // "opengl" or "terminal"
	FPS     int    `yaml:"fps"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:   400,
		Height:  300,
		Title:   "pixelgui demo",
		Theme:   "dark",
		Backend: backendOpenGL,
		FPS:     10,
	}
}

// LoadConfig reads a YAML config from path on top of the defaults. An empty
// path or a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field has a usable value.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", c.FPS)
	}
	switch c.Backend {
	case backendOpenGL, backendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if _, err := gui.ThemeByName(c.Theme); err != nil {
		return err
	}
	return nil
}
