package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the viewer parameters of the demo command.
type Config struct {
	Width     int     `koanf:"width"`
	Height    int     `koanf:"height"`
	Backend   string  `koanf:"backend"`
	PointSize float64 `koanf:"point_size"`
	MinZoom   float64 `koanf:"min_zoom"`
	MaxZoom   float64 `koanf:"max_zoom"`

	// HoverDebounceMS is the hover debounce window in milliseconds.
	HoverDebounceMS int `koanf:"hover_debounce_ms"`
}

// DefaultConfig returns the default demo configuration.
func DefaultConfig() *Config {
	return &Config{
		Width:           800,
		Height:          600,
		MinZoom:         0.1,
		MaxZoom:         50,
		HoverDebounceMS: 500,
	}
}

// LoadConfig reads configuration from the given YAML file, then
// overlays environment variable overrides (EMBEDVIEW_*).
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// Overlay environment variables: EMBEDVIEW_WIDTH -> width, etc.
	if err := k.Load(env.Provider("EMBEDVIEW_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "EMBEDVIEW_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
