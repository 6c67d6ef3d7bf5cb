package embedview

import (
	"image/color"
	"time"
)

// Default interaction parameters.
const (
	// DefaultMinZoom and DefaultMaxZoom bound the camera zoom factor.
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 50.0

	// DefaultHoverThreshold is the hover catch radius in screen
	// pixels. The effective world-space radius is this divided by the
	// current zoom, so the hit target keeps a constant apparent size.
	DefaultHoverThreshold = 8.0
)

// Option configures a Viewer during creation.
//
// Example:
//
//	v, err := embedview.New(800, 600,
//	    embedview.WithZoomBounds(0.5, 20),
//	    embedview.WithHoverDebounce(250*time.Millisecond))
type Option func(*config)

// config holds optional configuration for Viewer creation.
type config struct {
	minZoom, maxZoom float64
	pointSize        float64
	hoverThreshold   float64
	hoverDebounce    time.Duration
	background       color.Color
	backend          string
	canSelect        bool
}

// defaultConfig returns the default viewer configuration.
func defaultConfig() config {
	return config{
		minZoom:        DefaultMinZoom,
		maxZoom:        DefaultMaxZoom,
		hoverThreshold: DefaultHoverThreshold,
		hoverDebounce:  DefaultHoverDebounce,
		canSelect:      true,
	}
}

// WithZoomBounds sets the [min, max] range the zoom factor is clamped
// to. Values outside the range clamp rather than error.
func WithZoomBounds(minZoom, maxZoom float64) Option {
	return func(c *config) {
		c.minZoom = minZoom
		c.maxZoom = maxZoom
	}
}

// WithPointSize sets the rendered point diameter in screen pixels.
func WithPointSize(px float64) Option {
	return func(c *config) {
		c.pointSize = px
	}
}

// WithHoverThreshold sets the hover catch radius in screen pixels.
func WithHoverThreshold(px float64) Option {
	return func(c *config) {
		c.hoverThreshold = px
	}
}

// WithHoverDebounce sets the delay before hover events are delivered.
// A new hover within the window supersedes the pending one
// (switch-latest); unhover is always immediate. Zero or negative
// delivers hover synchronously.
func WithHoverDebounce(d time.Duration) Option {
	return func(c *config) {
		c.hoverDebounce = d
	}
}

// WithBackground sets the clear color of the render surface.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		cfg.background = c
	}
}

// WithSurfaceBackend selects a surface backend by registry name
// instead of automatic priority-based selection.
func WithSurfaceBackend(name string) Option {
	return func(c *config) {
		c.backend = name
	}
}

// WithCanSelect gates rubber-band selection. Hosts disable it while a
// previous selection's attributions are still being fetched.
func WithCanSelect(can bool) Option {
	return func(c *config) {
		c.canSelect = can
	}
}
