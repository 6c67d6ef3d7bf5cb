// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/virelay/embedview/surface"
)

// DefaultPointSize is the default point diameter in screen pixels.
// Point size is constant in screen space (not attenuated by zoom) so
// hover hit-testing thresholds keep their apparent size.
const DefaultPointSize = 8

// rubberBandColor is the rubber-band rectangle outline color.
var rubberBandColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// Options configures renderer creation.
type Options struct {
	// Width and Height are the initial surface size in pixels.
	Width  int
	Height int

	// Backend selects a surface backend by name.
	// Empty selects the best available backend.
	Backend string

	// Background is the clear color. Nil means opaque black.
	Background color.Color

	// PointSize is the point diameter in screen pixels.
	// Zero means DefaultPointSize.
	PointSize float64
}

// Renderer owns the render surface and the point-cloud primitive and
// drives the continuous redraw loop. All mutation of the cloud's
// color buffer flows through SetColor, keeping the in-place buffer
// behind a single synchronous mutator.
type Renderer struct {
	mu sync.Mutex

	surf      surface.Surface
	cloud     *PointCloud
	view      surface.Affine
	band      *surface.Rect
	bg        color.Color
	pointSize float64

	cancelFrame func()
	running     bool
	closed      bool
}

// New creates a renderer, acquiring a surface from the backend
// registry. If no backend can be acquired (for example, no GPU and no
// software fallback registered) the error is returned to the caller;
// a viewer must fail loudly rather than show a silent blank view.
func New(opts Options) (*Renderer, error) {
	sopts := surface.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: opts.Background,
	}

	var (
		surf surface.Surface
		err  error
	)
	if opts.Backend != "" {
		surf, err = surface.NewSurfaceByName(opts.Backend, sopts)
	} else {
		surf, err = surface.NewSurfaceWithOptions(sopts)
	}
	if err != nil {
		return nil, fmt.Errorf("render: acquire surface: %w", err)
	}

	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	size := opts.PointSize
	if size <= 0 {
		size = DefaultPointSize
	}

	return &Renderer{
		surf:      surf,
		view:      surface.IdentityAffine(),
		bg:        bg,
		pointSize: size,
	}, nil
}

// SetCloud replaces the point-cloud primitive. A nil cloud renders an
// empty view.
func (r *Renderer) SetCloud(c *PointCloud) {
	r.mu.Lock()
	r.cloud = c
	r.mu.Unlock()
}

// Cloud returns the current point-cloud primitive, which may be nil.
func (r *Renderer) Cloud() *PointCloud {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cloud
}

// SetView sets the world-to-screen transform used for subsequent
// frames.
func (r *Renderer) SetView(a surface.Affine) {
	r.mu.Lock()
	r.view = a
	r.mu.Unlock()
}

// SetRubberBand sets the screen-space selection rectangle overlay.
// Nil hides it.
func (r *Renderer) SetRubberBand(rect *surface.Rect) {
	r.mu.Lock()
	if rect == nil {
		r.band = nil
	} else {
		cp := *rect
		r.band = &cp
	}
	r.mu.Unlock()
}

// SetColor updates the rendered color of point i in place.
func (r *Renderer) SetColor(i int, red, green, blue float64) {
	r.mu.Lock()
	if r.cloud != nil && i >= 0 && i < r.cloud.Len() {
		r.cloud.SetColor(i, red, green, blue)
	}
	r.mu.Unlock()
}

// Color returns the currently rendered color of point i.
func (r *Renderer) Color(i int) (red, green, blue float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cloud == nil || i < 0 || i >= r.cloud.Len() {
		return 0, 0, 0
	}
	return r.cloud.Color(i)
}

// Frame paints one frame: clear, point batch, rubber-band overlay,
// flush.
func (r *Renderer) Frame() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	surf := r.surf
	cloud := r.cloud
	view := r.view
	band := r.band
	bg := r.bg
	size := r.pointSize
	r.mu.Unlock()

	surf.Clear(bg)
	if cloud != nil && cloud.Len() > 0 {
		positions, colors := cloud.Buffers()
		surf.DrawPoints(&surface.PointBatch{
			Positions: positions,
			Colors:    colors,
			Transform: view,
			Size:      size,
		})
	}
	if band != nil {
		surf.StrokeRect(*band, rubberBandColor)
	}
	return surf.Flush()
}

// Start begins the continuous redraw loop on the given scheduler.
// Each paint requests the next frame; Stop cancels the pending
// request. Starting an already running renderer is a no-op.
func (r *Renderer) Start(s FrameScheduler) {
	r.mu.Lock()
	if r.running || r.closed {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	r.requestNext(s)
}

func (r *Renderer) requestNext(s FrameScheduler) {
	r.mu.Lock()
	if !r.running || r.closed {
		r.mu.Unlock()
		return
	}
	r.cancelFrame = s.RequestFrame(func(time.Time) {
		if err := r.Frame(); err != nil {
			slogger().Warn("frame paint failed", "error", err)
		}
		r.requestNext(s)
	})
	r.mu.Unlock()
}

// Stop halts the redraw loop, cancelling the pending frame request so
// no callback fires after teardown.
func (r *Renderer) Stop() {
	r.mu.Lock()
	r.running = false
	cancel := r.cancelFrame
	r.cancelFrame = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Resize updates the surface size. The caller (resize reactor) is
// responsible for updating the camera frustum to match; the renderer
// touches nothing else.
func (r *Renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	return r.surf.Resize(width, height)
}

// Surface returns the underlying surface, e.g. for snapshots.
func (r *Renderer) Surface() surface.Surface {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surf
}

// Close stops the loop and releases the surface. Idempotent.
func (r *Renderer) Close() error {
	r.Stop()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	surf := r.surf
	r.mu.Unlock()

	return surf.Close()
}
