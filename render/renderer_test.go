// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/virelay/embedview/surface"
)

// manualScheduler collects frame requests so tests can pump the redraw
// loop one frame at a time.
type manualScheduler struct {
	pending  []func(time.Time)
	canceled int
}

func (s *manualScheduler) RequestFrame(fn func(time.Time)) (cancel func()) {
	i := len(s.pending)
	s.pending = append(s.pending, fn)
	return func() {
		if s.pending[i] != nil {
			s.pending[i] = nil
			s.canceled++
		}
	}
}

// pump fires the most recent frame request.
func (s *manualScheduler) pump(t *testing.T) {
	t.Helper()
	if len(s.pending) == 0 {
		t.Fatal("no frame requested")
	}
	fn := s.pending[len(s.pending)-1]
	if fn == nil {
		t.Fatal("latest frame request was canceled")
	}
	fn(time.Now())
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Options{Width: 100, Height: 100, Backend: "image"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRendererFramePaintsPoints(t *testing.T) {
	r := newTestRenderer(t)

	cloud := NewPointCloud(1)
	cloud.SetPosition(0, 50, 50)
	cloud.SetColor(0, 1, 0, 0)
	r.SetCloud(cloud)
	r.SetView(surface.IdentityAffine())

	if err := r.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	img := r.Surface().Snapshot()
	if got := img.RGBAAt(50, 50); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("pixel at point center = %+v, want red", got)
	}
	if got := img.RGBAAt(5, 5); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("background pixel = %+v, want black", got)
	}
}

func TestRendererFrameAppliesTransform(t *testing.T) {
	r := newTestRenderer(t)

	cloud := NewPointCloud(1)
	cloud.SetPosition(0, 10, 10)
	cloud.SetColor(0, 0, 1, 0)
	r.SetCloud(cloud)
	// Scale by 2 and translate: (10,10) lands at (30,40).
	r.SetView(surface.Affine{A: 2, C: 10, E: 2, F: 20})

	if err := r.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	img := r.Surface().Snapshot()
	if got := img.RGBAAt(30, 40); got.G != 255 {
		t.Errorf("pixel at transformed position = %+v, want green", got)
	}
}

func TestRendererRubberBandOverlay(t *testing.T) {
	r := newTestRenderer(t)
	r.SetRubberBand(&surface.Rect{X0: 10, Y0: 10, X1: 30, Y1: 20})

	if err := r.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	img := r.Surface().Snapshot()
	if got := img.RGBAAt(20, 10); got != rubberBandColor {
		t.Errorf("band edge pixel = %+v, want %+v", got, rubberBandColor)
	}
	// Interior stays background.
	if got := img.RGBAAt(20, 15); got.R != 0 {
		t.Errorf("band interior pixel = %+v, want background", got)
	}

	// Hiding the band clears it on the next frame.
	r.SetRubberBand(nil)
	if err := r.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	img = r.Surface().Snapshot()
	if got := img.RGBAAt(20, 10); got.R != 0 {
		t.Errorf("band pixel after hide = %+v, want background", got)
	}
}

func TestRendererLoop(t *testing.T) {
	r := newTestRenderer(t)
	s := &manualScheduler{}

	r.Start(s)
	if len(s.pending) != 1 {
		t.Fatalf("Start requested %d frames, want 1", len(s.pending))
	}

	// Each paint re-requests the next frame.
	s.pump(t)
	s.pump(t)
	if len(s.pending) != 3 {
		t.Fatalf("after two pumps, %d requests, want 3", len(s.pending))
	}

	// Starting an already running renderer is a no-op.
	r.Start(s)
	if len(s.pending) != 3 {
		t.Errorf("redundant Start requested a frame")
	}

	r.Stop()
	if s.canceled != 1 {
		t.Errorf("Stop canceled %d requests, want 1", s.canceled)
	}
}

func TestRendererStopThenRestart(t *testing.T) {
	r := newTestRenderer(t)
	s := &manualScheduler{}

	r.Start(s)
	r.Stop()
	r.Start(s)
	if len(s.pending) != 2 {
		t.Errorf("restart requested %d frames total, want 2", len(s.pending))
	}
}

func TestRendererUnknownBackend(t *testing.T) {
	_, err := New(Options{Width: 10, Height: 10, Backend: "no-such-backend"})
	if err == nil {
		t.Fatal("New with unknown backend succeeded")
	}
	var nf *surface.BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %v, want BackendNotFoundError", err)
	}
}

func TestRendererColorBounds(t *testing.T) {
	r := newTestRenderer(t)
	r.SetCloud(NewPointCloud(2))

	// Out-of-range writes are dropped, not panics.
	r.SetColor(-1, 1, 1, 1)
	r.SetColor(2, 1, 1, 1)
	r.SetColor(1, 0.25, 0.5, 0.75)

	if red, _, _ := r.Color(-1); red != 0 {
		t.Errorf("Color(-1) red = %v, want 0", red)
	}
	red, green, blue := r.Color(1)
	if red != 0.25 || green != 0.5 || blue != 0.75 {
		t.Errorf("Color(1) = %v,%v,%v", red, green, blue)
	}
}

func TestRendererBackground(t *testing.T) {
	r, err := New(Options{
		Width: 10, Height: 10, Backend: "image",
		Background: color.RGBA{R: 30, G: 40, B: 50, A: 255},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	if err := r.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := r.Surface().Snapshot().RGBAAt(5, 5); got.R != 30 || got.G != 40 || got.B != 50 {
		t.Errorf("background pixel = %+v", got)
	}
}

func TestRendererCloseIdempotent(t *testing.T) {
	r := newTestRenderer(t)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	// Frame after close is a silent no-op.
	if err := r.Frame(); err != nil {
		t.Errorf("Frame after Close: %v", err)
	}
}

func TestRendererResize(t *testing.T) {
	r := newTestRenderer(t)
	if err := r.Resize(200, 150); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if w, h := r.Surface().Width(), r.Surface().Height(); w != 200 || h != 150 {
		t.Errorf("surface size = %dx%d, want 200x150", w, h)
	}
}
