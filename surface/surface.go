// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// Surface is the rendering target for the point-cloud viewer.
// Implementations may use CPU rasterization or a GPU backend.
//
// Surfaces are NOT thread-safe. Each surface should be used from a
// single goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// DrawPoints draws a batch of points. Positions are transformed
	// through the batch's world-to-screen affine; each point is drawn
	// as a disc of constant screen-pixel diameter regardless of the
	// transform's scale.
	DrawPoints(batch *PointBatch)

	// StrokeRect draws a 1px rectangle outline in screen pixels.
	// Used for the rubber-band selection overlay.
	StrokeRect(r Rect, c color.Color)

	// Flush ensures all pending drawing operations are complete.
	// For CPU surfaces this is typically a no-op; GPU surfaces may
	// submit command buffers and wait.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy. This may be slow for GPU surfaces
	// as it requires readback.
	Snapshot() *image.RGBA

	// Resize changes the surface dimensions. Contents are discarded.
	Resize(width, height int) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// PointBatch is one frame's worth of point-cloud data. Positions and
// Colors are indexed identically: point i occupies Positions[3i..3i+2]
// (x, y and a constant depth, unused by 2D backends) and
// Colors[3i..3i+2] (r, g, b in [0,1]).
//
// The buffers are owned by the renderer and mutated in place between
// frames (selection recoloring); backends must not retain them across
// calls.
type PointBatch struct {
	Positions []float32
	Colors    []float32

	// Transform maps world positions to screen pixels.
	Transform Affine

	// Size is the point diameter in screen pixels, not attenuated by
	// the transform's scale.
	Size float64
}

// Len returns the number of points in the batch.
func (b *PointBatch) Len() int {
	return len(b.Positions) / 3
}

// Affine is a 2x3 row-major affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// It mirrors the root package's Matrix without importing it, keeping
// this package free of dependency cycles.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, E: 1}
}

// Apply transforms the coordinate pair (x, y).
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Canon returns the rectangle with ordered coordinates.
func (r Rect) Canon() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Background is the initial background color.
	// Nil means opaque black.
	Background color.Color
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{Width: width, Height: height}
}
