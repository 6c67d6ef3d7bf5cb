// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"golang.org/x/image/draw"
)

// ImageSurface is the built-in CPU backend: it rasterizes point
// batches into an in-memory *image.RGBA. It is always available and
// registered at low priority, serving as the fallback when no GPU
// backend can be acquired, and as the deterministic target for tests
// and headless PNG export.
type ImageSurface struct {
	img    *image.RGBA
	closed bool
}

// NewImageSurface creates a software surface of the given pixel size.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	stddraw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, stddraw.Src)
}

// DrawPoints rasterizes each point of the batch as a filled disc of
// constant screen-pixel diameter centered on its transformed position.
func (s *ImageSurface) DrawPoints(batch *PointBatch) {
	n := batch.Len()
	radius := batch.Size / 2
	if radius <= 0 {
		radius = 0.5
	}
	w, h := s.Width(), s.Height()

	for i := 0; i < n; i++ {
		// The z component is a constant depth; 2D rasterization
		// ignores it.
		wx := float64(batch.Positions[3*i])
		wy := float64(batch.Positions[3*i+1])
		sx, sy := batch.Transform.Apply(wx, wy)

		if sx < -radius || sy < -radius || sx >= float64(w)+radius || sy >= float64(h)+radius {
			continue
		}

		r8 := uint8(clampByte(float64(batch.Colors[3*i]) * 255))
		g8 := uint8(clampByte(float64(batch.Colors[3*i+1]) * 255))
		b8 := uint8(clampByte(float64(batch.Colors[3*i+2]) * 255))
		s.fillDisc(sx, sy, radius, color.RGBA{R: r8, G: g8, B: b8, A: 255})
	}
}

// fillDisc fills a disc via a squared-distance test over its clipped
// bounding box.
func (s *ImageSurface) fillDisc(cx, cy, radius float64, c color.RGBA) {
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))

	bounds := s.img.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X-1 {
		x1 = bounds.Max.X - 1
	}
	if y1 > bounds.Max.Y-1 {
		y1 = bounds.Max.Y - 1
	}

	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				s.img.SetRGBA(x, y, c)
			}
		}
	}
}

// StrokeRect draws a 1px rectangle outline clipped to the surface.
func (s *ImageSurface) StrokeRect(r Rect, c color.Color) {
	r = r.Canon()
	x0, y0 := int(math.Round(r.X0)), int(math.Round(r.Y0))
	x1, y1 := int(math.Round(r.X1)), int(math.Round(r.Y1))

	for x := x0; x <= x1; x++ {
		s.setClipped(x, y0, c)
		s.setClipped(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		s.setClipped(x0, y, c)
		s.setClipped(x1, y, c)
	}
}

func (s *ImageSurface) setClipped(x, y int, c color.Color) {
	if image.Pt(x, y).In(s.img.Bounds()) {
		s.img.Set(x, y, c)
	}
}

// Flush is a no-op for the CPU backend.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// ScaledSnapshot returns the surface contents resampled to the given
// size with bilinear interpolation. Used for thumbnail export.
func (s *ImageSurface) ScaledSnapshot(width, height int) *image.RGBA {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(out, out.Bounds(), s.img, s.img.Bounds(), draw.Src, nil)
	return out
}

// Resize replaces the backing image with one of the new dimensions.
// Contents are discarded; the next frame repaints everything anyway.
func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Close releases the surface. Idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// Image returns the backing image. It shares memory with the surface;
// use Snapshot for a stable copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Ensure ImageSurface implements Surface.
var _ Surface = (*ImageSurface)(nil)
