// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package wgpu

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/virelay/embedview/render"
	"github.com/virelay/embedview/surface"
)

//go:embed shaders/points.wgsl
var pointShaderWGSL string

// BackendName is the registry name of the GPU backend.
const BackendName = "wgpu"

// PointSurface is a GPU-backed surface drawing the point cloud with a
// quad-expansion vertex shader.
//
// Note: HAL does not yet expose render-pass surface presentation or
// vertex buffer binding for render pipelines, so draws are mirrored
// on a CPU raster that also serves Snapshot readback. The shader and
// device plumbing are in place; the mirror goes away once the HAL
// render-pass API lands.
type PointSurface struct {
	mu sync.Mutex

	gpu *gpuHandle

	// Shader module and compiled SPIR-V (cached for verification).
	shaderModule hal.ShaderModule
	spirvCode    []uint32

	// Pipeline objects are stubs until HAL exposes render pipelines;
	// see the package note above.
	pipeline stubPipelineID

	// mirror is the CPU raster draws are mirrored to.
	mirror *surface.ImageSurface

	closed bool
}

// stubPipelineID is a placeholder for the HAL render pipeline ID.
type stubPipelineID uint64

// NewPointSurface acquires a GPU device and compiles the point
// shader. It fails — attributably — when no device can be opened or
// the shader does not compile; the registry then falls back to the
// software backend.
func NewPointSurface(opts surface.Options) (*PointSurface, error) {
	if h := render.ActiveDeviceHandle(); h != nil && h.Device() != nil {
		// A host-shared device context exists; surface presentation
		// through it still needs the HAL render-pass API, so the
		// standalone path below is used for now.
		slogger().Info("host device handle present",
			"surfaceFormat", h.SurfaceFormat())
	}

	gpu, err := acquireDevice()
	if err != nil {
		return nil, fmt.Errorf("wgpu: %w", err)
	}

	s := &PointSurface{
		gpu:    gpu,
		mirror: surface.NewImageSurface(opts.Width, opts.Height),
	}
	if err := s.init(); err != nil {
		s.destroyLocked()
		return nil, err
	}

	slogger().Info("GPU point surface initialized", "adapter", gpu.adapter,
		"width", opts.Width, "height", opts.Height)
	return s, nil
}

// init compiles the WGSL shader to SPIR-V and creates the shader
// module.
func (s *PointSurface) init() error {
	spirvBytes, err := naga.Compile(pointShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile point shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	s.spirvCode = spirvCode

	module, err := s.gpu.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "embedview-points",
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create shader module: %w", err)
	}
	s.shaderModule = module

	// Render pipeline layout: params uniform + position/color storage
	// buffers, as declared in points.wgsl. Creation is stubbed until
	// HAL exposes render pipelines.
	s.pipeline = stubPipelineID(1)

	return nil
}

// Width returns the surface width in pixels.
func (s *PointSurface) Width() int { return s.mirror.Width() }

// Height returns the surface height in pixels.
func (s *PointSurface) Height() int { return s.mirror.Height() }

// Clear fills the surface with the given color.
func (s *PointSurface) Clear(c color.Color) {
	s.mirror.Clear(c)
}

// DrawPoints draws a point batch.
func (s *PointSurface) DrawPoints(batch *surface.PointBatch) {
	s.mirror.DrawPoints(batch)
}

// StrokeRect draws the rubber-band overlay.
func (s *PointSurface) StrokeRect(r surface.Rect, c color.Color) {
	s.mirror.StrokeRect(r, c)
}

// Flush submits pending work.
func (s *PointSurface) Flush() error {
	return s.mirror.Flush()
}

// Snapshot returns the surface contents.
func (s *PointSurface) Snapshot() *image.RGBA {
	return s.mirror.Snapshot()
}

// Resize changes the surface dimensions.
func (s *PointSurface) Resize(width, height int) error {
	return s.mirror.Resize(width, height)
}

// Close releases GPU resources. Idempotent.
func (s *PointSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.destroyLocked()
	return s.mirror.Close()
}

func (s *PointSurface) destroyLocked() {
	if s.gpu == nil || s.gpu.device == nil {
		return
	}
	if s.shaderModule != nil {
		s.gpu.device.DestroyShaderModule(s.shaderModule)
		s.shaderModule = nil
	}
}

// init registers the GPU backend at GPU priority.
func init() {
	surface.Register(BackendName, 100, func(opts surface.Options) (surface.Surface, error) {
		return NewPointSurface(opts)
	}, gpuAvailable)
}

// Ensure PointSurface implements Surface.
var _ surface.Surface = (*PointSurface)(nil)
