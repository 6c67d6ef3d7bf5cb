// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package render

// PointDepth is the constant z written into the position buffer so
// points sit just in front of an orthographic camera at z=0.
const PointDepth = -0.1

// PointCloud is the renderable point-cloud primitive: a position
// buffer and a color buffer indexed identically to the point set that
// produced them. One cloud is built per point set; selection
// recoloring mutates the color buffer in place instead of rebuilding
// geometry, which is what keeps the selection drag smooth.
//
// Buffers are laid out as packed triplets (x, y, z) and (r, g, b)
// so GPU backends can upload them directly as vertex attributes.
type PointCloud struct {
	positions []float32
	colors    []float32
}

// NewPointCloud allocates a cloud for n points.
func NewPointCloud(n int) *PointCloud {
	c := &PointCloud{
		positions: make([]float32, 3*n),
		colors:    make([]float32, 3*n),
	}
	for i := 0; i < n; i++ {
		c.positions[3*i+2] = PointDepth
	}
	return c
}

// Len returns the number of points in the cloud.
func (c *PointCloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.positions) / 3
}

// SetPosition sets the world-space position of point i.
// The depth component is fixed.
func (c *PointCloud) SetPosition(i int, x, y float64) {
	c.positions[3*i] = float32(x)
	c.positions[3*i+1] = float32(y)
}

// Position returns the world-space position of point i.
func (c *PointCloud) Position(i int) (x, y float64) {
	return float64(c.positions[3*i]), float64(c.positions[3*i+1])
}

// SetColor writes the color of point i in place.
// Components are in [0, 1].
func (c *PointCloud) SetColor(i int, r, g, b float64) {
	c.colors[3*i] = float32(r)
	c.colors[3*i+1] = float32(g)
	c.colors[3*i+2] = float32(b)
}

// Color returns the currently rendered color of point i.
func (c *PointCloud) Color(i int) (r, g, b float64) {
	return float64(c.colors[3*i]), float64(c.colors[3*i+1]), float64(c.colors[3*i+2])
}

// Buffers exposes the raw buffers for drawing. Callers must treat
// them as read-only; all mutation goes through SetPosition/SetColor
// so the single-mutator invariant stays enforceable.
func (c *PointCloud) Buffers() (positions, colors []float32) {
	return c.positions, c.colors
}
