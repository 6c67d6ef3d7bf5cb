package embedview

// Camera is an orthographic 2D camera over the world plane. It maps
// world coordinates to screen pixels through a pan offset (the world
// point shown at the viewport center) and a zoom factor clamped to a
// configured range. Rotation is not supported; the viewer is strictly
// a 2D pan/zoom surface.
//
// The camera is created once per viewer and reset, not replaced, when
// the point set changes, so new data is framed from the default view.
type Camera struct {
	halfW, halfH float64

	// pan is the world-space point at the viewport center.
	pan  Point
	zoom float64

	minZoom, maxZoom float64
}

// NewCamera creates a camera for a viewport of the given pixel size
// with the default centered, unzoomed view.
func NewCamera(width, height int, minZoom, maxZoom float64) *Camera {
	c := &Camera{
		minZoom: minZoom,
		maxZoom: maxZoom,
		zoom:    1,
	}
	c.SetViewport(width, height)
	return c
}

// Reset restores the default centered, unzoomed view.
// Called whenever the underlying point set changes.
func (c *Camera) Reset() {
	c.pan = Point{}
	c.zoom = 1
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// HalfExtents returns the frustum half-width and half-height in
// pixels. World scaling targets these extents so all points fit the
// viewport.
func (c *Camera) HalfExtents() (halfW, halfH float64) {
	return c.halfW, c.halfH
}

// SetViewport updates the frustum half-extents from new pixel
// dimensions. Pan, zoom and everything derived from them are left
// untouched: a container resize must not reset the view.
func (c *Camera) SetViewport(width, height int) {
	c.halfW = float64(width) / 2
	c.halfH = float64(height) / 2
}

// Pan shifts the view by a screen-pixel delta. The world moves with
// the cursor, so the pan offset changes by the delta divided by zoom.
func (c *Camera) Pan(dx, dy float64) {
	c.pan.X -= dx / c.zoom
	c.pan.Y += dy / c.zoom
}

// ZoomAt multiplies the zoom by factor, clamped to [minZoom, maxZoom],
// keeping the world point under the given screen cursor stationary.
func (c *Camera) ZoomAt(cursor Point, factor float64) {
	anchor := c.ScreenToWorld(cursor)

	z := c.zoom * factor
	if z < c.minZoom {
		z = c.minZoom
	}
	if z > c.maxZoom {
		z = c.maxZoom
	}
	c.zoom = z

	// Re-solve the pan so that anchor still projects onto cursor.
	c.pan.X = anchor.X - (cursor.X-c.halfW)/c.zoom
	c.pan.Y = anchor.Y + (cursor.Y-c.halfH)/c.zoom
}

// ViewMatrix returns the world-to-screen affine transform. Screen Y
// grows downward while world Y grows upward, hence the negated E term.
func (c *Camera) ViewMatrix() Matrix {
	return Matrix{
		A: c.zoom, B: 0, C: c.halfW - c.pan.X*c.zoom,
		D: 0, E: -c.zoom, F: c.halfH + c.pan.Y*c.zoom,
	}
}

// WorldToScreen projects a world point to screen pixels.
func (c *Camera) WorldToScreen(p Point) Point {
	return c.ViewMatrix().Apply(p)
}

// ScreenToWorld unprojects a screen-pixel position to world space.
func (c *Camera) ScreenToWorld(p Point) Point {
	return c.ViewMatrix().Invert().Apply(p)
}
