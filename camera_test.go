package embedview

import (
	"math"
	"testing"
)

func testCamera() *Camera {
	return NewCamera(800, 600, 0.1, 50)
}

func TestCameraDefaultView(t *testing.T) {
	c := testCamera()
	// World origin projects to the viewport center.
	if got := c.WorldToScreen(Pt(0, 0)); got != Pt(400, 300) {
		t.Errorf("WorldToScreen(origin) = %+v, want (400, 300)", got)
	}
	// World Y grows upward, screen Y downward.
	if got := c.WorldToScreen(Pt(0, 10)); got != Pt(400, 290) {
		t.Errorf("WorldToScreen(0,10) = %+v, want (400, 290)", got)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := testCamera()
	c.Pan(37, -12)
	c.ZoomAt(Pt(100, 500), 3)

	for _, p := range []Point{Pt(0, 0), Pt(123, 456), Pt(-50, 700)} {
		back := c.WorldToScreen(c.ScreenToWorld(p))
		if !approxPoint(back, p, 1e-9) {
			t.Errorf("round trip of %+v = %+v", p, back)
		}
	}
}

func TestCameraZoomTowardCursor(t *testing.T) {
	c := testCamera()
	cursor := Pt(410, 300)
	anchor := c.ScreenToWorld(cursor)

	c.ZoomAt(cursor, 2)

	if got := c.Zoom(); got != 2 {
		t.Fatalf("Zoom = %v, want 2", got)
	}
	// The world point under the cursor stays under the cursor.
	if got := c.WorldToScreen(anchor); !approxPoint(got, cursor, 1e-9) {
		t.Errorf("anchor moved to %+v, want %+v", got, cursor)
	}
}

func TestCameraZoomClamp(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"clamps to max", 1e9, 50},
		{"clamps to min", 1e-9, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCamera()
			c.ZoomAt(Pt(400, 300), tt.factor)
			if got := c.Zoom(); got != tt.want {
				t.Errorf("Zoom = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraPan(t *testing.T) {
	c := testCamera()
	// Dragging the mouse right by 10px moves the content right:
	// the world origin now projects 10px right of center.
	c.Pan(10, 0)
	if got := c.WorldToScreen(Pt(0, 0)); got != Pt(410, 300) {
		t.Errorf("after Pan(10,0), origin at %+v, want (410, 300)", got)
	}

	// Pan distance in world units scales with zoom.
	c.Reset()
	c.ZoomAt(Pt(400, 300), 2)
	c.Pan(10, 0)
	if got := c.WorldToScreen(Pt(0, 0)); !approxPoint(got, Pt(410, 300), 1e-9) {
		t.Errorf("after zoomed Pan(10,0), origin at %+v, want (410, 300)", got)
	}
}

func TestCameraReset(t *testing.T) {
	c := testCamera()
	c.Pan(100, 100)
	c.ZoomAt(Pt(0, 0), 4)
	c.Reset()

	if c.Zoom() != 1 {
		t.Errorf("Zoom after Reset = %v, want 1", c.Zoom())
	}
	if got := c.WorldToScreen(Pt(0, 0)); got != Pt(400, 300) {
		t.Errorf("origin after Reset at %+v, want (400, 300)", got)
	}
}

func TestCameraResizeKeepsView(t *testing.T) {
	c := testCamera()
	c.Pan(25, -10)
	c.ZoomAt(Pt(200, 100), 2)
	zoomBefore := c.Zoom()
	worldAtCenterBefore := c.ScreenToWorld(Pt(400, 300))

	c.SetViewport(1024, 768)

	if c.Zoom() != zoomBefore {
		t.Errorf("resize changed zoom: %v -> %v", zoomBefore, c.Zoom())
	}
	// The same world point sits at the (new) viewport center.
	got := c.ScreenToWorld(Pt(512, 384))
	if !approxPoint(got, worldAtCenterBefore, 1e-9) {
		t.Errorf("resize moved center world point: %+v -> %+v", worldAtCenterBefore, got)
	}
	hw, hh := c.HalfExtents()
	if hw != 512 || hh != 384 {
		t.Errorf("HalfExtents = (%v, %v), want (512, 384)", hw, hh)
	}
}

func TestCameraViewMatrixMatchesWorldToScreen(t *testing.T) {
	c := testCamera()
	c.Pan(-30, 44)
	c.ZoomAt(Pt(770, 20), 5)

	m := c.ViewMatrix()
	p := Pt(3.5, -2.25)
	if got, want := m.Apply(p), c.WorldToScreen(p); !approxPoint(got, want, 1e-9) {
		t.Errorf("ViewMatrix().Apply = %+v, WorldToScreen = %+v", got, want)
	}
	if math.Abs(m.B) > 0 || math.Abs(m.D) > 0 {
		t.Errorf("view matrix has rotation/shear terms: %+v", m)
	}
}
