package embedview

// wheelZoomStep is the zoom multiplier applied per unit of wheel
// delta. One scroll notch zooms in or out by ~10%.
const wheelZoomStep = 1.1

// cameraController translates mouse input into camera manipulation:
// right- or middle-button drags pan the view, and the scroll wheel
// zooms toward the cursor position.
type cameraController struct {
	cam     *Camera
	panning bool
	last    Point
}

// handleDown starts a pan drag on right or middle button press.
func (cc *cameraController) handleDown(ev MouseEvent) {
	if ev.Button == MouseRight || ev.Button == MouseMiddle {
		cc.panning = true
		cc.last = ev.Pos
	}
}

// handleMove pans the camera while a pan drag is active.
// Returns true if the camera changed.
func (cc *cameraController) handleMove(ev MouseEvent) bool {
	if !cc.panning {
		return false
	}
	// The pan button may have been released outside the surface;
	// stop panning as soon as the held-buttons mask no longer
	// includes a pan button.
	if !ev.Buttons.Has(ButtonsRight) && !ev.Buttons.Has(ButtonsMiddle) {
		cc.panning = false
		return false
	}
	d := ev.Pos.Sub(cc.last)
	cc.last = ev.Pos
	cc.cam.Pan(d.X, d.Y)
	return d.X != 0 || d.Y != 0
}

// handleUp ends a pan drag on right or middle button release.
func (cc *cameraController) handleUp(ev MouseEvent) {
	if ev.Button == MouseRight || ev.Button == MouseMiddle {
		cc.panning = false
	}
}

// handleWheel zooms toward the cursor. Zoom outside the configured
// bounds clamps rather than errors. Returns true if the camera
// changed.
func (cc *cameraController) handleWheel(ev MouseEvent) bool {
	if ev.WheelDelta == 0 {
		return false
	}
	factor := wheelZoomStep
	if ev.WheelDelta < 0 {
		factor = 1 / wheelZoomStep
	}
	before := cc.cam.Zoom()
	cc.cam.ZoomAt(ev.Pos, factor)
	return cc.cam.Zoom() != before
}

// reset abandons any in-progress pan drag.
func (cc *cameraController) reset() {
	cc.panning = false
}
