package embedview

// MouseButton identifies a single mouse button.
type MouseButton uint8

const (
	// MouseNone means no button.
	MouseNone MouseButton = iota

	// MouseLeft is the primary button; it drives rubber-band selection.
	MouseLeft

	// MouseMiddle pans the camera while dragged.
	MouseMiddle

	// MouseRight pans the camera while dragged.
	MouseRight
)

// MouseButtons is a bitmask of buttons currently held down.
type MouseButtons uint8

const (
	// ButtonsLeft is the bitmask flag for the left button.
	ButtonsLeft MouseButtons = 1 << iota

	// ButtonsMiddle is the bitmask flag for the middle button.
	ButtonsMiddle

	// ButtonsRight is the bitmask flag for the right button.
	ButtonsRight
)

// mask returns the bitmask flag for a button.
func (b MouseButton) mask() MouseButtons {
	switch b {
	case MouseLeft:
		return ButtonsLeft
	case MouseMiddle:
		return ButtonsMiddle
	case MouseRight:
		return ButtonsRight
	default:
		return 0
	}
}

// Has reports whether the given flag is set.
func (b MouseButtons) Has(flag MouseButtons) bool {
	return b&flag != 0
}

// MouseEventKind discriminates the mouse event types the viewer
// understands.
type MouseEventKind uint8

const (
	// MouseMove is a cursor move.
	MouseMove MouseEventKind = iota

	// MouseDown is a button press.
	MouseDown

	// MouseUp is a button release.
	MouseUp

	// MouseWheel is a scroll-wheel step.
	MouseWheel
)

// MouseEvent is a platform-neutral mouse event. The host windowing
// layer translates its native events into this form and feeds them to
// [Viewer.HandleMouse].
//
// Pos is in screen pixels relative to the render surface's top-left
// corner. While a selection drag is active the host must keep
// forwarding moves even when the cursor leaves the surface (the
// window-level listener of a browser host), so Pos may lie outside
// the surface bounds or be negative.
type MouseEvent struct {
	Kind MouseEventKind

	// Pos is the cursor position in surface-relative screen pixels.
	Pos Point

	// Button is the button that changed state, for Down/Up events.
	Button MouseButton

	// Buttons is the set of buttons held down after this event.
	Buttons MouseButtons

	// WheelDelta is the scroll amount for Wheel events.
	// Positive values zoom in, negative values zoom out.
	WheelDelta float64
}
