package embedview

import (
	"sync"
	"time"
)

// DefaultHoverDebounce is the default delay before a hover event is
// delivered downstream. It throttles preview-payload fetches while the
// cursor sweeps across the point cloud.
const DefaultHoverDebounce = 500 * time.Millisecond

// TimerFunc schedules fn to run once after d and returns a stop
// function that cancels the pending run. It exists so tests can drive
// the hover debounce deterministically; the default implementation
// wraps [time.AfterFunc].
type TimerFunc func(d time.Duration, fn func()) (stop func() bool)

func afterFunc(d time.Duration, fn func()) (stop func() bool) {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// HoverEvent carries the hovered sample, its point-set index, and the
// color it is currently rendered with.
type HoverEvent struct {
	Index  int
	Sample Sample
	Color  RGBA
}

// HoverDetector is a two-state machine (idle / hovering a point) fed
// with the result of the per-move nearest-point query. Hover events
// are emitted after a debounce window with switch-latest semantics: a
// new hover cancels any pending previous emission, so a stale timer
// never fires for a point the cursor has already left. Unhover is
// emitted immediately, and only on a hovering-to-idle transition.
type HoverDetector struct {
	mu       sync.Mutex
	debounce time.Duration
	newTimer TimerFunc

	hovering bool
	index    int
	gen      uint64
	stop     func() bool

	onHover   func(HoverEvent)
	onUnhover func()
}

// NewHoverDetector creates a detector with the given debounce window.
// A non-positive debounce emits hover events synchronously.
func NewHoverDetector(debounce time.Duration) *HoverDetector {
	return &HoverDetector{
		debounce: debounce,
		newTimer: afterFunc,
	}
}

// OnHover sets the debounced hover callback.
func (h *HoverDetector) OnHover(fn func(HoverEvent)) {
	h.mu.Lock()
	h.onHover = fn
	h.mu.Unlock()
}

// OnUnhover sets the unhover callback.
func (h *HoverDetector) OnUnhover(fn func()) {
	h.mu.Lock()
	h.onUnhover = fn
	h.mu.Unlock()
}

// Observe feeds one nearest-point query result into the state machine.
// hit is the index of the point within the catch radius, or -1 if no
// point qualifies; ev is only consulted when hit >= 0.
func (h *HoverDetector) Observe(hit int, ev HoverEvent) {
	h.mu.Lock()

	if hit < 0 {
		if !h.hovering {
			// Already idle; unhover must not fire spuriously.
			h.mu.Unlock()
			return
		}
		h.hovering = false
		h.cancelPendingLocked()
		fn := h.onUnhover
		h.mu.Unlock()
		if fn != nil {
			fn()
		}
		return
	}

	if h.hovering && h.index == hit {
		// Still over the same point; at most one hover per entry.
		h.mu.Unlock()
		return
	}

	h.hovering = true
	h.index = hit
	h.cancelPendingLocked()
	h.gen++
	g := h.gen

	if h.debounce <= 0 {
		fn := h.onHover
		h.mu.Unlock()
		if fn != nil {
			fn(ev)
		}
		return
	}

	h.stop = h.newTimer(h.debounce, func() {
		h.mu.Lock()
		if h.gen != g || !h.hovering || h.index != ev.Index {
			// Superseded by a newer hover or an unhover.
			h.mu.Unlock()
			return
		}
		fn := h.onHover
		h.mu.Unlock()
		if fn != nil {
			fn(ev)
		}
	})
	h.mu.Unlock()
}

// Reset silently returns the detector to idle, cancelling any pending
// emission without firing unhover. Used when the point set is swapped
// out from under the cursor.
func (h *HoverDetector) Reset() {
	h.mu.Lock()
	h.hovering = false
	h.cancelPendingLocked()
	h.mu.Unlock()
}

// Hovering reports whether the detector is in the hovering state and,
// if so, which point index it is over.
func (h *HoverDetector) Hovering() (index int, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.hovering {
		return 0, false
	}
	return h.index, true
}

// cancelPendingLocked invalidates any scheduled emission.
// Callers must hold h.mu.
func (h *HoverDetector) cancelPendingLocked() {
	h.gen++
	if h.stop != nil {
		h.stop()
		h.stop = nil
	}
}
