package embedview

import (
	"testing"
	"time"
)

// fakeTimer captures scheduled debounce callbacks so tests can fire
// them (or leave them pending) deterministically.
type fakeTimer struct {
	pending []func()
	stopped int
}

func (f *fakeTimer) schedule(d time.Duration, fn func()) (stop func() bool) {
	i := len(f.pending)
	f.pending = append(f.pending, fn)
	return func() bool {
		if f.pending[i] == nil {
			return false
		}
		f.pending[i] = nil
		f.stopped++
		return true
	}
}

// fireRaw runs the i-th captured callback regardless of whether it
// was stopped, simulating a timer firing concurrently with Stop. The
// detector's generation check must make such a fire a no-op.
func fireRaw(t *testing.T, raw []func(), i int) {
	t.Helper()
	if i >= len(raw) {
		t.Fatalf("no timer %d captured (have %d)", i, len(raw))
	}
	raw[i]()
}

func (f *fakeTimer) fireLast(t *testing.T) {
	t.Helper()
	if len(f.pending) == 0 {
		t.Fatal("no timer scheduled")
	}
	fn := f.pending[len(f.pending)-1]
	if fn == nil {
		t.Fatal("last timer was stopped")
	}
	fn()
}

func newTestDetector(ft *fakeTimer) (h *HoverDetector, hovers *[]HoverEvent, unhovers *int) {
	h = NewHoverDetector(DefaultHoverDebounce)
	h.newTimer = ft.schedule

	hovers = new([]HoverEvent)
	unhovers = new(int)
	h.OnHover(func(ev HoverEvent) { *hovers = append(*hovers, ev) })
	h.OnUnhover(func() { *unhovers++ })
	return h, hovers, unhovers
}

func TestHoverDebounced(t *testing.T) {
	ft := &fakeTimer{}
	h, hovers, _ := newTestDetector(ft)

	h.Observe(2, HoverEvent{Index: 2})
	if len(*hovers) != 0 {
		t.Fatal("hover fired before debounce elapsed")
	}
	ft.fireLast(t)
	if len(*hovers) != 1 || (*hovers)[0].Index != 2 {
		t.Fatalf("hovers = %+v, want one event for index 2", *hovers)
	}
	if idx, ok := h.Hovering(); !ok || idx != 2 {
		t.Errorf("Hovering = (%d, %v), want (2, true)", idx, ok)
	}
}

func TestHoverSwitchLatest(t *testing.T) {
	ft := &fakeTimer{}
	h, hovers, unhovers := newTestDetector(ft)

	// Sweep across point 0 onto point 1 before the debounce elapses:
	// only the latest hover may emit, and leaving point 0 mid-sweep
	// must not produce an unhover (the cursor never idled).
	h.Observe(0, HoverEvent{Index: 0})
	h.Observe(1, HoverEvent{Index: 1})

	if ft.pending[0] != nil {
		t.Error("first timer not stopped by the second hover")
	}
	ft.fireLast(t)

	if len(*hovers) != 1 || (*hovers)[0].Index != 1 {
		t.Errorf("hovers = %+v, want one event for index 1", *hovers)
	}
	if *unhovers != 0 {
		t.Errorf("unhovers = %d, want 0", *unhovers)
	}
}

func TestHoverStaleTimerFire(t *testing.T) {
	ft := &fakeTimer{}
	h := NewHoverDetector(DefaultHoverDebounce)
	var raw []func()
	h.newTimer = func(d time.Duration, fn func()) func() bool {
		raw = append(raw, fn)
		return ft.schedule(d, fn)
	}
	var hovers []HoverEvent
	h.OnHover(func(ev HoverEvent) { hovers = append(hovers, ev) })

	h.Observe(0, HoverEvent{Index: 0})
	h.Observe(1, HoverEvent{Index: 1})

	// The stale timer fires anyway (lost race with Stop); the
	// generation guard must swallow it.
	fireRaw(t, raw, 0)
	if len(hovers) != 0 {
		t.Fatalf("stale timer emitted %+v", hovers)
	}
	fireRaw(t, raw, 1)
	if len(hovers) != 1 || hovers[0].Index != 1 {
		t.Errorf("hovers = %+v, want one event for index 1", hovers)
	}
}

func TestUnhoverImmediateAndOnce(t *testing.T) {
	ft := &fakeTimer{}
	h, hovers, unhovers := newTestDetector(ft)

	h.Observe(3, HoverEvent{Index: 3})
	ft.fireLast(t)

	h.Observe(-1, HoverEvent{})
	if *unhovers != 1 {
		t.Fatalf("unhovers = %d, want 1 (immediate)", *unhovers)
	}

	// Repeated empty observations while already idle stay silent.
	h.Observe(-1, HoverEvent{})
	h.Observe(-1, HoverEvent{})
	if *unhovers != 1 {
		t.Errorf("unhovers = %d, want 1", *unhovers)
	}
	if len(*hovers) != 1 {
		t.Errorf("hovers = %+v, want a single event", *hovers)
	}
}

func TestUnhoverCancelsPendingHover(t *testing.T) {
	ft := &fakeTimer{}
	h, hovers, unhovers := newTestDetector(ft)

	// Leave the point before the debounce elapses: the pending hover
	// must never surface, and unhover still fires.
	h.Observe(5, HoverEvent{Index: 5})
	h.Observe(-1, HoverEvent{})

	if ft.pending[0] != nil {
		t.Error("pending hover timer not stopped by unhover")
	}
	if len(*hovers) != 0 {
		t.Errorf("hovers = %+v, want none", *hovers)
	}
	if *unhovers != 1 {
		t.Errorf("unhovers = %d, want 1", *unhovers)
	}
}

func TestHoverSameIndexNoRepeat(t *testing.T) {
	ft := &fakeTimer{}
	h, hovers, _ := newTestDetector(ft)

	h.Observe(4, HoverEvent{Index: 4})
	ft.fireLast(t)

	// Subsequent moves within the same point's catch radius are no-ops.
	h.Observe(4, HoverEvent{Index: 4})
	h.Observe(4, HoverEvent{Index: 4})

	if n := len(ft.pending); n != 1 {
		t.Errorf("scheduled %d timers, want 1", n)
	}
	if len(*hovers) != 1 {
		t.Errorf("hovers = %+v, want a single event", *hovers)
	}
}

func TestHoverZeroDebounceSynchronous(t *testing.T) {
	h := NewHoverDetector(0)
	var hovers []HoverEvent
	h.OnHover(func(ev HoverEvent) { hovers = append(hovers, ev) })

	h.Observe(7, HoverEvent{Index: 7})
	if len(hovers) != 1 || hovers[0].Index != 7 {
		t.Fatalf("hovers = %+v, want immediate event for index 7", hovers)
	}
}

func TestHoverResetSilent(t *testing.T) {
	ft := &fakeTimer{}
	h, hovers, unhovers := newTestDetector(ft)

	h.Observe(1, HoverEvent{Index: 1})
	h.Reset()

	if *unhovers != 0 {
		t.Errorf("Reset fired unhover (%d)", *unhovers)
	}
	if len(*hovers) != 0 {
		t.Errorf("hovers = %+v, want none after Reset", *hovers)
	}
	if _, ok := h.Hovering(); ok {
		t.Error("detector still hovering after Reset")
	}
}
