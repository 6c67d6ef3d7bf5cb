// Copyright 2026 The embedview Authors
// SPDX-License-Identifier: MIT

package render

import "time"

// FrameScheduler delivers per-frame callbacks synchronized to the
// host's display refresh — the equivalent of a browser's
// requestAnimationFrame. The renderer requests exactly one frame at a
// time and re-requests after each paint, so cancelling the returned
// function is sufficient to stop the loop.
type FrameScheduler interface {
	// RequestFrame schedules fn to run once at the next frame and
	// returns a cancel function. Cancel after the callback has run is
	// a no-op.
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// TimerScheduler is a FrameScheduler for headless and windowless use,
// approximating vsync with a fixed interval timer. Callbacks are
// delivered on a timer goroutine; hosts that also inject input events
// must serialize the two themselves (windowed hosts should use their
// framework's native frame callback instead).
type TimerScheduler struct {
	// Interval between frames. Zero defaults to ~60Hz.
	Interval time.Duration
}

// RequestFrame schedules fn after the configured interval.
func (s TimerScheduler) RequestFrame(fn func(now time.Time)) (cancel func()) {
	d := s.Interval
	if d <= 0 {
		d = time.Second / 60
	}
	t := time.AfterFunc(d, func() { fn(time.Now()) })
	return func() { t.Stop() }
}
