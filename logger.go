package embedview

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/virelay/embedview/render"
	"github.com/virelay/embedview/surface"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message
// formatting entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for embedview and all its
// sub-packages. By default, embedview produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by embedview:
//   - [slog.LevelDebug]: internal diagnostics (buffer sizes, hit tests)
//   - [slog.LevelInfo]: important lifecycle events (surface backend selected)
//   - [slog.LevelWarn]: non-fatal issues (GPU fallback, release errors)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Sub-packages carry their own logger so they stay importable
	// without a cycle back into this package.
	surface.SetLogger(l)
	render.SetLogger(l)
}

// Logger returns the current logger used by embedview.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
