package lenslab

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for lenslab and its sub-packages.
// By default, lenslab produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by lenslab:
//   - [slog.LevelDebug]: per-step trace events (via [LogObserver]),
//     fitting fallbacks (gradient mask, convex hull, fallback circle)
//   - [slog.LevelInfo]: fit results in the command-line tool
//   - [slog.LevelWarn]: inputs that could not be fitted
//
// Example:
//
//	lenslab.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by lenslab.
// Sub-packages (fit, render, scenefile) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
