package scanfill

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards everything. Enabled reports
// false, so callers skip building records entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger; swapped atomically by SetLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by Fill. By default scanfill is silent.
// Pass nil to restore the silent default. Safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: per-call start/finish with Stats, out-of-bounds seeds
//   - [slog.LevelWarn]:  fills aborted by WithMaxPending
//
// Example:
//
//	scanfill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger Fill reports to: the one last passed to
// SetLogger, or a handler that drops every record. Fill reads it once per
// call, so swapping loggers mid-fill does not affect that fill.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
