package texwrap

import (
	"log/slog"
	"sync/atomic"
)

// silentLogger drops every record. Its handler reports every level as
// disabled, so Debug calls on the sweep hot path cost one check.
var silentLogger = slog.New(slog.DiscardHandler)

var currentLogger atomic.Pointer[slog.Logger]

func init() {
	currentLogger.Store(silentLogger)
}

// SetLogger installs the logger used by image builds and sweeps. texwrap is
// silent until this is called; nil silences it again. SetLogger may be
// called while sweeps are running.
//
// Levels:
//   - [slog.LevelDebug]: image builds, one line per swept configuration
//   - [slog.LevelInfo]: sweep summary
//   - [slog.LevelWarn]: each mismatching pixel
//
// Example:
//
//	texwrap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger
	}
	currentLogger.Store(l)
}

// Logger returns the installed logger. It never returns nil.
func Logger() *slog.Logger {
	return currentLogger.Load()
}

// loggerOr returns l, or the installed logger when l is nil.
func loggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return Logger()
}
