package plot

import (
	"log/slog"
	"sync/atomic"
)

// discard is the logger in effect until SetLogger installs another one.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger routes the log output of plot, its backends and the backend
// registry to l. Passing nil silences it again, which is the default.
//
// The package logs at two levels:
//   - [slog.LevelDebug]: "plot: element skipped" from areas created
//     WithSkipInvalid, "plot: backend presented", "backend: created"
//   - [slog.LevelInfo]: "raster: saved", "svg: saved", "draw2d: saved"
//
// An area created WithLogger uses its own logger instead. SetLogger may be
// called concurrently with drawing.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger. Sub-packages log
// through it.
func Logger() *slog.Logger {
	return logger.Load()
}
