package plot

import "log/slog"

// AreaOption configures a DrawingArea during creation.
// Use functional options to customize DrawingArea behavior.
//
// Example:
//
//	// Abort on the first element that cannot be projected (default)
//	area := plot.NewDrawingArea[coord.XY[float64, float64]](backend, cart)
//
//	// Skip such elements and keep drawing
//	area := plot.NewDrawingArea[coord.XY[float64, float64]](backend, cart, plot.WithSkipInvalid())
type AreaOption func(*areaOptions)

// areaOptions holds optional configuration for DrawingArea creation.
type areaOptions struct {
	logger      *slog.Logger
	skipInvalid bool
}

// defaultOptions returns the default area options.
func defaultOptions() areaOptions {
	return areaOptions{
		logger: nil, // Will use the package logger if nil
	}
}

// WithLogger sets the logger used by the area instead of the package
// logger configured through SetLogger.
func WithLogger(l *slog.Logger) AreaOption {
	return func(o *areaOptions) {
		o.logger = l
	}
}

// WithSkipInvalid makes Draw skip elements with a point the projector
// rejects, such as a non-positive value on a logarithmic axis, instead of
// returning the projection error. Skipped elements are logged at debug level.
// Backend errors are still returned.
func WithSkipInvalid() AreaOption {
	return func(o *areaOptions) {
		o.skipInvalid = true
	}
}
