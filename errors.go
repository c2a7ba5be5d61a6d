package plot

import (
	"errors"
	"fmt"
	"image"
)

// ErrOutOfCanvas is reported by backends that refuse geometry lying
// outside the canvas. Use errors.Is to test for it.
var ErrOutOfCanvas = errors.New("plot: geometry out of canvas")

// DrawingErrorKind tags the origin of a DrawingError.
type DrawingErrorKind int

const (
	// BackendError wraps a backend-specific failure, such as an I/O error.
	BackendError DrawingErrorKind = iota
	// OutOfCanvas signals geometry the backend could not place on its canvas.
	OutOfCanvas
)

// String returns the name of the kind.
func (k DrawingErrorKind) String() string {
	switch k {
	case BackendError:
		return "backend error"
	case OutOfCanvas:
		return "out of canvas"
	default:
		return "unknown"
	}
}

// DrawingError is the error type returned by backends.
// The core never inspects it; it is propagated to the caller unchanged.
type DrawingError struct {
	Kind DrawingErrorKind
	Err  error
}

// Error implements error.
func (e *DrawingError) Error() string {
	if e.Err == nil {
		return "plot: " + e.Kind.String()
	}
	return fmt.Sprintf("plot: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the wrapped error.
func (e *DrawingError) Unwrap() error { return e.Err }

// WrapBackendError wraps err as a BackendError. A nil err stays nil and an
// error that already is a *DrawingError is returned as is.
func WrapBackendError(err error) error {
	if err == nil {
		return nil
	}
	var de *DrawingError
	if errors.As(err, &de) {
		return err
	}
	return &DrawingError{Kind: BackendError, Err: err}
}

// OutOfCanvasError reports that p does not lie on the canvas.
func OutOfCanvasError(p image.Point) error {
	return &DrawingError{Kind: OutOfCanvas, Err: fmt.Errorf("point %v: %w", p, ErrOutOfCanvas)}
}
