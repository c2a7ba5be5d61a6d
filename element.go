package plot

import (
	"image"
	"iter"
)

// PointCollection is implemented by elements that expose their logical
// control points for projection.
//
// Points returns a lazy, finite sequence over storage owned by the element.
// The sequence can be ranged over any number of times and always yields the
// points in the same order. It must not be retained past the draw call that
// consumes it.
type PointCollection[C any] interface {
	Points() iter.Seq[C]
}

// Drawable is implemented by elements that know how to paint themselves
// once their points have been projected.
//
// Draw receives the projected version of the element's points, in the
// order Points yields them, the backend to paint on and the canvas size.
// It returns nil or the backend's error unchanged.
type Drawable interface {
	Draw(points []image.Point, backend DrawingBackend, canvas Size) error
}

// Element is a drawable shape in the logical coordinate space C.
type Element[C any] interface {
	PointCollection[C]
	Drawable
}
