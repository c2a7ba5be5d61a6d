package plot

import (
	"fmt"
	"image"
	"iter"
	"log/slog"
)

// Projector maps a logical point of type C to a pixel on the canvas.
// Implementations must be pure: the same point always projects to the
// same pixel for a fixed configuration. See package coord for the
// linear, logarithmic and bucketed coordinate systems.
type Projector[C any] interface {
	Project(p C) (image.Point, error)
}

// ProjectorFunc adapts a function to the Projector interface.
type ProjectorFunc[C any] func(C) (image.Point, error)

// Project implements Projector.
func (f ProjectorFunc[C]) Project(p C) (image.Point, error) { return f(p) }

// Shift is the projector for pixel-space areas: it translates every point
// by Offset and never fails.
type Shift struct {
	Offset image.Point
}

// Project implements Projector.
func (s Shift) Project(p image.Point) (image.Point, error) {
	return p.Add(s.Offset), nil
}

// DrawingArea binds a backend to a projection from the logical space C.
// Drawing an element projects its points in order and hands the result to
// the element, which issues the backend calls.
//
// A DrawingArea is not safe for concurrent use. Independent areas on
// independent backends may be used from different goroutines.
type DrawingArea[C any] struct {
	backend DrawingBackend
	proj    Projector[C]
	opts    areaOptions

	buf []image.Point // projection scratch, reused between draws
}

// NewDrawingArea creates an area drawing on b through proj.
func NewDrawingArea[C any](b DrawingBackend, proj Projector[C], opts ...AreaOption) *DrawingArea[C] {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &DrawingArea[C]{
		backend: b,
		proj:    proj,
		opts:    options,
		buf:     make([]image.Point, 0, 16),
	}
}

// IntoDrawingArea returns a pixel-space area covering the whole backend.
func IntoDrawingArea(b DrawingBackend, opts ...AreaOption) *DrawingArea[image.Point] {
	return NewDrawingArea[image.Point](b, Shift{}, opts...)
}

// Backend returns the backend the area draws on.
func (a *DrawingArea[C]) Backend() DrawingBackend { return a.backend }

// Size returns the canvas size of the backend.
func (a *DrawingArea[C]) Size() Size { return a.backend.Size() }

// Draw projects the element's points and draws it.
//
// A projection failure aborts the element before any backend call and is
// returned wrapped with the index of the offending point, unless the area
// was created WithSkipInvalid. Backend errors are returned unchanged.
func (a *DrawingArea[C]) Draw(e Element[C]) error {
	pts := a.buf[:0]
	i := 0
	for p := range e.Points() {
		px, err := a.proj.Project(p)
		if err != nil {
			a.buf = pts
			if a.opts.skipInvalid {
				a.logger().Debug("plot: element skipped", "point", i, "err", err)
				return nil
			}
			return fmt.Errorf("plot: project point %d: %w", i, err)
		}
		pts = append(pts, px)
		i++
	}
	a.buf = pts
	return e.Draw(pts, a.backend, a.backend.Size())
}

// DrawAll draws the elements in order and stops at the first error.
// Later elements paint over earlier ones.
func (a *DrawingArea[C]) DrawAll(elems iter.Seq[Element[C]]) error {
	for e := range elems {
		if err := a.Draw(e); err != nil {
			return err
		}
	}
	return nil
}

// Fill paints the whole canvas with c.
func (a *DrawingArea[C]) Fill(c RGBA) error {
	size := a.backend.Size()
	return a.backend.DrawRect(image.Pt(0, 0), image.Pt(size.Width-1, size.Height-1), c.Filled(), true)
}

// Present flushes the backend if it buffers output.
func (a *DrawingArea[C]) Present() error {
	if p, ok := a.backend.(Presenter); ok {
		if err := p.Present(); err != nil {
			return err
		}
		a.logger().Debug("plot: backend presented", "size", a.backend.Size())
	}
	return nil
}

func (a *DrawingArea[C]) logger() *slog.Logger {
	if a.opts.logger != nil {
		return a.opts.logger
	}
	return Logger()
}

// Elements adapts a slice of concrete elements to a sequence accepted by
// DrawAll:
//
//	area.DrawAll(plot.Elements[image.Point](rects))
func Elements[C any, E Element[C]](elems []E) iter.Seq[Element[C]] {
	return func(yield func(Element[C]) bool) {
		for _, e := range elems {
			if !yield(e) {
				return
			}
		}
	}
}

// DualArea hosts two independently configured coordinate systems on one
// backend, such as a percentage series and a count series sharing a chart.
// Each series is projected only through its own area.
type DualArea[P, S any] struct {
	primary   *DrawingArea[P]
	secondary *DrawingArea[S]
}

// NewDualArea creates a dual area on b. The options apply to both areas.
func NewDualArea[P, S any](b DrawingBackend, primary Projector[P], secondary Projector[S], opts ...AreaOption) *DualArea[P, S] {
	return &DualArea[P, S]{
		primary:   NewDrawingArea(b, primary, opts...),
		secondary: NewDrawingArea(b, secondary, opts...),
	}
}

// Primary returns the area of the primary coordinate system.
func (d *DualArea[P, S]) Primary() *DrawingArea[P] { return d.primary }

// Secondary returns the area of the secondary coordinate system.
func (d *DualArea[P, S]) Secondary() *DrawingArea[S] { return d.secondary }

// DrawSeries draws elements in the primary coordinate system.
func (d *DualArea[P, S]) DrawSeries(elems iter.Seq[Element[P]]) error {
	return d.primary.DrawAll(elems)
}

// DrawSecondarySeries draws elements in the secondary coordinate system.
func (d *DualArea[P, S]) DrawSecondarySeries(elems iter.Seq[Element[S]]) error {
	return d.secondary.DrawAll(elems)
}
