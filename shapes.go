package plot

import (
	"image"
	"iter"
	"slices"
)

// Pixel is an element of a single pixel.
type Pixel[C any] struct {
	pos   C
	style ShapeStyle
}

// NewPixel creates a pixel element at pos.
func NewPixel[C any](pos C, style Styler) *Pixel[C] {
	return &Pixel[C]{pos: pos, style: style.ShapeStyle()}
}

// Points implements PointCollection.
func (p *Pixel[C]) Points() iter.Seq[C] {
	return func(yield func(C) bool) {
		yield(p.pos)
	}
}

// Draw implements Drawable. It draws nothing when no point is given.
func (p *Pixel[C]) Draw(points []image.Point, backend DrawingBackend, _ Size) error {
	if len(points) < 1 {
		return nil
	}
	return backend.DrawPixel(points[0], p.style.Color)
}

// Path is an element of a series of connected lines.
type Path[C any] struct {
	points []C
	style  ShapeStyle
}

// NewPath creates an open polyline through points, in order.
// The path takes ownership of the slice; callers must not modify it
// afterwards.
func NewPath[C any](points []C, style Styler) *Path[C] {
	return &Path[C]{points: points, style: style.ShapeStyle()}
}

// Points implements PointCollection.
func (p *Path[C]) Points() iter.Seq[C] {
	return slices.Values(p.points)
}

// Draw implements Drawable. The projected points are passed to the backend
// as is, including an empty sequence.
func (p *Path[C]) Draw(points []image.Point, backend DrawingBackend, _ Size) error {
	return backend.DrawPath(points, p.style)
}

// Rectangle is an axis-aligned rectangle given by two opposite corners.
type Rectangle[C any] struct {
	points [2]C
	style  ShapeStyle

	top, bottom, left, right int
}

// NewRectangle creates a rectangle with corners a and b, in any order.
func NewRectangle[C any](a, b C, style Styler) *Rectangle[C] {
	return &Rectangle[C]{points: [2]C{a, b}, style: style.ShapeStyle()}
}

// SetMargin sets the pixel margins applied after projection. Top and left
// margins move the upper left corner inward, bottom and right margins move
// the lower right corner inward. Margins only shrink: negative values are
// treated as 0. Margins larger than the rectangle invert it.
func (r *Rectangle[C]) SetMargin(top, bottom, left, right int) *Rectangle[C] {
	r.top, r.bottom, r.left, r.right = max(top, 0), max(bottom, 0), max(left, 0), max(right, 0)
	return r
}

// Points implements PointCollection.
func (r *Rectangle[C]) Points() iter.Seq[C] {
	return slices.Values(r.points[:])
}

// Draw implements Drawable. It draws nothing when fewer than two points
// are given.
func (r *Rectangle[C]) Draw(points []image.Point, backend DrawingBackend, _ Size) error {
	if len(points) < 2 {
		return nil
	}
	a, b := points[0], points[1]
	upperLeft := image.Pt(min(a.X, b.X)+r.left, min(a.Y, b.Y)+r.top)
	bottomRight := image.Pt(max(a.X, b.X)-r.right, max(a.Y, b.Y)-r.bottom)
	return backend.DrawRect(upperLeft, bottomRight, r.style, r.style.Filled)
}

// Circle is a circle around a center point. Its radius is resolved against
// the canvas size when it is drawn.
type Circle[C any] struct {
	center C
	size   SizeDesc
	style  ShapeStyle
}

// NewCircle creates a circle element.
func NewCircle[C any](center C, radius SizeDesc, style Styler) *Circle[C] {
	return &Circle[C]{center: center, size: radius, style: style.ShapeStyle()}
}

// Points implements PointCollection.
func (c *Circle[C]) Points() iter.Seq[C] {
	return func(yield func(C) bool) {
		yield(c.center)
	}
}

// Draw implements Drawable. It draws nothing when no point is given.
func (c *Circle[C]) Draw(points []image.Point, backend DrawingBackend, canvas Size) error {
	if len(points) < 1 {
		return nil
	}
	radius := ResolveSize(c.size, canvas)
	return backend.DrawCircle(points[0], radius, c.style, c.style.Filled)
}

// Polygon is a filled polygon. The outline is implicitly closed.
type Polygon[C any] struct {
	points []C
	style  ShapeStyle
}

// NewPolygon creates a filled polygon through points. The polygon takes
// ownership of the slice. Only the style's color is used: polygons are
// always filled and never stroked.
func NewPolygon[C any](points []C, style Styler) *Polygon[C] {
	return &Polygon[C]{points: points, style: style.ShapeStyle()}
}

// Points implements PointCollection.
func (p *Polygon[C]) Points() iter.Seq[C] {
	return slices.Values(p.points)
}

// Draw implements Drawable.
func (p *Polygon[C]) Draw(points []image.Point, backend DrawingBackend, _ Size) error {
	return backend.FillPolygon(points, p.style.Color)
}

// compile-time checks
var (
	_ Element[image.Point] = (*Pixel[image.Point])(nil)
	_ Element[image.Point] = (*Path[image.Point])(nil)
	_ Element[image.Point] = (*Rectangle[image.Point])(nil)
	_ Element[image.Point] = (*Circle[image.Point])(nil)
	_ Element[image.Point] = (*Polygon[image.Point])(nil)
)
