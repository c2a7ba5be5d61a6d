package coord

import (
	"fmt"
	"image"
)

// XY is a point in a two-dimensional logical space.
type XY[X, Y any] struct {
	X X
	Y Y
}

// Pt is a convenience function to create an XY point.
func Pt[X, Y any](x X, y Y) XY[X, Y] {
	return XY[X, Y]{X: x, Y: y}
}

// Cartesian2D projects XY points into a pixel rectangle.
//
// The x axis runs from rect.Min.X to rect.Max.X-1 and the y axis from
// rect.Max.Y-1 up to rect.Min.Y, so larger y values are drawn higher.
// Cartesian2D implements plot.Projector[XY[X, Y]].
type Cartesian2D[X, Y any] struct {
	x    Ranged[X]
	y    Ranged[Y]
	rect image.Rectangle
}

// NewCartesian2D creates a coordinate system. Go cannot infer X and Y from
// the ranges, so they are usually spelled out:
//
//	cart := coord.NewCartesian2D[float64, float64](coord.NewLinear(0.0, 10.0), coord.MustLog(0.1, 1e10), rect)
func NewCartesian2D[X, Y any](x Ranged[X], y Ranged[Y], rect image.Rectangle) *Cartesian2D[X, Y] {
	return &Cartesian2D[X, Y]{x: x, y: y, rect: rect.Canon()}
}

// X returns the x range.
func (c *Cartesian2D[X, Y]) X() Ranged[X] { return c.x }

// Y returns the y range.
func (c *Cartesian2D[X, Y]) Y() Ranged[Y] { return c.y }

// Rect returns the pixel rectangle the system projects into.
func (c *Cartesian2D[X, Y]) Rect() image.Rectangle { return c.rect }

// PixelRangeX returns the pixel span of the x axis.
func (c *Cartesian2D[X, Y]) PixelRangeX() (from, to int) {
	return c.rect.Min.X, c.rect.Max.X - 1
}

// PixelRangeY returns the pixel span of the y axis, bottom first.
func (c *Cartesian2D[X, Y]) PixelRangeY() (from, to int) {
	return c.rect.Max.Y - 1, c.rect.Min.Y
}

// Project implements plot.Projector.
func (c *Cartesian2D[X, Y]) Project(p XY[X, Y]) (image.Point, error) {
	fx, tx := c.PixelRangeX()
	px, err := c.x.Map(p.X, fx, tx)
	if err != nil {
		return image.Point{}, fmt.Errorf("coord: x axis: %w", err)
	}
	fy, ty := c.PixelRangeY()
	py, err := c.y.Map(p.Y, fy, ty)
	if err != nil {
		return image.Point{}, fmt.Errorf("coord: y axis: %w", err)
	}
	return image.Pt(px, py), nil
}

// Inset shrinks rect by the given margins, typically to reserve label
// areas around the plotting rectangle. The result is empty rather than
// inverted when the margins exceed the rectangle.
func Inset(rect image.Rectangle, top, bottom, left, right int) image.Rectangle {
	r := image.Rectangle{
		Min: image.Pt(rect.Min.X+left, rect.Min.Y+top),
		Max: image.Pt(rect.Max.X-right, rect.Max.Y-bottom),
	}
	if r.Min.X > r.Max.X {
		r.Max.X = r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}
