// Package draw2d provides a raster backend for plot built on draw2dimg.
//
// It is an alternative to package raster with draw2d's stroker and
// rasterizer. Lines are drawn with round caps and joins, pixel
// coordinates addressing pixel centers.
package draw2d

import (
	"image"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend"
	"github.com/gogpu/plot/internal/canvas"
)

func init() {
	backend.Register("draw2d", func(width, height int) (plot.DrawingBackend, error) {
		return New(width, height), nil
	})
}

// Backend renders to an *image.RGBA through a draw2d graphic context.
// It implements plot.DrawingBackend and backend.OutputBackend.
type Backend struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
}

// Ensure Backend implements all required interfaces.
var (
	_ plot.DrawingBackend   = (*Backend)(nil)
	_ backend.OutputBackend = (*Backend)(nil)
)

// New creates a transparent canvas. Negative dimensions are treated as zero.
func New(width, height int) *Backend {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)
	return &Backend{img: img, gc: gc}
}

// Size implements plot.DrawingBackend.
func (b *Backend) Size() plot.Size {
	return plot.Size{Width: b.img.Bounds().Dx(), Height: b.img.Bounds().Dy()}
}

// Bounds returns the canvas rectangle.
func (b *Backend) Bounds() image.Rectangle {
	return b.img.Bounds()
}

// DrawPixel implements plot.DrawingBackend.
func (b *Backend) DrawPixel(p image.Point, c plot.RGBA) error {
	canvas.Blend(b.img, p, c.NRGBA())
	return nil
}

// DrawPath implements plot.DrawingBackend.
func (b *Backend) DrawPath(path []image.Point, style plot.ShapeStyle) error {
	if len(path) < 2 {
		return nil
	}
	b.gc.BeginPath()
	b.gc.MoveTo(px(path[0]))
	for _, p := range path[1:] {
		b.gc.LineTo(px(p))
	}
	b.strokeWith(style)
	return nil
}

// DrawRect implements plot.DrawingBackend.
func (b *Backend) DrawRect(p0, p1 image.Point, style plot.ShapeStyle, filled bool) error {
	x0, x1 := float64(min(p0.X, p1.X)), float64(max(p0.X, p1.X))
	y0, y1 := float64(min(p0.Y, p1.Y)), float64(max(p0.Y, p1.Y))
	b.gc.BeginPath()
	if filled {
		draw2dkit.Rectangle(b.gc, x0, y0, x1+1, y1+1)
		b.fillWith(style.Color)
		return nil
	}
	draw2dkit.Rectangle(b.gc, x0+0.5, y0+0.5, x1+0.5, y1+0.5)
	b.strokeWith(style)
	return nil
}

// DrawCircle implements plot.DrawingBackend. A non-positive radius draws
// nothing.
func (b *Backend) DrawCircle(c image.Point, radius int, style plot.ShapeStyle, filled bool) error {
	if radius <= 0 {
		return nil
	}
	cx, cy := px(c)
	b.gc.BeginPath()
	draw2dkit.Circle(b.gc, cx, cy, float64(radius))
	if filled {
		b.fillWith(style.Color)
	} else {
		b.strokeWith(style)
	}
	return nil
}

// FillPolygon implements plot.DrawingBackend.
func (b *Backend) FillPolygon(vertices []image.Point, c plot.RGBA) error {
	if len(vertices) < 3 {
		return nil
	}
	b.gc.BeginPath()
	b.gc.MoveTo(px(vertices[0]))
	for _, p := range vertices[1:] {
		b.gc.LineTo(px(p))
	}
	b.gc.Close()
	b.fillWith(c)
	return nil
}

// DrawText implements plot.DrawingBackend with the fixed 7x13 basic font.
// draw2d text needs TrueType font data, which plot does not ship.
func (b *Backend) DrawText(text string, pos image.Point, style plot.TextStyle) error {
	canvas.Text(b.img, text, pos, style.Color.NRGBA())
	return nil
}

func (b *Backend) fillWith(c plot.RGBA) {
	b.gc.SetFillColor(c.NRGBA())
	b.gc.Fill()
}

// strokeWith strokes the current path. Zero widths draw hairlines.
func (b *Backend) strokeWith(style plot.ShapeStyle) {
	b.gc.SetStrokeColor(style.Color.NRGBA())
	b.gc.SetLineWidth(float64(max(style.StrokeWidth, 1)))
	b.gc.Stroke()
}

// px returns the center of pixel p.
func px(p image.Point) (x, y float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := canvas.EncodePNG(w, b.img)
	return n, plot.WrapBackendError(err)
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	n, err := canvas.SavePNG(path, b.img)
	if err != nil {
		return plot.WrapBackendError(err)
	}
	plot.Logger().Info("draw2d: saved", "path", path, "bytes", n)
	return nil
}
