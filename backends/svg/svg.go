// Package svg provides a vector backend for plot that emits SVG markup
// through svgo.
//
// Shapes map one to one onto SVG elements: pixels and rectangles become
// <rect>, paths <polyline>, circles <circle> and polygons <polygon>.
// Coordinates are written as integers in canvas pixels.
//
// The document is closed by Present, which is called implicitly by WriteTo
// and SaveToFile.
package svg

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend"
)

func init() {
	backend.Register("svg", func(width, height int) (plot.DrawingBackend, error) {
		return New(width, height), nil
	})
}

// Backend writes SVG elements as they are drawn.
// It implements plot.DrawingBackend, plot.Presenter and
// backend.OutputBackend.
type Backend struct {
	size   plot.Size
	canvas *svgo.SVG
	out    *errWriter
	buf    *bytes.Buffer // nil when streaming to a caller's writer
	ended  bool
}

// Ensure Backend implements all required interfaces.
var (
	_ plot.DrawingBackend   = (*Backend)(nil)
	_ plot.Presenter        = (*Backend)(nil)
	_ backend.OutputBackend = (*Backend)(nil)
)

// New creates a backend that buffers the document in memory.
func New(width, height int) *Backend {
	buf := new(bytes.Buffer)
	b := NewWriter(buf, width, height)
	b.buf = buf
	return b
}

// NewWriter creates a backend that streams the document to w. Write errors
// are reported by the first draw call that follows them.
func NewWriter(w io.Writer, width, height int) *Backend {
	out := &errWriter{w: w}
	b := &Backend{
		size:   plot.Size{Width: max(width, 0), Height: max(height, 0)},
		canvas: svgo.New(out),
		out:    out,
	}
	b.canvas.Start(b.size.Width, b.size.Height)
	return b
}

// Size implements plot.DrawingBackend.
func (b *Backend) Size() plot.Size {
	return b.size
}

// DrawPixel implements plot.DrawingBackend.
func (b *Backend) DrawPixel(p image.Point, c plot.RGBA) error {
	b.canvas.Rect(p.X, p.Y, 1, 1, fillStyle(c))
	return b.err()
}

// DrawPath implements plot.DrawingBackend. Empty paths write nothing.
func (b *Backend) DrawPath(path []image.Point, style plot.ShapeStyle) error {
	if len(path) == 0 {
		return nil
	}
	xs, ys := split(path)
	b.canvas.Polyline(xs, ys, "fill:none;"+strokeStyle(style))
	return b.err()
}

// DrawRect implements plot.DrawingBackend. Both corners are inclusive, so
// the emitted rectangle is one pixel wider and taller than their distance.
func (b *Backend) DrawRect(p0, p1 image.Point, style plot.ShapeStyle, filled bool) error {
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	if filled {
		b.canvas.Rect(x0, y0, x1-x0+1, y1-y0+1, fillStyle(style.Color))
	} else {
		b.canvas.Rect(x0, y0, x1-x0, y1-y0, "fill:none;"+strokeStyle(style))
	}
	return b.err()
}

// DrawCircle implements plot.DrawingBackend. A non-positive radius writes
// nothing.
func (b *Backend) DrawCircle(c image.Point, radius int, style plot.ShapeStyle, filled bool) error {
	if radius <= 0 {
		return nil
	}
	if filled {
		b.canvas.Circle(c.X, c.Y, radius, fillStyle(style.Color))
	} else {
		b.canvas.Circle(c.X, c.Y, radius, "fill:none;"+strokeStyle(style))
	}
	return b.err()
}

// FillPolygon implements plot.DrawingBackend. Empty polygons write nothing.
func (b *Backend) FillPolygon(vertices []image.Point, c plot.RGBA) error {
	if len(vertices) == 0 {
		return nil
	}
	xs, ys := split(vertices)
	b.canvas.Polygon(xs, ys, fillStyle(c))
	return b.err()
}

// DrawText implements plot.DrawingBackend.
func (b *Backend) DrawText(text string, pos image.Point, style plot.TextStyle) error {
	size := style.Size
	if size <= 0 {
		size = 13
	}
	b.canvas.Text(pos.X, pos.Y, text, fmt.Sprintf("font-family:sans-serif;font-size:%gpx;%s", size, fillStyle(style.Color)))
	return b.err()
}

// Present closes the SVG document. Calling it again has no effect.
func (b *Backend) Present() error {
	if b.ended {
		return b.err()
	}
	b.canvas.End()
	b.ended = true
	return b.err()
}

// Bytes returns the buffered document, or nil for a streaming backend.
func (b *Backend) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf.Bytes()
}

// WriteTo closes the document and copies it to w.
// It fails for a backend created with NewWriter.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.buf == nil {
		return 0, plot.WrapBackendError(errStreaming)
	}
	if err := b.Present(); err != nil {
		return 0, err
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), plot.WrapBackendError(err)
}

// SaveToFile closes the document and writes it to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return plot.WrapBackendError(err)
	}
	n, err := b.WriteTo(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = plot.WrapBackendError(cerr)
	}
	if err != nil {
		return err
	}
	plot.Logger().Info("svg: saved", "path", path, "bytes", n)
	return nil
}

func (b *Backend) err() error {
	return plot.WrapBackendError(b.out.err)
}

// fillStyle formats a fill color as an inline style.
func fillStyle(c plot.RGBA) string {
	n := c.NRGBA()
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3g", n.R, n.G, n.B, float64(n.A)/255)
}

// strokeStyle formats an outline. Zero widths draw hairlines.
func strokeStyle(style plot.ShapeStyle) string {
	n := style.Color.NRGBA()
	return fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-opacity:%.3g;stroke-width:%d",
		n.R, n.G, n.B, float64(n.A)/255, max(style.StrokeWidth, 1))
}

func split(pts []image.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
