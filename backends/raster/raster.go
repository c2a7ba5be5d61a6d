// Package raster provides an anti-aliased raster backend for plot.
// It renders elements to an *image.RGBA using rasterx and encodes PNG.
//
// # Pixel Model
//
// A pixel coordinate addresses the unit square [x, x+1) x [y, y+1).
// Rectangles cover both corner pixels, while strokes, circles and polygon
// outlines pass through pixel centers.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/plot/backends/raster"
//
//	// Create via registry
//	b, _ := backend.New("raster", 800, 600)
//
//	// Or create directly
//	b := raster.New(800, 600)
//
//	// Playback a recording
//	rec.Playback(b)
//
//	// Get output
//	b.SavePNG("output.png")
//	img := b.Image()
package raster

import (
	"image"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend"
	"github.com/gogpu/plot/internal/canvas"
)

func init() {
	backend.Register("raster", func(width, height int) (plot.DrawingBackend, error) {
		return New(width, height), nil
	})
}

// miterLimit is the rasterx miter limit, in 26.6 fixed point.
const miterLimit = 4 << 6

// Backend renders to a pixel image through rasterx.
// It implements plot.DrawingBackend and backend.OutputBackend.
type Backend struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
}

// Ensure Backend implements all required interfaces.
var (
	_ plot.DrawingBackend   = (*Backend)(nil)
	_ backend.OutputBackend = (*Backend)(nil)
)

// New creates a transparent raster canvas. Negative dimensions are treated
// as zero.
func New(width, height int) *Backend {
	w, h := max(width, 0), max(height, 0)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Backend{
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(w, h, scanner),
		dasher:  rasterx.NewDasher(w, h, scanner),
	}
}

// Size implements plot.DrawingBackend.
func (b *Backend) Size() plot.Size {
	return plot.Size{Width: b.img.Bounds().Dx(), Height: b.img.Bounds().Dy()}
}

// Bounds returns the canvas rectangle.
func (b *Backend) Bounds() image.Rectangle {
	return b.img.Bounds()
}

// DrawPixel implements plot.DrawingBackend. The color is composited over
// the existing pixel. Pixels outside the canvas are ignored.
func (b *Backend) DrawPixel(p image.Point, c plot.RGBA) error {
	canvas.Blend(b.img, p, c.NRGBA())
	return nil
}

// DrawPath implements plot.DrawingBackend. Paths with fewer than two
// points draw nothing. Segments are clipped to the guard band, so a path
// leaving it continues as a new subpath where it comes back.
func (b *Backend) DrawPath(path []image.Point, style plot.ShapeStyle) error {
	if len(path) < 2 {
		return nil
	}
	b.stroke(style)
	down := false
	for i := 1; i < len(path); i++ {
		s, ok := clipSegment(pixelCenter(path[i-1]), pixelCenter(path[i]))
		if !ok {
			continue
		}
		if !down {
			b.dasher.Start(s.a.fixed())
			down = true
		}
		b.dasher.Line(s.b.fixed())
		if s.endClipped {
			b.dasher.Stop(false)
			down = false
		}
	}
	if down {
		b.dasher.Stop(false)
	}
	b.dasher.Draw()
	return nil
}

// DrawRect implements plot.DrawingBackend.
func (b *Backend) DrawRect(p0, p1 image.Point, style plot.ShapeStyle, filled bool) error {
	x0, x1 := clampGuard(min(p0.X, p1.X)), clampGuard(max(p0.X, p1.X))
	y0, y1 := clampGuard(min(p0.Y, p1.Y)), clampGuard(max(p0.Y, p1.Y))
	if filled {
		b.fill(style.Color)
		rasterx.AddRect(float64(x0), float64(y0), float64(x1+1), float64(y1+1), 0, b.filler)
		b.filler.Draw()
		return nil
	}
	b.stroke(style)
	b.dasher.Start(pixelCenter(image.Pt(x0, y0)).fixed())
	b.dasher.Line(pixelCenter(image.Pt(x1, y0)).fixed())
	b.dasher.Line(pixelCenter(image.Pt(x1, y1)).fixed())
	b.dasher.Line(pixelCenter(image.Pt(x0, y1)).fixed())
	b.dasher.Stop(true)
	b.dasher.Draw()
	return nil
}

// DrawCircle implements plot.DrawingBackend. A non-positive radius draws
// nothing, as does a circle entirely off the canvas. A circle reaching the
// canvas but extending past the guard band is reported as out of canvas.
func (b *Backend) DrawCircle(c image.Point, radius int, style plot.ShapeStyle, filled bool) error {
	if radius <= 0 {
		return nil
	}
	cx, cy, r := float64(c.X)+0.5, float64(c.Y)+0.5, float64(radius)
	reach := r + float64(max(style.StrokeWidth, 1))
	size := b.Size()
	if cx+reach < 0 || cy+reach < 0 || cx-reach > float64(size.Width) || cy-reach > float64(size.Height) {
		return nil
	}
	if math.Abs(cx)+r > guard || math.Abs(cy)+r > guard {
		return plot.OutOfCanvasError(c)
	}
	if filled {
		b.fill(style.Color)
		rasterx.AddCircle(cx, cy, r, b.filler)
		b.filler.Draw()
		return nil
	}
	b.stroke(style)
	rasterx.AddCircle(cx, cy, r, b.dasher)
	b.dasher.Draw()
	return nil
}

// FillPolygon implements plot.DrawingBackend. Polygons with fewer than
// three vertices draw nothing.
func (b *Backend) FillPolygon(vertices []image.Point, c plot.RGBA) error {
	if len(vertices) < 3 {
		return nil
	}
	pts := make([]vec, len(vertices))
	for i, p := range vertices {
		pts[i] = pixelCenter(p)
	}
	pts = clipPolygon(pts)
	if len(pts) < 3 {
		return nil
	}
	b.fill(c)
	b.filler.Start(pts[0].fixed())
	for _, p := range pts[1:] {
		b.filler.Line(p.fixed())
	}
	b.filler.Stop(true)
	b.filler.Draw()
	return nil
}

// DrawText implements plot.DrawingBackend with the fixed 7x13 basic font;
// style.Size is ignored.
func (b *Backend) DrawText(text string, pos image.Point, style plot.TextStyle) error {
	canvas.Text(b.img, text, pos, style.Color.NRGBA())
	return nil
}

// fill prepares the filler for a new shape.
func (b *Backend) fill(c plot.RGBA) {
	b.filler.Clear()
	b.scanner.SetColor(c.NRGBA())
}

// stroke prepares the dasher for a new outline. Zero widths draw hairlines.
func (b *Backend) stroke(style plot.ShapeStyle) {
	b.dasher.Clear()
	width := fixed.Int26_6(min(max(style.StrokeWidth, 1), maxStroke) << 6)
	b.dasher.SetStroke(width, miterLimit, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Round, nil, 0)
	b.scanner.SetColor(style.Color.NRGBA())
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
	plot.Logger().Info("raster: saved", "path", path, "bytes", n)
	return nil
}

// SavePNG is a convenience alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}
