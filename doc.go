// Package plot provides a backend-agnostic 2D rendering core for charts.
//
// # Overview
//
// plot separates what to draw from how a backend paints it. Elements
// (Pixel, Path, Rectangle, Circle, Polygon) hold geometry in an arbitrary
// logical coordinate space plus a ShapeStyle. A DrawingArea projects their
// points to pixels through a Projector and lets each element issue
// primitive calls on a DrawingBackend.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/plot"
//	    "github.com/gogpu/plot/backends/raster"
//	    "github.com/gogpu/plot/coord"
//	)
//
//	b := raster.New(800, 600)
//	cart := coord.NewCartesian2D[float64, float64](coord.NewLinear(0.0, 10.0), coord.NewLinear(-1.0, 1.0), b.Bounds())
//	area := plot.NewDrawingArea[coord.XY[float64, float64]](b, cart)
//
//	_ = area.Fill(plot.White)
//	_ = area.Draw(plot.NewPath(points, plot.Red.StrokeWidth(2)))
//	_ = b.SavePNG("chart.png")
//
// Projection failures, such as a non-positive value on a logarithmic axis,
// abort the element before any backend call. Backend errors are returned
// unchanged, usually as a *DrawingError.
//
// # Backends
//
//   - backends/raster: image.RGBA through rasterx, PNG output
//   - backends/svg: SVG markup through svgo
//   - backends/draw2d: image.RGBA through draw2d
//   - recording: in-memory command recorder used for tests and replay
//
// Backends register themselves with package backend so programs can pick
// one by name.
//
// # Coordinate System
//
// Pixel coordinates use image.Point:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Drawing is synchronous. A DrawingArea and its backend belong to one
// goroutine; independent areas on independent backends need no locking.
package plot
