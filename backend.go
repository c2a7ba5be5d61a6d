package plot

import "image"

// DrawingBackend is the interface that all renderers must implement.
// A backend receives geometry already projected to pixel space and
// translates it to its output format (raster pixels, SVG elements, a
// recorded command list, etc.).
//
// Every method returns nil on success or a backend error, typically a
// *DrawingError. Callers propagate these errors unchanged.
//
// # Implementation Contract
//
// Each backend must:
//  1. Normalize rectangle corners given in any order
//  2. Decide how to render degenerate geometry (empty paths, inverted
//     rectangles, zero radii) instead of failing on it
//  3. Report a stable canvas size for the whole drawing session
//  4. Not retain point slices past the call; callers reuse them
//
// A backend is owned by one drawing session at a time and is not required
// to be safe for concurrent use.
type DrawingBackend interface {
	// Size returns the canvas size in pixels.
	Size() Size

	// DrawPixel sets a single pixel to the given color.
	DrawPixel(p image.Point, c RGBA) error

	// DrawPath strokes an open polyline through the points in order.
	DrawPath(path []image.Point, style ShapeStyle) error

	// DrawRect draws the axis-aligned rectangle with corners a and b,
	// filled or stroked. Both corners are inclusive pixel positions.
	DrawRect(a, b image.Point, style ShapeStyle, filled bool) error

	// DrawCircle draws a circle of the given pixel radius, filled or stroked.
	DrawCircle(center image.Point, radius int, style ShapeStyle, filled bool) error

	// FillPolygon fills the implicitly closed polygon through the vertices.
	FillPolygon(vertices []image.Point, c RGBA) error

	// DrawText draws text with its baseline origin at pos.
	DrawText(text string, pos image.Point, style TextStyle) error
}

// Presenter is implemented by backends that buffer output and need a final
// flush, such as writing an SVG end tag or encoding an image.
type Presenter interface {
	Present() error
}
