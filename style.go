package plot

// ShapeStyle describes how a shape is painted: its color, whether it is
// filled, and the stroke width in pixels used when it is not.
//
// ShapeStyle is a value type. The builder methods return modified copies,
// so a style held by an element can never change after construction.
type ShapeStyle struct {
	Color       RGBA
	Filled      bool
	StrokeWidth int
}

// Styler is implemented by values that can be turned into a ShapeStyle.
// Element constructors accept a Styler so both a bare color and a fully
// built style can be passed:
//
//	plot.NewPixel(p, plot.Red)
//	plot.NewPath(pts, plot.Blue.StrokeWidth(5))
//	plot.NewRectangle(a, b, plot.Green.Filled())
type Styler interface {
	ShapeStyle() ShapeStyle
}

// ShapeStyle implements Styler.
func (s ShapeStyle) ShapeStyle() ShapeStyle { return s }

// Fill returns a copy of s with the filled flag set.
func (s ShapeStyle) Fill() ShapeStyle {
	s.Filled = true
	return s
}

// Stroke returns a copy of s with the given stroke width.
// Negative widths saturate to zero.
func (s ShapeStyle) Stroke(width int) ShapeStyle {
	s.StrokeWidth = max(width, 0)
	return s
}

// TextStyle describes how DrawText renders a string.
// Size is the nominal font height in pixels; backends with a fixed face
// may ignore it.
type TextStyle struct {
	Color RGBA
	Size  float64
}

// Size is the pixel size of a canvas.
type Size struct {
	Width, Height int
}

// SizeDesc is a size that is resolved to pixels at draw time, either as an
// absolute count or relative to the canvas dimensions.
type SizeDesc interface {
	// InPixels returns the size for the given canvas. The result may be
	// negative; use ResolveSize for the saturated value.
	InPixels(canvas Size) int
}

// Pixels is an absolute size in pixels.
type Pixels int

// InPixels implements SizeDesc.
func (p Pixels) InPixels(Size) int { return int(p) }

// RelativeToWidth is a fraction of the canvas width.
type RelativeToWidth float64

// InPixels implements SizeDesc.
func (r RelativeToWidth) InPixels(canvas Size) int {
	return int(float64(r) * float64(canvas.Width))
}

// RelativeToHeight is a fraction of the canvas height.
type RelativeToHeight float64

// InPixels implements SizeDesc.
func (r RelativeToHeight) InPixels(canvas Size) int {
	return int(float64(r) * float64(canvas.Height))
}

// RelativeToSmaller is a fraction of the smaller canvas dimension.
type RelativeToSmaller float64

// InPixels implements SizeDesc.
func (r RelativeToSmaller) InPixels(canvas Size) int {
	return int(float64(r) * float64(min(canvas.Width, canvas.Height)))
}

// ResolveSize resolves d against the canvas size, saturating at zero.
// A nil descriptor resolves to zero.
func ResolveSize(d SizeDesc, canvas Size) int {
	if d == nil {
		return 0
	}
	return max(d.InPixels(canvas), 0)
}
