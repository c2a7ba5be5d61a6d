package recording

import (
	"image"

	"github.com/gogpu/plot"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one plot.DrawingBackend primitive.
type CommandType uint8

const (
	CmdDrawPixel   CommandType = iota // Set a single pixel
	CmdDrawPath                       // Stroke an open polyline
	CmdDrawRect                       // Draw a rectangle
	CmdDrawCircle                     // Draw a circle
	CmdFillPolygon                    // Fill a polygon
	CmdDrawText                       // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawPixel:   "DrawPixel",
	CmdDrawPath:    "DrawPath",
	CmdDrawRect:    "DrawRect",
	CmdDrawCircle:  "DrawCircle",
	CmdFillPolygon: "FillPolygon",
	CmdDrawText:    "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a point list in the PointPool.
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid point list.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// DrawPixelCommand sets a single pixel.
type DrawPixelCommand struct {
	Point image.Point
	Color plot.RGBA
}

// Type implements Command.
func (DrawPixelCommand) Type() CommandType { return CmdDrawPixel }

// DrawPathCommand strokes an open polyline.
type DrawPathCommand struct {
	// Path references the points in the pool.
	Path  PathRef
	Style plot.ShapeStyle
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawRectCommand draws a rectangle. The corners are recorded as received,
// without normalization.
type DrawRectCommand struct {
	A, B   image.Point
	Style  plot.ShapeStyle
	Filled bool
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawCircleCommand draws a circle.
type DrawCircleCommand struct {
	Center image.Point
	Radius int
	Style  plot.ShapeStyle
	Filled bool
}

// Type implements Command.
func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// FillPolygonCommand fills a polygon.
type FillPolygonCommand struct {
	// Path references the vertices in the pool.
	Path  PathRef
	Color plot.RGBA
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

// DrawTextCommand draws a string.
type DrawTextCommand struct {
	Text  string
	Pos   image.Point
	Style plot.TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
