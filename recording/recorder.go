package recording

import (
	"fmt"
	"image"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend"
)

func init() {
	backend.Register("recording", func(width, height int) (plot.DrawingBackend, error) {
		return NewRecorder(width, height), nil
	})
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithStrictBounds makes DrawPixel reject pixels outside the canvas with an
// OutOfCanvas error instead of recording them.
func WithStrictBounds() Option {
	return func(r *Recorder) {
		r.strict = true
	}
}

// Recorder captures backend calls as commands.
// It implements plot.DrawingBackend but produces no pixels. Use
// FinishRecording to obtain an immutable Recording that can be replayed to
// other backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	area := plot.IntoDrawingArea(rec)
//	_ = area.Draw(plot.NewCircle(image.Pt(100, 100), plot.Pixels(20), plot.Red))
//	recording := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	size      plot.Size
	commands  []Command
	resources *PointPool
	strict    bool

	// Injected failures, keyed by command type
	failures map[CommandType]error
}

// NewRecorder creates a new Recorder for a canvas of the given dimensions.
// Negative dimensions are treated as zero.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		size:      plot.Size{Width: max(width, 0), Height: max(height, 0)},
		commands:  make([]Command, 0, 256),
		resources: NewPointPool(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FailOn makes every following call of the given type return err wrapped
// as a backend error, without recording a command. A nil err removes the
// failure.
func (r *Recorder) FailOn(t CommandType, err error) {
	if err == nil {
		delete(r.failures, t)
		return
	}
	if r.failures == nil {
		r.failures = make(map[CommandType]error)
	}
	r.failures[t] = err
}

func (r *Recorder) fail(t CommandType) error {
	if err, ok := r.failures[t]; ok {
		return plot.WrapBackendError(fmt.Errorf("recording: %s: %w", t, err))
	}
	return nil
}

// Size implements plot.DrawingBackend.
func (r *Recorder) Size() plot.Size {
	return r.size
}

// DrawPixel implements plot.DrawingBackend.
func (r *Recorder) DrawPixel(p image.Point, c plot.RGBA) error {
	if err := r.fail(CmdDrawPixel); err != nil {
		return err
	}
	if r.strict && !p.In(image.Rect(0, 0, r.size.Width, r.size.Height)) {
		return plot.OutOfCanvasError(p)
	}
	r.commands = append(r.commands, DrawPixelCommand{Point: p, Color: c})
	return nil
}

// DrawPath implements plot.DrawingBackend.
func (r *Recorder) DrawPath(path []image.Point, style plot.ShapeStyle) error {
	if err := r.fail(CmdDrawPath); err != nil {
		return err
	}
	r.commands = append(r.commands, DrawPathCommand{
		Path:  r.resources.AddPath(path),
		Style: style,
	})
	return nil
}

// DrawRect implements plot.DrawingBackend.
func (r *Recorder) DrawRect(a, b image.Point, style plot.ShapeStyle, filled bool) error {
	if err := r.fail(CmdDrawRect); err != nil {
		return err
	}
	r.commands = append(r.commands, DrawRectCommand{A: a, B: b, Style: style, Filled: filled})
	return nil
}

// DrawCircle implements plot.DrawingBackend.
func (r *Recorder) DrawCircle(center image.Point, radius int, style plot.ShapeStyle, filled bool) error {
	if err := r.fail(CmdDrawCircle); err != nil {
		return err
	}
	r.commands = append(r.commands, DrawCircleCommand{
		Center: center,
		Radius: radius,
		Style:  style,
		Filled: filled,
	})
	return nil
}

// FillPolygon implements plot.DrawingBackend.
func (r *Recorder) FillPolygon(vertices []image.Point, c plot.RGBA) error {
	if err := r.fail(CmdFillPolygon); err != nil {
		return err
	}
	r.commands = append(r.commands, FillPolygonCommand{
		Path:  r.resources.AddPath(vertices),
		Color: c,
	})
	return nil
}

// DrawText implements plot.DrawingBackend.
func (r *Recorder) DrawText(text string, pos image.Point, style plot.TextStyle) error {
	if err := r.fail(CmdDrawText); err != nil {
		return err
	}
	r.commands = append(r.commands, DrawTextCommand{Text: text, Pos: pos, Style: style})
	return nil
}

// Commands returns the commands recorded so far.
// The returned slice must not be modified.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns the number of recorded commands of the given type.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// DrawCount returns the total number of recorded commands.
func (r *Recorder) DrawCount() int {
	return len(r.commands)
}

// Points returns the point list referenced by a path or polygon command.
func (r *Recorder) Points(ref PathRef) []image.Point {
	return r.resources.GetPath(ref)
}

// Reset discards all recorded commands. Injected failures are kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// FinishRecording returns an immutable snapshot of the recorded commands.
// The Recorder can keep recording afterwards without affecting the
// snapshot.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		size:      r.size,
		commands:  cmds,
		resources: r.resources.Clone(),
	}
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	size      plot.Size
	commands  []Command
	resources *PointPool
}

// Size returns the canvas size the recording was made for.
func (r *Recording) Size() plot.Size {
	return r.size
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the point pool referenced by the commands.
func (r *Recording) Resources() *PointPool {
	return r.resources
}

// Playback replays the recording onto b, in recording order.
// It stops at the first error and returns it unchanged.
// Presenting the target backend is left to the caller.
func (r *Recording) Playback(b plot.DrawingBackend) error {
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case DrawPixelCommand:
			err = b.DrawPixel(c.Point, c.Color)
		case DrawPathCommand:
			err = b.DrawPath(r.resources.GetPath(c.Path), c.Style)
		case DrawRectCommand:
			err = b.DrawRect(c.A, c.B, c.Style, c.Filled)
		case DrawCircleCommand:
			err = b.DrawCircle(c.Center, c.Radius, c.Style, c.Filled)
		case FillPolygonCommand:
			err = b.FillPolygon(r.resources.GetPath(c.Path), c.Color)
		case DrawTextCommand:
			err = b.DrawText(c.Text, c.Pos, c.Style)
		default:
			err = fmt.Errorf("recording: command %d: unknown type %s", i, cmd.Type())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// compile-time check
var _ plot.DrawingBackend = (*Recorder)(nil)
