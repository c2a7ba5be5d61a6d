// Package recording provides an in-memory backend that records draw calls.
//
// The Recorder implements plot.DrawingBackend and captures every primitive
// call as a typed command instead of painting pixels. It serves two
// purposes:
//
//   - Verification: tests draw elements onto a Recorder and assert on the
//     exact sequence of commands, their colors, widths, fill flags and
//     geometry.
//   - Replay: a finished Recording can be played back onto any other
//     backend, so one scene can be rendered to several outputs.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures draw calls as commands
//   - Recording: Stores commands and point lists for playback
//   - plot.DrawingBackend: Renders commands to a specific output format
//
// Point lists (paths and polygons) are copied into a PointPool and referred
// to by PathRef, since callers reuse the slices they pass to backends.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(300, 300)
//	area := plot.IntoDrawingArea(rec)
//	_ = area.Draw(plot.NewPixel(image.Pt(150, 152), plot.Red))
//
//	rec.Count(recording.CmdDrawPixel) // 1
//	cmd := rec.Commands()[0].(recording.DrawPixelCommand)
//
// # Error Injection
//
// FailOn makes the Recorder return an error for one command type, which
// lets tests exercise error propagation through elements and areas:
//
//	rec.FailOn(recording.CmdDrawRect, io.ErrShortWrite)
//
// # Playback
//
//	r := rec.FinishRecording()
//	err := r.Playback(rasterBackend)
//
// # Thread Safety
//
// Recorder and Recording are not safe for concurrent use.
package recording
