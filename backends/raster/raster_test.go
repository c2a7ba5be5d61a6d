package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend"
	"github.com/gogpu/plot/recording"
)

func isRed(c interface{ RGBA() (r, g, b, a uint32) }) bool {
	r, g, b, a := c.RGBA()
	return r > 0xc000 && g < 0x3000 && b < 0x3000 && a > 0xc000
}

func TestBackendRegistration(t *testing.T) {
	if !backend.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}
	b, err := backend.New("raster", 64, 48)
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("backend is %T, want *raster.Backend", b)
	}
	if b.Size() != (plot.Size{Width: 64, Height: 48}) {
		t.Errorf("Size() = %v, want 64x48", b.Size())
	}
}

func TestBackendStartsTransparent(t *testing.T) {
	b := New(10, 10)
	if _, _, _, a := b.Image().At(5, 5).RGBA(); a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
	if got := b.Bounds(); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestBackendFillRect(t *testing.T) {
	b := New(100, 100)
	if err := b.DrawRect(image.Pt(49, 49), image.Pt(10, 10), plot.Red.Filled(), true); err != nil {
		t.Fatalf("DrawRect: %v", err)
	}
	img := b.Image()
	for _, p := range []image.Point{{10, 10}, {35, 35}, {49, 49}} {
		if !isRed(img.At(p.X, p.Y)) {
			t.Errorf("pixel %v = %v, expected red", p, img.At(p.X, p.Y))
		}
	}
	if _, _, _, a := img.At(50, 50).RGBA(); a != 0 {
		t.Errorf("pixel outside rectangle painted: alpha %d", a)
	}
}

func TestBackendStrokeRect(t *testing.T) {
	b := New(100, 100)
	if err := b.DrawRect(image.Pt(10, 10), image.Pt(80, 80), plot.Red.StrokeWidth(2), false); err != nil {
		t.Fatal(err)
	}
	img := b.Image()
	if !isRed(img.At(10, 40)) {
		t.Errorf("left edge %v, expected red", img.At(10, 40))
	}
	if _, _, _, a := img.At(45, 45).RGBA(); a != 0 {
		t.Errorf("stroked rectangle filled its interior: alpha %d", a)
	}
}

func TestBackendDrawPixel(t *testing.T) {
	b := New(10, 10)
	if err := b.DrawPixel(image.Pt(3, 4), plot.Red); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(3, 4)) {
		t.Errorf("pixel = %v, expected red", b.Image().At(3, 4))
	}
	if err := b.DrawPixel(image.Pt(-1, 20), plot.Red); err != nil {
		t.Errorf("off-canvas pixel should be ignored, got %v", err)
	}
}

func TestBackendDrawPath(t *testing.T) {
	b := New(100, 100)
	path := []image.Point{{10, 50}, {90, 50}}
	if err := b.DrawPath(path, plot.Red.StrokeWidth(3)); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(50, 50)) {
		t.Errorf("pixel on path = %v, expected red", b.Image().At(50, 50))
	}
	if _, _, _, a := b.Image().At(50, 60).RGBA(); a != 0 {
		t.Errorf("pixel off path painted: alpha %d", a)
	}

	// Degenerate paths are accepted and draw nothing.
	if err := b.DrawPath(nil, plot.Red.Style()); err != nil {
		t.Errorf("empty path: %v", err)
	}
}

func TestBackendFarOffCanvasPath(t *testing.T) {
	b := New(100, 100)
	path := []image.Point{{50, 10}, {1<<26 + 50, 50}}
	if err := b.DrawPath(path, plot.Red.StrokeWidth(3)); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(80, 10)) {
		t.Errorf("pixel on visible part = %v, expected red", b.Image().At(80, 10))
	}
	if _, _, _, a := b.Image().At(50, 40).RGBA(); a != 0 {
		t.Errorf("far endpoint wrapped onto the canvas: alpha %d at (50,40)", a)
	}
}

func TestBackendPathLeavesAndReturns(t *testing.T) {
	b := New(100, 100)
	path := []image.Point{{10, 20}, {1 << 26, 20}, {90, 30}}
	if err := b.DrawPath(path, plot.Red.StrokeWidth(3)); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{50, 20}, {95, 30}} {
		if !isRed(b.Image().At(p.X, p.Y)) {
			t.Errorf("pixel %v = %v, expected red", p, b.Image().At(p.X, p.Y))
		}
	}
	if _, _, _, a := b.Image().At(50, 40).RGBA(); a != 0 {
		t.Errorf("pixel off path painted: alpha %d", a)
	}
}

func TestBackendHugeStrokeWidth(t *testing.T) {
	b := New(100, 100)
	path := []image.Point{{10, 50}, {90, 50}}
	if err := b.DrawPath(path, plot.Red.StrokeWidth(1<<27)); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(50, 0)) {
		t.Errorf("pixel (50,0) = %v, expected the wide stroke to cover it", b.Image().At(50, 0))
	}
}

func TestBackendFarOffCanvasRect(t *testing.T) {
	b := New(100, 100)
	if err := b.DrawRect(image.Pt(10, 10), image.Pt(1<<30, 20), plot.Red.Filled(), true); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(90, 15)) {
		t.Errorf("filled rect pixel = %v, expected red", b.Image().At(90, 15))
	}
	if _, _, _, a := b.Image().At(90, 25).RGBA(); a != 0 {
		t.Errorf("pixel below rect painted: alpha %d", a)
	}

	b = New(100, 100)
	if err := b.DrawRect(image.Pt(10, 10), image.Pt(1<<30, 80), plot.Red.Style(), false); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(90, 10)) {
		t.Errorf("top edge pixel = %v, expected red", b.Image().At(90, 10))
	}
	if _, _, _, a := b.Image().At(90, 50).RGBA(); a != 0 {
		t.Errorf("interior of stroked rect painted: alpha %d", a)
	}
}

func TestBackendFarOffCanvasPolygon(t *testing.T) {
	b := New(100, 100)
	tri := []image.Point{{10, 10}, {1 << 30, 10}, {10, 90}}
	if err := b.FillPolygon(tri, plot.Red); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(50, 50)) {
		t.Errorf("inside polygon = %v, expected red", b.Image().At(50, 50))
	}
	if _, _, _, a := b.Image().At(5, 50).RGBA(); a != 0 {
		t.Errorf("outside polygon painted: alpha %d", a)
	}
}

func TestBackendFarOffCanvasCircle(t *testing.T) {
	b := New(100, 100)
	if err := b.DrawCircle(image.Pt(-1<<30, 50), 10, plot.Red.Filled(), true); err != nil {
		t.Errorf("circle off canvas: %v", err)
	}
	if _, _, _, a := b.Image().At(0, 50).RGBA(); a != 0 {
		t.Errorf("off-canvas circle painted: alpha %d", a)
	}

	err := b.DrawCircle(image.Pt(50, 50), 1<<25, plot.Red.Filled(), true)
	if !errors.Is(err, plot.ErrOutOfCanvas) {
		t.Errorf("huge circle: err = %v, want ErrOutOfCanvas", err)
	}
}

func TestBackendCircle(t *testing.T) {
	b := New(100, 100)
	if err := b.DrawCircle(image.Pt(50, 50), 20, plot.Red.Filled(), true); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(50, 50)) {
		t.Errorf("circle center = %v, expected red", b.Image().At(50, 50))
	}
	if _, _, _, a := b.Image().At(50, 80).RGBA(); a != 0 {
		t.Errorf("pixel outside circle painted: alpha %d", a)
	}

	if err := b.DrawCircle(image.Pt(10, 10), 0, plot.Red.Filled(), true); err != nil {
		t.Errorf("zero radius: %v", err)
	}
}

func TestBackendFillPolygon(t *testing.T) {
	b := New(100, 100)
	tri := []image.Point{{10, 10}, {90, 10}, {50, 90}}
	if err := b.FillPolygon(tri, plot.Red); err != nil {
		t.Fatal(err)
	}
	if !isRed(b.Image().At(50, 30)) {
		t.Errorf("inside polygon = %v, expected red", b.Image().At(50, 30))
	}
	if _, _, _, a := b.Image().At(15, 80).RGBA(); a != 0 {
		t.Errorf("outside polygon painted: alpha %d", a)
	}
}

func TestBackendDrawText(t *testing.T) {
	b := New(100, 30)
	if err := b.DrawText("Hello", image.Pt(5, 20), plot.TextStyle{Color: plot.Black, Size: 13}); err != nil {
		t.Fatal(err)
	}
	painted := 0
	img := b.Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("DrawText painted no pixels")
	}
}

func TestBackendWriteTo(t *testing.T) {
	b := New(20, 20)
	_ = b.DrawRect(image.Pt(0, 0), image.Pt(19, 19), plot.Red.Filled(), true)

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer holds %d", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if !isRed(img.At(10, 10)) {
		t.Errorf("decoded pixel = %v, expected red", img.At(10, 10))
	}
}

func TestBackendSaveToFile(t *testing.T) {
	b := New(8, 8)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := b.SaveToFile(filepath.Join(t.TempDir(), "missing", "dir", "out.png")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestRecordingPlayback(t *testing.T) {
	rec := recording.NewRecorder(60, 60)
	area := plot.IntoDrawingArea(rec)
	if err := area.Draw(plot.NewRectangle(image.Pt(0, 0), image.Pt(59, 59), plot.Red.Filled())); err != nil {
		t.Fatal(err)
	}

	b := New(60, 60)
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if !isRed(b.Image().At(30, 30)) {
		t.Errorf("played back pixel = %v, expected red", b.Image().At(30, 30))
	}
}
