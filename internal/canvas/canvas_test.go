package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestBlendComposites(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Blend(img, image.Pt(1, 1), color.NRGBA{R: 255, A: 255})
	Blend(img, image.Pt(1, 1), color.NRGBA{B: 255, A: 0})
	Blend(img, image.Pt(9, 9), color.NRGBA{R: 255, A: 255})

	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v, want opaque red", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("untouched pixel = %v", got)
	}
}

func TestTextPaints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	Text(img, "Ag", image.Pt(2, 15), color.Black)

	painted := false
	for y := 0; y < 20 && !painted; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).A != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("Text painted no pixels")
	}
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	var buf bytes.Buffer
	n, err := EncodePNG(&buf, img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("n = %d, buffer holds %d", n, buf.Len())
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
}

func TestSavePNGBadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if _, err := SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png"), img); err == nil {
		t.Error("expected error")
	}
}
