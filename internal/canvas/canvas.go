// Package canvas holds the image helpers shared by the pixel backends:
// single pixel compositing, fixed-face text and PNG output.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Blend composites c over the pixel at p. Pixels outside dst are ignored.
func Blend(dst draw.Image, p image.Point, c color.Color) {
	if !p.In(dst.Bounds()) {
		return
	}
	draw.Draw(dst, image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, image.NewUniform(c), image.Point{}, draw.Over)
}

// Text draws s with the 7x13 basic face, baseline origin at pos.
func Text(dst draw.Image, s string, pos image.Point, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(pos.X, pos.Y),
	}
	d.DrawString(s)
}

// EncodePNG writes img as PNG to w and returns the number of bytes written.
func EncodePNG(w io.Writer, img image.Image) (int64, error) {
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, img); err != nil {
		return cw.n, fmt.Errorf("canvas: encode png: %w", err)
	}
	return cw.n, nil
}

// SavePNG writes img as PNG to the named file.
func SavePNG(path string, img image.Image) (int64, error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return 0, fmt.Errorf("canvas: create file: %w", err)
	}
	n, err := EncodePNG(f, img)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("canvas: close file: %w", cerr)
	}
	return n, err
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
