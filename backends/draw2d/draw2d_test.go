package draw2d

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend"
)

func red(t *testing.T, c color.Color) {
	t.Helper()
	r, g, b, a := c.RGBA()
	assert.True(t, r > 0xc000 && g < 0x3000 && b < 0x3000 && a > 0xc000, "color %v is not red", c)
}

func transparent(t *testing.T, c color.Color) {
	t.Helper()
	_, _, _, a := c.RGBA()
	assert.Zero(t, a, "color %v is not transparent", c)
}

func TestRegistered(t *testing.T) {
	b, err := backend.New("draw2d", 30, 20)
	require.NoError(t, err)
	require.IsType(t, &Backend{}, b)
	assert.Equal(t, plot.Size{Width: 30, Height: 20}, b.Size())
}

func TestFilledRect(t *testing.T) {
	b := New(100, 100)
	require.NoError(t, b.DrawRect(image.Pt(60, 60), image.Pt(20, 20), plot.Red.Filled(), true))

	red(t, b.Image().At(40, 40))
	red(t, b.Image().At(20, 20))
	transparent(t, b.Image().At(70, 70))
}

func TestStrokedShapes(t *testing.T) {
	b := New(100, 100)
	require.NoError(t, b.DrawPath([]image.Point{{10, 50}, {90, 50}}, plot.Red.StrokeWidth(3)))
	red(t, b.Image().At(50, 50))
	transparent(t, b.Image().At(50, 40))

	require.NoError(t, b.DrawCircle(image.Pt(50, 50), 30, plot.Red.StrokeWidth(2), false))
	transparent(t, b.Image().At(50, 30))
}

func TestFilledCircleAndPolygon(t *testing.T) {
	b := New(100, 100)
	require.NoError(t, b.DrawCircle(image.Pt(25, 25), 10, plot.Red.Filled(), true))
	red(t, b.Image().At(25, 25))

	require.NoError(t, b.FillPolygon([]image.Point{{50, 50}, {95, 50}, {95, 95}, {50, 95}}, plot.Red))
	red(t, b.Image().At(70, 70))
	transparent(t, b.Image().At(45, 70))
}

func TestDegenerateGeometry(t *testing.T) {
	b := New(10, 10)
	assert.NoError(t, b.DrawPath(nil, plot.Red.Style()))
	assert.NoError(t, b.FillPolygon([]image.Point{{1, 1}}, plot.Red))
	assert.NoError(t, b.DrawCircle(image.Pt(5, 5), -2, plot.Red.Style(), false))
	assert.NoError(t, b.DrawPixel(image.Pt(50, 50), plot.Red))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			transparent(t, b.Image().At(x, y))
		}
	}
}

func TestWriteTo(t *testing.T) {
	b := New(16, 16)
	require.NoError(t, b.DrawPixel(image.Pt(2, 3), plot.Red))

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	red(t, img.At(2, 3))
}
