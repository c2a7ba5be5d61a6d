package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeStyleBuildersAreEquivalent(t *testing.T) {
	a := Blue.StrokeWidth(3).Fill()
	b := Blue.Filled().Stroke(3)
	c := ShapeStyle{Color: Blue, Filled: true, StrokeWidth: 3}
	assert.Equal(t, c, a)
	assert.Equal(t, c, b)
}

func TestShapeStyleIsValue(t *testing.T) {
	base := Green.Style()
	_ = base.Fill()
	_ = base.Stroke(9)
	assert.Equal(t, Green.Style(), base)
}

func TestShapeStyleStrokeSaturates(t *testing.T) {
	assert.Equal(t, 0, Red.StrokeWidth(-4).StrokeWidth)
}

func TestSizeDescInPixels(t *testing.T) {
	canvas := Size{Width: 400, Height: 300}
	tests := []struct {
		name string
		d    SizeDesc
		want int
	}{
		{"pixels", Pixels(20), 20},
		{"width", RelativeToWidth(0.1), 40},
		{"height", RelativeToHeight(0.1), 30},
		{"smaller", RelativeToSmaller(0.5), 150},
		{"truncates", RelativeToWidth(0.0049), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSize(tt.d, canvas))
		})
	}
}

func TestResolveSizeNeverNegative(t *testing.T) {
	canvas := Size{Width: 400, Height: 300}
	assert.Equal(t, 0, ResolveSize(Pixels(-5), canvas))
	assert.Equal(t, 0, ResolveSize(RelativeToWidth(-0.5), canvas))
	assert.Equal(t, 0, ResolveSize(RelativeToSmaller(0.5), Size{}))
	assert.Equal(t, 0, ResolveSize(nil, canvas))
	assert.Equal(t, -5, Pixels(-5).InPixels(canvas))
}
