package coord

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartesian2DProject(t *testing.T) {
	cart := NewCartesian2D[float64, float64](NewLinear(0.0, 10.0), NewLinear(0.0, 10.0), image.Rect(0, 0, 101, 101))

	tests := []struct {
		in   XY[float64, float64]
		want image.Point
	}{
		{Pt(0.0, 0.0), image.Pt(0, 100)},
		{Pt(10.0, 10.0), image.Pt(100, 0)},
		{Pt(5.0, 5.0), image.Pt(50, 50)},
		{Pt(2.0, 8.0), image.Pt(20, 20)},
	}
	for _, tt := range tests {
		got, err := cart.Project(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Project(%v)", tt.in)
	}
}

func TestCartesian2DSubRectangle(t *testing.T) {
	cart := NewCartesian2D[float64, float64](NewLinear(0.0, 1.0), NewLinear(0.0, 1.0), image.Rect(50, 20, 151, 121))
	got, err := cart.Project(Pt(0.0, 0.0))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(50, 120), got)

	got, err = cart.Project(Pt(1.0, 1.0))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(150, 20), got)
}

func TestCartesian2DLogAxisError(t *testing.T) {
	cart := NewCartesian2D[float64, float64](NewLinear(0.0, 10.0), MustLog(0.1, 1e10), image.Rect(0, 0, 100, 100))
	_, err := cart.Project(Pt(1.0, 0.0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDomain)
	assert.Contains(t, err.Error(), "y axis")
}

func TestCartesian2DIsPure(t *testing.T) {
	cart := NewCartesian2D[int, float64](NewCentric(-40, 40), NewLinear(0.0, 500.0), image.Rect(0, 0, 810, 500))
	first, err := cart.Project(Pt(3, 120.0))
	require.NoError(t, err)
	for range 10 {
		again, err := cart.Project(Pt(3, 120.0))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCartesian2DPixelRanges(t *testing.T) {
	cart := NewCartesian2D[float64, float64](NewLinear(0.0, 1.0), NewLinear(0.0, 1.0), image.Rect(10, 20, 110, 220))
	fx, tx := cart.PixelRangeX()
	assert.Equal(t, [2]int{10, 109}, [2]int{fx, tx})
	fy, ty := cart.PixelRangeY()
	assert.Equal(t, [2]int{219, 20}, [2]int{fy, ty})
}

func TestInset(t *testing.T) {
	r := Inset(image.Rect(0, 0, 100, 80), 5, 10, 20, 15)
	assert.Equal(t, image.Rect(20, 5, 85, 70), r)

	empty := Inset(image.Rect(0, 0, 10, 10), 8, 8, 8, 8)
	assert.True(t, empty.Empty())
	assert.Equal(t, image.Pt(8, 8), empty.Min)
}
