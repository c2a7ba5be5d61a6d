package coord

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types accepted by Linear.
type Number interface {
	constraints.Integer | constraints.Float
}

// Ranged maps values of type V from a logical range onto a pixel span.
//
// Map returns the pixel for v when the range's lower bound is placed at
// pixel from and its upper bound at pixel to. from may be greater than to,
// which is how vertical axes grow upward. Map is pure.
type Ranged[V any] interface {
	Map(v V, from, to int) (int, error)
	Bounds() (lo, hi V)
}

// MaxPixel bounds every pixel coordinate produced by this package.
// Extrapolated values beyond it saturate instead of overflowing int.
const MaxPixel = 1 << 30

// Round rounds x to the nearest integer, rounding halves away from zero.
// It is the rounding rule used by every range in this package. The result
// saturates at ±MaxPixel and NaN rounds to 0.
func Round(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= MaxPixel:
		return MaxPixel
	case x <= -MaxPixel:
		return -MaxPixel
	}
	return int(math.Round(x))
}

// interpolate places the fraction t of the span between from and to.
func interpolate(t float64, from, to int) int {
	return Round(float64(from) + t*float64(to-from))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
