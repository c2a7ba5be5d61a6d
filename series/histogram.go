package series

import (
	"iter"
	"maps"
	"slices"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/coord"
)

// Histogram is a vertical histogram over integer buckets.
//
// Values are summed per bucket and every non-empty bucket b becomes a
// rectangle from (b, 0) to (b+1, sum), so it spans exactly one slot of a
// coord.Discrete or coord.Centric x axis.
type Histogram[Y coord.Number] struct {
	style  plot.ShapeStyle
	margin int
}

// NewHistogram creates a histogram drawing its bars with style.
func NewHistogram[Y coord.Number](style plot.Styler) *Histogram[Y] {
	return &Histogram[Y]{style: style.ShapeStyle()}
}

// Margin sets the pixel gap kept on the left and right of every bar.
func (h *Histogram[Y]) Margin(px int) *Histogram[Y] {
	h.margin = px
	return h
}

// Data sums the (bucket, value) pairs and returns one bar per bucket,
// ordered by bucket.
func (h *Histogram[Y]) Data(data iter.Seq2[int, Y]) iter.Seq[plot.Element[coord.XY[int, Y]]] {
	sums := make(map[int]Y)
	for b, v := range data {
		sums[b] += v
	}
	buckets := slices.Sorted(maps.Keys(sums))

	var zero Y
	return func(yield func(plot.Element[coord.XY[int, Y]]) bool) {
		for _, b := range buckets {
			bar := plot.NewRectangle(coord.Pt(b, zero), coord.Pt(b+1, sums[b]), h.style).
				SetMargin(0, 0, h.margin, h.margin)
			if !yield(bar) {
				return
			}
		}
	}
}
