package series

import (
	"iter"
	"slices"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/coord"
)

// LineSeries connects the points, in order, with a single path.
// The points are collected once; the returned sequence can be drawn
// repeatedly.
func LineSeries[X, Y any](points iter.Seq[coord.XY[X, Y]], style plot.Styler) iter.Seq[plot.Element[coord.XY[X, Y]]] {
	path := plot.NewPath(slices.Collect(points), style)
	return func(yield func(plot.Element[coord.XY[X, Y]]) bool) {
		yield(path)
	}
}

// PointSeries draws a circle of the given size around every point.
func PointSeries[X, Y any](points iter.Seq[coord.XY[X, Y]], size plot.SizeDesc, style plot.Styler) iter.Seq[plot.Element[coord.XY[X, Y]]] {
	pts := slices.Collect(points)
	s := style.ShapeStyle()
	return func(yield func(plot.Element[coord.XY[X, Y]]) bool) {
		for _, p := range pts {
			if !yield(plot.NewCircle(p, size, s)) {
				return
			}
		}
	}
}
