// Package series turns data into sequences of plot elements.
//
// Each constructor returns an iter.Seq[plot.Element[coord.XY[X, Y]]] that
// can be handed to DrawingArea.DrawAll or to DualArea.DrawSeries and
// DrawSecondarySeries:
//
//	line := series.LineSeries(points, plot.Blue)
//	err := dual.DrawSeries(line)
//
//	hist := series.NewHistogram[uint32](plot.Green.Filled()).Margin(3)
//	err = dual.DrawSecondarySeries(hist.Data(counts))
package series
