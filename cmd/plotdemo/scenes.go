package main

import (
	"fmt"
	"image"
	"iter"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/coord"
	"github.com/gogpu/plot/series"
)

const (
	sceneTwoScales  = "two-scales"
	sceneNormalDist = "normal-dist"
)

// scene draws a complete chart onto b.
type scene func(b plot.DrawingBackend, cfg Config) error

var scenes = map[string]scene{
	sceneTwoScales:  drawTwoScales,
	sceneNormalDist: drawNormalDist,
}

type xy = coord.XY[float64, float64]

// frame paints the background, caption and plot border and returns the
// plot rectangle.
func frame(b plot.DrawingBackend, caption string, top, bottom, left, right int) (image.Rectangle, error) {
	root := plot.IntoDrawingArea(b)
	if err := root.Fill(plot.White); err != nil {
		return image.Rectangle{}, err
	}
	size := b.Size()
	rect := coord.Inset(image.Rect(0, 0, size.Width, size.Height), top, bottom, left, right)
	if err := b.DrawText(caption, image.Pt(left, top/2), plot.TextStyle{Color: plot.Black, Size: 24}); err != nil {
		return rect, err
	}
	border := plot.NewRectangle(rect.Min, rect.Max.Sub(image.Pt(1, 1)), plot.Black)
	return rect, root.Draw(border)
}

// drawTwoScales draws an exponential series on a log axis and a sine on a
// linear secondary axis sharing the same x range.
func drawTwoScales(b plot.DrawingBackend, _ Config) error {
	rect, err := frame(b, "Dual Y-Axis Example", 60, 40, 45, 45)
	if err != nil {
		return err
	}

	primary := coord.NewCartesian2D[float64, float64](coord.NewLinear(0.0, 10.0), coord.MustLog(0.1, 1e10), rect)
	secondary := coord.NewCartesian2D[float64, float64](coord.NewLinear(0.0, 10.0), coord.NewLinear(-1.0, 1.0), rect)
	dual := plot.NewDualArea[xy, xy](b, primary, secondary)

	exp := sample(0, 10, 0.1, func(x float64) float64 { return math.Pow(1.02, x*x*10) })
	sine := sample(0, 10, 0.1, func(x float64) float64 { return math.Sin(x * 2) })

	if err := dual.DrawSeries(series.LineSeries(exp, plot.Blue)); err != nil {
		return fmt.Errorf("primary series: %w", err)
	}
	if err := dual.DrawSecondarySeries(series.LineSeries(sine, plot.Red)); err != nil {
		return fmt.Errorf("secondary series: %w", err)
	}
	return nil
}

// drawNormalDist draws a histogram of normal samples on a centric bucket
// axis and the scaled density on a linear primary axis.
func drawNormalDist(b plot.DrawingBackend, cfg Config) error {
	rect, err := frame(b, "1D Gaussian Distribution Demo", 40, 65, 65, 65)
	if err != nil {
		return err
	}

	dist := distuv.Normal{Mu: 0, Sigma: cfg.Normal.StdDev, Src: rand.NewSource(cfg.Normal.Seed)}

	primary := coord.NewCartesian2D[float64, float64](coord.NewLinear(-4.0, 4.0), coord.NewLinear(0.0, 0.1), rect)
	secondary := coord.NewCartesian2D[int, uint32](coord.NewCentric(-40, 40), coord.NewLinear[uint32](0, 500), rect)
	dual := plot.NewDualArea[xy, coord.XY[int, uint32]](b, primary, secondary)

	hist := series.NewHistogram[uint32](plot.Green.Filled()).Margin(3)
	if err := dual.DrawSecondarySeries(hist.Data(samples(dist, cfg.Normal.Samples))); err != nil {
		return fmt.Errorf("histogram: %w", err)
	}

	pdf := sample(-4, 4, 0.01, func(x float64) float64 { return dist.Prob(x) * 0.1 })
	if err := dual.DrawSeries(series.LineSeries(pdf, plot.Red)); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// sample evaluates f at from, from+step, ... up to and including to.
func sample(from, to, step float64, f func(float64) float64) iter.Seq[xy] {
	n := coord.Round((to - from) / step)
	return func(yield func(xy) bool) {
		for i := 0; i <= n; i++ {
			x := from + float64(i)*step
			if !yield(coord.Pt(x, f(x))) {
				return
			}
		}
	}
}

// samples draws n values from dist, keeps those within [-4, 4] and yields
// them as (bucket, 1) pairs with buckets 0.1 wide.
func samples(dist distuv.Normal, n int) iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		for range n {
			x := dist.Rand()
			if math.Abs(x) > 4 {
				continue
			}
			if !yield(coord.Round(x*10), 1) {
				return
			}
		}
	}
}
