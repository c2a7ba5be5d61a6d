package raster

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// guard bounds the coordinates handed to rasterx. Geometry is clipped to
// [-guard, guard] on both axes before it is converted to 26.6 fixed point,
// which only holds coordinates up to ±2^25.
const guard = 1 << 20

// maxStroke caps stroke widths, in pixels.
const maxStroke = 1 << 16

type vec struct{ X, Y float64 }

// pixelCenter returns the center of the pixel at p.
func pixelCenter(p image.Point) vec {
	return vec{float64(p.X) + 0.5, float64(p.Y) + 0.5}
}

func (v vec) fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(v.X * 64)), Y: fixed.Int26_6(math.Round(v.Y * 64))}
}

func clampGuard(x int) int {
	return max(-guard, min(x, guard))
}

// segment is the part of a line that survives clipping. Clipped reports
// whether the start or end moved.
type segment struct {
	a, b                     vec
	startClipped, endClipped bool
}

// clipSegment clips the line a-b to the guard box (Liang-Barsky).
func clipSegment(a, b vec) (segment, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float64{
		{-dx, a.X + guard},
		{dx, guard - a.X},
		{-dy, a.Y + guard},
		{dy, guard - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return segment{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return segment{}, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return segment{}, false
			}
			t1 = min(t1, r)
		}
	}
	return segment{
		a:            vec{a.X + t0*dx, a.Y + t0*dy},
		b:            vec{a.X + t1*dx, a.Y + t1*dy},
		startClipped: t0 > 0,
		endClipped:   t1 < 1,
	}, true
}

// clipPolygon clips a closed polygon to the guard box (Sutherland-Hodgman).
func clipPolygon(pts []vec) []vec {
	type edge struct {
		inside func(vec) bool
		cross  func(a, b vec) vec
	}
	atX := func(x float64) func(a, b vec) vec {
		return func(a, b vec) vec {
			return vec{x, a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X)}
		}
	}
	atY := func(y float64) func(a, b vec) vec {
		return func(a, b vec) vec {
			return vec{a.X + (b.X-a.X)*(y-a.Y)/(b.Y-a.Y), y}
		}
	}
	edges := []edge{
		{func(v vec) bool { return v.X >= -guard }, atX(-guard)},
		{func(v vec) bool { return v.X <= guard }, atX(guard)},
		{func(v vec) bool { return v.Y >= -guard }, atY(-guard)},
		{func(v vec) bool { return v.Y <= guard }, atY(guard)},
	}
	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]vec, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
