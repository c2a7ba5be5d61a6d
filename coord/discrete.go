package coord

// Discrete is an ordinal range of integer buckets lo..hi (inclusive), each
// occupying an equal-width slot of the pixel span.
//
// Map returns the leading edge of a bucket's slot, so the slot of bucket v
// runs from Map(v) to Map(v+1) and neighbouring buckets share an edge.
// Buckets outside lo..hi continue the same grid.
type Discrete struct {
	lo, hi int
}

// NewDiscrete creates a bucketed range over lo..hi. The bounds may be given
// in any order.
func NewDiscrete(lo, hi int) Discrete {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Discrete{lo: lo, hi: hi}
}

// Buckets returns the number of buckets in the range.
func (d Discrete) Buckets() int { return d.hi - d.lo + 1 }

// Bounds implements Ranged.
func (d Discrete) Bounds() (lo, hi int) { return d.lo, d.hi }

// Map implements Ranged. It never fails.
func (d Discrete) Map(v, from, to int) (int, error) {
	return bucketEdge(v-d.lo, d.Buckets(), from, to), nil
}

// Center returns the pixel at the middle of bucket v's slot.
func (d Discrete) Center(v, from, to int) int {
	return interpolate((float64(v-d.lo)+0.5)/float64(d.Buckets()), from, to)
}

// Centric is a bucketed range whose zero bucket sits at the midpoint of
// the pixel span. Buckets -r..r are laid out symmetrically around it.
type Centric struct {
	radius int
}

// NewCentric creates a centric range covering lo..hi. The radius is the
// larger of -lo and hi, so the zero bucket stays centered even for
// asymmetric bounds.
func NewCentric(lo, hi int) Centric {
	return Centric{radius: max(-lo, hi, 0)}
}

// Radius returns the number of buckets on each side of the zero bucket.
func (c Centric) Radius() int { return c.radius }

// Buckets returns the number of buckets in the range.
func (c Centric) Buckets() int { return 2*c.radius + 1 }

// Bounds implements Ranged.
func (c Centric) Bounds() (lo, hi int) { return -c.radius, c.radius }

// Map implements Ranged. It returns the leading edge of bucket v's slot and
// never fails.
func (c Centric) Map(v, from, to int) (int, error) {
	return bucketEdge(v+c.radius, c.Buckets(), from, to), nil
}

// Center returns the pixel at the middle of bucket v's slot. Center(0)
// is the midpoint of the span.
func (c Centric) Center(v, from, to int) int {
	return interpolate((float64(v+c.radius)+0.5)/float64(c.Buckets()), from, to)
}

// bucketEdge returns the leading edge of the k-th of n equal slots.
func bucketEdge(k, n, from, to int) int {
	return interpolate(float64(k)/float64(n), from, to)
}
