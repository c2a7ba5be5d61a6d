package recording

import (
	"image"
	"slices"
)

// PointPool stores the point lists referenced by recorded commands.
// Each Add copies its input so the recording stays immutable while the
// caller reuses its buffers.
//
// PointPool is not safe for concurrent use.
type PointPool struct {
	paths [][]image.Point
}

// NewPointPool creates an empty pool with pre-allocated capacity.
func NewPointPool() *PointPool {
	return &PointPool{paths: make([][]image.Point, 0, 64)}
}

// AddPath copies pts into the pool and returns its reference.
// A nil or empty list is stored as an empty, non-nil list.
func (p *PointPool) AddPath(pts []image.Point) PathRef {
	cloned := make([]image.Point, len(pts))
	copy(cloned, pts)
	p.paths = append(p.paths, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the points for the given reference.
// Returns nil if the reference is invalid. The returned slice must not be
// modified.
func (p *PointPool) GetPath(ref PathRef) []image.Point {
	if !ref.IsValid() || int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of point lists in the pool.
func (p *PointPool) PathCount() int {
	return len(p.paths)
}

// Clear removes all point lists from the pool.
// This does not release the underlying memory; use NewPointPool for that.
func (p *PointPool) Clear() {
	p.paths = p.paths[:0]
}

// Clone creates a deep copy of the pool.
func (p *PointPool) Clone() *PointPool {
	clone := &PointPool{paths: make([][]image.Point, len(p.paths))}
	for i, path := range p.paths {
		clone.paths[i] = slices.Clone(path)
	}
	return clone
}
