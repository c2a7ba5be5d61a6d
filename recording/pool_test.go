package recording

import (
	"image"
	"testing"
)

func TestPointPoolAddCopies(t *testing.T) {
	pool := NewPointPool()
	pts := []image.Point{{1, 2}, {3, 4}}

	ref := pool.AddPath(pts)
	pts[0] = image.Pt(99, 99)

	got := pool.GetPath(ref)
	if len(got) != 2 || got[0] != image.Pt(1, 2) || got[1] != image.Pt(3, 4) {
		t.Errorf("GetPath = %v, want [(1,2) (3,4)]", got)
	}
}

func TestPointPoolRefsAreSequential(t *testing.T) {
	pool := NewPointPool()
	a := pool.AddPath(nil)
	b := pool.AddPath([]image.Point{{0, 0}})
	if a != 0 || b != 1 {
		t.Errorf("refs = %d, %d, want 0, 1", a, b)
	}
	if got := pool.GetPath(a); got == nil || len(got) != 0 {
		t.Errorf("empty path = %v, want empty non-nil slice", got)
	}
	if pool.PathCount() != 2 {
		t.Errorf("PathCount() = %d, want 2", pool.PathCount())
	}
}

func TestPointPoolInvalidRef(t *testing.T) {
	pool := NewPointPool()
	if got := pool.GetPath(PathRef(InvalidRef)); got != nil {
		t.Errorf("GetPath(InvalidRef) = %v, want nil", got)
	}
	if got := pool.GetPath(5); got != nil {
		t.Errorf("GetPath(5) on empty pool = %v, want nil", got)
	}
}

func TestPointPoolCloneIsDeep(t *testing.T) {
	pool := NewPointPool()
	ref := pool.AddPath([]image.Point{{1, 1}})

	clone := pool.Clone()
	pool.GetPath(ref)[0] = image.Pt(7, 7)
	pool.Clear()

	if pool.PathCount() != 0 {
		t.Errorf("PathCount() after Clear = %d, want 0", pool.PathCount())
	}
	if got := clone.GetPath(ref); len(got) != 1 || got[0] != image.Pt(1, 1) {
		t.Errorf("clone path = %v, want [(1,1)]", got)
	}
}
