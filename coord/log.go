package coord

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Log is a base-10 logarithmic range. Both bounds must be positive.
//
// Mapping a value v <= 0 fails with a DomainError unless a floor is set,
// in which case the floor is mapped instead.
type Log[T constraints.Float] struct {
	lo, hi   T
	floor    T
	hasFloor bool
}

// NewLog creates a logarithmic range from lo to hi.
// It returns a DomainError if a bound is not positive.
func NewLog[T constraints.Float](lo, hi T) (Log[T], error) {
	for _, b := range [...]T{lo, hi} {
		if !(b > 0) || math.IsInf(float64(b), 0) {
			return Log[T]{}, &DomainError{Value: float64(b), Reason: "log range bound must be positive"}
		}
	}
	return Log[T]{lo: lo, hi: hi}, nil
}

// MustLog is like NewLog but panics on error.
// This is useful when the bounds are constants.
func MustLog[T constraints.Float](lo, hi T) Log[T] {
	l, err := NewLog(lo, hi)
	if err != nil {
		panic(err)
	}
	return l
}

// WithFloor returns a copy of the range that maps non-positive values as
// if they were floor. A non-positive floor is reported by Map.
func (l Log[T]) WithFloor(floor T) Log[T] {
	l.floor = floor
	l.hasFloor = true
	return l
}

// Bounds implements Ranged.
func (l Log[T]) Bounds() (lo, hi T) { return l.lo, l.hi }

// Map implements Ranged.
func (l Log[T]) Map(v T, from, to int) (int, error) {
	if !(v > 0) {
		if !l.hasFloor {
			return 0, &DomainError{Value: float64(v), Reason: "log range needs a positive value"}
		}
		if !(l.floor > 0) {
			return 0, &DomainError{Value: float64(l.floor), Reason: "log range floor must be positive"}
		}
		v = l.floor
	}
	x := math.Log10(float64(v))
	if math.IsInf(x, 0) {
		return 0, &DomainError{Value: float64(v), Reason: "not a finite number"}
	}
	lo, hi := math.Log10(float64(l.lo)), math.Log10(float64(l.hi))
	if lo == hi {
		return from, nil
	}
	return interpolate((x-lo)/(hi-lo), from, to), nil
}
