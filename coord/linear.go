package coord

// Linear is a numeric range mapped linearly onto pixels.
//
// Values outside [lo, hi] are extrapolated along the same line unless the
// range is clamped. A degenerate range (lo == hi) maps every value to the
// start of the pixel span.
type Linear[T Number] struct {
	lo, hi T
	clamp  bool
}

// NewLinear creates a linear range from lo to hi.
func NewLinear[T Number](lo, hi T) Linear[T] {
	return Linear[T]{lo: lo, hi: hi}
}

// Clamped returns a copy of the range that clamps values to its bounds
// before mapping.
func (l Linear[T]) Clamped() Linear[T] {
	l.clamp = true
	return l
}

// Bounds implements Ranged.
func (l Linear[T]) Bounds() (lo, hi T) { return l.lo, l.hi }

// Map implements Ranged. It fails only for NaN or infinite values.
func (l Linear[T]) Map(v T, from, to int) (int, error) {
	x := float64(v)
	if !finite(x) {
		return 0, &DomainError{Value: x, Reason: "not a finite number"}
	}
	lo, hi := float64(l.lo), float64(l.hi)
	if lo == hi {
		return from, nil
	}
	if l.clamp {
		x = max(min(lo, hi), min(x, max(lo, hi)))
	}
	return interpolate((x-lo)/(hi-lo), from, to), nil
}
