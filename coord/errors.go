package coord

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every DomainError. Use errors.Is to tell a
// domain violation apart from other projection failures.
var ErrDomain = errors.New("coord: value outside the range domain")

// DomainError reports a value that a range cannot map at all, such as a
// non-positive value on a logarithmic axis. Values that are merely outside
// a range's bounds are extrapolated and never produce a DomainError.
type DomainError struct {
	Value  float64
	Reason string
}

// Error implements error.
func (e *DomainError) Error() string {
	return fmt.Sprintf("coord: %g: %s", e.Value, e.Reason)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
