package field

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned by magnet constructors when a dimension or
// remanence is non-positive.  The magnet is unusable; the error is never
// deferred to evaluation time.
var ErrInvalidGeometry = errors.New("invalid magnet geometry")

// DomainError reports that a kernel's valid domain excludes the queried
// point.  Unlike a local singularity, a domain violation is not recoverable
// by zero-substitution and is surfaced to the caller.
type DomainError struct {
	Shape  string
	Detail string
}

// Error returns a description of the domain violation.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s field has no closed form: %s", e.Shape, e.Detail)
}
