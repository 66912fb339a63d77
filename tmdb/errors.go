package tmdb

import (
	"errors"
	"fmt"
)

// ErrPrecondition is matched by every *PreconditionError.
var ErrPrecondition = errors.New("tmdb: precondition failed")

// PreconditionError reports caller misuse, such as an enum value that has no
// configured wire mapping. It is never caused by the remote API.
type PreconditionError struct {
	Op     string
	Reason string
}

// Error implements the error interface
func (e *PreconditionError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("tmdb: precondition failed: %s", e.Reason)
	}
	return fmt.Sprintf("tmdb: precondition failed in %s: %s", e.Op, e.Reason)
}

// Is matches ErrPrecondition
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}
