package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel error for all ConflictError instances. It covers
// invalid state transitions, duplicate child objects, and uniqueness
// violations that survived bounded retries.
var ErrConflict = errors.New("conflict")

// ConflictError indicates that the requested change contradicts the current
// state of the system.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError for the given parameter.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError that wraps the underlying
// cause describing the conflicting state.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
