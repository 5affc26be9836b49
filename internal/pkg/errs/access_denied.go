package errs

import (
	"errors"
	"fmt"
)

// ErrAccessDenied is the sentinel error for all AccessDeniedError instances.
// It is returned when an authenticated actor is not permitted to perform the
// requested operation.
var ErrAccessDenied = errors.New("access denied")

// AccessDeniedError indicates that an authenticated actor lacks permission
// for an operation on a specific object.
type AccessDeniedError struct {
	Operation string
	ActorID   any
	Cause     error
}

// NewAccessDeniedError creates an AccessDeniedError for the given operation
// and acting user.
func NewAccessDeniedError(operation string, actorID any) *AccessDeniedError {
	return &AccessDeniedError{Operation: operation, ActorID: actorID}
}

// NewAccessDeniedErrorWithCause creates an AccessDeniedError that wraps the
// underlying cause.
func NewAccessDeniedErrorWithCause(operation string, actorID any, cause error) *AccessDeniedError {
	return &AccessDeniedError{Operation: operation, ActorID: actorID, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: operation is: %s, actor is: %s (cause: %s)",
			ErrAccessDenied, e.Operation, e.ActorID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAccessDenied, e.Operation))
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
