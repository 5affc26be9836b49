package errs

import (
	"errors"
	"fmt"
)

// ErrObjectUnavailable is the sentinel error for all ObjectUnavailableError
// instances. It is returned when an object exists but is not in a state to
// serve the request (e.g. a mover that is not approved or not available).
var ErrObjectUnavailable = errors.New("object is unavailable")

// ObjectUnavailableError indicates that a referenced entity exists but cannot
// participate in the requested operation.
type ObjectUnavailableError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectUnavailableError creates an ObjectUnavailableError for the given
// parameter name and identifier.
func NewObjectUnavailableError(paramName string, id any) *ObjectUnavailableError {
	return &ObjectUnavailableError{ParamName: paramName, ID: id}
}

// NewObjectUnavailableErrorWithCause creates an ObjectUnavailableError that
// wraps the underlying cause.
func NewObjectUnavailableErrorWithCause(paramName string, id any, cause error) *ObjectUnavailableError {
	return &ObjectUnavailableError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectUnavailable, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectUnavailable, e.ID))
}

func (e *ObjectUnavailableError) Unwrap() error {
	return ErrObjectUnavailable
}
