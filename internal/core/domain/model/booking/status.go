package booking

import (
	"fmt"

	"moving/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking. It is a closed enum
// with an explicit transition table; values arriving from the boundary are
// parsed with StatusFromString and rejected when outside the known set.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is a modeled but currently unreachable status: bookings are
	// accepted immediately because creation requires a bookable mover.
	Pending

	// Confirmed is the initial status of every created booking.
	Confirmed

	// InProgress means the mover crew has started the move.
	InProgress

	// Completed is a terminal status reached when the mover finishes the job.
	Completed

	// Cancelled is a terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a boundary-supplied status value.
// Returns an error for any value outside the known set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire representation of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Transition returns the new status for a move from s to target, or a
// Conflict error when the transition is not in the permitted table.
//
// Permitted transitions:
//   - confirmed   -> in_progress
//   - in_progress -> completed
//   - confirmed   -> cancelled
//   - in_progress -> cancelled (only when allowCancelInProgress is set)
//
// Everything else, including any transition out of a terminal status and any
// transition into pending or confirmed, is rejected.
func (s Status) Transition(target Status, allowCancelInProgress bool) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	permitted := false
	switch {
	case s == Confirmed && target == InProgress:
		permitted = true
	case s == InProgress && target == Completed:
		permitted = true
	case s == Confirmed && target == Cancelled:
		permitted = true
	case s == InProgress && target == Cancelled:
		permitted = allowCancelInProgress
	}

	if !permitted {
		return Unknown, errs.NewConflictErrorWithCause(
			"status",
			fmt.Errorf("%s -> %s is not a permitted transition", s, target),
		)
	}

	return target, nil
}
