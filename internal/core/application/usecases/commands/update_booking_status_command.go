package commands

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var (
	ErrUpdateBookingStatusCommandIsNotConstructed = errors.New(
		"UpdateBookingStatusCommand must be created via NewUpdateBookingStatusCommand constructor",
	)
	ErrOccurredAtIsRequired = errors.New("occurredAt is required")
)

// UpdateBookingStatusCommand represents a request to move a booking through
// its lifecycle: start, complete, or cancel. The occurredAt timestamp is
// caller-supplied so that a retried request carries the same timestamp and
// can be recognized as idempotent.
type UpdateBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID    kernel.UUID
	requestedBy  actor.Actor
	targetStatus booking.Status
	label        string
	geo          *kernel.GeoPoint
	notes        string
	occurredAt   time.Time

	guard guard.ConstructorGuard
}

// NewUpdateBookingStatusCommand creates a command to change a booking's
// status. Label, geo, and notes are optional audit data for the recorded
// status update.
func NewUpdateBookingStatusCommand(
	bookingID kernel.UUID,
	requestedBy actor.Actor,
	targetStatus booking.Status,
	label string,
	geo *kernel.GeoPoint,
	notes string,
	occurredAt time.Time,
) (UpdateBookingStatusCommand, error) {
	cmd := UpdateBookingStatusCommand{
		label: label,
		geo:   geo,
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setRequestedBy(requestedBy),
		cmd.setTargetStatus(targetStatus),
		cmd.setOccurredAt(occurredAt),
	); err != nil {
		return UpdateBookingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingStatusCommandIsNotConstructed)
}

// BookingID returns the target booking's identifier.
func (c UpdateBookingStatusCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// RequestedBy returns the actor issuing the command.
func (c UpdateBookingStatusCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// TargetStatus returns the requested lifecycle status.
func (c UpdateBookingStatusCommand) TargetStatus() booking.Status {
	return c.targetStatus
}

// Label returns the optional status update label.
func (c UpdateBookingStatusCommand) Label() string {
	return c.label
}

// Geo returns the optional crew coordinates.
func (c UpdateBookingStatusCommand) Geo() *kernel.GeoPoint {
	return c.geo
}

// Notes returns the optional free-text notes.
func (c UpdateBookingStatusCommand) Notes() string {
	return c.notes
}

// OccurredAt returns the caller-supplied event timestamp.
func (c UpdateBookingStatusCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *UpdateBookingStatusCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *UpdateBookingStatusCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *UpdateBookingStatusCommand) setTargetStatus(targetStatus booking.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *UpdateBookingStatusCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return ErrOccurredAtIsRequired
	}

	c.occurredAt = occurredAt
	return nil
}
