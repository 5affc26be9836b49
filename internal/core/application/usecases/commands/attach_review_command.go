package commands

import (
	"errors"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var ErrAttachReviewCommandIsNotConstructed = errors.New(
	"AttachReviewCommand must be created via NewAttachReviewCommand constructor",
)

// AttachReviewCommand represents a client's one-time review of a completed
// booking.
type AttachReviewCommand struct { //nolint:recvcheck //using for validation
	bookingID   kernel.UUID
	requestedBy actor.Actor
	rating      int
	comment     string

	guard guard.ConstructorGuard
}

// NewAttachReviewCommand creates a command to attach a review.
// The rating must be within [1, 5].
func NewAttachReviewCommand(
	bookingID kernel.UUID,
	requestedBy actor.Actor,
	rating int,
	comment string,
) (AttachReviewCommand, error) {
	cmd := AttachReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setRequestedBy(requestedBy),
		cmd.setRating(rating),
	); err != nil {
		return AttachReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachReviewCommand) Validate() error {
	return c.guard.Validate(ErrAttachReviewCommandIsNotConstructed)
}

// BookingID returns the reviewed booking's identifier.
func (c AttachReviewCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// RequestedBy returns the actor issuing the command.
func (c AttachReviewCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// Rating returns the 1-5 star rating.
func (c AttachReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional review text.
func (c AttachReviewCommand) Comment() string {
	return c.comment
}

func (c *AttachReviewCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *AttachReviewCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *AttachReviewCommand) setRating(rating int) error {
	if rating < booking.MinRating || rating > booking.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, booking.MinRating, booking.MaxRating)
	}

	c.rating = rating
	return nil
}
