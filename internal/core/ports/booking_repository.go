package ports

import (
	"context"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates,
// including their status history and review.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage. Returns a Conflict
	// error when the booking reference is already taken.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate: status,
	// newly appended status updates, and an attached review.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier with its
	// full status history and review.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// ExistsByReference reports whether any booking carries the reference.
	// Used to pre-check a freshly drawn reference before insert.
	ExistsByReference(ctx context.Context, reference booking.Reference) (bool, error)

	// RatingsByMover returns the ratings of all reviews attached to the
	// mover's bookings. Used to recompute the mover's mean rating.
	RatingsByMover(ctx context.Context, moverID kernel.UUID) ([]int, error)
}
