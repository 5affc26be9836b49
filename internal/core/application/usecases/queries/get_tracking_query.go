package queries

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var (
	ErrGetTrackingQueryIsNotConstructed = errors.New(
		"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
	)
)

// GetTrackingQuery retrieves the current status and the full status history
// of a booking. Subject to the same access rules as reading the booking.
type GetTrackingQuery struct {
	bookingID   kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a validated tracking query.
func NewGetTrackingQuery(bookingID kernel.UUID, requestedBy actor.Actor) (GetTrackingQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetTrackingQuery{}, errs.NewValueIsRequiredError("bookingID")
	}
	if err := requestedBy.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		bookingID:   bookingID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// BookingID returns the identifier of the tracked booking.
func (q GetTrackingQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// RequestedBy returns the actor making the request.
func (q GetTrackingQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackingQueryIsNotConstructed if validation fails.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// TrackingEventResponse is one entry of a booking's status history.
// Coordinates are present only when the crew reported them.
type TrackingEventResponse struct {
	ID        kernel.UUID
	Label     string
	Latitude  *float64
	Longitude *float64
	Notes     string
	UpdatedBy kernel.UUID
	CreatedAt time.Time
}

// GetTrackingQueryResponse is the tracking read model: the booking's current
// status plus its append-only history in chronological order.
type GetTrackingQueryResponse struct {
	BookingID kernel.UUID
	Reference string
	Status    string
	History   []TrackingEventResponse
}
