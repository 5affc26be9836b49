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
	ErrGetBookingQueryIsNotConstructed = errors.New(
		"GetBookingQuery must be created via NewGetBookingQuery constructor",
	)
)

// GetBookingQuery retrieves a single booking for an actor. The handler
// enforces the access policy: only an admin, the owning client, or the
// assigned mover may read a booking.
type GetBookingQuery struct {
	bookingID   kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetBookingQuery creates a validated booking retrieval query.
func NewGetBookingQuery(bookingID kernel.UUID, requestedBy actor.Actor) (GetBookingQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingQuery{}, errs.NewValueIsRequiredError("bookingID")
	}
	if err := requestedBy.Validate(); err != nil {
		return GetBookingQuery{}, err
	}

	return GetBookingQuery{
		bookingID:   bookingID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// BookingID returns the identifier of the requested booking.
func (q GetBookingQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// RequestedBy returns the actor making the request.
func (q GetBookingQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBookingQueryIsNotConstructed if validation fails.
func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

// GetBookingQueryResponse is the booking read model, flattening the price
// snapshot and both addresses for direct display.
type GetBookingQueryResponse struct {
	ID        kernel.UUID
	Reference string
	ClientID  kernel.UUID
	MoverID   kernel.UUID
	Status    string

	PickupStreet   string
	PickupFloor    string
	PickupDetails  string
	DropoffStreet  string
	DropoffFloor   string
	DropoffDetails string

	ScheduledDate time.Time
	ScheduledTime time.Time
	DistanceKm    float64
	TotalVolume   float64

	BasePrice            float64
	VolumePrice          float64
	LaborCost            float64
	PackingMaterialsCost float64
	ServiceFee           float64
	TotalPrice           float64

	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
