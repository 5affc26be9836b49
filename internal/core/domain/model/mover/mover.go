package mover

import (
	"errors"
	"fmt"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

const (
	// MinRatingValue is the lower bound of a mover's aggregate rating.
	// 0.0 is the defined rating of a mover with no reviews.
	MinRatingValue = 0.0
	// MaxRatingValue is the upper bound of a mover's aggregate rating.
	MaxRatingValue = 5.0
)

// ErrMoverIsNotConstructed is returned when using an improperly initialized Mover.
var ErrMoverIsNotConstructed = errors.New("Mover must be created via NewMover constructor")

// Mover is the aggregate root for a moving company. Besides the profile and
// rate card it carries two derived statistics maintained by the booking
// lifecycle: the mean review rating and the completed-job counter. Both are
// updated atomically with the completion that causes them to change.
type Mover struct {
	id                 kernel.UUID
	companyName        string
	vehicleType        string
	vehicleCapacity    float64
	rateCard           RateCard
	approved           bool
	available          bool
	rating             float64
	totalJobsCompleted int

	guard guard.ConstructorGuard
}

// NewMover creates a mover profile. New movers start unapproved, available,
// unrated, and with zero completed jobs.
func NewMover(
	id kernel.UUID,
	companyName string,
	vehicleType string,
	vehicleCapacity float64,
	rateCard RateCard,
) (*Mover, error) {
	m := &Mover{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setProfile(companyName, vehicleType, vehicleCapacity),
		m.setRateCard(rateCard),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMover reconstructs a mover aggregate from persistence.
func RestoreMover(
	id kernel.UUID,
	companyName string,
	vehicleType string,
	vehicleCapacity float64,
	rateCard RateCard,
	approved bool,
	available bool,
	rating float64,
	totalJobsCompleted int,
) (*Mover, error) {
	m := &Mover{
		approved:  approved,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setProfile(companyName, vehicleType, vehicleCapacity),
		m.setRateCard(rateCard),
		m.setRating(rating),
		m.setTotalJobsCompleted(totalJobsCompleted),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Mover was created through a constructor.
func (m *Mover) Validate() error {
	if m == nil {
		return ErrMoverIsNotConstructed
	}
	return m.guard.Validate(ErrMoverIsNotConstructed)
}

// ID returns the mover's unique identifier.
func (m *Mover) ID() kernel.UUID {
	return m.id
}

// CompanyName returns the company name.
func (m *Mover) CompanyName() string {
	return m.companyName
}

// VehicleType returns the vehicle description.
func (m *Mover) VehicleType() string {
	return m.vehicleType
}

// VehicleCapacity returns the vehicle capacity in cubic meters.
func (m *Mover) VehicleCapacity() float64 {
	return m.vehicleCapacity
}

// RateCard returns the mover's pricing inputs.
func (m *Mover) RateCard() RateCard {
	return m.rateCard
}

// Approved reports whether the platform has approved the mover.
func (m *Mover) Approved() bool {
	return m.approved
}

// Available reports whether the mover is currently accepting bookings.
func (m *Mover) Available() bool {
	return m.available
}

// Rating returns the mean review rating, or 0.0 when unrated.
func (m *Mover) Rating() float64 {
	return m.rating
}

// TotalJobsCompleted returns the completed-job counter.
func (m *Mover) TotalJobsCompleted() int {
	return m.totalJobsCompleted
}

// IsBookable reports whether new bookings may be created against the mover.
// A mover must be both approved and available.
func (m *Mover) IsBookable() bool {
	return m.approved && m.available
}

// Approve marks the mover as approved by the platform.
func (m *Mover) Approve() {
	m.approved = true
}

// SetAvailability toggles whether the mover accepts new bookings. Bookings
// already in flight are unaffected.
func (m *Mover) SetAvailability(available bool) {
	m.available = available
}

// RecordCompletion increments the completed-job counter and replaces the
// aggregate rating with the freshly recomputed mean. Callers compute the mean
// over all reviews inside the same transaction that completes the booking.
func (m *Mover) RecordCompletion(recomputedRating float64) error {
	if err := m.setRating(recomputedRating); err != nil {
		return err
	}
	m.totalJobsCompleted++
	return nil
}

// UpdateRating replaces the aggregate rating without touching the job
// counter. Used when a review arrives after completion and by the nightly
// reconciliation job.
func (m *Mover) UpdateRating(recomputedRating float64) error {
	return m.setRating(recomputedRating)
}

func (m *Mover) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Mover) setProfile(companyName, vehicleType string, vehicleCapacity float64) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("company name")
	}
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	if vehicleCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle capacity", fmt.Errorf("%f is not greater than 0", vehicleCapacity))
	}
	m.companyName = companyName
	m.vehicleType = vehicleType
	m.vehicleCapacity = vehicleCapacity
	return nil
}

func (m *Mover) setRateCard(rateCard RateCard) error {
	if err := rateCard.Validate(); err != nil {
		return err
	}
	m.rateCard = rateCard
	return nil
}

func (m *Mover) setRating(rating float64) error {
	if rating < MinRatingValue || rating > MaxRatingValue {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRatingValue, MaxRatingValue)
	}
	m.rating = rating
	return nil
}

func (m *Mover) setTotalJobsCompleted(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total jobs completed", fmt.Errorf("%d is negative", total))
	}
	m.totalJobsCompleted = total
	return nil
}
