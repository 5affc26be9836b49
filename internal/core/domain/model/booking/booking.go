package booking

import (
	"errors"
	"fmt"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

const (
	// initialStatusLabel is the label of the first status update, recorded
	// automatically at creation.
	initialStatusLabel = "Booking Confirmed"
	// initialStatusNotes is the note attached to the first status update.
	initialStatusNotes = "Booking created successfully"
)

// Domain errors for booking operations.
var (
	// ErrBookingIsNotConstructed is returned when using an improperly initialized Booking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
	// ErrDistanceIsInvalid is returned when distance is not greater than 0 km.
	ErrDistanceIsInvalid = errs.NewValueIsInvalidError("distance must be greater than 0")
	// ErrVolumeIsInvalid is returned when total volume is not greater than 0 m³.
	ErrVolumeIsInvalid = errs.NewValueIsInvalidError("total volume must be greater than 0")
)

// Booking is the aggregate root for a contracted move. It owns the parties,
// logistics, the immutable pricing snapshot, the append-only StatusUpdate
// history, and at most one Review.
//
// Invariants:
//   - Client and mover references are immutable after creation
//   - Distance and total volume are positive
//   - Status transitions follow the table in Status.Transition
//   - Every transition appends exactly one StatusUpdate
//   - updatedAt never moves backwards and is never before createdAt
//   - A review can be attached once, and only while completed
type Booking struct {
	id        kernel.UUID
	reference Reference
	clientID  kernel.UUID
	moverID   kernel.UUID
	status    Status

	pickup        kernel.Address
	dropoff       kernel.Address
	scheduledDate time.Time
	scheduledTime time.Time

	distanceKm  float64
	totalVolume float64
	pricing     PriceBreakdown

	specialInstructions string

	createdAt time.Time
	updatedAt time.Time

	statusUpdates []*StatusUpdate
	review        *Review

	guard guard.ConstructorGuard
}

// NewBooking creates a booking in the confirmed status and records its first
// status update on behalf of the creating client. The pricing snapshot is
// taken as supplied and never recomputed by the aggregate.
func NewBooking(
	id kernel.UUID,
	reference Reference,
	clientID kernel.UUID,
	moverID kernel.UUID,
	pickup kernel.Address,
	dropoff kernel.Address,
	scheduledDate time.Time,
	scheduledTime time.Time,
	distanceKm float64,
	totalVolume float64,
	pricing PriceBreakdown,
	specialInstructions string,
	now time.Time,
) (*Booking, error) {
	b := &Booking{
		status:              Confirmed,
		pricing:             pricing,
		specialInstructions: specialInstructions,
		createdAt:           now,
		updatedAt:           now,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setReference(reference),
		b.setParties(clientID, moverID),
		b.setAddresses(pickup, dropoff),
		b.setSchedule(scheduledDate, scheduledTime),
		b.setDistance(distanceKm),
		b.setTotalVolume(totalVolume),
	); err != nil {
		return nil, err
	}

	first, err := NewStatusUpdate(kernel.NewUUID(), initialStatusLabel, nil, initialStatusNotes, clientID, now)
	if err != nil {
		return nil, err
	}
	b.statusUpdates = append(b.statusUpdates, first)

	return b, nil
}

// RestoreBooking reconstructs a booking aggregate from persistence, including
// its status history and optional review.
func RestoreBooking(
	id kernel.UUID,
	reference Reference,
	clientID kernel.UUID,
	moverID kernel.UUID,
	status Status,
	pickup kernel.Address,
	dropoff kernel.Address,
	scheduledDate time.Time,
	scheduledTime time.Time,
	distanceKm float64,
	totalVolume float64,
	pricing PriceBreakdown,
	specialInstructions string,
	statusUpdates []*StatusUpdate,
	review *Review,
	createdAt time.Time,
	updatedAt time.Time,
) (*Booking, error) {
	b := &Booking{
		pricing:             pricing,
		specialInstructions: specialInstructions,
		statusUpdates:       statusUpdates,
		review:              review,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setReference(reference),
		b.setParties(clientID, moverID),
		b.setAddresses(pickup, dropoff),
		b.setSchedule(scheduledDate, scheduledTime),
		b.setDistance(distanceKm),
		b.setTotalVolume(totalVolume),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	b.status = status

	return b, nil
}

// Validate ensures the Booking was created through a constructor.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

// ID returns the booking's surrogate identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// Reference returns the human-readable booking reference.
func (b *Booking) Reference() Reference {
	return b.reference
}

// ClientID returns the owning client's identifier.
func (b *Booking) ClientID() kernel.UUID {
	return b.clientID
}

// MoverID returns the owning mover's identifier.
func (b *Booking) MoverID() kernel.UUID {
	return b.moverID
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// Pickup returns the pickup address.
func (b *Booking) Pickup() kernel.Address {
	return b.pickup
}

// Dropoff returns the dropoff address.
func (b *Booking) Dropoff() kernel.Address {
	return b.dropoff
}

// ScheduledDate returns the scheduled move date.
func (b *Booking) ScheduledDate() time.Time {
	return b.scheduledDate
}

// ScheduledTime returns the scheduled time of day.
func (b *Booking) ScheduledTime() time.Time {
	return b.scheduledTime
}

// DistanceKm returns the move distance in kilometers.
func (b *Booking) DistanceKm() float64 {
	return b.distanceKm
}

// TotalVolume returns the shipment volume in cubic meters.
func (b *Booking) TotalVolume() float64 {
	return b.totalVolume
}

// Pricing returns the immutable price snapshot.
func (b *Booking) Pricing() PriceBreakdown {
	return b.pricing
}

// SpecialInstructions returns optional free-text instructions.
func (b *Booking) SpecialInstructions() string {
	return b.specialInstructions
}

// CreatedAt returns the creation time.
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns the last modification time.
func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

// StatusUpdates returns the status history in insertion order.
// The returned slice is a copy; the history itself is append-only.
func (b *Booking) StatusUpdates() []*StatusUpdate {
	updates := make([]*StatusUpdate, len(b.statusUpdates))
	copy(updates, b.statusUpdates)
	return updates
}

// Review returns the attached review, or nil.
func (b *Booking) Review() *Review {
	return b.review
}

// ChangeStatus transitions the booking to target and appends exactly one
// StatusUpdate recording the transition. The label defaults to the target
// status's wire form when empty; geo and notes are optional audit data.
//
// A retried write that matches the current status and the last recorded
// (label, timestamp) pair is treated as idempotent and changes nothing.
//
// allowCancelInProgress is the policy switch for cancelling a move that has
// already started.
func (b *Booking) ChangeStatus(
	target Status,
	actorID kernel.UUID,
	label string,
	geo *kernel.GeoPoint,
	notes string,
	allowCancelInProgress bool,
	now time.Time,
) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if label == "" {
		label = target.String()
	}

	if b.isRetriedWrite(target, label, now) {
		return nil
	}

	newStatus, err := b.status.Transition(target, allowCancelInProgress)
	if err != nil {
		return err
	}

	update, err := NewStatusUpdate(kernel.NewUUID(), label, geo, notes, actorID, now)
	if err != nil {
		return err
	}

	b.status = newStatus
	b.statusUpdates = append(b.statusUpdates, update)
	b.touch(now)
	return nil
}

// AttachReview attaches the client's one-time review. The booking must be
// completed and must not already have a review.
func (b *Booking) AttachReview(review *Review) error {
	if review == nil {
		return errs.NewValueIsRequiredError("review")
	}
	if b.status != Completed {
		return errs.NewConflictErrorWithCause(
			"review",
			fmt.Errorf("booking is %s, reviews require a completed booking", b.status),
		)
	}
	if b.review != nil {
		return errs.NewConflictErrorWithCause(
			"review",
			errors.New("booking already has a review"),
		)
	}

	b.review = review
	b.touch(review.CreatedAt())
	return nil
}

// isRetriedWrite reports whether a status change request duplicates the last
// committed transition (same resulting status, label, and timestamp), which
// happens when a caller retries after a lost response.
func (b *Booking) isRetriedWrite(target Status, label string, at time.Time) bool {
	if b.status != target || len(b.statusUpdates) == 0 {
		return false
	}
	last := b.statusUpdates[len(b.statusUpdates)-1]
	return last.Label() == label && last.CreatedAt().Equal(at)
}

// touch advances updatedAt monotonically.
func (b *Booking) touch(now time.Time) {
	if now.After(b.updatedAt) {
		b.updatedAt = now
	}
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setReference(reference Reference) error {
	if err := reference.Validate(); err != nil {
		return err
	}
	b.reference = reference
	return nil
}

func (b *Booking) setParties(clientID, moverID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if err := moverID.Validate(); err != nil {
		return err
	}
	b.clientID = clientID
	b.moverID = moverID
	return nil
}

func (b *Booking) setAddresses(pickup, dropoff kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if err := dropoff.Validate(); err != nil {
		return err
	}
	b.pickup = pickup
	b.dropoff = dropoff
	return nil
}

func (b *Booking) setSchedule(scheduledDate, scheduledTime time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}
	if scheduledTime.IsZero() {
		return errs.NewValueIsRequiredError("scheduled time")
	}
	b.scheduledDate = scheduledDate
	b.scheduledTime = scheduledTime
	return nil
}

func (b *Booking) setDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return ErrDistanceIsInvalid
	}
	b.distanceKm = distanceKm
	return nil
}

func (b *Booking) setTotalVolume(totalVolume float64) error {
	if totalVolume <= 0 {
		return ErrVolumeIsInvalid
	}
	b.totalVolume = totalVolume
	return nil
}
