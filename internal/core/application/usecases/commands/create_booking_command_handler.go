package commands

import (
	"context"
	"errors"
	"time"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"
)

// referenceAttempts bounds the number of fresh reference draws when the
// random suffix collides with an existing booking.
const referenceAttempts = 5

// ErrReferenceSpaceExhausted is returned when every drawn reference collided.
// With a 3-digit suffix space this signals genuinely dense booking traffic
// for the year, not a transient glitch.
var ErrReferenceSpaceExhausted = errs.NewConflictError("booking reference")

// CreateBookingCommandHandler handles the business logic for booking a move.
//
// The handler prices the move from the mover's current rate card, draws a
// unique human-readable reference, and persists the booking in confirmed
// status, all inside one transaction. The mover must be approved and
// available at booking time.
type CreateBookingCommandHandler struct {
	uowFactory      BookingMoverUoWFactory
	priceCalculator services.PriceCalculator
	accessPolicy    services.AccessPolicy
}

// NewCreateBookingCommandHandler creates a handler for booking creation.
func NewCreateBookingCommandHandler(
	uowFactory BookingMoverUoWFactory,
	priceCalculator services.PriceCalculator,
	accessPolicy services.AccessPolicy,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory:      uowFactory,
		priceCalculator: priceCalculator,
		accessPolicy:    accessPolicy,
	}
}

// Handle processes the booking creation command.
//
// A freshly drawn reference is pre-checked against existing bookings and the
// insert is still guarded by a unique constraint; on either collision the
// handler retries with a new draw, up to referenceAttempts times.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.accessPolicy.CanCreateBookingFor(cmd.RequestedBy(), cmd.ClientID()) {
		return errs.NewAccessDeniedError("create booking", cmd.RequestedBy().ID())
	}

	for attempt := 0; attempt < referenceAttempts; attempt++ {
		created, err := h.tryCreate(ctx, cmd)
		if err != nil {
			return err
		}
		if created {
			return nil
		}
	}

	return ErrReferenceSpaceExhausted
}

// tryCreate runs one creation attempt in its own unit of work. Postgres
// aborts the transaction once the unique constraint fires, so a retry on the
// same transaction would only see "current transaction is aborted"; each
// fresh draw therefore gets a fresh transaction. Returns false with a nil
// error when the drawn reference collided and another draw is worth trying.
func (h *CreateBookingCommandHandler) tryCreate(ctx context.Context, cmd CreateBookingCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moverAggregate, err := uow.MoverRepository().Get(ctx, cmd.MoverID())
	if err != nil {
		return false, err
	}
	if !moverAggregate.IsBookable() {
		return false, errs.NewObjectUnavailableErrorWithCause(
			"mover", cmd.MoverID(), errors.New("mover is not approved or not available"))
	}

	pricing, err := h.priceCalculator.Calculate(
		cmd.DistanceKm(), cmd.TotalVolume(), moverAggregate.RateCard())
	if err != nil {
		return false, err
	}

	bookingRepo := uow.BookingRepository()
	now := time.Now().UTC()
	reference := booking.NewReference(now)

	taken, err := bookingRepo.ExistsByReference(ctx, reference)
	if err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}

	aggregate, err := booking.NewBooking(
		cmd.BookingID(), reference, cmd.ClientID(), cmd.MoverID(),
		cmd.Pickup(), cmd.Dropoff(), cmd.ScheduledDate(), cmd.ScheduledTime(),
		cmd.DistanceKm(), cmd.TotalVolume(), pricing,
		cmd.SpecialInstructions(), now,
	)
	if err != nil {
		return false, err
	}

	if err = bookingRepo.Add(ctx, aggregate); err != nil {
		// The unique constraint backstops the pre-check under concurrent
		// inserts; a conflict here means another transaction won the same
		// reference.
		if errors.Is(err, errs.ErrConflict) {
			return false, nil
		}
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
