package commands

import (
	"context"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"
)

// UpdateBookingStatusCommandHandler handles booking lifecycle transitions.
//
// Completion is the interesting case: the mover's completed-job counter and
// mean rating must change atomically with the booking's move to completed.
// The handler locks the mover row for the duration of the transaction so
// concurrent completions serialize and the counter never loses an increment.
type UpdateBookingStatusCommandHandler struct {
	uowFactory       BookingMoverUoWFactory
	accessPolicy     services.AccessPolicy
	ratingCalculator services.RatingCalculator
	transitionPolicy services.TransitionPolicy
}

// NewUpdateBookingStatusCommandHandler creates a handler for status updates.
func NewUpdateBookingStatusCommandHandler(
	uowFactory BookingMoverUoWFactory,
	accessPolicy services.AccessPolicy,
	ratingCalculator services.RatingCalculator,
	transitionPolicy services.TransitionPolicy,
) UpdateBookingStatusCommandHandler {
	return UpdateBookingStatusCommandHandler{
		uowFactory:       uowFactory,
		accessPolicy:     accessPolicy,
		ratingCalculator: ratingCalculator,
		transitionPolicy: transitionPolicy,
	}
}

// Handle processes the status update command.
//
// A retried request that matches the booking's current state is a no-op and
// commits nothing new; the aggregate recognizes it by label and timestamp.
func (h *UpdateBookingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBookingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	aggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if !h.accessPolicy.CanUpdateStatus(cmd.RequestedBy(), aggregate) {
		return errs.NewAccessDeniedError("update booking status", cmd.RequestedBy().ID())
	}

	updatesBefore := len(aggregate.StatusUpdates())
	if err = aggregate.ChangeStatus(
		cmd.TargetStatus(), cmd.RequestedBy().ID(), cmd.Label(), cmd.Geo(), cmd.Notes(),
		h.transitionPolicy.AllowCancelFromInProgress(), cmd.OccurredAt(),
	); err != nil {
		return err
	}
	if len(aggregate.StatusUpdates()) == updatesBefore {
		// Idempotent retry: the exact transition was already recorded.
		return uow.Commit(ctx)
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.TargetStatus() == booking.Completed {
		if err = h.recordCompletion(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// recordCompletion updates the mover's statistics under a row lock so the
// counter increment and rating recomputation commit with the booking change
// or not at all.
func (h *UpdateBookingStatusCommandHandler) recordCompletion(
	ctx context.Context,
	uow BookingMoverUoW,
	aggregate *booking.Booking,
) error {
	moverRepo := uow.MoverRepository()
	moverAggregate, err := moverRepo.GetForUpdate(ctx, aggregate.MoverID())
	if err != nil {
		return err
	}

	ratings, err := uow.BookingRepository().RatingsByMover(ctx, aggregate.MoverID())
	if err != nil {
		return err
	}

	if err = moverAggregate.RecordCompletion(h.ratingCalculator.Mean(ratings)); err != nil {
		return err
	}

	return moverRepo.Update(ctx, moverAggregate)
}
