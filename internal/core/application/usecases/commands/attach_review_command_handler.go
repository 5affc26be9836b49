package commands

import (
	"context"
	"time"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"
)

// AttachReviewCommandHandler handles review submission.
//
// Attaching a review also refreshes the mover's mean rating: the review is
// persisted first, then the ratings are re-read inside the same transaction
// so the recomputed mean includes it.
type AttachReviewCommandHandler struct {
	uowFactory       BookingMoverUoWFactory
	accessPolicy     services.AccessPolicy
	ratingCalculator services.RatingCalculator
}

// NewAttachReviewCommandHandler creates a handler for review submission.
func NewAttachReviewCommandHandler(
	uowFactory BookingMoverUoWFactory,
	accessPolicy services.AccessPolicy,
	ratingCalculator services.RatingCalculator,
) AttachReviewCommandHandler {
	return AttachReviewCommandHandler{
		uowFactory:       uowFactory,
		accessPolicy:     accessPolicy,
		ratingCalculator: ratingCalculator,
	}
}

// Handle processes the review command. The booking must be completed and
// must not already carry a review; violations surface as Conflict errors
// from the aggregate.
func (h *AttachReviewCommandHandler) Handle(ctx context.Context, cmd AttachReviewCommand) error {
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

	if !h.accessPolicy.CanReview(cmd.RequestedBy(), aggregate) {
		return errs.NewAccessDeniedError("attach review", cmd.RequestedBy().ID())
	}

	review, err := booking.NewReview(
		kernel.NewUUID(), cmd.RequestedBy().ID(), cmd.Rating(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = aggregate.AttachReview(review); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	moverRepo := uow.MoverRepository()
	moverAggregate, err := moverRepo.GetForUpdate(ctx, aggregate.MoverID())
	if err != nil {
		return err
	}

	ratings, err := bookingRepo.RatingsByMover(ctx, aggregate.MoverID())
	if err != nil {
		return err
	}

	if err = moverAggregate.UpdateRating(h.ratingCalculator.Mean(ratings)); err != nil {
		return err
	}

	if err = moverRepo.Update(ctx, moverAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
