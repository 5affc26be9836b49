package commands

import (
	"context"

	"moving/internal/core/domain/services"
)

// RecalculateRatingsCommandHandler reconciles every mover's stored mean
// rating with the ratings actually on record. In normal operation the two
// never drift, because completions and reviews update the mean in the same
// transaction; the job exists to repair the aftermath of manual data fixes.
type RecalculateRatingsCommandHandler struct {
	uowFactory       BookingMoverUoWFactory
	ratingCalculator services.RatingCalculator
}

// NewRecalculateRatingsCommandHandler creates a handler for rating
// reconciliation.
func NewRecalculateRatingsCommandHandler(
	uowFactory BookingMoverUoWFactory,
	ratingCalculator services.RatingCalculator,
) RecalculateRatingsCommandHandler {
	return RecalculateRatingsCommandHandler{
		uowFactory:       uowFactory,
		ratingCalculator: ratingCalculator,
	}
}

// Handle recomputes the mean rating for every mover and persists only the
// ones that drifted.
func (h *RecalculateRatingsCommandHandler) Handle(ctx context.Context, cmd RecalculateRatingsCommand) error {
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

	moverRepo := uow.MoverRepository()
	bookingRepo := uow.BookingRepository()

	movers, err := moverRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, moverAggregate := range movers {
		ratings, err := bookingRepo.RatingsByMover(ctx, moverAggregate.ID())
		if err != nil {
			return err
		}

		mean := h.ratingCalculator.Mean(ratings)
		if mean == moverAggregate.Rating() {
			continue
		}

		if err = moverAggregate.UpdateRating(mean); err != nil {
			return err
		}
		if err = moverRepo.Update(ctx, moverAggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
