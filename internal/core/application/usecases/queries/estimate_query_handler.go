package queries

import (
	"context"

	"moving/internal/core/domain/model/mover"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"gorm.io/gorm"
)

// EstimateQueryHandler prices a prospective move against a mover's current
// rate card. Reads the rate card directly from the database and delegates the
// arithmetic to the pricing service, so estimates and booking snapshots can
// never disagree on the formula.
//
// Example:
//
//	handler := NewEstimateQueryHandler(db, services.NewPriceCalculator())
//	query, _ := NewEstimateQuery(moverID, 12.5, 8.0)
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to estimate: %v", err)
//	    return err
//	}
type EstimateQueryHandler struct {
	db              *gorm.DB
	priceCalculator services.PriceCalculator
}

// NewEstimateQueryHandler creates a handler for price estimate queries.
// Requires a GORM database connection and the pricing service.
func NewEstimateQueryHandler(db *gorm.DB, priceCalculator services.PriceCalculator) EstimateQueryHandler {
	return EstimateQueryHandler{db: db, priceCalculator: priceCalculator}
}

// Handle executes the estimate query.
// Returns ObjectNotFound when the mover does not exist; a missing rate card
// must surface as an error, never price against zero rates.
func (h EstimateQueryHandler) Handle(
	ctx context.Context,
	query EstimateQuery,
) (EstimateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			base_price_per_km,
			price_per_cubic_meter
		FROM movers
		WHERE id = ?
	`, query.MoverID().Bytes()).Rows()
	if err != nil {
		return EstimateQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return EstimateQueryResponse{}, err
		}
		return EstimateQueryResponse{}, errs.NewObjectNotFoundError("moverID", query.MoverID())
	}

	var basePricePerKm, pricePerCubicMeter float64
	if err = rows.Scan(&basePricePerKm, &pricePerCubicMeter); err != nil {
		return EstimateQueryResponse{}, err
	}

	rateCard, err := mover.NewRateCard(basePricePerKm, pricePerCubicMeter)
	if err != nil {
		return EstimateQueryResponse{}, err
	}

	pricing, err := h.priceCalculator.Calculate(query.DistanceKm(), query.TotalVolume(), rateCard)
	if err != nil {
		return EstimateQueryResponse{}, err
	}

	return EstimateQueryResponse{
		BasePrice:            pricing.BasePrice(),
		VolumePrice:          pricing.VolumePrice(),
		LaborCost:            pricing.LaborCost(),
		PackingMaterialsCost: pricing.PackingMaterialsCost(),
		ServiceFee:           pricing.ServiceFee(),
		TotalPrice:           pricing.TotalPrice(),
	}, nil
}
