package services

import (
	"fmt"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/mover"
	"moving/internal/pkg/errs"
)

// Labor cost tiers by total volume in cubic meters. The tier boundaries are
// inclusive: exactly 5 m³ still falls in the small tier, exactly 10 m³ in the
// medium tier.
const (
	smallMoveMaxVolume  = 5.0
	mediumMoveMaxVolume = 10.0

	smallMoveLaborCost  = 1000.0
	mediumMoveLaborCost = 2000.0
	largeMoveLaborCost  = 3000.0
)

// packingRatePerCubicMeter prices packing materials proportionally to volume.
const packingRatePerCubicMeter = 100.0

// serviceFee is the platform fee charged to the client. Always zero: the
// platform charges movers, not clients. The line item stays in the breakdown
// so that historical totals keep their shape if this ever changes.
const serviceFee = 0.0

// PriceCalculator is a domain service that turns a move's logistics and a
// mover's rate card into an itemized PriceBreakdown.
//
// The algorithm is deterministic: equal inputs always yield equal breakdowns.
//
//	base    = distanceKm × rateCard.BasePricePerKm
//	volume  = totalVolume × rateCard.PricePerCubicMeter
//	labor   = 1000 (≤5 m³) | 2000 (≤10 m³) | 3000 (>10 m³)
//	packing = totalVolume × 100
//	fee     = 0
//
// Each component is rounded half-up to 2 decimal places and the total is the
// sum of the rounded components.
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate prices a move. Distance and volume must be positive; the rate
// card must be valid.
func (c PriceCalculator) Calculate(
	distanceKm float64,
	totalVolume float64,
	rateCard mover.RateCard,
) (booking.PriceBreakdown, error) {
	if distanceKm <= 0 {
		return booking.PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%f is not greater than 0", distanceKm))
	}
	if totalVolume <= 0 {
		return booking.PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"total volume", fmt.Errorf("%f is not greater than 0", totalVolume))
	}
	if err := rateCard.Validate(); err != nil {
		return booking.PriceBreakdown{}, err
	}

	return booking.NewPriceBreakdown(
		distanceKm*rateCard.BasePricePerKm(),
		totalVolume*rateCard.PricePerCubicMeter(),
		c.laborCost(totalVolume),
		totalVolume*packingRatePerCubicMeter,
		serviceFee,
	)
}

func (c PriceCalculator) laborCost(totalVolume float64) float64 {
	switch {
	case totalVolume <= smallMoveMaxVolume:
		return smallMoveLaborCost
	case totalVolume <= mediumMoveMaxVolume:
		return mediumMoveLaborCost
	default:
		return largeMoveLaborCost
	}
}
