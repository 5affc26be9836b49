package mover

import (
	"fmt"

	"moving/internal/pkg/errs"
)

// RateCard is a mover's published pricing inputs: the per-kilometer rate for
// the distance component and the per-cubic-meter rate for the volume
// component. Rates are immutable value objects; changing a rate means
// publishing a new card.
type RateCard struct {
	basePricePerKm     float64
	pricePerCubicMeter float64
}

// NewRateCard creates a validated rate card. Both rates must be positive.
func NewRateCard(basePricePerKm, pricePerCubicMeter float64) (RateCard, error) {
	if basePricePerKm <= 0 {
		return RateCard{}, errs.NewValueIsInvalidErrorWithCause(
			"base price per km", fmt.Errorf("%f is not greater than 0", basePricePerKm))
	}
	if pricePerCubicMeter <= 0 {
		return RateCard{}, errs.NewValueIsInvalidErrorWithCause(
			"price per cubic meter", fmt.Errorf("%f is not greater than 0", pricePerCubicMeter))
	}
	return RateCard{
		basePricePerKm:     basePricePerKm,
		pricePerCubicMeter: pricePerCubicMeter,
	}, nil
}

// BasePricePerKm returns the distance rate.
func (r RateCard) BasePricePerKm() float64 {
	return r.basePricePerKm
}

// PricePerCubicMeter returns the volume rate.
func (r RateCard) PricePerCubicMeter() float64 {
	return r.pricePerCubicMeter
}

// IsEqual reports whether two rate cards carry identical rates.
func (r RateCard) IsEqual(other RateCard) bool {
	return r.basePricePerKm == other.basePricePerKm &&
		r.pricePerCubicMeter == other.pricePerCubicMeter
}

// Validate returns an error for a zero-value rate card.
func (r RateCard) Validate() error {
	if r.basePricePerKm <= 0 || r.pricePerCubicMeter <= 0 {
		return errs.NewValueIsRequiredError("rate card")
	}
	return nil
}
