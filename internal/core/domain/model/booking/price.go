package booking

import (
	"fmt"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
)

// PriceBreakdown is the itemized price of a move. It is computed once by the
// pricing engine and snapshotted onto the booking at creation; it is never
// silently recomputed afterwards.
//
// The invariant total = base + volume + labor + packing + serviceFee holds by
// construction: NewPriceBreakdown rounds every component to 2 decimal places
// (half-up) and derives the total from the rounded parts.
type PriceBreakdown struct {
	basePrice            float64
	volumePrice          float64
	laborCost            float64
	packingMaterialsCost float64
	serviceFee           float64
	totalPrice           float64
}

// NewPriceBreakdown creates a breakdown from its components. Each component
// must be non-negative; the total is derived, not supplied.
func NewPriceBreakdown(basePrice, volumePrice, laborCost, packingMaterialsCost, serviceFee float64) (PriceBreakdown, error) {
	components := map[string]float64{
		"base price":             basePrice,
		"volume price":           volumePrice,
		"labor cost":             laborCost,
		"packing materials cost": packingMaterialsCost,
		"service fee":            serviceFee,
	}
	for name, v := range components {
		if v < 0 {
			return PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause(
				name, fmt.Errorf("%f is negative", v))
		}
	}

	breakdown := PriceBreakdown{
		basePrice:            kernel.RoundMoney(basePrice),
		volumePrice:          kernel.RoundMoney(volumePrice),
		laborCost:            kernel.RoundMoney(laborCost),
		packingMaterialsCost: kernel.RoundMoney(packingMaterialsCost),
		serviceFee:           kernel.RoundMoney(serviceFee),
	}
	breakdown.totalPrice = kernel.RoundMoney(breakdown.basePrice +
		breakdown.volumePrice +
		breakdown.laborCost +
		breakdown.packingMaterialsCost +
		breakdown.serviceFee)

	return breakdown, nil
}

// RestorePriceBreakdown reconstructs a snapshot from persistence. The stored
// total is kept as-is: the snapshot is immutable history, not a computation.
func RestorePriceBreakdown(basePrice, volumePrice, laborCost, packingMaterialsCost, serviceFee, totalPrice float64) PriceBreakdown {
	return PriceBreakdown{
		basePrice:            basePrice,
		volumePrice:          volumePrice,
		laborCost:            laborCost,
		packingMaterialsCost: packingMaterialsCost,
		serviceFee:           serviceFee,
		totalPrice:           totalPrice,
	}
}

// BasePrice returns the distance component (distance × rate per km).
func (p PriceBreakdown) BasePrice() float64 {
	return p.basePrice
}

// VolumePrice returns the volume component (volume × rate per m³).
func (p PriceBreakdown) VolumePrice() float64 {
	return p.volumePrice
}

// LaborCost returns the flat tiered labor component.
func (p PriceBreakdown) LaborCost() float64 {
	return p.laborCost
}

// PackingMaterialsCost returns the packing materials component.
func (p PriceBreakdown) PackingMaterialsCost() float64 {
	return p.packingMaterialsCost
}

// ServiceFee returns the platform fee component. Currently always zero: the
// platform charges movers, not clients.
func (p PriceBreakdown) ServiceFee() float64 {
	return p.serviceFee
}

// TotalPrice returns the sum of all components.
func (p PriceBreakdown) TotalPrice() float64 {
	return p.totalPrice
}
