// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var (
	ErrEstimateQueryIsNotConstructed = errors.New(
		"EstimateQuery must be created via NewEstimateQuery constructor",
	)
)

// EstimateQuery requests a display-only price estimate for a prospective move
// with a specific mover. Estimates use the mover's current rate card and are
// never persisted; booking creation computes its own price snapshot.
//
// Example:
//
//	query, err := NewEstimateQuery(moverID, 12.5, 8.0)
//	if err != nil {
//	    return err
//	}
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to estimate: %w", err)
//	}
//
//	fmt.Printf("Total: %.2f\n", estimate.TotalPrice)
type EstimateQuery struct {
	moverID     kernel.UUID
	distanceKm  float64
	totalVolume float64

	guard guard.ConstructorGuard
}

// NewEstimateQuery creates a validated estimate query.
// Distance and volume must both be greater than zero.
func NewEstimateQuery(moverID kernel.UUID, distanceKm, totalVolume float64) (EstimateQuery, error) {
	if err := moverID.Validate(); err != nil {
		return EstimateQuery{}, errs.NewValueIsRequiredError("moverID")
	}
	if distanceKm <= 0 {
		return EstimateQuery{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if totalVolume <= 0 {
		return EstimateQuery{}, errs.NewValueIsInvalidError("totalVolume")
	}

	return EstimateQuery{
		moverID:     moverID,
		distanceKm:  distanceKm,
		totalVolume: totalVolume,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// MoverID returns the mover whose rate card prices the estimate.
func (q EstimateQuery) MoverID() kernel.UUID {
	return q.moverID
}

// DistanceKm returns the estimated move distance in kilometers.
func (q EstimateQuery) DistanceKm() float64 {
	return q.distanceKm
}

// TotalVolume returns the estimated cargo volume in cubic meters.
func (q EstimateQuery) TotalVolume() float64 {
	return q.totalVolume
}

// Validate ensures the query was created through the constructor.
// Returns ErrEstimateQueryIsNotConstructed if validation fails.
func (q EstimateQuery) Validate() error {
	return q.guard.Validate(ErrEstimateQueryIsNotConstructed)
}

// EstimateQueryResponse is the itemized price estimate read model.
// All amounts are rounded to two decimal places.
type EstimateQueryResponse struct {
	BasePrice            float64
	VolumePrice          float64
	LaborCost            float64
	PackingMaterialsCost float64
	ServiceFee           float64
	TotalPrice           float64
}
