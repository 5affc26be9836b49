package queries

import (
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var (
	ErrGetAvailableMoversQueryIsNotConstructed = errors.New(
		"GetAvailableMoversQuery must be created via NewGetAvailableMoversQuery constructor",
	)
)

// GetAvailableMoversQuery retrieves all movers that can currently take
// bookings: approved by the platform and marked available. Feeds the
// client-side estimate and mover selection flow.
//
// Example:
//
//	query := NewGetAvailableMoversQuery()
//	handler := NewGetAvailableMoversQueryHandler(db)
//
//	movers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve movers: %w", err)
//	}
//
//	for _, m := range movers {
//	    fmt.Printf("%s: %.2f/km, rating %.2f\n", m.CompanyName, m.BasePricePerKm, m.Rating)
//	}
type GetAvailableMoversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableMoversQuery creates a query to retrieve all bookable movers.
// This is a parameterless query.
func NewGetAvailableMoversQuery() GetAvailableMoversQuery {
	return GetAvailableMoversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableMoversQueryIsNotConstructed if validation fails.
func (q GetAvailableMoversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableMoversQueryIsNotConstructed)
}

// GetAvailableMoversQueryResponse represents one bookable mover in the read
// model, including the rate card needed to price an estimate.
type GetAvailableMoversQueryResponse struct {
	ID                 kernel.UUID
	CompanyName        string
	VehicleType        string
	VehicleCapacity    float64
	BasePricePerKm     float64
	PricePerCubicMeter float64
	Rating             float64
	TotalJobsCompleted int
}
