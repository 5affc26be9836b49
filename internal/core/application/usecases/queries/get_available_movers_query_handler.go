package queries

import (
	"context"

	"moving/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableMoversQueryHandler retrieves bookable movers from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAvailableMoversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableMoversQueryHandler creates a handler for mover listing queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableMoversQueryHandler(db *gorm.DB) GetAvailableMoversQueryHandler {
	return GetAvailableMoversQueryHandler{db: db}
}

// Handle executes the query to retrieve all approved and available movers.
// Returns a slice of mover read models sorted by company name.
func (h GetAvailableMoversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableMoversQuery,
) ([]GetAvailableMoversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movers := make([]GetAvailableMoversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			company_name,
			vehicle_type,
			vehicle_capacity,
			base_price_per_km,
			price_per_cubic_meter,
			rating,
			total_jobs_completed
		FROM movers
		WHERE approved AND available
		ORDER BY company_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m GetAvailableMoversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&m.CompanyName,
			&m.VehicleType,
			&m.VehicleCapacity,
			&m.BasePricePerKm,
			&m.PricePerCubicMeter,
			&m.Rating,
			&m.TotalJobsCompleted,
		)
		if err != nil {
			return nil, err
		}

		moverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		m.ID = moverID
		movers = append(movers, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movers, nil
}
