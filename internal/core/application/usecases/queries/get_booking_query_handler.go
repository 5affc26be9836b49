package queries

import (
	"context"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookingQueryHandler retrieves a single booking from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern
// and checks the access policy against the scanned party identifiers.
type GetBookingQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetBookingQueryHandler creates a handler for booking retrieval queries.
// Requires a GORM database connection and the access policy.
func NewGetBookingQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query to retrieve one booking.
// Returns ObjectNotFound when the booking does not exist and AccessDenied
// when the actor is neither an admin nor a party to the booking.
func (h GetBookingQueryHandler) Handle(
	ctx context.Context,
	query GetBookingQuery,
) (GetBookingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookingQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			client_id,
			mover_id,
			status,
			pickup_street,
			pickup_floor,
			pickup_details,
			dropoff_street,
			dropoff_floor,
			dropoff_details,
			scheduled_date,
			scheduled_time,
			distance_km,
			total_volume,
			base_price,
			volume_price,
			labor_cost,
			packing_materials_cost,
			service_fee,
			total_price,
			special_instructions,
			created_at,
			updated_at
		FROM bookings
		WHERE id = ?
	`, query.BookingID().Bytes()).Rows()
	if err != nil {
		return GetBookingQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetBookingQueryResponse{}, err
		}
		return GetBookingQueryResponse{}, errs.NewObjectNotFoundError("bookingID", query.BookingID())
	}

	var response GetBookingQueryResponse
	var id, clientID, moverID uuid.UUID
	var status int

	err = rows.Scan(
		&id,
		&response.Reference,
		&clientID,
		&moverID,
		&status,
		&response.PickupStreet,
		&response.PickupFloor,
		&response.PickupDetails,
		&response.DropoffStreet,
		&response.DropoffFloor,
		&response.DropoffDetails,
		&response.ScheduledDate,
		&response.ScheduledTime,
		&response.DistanceKm,
		&response.TotalVolume,
		&response.BasePrice,
		&response.VolumePrice,
		&response.LaborCost,
		&response.PackingMaterialsCost,
		&response.ServiceFee,
		&response.TotalPrice,
		&response.SpecialInstructions,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return GetBookingQueryResponse{}, err
	}

	bookingID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetBookingQueryResponse{}, idErr
	}
	response.ID = bookingID

	response.ClientID, err = kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return GetBookingQueryResponse{}, err
	}
	response.MoverID, err = kernel.UUIDFromBytes(moverID[:])
	if err != nil {
		return GetBookingQueryResponse{}, err
	}
	response.Status = booking.Status(status).String()

	if !h.accessPolicy.CanViewBookingOf(query.RequestedBy(), response.ClientID, response.MoverID) {
		return GetBookingQueryResponse{}, errs.NewAccessDeniedError(
			"view booking", query.RequestedBy().ID())
	}

	return response, nil
}
