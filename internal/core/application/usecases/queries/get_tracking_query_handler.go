package queries

import (
	"context"
	"database/sql"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingQueryHandler retrieves a booking's status history from the
// database. Reads the booking header first to enforce the access policy,
// then the history ordered by report time.
type GetTrackingQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection and the access policy.
func NewGetTrackingQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the tracking query.
// Returns ObjectNotFound when the booking does not exist and AccessDenied
// when the actor may not read it.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	response, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	response.History, err = h.loadHistory(ctx, query.BookingID())
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	return response, nil
}

func (h GetTrackingQueryHandler) loadHeader(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			client_id,
			mover_id,
			status
		FROM bookings
		WHERE id = ?
	`, query.BookingID().Bytes()).Rows()
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetTrackingQueryResponse{}, err
		}
		return GetTrackingQueryResponse{}, errs.NewObjectNotFoundError("bookingID", query.BookingID())
	}

	var response GetTrackingQueryResponse
	var clientID, moverID uuid.UUID
	var status int

	if err = rows.Scan(&response.Reference, &clientID, &moverID, &status); err != nil {
		return GetTrackingQueryResponse{}, err
	}
	response.BookingID = query.BookingID()
	response.Status = booking.Status(status).String()

	ownerID, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}
	assigneeID, err := kernel.UUIDFromBytes(moverID[:])
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	if !h.accessPolicy.CanViewBookingOf(query.RequestedBy(), ownerID, assigneeID) {
		return GetTrackingQueryResponse{}, errs.NewAccessDeniedError(
			"view booking tracking", query.RequestedBy().ID())
	}

	return response, nil
}

func (h GetTrackingQueryHandler) loadHistory(
	ctx context.Context,
	bookingID kernel.UUID,
) ([]TrackingEventResponse, error) {
	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			label,
			latitude,
			longitude,
			notes,
			updated_by,
			created_at
		FROM status_updates
		WHERE booking_id = ?
		ORDER BY created_at, id
	`, bookingID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse
		var id, updatedBy uuid.UUID
		var latitude, longitude sql.NullFloat64

		err = rows.Scan(
			&id,
			&event.Label,
			&latitude,
			&longitude,
			&event.Notes,
			&updatedBy,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		event.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		event.UpdatedBy, err = kernel.UUIDFromBytes(updatedBy[:])
		if err != nil {
			return nil, err
		}
		if latitude.Valid && longitude.Valid {
			event.Latitude = &latitude.Float64
			event.Longitude = &longitude.Float64
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
