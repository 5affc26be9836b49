package http

import "time"

// ErrorResponse is the JSON error body returned by every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressPayload is one end of a move in request and response bodies.
type AddressPayload struct {
	Street    string   `json:"street"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Floor     string   `json:"floor,omitempty"`
	Details   string   `json:"details,omitempty"`
}

// ItemPayload is one inventory or estimate line.
type ItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Volume   float64 `json:"volume"`
}

// CreateBookingRequest is the body of POST /api/v1/bookings.
type CreateBookingRequest struct {
	ClientID            string         `json:"client_id"`
	MoverID             string         `json:"mover_id"`
	Pickup              AddressPayload `json:"pickup"`
	Dropoff             AddressPayload `json:"dropoff"`
	ScheduledDate       time.Time      `json:"scheduled_date"`
	ScheduledTime       time.Time      `json:"scheduled_time"`
	DistanceKm          float64        `json:"distance_km"`
	TotalVolume         float64        `json:"total_volume"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
}

// CreateBookingResponse returns the identifier of the created booking.
type CreateBookingResponse struct {
	ID string `json:"id"`
}

// UpdateBookingStatusRequest is the body of PATCH /api/v1/bookings/:id/status.
// OccurredAt is caller-supplied so a retried request is recognized as a
// replay instead of appending a duplicate history entry.
type UpdateBookingStatusRequest struct {
	Status     string    `json:"status"`
	Label      string    `json:"label,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AttachReviewRequest is the body of POST /api/v1/bookings/:id/review.
type AttachReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// EstimateRequest is the body of POST /api/v1/estimates. Either a total
// volume or an item list must be supplied; when both are present the
// explicit total wins.
type EstimateRequest struct {
	MoverID     string        `json:"mover_id"`
	DistanceKm  float64       `json:"distance_km"`
	TotalVolume float64       `json:"total_volume,omitempty"`
	Items       []ItemPayload `json:"items,omitempty"`
}

// EstimateResponse is the itemized price estimate.
type EstimateResponse struct {
	BasePrice            float64 `json:"base_price"`
	VolumePrice          float64 `json:"volume_price"`
	LaborCost            float64 `json:"labor_cost"`
	PackingMaterialsCost float64 `json:"packing_materials_cost"`
	ServiceFee           float64 `json:"service_fee"`
	TotalPrice           float64 `json:"total_price"`
}

// BookingResponse is the booking read model returned by GET /api/v1/bookings/:id.
type BookingResponse struct {
	ID                  string           `json:"id"`
	Reference           string           `json:"reference"`
	ClientID            string           `json:"client_id"`
	MoverID             string           `json:"mover_id"`
	Status              string           `json:"status"`
	Pickup              AddressPayload   `json:"pickup"`
	Dropoff             AddressPayload   `json:"dropoff"`
	ScheduledDate       time.Time        `json:"scheduled_date"`
	ScheduledTime       time.Time        `json:"scheduled_time"`
	DistanceKm          float64          `json:"distance_km"`
	TotalVolume         float64          `json:"total_volume"`
	Pricing             EstimateResponse `json:"pricing"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// TrackingEvent is one entry of the status history.
type TrackingEvent struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TrackingResponse is returned by GET /api/v1/bookings/:id/tracking.
type TrackingResponse struct {
	BookingID string          `json:"booking_id"`
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	History   []TrackingEvent `json:"history"`
}

// MoverResponse is one bookable mover returned by GET /api/v1/movers.
type MoverResponse struct {
	ID                 string  `json:"id"`
	CompanyName        string  `json:"company_name"`
	VehicleType        string  `json:"vehicle_type"`
	VehicleCapacity    float64 `json:"vehicle_capacity"`
	BasePricePerKm     float64 `json:"base_price_per_km"`
	PricePerCubicMeter float64 `json:"price_per_cubic_meter"`
	Rating             float64 `json:"rating"`
	TotalJobsCompleted int     `json:"total_jobs_completed"`
}

// CreateInventoryRequest is the body of POST /api/v1/inventories.
type CreateInventoryRequest struct {
	ClientID string        `json:"client_id"`
	RoomType string        `json:"room_type"`
	Items    []ItemPayload `json:"items"`
}

// CreateInventoryResponse returns the identifier of the created inventory.
type CreateInventoryResponse struct {
	ID string `json:"id"`
}

// UpdateInventoryRequest is the body of PUT /api/v1/inventories/:id.
// The item list replaces the stored one wholesale.
type UpdateInventoryRequest struct {
	RoomType string        `json:"room_type"`
	Items    []ItemPayload `json:"items"`
}

// InventoryResponse is one inventory returned by
// GET /api/v1/clients/:clientID/inventories.
type InventoryResponse struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	RoomType    string        `json:"room_type"`
	Items       []ItemPayload `json:"items"`
	TotalVolume float64       `json:"total_volume"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
