// Package bookingrepo provides data transfer objects and mapping functions
// for booking persistence. The booking aggregate spans three tables: the
// booking row itself, its append-only status history, and an optional review.
package bookingrepo

import (
	"time"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. The reference carries a unique index; collisions on insert are
// the backstop behind the in-handler retry loop.
type BookingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MoverID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    int       `gorm:"type:int;not null"`

	Pickup  AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff AddressDTO `gorm:"embedded;embeddedPrefix:dropoff_"`

	ScheduledDate time.Time `gorm:"not null"`
	ScheduledTime time.Time `gorm:"not null"`
	DistanceKm    float64   `gorm:"not null"`
	TotalVolume   float64   `gorm:"not null"`

	Pricing PriceBreakdownDTO `gorm:"embedded"`

	SpecialInstructions string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	StatusUpdates []StatusUpdateDTO `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Review        *ReviewDTO        `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// AddressDTO represents one embedded move endpoint within the booking table.
// Coordinates are nullable; the street is always present.
type AddressDTO struct {
	Street    string `gorm:"type:varchar(255);not null"`
	Latitude  *float64
	Longitude *float64
	Floor     string `gorm:"type:varchar(32)"`
	Details   string `gorm:"type:text"`
}

// PriceBreakdownDTO represents the embedded immutable price snapshot within
// the booking table.
type PriceBreakdownDTO struct {
	BasePrice            float64 `gorm:"not null"`
	VolumePrice          float64 `gorm:"not null"`
	LaborCost            float64 `gorm:"not null"`
	PackingMaterialsCost float64 `gorm:"not null"`
	ServiceFee           float64 `gorm:"not null"`
	TotalPrice           float64 `gorm:"not null"`
}

// StatusUpdateDTO represents one row of a booking's status history.
type StatusUpdateDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(255);not null"`
	Latitude  *float64
	Longitude *float64
	Notes     string    `gorm:"type:text"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for status update entities.
func (StatusUpdateDTO) TableName() string {
	return "status_updates"
}

// ReviewDTO represents the review attached to a completed booking.
// The unique index on booking_id enforces at most one review per booking.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null"`
	Rating    int       `gorm:"type:int;not null"`
	Comment   string    `gorm:"type:text"`
	Response  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a booking domain aggregate to its database
// representation, including status history and review.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	bookingID := aggregate.ID().Bytes()

	statusUpdates := make([]StatusUpdateDTO, 0, len(aggregate.StatusUpdates()))
	for _, update := range aggregate.StatusUpdates() {
		dto := StatusUpdateDTO{
			ID:        update.ID().Bytes(),
			BookingID: bookingID,
			Label:     update.Label(),
			Notes:     update.Notes(),
			UpdatedBy: update.UpdatedBy().Bytes(),
			CreatedAt: update.CreatedAt(),
		}
		if geo := update.Geo(); geo != nil {
			lat, lon := geo.Latitude(), geo.Longitude()
			dto.Latitude = &lat
			dto.Longitude = &lon
		}
		statusUpdates = append(statusUpdates, dto)
	}

	var review *ReviewDTO
	if r := aggregate.Review(); r != nil {
		review = &ReviewDTO{
			ID:        r.ID().Bytes(),
			BookingID: bookingID,
			ClientID:  r.ClientID().Bytes(),
			Rating:    r.Rating(),
			Comment:   r.Comment(),
			Response:  r.Response(),
			CreatedAt: r.CreatedAt(),
		}
	}

	pricing := aggregate.Pricing()

	return BookingDTO{
		ID:            bookingID,
		Reference:     aggregate.Reference().String(),
		ClientID:      aggregate.ClientID().Bytes(),
		MoverID:       aggregate.MoverID().Bytes(),
		Status:        int(aggregate.Status()),
		Pickup:        addressFromDomain(aggregate.Pickup()),
		Dropoff:       addressFromDomain(aggregate.Dropoff()),
		ScheduledDate: aggregate.ScheduledDate(),
		ScheduledTime: aggregate.ScheduledTime(),
		DistanceKm:    aggregate.DistanceKm(),
		TotalVolume:   aggregate.TotalVolume(),
		Pricing: PriceBreakdownDTO{
			BasePrice:            pricing.BasePrice(),
			VolumePrice:          pricing.VolumePrice(),
			LaborCost:            pricing.LaborCost(),
			PackingMaterialsCost: pricing.PackingMaterialsCost(),
			ServiceFee:           pricing.ServiceFee(),
			TotalPrice:           pricing.TotalPrice(),
		},
		SpecialInstructions: aggregate.SpecialInstructions(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		StatusUpdates:       statusUpdates,
		Review:              review,
	}
}

func addressFromDomain(address kernel.Address) AddressDTO {
	dto := AddressDTO{
		Street:  address.Street(),
		Floor:   address.Floor(),
		Details: address.Details(),
	}
	if geo := address.Geo(); geo != nil {
		lat, lon := geo.Latitude(), geo.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}
	return dto
}

// toDomain converts a database DTO to a booking domain aggregate.
// Reconstructs the full aggregate including history and review.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reference, err := booking.ReferenceFromString(dto.Reference)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	moverID, err := kernel.UUIDFromBytes(dto.MoverID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}
	dropoff, err := addressToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	statusUpdates := make([]*booking.StatusUpdate, 0, len(dto.StatusUpdates))
	for _, updateDto := range dto.StatusUpdates {
		update, updateErr := statusUpdateToDomain(updateDto)
		if updateErr != nil {
			return nil, updateErr
		}
		statusUpdates = append(statusUpdates, update)
	}

	var review *booking.Review
	if dto.Review != nil {
		review, err = reviewToDomain(*dto.Review)
		if err != nil {
			return nil, err
		}
	}

	pricing := booking.RestorePriceBreakdown(
		dto.Pricing.BasePrice,
		dto.Pricing.VolumePrice,
		dto.Pricing.LaborCost,
		dto.Pricing.PackingMaterialsCost,
		dto.Pricing.ServiceFee,
		dto.Pricing.TotalPrice,
	)

	return booking.RestoreBooking(
		id,
		reference,
		clientID,
		moverID,
		booking.Status(dto.Status),
		pickup,
		dropoff,
		dto.ScheduledDate,
		dto.ScheduledTime,
		dto.DistanceKm,
		dto.TotalVolume,
		pricing,
		dto.SpecialInstructions,
		statusUpdates,
		review,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	var geo *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return kernel.Address{}, err
		}
		geo = &point
	}
	return kernel.NewAddress(dto.Street, geo, dto.Floor, dto.Details)
}

func statusUpdateToDomain(dto StatusUpdateDTO) (*booking.StatusUpdate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	updatedBy, err := kernel.UUIDFromBytes(dto.UpdatedBy[:])
	if err != nil {
		return nil, err
	}

	var geo *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		geo = &point
	}

	return booking.NewStatusUpdate(id, dto.Label, geo, dto.Notes, updatedBy, dto.CreatedAt)
}

func reviewToDomain(dto ReviewDTO) (*booking.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return booking.RestoreReview(id, clientID, dto.Rating, dto.Comment, dto.Response, dto.CreatedAt)
}
