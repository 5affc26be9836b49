// Package moverrepo provides data transfer objects and mapping functions for
// mover persistence.
package moverrepo

import (
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"

	"github.com/google/uuid"
)

// MoverDTO represents the database structure for persisting mover aggregates.
// Rating and the jobs counter are read-modify-write fields; callers that
// change them must hold the row lock (see GetForUpdate).
type MoverDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName        string    `gorm:"type:varchar(255);not null"`
	VehicleType        string    `gorm:"type:varchar(255);not null"`
	VehicleCapacity    float64   `gorm:"not null"`
	BasePricePerKm     float64   `gorm:"not null"`
	PricePerCubicMeter float64   `gorm:"not null"`
	Approved           bool      `gorm:"not null"`
	Available          bool      `gorm:"not null"`
	Rating             float64   `gorm:"not null"`
	TotalJobsCompleted int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for mover entities.
func (MoverDTO) TableName() string {
	return "movers"
}

// fromDomain converts a mover domain aggregate to its database representation.
func fromDomain(aggregate *mover.Mover) MoverDTO {
	rateCard := aggregate.RateCard()

	return MoverDTO{
		ID:                 aggregate.ID().Bytes(),
		CompanyName:        aggregate.CompanyName(),
		VehicleType:        aggregate.VehicleType(),
		VehicleCapacity:    aggregate.VehicleCapacity(),
		BasePricePerKm:     rateCard.BasePricePerKm(),
		PricePerCubicMeter: rateCard.PricePerCubicMeter(),
		Approved:           aggregate.Approved(),
		Available:          aggregate.Available(),
		Rating:             aggregate.Rating(),
		TotalJobsCompleted: aggregate.TotalJobsCompleted(),
	}
}

// toDomain converts a database DTO to a mover domain aggregate.
func toDomain(dto MoverDTO) (*mover.Mover, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rateCard, err := mover.NewRateCard(dto.BasePricePerKm, dto.PricePerCubicMeter)
	if err != nil {
		return nil, err
	}

	return mover.RestoreMover(
		id,
		dto.CompanyName,
		dto.VehicleType,
		dto.VehicleCapacity,
		rateCard,
		dto.Approved,
		dto.Available,
		dto.Rating,
		dto.TotalJobsCompleted,
	)
}
