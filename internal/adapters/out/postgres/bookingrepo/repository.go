package bookingrepo

import (
	"context"
	"errors"

	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking with its first status update as one atomic write.
// A unique violation on the reference surfaces as a Conflict error so the
// caller can retry with a fresh reference.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("booking reference", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing booking: its status, any newly appended status
// updates, and an attached review. A unique violation on the review surfaces
// as a Conflict error.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewConflictErrorWithCause("review", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID with its full status history and review.
// History is loaded in report order so replays reconstruct it faithfully.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	err := r.db.WithContext(ctx).
		Preload("StatusUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		Preload("Review").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bookingID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByReference reports whether any booking carries the reference.
func (r *GormBookingRepository) ExistsByReference(
	ctx context.Context,
	reference booking.Reference,
) (bool, error) {
	if err := reference.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("reference = ?", reference.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// RatingsByMover returns the ratings of all reviews attached to the mover's
// bookings, in review creation order.
func (r *GormBookingRepository) RatingsByMover(
	ctx context.Context,
	moverID kernel.UUID,
) ([]int, error) {
	if err := moverID.Validate(); err != nil {
		return nil, err
	}

	ratings := make([]int, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT reviews.rating
		FROM reviews
		JOIN bookings ON bookings.id = reviews.booking_id
		WHERE bookings.mover_id = ?
		ORDER BY reviews.created_at, reviews.id
	`, moverID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rating int
		if err = rows.Scan(&rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode
}
