package moverrepo

import (
	"context"
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"
	"moving/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMoverRepository implements MoverRepository using GORM.
type GormMoverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMoverRepository creates a new GORM mover repository.
func NewGormMoverRepository(db *gorm.DB, tracker aggregateTracker) *GormMoverRepository {
	return &GormMoverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mover to the database.
func (r *GormMoverRepository) Add(ctx context.Context, aggregate *mover.Mover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing mover to the database.
func (r *GormMoverRepository) Update(ctx context.Context, aggregate *mover.Mover) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a mover by ID.
func (r *GormMoverRepository) Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a mover by ID holding a FOR UPDATE row lock for the
// duration of the surrounding transaction. Concurrent completions for the
// same mover serialize on this lock, so neither the jobs counter nor the
// recomputed rating loses a write.
func (r *GormMoverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	return r.get(ctx, id, true)
}

func (r *GormMoverRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*mover.Mover, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto MoverDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("moverID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBookable retrieves all approved and available movers.
func (r *GormMoverRepository) GetAllBookable(ctx context.Context) ([]*mover.Mover, error) {
	var dtos []MoverDTO
	err := r.db.WithContext(ctx).
		Where("approved AND available").
		Order("company_name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every mover, regardless of approval or availability.
func (r *GormMoverRepository) GetAll(ctx context.Context) ([]*mover.Mover, error) {
	var dtos []MoverDTO
	if err := r.db.WithContext(ctx).Order("company_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []MoverDTO) ([]*mover.Mover, error) {
	movers := make([]*mover.Mover, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movers = append(movers, m)
	}
	return movers, nil
}
