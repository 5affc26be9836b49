package inventoryrepo

import (
	"context"
	"errors"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory with its items to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.UserInventory) error {
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

// Update saves an existing inventory, replacing its item set wholesale.
// Items removed from the aggregate are deleted, not orphaned.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.UserInventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	err := r.db.WithContext(ctx).
		Where("inventory_id = ?", dto.ID).
		Delete(&InventoryItemDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an inventory and cascades to its items.
func (r *GormInventoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("inventory_id = ?", id.Bytes()).
		Delete(&InventoryItemDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&InventoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventoryID", id.String())
	}

	return nil
}

// Get retrieves an inventory by ID with its items.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.UserInventory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("name")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventoryID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByClient retrieves all inventories owned by the client, oldest first.
func (r *GormInventoryRepository) GetByClient(
	ctx context.Context,
	clientID kernel.UUID,
) ([]*inventory.UserInventory, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []InventoryDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("name")
		}).
		Where("client_id = ?", clientID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	inventories := make([]*inventory.UserInventory, 0, len(dtos))
	for _, dto := range dtos {
		inv, invErr := toDomain(dto)
		if invErr != nil {
			return nil, invErr
		}
		inventories = append(inventories, inv)
	}

	return inventories, nil
}
