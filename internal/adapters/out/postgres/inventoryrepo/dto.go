// Package inventoryrepo provides data transfer objects and mapping functions
// for user inventory persistence. An inventory owns its items; updates
// replace the item set wholesale and deletes cascade.
package inventoryrepo

import (
	"time"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryDTO represents the database structure for persisting inventory
// aggregates.
type InventoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomType  int       `gorm:"type:int;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []InventoryItemDTO `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for inventory entities.
func (InventoryDTO) TableName() string {
	return "inventories"
}

// InventoryItemDTO represents one item line within an inventory.
type InventoryItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InventoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"type:int;not null"`
	Volume      float64   `gorm:"not null"`
}

// TableName specifies the database table name for inventory item entities.
func (InventoryItemDTO) TableName() string {
	return "inventory_items"
}

// fromDomain converts an inventory domain aggregate to its database
// representation. Items with zero quantity are skipped on write.
func fromDomain(aggregate *inventory.UserInventory) InventoryDTO {
	inventoryID := aggregate.ID().Bytes()

	items := make([]InventoryItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		if item.Quantity() == 0 {
			continue
		}
		items = append(items, InventoryItemDTO{
			ID:          item.ID().Bytes(),
			InventoryID: inventoryID,
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Volume:      item.Volume(),
		})
	}

	return InventoryDTO{
		ID:        inventoryID,
		ClientID:  aggregate.ClientID().Bytes(),
		RoomType:  int(aggregate.RoomType()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Items:     items,
	}
}

// toDomain converts a database DTO to an inventory domain aggregate.
func toDomain(dto InventoryDTO) (*inventory.UserInventory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return inventory.RestoreUserInventory(
		id,
		clientID,
		inventory.RoomType(dto.RoomType),
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto InventoryItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.NewItem(id, dto.Name, dto.Quantity, dto.Volume)
}
