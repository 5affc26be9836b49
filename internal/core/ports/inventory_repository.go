package ports

import (
	"context"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for user inventories.
// Writes replace the full item set; items with zero quantity are skipped.
type InventoryRepository interface {
	// Add persists a new inventory aggregate to storage.
	Add(ctx context.Context, aggregate *inventory.UserInventory) error

	// Update persists changes to an existing inventory, replacing its items.
	Update(ctx context.Context, aggregate *inventory.UserInventory) error

	// Delete removes an inventory and all of its items.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an inventory aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.UserInventory, error)

	// GetByClient retrieves all inventories owned by the client.
	GetByClient(ctx context.Context, clientID kernel.UUID) ([]*inventory.UserInventory, error)
}
