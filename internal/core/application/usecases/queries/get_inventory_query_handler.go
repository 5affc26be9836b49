package queries

import (
	"context"
	"database/sql"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryQueryHandler retrieves a client's inventories from the
// database. A single left join brings back inventories together with their
// items, so empty inventories still appear in the result.
type GetInventoryQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetInventoryQueryHandler creates a handler for inventory retrieval queries.
// Requires a GORM database connection and the access policy.
func NewGetInventoryQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query to retrieve all inventories of the client.
// Returns AccessDenied when the actor is neither the client nor an admin.
// Results are sorted by creation time, items within an inventory by name.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !h.accessPolicy.CanManageInventoryOf(query.RequestedBy(), query.ClientID()) {
		return nil, errs.NewAccessDeniedError("view inventory", query.RequestedBy().ID())
	}

	inventories := make([]GetInventoryQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.room_type,
			i.created_at,
			i.updated_at,
			it.id,
			it.name,
			it.quantity,
			it.volume
		FROM inventories i
		LEFT JOIN inventory_items it ON it.inventory_id = i.id
		WHERE i.client_id = ?
		ORDER BY i.created_at, i.id, it.name
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var roomType int
		var inv GetInventoryQueryResponse
		var itemID uuid.NullUUID
		var itemName sql.NullString
		var itemQuantity sql.NullInt64
		var itemVolume sql.NullFloat64

		err = rows.Scan(
			&id,
			&roomType,
			&inv.CreatedAt,
			&inv.UpdatedAt,
			&itemID,
			&itemName,
			&itemQuantity,
			&itemVolume,
		)
		if err != nil {
			return nil, err
		}

		inventoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, seen := index[inventoryID]
		if !seen {
			inv.ID = inventoryID
			inv.ClientID = query.ClientID()
			inv.RoomType = inventory.RoomType(roomType).String()
			inv.Items = make([]InventoryItemResponse, 0)
			inventories = append(inventories, inv)
			pos = len(inventories) - 1
			index[inventoryID] = pos
		}

		if !itemID.Valid {
			continue
		}

		item := InventoryItemResponse{
			Name:     itemName.String,
			Quantity: int(itemQuantity.Int64),
			Volume:   itemVolume.Float64,
		}
		item.ID, err = kernel.UUIDFromBytes(itemID.UUID[:])
		if err != nil {
			return nil, err
		}
		inventories[pos].Items = append(inventories[pos].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range inventories {
		lines := make([]inventory.EstimateLine, 0, len(inventories[i].Items))
		for _, item := range inventories[i].Items {
			lines = append(lines, inventory.EstimateLine{
				Name:     item.Name,
				Quantity: item.Quantity,
				Volume:   item.Volume,
			})
		}
		total, volErr := inventory.AggregateVolume(lines)
		if volErr != nil {
			return nil, volErr
		}
		inventories[i].TotalVolume = total
	}

	return inventories, nil
}
