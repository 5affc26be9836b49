package inventory

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

// ErrUserInventoryIsNotConstructed is returned when using an improperly
// initialized UserInventory.
var ErrUserInventoryIsNotConstructed = errors.New(
	"UserInventory must be created via NewUserInventory constructor")

// UserInventory is a client's saved household inventory for a given room
// type. The total volume is always derived from the current items, never
// stored independently, so it cannot drift from the lines it summarizes.
type UserInventory struct {
	id        kernel.UUID
	clientID  kernel.UUID
	roomType  RoomType
	items     []*Item
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewUserInventory creates an inventory with its initial items.
func NewUserInventory(
	id kernel.UUID,
	clientID kernel.UUID,
	roomType RoomType,
	items []*Item,
	now time.Time,
) (*UserInventory, error) {
	inv := &UserInventory{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setIDs(id, clientID),
		inv.setRoomType(roomType),
	); err != nil {
		return nil, err
	}
	inv.items = items

	return inv, nil
}

// RestoreUserInventory reconstructs an inventory from persistence.
func RestoreUserInventory(
	id kernel.UUID,
	clientID kernel.UUID,
	roomType RoomType,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*UserInventory, error) {
	inv := &UserInventory{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setIDs(id, clientID),
		inv.setRoomType(roomType),
	); err != nil {
		return nil, err
	}
	inv.items = items

	return inv, nil
}

// Validate ensures the UserInventory was created through a constructor.
func (inv *UserInventory) Validate() error {
	if inv == nil {
		return ErrUserInventoryIsNotConstructed
	}
	return inv.guard.Validate(ErrUserInventoryIsNotConstructed)
}

// ID returns the inventory's unique identifier.
func (inv *UserInventory) ID() kernel.UUID {
	return inv.id
}

// ClientID returns the owning client's identifier.
func (inv *UserInventory) ClientID() kernel.UUID {
	return inv.clientID
}

// RoomType returns the classified home size.
func (inv *UserInventory) RoomType() RoomType {
	return inv.roomType
}

// Items returns the inventory lines in insertion order.
// The returned slice is a copy.
func (inv *UserInventory) Items() []*Item {
	items := make([]*Item, len(inv.items))
	copy(items, inv.items)
	return items
}

// CreatedAt returns the creation time.
func (inv *UserInventory) CreatedAt() time.Time {
	return inv.createdAt
}

// UpdatedAt returns the last modification time.
func (inv *UserInventory) UpdatedAt() time.Time {
	return inv.updatedAt
}

// TotalVolume returns Σ(quantity × per-unit volume) over the current items.
// It is recomputed on every call.
func (inv *UserInventory) TotalVolume() float64 {
	var total float64
	for _, item := range inv.items {
		total += item.LineVolume()
	}
	return total
}

// ReplaceItems replaces the full set of lines. Partial line edits are not
// supported; an update always sends the complete inventory.
func (inv *UserInventory) ReplaceItems(items []*Item, now time.Time) {
	inv.items = items
	if now.After(inv.updatedAt) {
		inv.updatedAt = now
	}
}

// ChangeRoomType reclassifies the inventory's home size.
func (inv *UserInventory) ChangeRoomType(roomType RoomType, now time.Time) error {
	if err := inv.setRoomType(roomType); err != nil {
		return err
	}
	if now.After(inv.updatedAt) {
		inv.updatedAt = now
	}
	return nil
}

func (inv *UserInventory) setIDs(id, clientID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := clientID.Validate(); err != nil {
		return err
	}
	inv.id = id
	inv.clientID = clientID
	return nil
}

func (inv *UserInventory) setRoomType(roomType RoomType) error {
	if err := roomType.Validate(); err != nil {
		return err
	}
	inv.roomType = roomType
	return nil
}
