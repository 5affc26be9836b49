package commands

import (
	"errors"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var ErrUpdateInventoryCommandIsNotConstructed = errors.New(
	"UpdateInventoryCommand must be created via NewUpdateInventoryCommand constructor",
)

// UpdateInventoryCommand represents a request to replace an inventory's room
// type and full item set. Partial item edits are not supported; an update
// always sends the complete inventory.
type UpdateInventoryCommand struct { //nolint:recvcheck //using for validation
	inventoryID kernel.UUID
	requestedBy actor.Actor
	roomType    inventory.RoomType
	items       []ItemInput

	guard guard.ConstructorGuard
}

// NewUpdateInventoryCommand creates a command to replace an inventory's
// contents.
func NewUpdateInventoryCommand(
	inventoryID kernel.UUID,
	requestedBy actor.Actor,
	roomType inventory.RoomType,
	items []ItemInput,
) (UpdateInventoryCommand, error) {
	cmd := UpdateInventoryCommand{
		items: items,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInventoryID(inventoryID),
		cmd.setRequestedBy(requestedBy),
		cmd.setRoomType(roomType),
		validateItemInputs(items),
	); err != nil {
		return UpdateInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryCommandIsNotConstructed)
}

// InventoryID returns the target inventory's identifier.
func (c UpdateInventoryCommand) InventoryID() kernel.UUID {
	return c.inventoryID
}

// RequestedBy returns the actor issuing the command.
func (c UpdateInventoryCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// RoomType returns the classified home size.
func (c UpdateInventoryCommand) RoomType() inventory.RoomType {
	return c.roomType
}

// Items returns the replacement inventory lines.
func (c UpdateInventoryCommand) Items() []ItemInput {
	return c.items
}

func (c *UpdateInventoryCommand) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}

	c.inventoryID = inventoryID
	return nil
}

func (c *UpdateInventoryCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *UpdateInventoryCommand) setRoomType(roomType inventory.RoomType) error {
	if err := roomType.Validate(); err != nil {
		return err
	}

	c.roomType = roomType
	return nil
}
