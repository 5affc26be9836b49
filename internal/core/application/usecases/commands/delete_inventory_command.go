package commands

import (
	"errors"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var ErrDeleteInventoryCommandIsNotConstructed = errors.New(
	"DeleteInventoryCommand must be created via NewDeleteInventoryCommand constructor",
)

// DeleteInventoryCommand represents a request to delete an inventory and all
// of its items.
type DeleteInventoryCommand struct { //nolint:recvcheck //using for validation
	inventoryID kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewDeleteInventoryCommand creates a command to delete an inventory.
func NewDeleteInventoryCommand(
	inventoryID kernel.UUID,
	requestedBy actor.Actor,
) (DeleteInventoryCommand, error) {
	cmd := DeleteInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInventoryID(inventoryID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return DeleteInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInventoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInventoryCommandIsNotConstructed)
}

// InventoryID returns the target inventory's identifier.
func (c DeleteInventoryCommand) InventoryID() kernel.UUID {
	return c.inventoryID
}

// RequestedBy returns the actor issuing the command.
func (c DeleteInventoryCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

func (c *DeleteInventoryCommand) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}

	c.inventoryID = inventoryID
	return nil
}

func (c *DeleteInventoryCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
