package commands

import (
	"errors"
	"fmt"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var ErrCreateInventoryCommandIsNotConstructed = errors.New(
	"CreateInventoryCommand must be created via NewCreateInventoryCommand constructor",
)

// ItemInput is one requested inventory line. Identities are assigned by the
// handler; callers only supply the content.
type ItemInput struct {
	Name     string
	Quantity int
	Volume   float64
}

// validateItemInputs rejects lines the domain would reject, before a
// transaction is opened.
func validateItemInputs(items []ItemInput) error {
	for i, item := range items {
		if item.Name == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].name", i))
		}
		if item.Quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("items[%d]: %d is negative", i, item.Quantity))
		}
		if item.Volume < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"volume", fmt.Errorf("items[%d]: %f is negative", i, item.Volume))
		}
	}
	return nil
}

// CreateInventoryCommand represents a request to save a client's household
// inventory with its initial items.
type CreateInventoryCommand struct { //nolint:recvcheck //using for validation
	inventoryID kernel.UUID
	requestedBy actor.Actor
	clientID    kernel.UUID
	roomType    inventory.RoomType
	items       []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateInventoryCommand creates a command to save an inventory.
func NewCreateInventoryCommand(
	inventoryID kernel.UUID,
	requestedBy actor.Actor,
	clientID kernel.UUID,
	roomType inventory.RoomType,
	items []ItemInput,
) (CreateInventoryCommand, error) {
	cmd := CreateInventoryCommand{
		items: items,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(inventoryID, clientID),
		cmd.setRequestedBy(requestedBy),
		cmd.setRoomType(roomType),
		validateItemInputs(items),
	); err != nil {
		return CreateInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryCommandIsNotConstructed)
}

// InventoryID returns the identifier the new inventory will carry.
func (c CreateInventoryCommand) InventoryID() kernel.UUID {
	return c.inventoryID
}

// RequestedBy returns the actor issuing the command.
func (c CreateInventoryCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// ClientID returns the owning client's identifier.
func (c CreateInventoryCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RoomType returns the classified home size.
func (c CreateInventoryCommand) RoomType() inventory.RoomType {
	return c.roomType
}

// Items returns the requested inventory lines.
func (c CreateInventoryCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateInventoryCommand) setIDs(inventoryID, clientID kernel.UUID) error {
	if err := errors.Join(inventoryID.Validate(), clientID.Validate()); err != nil {
		return err
	}

	c.inventoryID = inventoryID
	c.clientID = clientID
	return nil
}

func (c *CreateInventoryCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *CreateInventoryCommand) setRoomType(roomType inventory.RoomType) error {
	if err := roomType.Validate(); err != nil {
		return err
	}

	c.roomType = roomType
	return nil
}
