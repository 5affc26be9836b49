package commands

import (
	"context"
	"time"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"
)

// buildItems turns requested lines into domain items with fresh identities.
func buildItems(inputs []ItemInput) ([]*inventory.Item, error) {
	items := make([]*inventory.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := inventory.NewItem(kernel.NewUUID(), input.Name, input.Quantity, input.Volume)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateInventoryCommandHandler handles saving a new household inventory.
type CreateInventoryCommandHandler struct {
	uowFactory   InventoryUoWFactory
	accessPolicy services.AccessPolicy
}

// NewCreateInventoryCommandHandler creates a handler for inventory creation.
func NewCreateInventoryCommandHandler(
	uowFactory InventoryUoWFactory,
	accessPolicy services.AccessPolicy,
) CreateInventoryCommandHandler {
	return CreateInventoryCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the inventory creation command.
func (h *CreateInventoryCommandHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.accessPolicy.CanManageInventoryOf(cmd.RequestedBy(), cmd.ClientID()) {
		return errs.NewAccessDeniedError("create inventory", cmd.RequestedBy().ID())
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return err
	}

	aggregate, err := inventory.NewUserInventory(
		cmd.InventoryID(), cmd.ClientID(), cmd.RoomType(), items, time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventoryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
