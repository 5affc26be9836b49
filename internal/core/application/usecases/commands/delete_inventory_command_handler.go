package commands

import (
	"context"

	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"
)

// DeleteInventoryCommandHandler handles inventory deletion. Deleting an
// inventory cascades to its items.
type DeleteInventoryCommandHandler struct {
	uowFactory   InventoryUoWFactory
	accessPolicy services.AccessPolicy
}

// NewDeleteInventoryCommandHandler creates a handler for inventory deletion.
func NewDeleteInventoryCommandHandler(
	uowFactory InventoryUoWFactory,
	accessPolicy services.AccessPolicy,
) DeleteInventoryCommandHandler {
	return DeleteInventoryCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the inventory deletion command.
func (h *DeleteInventoryCommandHandler) Handle(ctx context.Context, cmd DeleteInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	aggregate, err := inventoryRepo.Get(ctx, cmd.InventoryID())
	if err != nil {
		return err
	}

	if !h.accessPolicy.CanManageInventoryOf(cmd.RequestedBy(), aggregate.ClientID()) {
		return errs.NewAccessDeniedError("delete inventory", cmd.RequestedBy().ID())
	}

	if err = inventoryRepo.Delete(ctx, cmd.InventoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
