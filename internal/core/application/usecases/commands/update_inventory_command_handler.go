package commands

import (
	"context"
	"time"

	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"
)

// UpdateInventoryCommandHandler handles full-replacement inventory updates.
type UpdateInventoryCommandHandler struct {
	uowFactory   InventoryUoWFactory
	accessPolicy services.AccessPolicy
}

// NewUpdateInventoryCommandHandler creates a handler for inventory updates.
func NewUpdateInventoryCommandHandler(
	uowFactory InventoryUoWFactory,
	accessPolicy services.AccessPolicy,
) UpdateInventoryCommandHandler {
	return UpdateInventoryCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the inventory update command. Ownership is checked
// against the loaded inventory, not the command, so a client cannot update
// someone else's inventory by guessing its ID.
func (h *UpdateInventoryCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) error {
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
		return errs.NewAccessDeniedError("update inventory", cmd.RequestedBy().ID())
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.ChangeRoomType(cmd.RoomType(), now); err != nil {
		return err
	}
	aggregate.ReplaceItems(items, now)

	if err = inventoryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
