package commands

import (
	"context"
)

// UpdateMenuItemCommandHandler edits an item under a row lock, so a concurrent
// placement either sees the old stock or the new one, never a mix.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()

	item, err := menuRepo.GetForUpdate(ctx, cmd.RestaurantID(), cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Update(cmd.Name(), cmd.Price(), cmd.Quantity()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
