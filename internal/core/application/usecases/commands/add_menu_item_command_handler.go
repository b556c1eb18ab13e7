package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

// AddMenuItemCommandHandler persists a new menu item and returns its identifier.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()

	id, err := menuRepo.NextID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	item, err := menu.NewItem(id, cmd.RestaurantID(), cmd.Name(), cmd.Price(), cmd.Quantity())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = menuRepo.Add(ctx, item); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return id, nil
}
