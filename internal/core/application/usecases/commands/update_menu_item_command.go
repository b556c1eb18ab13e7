package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand replaces name, price and stock of an existing item.
// Orders placed earlier keep the total they were placed with.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	item   AddMenuItemCommand
	itemID kernel.ID

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	restaurantID, itemID kernel.ID,
	name string,
	price kernel.Money,
	quantity int,
) (UpdateMenuItemCommand, error) {
	item, itemErr := NewAddMenuItemCommand(restaurantID, name, price, quantity)

	var idErr error
	if err := itemID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("item_id", err)
	}

	if err := errors.Join(itemErr, idErr); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return UpdateMenuItemCommand{
		item:   item,
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) RestaurantID() kernel.ID { return c.item.RestaurantID() }
func (c UpdateMenuItemCommand) ItemID() kernel.ID       { return c.itemID }
func (c UpdateMenuItemCommand) Name() string            { return c.item.Name() }
func (c UpdateMenuItemCommand) Price() kernel.Money     { return c.item.Price() }
func (c UpdateMenuItemCommand) Quantity() int           { return c.item.Quantity() }
