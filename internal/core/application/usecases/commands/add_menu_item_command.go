package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand adds a dish with its opening stock to a restaurant's menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	name         string
	price        kernel.Money
	quantity     int

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(
	restaurantID kernel.ID,
	name string,
	price kernel.Money,
	quantity int,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) RestaurantID() kernel.ID { return c.restaurantID }
func (c AddMenuItemCommand) Name() string            { return c.name }
func (c AddMenuItemCommand) Price() kernel.Money     { return c.price }
func (c AddMenuItemCommand) Quantity() int           { return c.quantity }

func (c *AddMenuItemCommand) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant_id", err)
	}
	c.restaurantID = id
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return menu.ErrItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	c.quantity = quantity
	return nil
}
