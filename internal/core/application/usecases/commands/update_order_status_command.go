package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order along its lifecycle.
// By default any order may be addressed; ForPartner and ForRestaurant narrow the
// command to orders owned by that actor, and other orders are reported as not found.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Dispatched)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd.ForPartner(partnerID))
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	status       order.Status
	partnerID    kernel.ID
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.ID, status order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// ForPartner restricts the command to orders assigned to partnerID.
func (c UpdateOrderStatusCommand) ForPartner(partnerID kernel.ID) UpdateOrderStatusCommand {
	c.partnerID = partnerID
	return c
}

// ForRestaurant restricts the command to orders of restaurantID.
func (c UpdateOrderStatusCommand) ForRestaurant(restaurantID kernel.ID) UpdateOrderStatusCommand {
	c.restaurantID = restaurantID
	return c
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.ID   { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// Allows reports whether the actor the command is scoped to may touch o.
func (c UpdateOrderStatusCommand) Allows(o *order.Order) bool {
	if c.partnerID.Validate() == nil && !o.PartnerID().IsEqual(c.partnerID) {
		return false
	}
	if c.restaurantID.Validate() == nil && !o.RestaurantID().IsEqual(c.restaurantID) {
		return false
	}
	return true
}

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
