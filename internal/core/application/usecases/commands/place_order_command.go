package commands

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const maxIdempotencyKeyLength = 128

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errs.NewValueIsInvalidErrorWithCause(
		"quantity", errors.New("must be a positive integer"),
	)
)

// PlaceOrderCommand is a customer's request for quantity portions of one menu item.
// The optional profile correction is merged into the stored customer profile
// inside the same transaction.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, restaurantID, itemID, 2,
//	    customer.ProfileCorrection{Phone: "+91-9000000002"}, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.ID
	restaurantID   kernel.ID
	itemID         kernel.ID
	quantity       int
	profile        customer.ProfileCorrection
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the request. idempotencyKey may be empty.
func NewPlaceOrderCommand(
	customerID, restaurantID, itemID kernel.ID,
	quantity int,
	profile customer.ProfileCorrection,
	idempotencyKey string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.ID                { return c.customerID }
func (c PlaceOrderCommand) RestaurantID() kernel.ID              { return c.restaurantID }
func (c PlaceOrderCommand) ItemID() kernel.ID                    { return c.itemID }
func (c PlaceOrderCommand) Quantity() int                        { return c.quantity }
func (c PlaceOrderCommand) Profile() customer.ProfileCorrection { return c.profile }
func (c PlaceOrderCommand) IdempotencyKey() string               { return c.idempotencyKey }

func (c *PlaceOrderCommand) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant_id", err)
	}
	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setItemID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item_id", err)
	}
	c.itemID = id
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) > maxIdempotencyKeyLength {
		return errs.NewValueIsInvalidErrorWithCause("idempotency_key",
			fmt.Errorf("longer than %d characters", maxIdempotencyKeyLength))
	}
	c.idempotencyKey = key
	return nil
}
