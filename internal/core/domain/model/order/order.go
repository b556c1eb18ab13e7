package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/ddd"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a customer's request for a quantity of one menu item, delivered by one partner.
// It is the aggregate root of the placement transaction.
//
// Order follows these invariants:
//   - Identity, customer, restaurant, item, partner, quantity, total and creation time are write-once
//   - Total price is unit price × quantity at placement time and is never recomputed
//   - Only the status changes after creation, along the lifecycle graph of Status
type Order struct {
	ddd.AggregateRoot

	id           kernel.ID
	customerID   kernel.ID
	restaurantID kernel.ID
	itemID       kernel.ID
	partnerID    kernel.ID
	quantity     int
	totalPrice   kernel.Money
	status       Status
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Placed status and raises PlacedEvent.
// The caller is expected to have reserved quantity on item already; NewOrder only reads its price.
//
// Example:
//
//	if err := item.Reserve(2); err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(orderID, customerID, item, 2, partner.ID(), time.Now())
//	// o.TotalPrice() == item.Price() × 2
func NewOrder(
	id, customerID kernel.ID,
	item *menu.Item,
	quantity int,
	partnerID kernel.ID,
	createdAt time.Time,
) (*Order, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:       Placed,
		restaurantID: item.RestaurantID(),
		itemID:       item.ID(),
		createdAt:    createdAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPartnerID(partnerID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	total, err := item.Price().Multiply(quantity)
	if err != nil {
		return nil, err
	}
	o.totalPrice = total

	o.RaiseDomainEvent(newPlacedEvent(o, o.createdAt))
	return o, nil
}

// RestoreOrder rebuilds an order from storage without raising events.
func RestoreOrder(
	id, customerID, restaurantID, itemID, partnerID kernel.ID,
	quantity int,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard:     guard.NewConstructorGuard(),
		createdAt: createdAt.UTC(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPartnerID(partnerID),
		o.setQuantity(quantity),
		restaurantID.Validate(),
		itemID.Validate(),
		totalPrice.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.restaurantID = restaurantID
	o.itemID = itemID
	o.totalPrice = totalPrice
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID            { return o.id }
func (o *Order) CustomerID() kernel.ID    { return o.customerID }
func (o *Order) RestaurantID() kernel.ID  { return o.restaurantID }
func (o *Order) ItemID() kernel.ID        { return o.itemID }
func (o *Order) PartnerID() kernel.ID     { return o.partnerID }
func (o *Order) Quantity() int            { return o.quantity }
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }

// ChangeStatus moves the order along the lifecycle graph.
// It returns true when the partner was released by this call, i.e. the order
// went from an active status to a terminal one.
func (o *Order) ChangeStatus(next Status, at time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	previous := o.status
	newStatus, err := previous.TransitionTo(next)
	if err != nil {
		return false, err
	}
	if newStatus == previous {
		return false, nil
	}

	o.status = newStatus
	o.RaiseDomainEvent(newStatusChangedEvent(o, previous, at))
	return previous.IsActive() && newStatus.IsTerminal(), nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setPartnerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partner_id", err)
	}
	o.partnerID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
