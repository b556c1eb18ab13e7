package menu

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrInsufficientInventory is returned when an order asks for more than is on hand.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemNameIsRequired is returned for blank item names.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item_name")
)

// Item is a dish a restaurant sells, together with how many portions are left.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("50.00")
//	item, err := menu.NewItem(itemID, restaurantID, "Paneer Tikka", price, 10)
//	if err != nil {
//	    return err
//	}
//	if err := item.Reserve(2); err != nil {
//	    // errors.Is(err, menu.ErrInsufficientInventory)
//	}
type Item struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	price        kernel.Money
	quantity     int
	guard        guard.ConstructorGuard
}

// NewItem creates a menu item with its opening stock.
func NewItem(id, restaurantID kernel.ID, name string, price kernel.Money, quantity int) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds an item from storage. It applies the same rules as NewItem.
func RestoreItem(id, restaurantID kernel.ID, name string, price kernel.Money, quantity int) (*Item, error) {
	return NewItem(id, restaurantID, name, price, quantity)
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.ID           { return i.id }
func (i *Item) RestaurantID() kernel.ID { return i.restaurantID }
func (i *Item) Name() string            { return i.name }
func (i *Item) Price() kernel.Money     { return i.price }
func (i *Item) Quantity() int           { return i.quantity }

// IsAvailable reports whether at least one portion is left.
func (i *Item) IsAvailable() bool {
	return i.quantity > 0
}

// BelongsTo reports whether the item is on the given restaurant's menu.
func (i *Item) BelongsTo(restaurantID kernel.ID) bool {
	return i.restaurantID.IsEqual(restaurantID)
}

// Reserve takes quantity portions off the shelf.
// The stock is left untouched when it cannot cover the request.
func (i *Item) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, i.quantity)
	}
	if quantity > i.quantity {
		return fmt.Errorf("%w: item %s has %d left, %d requested",
			ErrInsufficientInventory, i.id, i.quantity, quantity)
	}

	i.quantity -= quantity
	return nil
}

// Update replaces the editable attributes. Orders already placed keep their frozen totals.
func (i *Item) Update(name string, price kernel.Money, quantity int) error {
	candidate := *i
	if err := errors.Join(
		candidate.setName(name),
		candidate.setPrice(price),
		candidate.setQuantity(quantity),
	); err != nil {
		return err
	}

	*i = candidate
	return nil
}

func (i *Item) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant_id", err)
	}
	i.restaurantID = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}
