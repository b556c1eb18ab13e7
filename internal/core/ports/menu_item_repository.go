package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items and their stock.
// Items are always addressed together with their restaurant; an item that belongs to
// another restaurant is reported as not found.
type MenuItemRepository interface {
	// NextID reserves an identifier for a new menu item.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.Item) error

	// Update persists name, price and quantity on hand.
	Update(ctx context.Context, aggregate *menu.Item) error

	// Get retrieves an item of the given restaurant.
	Get(ctx context.Context, restaurantID, itemID kernel.ID) (*menu.Item, error)

	// GetForUpdate is Get with the item row locked until the transaction ends.
	// The placement transaction checks and debits stock through it.
	GetForUpdate(ctx context.Context, restaurantID, itemID kernel.ID) (*menu.Item, error)
}
