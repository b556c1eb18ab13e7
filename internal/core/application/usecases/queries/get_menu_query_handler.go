package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns the items that are in stock, sorted by id.
// Sold-out items are hidden; an unknown restaurant yields an empty menu.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			quantity
		FROM menu_items
		WHERE restaurant_id = ? AND quantity > 0
		ORDER BY id
	`, query.RestaurantID().Int64()).Rows()
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}
	defer rows.Close()

	items := make([]GetMenuQueryResponse, 0)
	for rows.Next() {
		var item GetMenuQueryResponse
		if err = rows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
