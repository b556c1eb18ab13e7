package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const listOrdersSQL = `
	SELECT
		o.id,
		o.customer_id,
		COALESCE(c.name, ''),
		o.restaurant_id,
		COALESCE(r.name, ''),
		o.item_id,
		COALESCE(m.name, ''),
		o.partner_id,
		COALESCE(p.name, ''),
		o.quantity,
		o.total_price,
		o.status,
		o.created_at
	FROM orders o
	LEFT JOIN customers c ON c.id = o.customer_id
	LEFT JOIN restaurants r ON r.id = o.restaurant_id
	LEFT JOIN menu_items m ON m.id = o.item_id
	LEFT JOIN delivery_partners p ON p.id = o.partner_id
`

// ListOrdersQueryHandler reads orders together with customer, restaurant, item and
// partner names in one statement.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns orders ordered by id descending. An actor without orders gets an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statement := listOrdersSQL
	args := make([]any, 0, 1)
	switch query.Scope() {
	case ScopeCustomer:
		statement += " WHERE o.customer_id = ?"
		args = append(args, query.OwnerID().Int64())
	case ScopePartner:
		statement += " WHERE o.partner_id = ?"
		args = append(args, query.OwnerID().Int64())
	case ScopeRestaurant:
		statement += " WHERE o.restaurant_id = ?"
		args = append(args, query.OwnerID().Int64())
	case ScopeAll:
	}
	statement += " ORDER BY o.id DESC"

	rows, err := h.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var o ListOrdersQueryResponse
		if err = rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.CustomerName,
			&o.RestaurantID,
			&o.RestaurantName,
			&o.ItemID,
			&o.ItemName,
			&o.PartnerID,
			&o.PartnerName,
			&o.Quantity,
			&o.TotalPrice,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
