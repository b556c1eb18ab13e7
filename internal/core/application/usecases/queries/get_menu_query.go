package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists what a restaurant can currently sell.
type GetMenuQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetMenuQuery(restaurantID kernel.ID) (GetMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuQuery{}, err
	}
	return GetMenuQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

type GetMenuQueryResponse struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Quantity int
}
