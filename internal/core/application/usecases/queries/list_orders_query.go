package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderScope selects whose orders a ListOrdersQuery returns.
type OrderScope int

const (
	ScopeAll OrderScope = iota
	ScopeCustomer
	ScopePartner
	ScopeRestaurant
)

// ListOrdersQuery lists orders visible to one actor, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(ScopeCustomer, customerID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	scope   OrderScope
	ownerID kernel.ID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds a scoped query. ownerID is ignored for ScopeAll.
func NewListOrdersQuery(scope OrderScope, ownerID kernel.ID) (ListOrdersQuery, error) {
	switch scope {
	case ScopeAll:
		return ListOrdersQuery{scope: scope, guard: guard.NewConstructorGuard()}, nil
	case ScopeCustomer, ScopePartner, ScopeRestaurant:
		if err := ownerID.Validate(); err != nil {
			return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("owner_id", err)
		}
		return ListOrdersQuery{scope: scope, ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
	default:
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("scope", scope, ScopeAll, ScopeRestaurant)
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Scope() OrderScope  { return q.scope }
func (q ListOrdersQuery) OwnerID() kernel.ID { return q.ownerID }

// ListOrdersQueryResponse is one order joined with the names of everyone involved.
type ListOrdersQueryResponse struct {
	ID             int64
	CustomerID     int64
	CustomerName   string
	RestaurantID   int64
	RestaurantName string
	ItemID         int64
	ItemName       string
	PartnerID      int64
	PartnerName    string
	Quantity       int
	TotalPrice     decimal.Decimal
	Status         string
	CreatedAt      time.Time
}
