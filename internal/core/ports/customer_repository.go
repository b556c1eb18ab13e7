package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
)

// CustomerRepository reads and corrects customer profiles.
// Customers are registered elsewhere, so there is no Add.
type CustomerRepository interface {
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
	Update(ctx context.Context, aggregate *customer.Customer) error
}
