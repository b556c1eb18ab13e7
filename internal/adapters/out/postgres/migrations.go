package postgres

import (
	"context"
	"fmt"

	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/outboxrepo"
	"foodorder/internal/adapters/out/postgres/partnerrepo"

	"gorm.io/gorm"
)

// schemaStatements complete what AutoMigrate cannot express.
// The partial index admits at most one active order per partner.
var schemaStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS order_id_seq`,
	`CREATE UNIQUE INDEX IF NOT EXISTS orders_partner_active_uidx
		ON orders (partner_id) WHERE status IN ('Placed', 'Dispatched')`,
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&menurepo.RestaurantDTO{},
		&menurepo.MenuItemDTO{},
		&partnerrepo.PartnerDTO{},
		&orderrepo.OrderDTO{},
		&outboxrepo.OutboxDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}

	return nil
}
