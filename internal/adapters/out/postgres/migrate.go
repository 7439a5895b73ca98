package postgres

import (
	"fmt"

	"errands/internal/adapters/out/postgres/runnerorderrepo"
	"errands/internal/adapters/out/postgres/shopperorderrepo"

	"gorm.io/gorm"
)

// indexes holds what AutoMigrate cannot express. The partial unique indexes
// keep at most one live request per counterparty on an order.
var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_shopper_order_requests_active
		ON shopper_order_requests (order_id, runner_id)
		WHERE request_status <> 'MATCH_FAIL'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_runner_order_requests_active
		ON runner_order_requests (order_id, shopper_id)
		WHERE request_status <> 'MATCH_FAIL'`,
	`CREATE INDEX IF NOT EXISTS ix_shopper_orders_listing
		ON shopper_orders (updated_at DESC, order_id DESC)`,
	`CREATE INDEX IF NOT EXISTS ix_runner_orders_listing
		ON runner_orders (updated_at DESC, order_id DESC)`,
}

// Models lists every table this module owns, parents first.
func Models() []any {
	return []any{
		&UserDTO{},
		&shopperorderrepo.ShopperOrderDTO{},
		&shopperorderrepo.ItemDTO{},
		&shopperorderrepo.ImageDTO{},
		&shopperorderrepo.RequestDTO{},
		&runnerorderrepo.RunnerOrderDTO{},
		&runnerorderrepo.RequestDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
