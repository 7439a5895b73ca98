// Package pgtest starts a disposable PostgreSQL for integration suites.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "errands/internal/adapters/out/postgres"
	"errands/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const image = "postgres:15-alpine"

// Start runs a container and returns a connection with the schema migrated.
// The caller terminates the container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, fmt.Errorf("connection string: %w", err)
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, fmt.Errorf("open database: %w", err)
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table owned by the module.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE runner_order_requests, runner_orders,
		shopper_order_requests, shopper_order_images, shopper_order_items,
		shopper_orders, users CASCADE`).Error
}

// SeedUser inserts a profile row.
func SeedUser(db *gorm.DB, id kernel.UUID, nickname string) error {
	return db.Create(&postgres_adapter.UserDTO{
		ID:        id.Bytes(),
		Nickname:  nickname,
		Email:     nickname + "@example.com",
		CreatedAt: time.Now().UTC(),
	}).Error
}
