package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one transaction. Repositories obtained after Begin run
// inside it. Instances must not be shared between goroutines.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	ShopperOrderRepository() ShopperOrderRepository

	ShopperOrderRequestRepository() ShopperOrderRequestRepository

	RunnerOrderRepository() RunnerOrderRepository

	RunnerOrderRequestRepository() RunnerOrderRequestRepository
}
