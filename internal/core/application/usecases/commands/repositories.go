// Package commands contains business operations that modify system state.
// Every handler validates its command, opens one unit of work, performs its
// writes and commits. A deferred Rollback discards everything on any failure.
package commands

import (
	"context"

	"errands/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShopperOrderRepoFactory interface {
		ShopperOrderRepository() ports.ShopperOrderRepository
	}

	ShopperOrderRequestRepoFactory interface {
		ShopperOrderRequestRepository() ports.ShopperOrderRequestRepository
	}

	RunnerOrderRepoFactory interface {
		RunnerOrderRepository() ports.RunnerOrderRepository
	}

	RunnerOrderRequestRepoFactory interface {
		RunnerOrderRequestRepository() ports.RunnerOrderRequestRepository
	}

	// ShopperUoW covers orders published by shoppers and the runner requests on them.
	ShopperUoW interface {
		TxManager
		ShopperOrderRepoFactory
		ShopperOrderRequestRepoFactory
	}

	ShopperUoWFactory interface {
		Create() ShopperUoW
	}

	// RunnerUoW covers runner offers, the shopper requests on them and the
	// sub-orders those requests anchor.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _ = uow.RunnerOrderRepository().Touch(ctx, orderID)
	//   _ = uow.ShopperOrderRepository().Add(ctx, subOrder)
	//   _ = uow.RunnerOrderRequestRepository().Add(ctx, request)
	//
	//   err = uow.Commit(ctx)
	RunnerUoW interface {
		TxManager
		RunnerOrderRepoFactory
		RunnerOrderRequestRepoFactory
		ShopperOrderRepoFactory
	}

	RunnerUoWFactory interface {
		Create() RunnerUoW
	}
)
