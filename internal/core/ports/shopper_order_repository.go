package ports

import (
	"context"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
)

// ShopperOrderRepository persists shopper orders together with their items and images.
type ShopperOrderRepository interface {
	// Add inserts the order row, then its items, then its images.
	Add(ctx context.Context, aggregate *shopperorder.ShopperOrder) error

	// Get loads the order with its children. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*shopperorder.ShopperOrder, error)

	// Delete removes the order (and, by cascade, its children and requests) only
	// when ownerID published it. Reports whether a row was removed.
	Delete(ctx context.Context, ownerID, id kernel.UUID) (bool, error)

	// CompareAndSetStatus moves the order along edge. Returns an
	// InvalidStatusTransitionError when the order is not in edge.From.
	CompareAndSetStatus(ctx context.Context, id kernel.UUID, edge workflow.OrderEdge) error
}
