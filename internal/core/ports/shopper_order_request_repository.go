package ports

import (
	"context"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
)

// ShopperOrderRequestRepository persists runner requests against shopper orders.
type ShopperOrderRequestRepository interface {
	Add(ctx context.Context, request *shopperorder.Request) error

	Get(ctx context.Context, id kernel.UUID) (*shopperorder.Request, error)

	// Delete removes only the request row.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)

	CompareAndSetStatus(ctx context.Context, id kernel.UUID, edge workflow.RequestEdge) error

	// RejectSiblings marks every other live request on orderID as MATCH_FAIL
	// and returns how many were rejected.
	RejectSiblings(ctx context.Context, orderID, winnerID kernel.UUID) (int64, error)
}
