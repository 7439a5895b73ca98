package ports

import (
	"context"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/workflow"
)

// RunnerOrderRequestRepository persists shopper requests against runner orders.
type RunnerOrderRequestRepository interface {
	Add(ctx context.Context, request *runnerorder.Request) error

	Get(ctx context.Context, id kernel.UUID) (*runnerorder.Request, error)

	// Delete removes only the request row; the caller deletes the sub-order.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)

	CompareAndSetStatus(ctx context.Context, id kernel.UUID, edge workflow.RequestEdge) error

	// RejectSiblings marks every other live request on the runner order, and
	// the sub-order each one anchors, as MATCH_FAIL.
	RejectSiblings(ctx context.Context, orderID, winnerID kernel.UUID) (int64, error)

	// HasMatch reports whether a request on the runner order already left
	// REQUESTING without failing.
	HasMatch(ctx context.Context, orderID kernel.UUID) (bool, error)
}
