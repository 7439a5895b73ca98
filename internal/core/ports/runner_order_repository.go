package ports

import (
	"context"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
)

// RunnerOrderRepository persists runner offers.
type RunnerOrderRepository interface {
	Add(ctx context.Context, aggregate *runnerorder.RunnerOrder) error

	Get(ctx context.Context, id kernel.UUID) (*runnerorder.RunnerOrder, error)

	// Delete removes the offer owned by ownerID, its requests and the
	// sub-orders those requests anchor. Reports whether a row was removed.
	Delete(ctx context.Context, ownerID, id kernel.UUID) (bool, error)

	// Touch bumps updated_at. Writers that must not interleave on the same
	// offer (new requests, matches) touch it first so that they conflict.
	Touch(ctx context.Context, id kernel.UUID) error
}
