package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/guard"
)

var ErrListRunnerOrdersQueryIsNotConstructed = errors.New(
	"ListRunnerOrdersQuery must be created via NewListRunnerOrdersQuery constructor",
)

type ListRunnerOrdersQuery struct {
	page    kernel.Page
	ownerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListRunnerOrdersQuery(page kernel.Page, ownerID *kernel.UUID) (ListRunnerOrdersQuery, error) {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return ListRunnerOrdersQuery{}, err
		}
	}
	return ListRunnerOrdersQuery{page: page, ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRunnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRunnerOrdersQueryIsNotConstructed)
}

func (q ListRunnerOrdersQuery) Page() kernel.Page {
	return q.page
}

func (q ListRunnerOrdersQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}
