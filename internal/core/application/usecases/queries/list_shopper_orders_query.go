package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/guard"
)

var ErrListShopperOrdersQueryIsNotConstructed = errors.New(
	"ListShopperOrdersQuery must be created via NewListShopperOrdersQuery constructor",
)

// ListShopperOrdersQuery pages through published shopper orders, newest
// update first. OwnerID narrows the listing to one shopper.
type ListShopperOrdersQuery struct {
	page    kernel.Page
	ownerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListShopperOrdersQuery(page kernel.Page, ownerID *kernel.UUID) (ListShopperOrdersQuery, error) {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return ListShopperOrdersQuery{}, err
		}
	}
	return ListShopperOrdersQuery{page: page, ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListShopperOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListShopperOrdersQueryIsNotConstructed)
}

func (q ListShopperOrdersQuery) Page() kernel.Page {
	return q.page
}

func (q ListShopperOrdersQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}
