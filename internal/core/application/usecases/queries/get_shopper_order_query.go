package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrGetShopperOrderQueryIsNotConstructed = errors.New(
	"GetShopperOrderQuery must be created via NewGetShopperOrderQuery constructor",
)

// GetShopperOrderQuery loads one shopper order with its owner, children and
// live requests.
type GetShopperOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShopperOrderQuery(orderID kernel.UUID) (GetShopperOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShopperOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetShopperOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShopperOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetShopperOrderQueryIsNotConstructed)
}

func (q GetShopperOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
