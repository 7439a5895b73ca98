package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrGetRunnerOrderQueryIsNotConstructed = errors.New(
	"GetRunnerOrderQuery must be created via NewGetRunnerOrderQuery constructor",
)

type GetRunnerOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRunnerOrderQuery(orderID kernel.UUID) (GetRunnerOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRunnerOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetRunnerOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRunnerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetRunnerOrderQueryIsNotConstructed)
}

func (q GetRunnerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
