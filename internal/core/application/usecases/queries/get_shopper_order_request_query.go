package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrGetShopperOrderRequestQueryIsNotConstructed = errors.New(
	"GetShopperOrderRequestQuery must be created via NewGetShopperOrderRequestQuery constructor",
)

// GetShopperOrderRequestQuery loads a runner's request together with the
// order it targets.
type GetShopperOrderRequestQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShopperOrderRequestQuery(requestID kernel.UUID) (GetShopperOrderRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetShopperOrderRequestQuery{}, errs.NewValueIsRequiredErrorWithCause("request id", err)
	}
	return GetShopperOrderRequestQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShopperOrderRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetShopperOrderRequestQueryIsNotConstructed)
}

func (q GetShopperOrderRequestQuery) RequestID() kernel.UUID {
	return q.requestID
}
