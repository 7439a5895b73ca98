package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrGetRunnerOrderRequestQueryIsNotConstructed = errors.New(
	"GetRunnerOrderRequestQuery must be created via NewGetRunnerOrderRequestQuery constructor",
)

// GetRunnerOrderRequestQuery loads a shopper's request on a runner order with
// the sub-order it anchors.
type GetRunnerOrderRequestQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRunnerOrderRequestQuery(requestID kernel.UUID) (GetRunnerOrderRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRunnerOrderRequestQuery{}, errs.NewValueIsRequiredErrorWithCause("request id", err)
	}
	return GetRunnerOrderRequestQuery{requestID: requestID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRunnerOrderRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetRunnerOrderRequestQueryIsNotConstructed)
}

func (q GetRunnerOrderRequestQuery) RequestID() kernel.UUID {
	return q.requestID
}
