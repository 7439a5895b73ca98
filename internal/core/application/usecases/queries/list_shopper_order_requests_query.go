package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrListShopperOrderRequestsQueryIsNotConstructed = errors.New(
	"ListShopperOrderRequestsQuery must be created via NewListShopperOrderRequestsQuery or " +
		"NewListShopperOrderRequestsByRunnerQuery constructor",
)

// ListShopperOrderRequestsQuery pages through requests on shopper orders,
// either those filed against one order or those filed by one runner.
// Without a status filter MATCH_FAIL requests are left out.
type ListShopperOrderRequestsQuery struct {
	orderID  *kernel.UUID
	runnerID *kernel.UUID
	status   *workflow.RequestStatus
	page     kernel.Page

	guard guard.ConstructorGuard
}

// NewListShopperOrderRequestsQuery lists the requests on orderID.
func NewListShopperOrderRequestsQuery(
	orderID kernel.UUID,
	page kernel.Page,
	status string,
) (ListShopperOrderRequestsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListShopperOrderRequestsQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return newListShopperOrderRequestsQuery(&orderID, nil, page, status)
}

// NewListShopperOrderRequestsByRunnerQuery lists the requests runnerID filed.
func NewListShopperOrderRequestsByRunnerQuery(
	runnerID kernel.UUID,
	page kernel.Page,
	status string,
) (ListShopperOrderRequestsQuery, error) {
	if err := runnerID.Validate(); err != nil {
		return ListShopperOrderRequestsQuery{}, errs.NewValueIsRequiredErrorWithCause("runner id", err)
	}
	return newListShopperOrderRequestsQuery(nil, &runnerID, page, status)
}

func newListShopperOrderRequestsQuery(
	orderID, runnerID *kernel.UUID,
	page kernel.Page,
	status string,
) (ListShopperOrderRequestsQuery, error) {
	parsed, err := parseRequestStatusFilter(status)
	if err != nil {
		return ListShopperOrderRequestsQuery{}, err
	}

	return ListShopperOrderRequestsQuery{
		orderID:  orderID,
		runnerID: runnerID,
		status:   parsed,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListShopperOrderRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListShopperOrderRequestsQueryIsNotConstructed)
}

func (q ListShopperOrderRequestsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

func (q ListShopperOrderRequestsQuery) RunnerID() *kernel.UUID {
	return q.runnerID
}

func (q ListShopperOrderRequestsQuery) Status() *workflow.RequestStatus {
	return q.status
}

func (q ListShopperOrderRequestsQuery) Page() kernel.Page {
	return q.page
}
