package queries

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrListRunnerOrderRequestsQueryIsNotConstructed = errors.New(
	"ListRunnerOrderRequestsQuery must be created via NewListRunnerOrderRequestsQuery or " +
		"NewListRunnerOrderRequestsByShopperQuery constructor",
)

// ListRunnerOrderRequestsQuery pages through requests on runner orders, either
// those filed against one order or those filed by one shopper.
type ListRunnerOrderRequestsQuery struct {
	orderID   *kernel.UUID
	shopperID *kernel.UUID
	status    *workflow.RequestStatus
	page      kernel.Page

	guard guard.ConstructorGuard
}

func NewListRunnerOrderRequestsQuery(
	orderID kernel.UUID,
	page kernel.Page,
	status string,
) (ListRunnerOrderRequestsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListRunnerOrderRequestsQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return newListRunnerOrderRequestsQuery(&orderID, nil, page, status)
}

func NewListRunnerOrderRequestsByShopperQuery(
	shopperID kernel.UUID,
	page kernel.Page,
	status string,
) (ListRunnerOrderRequestsQuery, error) {
	if err := shopperID.Validate(); err != nil {
		return ListRunnerOrderRequestsQuery{}, errs.NewValueIsRequiredErrorWithCause("shopper id", err)
	}
	return newListRunnerOrderRequestsQuery(nil, &shopperID, page, status)
}

func newListRunnerOrderRequestsQuery(
	orderID, shopperID *kernel.UUID,
	page kernel.Page,
	status string,
) (ListRunnerOrderRequestsQuery, error) {
	parsed, err := parseRequestStatusFilter(status)
	if err != nil {
		return ListRunnerOrderRequestsQuery{}, err
	}

	return ListRunnerOrderRequestsQuery{
		orderID:   orderID,
		shopperID: shopperID,
		status:    parsed,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListRunnerOrderRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListRunnerOrderRequestsQueryIsNotConstructed)
}

func (q ListRunnerOrderRequestsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

func (q ListRunnerOrderRequestsQuery) ShopperID() *kernel.UUID {
	return q.shopperID
}

func (q ListRunnerOrderRequestsQuery) Status() *workflow.RequestStatus {
	return q.status
}

func (q ListRunnerOrderRequestsQuery) Page() kernel.Page {
	return q.page
}
