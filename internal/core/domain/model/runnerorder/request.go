package runnerorder

import (
	"errors"
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

// Request is a shopper's claim on a runner order. It anchors the shopper's own
// sub-order (a shopperorder.ShopperOrder in REQUESTING) that carries the
// shopping list.
type Request struct {
	id             kernel.UUID
	orderID        kernel.UUID
	shopperID      kernel.UUID
	shopperOrderID kernel.UUID
	status         workflow.RequestStatus
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

func NewRequest(id, orderID, shopperID, shopperOrderID kernel.UUID) (*Request, error) {
	return newRequest(id, orderID, shopperID, shopperOrderID, workflow.RequestRequesting)
}

func RestoreRequest(
	id, orderID, shopperID, shopperOrderID kernel.UUID,
	status workflow.RequestStatus,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	request, err := newRequest(id, orderID, shopperID, shopperOrderID, status)
	if err != nil {
		return nil, err
	}

	request.createdAt = createdAt
	request.updatedAt = updatedAt
	return request, nil
}

func newRequest(id, orderID, shopperID, shopperOrderID kernel.UUID, status workflow.RequestStatus) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		shopperID.Validate(),
		shopperOrderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:             id,
		orderID:        orderID,
		shopperID:      shopperID,
		shopperOrderID: shopperOrderID,
		status:         status,
		isConstructed:  true,
	}, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrderID is the runner order the request targets.
func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Request) ShopperID() kernel.UUID {
	return r.shopperID
}

// ShopperOrderID is the sub-order whose status moves with this request.
func (r *Request) ShopperOrderID() kernel.UUID {
	return r.shopperOrderID
}

func (r *Request) Status() workflow.RequestStatus {
	return r.status
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Request) IsCreatedBy(actorID kernel.UUID) bool {
	return r.shopperID.IsEqual(actorID)
}

func (r *Request) ValidateWithdraw() error {
	if !r.status.IsDeletable() {
		return errs.NewInvalidStatusTransitionError("runner order request", r.status.String(), "DELETED")
	}
	return nil
}
