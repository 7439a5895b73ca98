package shopperorder

import (
	"errors"
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

// Request is a runner's claim on a shopper order.
type Request struct {
	id        kernel.UUID
	orderID   kernel.UUID
	runnerID  kernel.UUID
	status    workflow.RequestStatus
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRequest files a request in REQUESTING.
func NewRequest(id, orderID, runnerID kernel.UUID) (*Request, error) {
	return newRequest(id, orderID, runnerID, workflow.RequestRequesting)
}

// RestoreRequest rebuilds a request loaded from storage.
func RestoreRequest(
	id, orderID, runnerID kernel.UUID,
	status workflow.RequestStatus,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	request, err := newRequest(id, orderID, runnerID, status)
	if err != nil {
		return nil, err
	}

	request.createdAt = createdAt
	request.updatedAt = updatedAt
	return request, nil
}

func newRequest(id, orderID, runnerID kernel.UUID, status workflow.RequestStatus) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		runnerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:            id,
		orderID:       orderID,
		runnerID:      runnerID,
		status:        status,
		isConstructed: true,
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

func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Request) RunnerID() kernel.UUID {
	return r.runnerID
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

// IsCreatedBy reports whether actorID filed the request.
func (r *Request) IsCreatedBy(actorID kernel.UUID) bool {
	return r.runnerID.IsEqual(actorID)
}

// ValidateWithdraw fails once the request has been matched.
func (r *Request) ValidateWithdraw() error {
	if !r.status.IsDeletable() {
		return errs.NewInvalidStatusTransitionError("shopper order request", r.status.String(), "DELETED")
	}
	return nil
}
