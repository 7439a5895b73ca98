package commands

import (
	"context"
	"errors"

	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"
)

// CreateRunnerOrderRequestCommandHandler stores the sub-order (REQUESTING)
// with its items and images, then the request pointing at it, in one
// transaction. The runner order is touched first so the insert conflicts
// with a concurrent match on the same offer.
type CreateRunnerOrderRequestCommandHandler struct {
	uowFactory RunnerUoWFactory
}

func NewCreateRunnerOrderRequestCommandHandler(uowFactory RunnerUoWFactory) CreateRunnerOrderRequestCommandHandler {
	return CreateRunnerOrderRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateRunnerOrderRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRunnerOrderRequestCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, images, err := buildShoppingList(cmd.Items(), cmd.Images())
	if err != nil {
		return err
	}

	subOrder, err := shopperorder.NewSubOrder(cmd.SubOrderID(), cmd.ShopperID(), cmd.Details(), items, images)
	if err != nil {
		return err
	}

	request, err := runnerorder.NewRequest(cmd.RequestID(), cmd.OrderID(), cmd.ShopperID(), cmd.SubOrderID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.RunnerOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if order.IsOwnedBy(cmd.ShopperID()) {
		return errs.NewValueIsInvalidErrorWithCause("shopper id", errors.New("cannot request own offer"))
	}

	if err = orderRepo.Touch(ctx, order.ID()); err != nil {
		return err
	}

	requestRepo := uow.RunnerOrderRequestRepository()
	matched, err := requestRepo.HasMatch(ctx, order.ID())
	if err != nil {
		return err
	}
	if matched {
		return errs.NewInvalidStatusTransitionError(
			"runner order", workflow.RequestMatched.String(), workflow.RequestRequesting.String(),
		)
	}

	if err = uow.ShopperOrderRepository().Add(ctx, subOrder); err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
