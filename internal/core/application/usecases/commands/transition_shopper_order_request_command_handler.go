package commands

import (
	"context"

	"errands/internal/core/domain/model/workflow"
)

// TransitionShopperOrderRequestCommandHandler runs one status transition for
// the shopper orientation:
//
//  1. resolve the plan for the target (UNKNOWN_TARGET_STATUS when there is none)
//  2. load the request (NOT_FOUND)
//  3. compare-and-set the request status
//  4. compare-and-set the shopper order status
//  5. on MATCHED, fail every other live request on the order
//
// Steps 2-5 share one REPEATABLE READ transaction. A compare-and-set that
// matches no row, or a serialization failure, aborts it with
// INVALID_STATUS_TRANSITION.
type TransitionShopperOrderRequestCommandHandler struct {
	uowFactory ShopperUoWFactory
	recorder   TransitionRecorder
}

func NewTransitionShopperOrderRequestCommandHandler(
	uowFactory ShopperUoWFactory,
	recorder TransitionRecorder,
) TransitionShopperOrderRequestCommandHandler {
	return TransitionShopperOrderRequestCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorderOrNop(recorder),
	}
}

func (h *TransitionShopperOrderRequestCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionShopperOrderRequestCommand,
) (err error) {
	ctx, span := tracer.Start(ctx, "TransitionShopperOrderRequest",
		transitionAttributes(workflow.ShopperOrientation, cmd.RequestID().String(), cmd.TargetStatus()))
	defer func() {
		finishTransition(span, h.recorder, workflow.ShopperOrientation, cmd.TargetStatus(), err)
	}()

	return h.handle(ctx, cmd)
}

func (h *TransitionShopperOrderRequestCommandHandler) handle(
	ctx context.Context,
	cmd TransitionShopperOrderRequestCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	plan, err := workflow.PlanFromString(workflow.ShopperOrientation, cmd.TargetStatus())
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

	requestRepo := uow.ShopperOrderRequestRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = requestRepo.CompareAndSetStatus(ctx, request.ID(), plan.Request); err != nil {
		return err
	}

	if err = uow.ShopperOrderRepository().CompareAndSetStatus(ctx, request.OrderID(), plan.Order); err != nil {
		return err
	}

	if plan.RejectSiblings {
		if _, err = requestRepo.RejectSiblings(ctx, request.OrderID(), request.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
