package commands

import (
	"context"

	"errands/internal/core/domain/model/workflow"
)

// TransitionRunnerOrderRequestCommandHandler runs one status transition for
// the runner orientation. The order moved alongside the request is the
// request's own sub-order. On MATCHED the runner offer is touched and every
// other live request on it fails together with its sub-order.
type TransitionRunnerOrderRequestCommandHandler struct {
	uowFactory RunnerUoWFactory
	recorder   TransitionRecorder
}

func NewTransitionRunnerOrderRequestCommandHandler(
	uowFactory RunnerUoWFactory,
	recorder TransitionRecorder,
) TransitionRunnerOrderRequestCommandHandler {
	return TransitionRunnerOrderRequestCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorderOrNop(recorder),
	}
}

func (h *TransitionRunnerOrderRequestCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionRunnerOrderRequestCommand,
) (err error) {
	ctx, span := tracer.Start(ctx, "TransitionRunnerOrderRequest",
		transitionAttributes(workflow.RunnerOrientation, cmd.RequestID().String(), cmd.TargetStatus()))
	defer func() {
		finishTransition(span, h.recorder, workflow.RunnerOrientation, cmd.TargetStatus(), err)
	}()

	return h.handle(ctx, cmd)
}

func (h *TransitionRunnerOrderRequestCommandHandler) handle(
	ctx context.Context,
	cmd TransitionRunnerOrderRequestCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	plan, err := workflow.PlanFromString(workflow.RunnerOrientation, cmd.TargetStatus())
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

	requestRepo := uow.RunnerOrderRequestRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = requestRepo.CompareAndSetStatus(ctx, request.ID(), plan.Request); err != nil {
		return err
	}

	if err = uow.ShopperOrderRepository().CompareAndSetStatus(ctx, request.ShopperOrderID(), plan.Order); err != nil {
		return err
	}

	if plan.RejectSiblings {
		if err = uow.RunnerOrderRepository().Touch(ctx, request.OrderID()); err != nil {
			return err
		}
		if _, err = requestRepo.RejectSiblings(ctx, request.OrderID(), request.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
