package commands

import (
	"context"

	"errands/internal/core/domain/model/runnerorder"
)

type CreateRunnerOrderCommandHandler struct {
	uowFactory RunnerUoWFactory
}

func NewCreateRunnerOrderCommandHandler(uowFactory RunnerUoWFactory) CreateRunnerOrderCommandHandler {
	return CreateRunnerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateRunnerOrderCommandHandler) Handle(ctx context.Context, cmd CreateRunnerOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	order, err := runnerorder.NewRunnerOrder(cmd.OrderID(), cmd.RunnerID(), cmd.Details())
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

	if err = uow.RunnerOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
