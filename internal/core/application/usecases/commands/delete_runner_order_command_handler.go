package commands

import (
	"context"
)

// DeleteRunnerOrderCommandHandler deletes an offer, its requests and every
// sub-order those requests anchor. Returns false when the actor owns no such offer.
type DeleteRunnerOrderCommandHandler struct {
	uowFactory RunnerUoWFactory
}

func NewDeleteRunnerOrderCommandHandler(uowFactory RunnerUoWFactory) DeleteRunnerOrderCommandHandler {
	return DeleteRunnerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteRunnerOrderCommandHandler) Handle(ctx context.Context, cmd DeleteRunnerOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.RunnerOrderRepository().Delete(ctx, cmd.ActorID(), cmd.OrderID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
