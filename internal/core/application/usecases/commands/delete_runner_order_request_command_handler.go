package commands

import "context"

// DeleteRunnerOrderRequestCommandHandler removes the request row and then the
// sub-order it anchored, with the sub-order's items and images.
//
// An unknown request is NOT_FOUND. A request filed by someone else is left in
// place and reported as false.
type DeleteRunnerOrderRequestCommandHandler struct {
	uowFactory RunnerUoWFactory
}

func NewDeleteRunnerOrderRequestCommandHandler(uowFactory RunnerUoWFactory) DeleteRunnerOrderRequestCommandHandler {
	return DeleteRunnerOrderRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteRunnerOrderRequestCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteRunnerOrderRequestCommand,
) (bool, error) {
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

	requestRepo := uow.RunnerOrderRequestRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return false, err
	}

	if !request.IsCreatedBy(cmd.ActorID()) {
		return false, nil
	}

	if err = request.ValidateWithdraw(); err != nil {
		return false, err
	}

	deleted, err := requestRepo.Delete(ctx, request.ID())
	if err != nil {
		return false, err
	}

	if _, err = uow.ShopperOrderRepository().Delete(ctx, request.ShopperID(), request.ShopperOrderID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
