package commands

import "context"

// DeleteShopperOrderRequestCommandHandler removes only the request row; the
// shopper order it pointed at is untouched.
//
// An unknown request is NOT_FOUND. A request filed by someone else is left in
// place and reported as false. A matched request cannot be withdrawn.
type DeleteShopperOrderRequestCommandHandler struct {
	uowFactory ShopperUoWFactory
}

func NewDeleteShopperOrderRequestCommandHandler(uowFactory ShopperUoWFactory) DeleteShopperOrderRequestCommandHandler {
	return DeleteShopperOrderRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteShopperOrderRequestCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteShopperOrderRequestCommand,
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

	requestRepo := uow.ShopperOrderRequestRepository()
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

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
