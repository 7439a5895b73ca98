package commands

import (
	"context"
)

// DeleteShopperOrderCommandHandler deletes an order with its items, images and
// requests. It reports false, with no error, when nothing owned by the actor
// matched, so repeating a delete is harmless.
type DeleteShopperOrderCommandHandler struct {
	uowFactory ShopperUoWFactory
}

func NewDeleteShopperOrderCommandHandler(uowFactory ShopperUoWFactory) DeleteShopperOrderCommandHandler {
	return DeleteShopperOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteShopperOrderCommandHandler) Handle(ctx context.Context, cmd DeleteShopperOrderCommand) (bool, error) {
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

	deleted, err := uow.ShopperOrderRepository().Delete(ctx, cmd.ActorID(), cmd.OrderID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
