package commands

import (
	"context"

	"errands/internal/core/domain/model/shopperorder"
)

// CreateShopperOrderCommandHandler stores a new order in MATCHING. The order
// row, its items and its images are written in one transaction.
type CreateShopperOrderCommandHandler struct {
	uowFactory ShopperUoWFactory
}

func NewCreateShopperOrderCommandHandler(uowFactory ShopperUoWFactory) CreateShopperOrderCommandHandler {
	return CreateShopperOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateShopperOrderCommandHandler) Handle(ctx context.Context, cmd CreateShopperOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, images, err := buildShoppingList(cmd.Items(), cmd.Images())
	if err != nil {
		return err
	}

	order, err := shopperorder.NewShopperOrder(cmd.OrderID(), cmd.ShopperID(), cmd.Details(), items, images)
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

	if err = uow.ShopperOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
