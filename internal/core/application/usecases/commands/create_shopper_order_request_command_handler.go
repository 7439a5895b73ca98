package commands

import (
	"context"
	"errors"

	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"
)

// acceptGuard asserts a shopper order is still open without moving it.
var acceptGuard = workflow.OrderEdge{From: workflow.OrderMatching, To: workflow.OrderMatching}

// CreateShopperOrderRequestCommandHandler adds a REQUESTING request to an open
// shopper order.
//
// The order is guarded with a no-op compare-and-set before the insert, so a
// request racing a match on the same order conflicts with it instead of
// slipping past the sibling rejection.
type CreateShopperOrderRequestCommandHandler struct {
	uowFactory ShopperUoWFactory
}

func NewCreateShopperOrderRequestCommandHandler(uowFactory ShopperUoWFactory) CreateShopperOrderRequestCommandHandler {
	return CreateShopperOrderRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateShopperOrderRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShopperOrderRequestCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	request, err := shopperorder.NewRequest(cmd.RequestID(), cmd.OrderID(), cmd.RunnerID())
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

	orderRepo := uow.ShopperOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if order.IsOwnedBy(cmd.RunnerID()) {
		return errs.NewValueIsInvalidErrorWithCause("runner id", errors.New("cannot request own order"))
	}

	if err = order.ValidateAcceptsRequests(); err != nil {
		return err
	}

	if err = orderRepo.CompareAndSetStatus(ctx, order.ID(), acceptGuard); err != nil {
		return err
	}

	if err = uow.ShopperOrderRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
