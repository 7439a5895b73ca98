package commands_test

import (
	"testing"

	"errands/internal/core/application/usecases/commands"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteRunnerOrderRequestCommandHandler_Handle_RemovesSubOrder(t *testing.T) {
	ctx := t.Context()
	shopperID := kernel.NewUUID()
	request := newRunnerRequest(t, kernel.NewUUID(), shopperID, workflow.RequestMatchFail)
	cmd, err := commands.NewDeleteRunnerOrderRequestCommand(shopperID, request.ID())
	require.NoError(t, err)

	requestRepo := new(MockRunnerOrderRequestRepository)
	shopperRepo := new(MockShopperOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RunnerOrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		requestRepo.On("Delete", ctx, request.ID()).Return(true, nil).Once(),
		uow.On("ShopperOrderRepository").Return(shopperRepo).Once(),
		shopperRepo.On("Delete", ctx, shopperID, request.ShopperOrderID()).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRunnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteRunnerOrderRequestCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, deleted)
	requestRepo.AssertExpectations(t)
	shopperRepo.AssertExpectations(t)
}

func TestDeleteRunnerOrderRequestCommandHandler_Handle_NotCreator(t *testing.T) {
	ctx := t.Context()
	request := newRunnerRequest(t, kernel.NewUUID(), kernel.NewUUID(), workflow.RequestRequesting)
	cmd, err := commands.NewDeleteRunnerOrderRequestCommand(kernel.NewUUID(), request.ID())
	require.NoError(t, err)

	requestRepo := new(MockRunnerOrderRequestRepository)
	requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RunnerOrderRequestRepository").Return(requestRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRunnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteRunnerOrderRequestCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, deleted)
	uow.AssertNotCalled(t, "ShopperOrderRepository")
}

func TestDeleteRunnerOrderRequestCommandHandler_Handle_UnknownRequestIsNotFound(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	cmd, err := commands.NewDeleteRunnerOrderRequestCommand(kernel.NewUUID(), requestID)
	require.NoError(t, err)

	requestRepo := new(MockRunnerOrderRequestRepository)
	requestRepo.On("Get", ctx, requestID).
		Return(nil, errs.NewObjectNotFoundError("requestId", requestID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RunnerOrderRequestRepository").Return(requestRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRunnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteRunnerOrderRequestCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)
	assert.False(t, deleted)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	uow.AssertNotCalled(t, "ShopperOrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteRunnerOrderRequestCommandHandler_Handle_DeliveredCannotBeWithdrawn(t *testing.T) {
	ctx := t.Context()
	shopperID := kernel.NewUUID()
	request := newRunnerRequest(t, kernel.NewUUID(), shopperID, workflow.RequestDelivered)
	cmd, err := commands.NewDeleteRunnerOrderRequestCommand(shopperID, request.ID())
	require.NoError(t, err)

	requestRepo := new(MockRunnerOrderRequestRepository)
	requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RunnerOrderRequestRepository").Return(requestRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRunnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteRunnerOrderRequestCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	assert.Equal(t, errs.KindInvalidStatusTransition, errs.KindOf(err))
	requestRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
