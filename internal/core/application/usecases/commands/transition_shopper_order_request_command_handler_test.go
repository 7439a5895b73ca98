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

func TestTransitionShopperOrderRequestCommandHandler_Handle_MatchRejectsSiblings(t *testing.T) {
	ctx := mock.Anything
	request := newShopperRequest(t, kernel.NewUUID(), kernel.NewUUID(), workflow.RequestRequesting)
	cmd, err := commands.NewTransitionShopperOrderRequestCommand(request.ID(), "MATCHED")
	require.NoError(t, err)

	orderRepo := new(MockShopperOrderRepository)
	requestRepo := new(MockShopperOrderRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopperOrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		requestRepo.On("CompareAndSetStatus", ctx, request.ID(),
			workflow.RequestEdge{From: workflow.RequestRequesting, To: workflow.RequestMatched}).Return(nil).Once(),
		uow.On("ShopperOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CompareAndSetStatus", ctx, request.OrderID(),
			workflow.OrderEdge{From: workflow.OrderMatching, To: workflow.OrderMatched}).Return(nil).Once(),
		requestRepo.On("RejectSiblings", ctx, request.OrderID(), request.ID()).Return(int64(2), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShopperUoWFactory)
	factory.On("Create").Return(uow).Once()

	recorder := new(MockTransitionRecorder)
	recorder.On("ObserveTransition", workflow.ShopperOrientation, "MATCHED", errs.Kind("")).Once()

	h := commands.NewTransitionShopperOrderRequestCommandHandler(factory, recorder)
	require.NoError(t, h.Handle(t.Context(), cmd))
	orderRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestTransitionShopperOrderRequestCommandHandler_Handle_DeliveryStepsDoNotFanOut(t *testing.T) {
	steps := []struct {
		target    string
		request   workflow.RequestEdge
		orderEdge workflow.OrderEdge
	}{
		{
			target:    "DELIVERED_REQUEST",
			request:   workflow.RequestEdge{From: workflow.RequestMatched, To: workflow.RequestDeliveredRequest},
			orderEdge: workflow.OrderEdge{From: workflow.OrderMatched, To: workflow.OrderDeliveredRequest},
		},
		{
			target:    "REVIEWED",
			request:   workflow.RequestEdge{From: workflow.RequestReviewRequest, To: workflow.RequestReviewed},
			orderEdge: workflow.OrderEdge{From: workflow.OrderReviewRequest, To: workflow.OrderReviewed},
		},
		{
			target:    "MATCH_FAIL",
			request:   workflow.RequestEdge{From: workflow.RequestRequesting, To: workflow.RequestMatchFail},
			orderEdge: workflow.OrderEdge{From: workflow.OrderMatching, To: workflow.OrderMatching},
		},
	}

	for _, step := range steps {
		t.Run(step.target, func(t *testing.T) {
			ctx := mock.Anything
			request := newShopperRequest(t, kernel.NewUUID(), kernel.NewUUID(), step.request.From)
			cmd, err := commands.NewTransitionShopperOrderRequestCommand(request.ID(), step.target)
			require.NoError(t, err)

			orderRepo := new(MockShopperOrderRepository)
			requestRepo := new(MockShopperOrderRequestRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("ShopperOrderRequestRepository").Return(requestRepo).Once()
			requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()
			requestRepo.On("CompareAndSetStatus", ctx, request.ID(), step.request).Return(nil).Once()
			uow.On("ShopperOrderRepository").Return(orderRepo).Once()
			orderRepo.On("CompareAndSetStatus", ctx, request.OrderID(), step.orderEdge).Return(nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockShopperUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewTransitionShopperOrderRequestCommandHandler(factory, nil)
			require.NoError(t, h.Handle(t.Context(), cmd))
			requestRepo.AssertNotCalled(t, "RejectSiblings", mock.Anything, mock.Anything, mock.Anything)
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestTransitionShopperOrderRequestCommandHandler_Handle_UnknownTarget(t *testing.T) {
	for _, target := range []string{"REQUESTING", "MATCHING", "SHIPPED", ""} {
		t.Run(target, func(t *testing.T) {
			cmd, err := commands.NewTransitionShopperOrderRequestCommand(kernel.NewUUID(), target)
			require.NoError(t, err)

			factory := new(MockShopperUoWFactory)
			recorder := new(MockTransitionRecorder)
			recorder.On("ObserveTransition", workflow.ShopperOrientation, target, errs.KindUnknownTargetStatus).Once()

			h := commands.NewTransitionShopperOrderRequestCommandHandler(factory, recorder)
			err = h.Handle(t.Context(), cmd)
			assert.Equal(t, errs.KindUnknownTargetStatus, errs.KindOf(err))
			factory.AssertNotCalled(t, "Create")
			recorder.AssertExpectations(t)
		})
	}
}

func TestTransitionShopperOrderRequestCommandHandler_Handle_RequestNotFound(t *testing.T) {
	ctx := mock.Anything
	requestID := kernel.NewUUID()
	cmd, err := commands.NewTransitionShopperOrderRequestCommand(requestID, "DELIVERED")
	require.NoError(t, err)

	requestRepo := new(MockShopperOrderRequestRepository)
	requestRepo.On("Get", ctx, requestID).
		Return(nil, errs.NewObjectNotFoundError("requestId", requestID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShopperOrderRequestRepository").Return(requestRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShopperUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShopperOrderRequestCommandHandler(factory, nil)
	err = h.Handle(t.Context(), cmd)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionShopperOrderRequestCommandHandler_Handle_SkipIsRejected(t *testing.T) {
	ctx := mock.Anything
	request := newShopperRequest(t, kernel.NewUUID(), kernel.NewUUID(), workflow.RequestRequesting)
	cmd, err := commands.NewTransitionShopperOrderRequestCommand(request.ID(), "DELIVERED")
	require.NoError(t, err)

	edge := workflow.RequestEdge{From: workflow.RequestDeliveredRequest, To: workflow.RequestDelivered}
	requestRepo := new(MockShopperOrderRequestRepository)
	requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()
	requestRepo.On("CompareAndSetStatus", ctx, request.ID(), edge).
		Return(errs.NewInvalidStatusTransitionError("shopper order request", edge.From.String(), edge.To.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShopperOrderRequestRepository").Return(requestRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShopperUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShopperOrderRequestCommandHandler(factory, nil)
	err = h.Handle(t.Context(), cmd)
	assert.Equal(t, errs.KindInvalidStatusTransition, errs.KindOf(err))
	uow.AssertNotCalled(t, "ShopperOrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestTransitionShopperOrderRequestCommandHandler_Handle_OrderCASFailureRollsBack(t *testing.T) {
	ctx := mock.Anything
	request := newShopperRequest(t, kernel.NewUUID(), kernel.NewUUID(), workflow.RequestRequesting)
	cmd, err := commands.NewTransitionShopperOrderRequestCommand(request.ID(), "MATCHED")
	require.NoError(t, err)

	orderRepo := new(MockShopperOrderRepository)
	orderRepo.On("CompareAndSetStatus", ctx, request.OrderID(), mock.Anything).
		Return(errs.NewInvalidStatusTransitionError("shopper order", "MATCHING", "MATCHED")).Once()

	requestRepo := new(MockShopperOrderRequestRepository)
	requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()
	requestRepo.On("CompareAndSetStatus", ctx, request.ID(), mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShopperOrderRequestRepository").Return(requestRepo).Once()
	uow.On("ShopperOrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShopperUoWFactory)
	factory.On("Create").Return(uow).Once()

	recorder := new(MockTransitionRecorder)
	recorder.On("ObserveTransition", workflow.ShopperOrientation, "MATCHED", errs.KindInvalidStatusTransition).Once()

	h := commands.NewTransitionShopperOrderRequestCommandHandler(factory, recorder)
	err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	requestRepo.AssertNotCalled(t, "RejectSiblings", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
	recorder.AssertExpectations(t)
}
