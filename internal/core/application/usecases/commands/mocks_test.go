package commands_test

import (
	"context"

	"errands/internal/core/application/usecases/commands"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/core/ports"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockShopperOrderRepository struct{ mock.Mock }

func (m *MockShopperOrderRepository) Add(ctx context.Context, o *shopperorder.ShopperOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockShopperOrderRepository) Get(ctx context.Context, id kernel.UUID) (*shopperorder.ShopperOrder, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*shopperorder.ShopperOrder); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShopperOrderRepository) Delete(ctx context.Context, ownerID, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopperOrderRepository) CompareAndSetStatus(
	ctx context.Context,
	id kernel.UUID,
	edge workflow.OrderEdge,
) error {
	args := m.Called(ctx, id, edge)
	return args.Error(0)
}

type MockShopperOrderRequestRepository struct{ mock.Mock }

func (m *MockShopperOrderRequestRepository) Add(ctx context.Context, r *shopperorder.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockShopperOrderRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shopperorder.Request, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*shopperorder.Request); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShopperOrderRequestRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopperOrderRequestRepository) CompareAndSetStatus(
	ctx context.Context,
	id kernel.UUID,
	edge workflow.RequestEdge,
) error {
	args := m.Called(ctx, id, edge)
	return args.Error(0)
}

func (m *MockShopperOrderRequestRepository) RejectSiblings(
	ctx context.Context,
	orderID, winnerID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, orderID, winnerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRunnerOrderRepository struct{ mock.Mock }

func (m *MockRunnerOrderRepository) Add(ctx context.Context, o *runnerorder.RunnerOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRunnerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*runnerorder.RunnerOrder, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*runnerorder.RunnerOrder); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRunnerOrderRepository) Delete(ctx context.Context, ownerID, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRunnerOrderRepository) Touch(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRunnerOrderRequestRepository struct{ mock.Mock }

func (m *MockRunnerOrderRequestRepository) Add(ctx context.Context, r *runnerorder.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRunnerOrderRequestRepository) Get(ctx context.Context, id kernel.UUID) (*runnerorder.Request, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*runnerorder.Request); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRunnerOrderRequestRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRunnerOrderRequestRepository) CompareAndSetStatus(
	ctx context.Context,
	id kernel.UUID,
	edge workflow.RequestEdge,
) error {
	args := m.Called(ctx, id, edge)
	return args.Error(0)
}

func (m *MockRunnerOrderRequestRepository) RejectSiblings(
	ctx context.Context,
	orderID, winnerID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, orderID, winnerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRunnerOrderRequestRepository) HasMatch(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockUoW satisfies both ShopperUoW and RunnerUoW.
type MockUoW struct {
	MockTxManager
}

func (m *MockUoW) ShopperOrderRepository() ports.ShopperOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopperOrderRepository)
}

func (m *MockUoW) ShopperOrderRequestRepository() ports.ShopperOrderRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopperOrderRequestRepository)
}

func (m *MockUoW) RunnerOrderRepository() ports.RunnerOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.RunnerOrderRepository)
}

func (m *MockUoW) RunnerOrderRequestRepository() ports.RunnerOrderRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RunnerOrderRequestRepository)
}

type MockShopperUoWFactory struct{ mock.Mock }

func (m *MockShopperUoWFactory) Create() commands.ShopperUoW {
	args := m.Called()
	return args.Get(0).(commands.ShopperUoW)
}

type MockRunnerUoWFactory struct{ mock.Mock }

func (m *MockRunnerUoWFactory) Create() commands.RunnerUoW {
	args := m.Called()
	return args.Get(0).(commands.RunnerUoW)
}

type MockTransitionRecorder struct{ mock.Mock }

func (m *MockTransitionRecorder) ObserveTransition(orientation workflow.Orientation, target string, kind errs.Kind) {
	m.Called(orientation, target, kind)
}
