package runnerorderrepo_test

import (
	"context"
	"testing"
	"time"

	"errands/internal/adapters/out/postgres/pgtest"
	"errands/internal/adapters/out/postgres/runnerorderrepo"
	"errands/internal/adapters/out/postgres/shopperorderrepo"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type RunnerOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orders    *runnerorderrepo.GormRunnerOrderRepository
	requests  *runnerorderrepo.GormRunnerOrderRequestRepository
	subOrders *shopperorderrepo.GormShopperOrderRepository
}

func TestRunnerOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(RunnerOrderRepositoryTestSuite))
}

func (s *RunnerOrderRepositoryTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	s.container = container
	s.Require().NoError(err)
	s.db = db
	s.orders = runnerorderrepo.NewGormRunnerOrderRepository(db)
	s.requests = runnerorderrepo.NewGormRunnerOrderRequestRepository(db)
	s.subOrders = shopperorderrepo.NewGormShopperOrderRepository(db)
}

func (s *RunnerOrderRepositoryTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RunnerOrderRepositoryTestSuite) SetupTest() {
	s.Require().NoError(pgtest.Truncate(s.db))
}

func (s *RunnerOrderRepositoryTestSuite) TestAddAndGet_RoundTripsPayments() {
	ctx := context.Background()
	order := s.newOrder(kernel.NewUUID())

	s.Require().NoError(s.orders.Add(ctx, order))

	loaded, err := s.orders.Get(ctx, order.ID())
	s.Require().NoError(err)
	s.Equal(order.RunnerID(), loaded.RunnerID())
	s.Equal("heading downtown at noon", loaded.Details().Message)
	s.Equal(45, loaded.Details().EstimatedMinutes)
	s.Equal(800, loaded.Details().DistanceMeters)
	s.Equal([]string{"CASH", "TRANSFER"}, loaded.Details().Payments)
}

func (s *RunnerOrderRepositoryTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := s.orders.Get(context.Background(), kernel.NewUUID())

	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *RunnerOrderRepositoryTestSuite) TestTouch() {
	ctx := context.Background()
	order := s.newOrder(kernel.NewUUID())
	s.Require().NoError(s.orders.Add(ctx, order))

	s.Require().NoError(s.orders.Touch(ctx, order.ID()))

	err := s.orders.Touch(ctx, kernel.NewUUID())
	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *RunnerOrderRepositoryTestSuite) TestDelete_CascadesToRequestsAndSubOrders() {
	ctx := context.Background()
	runner := kernel.NewUUID()
	order := s.newOrder(runner)
	s.Require().NoError(s.orders.Add(ctx, order))
	request, subOrder := s.addRequest(order.ID(), kernel.NewUUID(), workflow.RequestRequesting)

	deleted, err := s.orders.Delete(ctx, kernel.NewUUID(), order.ID())
	s.Require().NoError(err)
	s.False(deleted)

	deleted, err = s.orders.Delete(ctx, runner, order.ID())
	s.Require().NoError(err)
	s.True(deleted)

	_, err = s.requests.Get(ctx, request.ID())
	s.Equal(errs.KindNotFound, errs.KindOf(err))
	_, err = s.subOrders.Get(ctx, subOrder.ID())
	s.Equal(errs.KindNotFound, errs.KindOf(err))

	deleted, err = s.orders.Delete(ctx, runner, order.ID())
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *RunnerOrderRepositoryTestSuite) TestRequest_DeletingSubOrderRemovesLink() {
	ctx := context.Background()
	order := s.newOrder(kernel.NewUUID())
	s.Require().NoError(s.orders.Add(ctx, order))
	shopper := kernel.NewUUID()
	request, subOrder := s.addRequest(order.ID(), shopper, workflow.RequestRequesting)

	deleted, err := s.subOrders.Delete(ctx, shopper, subOrder.ID())
	s.Require().NoError(err)
	s.True(deleted)

	_, err = s.requests.Get(ctx, request.ID())
	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *RunnerOrderRepositoryTestSuite) TestRequest_CompareAndSetStatus() {
	ctx := context.Background()
	order := s.newOrder(kernel.NewUUID())
	s.Require().NoError(s.orders.Add(ctx, order))
	request, _ := s.addRequest(order.ID(), kernel.NewUUID(), workflow.RequestRequesting)

	edge := workflow.RequestEdge{From: workflow.RequestRequesting, To: workflow.RequestMatched}
	s.Require().NoError(s.requests.CompareAndSetStatus(ctx, request.ID(), edge))

	err := s.requests.CompareAndSetStatus(ctx, request.ID(), edge)
	s.Equal(errs.KindInvalidStatusTransition, errs.KindOf(err))
}

func (s *RunnerOrderRepositoryTestSuite) TestRequest_RejectSiblingsFailsSubOrders() {
	ctx := context.Background()
	order := s.newOrder(kernel.NewUUID())
	s.Require().NoError(s.orders.Add(ctx, order))
	winner, winnerSub := s.addRequest(order.ID(), kernel.NewUUID(), workflow.RequestMatched)
	loser, loserSub := s.addRequest(order.ID(), kernel.NewUUID(), workflow.RequestRequesting)

	rejected, err := s.requests.RejectSiblings(ctx, order.ID(), winner.ID())

	s.Require().NoError(err)
	s.Equal(int64(1), rejected)

	loaded, err := s.requests.Get(ctx, loser.ID())
	s.Require().NoError(err)
	s.Equal(workflow.RequestMatchFail, loaded.Status())

	sub, err := s.subOrders.Get(ctx, loserSub.ID())
	s.Require().NoError(err)
	s.Equal(workflow.OrderMatchFail, sub.Status())

	sub, err = s.subOrders.Get(ctx, winnerSub.ID())
	s.Require().NoError(err)
	s.Equal(workflow.OrderRequesting, sub.Status())
}

func (s *RunnerOrderRepositoryTestSuite) TestRequest_HasMatch() {
	ctx := context.Background()
	order := s.newOrder(kernel.NewUUID())
	s.Require().NoError(s.orders.Add(ctx, order))
	s.addRequest(order.ID(), kernel.NewUUID(), workflow.RequestRequesting)
	s.addRequest(order.ID(), kernel.NewUUID(), workflow.RequestMatchFail)

	matched, err := s.requests.HasMatch(ctx, order.ID())
	s.Require().NoError(err)
	s.False(matched)

	s.addRequest(order.ID(), kernel.NewUUID(), workflow.RequestDelivered)

	matched, err = s.requests.HasMatch(ctx, order.ID())
	s.Require().NoError(err)
	s.True(matched)
}

func (s *RunnerOrderRepositoryTestSuite) TestRequest_DuplicateLiveRequest_Rejected() {
	ctx := context.Background()
	order := s.newOrder(kernel.NewUUID())
	s.Require().NoError(s.orders.Add(ctx, order))
	shopper := kernel.NewUUID()
	s.addRequest(order.ID(), shopper, workflow.RequestRequesting)

	subOrder := s.addSubOrder(shopper)
	duplicate, err := runnerorder.NewRequest(kernel.NewUUID(), order.ID(), shopper, subOrder.ID())
	s.Require().NoError(err)

	err = s.requests.Add(ctx, duplicate)

	s.Equal(errs.KindValidationFailed, errs.KindOf(err))
}

func (s *RunnerOrderRepositoryTestSuite) newOrder(runnerID kernel.UUID) *runnerorder.RunnerOrder {
	order, err := runnerorder.NewRunnerOrder(kernel.NewUUID(), runnerID, runnerorder.Details{
		Message:          "heading downtown at noon",
		EstimatedMinutes: 45,
		DistanceMeters:   800,
		Payments:         []string{"cash", "transfer"},
	})
	s.Require().NoError(err)
	return order
}

func (s *RunnerOrderRepositoryTestSuite) addSubOrder(shopperID kernel.UUID) *shopperorder.ShopperOrder {
	subOrder, err := shopperorder.NewSubOrder(kernel.NewUUID(), shopperID, shopperorder.Details{Title: "my list"}, nil, nil)
	s.Require().NoError(err)
	s.Require().NoError(s.subOrders.Add(context.Background(), subOrder))
	return subOrder
}

func (s *RunnerOrderRepositoryTestSuite) addRequest(
	orderID, shopperID kernel.UUID,
	status workflow.RequestStatus,
) (*runnerorder.Request, *shopperorder.ShopperOrder) {
	subOrder := s.addSubOrder(shopperID)

	now := time.Now().UTC()
	request, err := runnerorder.RestoreRequest(kernel.NewUUID(), orderID, shopperID, subOrder.ID(), status, now, now)
	s.Require().NoError(err)
	s.Require().NoError(s.requests.Add(context.Background(), request))
	return request, subOrder
}
