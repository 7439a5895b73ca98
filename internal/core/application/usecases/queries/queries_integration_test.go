package queries_test

import (
	"context"
	"testing"
	"time"

	"errands/internal/adapters/out/postgres/pgtest"
	"errands/internal/adapters/out/postgres/runnerorderrepo"
	"errands/internal/adapters/out/postgres/shopperorderrepo"
	"errands/internal/core/application/usecases/queries"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	shopper kernel.UUID
	runner  kernel.UUID
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (s *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	s.container = container
	s.Require().NoError(err)
	s.db = db
}

func (s *QueriesIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *QueriesIntegrationTestSuite) SetupTest() {
	s.Require().NoError(pgtest.Truncate(s.db))

	s.shopper = kernel.NewUUID()
	s.runner = kernel.NewUUID()
	s.Require().NoError(pgtest.SeedUser(s.db, s.shopper, "shopper"))
	s.Require().NoError(pgtest.SeedUser(s.db, s.runner, "runner"))
}

func (s *QueriesIntegrationTestSuite) TestGetShopperOrder_WithChildrenAndLiveRequests() {
	order := s.saveShopperOrder(s.shopper, "weekly groceries")
	live := s.saveShopperRequest(order.ID(), s.runner, workflow.RequestRequesting)
	s.saveShopperRequest(order.ID(), kernel.NewUUID(), workflow.RequestMatchFail)

	query, err := queries.NewGetShopperOrderQuery(order.ID())
	s.Require().NoError(err)

	view, err := queries.NewGetShopperOrderQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(order.ID(), view.ID)
	s.Equal("weekly groceries", view.Title)
	s.Equal(workflow.OrderMatching, view.Status)
	s.Require().NotNil(view.Shopper)
	s.Equal("shopper", view.Shopper.Nickname)
	s.Require().Len(view.Items, 1)
	s.Equal("milk", view.Items[0].Name)
	s.Equal("2.50", view.Items[0].Price.String())
	s.Len(view.Images, 1)
	s.Require().Len(view.Requests, 1)
	s.Equal(live.ID(), view.Requests[0].ID)
	s.Require().NotNil(view.Requests[0].Runner)
	s.Equal("runner", view.Requests[0].Runner.Nickname)
}

func (s *QueriesIntegrationTestSuite) TestGetShopperOrder_Missing_ReturnsNotFound() {
	query, err := queries.NewGetShopperOrderQuery(kernel.NewUUID())
	s.Require().NoError(err)

	view, err := queries.NewGetShopperOrderQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().Error(err)
	s.Nil(view)
	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *QueriesIntegrationTestSuite) TestListShopperOrders_OrderingPagingAndHiddenSubOrders() {
	oldest := s.saveShopperOrder(s.shopper, "oldest")
	middle := s.saveShopperOrder(kernel.NewUUID(), "middle")
	newest := s.saveShopperOrder(s.shopper, "newest")
	s.saveSubOrder(s.shopper)

	base := time.Now().UTC().Add(-time.Hour)
	s.setUpdatedAt("shopper_orders", oldest.ID(), base)
	s.setUpdatedAt("shopper_orders", middle.ID(), base.Add(time.Minute))
	s.setUpdatedAt("shopper_orders", newest.ID(), base.Add(2*time.Minute))

	page, err := kernel.NewPage(0, 2)
	s.Require().NoError(err)
	query, err := queries.NewListShopperOrdersQuery(page, nil)
	s.Require().NoError(err)

	result, err := queries.NewListShopperOrdersQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(3), result.Total)
	s.Equal(2, result.Limit)
	s.Require().Len(result.Items, 2)
	s.Equal(newest.ID(), result.Items[0].ID)
	s.Equal(middle.ID(), result.Items[1].ID)

	owner := s.shopper
	query, err = queries.NewListShopperOrdersQuery(kernel.DefaultPage(), &owner)
	s.Require().NoError(err)

	result, err = queries.NewListShopperOrdersQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(2), result.Total)
	s.Equal(newest.ID(), result.Items[0].ID)
	s.Equal(oldest.ID(), result.Items[1].ID)
}

func (s *QueriesIntegrationTestSuite) TestListShopperOrders_EqualTimestamps_TiebreakByID() {
	first := s.saveShopperOrder(s.shopper, "a")
	second := s.saveShopperOrder(s.shopper, "b")

	at := time.Now().UTC().Truncate(time.Second)
	s.setUpdatedAt("shopper_orders", first.ID(), at)
	s.setUpdatedAt("shopper_orders", second.ID(), at)

	query, err := queries.NewListShopperOrdersQuery(kernel.DefaultPage(), nil)
	s.Require().NoError(err)

	result, err := queries.NewListShopperOrdersQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result.Items, 2)
	higher, lower := first.ID(), second.ID()
	if higher.String() < lower.String() {
		higher, lower = lower, higher
	}
	s.Equal(higher, result.Items[0].ID)
	s.Equal(lower, result.Items[1].ID)
}

func (s *QueriesIntegrationTestSuite) TestListShopperOrderRequests_DefaultAndExplicitStatus() {
	order := s.saveShopperOrder(s.shopper, "groceries")
	first := s.saveShopperRequest(order.ID(), s.runner, workflow.RequestRequesting)
	second := s.saveShopperRequest(order.ID(), kernel.NewUUID(), workflow.RequestRequesting)
	failed := s.saveShopperRequest(order.ID(), kernel.NewUUID(), workflow.RequestMatchFail)

	base := time.Now().UTC().Add(-time.Hour)
	s.setCreatedAt("shopper_order_requests", first.ID(), base)
	s.setCreatedAt("shopper_order_requests", second.ID(), base.Add(time.Minute))

	query, err := queries.NewListShopperOrderRequestsQuery(order.ID(), kernel.DefaultPage(), "")
	s.Require().NoError(err)

	result, err := queries.NewListShopperOrderRequestsQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(2), result.Total)
	s.Require().Len(result.Items, 2)
	s.Equal(second.ID(), result.Items[0].ID)
	s.Equal(first.ID(), result.Items[1].ID)
	s.Require().NotNil(result.Items[1].Runner)
	s.Equal("runner", result.Items[1].Runner.Nickname)

	query, err = queries.NewListShopperOrderRequestsQuery(order.ID(), kernel.DefaultPage(), "MATCH_FAIL")
	s.Require().NoError(err)

	result, err = queries.NewListShopperOrderRequestsQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(1), result.Total)
	s.Equal(failed.ID(), result.Items[0].ID)
}

func (s *QueriesIntegrationTestSuite) TestListShopperOrderRequests_UnknownOrder_ReturnsEmptyPage() {
	query, err := queries.NewListShopperOrderRequestsQuery(kernel.NewUUID(), kernel.DefaultPage(), "")
	s.Require().NoError(err)

	result, err := queries.NewListShopperOrderRequestsQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Zero(result.Total)
	s.Empty(result.Items)
}

func (s *QueriesIntegrationTestSuite) TestListShopperOrderRequestsByRunner_IncludesOrders() {
	order := s.saveShopperOrder(s.shopper, "groceries")
	other := s.saveShopperOrder(s.shopper, "pharmacy")
	mine := s.saveShopperRequest(order.ID(), s.runner, workflow.RequestRequesting)
	s.saveShopperRequest(other.ID(), kernel.NewUUID(), workflow.RequestRequesting)

	query, err := queries.NewListShopperOrderRequestsByRunnerQuery(s.runner, kernel.DefaultPage(), "")
	s.Require().NoError(err)

	result, err := queries.NewListShopperOrderRequestsQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(1), result.Total)
	s.Require().Len(result.Items, 1)
	s.Equal(mine.ID(), result.Items[0].ID)
	s.Require().NotNil(result.Items[0].Order)
	s.Equal("groceries", result.Items[0].Order.Title)
	s.Require().NotNil(result.Items[0].Order.Shopper)
	s.Equal("shopper", result.Items[0].Order.Shopper.Nickname)
}

func (s *QueriesIntegrationTestSuite) TestGetShopperOrderRequest() {
	order := s.saveShopperOrder(s.shopper, "groceries")
	request := s.saveShopperRequest(order.ID(), s.runner, workflow.RequestMatched)

	query, err := queries.NewGetShopperOrderRequestQuery(request.ID())
	s.Require().NoError(err)

	view, err := queries.NewGetShopperOrderRequestQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(workflow.RequestMatched, view.Status)
	s.Require().NotNil(view.Order)
	s.Equal(order.ID(), view.Order.ID)
	s.Len(view.Order.Items, 1)

	query, err = queries.NewGetShopperOrderRequestQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = queries.NewGetShopperOrderRequestQueryHandler(s.db).Handle(context.Background(), query)

	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *QueriesIntegrationTestSuite) TestGetRunnerOrder_WithRequestsAndSubOrders() {
	order := s.saveRunnerOrder(s.runner)
	request, subOrder := s.saveRunnerRequest(order.ID(), s.shopper, workflow.RequestRequesting)
	s.saveRunnerRequest(order.ID(), kernel.NewUUID(), workflow.RequestMatchFail)

	query, err := queries.NewGetRunnerOrderQuery(order.ID())
	s.Require().NoError(err)

	view, err := queries.NewGetRunnerOrderQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(order.ID(), view.ID)
	s.Equal([]string{"CASH", "CARD"}, view.Payments)
	s.Equal(1500, view.DistanceMeters)
	s.Require().NotNil(view.Runner)
	s.Equal("runner", view.Runner.Nickname)
	s.Require().Len(view.Requests, 1)
	s.Equal(request.ID(), view.Requests[0].ID)
	s.Require().NotNil(view.Requests[0].SubOrder)
	s.Equal(subOrder.ID(), view.Requests[0].SubOrder.ID)
	s.Equal(workflow.OrderRequesting, view.Requests[0].SubOrder.Status)
	s.Len(view.Requests[0].SubOrder.Items, 1)
	s.Require().Len(view.Requests[0].SubOrder.Images, 1)
	s.Equal("/uploads/list.jpg", view.Requests[0].SubOrder.Images[0].Path)
}

func (s *QueriesIntegrationTestSuite) TestListRunnerOrders_OwnerFilter() {
	mine := s.saveRunnerOrder(s.runner)
	s.saveRunnerOrder(kernel.NewUUID())

	query, err := queries.NewListRunnerOrdersQuery(kernel.DefaultPage(), nil)
	s.Require().NoError(err)

	result, err := queries.NewListRunnerOrdersQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(2), result.Total)

	owner := s.runner
	query, err = queries.NewListRunnerOrdersQuery(kernel.DefaultPage(), &owner)
	s.Require().NoError(err)

	result, err = queries.NewListRunnerOrdersQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(1), result.Total)
	s.Equal(mine.ID(), result.Items[0].ID)
}

func (s *QueriesIntegrationTestSuite) TestListRunnerOrderRequests_ByOrderAndByShopper() {
	order := s.saveRunnerOrder(s.runner)
	mine, _ := s.saveRunnerRequest(order.ID(), s.shopper, workflow.RequestMatched)
	s.saveRunnerRequest(order.ID(), kernel.NewUUID(), workflow.RequestMatchFail)

	query, err := queries.NewListRunnerOrderRequestsQuery(order.ID(), kernel.DefaultPage(), "")
	s.Require().NoError(err)

	result, err := queries.NewListRunnerOrderRequestsQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(1), result.Total)
	s.Equal(mine.ID(), result.Items[0].ID)
	s.Require().NotNil(result.Items[0].SubOrder)
	s.Len(result.Items[0].SubOrder.Items, 1)
	s.Len(result.Items[0].SubOrder.Images, 1)
	s.Nil(result.Items[0].Order)

	query, err = queries.NewListRunnerOrderRequestsByShopperQuery(s.shopper, kernel.DefaultPage(), "MATCHED")
	s.Require().NoError(err)

	result, err = queries.NewListRunnerOrderRequestsQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(int64(1), result.Total)
	s.Require().NotNil(result.Items[0].Order)
	s.Equal(order.ID(), result.Items[0].Order.ID)
	s.Require().NotNil(result.Items[0].Order.Runner)
	s.Equal("runner", result.Items[0].Order.Runner.Nickname)
}

func (s *QueriesIntegrationTestSuite) TestGetRunnerOrderRequest_Missing_ReturnsNotFound() {
	query, err := queries.NewGetRunnerOrderRequestQuery(kernel.NewUUID())
	s.Require().NoError(err)

	view, err := queries.NewGetRunnerOrderRequestQueryHandler(s.db).Handle(context.Background(), query)

	s.Nil(view)
	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *QueriesIntegrationTestSuite) TestGetStatusCounts() {
	order := s.saveShopperOrder(s.shopper, "groceries")
	s.saveShopperRequest(order.ID(), s.runner, workflow.RequestRequesting)
	s.saveShopperRequest(order.ID(), kernel.NewUUID(), workflow.RequestMatchFail)
	runnerOrder := s.saveRunnerOrder(s.runner)
	s.saveRunnerRequest(runnerOrder.ID(), s.shopper, workflow.RequestRequesting)

	counts, err := queries.NewGetStatusCountsQueryHandler(s.db).Handle(context.Background(), queries.NewGetStatusCountsQuery())

	s.Require().NoError(err)
	s.Equal(int64(1), counts.ShopperOrders["MATCHING"])
	s.Equal(int64(1), counts.ShopperOrders["REQUESTING"])
	s.Equal(int64(1), counts.ShopperRequests["REQUESTING"])
	s.Equal(int64(1), counts.ShopperRequests["MATCH_FAIL"])
	s.Equal(int64(1), counts.RunnerRequests["REQUESTING"])
	s.NotContains(counts.RunnerRequests, "MATCHED")
}

func (s *QueriesIntegrationTestSuite) saveShopperOrder(shopperID kernel.UUID, title string) *shopperorder.ShopperOrder {
	order, err := shopperorder.NewShopperOrder(kernel.NewUUID(), shopperID, shopperorder.Details{Title: title},
		s.items(), s.images())
	s.Require().NoError(err)
	s.Require().NoError(shopperorderrepo.NewGormShopperOrderRepository(s.db).Add(context.Background(), order))
	return order
}

func (s *QueriesIntegrationTestSuite) saveSubOrder(shopperID kernel.UUID) *shopperorder.ShopperOrder {
	order, err := shopperorder.NewSubOrder(kernel.NewUUID(), shopperID, shopperorder.Details{Title: "sub-order"},
		s.items(), s.images())
	s.Require().NoError(err)
	s.Require().NoError(shopperorderrepo.NewGormShopperOrderRepository(s.db).Add(context.Background(), order))
	return order
}

func (s *QueriesIntegrationTestSuite) saveShopperRequest(
	orderID, runnerID kernel.UUID,
	status workflow.RequestStatus,
) *shopperorder.Request {
	now := time.Now().UTC()
	request, err := shopperorder.RestoreRequest(kernel.NewUUID(), orderID, runnerID, status, now, now)
	s.Require().NoError(err)
	s.Require().NoError(shopperorderrepo.NewGormShopperOrderRequestRepository(s.db).Add(context.Background(), request))
	return request
}

func (s *QueriesIntegrationTestSuite) saveRunnerOrder(runnerID kernel.UUID) *runnerorder.RunnerOrder {
	order, err := runnerorder.NewRunnerOrder(kernel.NewUUID(), runnerID, runnerorder.Details{
		Message:        "free this afternoon",
		DistanceMeters: 1500,
		Payments:       []string{"cash", "card"},
	})
	s.Require().NoError(err)
	s.Require().NoError(runnerorderrepo.NewGormRunnerOrderRepository(s.db).Add(context.Background(), order))
	return order
}

func (s *QueriesIntegrationTestSuite) saveRunnerRequest(
	orderID, shopperID kernel.UUID,
	status workflow.RequestStatus,
) (*runnerorder.Request, *shopperorder.ShopperOrder) {
	subOrder := s.saveSubOrder(shopperID)

	now := time.Now().UTC()
	request, err := runnerorder.RestoreRequest(kernel.NewUUID(), orderID, shopperID, subOrder.ID(), status, now, now)
	s.Require().NoError(err)
	s.Require().NoError(runnerorderrepo.NewGormRunnerOrderRequestRepository(s.db).Add(context.Background(), request))
	return request, subOrder
}

func (s *QueriesIntegrationTestSuite) items() []*shopperorder.Item {
	price, err := kernel.MoneyFromString("2.50")
	s.Require().NoError(err)
	item, err := shopperorder.NewItem(kernel.NewUUID(), "milk", 2, price)
	s.Require().NoError(err)
	return []*shopperorder.Item{item}
}

func (s *QueriesIntegrationTestSuite) images() []*shopperorder.Image {
	image, err := shopperorder.NewImage(kernel.NewUUID(), "list.jpg", 2048, "/uploads/list.jpg")
	s.Require().NoError(err)
	return []*shopperorder.Image{image}
}

func (s *QueriesIntegrationTestSuite) setUpdatedAt(table string, id kernel.UUID, at time.Time) {
	s.Require().NoError(s.db.Table(table).Where("order_id = ?", id.Bytes()).Update("updated_at", at).Error)
}

func (s *QueriesIntegrationTestSuite) setCreatedAt(table string, id kernel.UUID, at time.Time) {
	s.Require().NoError(s.db.Table(table).Where("request_id = ?", id.Bytes()).Update("created_at", at).Error)
}
