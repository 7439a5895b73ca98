package cmd

import (
	"log/slog"

	httpin "errands/internal/adapters/in/http"
	"errands/internal/adapters/out/postgres"
	"errands/internal/core/application/usecases/commands"
	"errands/internal/core/application/usecases/queries"
	"errands/internal/jobs"
	"errands/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.New(),
		logger:     logger,
	}
}

func (c *CompositionRoot) shopperUoWFactory() commands.ShopperUoWFactory {
	return FuncShopperUoWFactory(func() commands.ShopperUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) runnerUoWFactory() commands.RunnerUoWFactory {
	return FuncRunnerUoWFactory(func() commands.RunnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateShopperHandlers() httpin.ShopperHandlers {
	createOrder := commands.NewCreateShopperOrderCommandHandler(c.shopperUoWFactory())
	deleteOrder := commands.NewDeleteShopperOrderCommandHandler(c.shopperUoWFactory())
	createRequest := commands.NewCreateShopperOrderRequestCommandHandler(c.shopperUoWFactory())
	deleteRequest := commands.NewDeleteShopperOrderRequestCommandHandler(c.shopperUoWFactory())
	transition := commands.NewTransitionShopperOrderRequestCommandHandler(c.shopperUoWFactory(), c.metrics)

	return httpin.ShopperHandlers{
		CreateOrder:      &createOrder,
		DeleteOrder:      &deleteOrder,
		CreateRequest:    &createRequest,
		DeleteRequest:    &deleteRequest,
		TransitionStatus: &transition,

		GetOrder:     queries.NewGetShopperOrderQueryHandler(c.gormDB),
		ListOrders:   queries.NewListShopperOrdersQueryHandler(c.gormDB),
		GetRequest:   queries.NewGetShopperOrderRequestQueryHandler(c.gormDB),
		ListRequests: queries.NewListShopperOrderRequestsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateRunnerHandlers() httpin.RunnerHandlers {
	createOrder := commands.NewCreateRunnerOrderCommandHandler(c.runnerUoWFactory())
	deleteOrder := commands.NewDeleteRunnerOrderCommandHandler(c.runnerUoWFactory())
	createRequest := commands.NewCreateRunnerOrderRequestCommandHandler(c.runnerUoWFactory())
	deleteRequest := commands.NewDeleteRunnerOrderRequestCommandHandler(c.runnerUoWFactory())
	transition := commands.NewTransitionRunnerOrderRequestCommandHandler(c.runnerUoWFactory(), c.metrics)

	return httpin.RunnerHandlers{
		CreateOrder:      &createOrder,
		DeleteOrder:      &deleteOrder,
		CreateRequest:    &createRequest,
		DeleteRequest:    &deleteRequest,
		TransitionStatus: &transition,

		GetOrder:     queries.NewGetRunnerOrderQueryHandler(c.gormDB),
		ListOrders:   queries.NewListRunnerOrdersQueryHandler(c.gormDB),
		GetRequest:   queries.NewGetRunnerOrderRequestQueryHandler(c.gormDB),
		ListRequests: queries.NewListRunnerOrderRequestsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateEcho() *echo.Echo {
	server := httpin.NewServer(c.CreateShopperHandlers(), c.CreateRunnerHandlers(), c.logger)
	return httpin.NewEcho(server, c.metrics.Handler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetStatusCountsQueryHandler(c.gormDB),
		c.metrics,
		c.config.MetricsRefreshSpec,
		c.logger,
	)
}

type FuncShopperUoWFactory func() commands.ShopperUoW

func (f FuncShopperUoWFactory) Create() commands.ShopperUoW {
	return f()
}

type FuncRunnerUoWFactory func() commands.RunnerUoW

func (f FuncRunnerUoWFactory) Create() commands.RunnerUoW {
	return f()
}
