package http

import (
	"context"
	"log/slog"

	"errands/internal/core/application/usecases/commands"
	"errands/internal/core/application/usecases/queries"
	"errands/internal/generated/servers"
)

// CommandHandler is satisfied by the create and transition command handlers.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// DeleteHandler is satisfied by the delete command handlers.
type DeleteHandler[C any] interface {
	Handle(ctx context.Context, cmd C) (bool, error)
}

// QueryHandler is satisfied by every query handler.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// ShopperHandlers groups the use cases of the shopper orientation.
type ShopperHandlers struct {
	CreateOrder      CommandHandler[commands.CreateShopperOrderCommand]
	DeleteOrder      DeleteHandler[commands.DeleteShopperOrderCommand]
	CreateRequest    CommandHandler[commands.CreateShopperOrderRequestCommand]
	DeleteRequest    DeleteHandler[commands.DeleteShopperOrderRequestCommand]
	TransitionStatus CommandHandler[commands.TransitionShopperOrderRequestCommand]

	GetOrder     QueryHandler[queries.GetShopperOrderQuery, *queries.ShopperOrderView]
	ListOrders   QueryHandler[queries.ListShopperOrdersQuery, queries.Page[queries.ShopperOrderView]]
	GetRequest   QueryHandler[queries.GetShopperOrderRequestQuery, *queries.ShopperOrderRequestView]
	ListRequests QueryHandler[queries.ListShopperOrderRequestsQuery, queries.Page[queries.ShopperOrderRequestView]]
}

// RunnerHandlers groups the use cases of the runner orientation.
type RunnerHandlers struct {
	CreateOrder      CommandHandler[commands.CreateRunnerOrderCommand]
	DeleteOrder      DeleteHandler[commands.DeleteRunnerOrderCommand]
	CreateRequest    CommandHandler[commands.CreateRunnerOrderRequestCommand]
	DeleteRequest    DeleteHandler[commands.DeleteRunnerOrderRequestCommand]
	TransitionStatus CommandHandler[commands.TransitionRunnerOrderRequestCommand]

	GetOrder     QueryHandler[queries.GetRunnerOrderQuery, *queries.RunnerOrderView]
	ListOrders   QueryHandler[queries.ListRunnerOrdersQuery, queries.Page[queries.RunnerOrderView]]
	GetRequest   QueryHandler[queries.GetRunnerOrderRequestQuery, *queries.RunnerOrderRequestView]
	ListRequests QueryHandler[queries.ListRunnerOrderRequestsQuery, queries.Page[queries.RunnerOrderRequestView]]
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	shopper ShopperHandlers
	runner  RunnerHandlers
	logger  *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(shopper ShopperHandlers, runner RunnerHandlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		shopper: shopper,
		runner:  runner,
		logger:  logger.With("component", "http"),
	}
}
