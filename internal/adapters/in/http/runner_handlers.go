package http

import (
	"net/http"

	"errands/internal/core/application/usecases/commands"
	"errands/internal/core/application/usecases/queries"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/generated/servers"
	"errands/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListRunnerOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	page, err := pageOf(params.Offset, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	var owner *kernel.UUID
	if deref(params.Mine) {
		me, idErr := callerID(ctx)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		owner = &me
	}

	query, err := queries.NewListRunnerOrdersQuery(page, owner)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.runner.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.RunnerOrderPage{
		Total:  result.Total,
		Offset: result.Offset,
		Limit:  result.Limit,
		Items:  make([]servers.RunnerOrder, 0, len(result.Items)),
	}
	for i := range result.Items {
		response.Items = append(response.Items, *toRunnerOrder(&result.Items[i]))
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) CreateRunnerOrder(ctx echo.Context) error {
	runnerID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewRunnerOrder
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", bindErr))
	}

	details, err := runnerDetails(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateRunnerOrderCommand(orderID, runnerID, details)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.runner.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondRunnerOrder(ctx, http.StatusCreated, orderID)
}

func (s *Server) GetRunnerOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := fromWire(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRunnerOrder(ctx, http.StatusOK, id)
}

func (s *Server) respondRunnerOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetRunnerOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.runner.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(code, toRunnerOrder(view))
}

func (s *Server) DeleteRunnerOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actorID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromWire(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteRunnerOrderCommand(actorID, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	deleted, err := s.runner.DeleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Deleted{Deleted: deleted})
}

func (s *Server) ListRunnerOrderRequests(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.ListRequestsParams,
) error {
	id, err := fromWire(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	page, err := pageOf(params.Offset, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListRunnerOrderRequestsQuery(id, page, deref(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRunnerOrderRequests(ctx, query)
}

func (s *Server) ListMyRunnerOrderRequests(ctx echo.Context, params servers.ListRequestsParams) error {
	shopperID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	page, err := pageOf(params.Offset, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListRunnerOrderRequestsByShopperQuery(shopperID, page, deref(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRunnerOrderRequests(ctx, query)
}

func (s *Server) respondRunnerOrderRequests(ctx echo.Context, query queries.ListRunnerOrderRequestsQuery) error {
	result, err := s.runner.ListRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.RunnerOrderRequestPage{
		Total:  result.Total,
		Offset: result.Offset,
		Limit:  result.Limit,
		Items:  make([]servers.RunnerOrderRequest, 0, len(result.Items)),
	}
	for i := range result.Items {
		response.Items = append(response.Items, *toRunnerOrderRequest(&result.Items[i]))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRunnerOrderRequest stores the caller's shopping list as a sub-order
// and files it against the runner order.
func (s *Server) CreateRunnerOrderRequest(ctx echo.Context, orderId openapi_types.UUID) error {
	shopperID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromWire(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewRunnerOrderRequest
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", bindErr))
	}

	details, items, images, err := shoppingList(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRunnerOrderRequestCommand(
		requestID, kernel.NewUUID(), id, shopperID, details, items, images,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.runner.CreateRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondRunnerOrderRequest(ctx, http.StatusCreated, requestID)
}

func (s *Server) GetRunnerOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := fromWire(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRunnerOrderRequest(ctx, http.StatusOK, id)
}

func (s *Server) respondRunnerOrderRequest(ctx echo.Context, code int, requestID kernel.UUID) error {
	query, err := queries.NewGetRunnerOrderRequestQuery(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.runner.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(code, toRunnerOrderRequest(view))
}

func (s *Server) DeleteRunnerOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	actorID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromWire(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteRunnerOrderRequestCommand(actorID, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	deleted, err := s.runner.DeleteRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Deleted{Deleted: deleted})
}

func (s *Server) ChangeRunnerOrderRequestStatus(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := fromWire(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.StatusChange
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", bindErr))
	}

	cmd, err := commands.NewTransitionRunnerOrderRequestCommand(id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.runner.TransitionStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
