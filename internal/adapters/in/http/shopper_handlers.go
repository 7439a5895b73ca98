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

// ListShopperOrders handles GET /api/v1/shopper-orders.
func (s *Server) ListShopperOrders(ctx echo.Context, params servers.ListOrdersParams) error {
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

	query, err := queries.NewListShopperOrdersQuery(page, owner)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.shopper.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.ShopperOrderPage{
		Total:  result.Total,
		Offset: result.Offset,
		Limit:  result.Limit,
		Items:  make([]servers.ShopperOrder, 0, len(result.Items)),
	}
	for i := range result.Items {
		response.Items = append(response.Items, *toShopperOrder(&result.Items[i]))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShopperOrder handles POST /api/v1/shopper-orders and answers with the
// stored order.
func (s *Server) CreateShopperOrder(ctx echo.Context) error {
	shopperID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewShopperOrder
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", bindErr))
	}

	details, items, images, err := shoppingList(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateShopperOrderCommand(orderID, shopperID, details, items, images)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.shopper.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondShopperOrder(ctx, http.StatusCreated, orderID)
}

// GetShopperOrder handles GET /api/v1/shopper-orders/{orderId}.
func (s *Server) GetShopperOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := fromWire(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondShopperOrder(ctx, http.StatusOK, id)
}

func (s *Server) respondShopperOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetShopperOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.shopper.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(code, toShopperOrder(view))
}

// DeleteShopperOrder handles DELETE /api/v1/shopper-orders/{orderId}. Only the
// owner can delete; any other caller gets {"deleted": false}.
func (s *Server) DeleteShopperOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actorID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromWire(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShopperOrderCommand(actorID, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	deleted, err := s.shopper.DeleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Deleted{Deleted: deleted})
}

// ListShopperOrderRequests handles GET /api/v1/shopper-orders/{orderId}/requests.
func (s *Server) ListShopperOrderRequests(
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

	query, err := queries.NewListShopperOrderRequestsQuery(id, page, deref(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondShopperOrderRequests(ctx, query)
}

// ListMyShopperOrderRequests handles GET /api/v1/runners/me/shopper-order-requests.
func (s *Server) ListMyShopperOrderRequests(ctx echo.Context, params servers.ListRequestsParams) error {
	runnerID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	page, err := pageOf(params.Offset, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListShopperOrderRequestsByRunnerQuery(runnerID, page, deref(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondShopperOrderRequests(ctx, query)
}

func (s *Server) respondShopperOrderRequests(ctx echo.Context, query queries.ListShopperOrderRequestsQuery) error {
	result, err := s.shopper.ListRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.ShopperOrderRequestPage{
		Total:  result.Total,
		Offset: result.Offset,
		Limit:  result.Limit,
		Items:  make([]servers.ShopperOrderRequest, 0, len(result.Items)),
	}
	for i := range result.Items {
		response.Items = append(response.Items, *toShopperOrderRequest(&result.Items[i]))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShopperOrderRequest handles POST /api/v1/shopper-orders/{orderId}/requests:
// the calling runner asks to take the order.
func (s *Server) CreateShopperOrderRequest(ctx echo.Context, orderId openapi_types.UUID) error {
	runnerID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromWire(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateShopperOrderRequestCommand(requestID, id, runnerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.shopper.CreateRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondShopperOrderRequest(ctx, http.StatusCreated, requestID)
}

// GetShopperOrderRequest handles GET /api/v1/shopper-order-requests/{requestId}.
func (s *Server) GetShopperOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := fromWire(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondShopperOrderRequest(ctx, http.StatusOK, id)
}

func (s *Server) respondShopperOrderRequest(ctx echo.Context, code int, requestID kernel.UUID) error {
	query, err := queries.NewGetShopperOrderRequestQuery(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.shopper.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(code, toShopperOrderRequest(view))
}

// DeleteShopperOrderRequest handles DELETE /api/v1/shopper-order-requests/{requestId}.
func (s *Server) DeleteShopperOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	actorID, err := callerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromWire(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShopperOrderRequestCommand(actorID, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	deleted, err := s.shopper.DeleteRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Deleted{Deleted: deleted})
}

// ChangeShopperOrderRequestStatus handles
// PATCH /api/v1/shopper-order-requests/{requestId}/status.
func (s *Server) ChangeShopperOrderRequestStatus(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := fromWire(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.StatusChange
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", bindErr))
	}

	cmd, err := commands.NewTransitionShopperOrderRequestCommand(id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.shopper.TransitionStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
