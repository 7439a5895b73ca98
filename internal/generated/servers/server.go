// Package servers holds the HTTP contract of the errands API: wire types,
// parameter binding and route registration. It follows the layout of an
// oapi-codegen echo server so handlers only implement ServerInterface.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/shopper-orders)
	ListShopperOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/shopper-orders)
	CreateShopperOrder(ctx echo.Context) error
	// (GET /api/v1/shopper-orders/{orderId})
	GetShopperOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (DELETE /api/v1/shopper-orders/{orderId})
	DeleteShopperOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/shopper-orders/{orderId}/requests)
	ListShopperOrderRequests(ctx echo.Context, orderId openapi_types.UUID, params ListRequestsParams) error
	// (POST /api/v1/shopper-orders/{orderId}/requests)
	CreateShopperOrderRequest(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/shopper-order-requests/{requestId})
	GetShopperOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error
	// (DELETE /api/v1/shopper-order-requests/{requestId})
	DeleteShopperOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error
	// (PATCH /api/v1/shopper-order-requests/{requestId}/status)
	ChangeShopperOrderRequestStatus(ctx echo.Context, requestId openapi_types.UUID) error
	// (GET /api/v1/runners/me/shopper-order-requests)
	ListMyShopperOrderRequests(ctx echo.Context, params ListRequestsParams) error

	// (GET /api/v1/runner-orders)
	ListRunnerOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/runner-orders)
	CreateRunnerOrder(ctx echo.Context) error
	// (GET /api/v1/runner-orders/{orderId})
	GetRunnerOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (DELETE /api/v1/runner-orders/{orderId})
	DeleteRunnerOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/runner-orders/{orderId}/requests)
	ListRunnerOrderRequests(ctx echo.Context, orderId openapi_types.UUID, params ListRequestsParams) error
	// (POST /api/v1/runner-orders/{orderId}/requests)
	CreateRunnerOrderRequest(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/runner-order-requests/{requestId})
	GetRunnerOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error
	// (DELETE /api/v1/runner-order-requests/{requestId})
	DeleteRunnerOrderRequest(ctx echo.Context, requestId openapi_types.UUID) error
	// (PATCH /api/v1/runner-order-requests/{requestId}/status)
	ChangeRunnerOrderRequestStatus(ctx echo.Context, requestId openapi_types.UUID) error
	// (GET /api/v1/shoppers/me/runner-order-requests)
	ListMyRunnerOrderRequests(ctx echo.Context, params ListRequestsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListShopperOrders(ctx echo.Context) error {
	params, err := bindListOrdersParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListShopperOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateShopperOrder(ctx echo.Context) error {
	return w.Handler.CreateShopperOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetShopperOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetShopperOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) DeleteShopperOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteShopperOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ListShopperOrderRequests(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	params, err := bindListRequestsParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListShopperOrderRequests(ctx, orderId, params)
}

func (w *ServerInterfaceWrapper) CreateShopperOrderRequest(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CreateShopperOrderRequest(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetShopperOrderRequest(ctx echo.Context) error {
	requestId, err := bindPathUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.GetShopperOrderRequest(ctx, requestId)
}

func (w *ServerInterfaceWrapper) DeleteShopperOrderRequest(ctx echo.Context) error {
	requestId, err := bindPathUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteShopperOrderRequest(ctx, requestId)
}

func (w *ServerInterfaceWrapper) ChangeShopperOrderRequestStatus(ctx echo.Context) error {
	requestId, err := bindPathUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeShopperOrderRequestStatus(ctx, requestId)
}

func (w *ServerInterfaceWrapper) ListMyShopperOrderRequests(ctx echo.Context) error {
	params, err := bindListRequestsParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListMyShopperOrderRequests(ctx, params)
}

func (w *ServerInterfaceWrapper) ListRunnerOrders(ctx echo.Context) error {
	params, err := bindListOrdersParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListRunnerOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateRunnerOrder(ctx echo.Context) error {
	return w.Handler.CreateRunnerOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetRunnerOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetRunnerOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) DeleteRunnerOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteRunnerOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ListRunnerOrderRequests(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	params, err := bindListRequestsParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListRunnerOrderRequests(ctx, orderId, params)
}

func (w *ServerInterfaceWrapper) CreateRunnerOrderRequest(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CreateRunnerOrderRequest(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetRunnerOrderRequest(ctx echo.Context) error {
	requestId, err := bindPathUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.GetRunnerOrderRequest(ctx, requestId)
}

func (w *ServerInterfaceWrapper) DeleteRunnerOrderRequest(ctx echo.Context) error {
	requestId, err := bindPathUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteRunnerOrderRequest(ctx, requestId)
}

func (w *ServerInterfaceWrapper) ChangeRunnerOrderRequestStatus(ctx echo.Context) error {
	requestId, err := bindPathUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeRunnerOrderRequestStatus(ctx, requestId)
}

func (w *ServerInterfaceWrapper) ListMyRunnerOrderRequests(ctx echo.Context) error {
	params, err := bindListRequestsParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListMyRunnerOrderRequests(ctx, params)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindListOrdersParams(ctx echo.Context) (ListOrdersParams, error) {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "mine", ctx.QueryParams(), &params.Mine); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter mine: %s", err))
	}

	return params, nil
}

func bindListRequestsParams(ctx echo.Context) (ListRequestsParams, error) {
	var params ListRequestsParams

	if err := runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return params, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/shopper-orders", wrapper.ListShopperOrders)
	router.POST(baseURL+"/api/v1/shopper-orders", wrapper.CreateShopperOrder)
	router.GET(baseURL+"/api/v1/shopper-orders/:orderId", wrapper.GetShopperOrder)
	router.DELETE(baseURL+"/api/v1/shopper-orders/:orderId", wrapper.DeleteShopperOrder)
	router.GET(baseURL+"/api/v1/shopper-orders/:orderId/requests", wrapper.ListShopperOrderRequests)
	router.POST(baseURL+"/api/v1/shopper-orders/:orderId/requests", wrapper.CreateShopperOrderRequest)
	router.GET(baseURL+"/api/v1/shopper-order-requests/:requestId", wrapper.GetShopperOrderRequest)
	router.DELETE(baseURL+"/api/v1/shopper-order-requests/:requestId", wrapper.DeleteShopperOrderRequest)
	router.PATCH(baseURL+"/api/v1/shopper-order-requests/:requestId/status", wrapper.ChangeShopperOrderRequestStatus)
	router.GET(baseURL+"/api/v1/runners/me/shopper-order-requests", wrapper.ListMyShopperOrderRequests)

	router.GET(baseURL+"/api/v1/runner-orders", wrapper.ListRunnerOrders)
	router.POST(baseURL+"/api/v1/runner-orders", wrapper.CreateRunnerOrder)
	router.GET(baseURL+"/api/v1/runner-orders/:orderId", wrapper.GetRunnerOrder)
	router.DELETE(baseURL+"/api/v1/runner-orders/:orderId", wrapper.DeleteRunnerOrder)
	router.GET(baseURL+"/api/v1/runner-orders/:orderId/requests", wrapper.ListRunnerOrderRequests)
	router.POST(baseURL+"/api/v1/runner-orders/:orderId/requests", wrapper.CreateRunnerOrderRequest)
	router.GET(baseURL+"/api/v1/runner-order-requests/:requestId", wrapper.GetRunnerOrderRequest)
	router.DELETE(baseURL+"/api/v1/runner-order-requests/:requestId", wrapper.DeleteRunnerOrderRequest)
	router.PATCH(baseURL+"/api/v1/runner-order-requests/:requestId/status", wrapper.ChangeRunnerOrderRequestStatus)
	router.GET(baseURL+"/api/v1/shoppers/me/runner-order-requests", wrapper.ListMyRunnerOrderRequests)
}
