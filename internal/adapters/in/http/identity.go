package http

import (
	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// UserIDHeader carries the authenticated caller, set by the gateway in front
// of the service.
const UserIDHeader = "X-User-ID"

func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(UserIDHeader)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(UserIDHeader, err)
	}
	return id, nil
}

func fromWire(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
