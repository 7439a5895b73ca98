package http

import (
	"errors"
	"net/http"

	"errands/internal/generated/servers"
	"errands/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidStatusTransition:
		return http.StatusConflict
	case errs.KindUnknownTargetStatus, errs.KindValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Storage failures are logged and reported
// without their cause.
func (s *Server) fail(ctx echo.Context, err error) error {
	kind := errs.KindOf(err)
	code := statusOf(kind)

	message := err.Error()
	if kind == errs.KindStorageError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = errs.ErrStorage.Error()
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Kind:    string(kind),
		Message: message,
	})
}

// HTTPErrorHandler renders errors that never reached a handler (bad path or
// query parameters, unknown routes) in the same Error shape.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message any = http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = he.Message
	}

	kind := errs.KindStorageError
	switch {
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
		kind = errs.KindNotFound
	case code >= 400 && code < 500:
		kind = errs.KindValidationFailed
	}

	text, ok := message.(string)
	if !ok {
		text = http.StatusText(code)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: code, Kind: string(kind), Message: text})
}
