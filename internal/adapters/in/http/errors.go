package http

import (
	"errors"
	"log/slog"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	partnersBusyMessage = "All delivery partners are busy. Please try again later."
	internalMessage     = "Internal server error"
)

// statusFor maps an application error to the HTTP status and the message shown to the caller.
// Errors without a mapping are internal; their text is logged but never returned.
func statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, commands.ErrNoPartnerAvailable),
		errors.Is(err, ports.ErrTransactionConflict):
		return http.StatusServiceUnavailable, partnersBusyMessage
	case errors.Is(err, menu.ErrInsufficientInventory),
		errors.Is(err, order.ErrStatusTransitionNotAllowed):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

// NewErrorHandler renders every error as {"success":false,"error":...}.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := statusFor(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", code,
				"error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Success: false, Error: msg})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "writing error response", "error", writeErr)
		}
	}
}
