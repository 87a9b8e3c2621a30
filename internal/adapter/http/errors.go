package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-prices-checker/internal/adapter/http/response"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
)

// NewErrorHandler returns an echo.HTTPErrorHandler that writes framework errors
// (unknown routes, wrong methods, oversized bodies) as response.ErrorDetail.
func NewErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
			_ = response.InternalServerError(c)
			return
		}

		var writeErr error
		switch he.Code {
		case http.StatusNotFound:
			writeErr = response.NotFound(c, response.MsgNotFound)
		case http.StatusMethodNotAllowed:
			writeErr = response.MethodNotAllowed(c)
		case http.StatusInternalServerError:
			writeErr = response.InternalServerError(c)
		default:
			writeErr = response.Status(c, he.Code, response.CodeInvalidRequest, http.StatusText(he.Code))
		}
		if writeErr != nil {
			log.Warn().Err(writeErr).Msg("write error response")
		}
	}
}
