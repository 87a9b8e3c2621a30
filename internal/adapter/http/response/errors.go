package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func writeError(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Status writes an error body for any status without a dedicated writer.
func Status(c echo.Context, status int, code, message string) error {
	return writeError(c, status, code, message, nil)
}

// BadRequest writes a 400 with a caller-supplied message.
func BadRequest(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
// When field is non-empty it is also reported in Details.
func ValidationErrorWithMessage(c echo.Context, field, message string) error {
	var details map[string]string
	if field != "" {
		details = map[string]string{field: message}
	}
	return writeError(c, http.StatusBadRequest, CodeValidationError, message, details)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return writeError(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// SessionNotFound writes a 404 Not Found response for unknown or expired sessions.
func SessionNotFound(c echo.Context) error {
	return writeError(c, http.StatusNotFound, CodeSessionNotFound, MsgSessionNotFound, nil)
}

// MethodNotAllowed writes a 405 Method Not Allowed response.
func MethodNotAllowed(c echo.Context) error {
	return writeError(c, http.StatusMethodNotAllowed, CodeMethodNotAllowed, MsgMethodNotAllowed, nil)
}

// Conflict writes a 409 Conflict response for operations not allowed on the current screen.
func Conflict(c echo.Context, message string) error {
	return writeError(c, http.StatusConflict, CodeInvalidTransition, message, nil)
}

// BadGateway writes a 502 Bad Gateway response for pricing service failures.
func BadGateway(c echo.Context, message string) error {
	return writeError(c, http.StatusBadGateway, CodeUpstreamError, message, nil)
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgNotAuthenticated, nil)
}

// ServiceUnavailableWithMessage writes a 503 Service Unavailable response with a custom message.
func ServiceUnavailableWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, message, nil)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}

// InternalServerErrorWithMessage writes a 500 Internal Server Error response with a custom message.
func InternalServerErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, message, nil)
}
