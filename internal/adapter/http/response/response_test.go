package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestErrorWriters(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"bad request", func(c echo.Context) error { return BadRequest(c, "Invalid input") }, http.StatusBadRequest, CodeInvalidRequest, "Invalid input"},
		{"invalid body", InvalidRequestBody, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody},
		{"not found", func(c echo.Context) error { return NotFound(c, "no such route") }, http.StatusNotFound, CodeNotFound, "no such route"},
		{"session not found", SessionNotFound, http.StatusNotFound, CodeSessionNotFound, MsgSessionNotFound},
		{"method not allowed", MethodNotAllowed, http.StatusMethodNotAllowed, CodeMethodNotAllowed, MsgMethodNotAllowed},
		{"conflict", func(c echo.Context) error { return Conflict(c, "run a search first") }, http.StatusConflict, CodeInvalidTransition, "run a search first"},
		{"bad gateway", func(c echo.Context) error { return BadGateway(c, "Error 500: boom") }, http.StatusBadGateway, CodeUpstreamError, "Error 500: boom"},
		{"service unavailable", ServiceUnavailable, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgNotAuthenticated},
		{"service unavailable message", func(c echo.Context) error { return ServiceUnavailableWithMessage(c, "warming up") }, http.StatusServiceUnavailable, CodeServiceUnavailable, "warming up"},
		{"gateway timeout", GatewayTimeout, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout},
		{"request cancelled", RequestCancelled, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled},
		{"status", func(c echo.Context) error { return Status(c, http.StatusTooManyRequests, CodeInvalidRequest, "slow down") }, http.StatusTooManyRequests, CodeInvalidRequest, "slow down"},
		{"internal error", InternalServerError, http.StatusInternalServerError, CodeInternalError, MsgInternalError},
		{"internal error message", func(c echo.Context) error { return InternalServerErrorWithMessage(c, "oops") }, http.StatusInternalServerError, CodeInternalError, "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "/api/v1/sessions/s-1", rec.Header().Get(echo.HeaderLocation))
			}

			var result ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMsg, result.Message)
			assert.Empty(t, result.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"departure": "departure must be a 3-letter IATA airport code",
		"minDays":   "minDays must be non-negative",
	}
	err := ValidationError(c, details)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestValidationErrorWithMessage(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		_, c, rec := setupEcho()

		err := ValidationErrorWithMessage(c, "dateRange", "Please select both start and end dates.")

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var result ErrorDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, CodeValidationError, result.Code)
		assert.Equal(t, "Please select both start and end dates.", result.Message)
		assert.Equal(t, map[string]string{"dateRange": "Please select both start and end dates."}, result.Details)
	})

	t.Run("without field", func(t *testing.T) {
		_, c, rec := setupEcho()

		require.NoError(t, ValidationErrorWithMessage(c, "", "Custom validation message"))

		var result ErrorDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "Custom validation message", result.Message)
		assert.Nil(t, result.Details)
	})
}

func TestSuccessWriters(t *testing.T) {
	payload := map[string]int{"total": 3}

	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantBody   bool
	}{
		{"ok", func(c echo.Context) error { return OK(c, payload) }, http.StatusOK, true},
		{"created", func(c echo.Context) error { return CreatedAt(c, "/api/v1/sessions/s-1", payload) }, http.StatusCreated, true},
		{"no content", NoContent, http.StatusNoContent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "/api/v1/sessions/s-1", rec.Header().Get(echo.HeaderLocation))
			}

			if !tt.wantBody {
				assert.Empty(t, rec.Body.String())
				return
			}
			var got map[string]int
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, payload, got)
		})
	}
}
