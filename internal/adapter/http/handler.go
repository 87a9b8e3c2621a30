package http

import (
	"context"
	"errors"
	"net"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-prices-checker/internal/adapter/http/response"
	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
	"github.com/flight-search/flight-prices-checker/internal/usecase"
)

// WizardHandler handles HTTP requests for the airport and session endpoints.
type WizardHandler struct {
	useCase usecase.WizardUseCase
	log     *logger.Logger
}

// HandlerOption configures a WizardHandler.
type HandlerOption func(*WizardHandler)

// WithHandlerLogger sets the logger used for unexpected errors.
func WithHandlerLogger(log *logger.Logger) HandlerOption {
	return func(h *WizardHandler) { h.log = log }
}

// NewWizardHandler creates a new WizardHandler with the given use case.
func NewWizardHandler(uc usecase.WizardUseCase, opts ...HandlerOption) *WizardHandler {
	h := &WizardHandler{
		useCase: uc,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListAirports handles GET /api/v1/airports
//
// @Summary List airports
// @Description List every airport as selector options, labelled and sorted by the display mode
// @Tags airports
// @Produce json
// @Param searchBy query string false "Display mode" Enums(iata_code, name) default(iata_code)
// @Success 200 {object} AirportOptionsResponseDTO
// @Failure 400 {object} SwaggerValidationError "Unknown display mode"
// @Router /airports [get]
func (h *WizardHandler) ListAirports(c echo.Context) error {
	searchBy := c.QueryParam("searchBy")
	if err := ValidateSearchBy(searchBy); err != nil {
		return h.handleValidationError(c, err)
	}

	mode := domain.ParseDisplayMode(searchBy)
	return response.OK(c, ToAirportOptionsDTO(mode, h.useCase.AirportOptions(searchBy)))
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Start a wizard session
// @Description Create a session on the selection screen with today..tomorrow as the date range
// @Tags sessions
// @Produce json
// @Success 201 {object} SelectionDTO
// @Router /sessions [post]
func (h *WizardHandler) CreateSession(c echo.Context) error {
	view, err := h.useCase.CreateSession()
	if err != nil {
		return h.handleError(c, err)
	}

	return response.CreatedAt(c, c.Echo().Reverse(routeSession, view.SessionID), ToSelectionDTO(view))
}

// GetSession handles GET /api/v1/sessions/:id
//
// @Summary Get the current screen
// @Description Return the selection or results screen, whichever the session is on
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ScreenDTO
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Router /sessions/{id} [get]
func (h *WizardHandler) GetSession(c echo.Context) error {
	view, err := h.useCase.Current(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToScreenDTO(view))
}

// EndSession handles DELETE /api/v1/sessions/:id
//
// @Summary End a wizard session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Session ended"
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Router /sessions/{id} [delete]
func (h *WizardHandler) EndSession(c echo.Context) error {
	if err := h.useCase.EndSession(c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// GetSelection handles GET /api/v1/sessions/:id/selection
//
// @Summary Get the selection screen
// @Tags selection
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SelectionDTO
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Router /sessions/{id}/selection [get]
func (h *WizardHandler) GetSelection(c echo.Context) error {
	view, err := h.useCase.Selection(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSelectionDTO(view))
}

// UpdateSelection handles PATCH /api/v1/sessions/:id/selection
//
// @Summary Edit the selection
// @Description Write sticky fields; defaults derived from the dates are recomputed and
// @Description changing a search criterion drops the cached results
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body UpdateSelectionRequest true "Fields to change"
// @Success 200 {object} SelectionDTO
// @Failure 400 {object} SwaggerValidationError "Validation error"
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Failure 409 {object} SwaggerConflictError "Session is on the results screen"
// @Router /sessions/{id}/selection [patch]
func (h *WizardHandler) UpdateSelection(c echo.Context) error {
	var req UpdateSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	view, err := h.useCase.UpdateSelection(c.Param("id"), ToSelectionUpdate(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSelectionDTO(view))
}

// Search handles POST /api/v1/sessions/:id/search
//
// @Summary Search prices
// @Description Move to the results screen. The pricing service is called at most once per
// @Description distinct criteria; returning with unchanged criteria reuses the cached table.
// @Tags results
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ResultsDTO
// @Failure 400 {object} SwaggerValidationError "Incomplete selection"
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Failure 502 {object} SwaggerUpstreamError "Pricing service error"
// @Failure 503 {object} response.ErrorDetail "Pricing service not authenticated"
// @Failure 504 {object} response.ErrorDetail "Pricing service timed out"
// @Router /sessions/{id}/search [post]
func (h *WizardHandler) Search(c echo.Context) error {
	view, err := h.useCase.Search(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToResultsDTO(view))
}

// Back handles POST /api/v1/sessions/:id/back
//
// @Summary Back to the selection screen
// @Description Return to the selection screen with every selection kept
// @Tags selection
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SelectionDTO
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Router /sessions/{id}/back [post]
func (h *WizardHandler) Back(c echo.Context) error {
	view, err := h.useCase.Back(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSelectionDTO(view))
}

// GetResults handles GET /api/v1/sessions/:id/results
//
// @Summary Get the results screen
// @Tags results
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ResultsDTO
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Failure 409 {object} SwaggerConflictError "No results yet"
// @Router /sessions/{id}/results [get]
func (h *WizardHandler) GetResults(c echo.Context) error {
	view, err := h.useCase.Results(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToResultsDTO(view))
}

// SetFilters handles PUT /api/v1/sessions/:id/results/filters
//
// @Summary Set result filters
// @Description Set the price ceiling applied to the cached table (never refetches).
// @Description maxDuration is stored and echoed but does not filter.
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SetFiltersRequest true "Filters"
// @Success 200 {object} ResultsDTO
// @Failure 400 {object} SwaggerValidationError "Validation error"
// @Failure 404 {object} SwaggerNotFoundError "Unknown or expired session"
// @Failure 409 {object} SwaggerConflictError "No results yet"
// @Router /sessions/{id}/results/filters [put]
func (h *WizardHandler) SetFilters(c echo.Context) error {
	var req SetFiltersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	view, err := h.useCase.SetFilters(c.Param("id"), ToFilterUpdate(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToResultsDTO(view))
}

// Health handles GET /health
// Simple liveness endpoint.
//
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *WizardHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles request validation errors and returns a 400 response.
func (h *WizardHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, "", err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *WizardHandler) handleError(c echo.Context, err error) error {
	var (
		validationErr *domain.ValidationError
		remoteErr     *domain.RemoteServiceError
		netErr        net.Error
	)

	switch {
	case errors.As(err, &validationErr):
		// Shown inline; no transition happened
		return response.ValidationErrorWithMessage(c, validationErr.Field, validationErr.Message)

	case errors.Is(err, domain.ErrSessionNotFound):
		return response.SessionNotFound(c)

	case errors.Is(err, domain.ErrInvalidTransition):
		return response.Conflict(c, err.Error())

	case errors.Is(err, domain.ErrNotAuthenticated):
		return response.ServiceUnavailable(c)

	case errors.As(err, &remoteErr):
		return response.BadGateway(c, remoteErr.Error())

	case errors.Is(err, domain.ErrMalformedResponse):
		return response.BadGateway(c, response.MsgMalformedUpstream)

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return response.GatewayTimeout(c)
		}
		return response.BadGateway(c, response.MsgUpstreamUnreachable)
	}

	h.log.Error().
		Err(err).
		Str("path", c.Path()).
		Str("session_id", c.Param("id")).
		Msg("unexpected handler error")
	return response.InternalServerError(c)
}
