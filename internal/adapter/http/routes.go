package http

import (
	"github.com/labstack/echo/v4"
)

// routeSession names the session route so handlers can build its URL.
const routeSession = "session"

// RegisterRoutes registers all wizard API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *WizardHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on the API group.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *WizardHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	api.GET("/airports", h.ListAirports)

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession).Name = routeSession
	sessions.DELETE("/:id", h.EndSession)

	sessions.GET("/:id/selection", h.GetSelection)
	sessions.PATCH("/:id/selection", h.UpdateSelection)
	sessions.POST("/:id/back", h.Back)

	sessions.POST("/:id/search", h.Search)
	sessions.GET("/:id/results", h.GetResults)
	sessions.PUT("/:id/results/filters", h.SetFilters)
}
