package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health writes the liveness answer. Readiness is settled before the
// server starts listening, so a running server is always healthy.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

// OK writes a 200 screen or listing.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// CreatedAt writes a 201 with the Location of the new resource.
func CreatedAt(c echo.Context, location string, data interface{}) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204, used when a session ends.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
