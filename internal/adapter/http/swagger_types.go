// Package http provides swagger type definitions for API documentation.
// These types document the error bodies of each failure class; responses are response.ErrorDetail.
package http

// SwaggerValidationError is returned when input is incomplete or invalid.
// @Description Input rejected; the message is shown inline and no transition happens
type SwaggerValidationError struct {
	Code    string            `json:"code" example:"validation_error"`
	Message string            `json:"message" example:"Please select both start and end dates."`
	Details map[string]string `json:"details,omitempty"`
}

// SwaggerNotFoundError is returned for unknown or expired sessions.
// @Description Session not found
type SwaggerNotFoundError struct {
	Code    string `json:"code" example:"session_not_found"`
	Message string `json:"message" example:"Session not found or expired"`
}

// SwaggerConflictError is returned when an operation does not fit the current screen.
// @Description Operation not allowed on the current screen
type SwaggerConflictError struct {
	Code    string `json:"code" example:"invalid_transition"`
	Message string `json:"message" example:"invalid wizard transition: no results yet, run a search first"`
}

// SwaggerUpstreamError is returned when the pricing service fails.
// @Description Pricing service failure; the session stays on the selection screen and may retry
type SwaggerUpstreamError struct {
	Code    string `json:"code" example:"upstream_error"`
	Message string `json:"message" example:"Error 500: internal error"`
}
