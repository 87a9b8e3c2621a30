// Package response provides standardized HTTP response builders for the flight prices API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message, safe to show inline
	Message string `json:"message" example:"Please select both start and end dates."`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeSessionNotFound    = "session_not_found"
	CodeInvalidTransition  = "invalid_transition"
	CodeMethodNotAllowed   = "method_not_allowed"
	CodeUpstreamError      = "upstream_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody  = "Failed to parse request body"
	MsgValidationFailed    = "Request validation failed"
	MsgNotFound            = "Resource not found"
	MsgSessionNotFound     = "Session not found or expired"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgMalformedUpstream   = "The pricing service returned an unreadable response"
	MsgUpstreamUnreachable = "The pricing service could not be reached"
	MsgNotAuthenticated    = "The pricing service is not authenticated"
	MsgTimeout             = "Request timed out"
	MsgRequestCancelled    = "Request was cancelled"
	MsgInternalError       = "An unexpected error occurred"
)
