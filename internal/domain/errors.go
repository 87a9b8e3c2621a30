package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them via errors.Is.
var (
	// ErrDataLoad indicates reference data was missing or malformed.
	ErrDataLoad = errors.New("data load failed")

	// ErrAuth indicates an endpoint failed to authenticate.
	ErrAuth = errors.New("endpoint authentication failed")

	// ErrNotAuthenticated indicates a credential was requested before readiness or for an unknown endpoint.
	ErrNotAuthenticated = errors.New("endpoint not authenticated")

	// ErrRemoteService indicates the pricing service answered with a non-200 status.
	ErrRemoteService = errors.New("remote service error")

	// ErrMalformedResponse indicates the pricing service returned a payload we could not parse.
	ErrMalformedResponse = errors.New("malformed price graph response")

	// ErrValidation indicates incomplete or invalid user input.
	ErrValidation = errors.New("validation failed")

	// ErrSessionNotFound indicates an unknown or expired wizard session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidTransition indicates an operation not allowed in the current wizard state.
	ErrInvalidTransition = errors.New("invalid wizard transition")
)

// DataLoadError reports a reference data source that could not be loaded.
type DataLoadError struct {
	Source string
	Err    error
}

// NewDataLoadError creates a DataLoadError for the given source.
func NewDataLoadError(source string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Err: err}
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDataLoad) match.
func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// AuthError reports a failed authentication for a single endpoint.
type AuthError struct {
	Endpoint string
	Err      error
}

// NewAuthError creates an AuthError for the given endpoint.
func NewAuthError(endpoint string, err error) *AuthError {
	return &AuthError{Endpoint: endpoint, Err: err}
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authenticate endpoint %q: %v", e.Endpoint, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrAuth) match.
func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// FailedEndpoints extracts the endpoint names of every AuthError joined in err.
func FailedEndpoints(err error) []string {
	if err == nil {
		return nil
	}

	var names []string
	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case *AuthError:
			names = append(names, x.Endpoint)
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := x.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	return names
}

// NotAuthenticatedError reports a credential lookup that cannot be served.
type NotAuthenticatedError struct {
	Endpoint string
}

func (e *NotAuthenticatedError) Error() string {
	return fmt.Sprintf("no credential for endpoint %q", e.Endpoint)
}

// Is makes errors.Is(err, ErrNotAuthenticated) match.
func (e *NotAuthenticatedError) Is(target error) bool { return target == ErrNotAuthenticated }

// RemoteServiceError reports a non-200 answer from the pricing service.
// It is local to one fetch attempt and never retried automatically.
type RemoteServiceError struct {
	StatusCode int
	Body       string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrRemoteService) match.
func (e *RemoteServiceError) Is(target error) bool { return target == ErrRemoteService }

// ValidationError reports a user input problem shown as an inline warning.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
