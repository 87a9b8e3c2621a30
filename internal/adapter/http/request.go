// Package http provides the HTTP handler layer for the flight prices API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// UpdateSelectionRequest is the body of PATCH /sessions/:id/selection.
// Omitted fields keep their sticky value; an empty string clears an airport or date.
type UpdateSelectionRequest struct {
	// SearchBy is the airport display mode: iata_code or name
	SearchBy *string `json:"searchBy,omitempty" example:"iata_code"`

	// Departure is the IATA code of the departure airport
	Departure *string `json:"departure,omitempty" example:"SFO"`

	// Arrival is the IATA code of the arrival airport
	Arrival *string `json:"arrival,omitempty" example:"JFK"`

	// StartDate is the first possible outbound date (YYYY-MM-DD)
	StartDate *string `json:"startDate,omitempty" example:"2024-06-01"`

	// EndDate is the last possible outbound date (YYYY-MM-DD)
	EndDate *string `json:"endDate,omitempty" example:"2024-06-10"`

	// MinDays is the shortest trip length in days
	MinDays *int `json:"minDays,omitempty" example:"2"`

	// MaxDays is the longest trip length in days
	MaxDays *int `json:"maxDays,omitempty" example:"5"`

	// ResetDayRange drops an explicit day range so it follows the dates again
	ResetDayRange bool `json:"resetDayRange,omitempty" example:"false"`
}

// SetFiltersRequest is the body of PUT /sessions/:id/results/filters.
// Omitted fields are cleared.
type SetFiltersRequest struct {
	// PriceCeiling hides rows priced above it; omit to show every row
	PriceCeiling *float64 `json:"priceCeiling,omitempty" example:"200"`

	// MaxDuration is stored and echoed but does not filter rows
	MaxDuration *int `json:"maxDuration,omitempty" example:"5"`
}

// Validation regex patterns.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Accepted spellings of the display modes.
var validSearchBy = map[string]bool{
	"":             true, // Empty is valid (defaults to iata_code)
	"iata_code":    true,
	"iata code":    true,
	"name":         true,
	"airport name": true,
	"airport_name": true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// ValidateSearchBy checks a display mode query or body value.
func ValidateSearchBy(value string) error {
	if !validSearchBy[strings.ToLower(strings.TrimSpace(value))] {
		errs := &ValidationErrors{}
		errs.Add("searchBy", "searchBy must be one of: iata_code, name")
		return errs
	}
	return nil
}

// Validate checks the shape of every provided field and normalizes airport codes.
// Whether a code exists and whether the day range fits the dates is decided by the wizard.
func (r *UpdateSelectionRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.SearchBy != nil && ValidateSearchBy(*r.SearchBy) != nil {
		errs.Add("searchBy", "searchBy must be one of: iata_code, name")
	}

	r.Departure = validateAirportCode(errs, "departure", r.Departure)
	r.Arrival = validateAirportCode(errs, "arrival", r.Arrival)

	validateDate(errs, "startDate", r.StartDate)
	validateDate(errs, "endDate", r.EndDate)

	r.validateDays(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateAirportCode(errs *ValidationErrors, field string, code *string) *string {
	if code == nil {
		return nil
	}
	normalized := domain.NormalizeAirportCode(*code)
	if normalized != "" && !domain.IsValidAirportCode(normalized) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
	}
	return &normalized
}

func validateDate(errs *ValidationErrors, field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	if !datePattern.MatchString(*value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse(domain.DateLayout, *value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

func (r *UpdateSelectionRequest) validateDays(errs *ValidationErrors) {
	if r.MinDays != nil && *r.MinDays < 0 {
		errs.Add("minDays", "minDays must be a non-negative number")
	}
	if r.MaxDays != nil && *r.MaxDays < 0 {
		errs.Add("maxDays", "maxDays must be a non-negative number")
	}
	if r.MinDays != nil && r.MaxDays != nil && *r.MinDays >= 0 && *r.MinDays > *r.MaxDays {
		errs.Add("dayRange", "minDays must be less than or equal to maxDays")
	}
}

// Validate checks the filter values.
func (r *SetFiltersRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.PriceCeiling != nil && *r.PriceCeiling < 0 {
		errs.Add("priceCeiling", "priceCeiling must be a non-negative number")
	}
	if r.MaxDuration != nil && *r.MaxDuration < 0 {
		errs.Add("maxDuration", "maxDuration must be a non-negative number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
