// Package domain contains the core entities and rules for the flight prices checker.
// These types carry no transport or storage concerns and are shared by every other layer.
package domain

import (
	"regexp"
	"strings"
)

// Airport is a single entry of the airport reference data.
type Airport struct {
	// Code is the 3-letter IATA airport code (e.g., "SFO")
	Code string `json:"code"`

	// Name is the full airport name (e.g., "San Francisco International Airport")
	Name string `json:"name"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeAirportCode trims and upper-cases a raw airport code.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidAirportCode reports whether code is a normalized 3-letter IATA code.
func IsValidAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// DisplayMode selects how airports are rendered in selectors.
type DisplayMode string

// Available display modes.
const (
	// DisplayByCode renders airports by IATA code (default)
	DisplayByCode DisplayMode = "iata_code"

	// DisplayByName renders airports by full name
	DisplayByName DisplayMode = "name"
)

// IsValid checks if the display mode is a known value.
func (m DisplayMode) IsValid() bool {
	switch m {
	case DisplayByCode, DisplayByName:
		return true
	default:
		return false
	}
}

// ParseDisplayMode converts a string to a DisplayMode.
// Returns DisplayByCode if the string is empty or unknown.
// "iata code" and "airport name" are accepted as aliases.
func ParseDisplayMode(s string) DisplayMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "airport name", "airport_name":
		return DisplayByName
	default:
		return DisplayByCode
	}
}

// FormatAirport renders an airport label for the given display mode.
func FormatAirport(a Airport, mode DisplayMode) string {
	if mode == DisplayByName {
		return a.Name
	}
	return a.Code
}

// AirportOption is a selector entry: a stable value and its rendered label.
type AirportOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
