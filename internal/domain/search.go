package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "2006-01-02"

// SearchCriteria defines the parameters of a price graph query.
// Departure and Arrival may be equal; the pricing service decides what that means.
type SearchCriteria struct {
	// Departure is the origin airport
	Departure Airport `json:"departure"`

	// Arrival is the destination airport
	Arrival Airport `json:"arrival"`

	// StartDate is the first candidate departure date
	StartDate time.Time `json:"startDate"`

	// EndDate is the last candidate return date
	EndDate time.Time `json:"endDate"`

	// MinDays is the shortest trip length in days
	MinDays int `json:"minDays"`

	// MaxDays is the longest trip length in days
	MaxDays int `json:"maxDays"`
}

// Validate checks the criteria invariants.
// Returns a *ValidationError if validation fails.
func (s SearchCriteria) Validate() error {
	if s.Departure.Code == "" {
		return NewValidationError("departure", "departure airport is required")
	}
	if s.Arrival.Code == "" {
		return NewValidationError("arrival", "arrival airport is required")
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return NewValidationError("dateRange", "Please select both start and end dates.")
	}
	if s.StartDate.After(s.EndDate) {
		return NewValidationError("dateRange", "start date must not be after end date")
	}
	return DayRange{MinDays: s.MinDays, MaxDays: s.MaxDays}.Validate()
}

// Equal reports whether two criteria describe the same query.
func (s SearchCriteria) Equal(other SearchCriteria) bool {
	return s.Departure == other.Departure &&
		s.Arrival == other.Arrival &&
		sameDate(s.StartDate, other.StartDate) &&
		sameDate(s.EndDate, other.EndDate) &&
		s.MinDays == other.MinDays &&
		s.MaxDays == other.MaxDays
}

// String renders the criteria for logs.
func (s SearchCriteria) String() string {
	return fmt.Sprintf("%s->%s %s..%s days %d-%d",
		s.Departure.Code, s.Arrival.Code,
		FormatDate(s.StartDate), FormatDate(s.EndDate),
		s.MinDays, s.MaxDays)
}

// DayRange is a trip-length window in days.
type DayRange struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

// Validate checks 0 <= MinDays <= MaxDays.
func (r DayRange) Validate() error {
	if r.MinDays < 0 {
		return NewValidationError("dayRange", "minDays must be non-negative")
	}
	if r.MaxDays < r.MinDays {
		return NewValidationError("dayRange", "maxDays must be greater than or equal to minDays")
	}
	return nil
}

// DaysBetween returns the number of whole calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// DayRangeBounds returns the slider bounds for a date range: 0 and max(daysBetween, floor).
func DayRangeBounds(start, end time.Time, floor int) DayRange {
	days := DaysBetween(start, end)
	if days < floor {
		days = floor
	}
	if days < 0 {
		days = 0
	}
	return DayRange{MinDays: 0, MaxDays: days}
}

// PriceGraphQuery is the request sent to the pricing service.
type PriceGraphQuery struct {
	Criteria SearchCriteria

	// MaxPrice is a server-side price limit; 0 means no limit.
	MaxPrice float64

	// MaxDuration is forwarded as-is; the service ignores 0.
	MaxDuration int
}

// NewPriceGraphQuery builds a query for the criteria.
// MaxPrice and MaxDuration are fixed at zero until a filter UI exists for them.
func NewPriceGraphQuery(criteria SearchCriteria) PriceGraphQuery {
	return PriceGraphQuery{
		Criteria:    criteria,
		MaxPrice:    0,
		MaxDuration: 0,
	}
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formats a date as YYYY-MM-DD. The zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func sameDate(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() == b.IsZero()
	}
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
