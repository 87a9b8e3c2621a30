package usecase

import (
	"sync"
	"time"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// WizardState is the screen a session is on.
type WizardState string

// Wizard states. There is no terminal state; sessions end by deletion or expiry.
const (
	// StateSelectingCriteria is the selection screen (initial)
	StateSelectingCriteria WizardState = "selecting_criteria"

	// StateFiltering is the results screen, entered only after a successful fetch
	StateFiltering WizardState = "filtering"
)

// Session is one user's wizard: the sticky selection slots, the cached
// price table and the local filters. All fields are guarded by mu, which
// is also held for the duration of a fetch.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu sync.Mutex

	state       WizardState
	displayMode domain.DisplayMode

	// Sticky selection slots. nil airports and zero dates mean "not selected".
	departure *domain.Airport
	arrival   *domain.Airport
	startDate time.Time
	endDate   time.Time

	// explicitDays is set once the user moves the day-range slider;
	// until then the range derives from the date range.
	explicitDays *domain.DayRange

	// Cached fetch result and the criteria it belongs to. nil means no cache.
	table         domain.PriceGraphTable
	tableCriteria domain.SearchCriteria
	fetchedAt     time.Time

	filters domain.ResultFilters
}

// newSession creates a session on the selection screen with the default date range.
func newSession(id string, now, startDate, endDate time.Time) *Session {
	return &Session{
		ID:          id,
		CreatedAt:   now,
		state:       StateSelectingCriteria,
		displayMode: domain.DisplayByCode,
		startDate:   startDate,
		endDate:     endDate,
	}
}

// selectionKey is the part of the selection that a cached table depends on.
type selectionKey struct {
	departure string
	arrival   string
	startDate time.Time
	endDate   time.Time
	days      domain.DayRange
}

// dayBounds returns the slider bounds for the current date range.
func (s *Session) dayBounds(floor int) domain.DayRange {
	return dayBoundsFor(s.startDate, s.endDate, floor)
}

// effectiveDays returns the day range a search would use.
func (s *Session) effectiveDays(floor int) domain.DayRange {
	return effectiveDaysFor(s.explicitDays, s.dayBounds(floor))
}

// dayBoundsFor returns the slider bounds for a date range.
// With a partial date range only the floor is known.
func dayBoundsFor(start, end time.Time, floor int) domain.DayRange {
	if start.IsZero() || end.IsZero() {
		return domain.DayRange{MinDays: 0, MaxDays: max(floor, 0)}
	}
	return domain.DayRangeBounds(start, end, floor)
}

// effectiveDaysFor returns the explicit value clamped into bounds, or the full bounds.
func effectiveDaysFor(explicit *domain.DayRange, bounds domain.DayRange) domain.DayRange {
	if explicit == nil {
		return bounds
	}

	days := *explicit
	if days.MaxDays > bounds.MaxDays {
		days.MaxDays = bounds.MaxDays
	}
	if days.MinDays > days.MaxDays {
		days.MinDays = days.MaxDays
	}
	return days
}

func (s *Session) key(floor int) selectionKey {
	k := selectionKey{
		startDate: s.startDate,
		endDate:   s.endDate,
		days:      s.effectiveDays(floor),
	}
	if s.departure != nil {
		k.departure = s.departure.Code
	}
	if s.arrival != nil {
		k.arrival = s.arrival.Code
	}
	return k
}

// criteria builds the search criteria from the slots.
// It fails with *domain.ValidationError when a slot is missing or invalid.
func (s *Session) criteria(floor int) (domain.SearchCriteria, error) {
	var c domain.SearchCriteria
	if s.departure != nil {
		c.Departure = *s.departure
	}
	if s.arrival != nil {
		c.Arrival = *s.arrival
	}
	c.StartDate = s.startDate
	c.EndDate = s.endDate

	days := s.effectiveDays(floor)
	c.MinDays = days.MinDays
	c.MaxDays = days.MaxDays

	if err := c.Validate(); err != nil {
		return domain.SearchCriteria{}, err
	}
	return c, nil
}

// invalidate drops the cached table and the filters bound to it.
func (s *Session) invalidate() {
	s.table = nil
	s.tableCriteria = domain.SearchCriteria{}
	s.fetchedAt = time.Time{}
	s.filters.PriceCeiling = nil
}

// hasTableFor reports whether the cache holds the table for criteria.
func (s *Session) hasTableFor(criteria domain.SearchCriteria) bool {
	return s.table != nil && s.tableCriteria.Equal(criteria)
}
