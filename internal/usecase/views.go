package usecase

import (
	"errors"
	"sort"
	"time"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// SelectedAirport is a selected airport with its label for the current display mode.
type SelectedAirport struct {
	Airport domain.Airport
	Label   string
}

// SelectionView is the selection screen.
type SelectionView struct {
	SessionID string
	State     WizardState
	SearchBy  domain.DisplayMode

	// Departure and Arrival are nil until selected
	Departure *SelectedAirport
	Arrival   *SelectedAirport

	// StartDate and EndDate are zero when unset
	StartDate time.Time
	EndDate   time.Time

	// DayRangeBounds are the slider limits; DayRange is the slider value
	DayRangeBounds   domain.DayRange
	DayRange         domain.DayRange
	DayRangeExplicit bool

	// Warnings are inline messages that block the search
	Warnings []string

	// HasCachedResults is true when searching again will not refetch
	HasCachedResults bool
}

// ResultsView is the results screen.
type ResultsView struct {
	SessionID string
	State     WizardState
	Criteria  domain.SearchCriteria

	// Rows is the ceiling-filtered view; TotalRows counts the cached table
	Rows      domain.PriceGraphTable
	TotalRows int

	PriceBounds  PriceBounds
	PriceCeiling float64

	// MaxDuration echoes the duration input; it is not applied
	MaxDuration *int

	// FirstDate and LastDate span the whole cached table, for chart axes
	FirstDate string
	LastDate  string

	FetchedAt time.Time
}

// ScreenView is whichever screen a session is on.
type ScreenView struct {
	State     WizardState
	Selection *SelectionView
	Results   *ResultsView
}

// buildSelectionView renders the selection screen. Caller holds s.mu.
func buildSelectionView(s *Session, floor int) *SelectionView {
	view := &SelectionView{
		SessionID:        s.ID,
		State:            s.state,
		SearchBy:         s.displayMode,
		StartDate:        s.startDate,
		EndDate:          s.endDate,
		DayRangeBounds:   s.dayBounds(floor),
		DayRange:         s.effectiveDays(floor),
		DayRangeExplicit: s.explicitDays != nil,
	}
	if s.departure != nil {
		view.Departure = &SelectedAirport{Airport: *s.departure, Label: domain.FormatAirport(*s.departure, s.displayMode)}
	}
	if s.arrival != nil {
		view.Arrival = &SelectedAirport{Airport: *s.arrival, Label: domain.FormatAirport(*s.arrival, s.displayMode)}
	}

	criteria, err := s.criteria(floor)
	if err != nil {
		view.Warnings = []string{warningMessage(err)}
	} else {
		view.HasCachedResults = s.hasTableFor(criteria)
	}
	return view
}

// buildResultsView renders the results screen. Caller holds s.mu and s.table is set.
func buildResultsView(s *Session) *ResultsView {
	first, last := s.table.DateSpan()
	rows := ApplyCeiling(s.table, s.filters.PriceCeiling)

	return &ResultsView{
		SessionID:    s.ID,
		State:        s.state,
		Criteria:     s.tableCriteria,
		Rows:         rows,
		TotalRows:    len(s.table),
		PriceBounds:  CeilingBounds(s.table),
		PriceCeiling: EffectiveCeiling(s.table, s.filters.PriceCeiling),
		MaxDuration:  s.filters.MaxDuration,
		FirstDate:    first,
		LastDate:     last,
		FetchedAt:    s.fetchedAt,
	}
}

func warningMessage(err error) string {
	var v *domain.ValidationError
	if errors.As(err, &v) {
		return v.Message
	}
	return err.Error()
}

// airportOptions renders selector entries sorted by label.
func airportOptions(airports []domain.Airport, mode domain.DisplayMode) []domain.AirportOption {
	options := make([]domain.AirportOption, len(airports))
	for i, a := range airports {
		options[i] = domain.AirportOption{Code: a.Code, Label: domain.FormatAirport(a, mode)}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}
