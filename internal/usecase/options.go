// Package usecase contains the search wizard: the two-screen state machine,
// its session store, and the local result filter.
package usecase

// SelectionUpdate is an edit of the selection screen. nil fields are left as they are.
// Every provided field is written to its sticky slot before derived values are recomputed.
type SelectionUpdate struct {
	// SearchBy switches label rendering between "iata_code" and "name"
	SearchBy *string

	// Departure and Arrival are IATA codes; "" clears the selection
	Departure *string
	Arrival   *string

	// StartDate and EndDate are YYYY-MM-DD; "" clears the date
	StartDate *string
	EndDate   *string

	// MinDays and MaxDays set the day range explicitly; it then stays sticky
	MinDays *int
	MaxDays *int

	// ResetDayRange drops an explicit day range so it derives from the dates again
	ResetDayRange bool
}

// IsEmpty reports whether the update changes nothing.
func (u SelectionUpdate) IsEmpty() bool {
	return u.SearchBy == nil && u.Departure == nil && u.Arrival == nil &&
		u.StartDate == nil && u.EndDate == nil &&
		u.MinDays == nil && u.MaxDays == nil && !u.ResetDayRange
}

// FilterUpdate sets the results screen filters. nil clears a filter.
type FilterUpdate struct {
	// PriceCeiling hides rows above it; nil goes back to the highest price
	PriceCeiling *float64

	// MaxDuration is kept for the duration input but does not filter rows
	MaxDuration *int
}
