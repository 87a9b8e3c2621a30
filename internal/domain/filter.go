package domain

// ResultFilters holds the local filters of the results screen.
type ResultFilters struct {
	// PriceCeiling hides rows priced above this amount; nil shows every row
	PriceCeiling *float64 `json:"priceCeiling,omitempty"`

	// MaxDuration is stored for the duration input but not applied yet
	MaxDuration *int `json:"maxDuration,omitempty"`
}

// Validate checks that the filter values are non-negative.
func (f ResultFilters) Validate() error {
	if f.PriceCeiling != nil && *f.PriceCeiling < 0 {
		return NewValidationError("priceCeiling", "priceCeiling must be a non-negative number")
	}
	if f.MaxDuration != nil && *f.MaxDuration < 0 {
		return NewValidationError("maxDuration", "maxDuration must be a non-negative number")
	}
	return nil
}

// MatchesRow checks if a row passes the price ceiling.
func (f *ResultFilters) MatchesRow(row PriceGraphRow) bool {
	if f == nil || f.PriceCeiling == nil {
		return true
	}
	return row.Price <= *f.PriceCeiling
}
