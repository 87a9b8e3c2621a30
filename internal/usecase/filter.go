package usecase

import "github.com/flight-search/flight-prices-checker/internal/domain"

// ApplyCeiling returns the rows of table priced at or below ceiling.
//
// Behavior:
//   - A nil ceiling returns the table itself (no filtering)
//   - The result is an order-preserving subsequence; rows keep their original Index
//   - Does NOT mutate the table and never calls the network
func ApplyCeiling(table domain.PriceGraphTable, ceiling *float64) domain.PriceGraphTable {
	if ceiling == nil {
		return table
	}

	filters := &domain.ResultFilters{PriceCeiling: ceiling}

	result := make(domain.PriceGraphTable, 0, len(table))
	for _, row := range table {
		if filters.MatchesRow(row) {
			result = append(result, row)
		}
	}
	return result
}

// PriceBounds is the range of the price ceiling control.
type PriceBounds struct {
	Min float64
	Max float64
}

// CeilingBounds returns the lowest and highest price of table.
func CeilingBounds(table domain.PriceGraphTable) PriceBounds {
	return PriceBounds{Min: table.MinPrice(), Max: table.MaxPrice()}
}

// EffectiveCeiling returns the ceiling a view is rendered with:
// the user's value, or the highest price when none is set.
func EffectiveCeiling(table domain.PriceGraphTable, ceiling *float64) float64 {
	if ceiling != nil {
		return *ceiling
	}
	return table.MaxPrice()
}
