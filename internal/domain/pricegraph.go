package domain

import "sort"

// PriceGraphRow is one candidate trip in a price graph.
type PriceGraphRow struct {
	// Index is the dense 0-based position after sorting
	Index int `json:"index"`

	// StartDate is the outbound date in YYYY-MM-DD format
	StartDate string `json:"startDate"`

	// ReturnDate is the return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Price is the trip price in the service currency
	Price float64 `json:"price"`
}

// PriceGraphTable is an ordered sequence of rows sorted by (StartDate, ReturnDate).
type PriceGraphTable []PriceGraphRow

// NewPriceGraphTable sorts rows by (StartDate, ReturnDate) and reindexes them from zero.
// The input slice is not modified.
func NewPriceGraphTable(rows []PriceGraphRow) PriceGraphTable {
	table := make(PriceGraphTable, len(rows))
	copy(table, rows)

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].StartDate != table[j].StartDate {
			return table[i].StartDate < table[j].StartDate
		}
		return table[i].ReturnDate < table[j].ReturnDate
	})
	table.reindex()
	return table
}

func (t PriceGraphTable) reindex() {
	for i := range t {
		t[i].Index = i
	}
}

// WithMaxPrice drops rows priced above maxPrice and reindexes.
// A maxPrice of zero or less means no limit and returns the table unchanged.
func (t PriceGraphTable) WithMaxPrice(maxPrice float64) PriceGraphTable {
	if maxPrice <= 0 {
		return t
	}

	result := make(PriceGraphTable, 0, len(t))
	for _, row := range t {
		if row.Price <= maxPrice {
			result = append(result, row)
		}
	}
	result.reindex()
	return result
}

// MinPrice returns the lowest price, or 0 for an empty table.
func (t PriceGraphTable) MinPrice() float64 {
	if len(t) == 0 {
		return 0
	}
	lowest := t[0].Price
	for _, row := range t[1:] {
		if row.Price < lowest {
			lowest = row.Price
		}
	}
	return lowest
}

// MaxPrice returns the highest price, or 0 for an empty table.
func (t PriceGraphTable) MaxPrice() float64 {
	if len(t) == 0 {
		return 0
	}
	highest := t[0].Price
	for _, row := range t[1:] {
		if row.Price > highest {
			highest = row.Price
		}
	}
	return highest
}

// DateSpan returns the earliest StartDate and latest ReturnDate, for chart axes.
func (t PriceGraphTable) DateSpan() (first, last string) {
	for i, row := range t {
		if i == 0 || row.StartDate < first {
			first = row.StartDate
		}
		if row.ReturnDate > last {
			last = row.ReturnDate
		}
	}
	return first, last
}
