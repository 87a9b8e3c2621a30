package pricegraph

import (
	"encoding/json"
	"fmt"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// Response keys. They are matched with exact case.
const (
	keyStartDate  = "StartDate"
	keyReturnDate = "ReturnDate"
	keyPrice      = "Price"
)

// rawRow is one element of the service response, keyed verbatim.
type rawRow map[string]json.RawMessage

// normalize parses the response body into a sorted, densely indexed table.
func normalize(body []byte) (domain.PriceGraphTable, error) {
	var raw []rawRow
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", domain.ErrMalformedResponse)
	}

	rows := make([]domain.PriceGraphRow, 0, len(raw))
	for i, r := range raw {
		row, err := normalizeRow(r)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedResponse, i, err)
		}
		rows = append(rows, row)
	}

	return domain.NewPriceGraphTable(rows), nil
}

// normalizeRow validates one row and renames its fields.
func normalizeRow(r rawRow) (domain.PriceGraphRow, error) {
	var startRaw, returnRaw string
	var price float64
	if err := r.field(keyStartDate, &startRaw); err != nil {
		return domain.PriceGraphRow{}, err
	}
	if err := r.field(keyReturnDate, &returnRaw); err != nil {
		return domain.PriceGraphRow{}, err
	}
	if err := r.field(keyPrice, &price); err != nil {
		return domain.PriceGraphRow{}, err
	}
	if price < 0 {
		return domain.PriceGraphRow{}, fmt.Errorf("negative Price %v", price)
	}

	start, err := truncateDate(startRaw)
	if err != nil {
		return domain.PriceGraphRow{}, fmt.Errorf("StartDate: %w", err)
	}
	ret, err := truncateDate(returnRaw)
	if err != nil {
		return domain.PriceGraphRow{}, fmt.Errorf("ReturnDate: %w", err)
	}

	return domain.PriceGraphRow{
		StartDate:  start,
		ReturnDate: ret,
		Price:      price,
	}, nil
}

// field decodes the value under key into dst. A missing key or a JSON null
// is an error.
func (r rawRow) field(key string, dst any) error {
	value, ok := r[key]
	if !ok || string(value) == "null" {
		return fmt.Errorf("missing %s", key)
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("%s: %v", key, err)
	}
	return nil
}

// truncateDate keeps the YYYY-MM-DD prefix of an ISO-8601 value.
// "2024-06-01T00:00:00Z" becomes "2024-06-01".
func truncateDate(value string) (string, error) {
	if len(value) < len(domain.DateLayout) {
		return "", fmt.Errorf("value %q is shorter than a date", value)
	}
	date := value[:len(domain.DateLayout)]
	if _, err := domain.ParseDate(date); err != nil {
		return "", fmt.Errorf("value %q does not start with a date", value)
	}
	return date, nil
}
