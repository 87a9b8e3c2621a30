// Package airports loads the airport reference data used by the selectors.
package airports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// Required CSV columns.
const (
	ColumnCode = "iata_code"
	ColumnName = "name"
)

// Directory is the read-only airport set. It is safe for concurrent use.
type Directory struct {
	airports []domain.Airport
	byCode   map[string]int
}

// Ensure Directory implements domain.AirportLookup.
var _ domain.AirportLookup = (*Directory)(nil)

// Load reads the airport CSV at path.
// Failures are reported as *domain.DataLoadError.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewDataLoadError(path, err)
	}
	defer f.Close()

	dir, err := parse(f)
	if err != nil {
		return nil, domain.NewDataLoadError(path, err)
	}
	return dir, nil
}

// NewDirectory reads airport CSV data from r.
func NewDirectory(r io.Reader) (*Directory, error) {
	dir, err := parse(r)
	if err != nil {
		return nil, domain.NewDataLoadError("reader", err)
	}
	return dir, nil
}

func parse(r io.Reader) (*Directory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty airport file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	codeCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))) {
		case ColumnCode:
			codeCol = i
		case ColumnName:
			nameCol = i
		}
	}
	if codeCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("header must contain %q and %q columns", ColumnCode, ColumnName)
	}

	dir := &Directory{byCode: make(map[string]int)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		dir.add(field(record, codeCol), field(record, nameCol))
	}

	if len(dir.airports) == 0 {
		return nil, errors.New("no airports with a code")
	}
	return dir, nil
}

// add keeps the first occurrence of a code. Blank codes and codes that are
// not three letters are dropped, so every listed airport can be selected.
func (d *Directory) add(code, name string) {
	code = domain.NormalizeAirportCode(code)
	if !domain.IsValidAirportCode(code) {
		return
	}
	if _, exists := d.byCode[code]; exists {
		return
	}
	d.byCode[code] = len(d.airports)
	d.airports = append(d.airports, domain.Airport{Code: code, Name: strings.TrimSpace(name)})
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}

// LookupByCode finds an airport by IATA code. The code is normalized first.
func (d *Directory) LookupByCode(code string) (domain.Airport, bool) {
	i, ok := d.byCode[domain.NormalizeAirportCode(code)]
	if !ok {
		return domain.Airport{}, false
	}
	return d.airports[i], true
}

// All returns a copy of every airport in load order.
func (d *Directory) All() []domain.Airport {
	out := make([]domain.Airport, len(d.airports))
	copy(out, d.airports)
	return out
}

// Len returns the number of airports.
func (d *Directory) Len() int {
	return len(d.airports)
}
