// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// ProjectRoot returns the repository root.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// DataPath returns the path of a shipped reference file (airports CSV,
// endpoint config). It fails the test if the file does not exist.
func DataPath(t *testing.T, filename string) string {
	t.Helper()

	path := filepath.Join(ProjectRoot(t), "data", filename)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Failed to find data file %s: %v", filename, err)
	}
	return path
}

// LoadDataFile reads a shipped reference file.
func LoadDataFile(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(DataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load data file %s: %v", filename, err)
	}
	return data
}

// DecodeJSON unmarshals a response body into T, failing the test with the
// raw body when it does not parse.
func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("Failed to decode %T: %v: %s", v, err, body)
	}
	return v
}

// Date parses a YYYY-MM-DD wizard date.
func Date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := domain.ParseDate(value)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", value, err)
	}
	return parsed
}

// Ptr returns a pointer to v, for optional fields of selection and filter updates.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a price ceiling.
func FloatPtr(f float64) *float64 { return Ptr(f) }

// IntPtr returns a pointer to a day count.
func IntPtr(i int) *int { return Ptr(i) }

// StringPtr returns a pointer to an airport code or date.
func StringPtr(s string) *string { return Ptr(s) }
