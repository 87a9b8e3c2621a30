package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataPath(t *testing.T) {
	tests := []struct {
		file     string
		contains string
	}{
		{"airports.csv", "iata_code"},
		{"endpoints.json", "getPriceGraph"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := DataPath(t, tt.file)
			assert.True(t, strings.HasSuffix(path, tt.file))
			assert.Contains(t, string(LoadDataFile(t, tt.file)), tt.contains)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type row struct {
		StartDate string  `json:"startDate"`
		Price     float64 `json:"price"`
	}

	got := DecodeJSON[[]row](t, []byte(`[{"startDate":"2024-06-01","price":100}]`))

	require.Len(t, got, 1)
	assert.Equal(t, row{StartDate: "2024-06-01", Price: 100}, got[0])
}

func TestDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Date(t, "2024-02-29"))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Date(t, "2024-06-10"))
}

func TestPtrHelpers(t *testing.T) {
	assert.Equal(t, 200.0, *FloatPtr(200))
	assert.Equal(t, 5, *IntPtr(5))
	assert.Equal(t, "SFO", *StringPtr("SFO"))

	// Each call returns a fresh pointer
	a, b := Ptr(1), Ptr(1)
	assert.NotSame(t, a, b)
}
