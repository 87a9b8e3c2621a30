package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestSearchCriteria_Validate(t *testing.T) {
	// Helper to create a valid base criteria
	validCriteria := func() SearchCriteria {
		return SearchCriteria{
			Departure: Airport{Code: "SFO", Name: "San Francisco International Airport"},
			Arrival:   Airport{Code: "JFK", Name: "John F Kennedy International Airport"},
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			MinDays:   2,
			MaxDays:   5,
		}
	}

	tests := []struct {
		name        string
		modify      func(*SearchCriteria)
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid criteria passes",
			modify:  func(c *SearchCriteria) {},
			wantErr: false,
		},
		{
			name:        "missing departure fails",
			modify:      func(c *SearchCriteria) { c.Departure = Airport{} },
			wantErr:     true,
			errContains: "departure airport is required",
		},
		{
			name:        "missing arrival fails",
			modify:      func(c *SearchCriteria) { c.Arrival = Airport{} },
			wantErr:     true,
			errContains: "arrival airport is required",
		},
		{
			name:        "missing end date fails",
			modify:      func(c *SearchCriteria) { c.EndDate = time.Time{} },
			wantErr:     true,
			errContains: "both start and end dates",
		},
		{
			name:        "start after end fails",
			modify:      func(c *SearchCriteria) { c.StartDate, c.EndDate = c.EndDate, c.StartDate },
			wantErr:     true,
			errContains: "must not be after",
		},
		{
			name:    "same start and end date passes",
			modify:  func(c *SearchCriteria) { c.EndDate = c.StartDate },
			wantErr: false,
		},
		{
			name:        "negative min days fails",
			modify:      func(c *SearchCriteria) { c.MinDays = -1 },
			wantErr:     true,
			errContains: "minDays",
		},
		{
			name:        "max below min fails",
			modify:      func(c *SearchCriteria) { c.MinDays, c.MaxDays = 5, 2 },
			wantErr:     true,
			errContains: "maxDays",
		},
		{
			name:    "same departure and arrival is allowed",
			modify:  func(c *SearchCriteria) { c.Arrival = c.Departure },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := validCriteria()
			tt.modify(&criteria)

			err := criteria.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "should match ErrValidation")
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestSearchCriteria_Equal(t *testing.T) {
	base := SearchCriteria{
		Departure: Airport{Code: "SFO", Name: "SFO"},
		Arrival:   Airport{Code: "JFK", Name: "JFK"},
		StartDate: mustDate(t, "2024-06-01"),
		EndDate:   mustDate(t, "2024-06-10"),
		MinDays:   2,
		MaxDays:   5,
	}

	same := base
	same.StartDate = time.Date(2024, 6, 1, 15, 30, 0, 0, time.FixedZone("PDT", -7*3600))
	assert.True(t, base.Equal(same), "time of day and zone should not matter")

	changed := base
	changed.Departure = Airport{Code: "LAX", Name: "LAX"}
	assert.False(t, base.Equal(changed))

	changed = base
	changed.MaxDays = 6
	assert.False(t, base.Equal(changed))

	changed = base
	changed.EndDate = time.Time{}
	assert.False(t, base.Equal(changed))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{"2024-06-01", "2024-06-10", 9},
		{"2024-06-01", "2024-06-01", 0},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2024-12-31", "2025-01-01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(mustDate(t, tt.start), mustDate(t, tt.end)))
		})
	}
}

func TestDayRangeBounds(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		floor int
		want  DayRange
	}{
		{"span above floor", "2024-06-01", "2024-06-10", 1, DayRange{0, 9}},
		{"span below floor uses floor", "2024-06-01", "2024-06-01", 1, DayRange{0, 1}},
		{"legacy floor of thirty", "2024-06-01", "2024-06-10", 30, DayRange{0, 30}},
		{"long span exceeds legacy floor", "2024-06-01", "2024-08-01", 30, DayRange{0, 61}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayRangeBounds(mustDate(t, tt.start), mustDate(t, tt.end), tt.floor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPriceGraphQuery_FixesLimitsAtZero(t *testing.T) {
	criteria := SearchCriteria{MinDays: 1, MaxDays: 3}

	query := NewPriceGraphQuery(criteria)

	assert.Equal(t, criteria, query.Criteria)
	assert.Zero(t, query.MaxPrice)
	assert.Zero(t, query.MaxDuration)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2024-06-01", FormatDate(mustDate(t, "2024-06-01")))
}
