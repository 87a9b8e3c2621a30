package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceGraphTable_SortsAndReindexes(t *testing.T) {
	rows := []PriceGraphRow{
		{Index: 7, StartDate: "2024-06-02", ReturnDate: "2024-06-05", Price: 300},
		{Index: 3, StartDate: "2024-06-01", ReturnDate: "2024-06-04", Price: 200},
		{Index: 9, StartDate: "2024-06-01", ReturnDate: "2024-06-03", Price: 100},
	}

	table := NewPriceGraphTable(rows)

	require.Len(t, table, 3)
	for i, row := range table {
		assert.Equal(t, i, row.Index, "indices should be dense from zero")
	}
	assert.Equal(t, "2024-06-03", table[0].ReturnDate)
	assert.Equal(t, "2024-06-04", table[1].ReturnDate)
	assert.Equal(t, "2024-06-02", table[2].StartDate)

	// Input must not be modified
	assert.Equal(t, 7, rows[0].Index)
}

func TestNewPriceGraphTable_Empty(t *testing.T) {
	table := NewPriceGraphTable(nil)
	assert.Empty(t, table)
	assert.Zero(t, table.MaxPrice())
	assert.Zero(t, table.MinPrice())
}

func TestPriceGraphTable_WithMaxPrice(t *testing.T) {
	table := NewPriceGraphTable([]PriceGraphRow{
		{StartDate: "2024-06-01", ReturnDate: "2024-06-03", Price: 100},
		{StartDate: "2024-06-02", ReturnDate: "2024-06-04", Price: 250},
		{StartDate: "2024-06-03", ReturnDate: "2024-06-05", Price: 400},
	})

	t.Run("zero means no limit", func(t *testing.T) {
		assert.Equal(t, table, table.WithMaxPrice(0))
	})

	t.Run("positive limit drops pricier rows", func(t *testing.T) {
		limited := table.WithMaxPrice(250)
		require.Len(t, limited, 2)
		assert.Equal(t, 0, limited[0].Index)
		assert.Equal(t, 1, limited[1].Index)
		for _, row := range limited {
			assert.LessOrEqual(t, row.Price, 250.0)
		}
	})
}

func TestPriceGraphTable_PriceBounds(t *testing.T) {
	table := PriceGraphTable{
		{Price: 250}, {Price: 100}, {Price: 400},
	}

	assert.Equal(t, 100.0, table.MinPrice())
	assert.Equal(t, 400.0, table.MaxPrice())
}

func TestPriceGraphTable_DateSpan(t *testing.T) {
	table := PriceGraphTable{
		{StartDate: "2024-06-02", ReturnDate: "2024-06-09"},
		{StartDate: "2024-06-01", ReturnDate: "2024-06-04"},
	}

	first, last := table.DateSpan()
	assert.Equal(t, "2024-06-01", first)
	assert.Equal(t, "2024-06-09", last)
}
