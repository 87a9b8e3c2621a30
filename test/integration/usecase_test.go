package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/usecase"
	"github.com/flight-search/flight-prices-checker/test/mock"
	"github.com/flight-search/flight-prices-checker/test/testutil"
)

func sfoToJFKUpdate() usecase.SelectionUpdate {
	return usecase.SelectionUpdate{
		Departure: testutil.StringPtr("SFO"),
		Arrival:   testutil.StringPtr("JFK"),
		StartDate: testutil.StringPtr("2024-06-01"),
		EndDate:   testutil.StringPtr("2024-06-10"),
		MinDays:   testutil.IntPtr(2),
		MaxDays:   testutil.IntPtr(5),
	}
}

// TestUseCase_SearchThroughRealClient tests the wizard against the real
// price graph client and airport directory.
func TestUseCase_SearchThroughRealClient(t *testing.T) {
	// Arrange
	stack := NewStack(t)
	stack.PriceGraph.WithRows(mock.SampleRows()...)

	created, err := stack.Wizard.CreateSession()
	require.NoError(t, err)
	_, err = stack.Wizard.UpdateSelection(created.SessionID, sfoToJFKUpdate())
	require.NoError(t, err)

	// Act
	view, err := stack.Wizard.Search(context.Background(), created.SessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, usecase.StateFiltering, view.State)
	assert.Equal(t, "San Francisco International Airport", view.Criteria.Departure.Name)
	assert.Equal(t, "John F. Kennedy International Airport", view.Criteria.Arrival.Name)
	require.Len(t, view.Rows, 3)
	assert.Equal(t, 100.0, view.Rows[0].Price)
	assert.Equal(t, usecase.PriceBounds{Min: 100, Max: 400}, view.PriceBounds)
}

func TestUseCase_CeilingFiltersLocally(t *testing.T) {
	stack := NewStack(t)
	stack.PriceGraph.WithRows(mock.SampleRows()...)

	created, err := stack.Wizard.CreateSession()
	require.NoError(t, err)
	_, err = stack.Wizard.UpdateSelection(created.SessionID, sfoToJFKUpdate())
	require.NoError(t, err)
	_, err = stack.Wizard.Search(context.Background(), created.SessionID)
	require.NoError(t, err)

	for _, ceiling := range []float64{400, 250, 100, 50} {
		_, err := stack.Wizard.SetFilters(created.SessionID, usecase.FilterUpdate{PriceCeiling: testutil.FloatPtr(ceiling)})
		require.NoError(t, err)
	}

	view, err := stack.Wizard.Results(created.SessionID)
	require.NoError(t, err)
	assert.Empty(t, view.Rows)
	assert.Equal(t, 3, view.TotalRows)
	assert.Equal(t, 1, stack.PriceGraph.CallCount(), "moving the ceiling never refetches")
}

func TestUseCase_MalformedResponseKeepsSelection(t *testing.T) {
	stack := NewStack(t)
	stack.PriceGraph.WithRawBody(`[{"StartDate":"2024-06-01T00:00:00Z","ReturnDate":"2024-06-04T00:00:00Z"}]`)

	created, err := stack.Wizard.CreateSession()
	require.NoError(t, err)
	_, err = stack.Wizard.UpdateSelection(created.SessionID, sfoToJFKUpdate())
	require.NoError(t, err)

	_, err = stack.Wizard.Search(context.Background(), created.SessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))

	screen, err := stack.Wizard.Current(created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateSelectingCriteria, screen.State)
	require.NotNil(t, screen.Selection)
	assert.False(t, screen.Selection.HasCachedResults)
}

func TestUseCase_RemoteErrorIsTyped(t *testing.T) {
	stack := NewStack(t)
	stack.PriceGraph.WithError(503, "try later")

	created, err := stack.Wizard.CreateSession()
	require.NoError(t, err)
	_, err = stack.Wizard.UpdateSelection(created.SessionID, sfoToJFKUpdate())
	require.NoError(t, err)

	_, err = stack.Wizard.Search(context.Background(), created.SessionID)

	var remoteErr *domain.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 503, remoteErr.StatusCode)
	assert.Equal(t, "Error 503: try later", remoteErr.Error())
}

func TestUseCase_CancelledRequest(t *testing.T) {
	stack := NewStack(t)
	stack.PriceGraph.WithRows(mock.SampleRows()...)

	created, err := stack.Wizard.CreateSession()
	require.NoError(t, err)
	_, err = stack.Wizard.UpdateSelection(created.SessionID, sfoToJFKUpdate())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = stack.Wizard.Search(ctx, created.SessionID)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stack.PriceGraph.CallCount())
}

func TestUseCase_CredentialsComeFromAuthenticator(t *testing.T) {
	stack := NewStack(t)

	assert.True(t, stack.Authenticator.Ready())
	cred, err := stack.Authenticator.CredentialFor(domain.PriceGraphEndpoint)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+TestToken, cred.AuthorizationHeader())
	assert.Equal(t, DefaultNow, cred.ObtainedAt)

	_, err = stack.Authenticator.CredentialFor("getAirports")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
