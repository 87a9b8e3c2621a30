package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/timeutil"
)

var (
	sfo = domain.Airport{Code: "SFO", Name: "San Francisco International Airport"}
	jfk = domain.Airport{Code: "JFK", Name: "John F. Kennedy International Airport"}
	lax = domain.Airport{Code: "LAX", Name: "Los Angeles International Airport"}

	testCredential = domain.EndpointCredential{EndpointName: domain.PriceGraphEndpoint, Token: "tok"}

	testNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
)

// wizardFixture bundles a wizard with its mocked collaborators.
type wizardFixture struct {
	wizard  WizardUseCase
	fetcher *domain.MockPriceGraphFetcher
	clock   *timeutil.MockClock
	store   *SessionStore
}

func newFixture(t *testing.T) *wizardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	credentials := domain.NewMockCredentialProvider(ctrl)
	credentials.EXPECT().CredentialFor(domain.PriceGraphEndpoint).Return(testCredential, nil).AnyTimes()

	return newFixtureWithCredentials(t, ctrl, credentials, nil)
}

func newFixtureWithCredentials(t *testing.T, ctrl *gomock.Controller, credentials domain.CredentialProvider, cfg *Config) *wizardFixture {
	t.Helper()

	known := map[string]domain.Airport{"SFO": sfo, "JFK": jfk, "LAX": lax}
	airports := domain.NewMockAirportLookup(ctrl)
	airports.EXPECT().LookupByCode(gomock.Any()).DoAndReturn(func(code string) (domain.Airport, bool) {
		a, ok := known[code]
		return a, ok
	}).AnyTimes()
	airports.EXPECT().All().Return([]domain.Airport{sfo, jfk, lax}).AnyTimes()

	fetcher := domain.NewMockPriceGraphFetcher(ctrl)
	clock := timeutil.NewMockClock(testNow)
	store := NewSessionStore(WithStoreClock(clock))

	return &wizardFixture{
		wizard:  NewWizard(airports, fetcher, credentials, store, cfg, WithClock(clock)),
		fetcher: fetcher,
		clock:   clock,
		store:   store,
	}
}

// routeUpdate selects SFO->JFK, 2024-06-01..2024-06-10, 2 to 5 days.
func routeUpdate() SelectionUpdate {
	return SelectionUpdate{
		Departure: ptr("SFO"),
		Arrival:   ptr("JFK"),
		StartDate: ptr("2024-06-01"),
		EndDate:   ptr("2024-06-10"),
		MinDays:   ptr(2),
		MaxDays:   ptr(5),
	}
}

func routeCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Departure: sfo,
		Arrival:   jfk,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		MinDays:   2,
		MaxDays:   5,
	}
}

// threeRowTable is the mocked price graph with prices 100, 250 and 400.
func threeRowTable() domain.PriceGraphTable {
	return domain.NewPriceGraphTable([]domain.PriceGraphRow{
		{StartDate: "2024-06-01", ReturnDate: "2024-06-03", Price: 100},
		{StartDate: "2024-06-02", ReturnDate: "2024-06-06", Price: 250},
		{StartDate: "2024-06-05", ReturnDate: "2024-06-10", Price: 400},
	})
}

func (f *wizardFixture) newSessionWithRoute(t *testing.T) string {
	t.Helper()
	view, err := f.wizard.CreateSession()
	require.NoError(t, err)

	_, err = f.wizard.UpdateSelection(view.SessionID, routeUpdate())
	require.NoError(t, err)
	return view.SessionID
}

func TestWizard_CreateSession_Defaults(t *testing.T) {
	f := newFixture(t)

	view, err := f.wizard.CreateSession()
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, StateSelectingCriteria, view.State)
	assert.Equal(t, domain.DisplayByCode, view.SearchBy)
	assert.Nil(t, view.Departure)
	assert.Nil(t, view.Arrival)
	assert.Equal(t, "2024-05-20", domain.FormatDate(view.StartDate))
	assert.Equal(t, "2024-05-21", domain.FormatDate(view.EndDate))
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 1}, view.DayRangeBounds)
	assert.Equal(t, view.DayRangeBounds, view.DayRange)
	assert.False(t, view.DayRangeExplicit)
	assert.Equal(t, []string{"departure airport is required"}, view.Warnings)
	assert.False(t, view.HasCachedResults)
}

func TestWizard_CreateSession_TodayInConfiguredZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := domain.NewMockCredentialProvider(ctrl)
	f := newFixtureWithCredentials(t, ctrl, credentials, &Config{
		DayRangeFloor: 1,
		Location:      timeutil.MustGetLocation("Asia/Tokyo"),
	})
	f.clock.Set(time.Date(2024, 5, 20, 23, 30, 0, 0, time.UTC))

	view, err := f.wizard.CreateSession()
	require.NoError(t, err)

	assert.Equal(t, "2024-05-21", domain.FormatDate(view.StartDate))
	assert.Equal(t, "2024-05-22", domain.FormatDate(view.EndDate))
}

func TestWizard_DayRangeFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := domain.NewMockCredentialProvider(ctrl)
	f := newFixtureWithCredentials(t, ctrl, credentials, &Config{DayRangeFloor: 30})

	view, err := f.wizard.CreateSession()
	require.NoError(t, err)
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 30}, view.DayRangeBounds)

	view, err = f.wizard.UpdateSelection(view.SessionID, SelectionUpdate{
		StartDate: ptr("2024-06-01"),
		EndDate:   ptr("2024-08-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 75}, view.DayRangeBounds)
}

func TestWizard_EndToEnd_PriceCeiling(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().
		Fetch(gomock.Any(), domain.NewPriceGraphQuery(routeCriteria()), testCredential).
		Return(threeRowTable(), nil).
		Times(1)

	results, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, StateFiltering, results.State)
	assert.Len(t, results.Rows, 3)
	assert.Equal(t, 3, results.TotalRows)
	assert.Equal(t, 400.0, results.PriceCeiling, "default ceiling is the highest price")
	assert.Equal(t, PriceBounds{Min: 100, Max: 400}, results.PriceBounds)
	assert.Equal(t, "2024-06-01", results.FirstDate)
	assert.Equal(t, "2024-06-10", results.LastDate)
	assert.Equal(t, testNow, results.FetchedAt)

	results, err = f.wizard.SetFilters(id, FilterUpdate{PriceCeiling: ptr(200.0)})
	require.NoError(t, err)

	require.Len(t, results.Rows, 1)
	assert.Equal(t, 100.0, results.Rows[0].Price)
	assert.Equal(t, 200.0, results.PriceCeiling)
	assert.Equal(t, 3, results.TotalRows)
}

func TestWizard_Search_ReentryDoesNotRefetch(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil).Times(1)

	_, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		selection, err := f.wizard.Back(id)
		require.NoError(t, err)
		assert.Equal(t, StateSelectingCriteria, selection.State)
		assert.True(t, selection.HasCachedResults)

		results, err := f.wizard.Search(context.Background(), id)
		require.NoError(t, err)
		assert.Len(t, results.Rows, 3)
	}
}

func TestWizard_ChangingCriterionInvalidatesCache(t *testing.T) {
	tests := []struct {
		name   string
		update SelectionUpdate
	}{
		{"departure", SelectionUpdate{Departure: ptr("LAX")}},
		{"arrival", SelectionUpdate{Arrival: ptr("LAX")}},
		{"start date", SelectionUpdate{StartDate: ptr("2024-06-02")}},
		{"end date", SelectionUpdate{EndDate: ptr("2024-06-12")}},
		{"min days", SelectionUpdate{MinDays: ptr(3)}},
		{"max days", SelectionUpdate{MaxDays: ptr(4)}},
		{"reset day range", SelectionUpdate{ResetDayRange: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := f.newSessionWithRoute(t)

			var queries []domain.PriceGraphQuery
			f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, q domain.PriceGraphQuery, _ domain.EndpointCredential) (domain.PriceGraphTable, error) {
					queries = append(queries, q)
					return threeRowTable(), nil
				}).
				Times(2)

			_, err := f.wizard.Search(context.Background(), id)
			require.NoError(t, err)
			_, err = f.wizard.Back(id)
			require.NoError(t, err)

			selection, err := f.wizard.UpdateSelection(id, tt.update)
			require.NoError(t, err)
			assert.False(t, selection.HasCachedResults)

			_, err = f.wizard.Results(id)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)

			_, err = f.wizard.Search(context.Background(), id)
			require.NoError(t, err)

			require.Len(t, queries, 2)
			assert.False(t, queries[0].Criteria.Equal(queries[1].Criteria))
		})
	}
}

func TestWizard_RewritingSameValuesKeepsCache(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil).Times(1)

	_, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	_, err = f.wizard.Back(id)
	require.NoError(t, err)

	selection, err := f.wizard.UpdateSelection(id, routeUpdate())
	require.NoError(t, err)
	assert.True(t, selection.HasCachedResults)

	_, err = f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
}

func TestWizard_EmptyUpdateIsNoOp(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil).Times(1)

	_, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)

	// Still refused on the results screen
	_, err = f.wizard.UpdateSelection(id, SelectionUpdate{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.wizard.Back(id)
	require.NoError(t, err)

	before, err := f.wizard.Selection(id)
	require.NoError(t, err)

	after, err := f.wizard.UpdateSelection(id, SelectionUpdate{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.True(t, after.HasCachedResults)
}

func TestWizard_DisplayModeToggleKeepsSelection(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil).Times(1)

	_, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	_, err = f.wizard.Back(id)
	require.NoError(t, err)

	selection, err := f.wizard.UpdateSelection(id, SelectionUpdate{SearchBy: ptr("airport name")})
	require.NoError(t, err)

	assert.Equal(t, domain.DisplayByName, selection.SearchBy)
	require.NotNil(t, selection.Departure)
	assert.Equal(t, sfo, selection.Departure.Airport)
	assert.Equal(t, sfo.Name, selection.Departure.Label)
	assert.Equal(t, jfk.Name, selection.Arrival.Label)
	assert.True(t, selection.HasCachedResults)

	selection, err = f.wizard.UpdateSelection(id, SelectionUpdate{SearchBy: ptr("iata_code")})
	require.NoError(t, err)
	assert.Equal(t, "SFO", selection.Departure.Label)

	// Still cached: no second fetch
	_, err = f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
}

func TestWizard_Search_ValidationBlocksTransition(t *testing.T) {
	tests := []struct {
		name    string
		update  SelectionUpdate
		message string
	}{
		{"no airports", SelectionUpdate{}, "departure airport is required"},
		{"no arrival", SelectionUpdate{Departure: ptr("SFO")}, "arrival airport is required"},
		{
			"partial date range",
			SelectionUpdate{Departure: ptr("SFO"), Arrival: ptr("JFK"), EndDate: ptr("")},
			"Please select both start and end dates.",
		},
		{
			"reversed date range",
			SelectionUpdate{Departure: ptr("SFO"), Arrival: ptr("JFK"), StartDate: ptr("2024-06-10"), EndDate: ptr("2024-06-01")},
			"start date must not be after end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No Fetch expectation: any call fails the test
			f := newFixture(t)

			created, err := f.wizard.CreateSession()
			require.NoError(t, err)
			selection, err := f.wizard.UpdateSelection(created.SessionID, tt.update)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.message}, selection.Warnings)

			_, err = f.wizard.Search(context.Background(), created.SessionID)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)

			screen, err := f.wizard.Current(created.SessionID)
			require.NoError(t, err)
			assert.Equal(t, StateSelectingCriteria, screen.State)
		})
	}
}

func TestWizard_Search_SameAirportAllowed(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	_, err := f.wizard.UpdateSelection(id, SelectionUpdate{Arrival: ptr("SFO")})
	require.NoError(t, err)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.PriceGraphTable{}, nil).Times(1)

	results, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, sfo, results.Criteria.Arrival)
	assert.Empty(t, results.Rows)
}

func TestWizard_Search_RemoteErrorThenRetry(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	gomock.InOrder(
		f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &domain.RemoteServiceError{StatusCode: 500, Body: "internal"}),
		f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(threeRowTable(), nil),
	)

	_, err := f.wizard.Search(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrRemoteService)
	assert.EqualError(t, err, "Error 500: internal")

	screen, err := f.wizard.Current(id)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingCriteria, screen.State)
	require.NotNil(t, screen.Selection)
	assert.False(t, screen.Selection.HasCachedResults)

	results, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, results.Rows, 3)
}

func TestWizard_Search_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := domain.NewMockCredentialProvider(ctrl)
	credentials.EXPECT().CredentialFor(domain.PriceGraphEndpoint).
		Return(domain.EndpointCredential{}, &domain.NotAuthenticatedError{Endpoint: domain.PriceGraphEndpoint})

	f := newFixtureWithCredentials(t, ctrl, credentials, nil)
	id := f.newSessionWithRoute(t)

	_, err := f.wizard.Search(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestWizard_Search_AppliesFetchTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := domain.NewMockCredentialProvider(ctrl)
	credentials.EXPECT().CredentialFor(gomock.Any()).Return(testCredential, nil)

	f := newFixtureWithCredentials(t, ctrl, credentials, &Config{DayRangeFloor: 1, FetchTimeout: time.Minute})
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.PriceGraphQuery, _ domain.EndpointCredential) (domain.PriceGraphTable, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "fetch should run under a deadline")
			return nil, nil
		})

	results, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, results.Rows)
	assert.NotNil(t, results.Rows)
}

func TestWizard_Search_ConcurrentOnOneSessionFetchesOnce(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.PriceGraphQuery, domain.EndpointCredential) (domain.PriceGraphTable, error) {
			time.Sleep(20 * time.Millisecond)
			return threeRowTable(), nil
		}).
		Times(1)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.wizard.Search(context.Background(), id)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestWizard_StickyDayRange(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil).AnyTimes()

	_, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)

	selection, err := f.wizard.Back(id)
	require.NoError(t, err)
	assert.True(t, selection.DayRangeExplicit)
	assert.Equal(t, domain.DayRange{MinDays: 2, MaxDays: 5}, selection.DayRange, "explicit range survives navigation")
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 9}, selection.DayRangeBounds)

	// A wider date range keeps the explicit value
	selection, err = f.wizard.UpdateSelection(id, SelectionUpdate{EndDate: ptr("2024-06-30")})
	require.NoError(t, err)
	assert.Equal(t, domain.DayRange{MinDays: 2, MaxDays: 5}, selection.DayRange)
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 29}, selection.DayRangeBounds)

	// A narrower one clamps it into the new bounds
	selection, err = f.wizard.UpdateSelection(id, SelectionUpdate{EndDate: ptr("2024-06-03")})
	require.NoError(t, err)
	assert.Equal(t, domain.DayRange{MinDays: 2, MaxDays: 2}, selection.DayRange)

	// Reset goes back to the derived default
	selection, err = f.wizard.UpdateSelection(id, SelectionUpdate{ResetDayRange: true})
	require.NoError(t, err)
	assert.False(t, selection.DayRangeExplicit)
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 2}, selection.DayRange)
}

func TestWizard_DerivedDayRangeFollowsDates(t *testing.T) {
	f := newFixture(t)

	created, err := f.wizard.CreateSession()
	require.NoError(t, err)

	selection, err := f.wizard.UpdateSelection(created.SessionID, SelectionUpdate{
		StartDate: ptr("2024-06-01"),
		EndDate:   ptr("2024-06-10"),
	})
	require.NoError(t, err)
	assert.False(t, selection.DayRangeExplicit)
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 9}, selection.DayRange)

	selection, err = f.wizard.UpdateSelection(created.SessionID, SelectionUpdate{EndDate: ptr("2024-06-01")})
	require.NoError(t, err)
	assert.Equal(t, domain.DayRange{MinDays: 0, MaxDays: 1}, selection.DayRange, "floor applies to same-day ranges")
}

func TestWizard_UpdateSelection_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		update SelectionUpdate
		field  string
	}{
		{"unknown airport", SelectionUpdate{Departure: ptr("ZZZ")}, "departure"},
		{"bad start date", SelectionUpdate{StartDate: ptr("06/01/2024")}, "startDate"},
		{"bad end date", SelectionUpdate{EndDate: ptr("2024-02-30")}, "endDate"},
		{"negative min days", SelectionUpdate{MinDays: ptr(-1)}, "dayRange"},
		{"min above max", SelectionUpdate{MinDays: ptr(6), MaxDays: ptr(3)}, "dayRange"},
		{"max above bounds", SelectionUpdate{MaxDays: ptr(10)}, "dayRange"},
		{"valid field with invalid days", SelectionUpdate{Departure: ptr("LAX"), MaxDays: ptr(99)}, "dayRange"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := f.newSessionWithRoute(t)

			_, err := f.wizard.UpdateSelection(id, tt.update)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)

			// Nothing was written
			selection, err := f.wizard.Selection(id)
			require.NoError(t, err)
			assert.Equal(t, sfo, selection.Departure.Airport)
			assert.Equal(t, "2024-06-01", domain.FormatDate(selection.StartDate))
			assert.Equal(t, domain.DayRange{MinDays: 2, MaxDays: 5}, selection.DayRange)
		})
	}
}

func TestWizard_UpdateSelection_ClearAirport(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	selection, err := f.wizard.UpdateSelection(id, SelectionUpdate{Departure: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, selection.Departure)
	assert.NotNil(t, selection.Arrival)
}

func TestWizard_UpdateSelection_OnResultsScreen(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil)

	_, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)

	_, err = f.wizard.UpdateSelection(id, SelectionUpdate{Departure: ptr("LAX")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWizard_SetFilters(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	_, err := f.wizard.SetFilters(id, FilterUpdate{PriceCeiling: ptr(100.0)})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "filters need results")

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil)
	_, err = f.wizard.Search(context.Background(), id)
	require.NoError(t, err)

	_, err = f.wizard.SetFilters(id, FilterUpdate{PriceCeiling: ptr(-1.0)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Duration is stored but does not filter
	results, err := f.wizard.SetFilters(id, FilterUpdate{MaxDuration: ptr(3)})
	require.NoError(t, err)
	require.NotNil(t, results.MaxDuration)
	assert.Equal(t, 3, *results.MaxDuration)
	assert.Len(t, results.Rows, 3)
	assert.Equal(t, 400.0, results.PriceCeiling)

	// Filters survive navigation when criteria do not change
	_, err = f.wizard.SetFilters(id, FilterUpdate{PriceCeiling: ptr(250.0)})
	require.NoError(t, err)
	_, err = f.wizard.Back(id)
	require.NoError(t, err)
	results, err = f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 250.0, results.PriceCeiling)
	assert.Len(t, results.Rows, 2)
}

func TestWizard_NewFetchResetsCeiling(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil).Times(2)

	_, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	_, err = f.wizard.SetFilters(id, FilterUpdate{PriceCeiling: ptr(150.0)})
	require.NoError(t, err)

	_, err = f.wizard.Back(id)
	require.NoError(t, err)
	_, err = f.wizard.UpdateSelection(id, SelectionUpdate{Arrival: ptr("LAX")})
	require.NoError(t, err)

	results, err := f.wizard.Search(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 400.0, results.PriceCeiling)
	assert.Len(t, results.Rows, 3)
}

func TestWizard_Current(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	screen, err := f.wizard.Current(id)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingCriteria, screen.State)
	assert.NotNil(t, screen.Selection)
	assert.Nil(t, screen.Results)

	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(threeRowTable(), nil)
	_, err = f.wizard.Search(context.Background(), id)
	require.NoError(t, err)

	screen, err = f.wizard.Current(id)
	require.NoError(t, err)
	assert.Equal(t, StateFiltering, screen.State)
	assert.Nil(t, screen.Selection)
	require.NotNil(t, screen.Results)
	assert.Len(t, screen.Results.Rows, 3)
}

func TestWizard_EndSession(t *testing.T) {
	f := newFixture(t)
	id := f.newSessionWithRoute(t)

	require.NoError(t, f.wizard.EndSession(id))
	assert.ErrorIs(t, f.wizard.EndSession(id), domain.ErrSessionNotFound)

	_, err := f.wizard.Selection(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = f.wizard.Search(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = f.wizard.Back(id)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

func TestWizard_SessionsAreIsolated(t *testing.T) {
	f := newFixture(t)
	first := f.newSessionWithRoute(t)
	second := f.newSessionWithRoute(t)

	_, err := f.wizard.UpdateSelection(second, SelectionUpdate{Departure: ptr("LAX")})
	require.NoError(t, err)

	selection, err := f.wizard.Selection(first)
	require.NoError(t, err)
	assert.Equal(t, sfo, selection.Departure.Airport)
}

func TestWizard_AirportOptions(t *testing.T) {
	f := newFixture(t)

	byCode := f.wizard.AirportOptions("iata_code")
	assert.Equal(t, []domain.AirportOption{
		{Code: "JFK", Label: "JFK"},
		{Code: "LAX", Label: "LAX"},
		{Code: "SFO", Label: "SFO"},
	}, byCode)

	byName := f.wizard.AirportOptions("name")
	require.Len(t, byName, 3)
	assert.Equal(t, "JFK", byName[0].Code)
	assert.Equal(t, jfk.Name, byName[0].Label)

	assert.Equal(t, byCode, f.wizard.AirportOptions(""), "code is the default")
}
