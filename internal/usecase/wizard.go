package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/timeutil"
)

// Default wizard values.
const (
	DefaultDayRangeFloor = 1
	DefaultFetchTimeout  = 20 * time.Second
)

// WizardUseCase drives the selection and results screens of each session.
type WizardUseCase interface {
	// AirportOptions lists every airport rendered for the display mode.
	AirportOptions(searchBy string) []domain.AirportOption

	// CreateSession starts a session on the selection screen.
	CreateSession() (*SelectionView, error)

	// Current returns the screen the session is on.
	Current(id string) (*ScreenView, error)

	// Selection returns the selection screen.
	Selection(id string) (*SelectionView, error)

	// UpdateSelection writes sticky fields and recomputes derived defaults.
	// Changing any search criterion drops the cached results.
	UpdateSelection(id string, update SelectionUpdate) (*SelectionView, error)

	// Search moves to the results screen, fetching at most once per criteria.
	Search(ctx context.Context, id string) (*ResultsView, error)

	// Back returns to the selection screen, keeping every selection.
	Back(id string) (*SelectionView, error)

	// Results returns the results screen.
	Results(id string) (*ResultsView, error)

	// SetFilters updates the local filters of the results screen.
	SetFilters(id string, update FilterUpdate) (*ResultsView, error)

	// EndSession destroys the session.
	EndSession(id string) error
}

// Config contains configuration options for the wizard.
type Config struct {
	// DayRangeFloor is the minimum upper bound of the day-range slider
	DayRangeFloor int

	// Location decides what "today" is for the default date range
	Location *time.Location

	// FetchTimeout bounds one price graph fetch; 0 relies on the caller's context
	FetchTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DayRangeFloor: DefaultDayRangeFloor,
		Location:      time.UTC,
		FetchTimeout:  DefaultFetchTimeout,
	}
}

// WizardOption configures the wizard.
type WizardOption func(*wizard)

// WithClock sets the clock used for default dates and fetch timestamps.
func WithClock(clock timeutil.Clock) WizardOption {
	return func(w *wizard) { w.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) WizardOption {
	return func(w *wizard) { w.log = log }
}

// WithMetrics sets where cache hits and fetch outcomes are reported.
func WithMetrics(m SearchMetrics) WizardOption {
	return func(w *wizard) { w.metrics = m }
}

// wizard implements WizardUseCase.
type wizard struct {
	airports    domain.AirportLookup
	fetcher     domain.PriceGraphFetcher
	credentials domain.CredentialProvider
	store       *SessionStore
	clock       timeutil.Clock
	log         *logger.Logger
	metrics     SearchMetrics
	cfg         Config
}

// NewWizard creates the wizard use case.
// If config is nil, default values are used.
func NewWizard(
	airports domain.AirportLookup,
	fetcher domain.PriceGraphFetcher,
	credentials domain.CredentialProvider,
	store *SessionStore,
	config *Config,
	opts ...WizardOption,
) WizardUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.DayRangeFloor >= 0 {
			cfg.DayRangeFloor = config.DayRangeFloor
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
		cfg.FetchTimeout = config.FetchTimeout
	}

	w := &wizard{
		airports:    airports,
		fetcher:     fetcher,
		credentials: credentials,
		store:       store,
		clock:       timeutil.NewRealClock(),
		log:         logger.Nop(),
		metrics:     noopMetrics{},
		cfg:         cfg,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *wizard) AirportOptions(searchBy string) []domain.AirportOption {
	return airportOptions(w.airports.All(), domain.ParseDisplayMode(searchBy))
}

func (w *wizard) CreateSession() (*SelectionView, error) {
	// today..tomorrow until the user picks dates
	start, end := timeutil.Window(w.clock, w.cfg.Location, 1)

	s := w.store.Create(func(id string, now time.Time) *Session {
		return newSession(id, now, start, end)
	})

	w.log.WithSession(s.ID).Info().
		Str("start_date", domain.FormatDate(start)).
		Msg("wizard session created")

	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSelectionView(s, w.cfg.DayRangeFloor), nil
}

func (w *wizard) Current(id string) (*ScreenView, error) {
	s, err := w.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := &ScreenView{State: s.state}
	if s.state == StateFiltering && s.table != nil {
		view.Results = buildResultsView(s)
	} else {
		view.Selection = buildSelectionView(s, w.cfg.DayRangeFloor)
	}
	return view, nil
}

func (w *wizard) Selection(id string) (*SelectionView, error) {
	s, err := w.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSelectionView(s, w.cfg.DayRangeFloor), nil
}

func (w *wizard) UpdateSelection(id string, update SelectionUpdate) (*SelectionView, error) {
	s, err := w.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelectingCriteria {
		return nil, fmt.Errorf("%w: go back to the selection screen before editing", domain.ErrInvalidTransition)
	}
	if update.IsEmpty() {
		return buildSelectionView(s, w.cfg.DayRangeFloor), nil
	}

	before := s.key(w.cfg.DayRangeFloor)
	if err := w.applyUpdate(s, update); err != nil {
		return nil, err
	}

	if s.table != nil && s.key(w.cfg.DayRangeFloor) != before {
		s.invalidate()
		w.log.WithSession(s.ID).Debug().Msg("selection changed, cached results dropped")
	}

	return buildSelectionView(s, w.cfg.DayRangeFloor), nil
}

// applyUpdate validates every field first and writes the slots only when all pass.
func (w *wizard) applyUpdate(s *Session, u SelectionUpdate) error {
	departure, err := w.resolveAirport("departure", u.Departure, s.departure)
	if err != nil {
		return err
	}
	arrival, err := w.resolveAirport("arrival", u.Arrival, s.arrival)
	if err != nil {
		return err
	}
	startDate, err := resolveDate("startDate", u.StartDate, s.startDate)
	if err != nil {
		return err
	}
	endDate, err := resolveDate("endDate", u.EndDate, s.endDate)
	if err != nil {
		return err
	}

	explicit := s.explicitDays
	if u.ResetDayRange {
		explicit = nil
	}
	if u.MinDays != nil || u.MaxDays != nil {
		bounds := dayBoundsFor(startDate, endDate, w.cfg.DayRangeFloor)
		days := effectiveDaysFor(explicit, bounds)
		if u.MinDays != nil {
			days.MinDays = *u.MinDays
		}
		if u.MaxDays != nil {
			days.MaxDays = *u.MaxDays
		}
		if err := days.Validate(); err != nil {
			return err
		}
		if days.MaxDays > bounds.MaxDays {
			return domain.NewValidationError("dayRange", fmt.Sprintf("maxDays must not exceed %d", bounds.MaxDays))
		}
		explicit = &days
	}

	if u.SearchBy != nil {
		// Only the rendering changes; selected airports are kept
		s.displayMode = domain.ParseDisplayMode(*u.SearchBy)
	}
	s.departure = departure
	s.arrival = arrival
	s.startDate = startDate
	s.endDate = endDate
	s.explicitDays = explicit
	return nil
}

func (w *wizard) resolveAirport(field string, code *string, current *domain.Airport) (*domain.Airport, error) {
	if code == nil {
		return current, nil
	}
	normalized := domain.NormalizeAirportCode(*code)
	if normalized == "" {
		return nil, nil
	}
	airport, ok := w.airports.LookupByCode(normalized)
	if !ok {
		return nil, domain.NewValidationError(field, fmt.Sprintf("unknown airport code %q", *code))
	}
	return &airport, nil
}

func resolveDate(field string, value *string, current time.Time) (time.Time, error) {
	if value == nil {
		return current, nil
	}
	if *value == "" {
		return time.Time{}, nil
	}
	date, err := domain.ParseDate(*value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, fmt.Sprintf("%s must be a YYYY-MM-DD date", field))
	}
	return date, nil
}

func (w *wizard) Search(ctx context.Context, id string) (*ResultsView, error) {
	s, err := w.store.Get(id)
	if err != nil {
		return nil, err
	}

	// Held across the fetch: concurrent searches on one session fetch once
	s.mu.Lock()
	defer s.mu.Unlock()

	log := w.log.Ctx(ctx).WithSession(s.ID)

	criteria, err := s.criteria(w.cfg.DayRangeFloor)
	if err != nil {
		return nil, err
	}

	if s.hasTableFor(criteria) {
		w.metrics.CacheHit()
		s.state = StateFiltering
		log.Debug().Str("criteria", criteria.String()).Msg("reusing cached price graph")
		return buildResultsView(s), nil
	}

	w.metrics.CacheMiss()

	credential, err := w.credentials.CredentialFor(domain.PriceGraphEndpoint)
	if err != nil {
		return nil, err
	}

	fetchCtx := ctx
	if w.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, w.cfg.FetchTimeout)
		defer cancel()
	}

	start := time.Now()
	table, err := w.fetcher.Fetch(fetchCtx, domain.NewPriceGraphQuery(criteria), credential)
	w.metrics.ObserveFetch(FetchOutcome(err), time.Since(start))
	if err != nil {
		log.Warn().
			Err(err).
			Str("criteria", criteria.String()).
			Dur("duration", time.Since(start)).
			Msg("price graph fetch failed")
		return nil, err
	}
	if table == nil {
		table = domain.PriceGraphTable{}
	}

	s.table = table
	s.tableCriteria = criteria
	s.fetchedAt = w.clock.Now()
	s.filters.PriceCeiling = nil
	s.state = StateFiltering

	log.Info().
		Str("criteria", criteria.String()).
		Int("rows", len(table)).
		Dur("duration", time.Since(start)).
		Msg("price graph fetched")

	return buildResultsView(s), nil
}

func (w *wizard) Back(id string) (*SelectionView, error) {
	s, err := w.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateSelectingCriteria
	return buildSelectionView(s, w.cfg.DayRangeFloor), nil
}

func (w *wizard) Results(id string) (*ResultsView, error) {
	s, err := w.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireResults(s); err != nil {
		return nil, err
	}
	return buildResultsView(s), nil
}

func (w *wizard) SetFilters(id string, update FilterUpdate) (*ResultsView, error) {
	s, err := w.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireResults(s); err != nil {
		return nil, err
	}

	filters := domain.ResultFilters{PriceCeiling: update.PriceCeiling, MaxDuration: update.MaxDuration}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	s.filters = filters

	return buildResultsView(s), nil
}

func (w *wizard) EndSession(id string) error {
	if err := w.store.Delete(id); err != nil {
		return err
	}
	w.log.WithSession(id).Info().Msg("wizard session ended")
	return nil
}

func requireResults(s *Session) error {
	if s.state != StateFiltering || s.table == nil {
		return fmt.Errorf("%w: no results yet, run a search first", domain.ErrInvalidTransition)
	}
	return nil
}
