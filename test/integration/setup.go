// Package integration provides helpers and integration tests for the flight prices checker.
// Integration tests verify that components work together correctly: the HTTP handlers,
// the wizard use case, the real price graph client and a mock pricing service.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-prices-checker/internal/adapter/airports"
	"github.com/flight-search/flight-prices-checker/internal/adapter/auth"
	httpAdapter "github.com/flight-search/flight-prices-checker/internal/adapter/http"
	"github.com/flight-search/flight-prices-checker/internal/adapter/http/middleware"
	"github.com/flight-search/flight-prices-checker/internal/adapter/http/response"
	"github.com/flight-search/flight-prices-checker/internal/adapter/pricegraph"
	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/metrics"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-prices-checker/internal/usecase"
	"github.com/flight-search/flight-prices-checker/test/mock"
	"github.com/flight-search/flight-prices-checker/test/testutil"
)

// TestToken is the bearer token the test stack authenticates with.
const TestToken = "integration-token"

// DefaultNow is the wall clock of every test stack unless overridden.
var DefaultNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

// StackConfig customizes a test stack. Zero values take defaults.
type StackConfig struct {
	Now          time.Time
	Location     *time.Location
	FetchTimeout time.Duration
	IdleTTL      time.Duration

	// SkipAuth leaves the authenticator without credentials
	SkipAuth bool
}

// Stack is the whole service wired against a mock pricing service.
type Stack struct {
	Echo          *echo.Echo
	Wizard        usecase.WizardUseCase
	Store         *usecase.SessionStore
	Authenticator *auth.Authenticator
	PriceGraph    *mock.PriceGraphServer
	Clock         *timeutil.MockClock
	Metrics       *metrics.Collector
}

// NewStack builds a stack with the default configuration.
func NewStack(t *testing.T) *Stack {
	return NewStackWithConfig(t, StackConfig{})
}

// NewStackWithConfig builds a stack. The mock server is closed when the test ends.
func NewStackWithConfig(t *testing.T, cfg StackConfig) *Stack {
	t.Helper()

	if cfg.Now.IsZero() {
		cfg.Now = DefaultNow
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 2 * time.Second
	}
	if cfg.IdleTTL == 0 {
		cfg.IdleTTL = usecase.DefaultSessionIdleTTL
	}

	server := mock.NewPriceGraphServer().RequireToken(TestToken)
	t.Cleanup(server.Close)

	directory, err := airports.Load(testutil.DataPath(t, "airports.csv"))
	if err != nil {
		t.Fatalf("Failed to load airports: %v", err)
	}

	clock := timeutil.NewMockClock(cfg.Now)

	authenticator := auth.NewAuthenticator(auth.NewStaticTokenSource(TestToken), auth.WithClock(clock))
	if !cfg.SkipAuth {
		endpoints := map[string]string{domain.PriceGraphEndpoint: server.URL()}
		if _, err := authenticator.AuthenticateAll(context.Background(), endpoints); err != nil {
			t.Fatalf("Failed to authenticate: %v", err)
		}
	}

	client := pricegraph.NewClient(pricegraph.Config{
		URL:       server.URL(),
		Timeout:   5 * time.Second,
		RateLimit: 1000,
		Burst:     100,
	})

	store := usecase.NewSessionStore(usecase.WithStoreClock(clock), usecase.WithIdleTTL(cfg.IdleTTL))

	collector := metrics.NewCollector("test")
	collector.RegisterSessionGauge("test", store.Len)

	wizard := usecase.NewWizard(directory, client, authenticator, store, &usecase.Config{
		DayRangeFloor: usecase.DefaultDayRangeFloor,
		Location:      cfg.Location,
		FetchTimeout:  cfg.FetchTimeout,
	}, usecase.WithClock(clock), usecase.WithMetrics(collector))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupWithConfig(e, logger.Nop().Logger, middleware.Config{Observer: collector})
	e.HTTPErrorHandler = httpAdapter.NewErrorHandler(logger.Nop())
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))
	httpAdapter.RegisterRoutes(e, httpAdapter.NewWizardHandler(wizard))

	return &Stack{
		Echo:          e,
		Wizard:        wizard,
		Store:         store,
		Authenticator: authenticator,
		PriceGraph:    server,
		Clock:         clock,
		Metrics:       collector,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (s *Stack) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

func sessionPath(id, suffix string) string {
	return "/api/v1/sessions/" + id + suffix
}

// CreateSession starts a session and fails the test unless it returns 201.
func (s *Stack) CreateSession(t *testing.T) httpAdapter.SelectionDTO {
	t.Helper()
	resp := s.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create session: status %d: %s", resp.Code, resp.Body)
	}
	return resp.Selection(t)
}

// UpdateSelection patches the selection screen.
func (s *Stack) UpdateSelection(id string, body map[string]interface{}) Response {
	return s.Do(Request{Method: http.MethodPatch, Path: sessionPath(id, "/selection"), Body: body})
}

// Search submits the selection screen.
func (s *Stack) Search(id string) Response {
	return s.Do(Request{Method: http.MethodPost, Path: sessionPath(id, "/search")})
}

// Back returns to the selection screen.
func (s *Stack) Back(id string) Response {
	return s.Do(Request{Method: http.MethodPost, Path: sessionPath(id, "/back")})
}

// Results reads the results screen.
func (s *Stack) Results(id string) Response {
	return s.Do(Request{Method: http.MethodGet, Path: sessionPath(id, "/results")})
}

// SetFilters replaces the result filters.
func (s *Stack) SetFilters(id string, body map[string]interface{}) Response {
	return s.Do(Request{Method: http.MethodPut, Path: sessionPath(id, "/results/filters"), Body: body})
}

// Screen reads whichever screen the session is on.
func (s *Stack) Screen(id string) Response {
	return s.Do(Request{Method: http.MethodGet, Path: sessionPath(id, "")})
}

// SFOToJFK is the selection used by most scenarios.
func SFOToJFK() map[string]interface{} {
	return map[string]interface{}{
		"departure": "SFO",
		"arrival":   "JFK",
		"startDate": "2024-06-01",
		"endDate":   "2024-06-10",
		"minDays":   2,
		"maxDays":   5,
	}
}

// Selection parses the body as a selection screen.
func (r Response) Selection(t *testing.T) httpAdapter.SelectionDTO {
	t.Helper()
	return testutil.DecodeJSON[httpAdapter.SelectionDTO](t, r.Body)
}

// Results parses the body as a results screen.
func (r Response) Results(t *testing.T) httpAdapter.ResultsDTO {
	t.Helper()
	return testutil.DecodeJSON[httpAdapter.ResultsDTO](t, r.Body)
}

// Screen parses the body as a screen.
func (r Response) Screen(t *testing.T) httpAdapter.ScreenDTO {
	t.Helper()
	return testutil.DecodeJSON[httpAdapter.ScreenDTO](t, r.Body)
}

// Error parses the body as an error response.
func (r Response) Error(t *testing.T) response.ErrorDetail {
	t.Helper()
	return testutil.DecodeJSON[response.ErrorDetail](t, r.Body)
}
