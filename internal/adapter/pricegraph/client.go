// Package pricegraph is the client of the remote price graph service.
package pricegraph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
)

// Form field names of the price graph request.
const (
	FieldDepartureAirport   = "departureAirport"
	FieldDestinationAirport = "destinationAirport"
	FieldStartDate          = "startDate"
	FieldReturnDate         = "returnDate"
	FieldMinDays            = "minDays"
	FieldMaxDays            = "maxDays"
	FieldMaxPrice           = "maxPrice"
	FieldMaxDuration        = "maxDuration"
)

// Default client settings.
const (
	DefaultTimeout          = 20 * time.Second
	DefaultRateLimit        = 5.0
	DefaultBurst            = 10
	DefaultMaxResponseBytes = 10 << 20
)

// Config holds the client settings.
type Config struct {
	// URL is the getPriceGraph endpoint
	URL string

	// Timeout bounds one request including reading the body
	Timeout time.Duration

	// RateLimit is the sustained outbound requests per second
	RateLimit float64

	// Burst is the token bucket size
	Burst int

	// MaxResponseBytes caps the response body
	MaxResponseBytes int64
}

// Client issues price graph queries. It is safe for concurrent use.
type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxBytes   int64
	log        *logger.Logger
}

// Ensure Client implements domain.PriceGraphFetcher.
var _ domain.PriceGraphFetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a price graph client. Zero config values take defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponseBytes
	}

	c := &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		maxBytes:   cfg.MaxResponseBytes,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch sends one form-encoded POST for query and returns the normalized table.
// Non-200 answers fail with *domain.RemoteServiceError and are never retried.
// Payloads that do not match the expected shape wrap domain.ErrMalformedResponse.
func (c *Client) Fetch(ctx context.Context, query domain.PriceGraphQuery, credential domain.EndpointCredential) (domain.PriceGraphTable, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, limiterError(ctx, err)
	}

	form := encodeQuery(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("pricegraph: creating request: %w", err)
	}
	req.Header.Set("Authorization", credential.AuthorizationHeader())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pricegraph: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("pricegraph: reading response: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", domain.ErrMalformedResponse, c.maxBytes)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Str("criteria", query.Criteria.String()).
			Msg("price graph request rejected")
		return nil, &domain.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	table, err := normalize(body)
	if err != nil {
		return nil, err
	}
	table = table.WithMaxPrice(query.MaxPrice)

	c.log.Ctx(ctx).Debug().
		Int("rows", len(table)).
		Dur("duration", time.Since(start)).
		Str("criteria", query.Criteria.String()).
		Msg("price graph fetched")

	return table, nil
}

// limiterError wraps a failed limiter wait. A wait refused because it would
// outlast the deadline is reported as context.DeadlineExceeded.
func limiterError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("pricegraph: wait for rate limiter: %w", err)
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("pricegraph: wait for rate limiter: %w: %v", context.DeadlineExceeded, err)
	}
	return fmt.Errorf("pricegraph: wait for rate limiter: %w", err)
}

// encodeQuery builds the request form. Every field is always present.
func encodeQuery(q domain.PriceGraphQuery) url.Values {
	return url.Values{
		FieldDepartureAirport:   {q.Criteria.Departure.Code},
		FieldDestinationAirport: {q.Criteria.Arrival.Code},
		FieldStartDate:          {domain.FormatDate(q.Criteria.StartDate)},
		FieldReturnDate:         {domain.FormatDate(q.Criteria.EndDate)},
		FieldMinDays:            {strconv.Itoa(q.Criteria.MinDays)},
		FieldMaxDays:            {strconv.Itoa(q.Criteria.MaxDays)},
		FieldMaxPrice:           {strconv.FormatFloat(q.MaxPrice, 'f', -1, 64)},
		FieldMaxDuration:        {strconv.Itoa(q.MaxDuration)},
	}
}
