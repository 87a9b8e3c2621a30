// Package auth obtains and holds the bearer credentials of the remote endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/retry"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/timeutil"
)

// Authenticator fans out one token fetch per endpoint and joins them all
// before any credential becomes visible.
//
// Failure policy is collect-all-then-report: every fetch runs to completion,
// each failure becomes a *domain.AuthError, and all of them are returned joined.
// A failed round leaves the previous credential set (if any) untouched.
type Authenticator struct {
	source      domain.IdentityTokenSource
	clock       timeutil.Clock
	log         *logger.Logger
	retryConfig retry.Config
	concurrency int

	mu          sync.RWMutex
	credentials map[string]domain.EndpointCredential
}

// Ensure Authenticator implements domain.CredentialProvider.
var _ domain.CredentialProvider = (*Authenticator)(nil)

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithClock sets the clock used for ObtainedAt.
func WithClock(clock timeutil.Clock) Option {
	return func(a *Authenticator) { a.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(a *Authenticator) { a.log = log }
}

// WithRetryConfig sets the retry policy of each token fetch.
func WithRetryConfig(cfg retry.Config) Option {
	return func(a *Authenticator) { a.retryConfig = cfg }
}

// WithConcurrency limits parallel fetches. Zero or less means one goroutine per endpoint.
func WithConcurrency(n int) Option {
	return func(a *Authenticator) { a.concurrency = n }
}

// NewAuthenticator creates an Authenticator backed by source.
func NewAuthenticator(source domain.IdentityTokenSource, opts ...Option) *Authenticator {
	a := &Authenticator{
		source:      source,
		clock:       timeutil.NewRealClock(),
		log:         logger.Nop(),
		retryConfig: retry.TokenFetchConfig,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// fetchResult holds the outcome of a single endpoint authentication.
type fetchResult struct {
	Endpoint   string
	Credential domain.EndpointCredential
	Err        error
	Duration   time.Duration
}

// AuthenticateAll obtains one credential per endpoint (name -> URL).
// It returns only after every fetch has finished. On success the whole
// credential set is swapped in and a copy is returned; on failure the
// joined *domain.AuthError values are returned and no credential is exposed.
func (a *Authenticator) AuthenticateAll(ctx context.Context, endpoints map[string]string) (map[string]domain.EndpointCredential, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("no endpoints to authenticate")
	}

	var g errgroup.Group
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}

	results := make([]fetchResult, 0, len(endpoints))
	var resultsMu sync.Mutex

	for name, url := range endpoints {
		g.Go(func() error {
			result := a.authenticate(ctx, name, url)

			resultsMu.Lock()
			results = append(results, result)
			resultsMu.Unlock()

			// Failures are collected, not propagated, so no sibling is cut short
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Endpoint < results[j].Endpoint })

	var failures []error
	credentials := make(map[string]domain.EndpointCredential, len(results))
	for _, r := range results {
		if r.Err != nil {
			failures = append(failures, domain.NewAuthError(r.Endpoint, r.Err))
			a.log.Warn().
				Str("endpoint", r.Endpoint).
				Dur("duration", r.Duration).
				Err(r.Err).
				Msg("endpoint authentication failed")
			continue
		}
		credentials[r.Endpoint] = r.Credential
		a.log.Debug().
			Str("endpoint", r.Endpoint).
			Dur("duration", r.Duration).
			Msg("endpoint authenticated")
	}

	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}

	a.mu.Lock()
	a.credentials = credentials
	a.mu.Unlock()

	a.log.Info().
		Int("endpoints", len(credentials)).
		Str("names", strings.Join(sortedNames(credentials), ",")).
		Msg("all endpoints authenticated")

	return copyCredentials(credentials), nil
}

// authenticate fetches one token with retry and panic recovery.
func (a *Authenticator) authenticate(ctx context.Context, name, url string) (result fetchResult) {
	start := time.Now()
	result.Endpoint = name

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("token source panic: %v", r)
		}
		result.Duration = time.Since(start)
	}()

	cfg := a.retryConfig
	if cfg.OnRetry == nil {
		cfg.OnRetry = func(attempt int, err error, wait time.Duration) {
			a.log.WithEndpoint(name).Debug().
				Int("attempt", attempt).
				Dur("wait", wait).
				Err(err).
				Msg("retrying token fetch")
		}
	}

	token, err := retry.Do(ctx, cfg, func(ctx context.Context, _ int) (string, error) {
		return a.source.IDToken(ctx, url)
	})
	if err != nil {
		result.Err = err
		return result
	}
	if token == "" {
		result.Err = errors.New("token source returned an empty token")
		return result
	}

	result.Credential = domain.EndpointCredential{
		EndpointName: name,
		Token:        token,
		ObtainedAt:   a.clock.Now(),
	}
	return result
}

// CredentialFor returns the credential of a named endpoint.
// It fails with *domain.NotAuthenticatedError before a successful
// AuthenticateAll or for an unknown name.
func (a *Authenticator) CredentialFor(endpointName string) (domain.EndpointCredential, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	cred, ok := a.credentials[endpointName]
	if !ok {
		return domain.EndpointCredential{}, &domain.NotAuthenticatedError{Endpoint: endpointName}
	}
	return cred, nil
}

// Ready reports whether a credential set is in place.
func (a *Authenticator) Ready() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.credentials != nil
}

func copyCredentials(in map[string]domain.EndpointCredential) map[string]domain.EndpointCredential {
	out := make(map[string]domain.EndpointCredential, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedNames(in map[string]domain.EndpointCredential) []string {
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
