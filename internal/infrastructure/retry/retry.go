// Package retry retries identity token fetches with exponential backoff.
// Price graph queries never go through it: a failed search is retried by the user.
package retry

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Config describes how a token fetch is retried.
type Config struct {
	// MaxAttempts counts the first attempt too. Values below 1 mean a single attempt.
	MaxAttempts int

	// InitialDelay is the wait after the first failure.
	InitialDelay time.Duration

	// MaxDelay caps every wait, jitter included.
	MaxDelay time.Duration

	// Multiplier grows the wait after each failure. Values below 1 keep it constant.
	Multiplier float64

	// JitterFactor adds up to this fraction of the wait at random (0.0 to 1.0).
	JitterFactor float64

	// RetryIf reports whether an error is worth another attempt. Nil retries everything.
	RetryIf func(error) bool

	// OnRetry is called before each wait with the failed attempt number.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// TokenFetchConfig is tuned for identity token issuance at startup.
// Permanent errors (bad credentials file, unsupported credential type) stop immediately.
var TokenFetchConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
	RetryIf:      SkipPermanent,
}

// Do calls fn until it succeeds, returns a non-retryable error, runs out of
// attempts or ctx ends. The attempt number passed to fn starts at 1.
// The error of the last attempt is returned unchanged.
func Do[T any](ctx context.Context, cfg Config, fn func(ctx context.Context, attempt int) (T, error)) (T, error) {
	var zero T
	attempts := max(cfg.MaxAttempts, 1)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx, attempt)
		if err == nil {
			return result, nil
		}
		if attempt >= attempts || (cfg.RetryIf != nil && !cfg.RetryIf(err)) {
			return zero, err
		}

		wait := cfg.withJitter(cfg.Backoff(attempt))
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// Backoff is the wait after the given failed attempt, before jitter.
func (c Config) Backoff(attempt int) time.Duration {
	delay := float64(c.InitialDelay)
	if c.Multiplier > 1 {
		for i := 1; i < attempt; i++ {
			delay *= c.Multiplier
			if c.MaxDelay > 0 && delay >= float64(c.MaxDelay) {
				return c.MaxDelay
			}
		}
	}
	return capDelay(time.Duration(delay), c.MaxDelay)
}

func (c Config) withJitter(d time.Duration) time.Duration {
	if c.JitterFactor > 0 {
		d += time.Duration(rand.Float64() * float64(d) * c.JitterFactor)
	}
	return capDelay(d, c.MaxDelay)
}

func capDelay(d, maxDelay time.Duration) time.Duration {
	if maxDelay > 0 && d > maxDelay {
		return maxDelay
	}
	return d
}

// WithMaxAttempts returns a copy with the given attempt count.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy with the given first wait.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithOnRetry returns a copy that reports each retry to fn.
func (c Config) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Config {
	c.OnRetry = fn
	return c
}

// Permanent marks an error that no further attempt can fix.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error { return p.Err }

// NewPermanent wraps err as permanent. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err or anything it wraps is permanent.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that stops on permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
