package usecase

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// Fetch outcomes reported to SearchMetrics.
const (
	OutcomeSuccess     = "success"
	OutcomeRemoteError = "remote_error"
	OutcomeMalformed   = "malformed"
	OutcomeTimeout     = "timeout"
	OutcomeCancelled   = "cancelled"
	OutcomeError       = "error"
)

// SearchMetrics records how searches were served.
type SearchMetrics interface {
	CacheHit()
	CacheMiss()
	ObserveFetch(outcome string, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) CacheHit()                          {}
func (noopMetrics) CacheMiss()                         {}
func (noopMetrics) ObserveFetch(string, time.Duration) {}

// FetchOutcome classifies a fetch result for metrics.
func FetchOutcome(err error) string {
	var netErr net.Error
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrRemoteService):
		return OutcomeRemoteError
	case errors.Is(err, domain.ErrMalformedResponse):
		return OutcomeMalformed
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	case errors.Is(err, context.Canceled):
		return OutcomeCancelled
	case errors.As(err, &netErr) && netErr.Timeout():
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
