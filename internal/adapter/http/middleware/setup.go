package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// MaxBodySize caps request bodies; wizard edits are a handful of fields.
const MaxBodySize = "64K"

// Config selects the optional parts of the middleware stack.
type Config struct {
	Recovery RecoveryConfig

	// BodyLimit overrides MaxBodySize when set
	BodyLimit string

	// Observer receives per-route request metrics; nil disables them
	Observer RequestObserver
}

// Setup registers the default middleware stack without metrics.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, Config{Recovery: DefaultRecoveryConfig()})
}

// SetupWithConfig registers the middleware stack. Call it before registering routes.
// Order, outermost first:
//  1. RequestID, so every later entry is correlated
//  2. RequestLogger
//  3. Metrics, when an observer is set
//  4. Recover, so panics become a 500 that the outer layers still see
//  5. BodyLimit
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, cfg Config) {
	limit := cfg.BodyLimit
	if limit == "" {
		limit = MaxBodySize
	}

	e.Use(RequestID())
	e.Use(RequestLogger(log))
	if cfg.Observer != nil {
		e.Use(Metrics(cfg.Observer))
	}
	e.Use(RecoverWithConfig(log, cfg.Recovery))
	e.Use(echomw.BodyLimit(limit))
}
