package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs every request on completion.
// The level follows the status: 5xx at error, 4xx at warn, the rest at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Let Echo's error handler write the response so the status is final
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			withRequest(levelFor(log, res.Status), c).
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}

func levelFor(log zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= 500:
		return log.Error()
	case status >= 400:
		return log.Warn()
	default:
		return log.Info()
	}
}

// withRequest adds the correlation fields shared by request and panic entries.
func withRequest(event *zerolog.Event, c echo.Context) *zerolog.Event {
	event = event.
		Str("request_id", GetRequestID(c)).
		Str("path", c.Request().URL.Path)
	if id := c.Param("id"); id != "" {
		event = event.Str("session_id", id)
	}
	return event
}
