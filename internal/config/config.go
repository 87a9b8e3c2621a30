// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Authentication modes.
const (
	AuthModeGoogle = "google"
	AuthModeStatic = "static"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	App        AppConfig
	Data       DataConfig
	Auth       AuthConfig
	PriceGraph PriceGraphConfig
	Wizard     WizardConfig
	Metrics    MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone decides what "today" is for the default date range
	Timezone string `env:"APP_TIMEZONE" envDefault:"UTC"`
}

// DataConfig holds reference data locations.
type DataConfig struct {
	AirportsFile  string `env:"DATA_AIRPORTS_FILE" envDefault:"data/airports.csv"`
	EndpointsFile string `env:"DATA_ENDPOINTS_FILE" envDefault:"data/endpoints.json"`
}

// AuthConfig holds endpoint authentication settings.
type AuthConfig struct {
	// Mode is "google" (service-account ID tokens) or "static" (fixed token, local development)
	Mode string `env:"AUTH_MODE" envDefault:"google"`

	// CredentialsFile is the service-account JSON used to mint ID tokens
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS" envDefault:"data/cloud_functions.json"`

	// StaticToken is the bearer token used in static mode
	StaticToken string `env:"AUTH_STATIC_TOKEN"`

	// Timeout bounds the whole authentication fan-out
	Timeout time.Duration `env:"AUTH_TIMEOUT" envDefault:"15s"`

	// Concurrency limits parallel token fetches; 0 means one task per endpoint
	Concurrency int `env:"AUTH_CONCURRENCY" envDefault:"0"`

	// RetryAttempts is the number of attempts per token fetch
	RetryAttempts int `env:"AUTH_RETRY_ATTEMPTS" envDefault:"3"`
}

// PriceGraphConfig holds settings for the pricing service client.
type PriceGraphConfig struct {
	Timeout          time.Duration `env:"PRICEGRAPH_TIMEOUT" envDefault:"20s"`
	RateLimit        float64       `env:"PRICEGRAPH_RATE_LIMIT" envDefault:"5"`
	Burst            int           `env:"PRICEGRAPH_BURST" envDefault:"10"`
	MaxResponseBytes int64         `env:"PRICEGRAPH_MAX_RESPONSE_BYTES" envDefault:"10485760"`
}

// WizardConfig holds search wizard and session settings.
type WizardConfig struct {
	// DayRangeFloor is the minimum upper bound of the day-range slider
	DayRangeFloor int `env:"WIZARD_DAY_RANGE_FLOOR" envDefault:"1"`

	// SessionIdleTTL ends sessions that were not touched for this long
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`

	// SweepInterval is how often idle sessions are evicted
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"flight_prices"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// The fetch runs inside a request, so it must finish before the response deadline
	if cfg.PriceGraph.Timeout <= 0 {
		return fmt.Errorf("PRICEGRAPH_TIMEOUT must be positive")
	}
	if cfg.PriceGraph.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("PRICEGRAPH_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.PriceGraph.Timeout, cfg.Server.WriteTimeout)
	}
	if cfg.PriceGraph.RateLimit <= 0 {
		return fmt.Errorf("PRICEGRAPH_RATE_LIMIT must be positive")
	}
	if cfg.PriceGraph.Burst < 1 {
		return fmt.Errorf("PRICEGRAPH_BURST must be at least 1")
	}
	if cfg.PriceGraph.MaxResponseBytes <= 0 {
		return fmt.Errorf("PRICEGRAPH_MAX_RESPONSE_BYTES must be positive")
	}

	switch cfg.Auth.Mode {
	case AuthModeGoogle:
		if cfg.Auth.CredentialsFile == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS is required when AUTH_MODE=google")
		}
	case AuthModeStatic:
		if cfg.Auth.StaticToken == "" {
			return fmt.Errorf("AUTH_STATIC_TOKEN is required when AUTH_MODE=static")
		}
	default:
		return fmt.Errorf("AUTH_MODE must be one of: google, static; got %q", cfg.Auth.Mode)
	}
	if cfg.Auth.Timeout <= 0 {
		return fmt.Errorf("AUTH_TIMEOUT must be positive")
	}
	if cfg.Auth.Concurrency < 0 {
		return fmt.Errorf("AUTH_CONCURRENCY must be non-negative")
	}
	if cfg.Auth.RetryAttempts < 1 {
		return fmt.Errorf("AUTH_RETRY_ATTEMPTS must be at least 1")
	}

	if cfg.Data.AirportsFile == "" {
		return fmt.Errorf("DATA_AIRPORTS_FILE is required")
	}
	if cfg.Data.EndpointsFile == "" {
		return fmt.Errorf("DATA_ENDPOINTS_FILE is required")
	}

	if cfg.Wizard.DayRangeFloor < 0 {
		return fmt.Errorf("WIZARD_DAY_RANGE_FLOOR must be non-negative")
	}
	if cfg.Wizard.SessionIdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be positive")
	}
	if cfg.Wizard.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Namespace == "" {
		return fmt.Errorf("METRICS_NAMESPACE is required when METRICS_ENABLED=true")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE %q is not a valid IANA zone: %w", cfg.App.Timezone, err)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
