// Package main is the entry point for the flight prices checker service.
//
//	@title						Flight Prices Checker API
//	@version					1.0.0
//	@description				A two-screen search wizard over a remote price graph service: pick a route and a date window, fetch the candidate trips once, then narrow them locally with a price ceiling.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-prices-checker/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-prices-checker/docs"

	// Application layers
	"github.com/flight-search/flight-prices-checker/internal/adapter/airports"
	"github.com/flight-search/flight-prices-checker/internal/adapter/auth"
	wizardhttp "github.com/flight-search/flight-prices-checker/internal/adapter/http"
	"github.com/flight-search/flight-prices-checker/internal/adapter/http/middleware"
	"github.com/flight-search/flight-prices-checker/internal/adapter/pricegraph"
	"github.com/flight-search/flight-prices-checker/internal/config"
	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/metrics"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/retry"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-prices-checker/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.App.Timezone).
		Msg("Configuration loaded")

	// Reference data must load before anything else starts
	directory, err := airports.Load(cfg.Data.AirportsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load airports")
	}
	log.Info().Int("airports", directory.Len()).Msg("Airports loaded")

	endpoints, err := config.LoadEndpoints(cfg.Data.EndpointsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load endpoints")
	}

	authenticator := authenticate(cfg, log, endpoints)

	// Root context for background workers
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
	}

	wizard := setupWizard(ctx, cfg, log, collector, directory, authenticator, endpoints[domain.PriceGraphEndpoint])

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware and error formatting
	mwConfig := middleware.Config{Recovery: middleware.DefaultRecoveryConfig()}
	if collector != nil {
		mwConfig.Observer = collector
	}
	middleware.SetupWithConfig(e, log.Logger, mwConfig)
	e.HTTPErrorHandler = wizardhttp.NewErrorHandler(log)
	if collector != nil {
		e.GET("/metrics", echo.WrapHandler(collector.Handler()))
	}

	// Setup routes
	handler := wizardhttp.NewWizardHandler(wizard, wizardhttp.WithHandlerLogger(log.Component("http")))
	wizardhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log, stop)
}

// setupLogger builds the service logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  logger.DefaultServiceName,
		NoColor:      cfg.IsProduction(),
	}).WithContext("env", cfg.App.Env)
	logger.SetGlobal(log)
	return log
}

// authenticate obtains a credential for every configured endpoint.
// The service does not start unless all of them succeed.
func authenticate(cfg *config.Config, log *logger.Logger, endpoints map[string]string) *auth.Authenticator {
	var source domain.IdentityTokenSource
	switch cfg.Auth.Mode {
	case config.AuthModeStatic:
		log.Warn().Msg("Using static bearer token; do not use in production")
		source = auth.NewStaticTokenSource(cfg.Auth.StaticToken)
	default:
		source = auth.NewGoogleTokenSource(cfg.Auth.CredentialsFile)
	}

	authenticator := auth.NewAuthenticator(source,
		auth.WithRetryConfig(retry.TokenFetchConfig.WithMaxAttempts(cfg.Auth.RetryAttempts)),
		auth.WithConcurrency(cfg.Auth.Concurrency),
		auth.WithLogger(log.Component("auth")),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Auth.Timeout)
	defer cancel()

	if _, err := authenticator.AuthenticateAll(ctx, endpoints); err != nil {
		log.Fatal().
			Err(err).
			Strs("failed_endpoints", domain.FailedEndpoints(err)).
			Msg("Failed to authenticate endpoints")
	}
	return authenticator
}

// setupWizard wires the price graph client, the session store and the wizard use case.
// A nil collector disables search metrics.
func setupWizard(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	collector *metrics.Collector,
	directory *airports.Directory,
	credentials domain.CredentialProvider,
	priceGraphURL string,
) usecase.WizardUseCase {
	client := pricegraph.NewClient(pricegraph.Config{
		URL:              priceGraphURL,
		Timeout:          cfg.PriceGraph.Timeout,
		RateLimit:        cfg.PriceGraph.RateLimit,
		Burst:            cfg.PriceGraph.Burst,
		MaxResponseBytes: cfg.PriceGraph.MaxResponseBytes,
	}, pricegraph.WithLogger(log.Component("pricegraph")))

	store := usecase.NewSessionStore(
		usecase.WithIdleTTL(cfg.Wizard.SessionIdleTTL),
		usecase.WithStoreLogger(log.Component("sessions")),
	)
	go store.RunSweeper(ctx, cfg.Wizard.SweepInterval)

	opts := []usecase.WizardOption{usecase.WithLogger(log.Component("wizard"))}
	if collector != nil {
		collector.RegisterSessionGauge(cfg.Metrics.Namespace, store.Len)
		opts = append(opts, usecase.WithMetrics(collector))
	}

	// Validated by config.Load
	loc := timeutil.MustGetLocation(cfg.App.Timezone)

	return usecase.NewWizard(directory, client, credentials, store, &usecase.Config{
		DayRangeFloor: cfg.Wizard.DayRangeFloor,
		Location:      loc,
		FetchTimeout:  cfg.PriceGraph.Timeout,
	}, opts...)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger, stopWorkers context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
