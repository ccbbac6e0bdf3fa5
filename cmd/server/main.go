// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

// Command server runs the beer recommendation HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brewrec/brewrec/internal/api"
	"github.com/brewrec/brewrec/internal/auth"
	"github.com/brewrec/brewrec/internal/brewery"
	"github.com/brewrec/brewrec/internal/config"
	"github.com/brewrec/brewrec/internal/logging"
	"github.com/brewrec/brewrec/internal/recommend"
	"github.com/brewrec/brewrec/internal/supervisor"
	"github.com/brewrec/brewrec/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("brewery_url", cfg.Brewery.URL).
		Str("user_endpoint", cfg.Brewery.UserEndpoint).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	if cfg.IsProduction() && len(cfg.Security.CORSOrigins) == 1 && cfg.Security.CORSOrigins[0] == "*" {
		logging.Warn().Msg("Wildcard CORS origin configured in production")
	}

	// Brewery API client with circuit breaker for fault tolerance
	breweryClient := brewery.NewCircuitBreakerClient(
		brewery.NewHTTPClient(&cfg.Brewery),
		&cfg.Brewery,
	)

	// Recommendation pipeline
	service := recommend.NewService(breweryClient)
	handler := api.NewHandler(service)

	// Authentication
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	authMW := auth.NewMiddleware(jwtManager)

	// HTTP surface
	router := api.NewRouter(cfg, handler, authMW)
	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	tree.Add(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
