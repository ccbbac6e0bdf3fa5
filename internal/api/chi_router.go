// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brewrec/brewrec/internal/auth"
	"github.com/brewrec/brewrec/internal/config"
	"github.com/brewrec/brewrec/internal/middleware"
)

// Router builds the service's Chi router.
type Router struct {
	handler       *Handler
	authMW        *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router from configuration and collaborators.
func NewRouter(cfg *config.Config, handler *Handler, authMW *auth.Middleware) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       handler,
		authMW:        authMW,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup assembles the route tree.
//
// Global middleware runs on every request; the recommendation group adds
// rate limiting, Prometheus instrumentation, and optional authentication.
// The healthcheck and metrics endpoints stay outside the authenticated
// group so probes and scrapers need no token.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)            // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)            // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)         // Recover from panics
	r.Use(router.chiMiddleware.CORS())     // CORS must be global to handle OPTIONS preflight
	r.Use(APISecurityHeaders())

	r.Get("/healthcheck", router.handler.Healthcheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/recommendations", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.authMW.Optional)

		r.Get("/", router.handler.GetRecommendations)
		r.Get("/{productID}", router.handler.GetProductRecommendations)
	})

	return r
}
