// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

// Package config loads and validates service configuration.
//
// Configuration is layered with Koanf v2, highest priority last:
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables
//
// Environment variables map onto the nested structure through an explicit
// translation table, so legacy flat names (PORT, BREWERY_API_URL, JWT_SECRET)
// keep working. See koanf.go for the mapping.
package config

import (
	"fmt"
	"time"

	"github.com/brewrec/brewrec/internal/validation"
)

// Environment mode values for Server.Environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// User endpoint styles for Brewery.UserEndpoint. Brewery API deployments
// differ on where user records live; both shapes are supported.
const (
	UserEndpointAuth = "auth" // GET /api/auth/{id}
	UserEndpointUser = "user" // GET /api/user/{id}
)

// Taste profile field casing styles for Brewery.ProfileCasing.
const (
	ProfileCasingCamel  = "camel"  // {"primaryFlavor": ...}
	ProfileCasingPascal = "pascal" // {"PrimaryFlavor": ...}
)

// defaultDevSecret is the JWT secret used when none is configured. It is only
// acceptable in development; Validate rejects it in production.
const defaultDevSecret = "YourJWTSecretForDevPurposeOnly"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Brewery  BreweryConfig  `koanf:"brewery"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment" validate:"oneof=development staging production"`
}

// BreweryConfig holds settings for the upstream brewery API.
type BreweryConfig struct {
	// URL is the brewery API base URL, without a trailing slash.
	URL string `koanf:"url" validate:"required,url"`

	// UserEndpoint selects where user records are fetched from:
	// "auth" -> /api/auth/{id}, "user" -> /api/user/{id}.
	UserEndpoint string `koanf:"user_endpoint" validate:"oneof=auth user"`

	// ProfileCasing selects the JSON field casing the brewery API uses for
	// taste profiles: "camel" or "pascal".
	ProfileCasing string `koanf:"profile_casing" validate:"oneof=camel pascal"`

	// Timeout bounds each upstream HTTP request.
	Timeout time.Duration `koanf:"timeout"`

	// Circuit breaker tuning. Zero values fall back to library defaults.
	BreakerMaxRequests uint32        `koanf:"breaker_max_requests"`
	BreakerInterval    time.Duration `koanf:"breaker_interval"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	// JWTSecret signs and verifies bearer tokens (HS256).
	JWTSecret string `koanf:"jwt_secret" validate:"required"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns the built-in defaults. These match the service's
// documented out-of-the-box behavior: port 3004, a local brewery API, and a
// development-only JWT secret.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        3004,
			Timeout:     30 * time.Second,
			Environment: EnvDevelopment,
		},
		Brewery: BreweryConfig{
			URL:           "http://localhost:5089",
			UserEndpoint:  UserEndpointAuth,
			ProfileCasing: ProfileCasingCamel,
			Timeout:       10 * time.Second,
		},
		Security: SecurityConfig{
			JWTSecret:       defaultDevSecret,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for invalid or unsafe values.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The baked-in development secret must never reach production.
	if c.Server.Environment == EnvProduction && c.Security.JWTSecret == defaultDevSecret {
		return fmt.Errorf("security.jwt_secret must be set explicitly in production")
	}

	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
