// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3004 {
		t.Errorf("port = %d, want 3004", cfg.Server.Port)
	}
	if cfg.Server.Environment != EnvDevelopment {
		t.Errorf("environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Brewery.URL != "http://localhost:5089" {
		t.Errorf("brewery url = %q, want http://localhost:5089", cfg.Brewery.URL)
	}
	if cfg.Brewery.UserEndpoint != UserEndpointAuth {
		t.Errorf("user endpoint = %q, want auth", cfg.Brewery.UserEndpoint)
	}
	if cfg.Brewery.ProfileCasing != ProfileCasingCamel {
		t.Errorf("profile casing = %q, want camel", cfg.Brewery.ProfileCasing)
	}
	if cfg.Security.JWTSecret != defaultDevSecret {
		t.Errorf("jwt secret = %q, want development default", cfg.Security.JWTSecret)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
	if cfg.ListenAddr() != "0.0.0.0:3004" {
		t.Errorf("listen addr = %q, want 0.0.0.0:3004", cfg.ListenAddr())
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("BREWERY_API_URL", "http://brewery.internal:9000")
	t.Setenv("BREWERY_USER_ENDPOINT", "user")
	t.Setenv("BREWERY_PROFILE_CASING", "pascal")
	t.Setenv("JWT_SECRET", "an-explicit-production-secret")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Brewery.URL != "http://brewery.internal:9000" {
		t.Errorf("brewery url = %q", cfg.Brewery.URL)
	}
	if cfg.Brewery.UserEndpoint != UserEndpointUser {
		t.Errorf("user endpoint = %q, want user", cfg.Brewery.UserEndpoint)
	}
	if cfg.Brewery.ProfileCasing != ProfileCasingPascal {
		t.Errorf("profile casing = %q, want pascal", cfg.Brewery.ProfileCasing)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "https://a.example.com" {
		t.Errorf("cors origins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit window = %v, want 30s", cfg.Security.RateLimitWindow)
	}
}

func TestLoadRejectsDevSecretInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for default JWT secret in production")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad environment", "ENVIRONMENT", "bogus"},
		{"bad user endpoint", "BREWERY_USER_ENDPOINT", "account"},
		{"bad profile casing", "BREWERY_PROFILE_CASING", "snake"},
		{"bad port", "PORT", "99999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestEnvTransformFuncSkipsUnknownKeys(t *testing.T) {
	t.Parallel()

	if got := envTransformFunc("SOME_RANDOM_VAR"); got != "" {
		t.Errorf("unknown variable mapped to %q, want empty", got)
	}
	if got := envTransformFunc("BREWERY_API_URL"); got != "brewery.url" {
		t.Errorf("BREWERY_API_URL mapped to %q, want brewery.url", got)
	}
	if got := envTransformFunc("JWT_SECRET"); got != "security.jwt_secret" {
		t.Errorf("JWT_SECRET mapped to %q, want security.jwt_secret", got)
	}
}
