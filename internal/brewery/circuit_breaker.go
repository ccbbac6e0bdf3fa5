// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package brewery

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/brewrec/brewrec/internal/config"
	"github.com/brewrec/brewrec/internal/logging"
	"github.com/brewrec/brewrec/internal/metrics"
	"github.com/brewrec/brewrec/internal/models"
)

// CircuitBreakerClient wraps a Client with the circuit breaker pattern to
// prevent cascading failures when the brewery API is unavailable or slow.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. The timing determines when to
// recover from failures, not data integrity. For unit tests, test the
// wrapped client directly instead of mocking the breaker.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// compile-time interface check
var _ Client = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps client with a circuit breaker.
// Default configuration, overridable via config:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(client Client, cfg *config.BreweryConfig) *CircuitBreakerClient {
	cbName := "brewery-api"

	maxRequests := cfg.BreakerMaxRequests
	if maxRequests == 0 {
		maxRequests = 3
	}
	interval := cfg.BreakerInterval
	if interval == 0 {
		interval = time.Minute
	}
	timeout := cfg.BreakerTimeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     timeout,

		// Upstream 4xx responses are healthy answers from the breaker's
		// point of view; only transport failures and 5xx count against it.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if apiErr, ok := AsAPIError(err); ok && apiErr.StatusCode < 500 {
				return true
			}
			return false
		},

		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			// Reset consecutive failures when transitioning to closed
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// execute wraps a brewery API call with circuit breaker protection.
// Returns the result or an error if the circuit is open or the request
// fails.
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(func() (interface{}, error) {
		return fn()
	})

	if err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.StatusCode < 500 {
			// Healthy upstream answer per IsSuccessful; still an error for
			// the caller.
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
			return nil, err
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()

			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// castResult safely type-casts the circuit breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to a numeric value for metrics.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to a string for logging.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// FetchUserProfile retrieves a user record with circuit breaker protection.
func (cbc *CircuitBreakerClient) FetchUserProfile(ctx context.Context, userID int, authHeader string) (*models.User, error) {
	return castResult[*models.User](cbc.execute(func() (interface{}, error) {
		return cbc.client.FetchUserProfile(ctx, userID, authHeader)
	}))
}

// FetchInventory retrieves the inventory with circuit breaker protection.
func (cbc *CircuitBreakerClient) FetchInventory(ctx context.Context, authHeader string) ([]models.InventoryItem, error) {
	return castResult[[]models.InventoryItem](cbc.execute(func() (interface{}, error) {
		return cbc.client.FetchInventory(ctx, authHeader)
	}))
}

// FetchInventoryItem retrieves a single item with circuit breaker protection.
func (cbc *CircuitBreakerClient) FetchInventoryItem(ctx context.Context, productID int, authHeader string) (*models.InventoryItem, error) {
	return castResult[*models.InventoryItem](cbc.execute(func() (interface{}, error) {
		return cbc.client.FetchInventoryItem(ctx, productID, authHeader)
	}))
}
