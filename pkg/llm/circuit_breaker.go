package llm

import (
	"fmt"
	"sync"
	"time"
)

// CircuitState is the current state of the provider circuit breaker.
type CircuitState int

const (
	// CircuitClosed means calls flow through normally.
	CircuitClosed CircuitState = iota
	// CircuitOpen means the provider is considered down and calls are
	// rejected without being attempted.
	CircuitOpen
	// CircuitHalfOpen means one probe call is allowed to test recovery.
	CircuitHalfOpen
)

// String returns a human-readable state name.
func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures failure tolerance.
type CircuitBreakerConfig struct {
	// Threshold is the number of consecutive failures before tripping.
	Threshold int
	// ResetAfter is how long the circuit stays open before a probe.
	ResetAfter time.Duration
}

// DefaultCircuitBreakerConfig returns sensible defaults for provider calls.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Threshold:  5,
		ResetAfter: 30 * time.Second,
	}
}

// CircuitBreaker protects batch runs from hammering a failing provider:
// after Threshold consecutive failures it rejects calls until ResetAfter
// has elapsed, then lets one probe through.
type CircuitBreaker struct {
	mu               sync.RWMutex
	consecutiveFails int
	threshold        int
	resetAfter       time.Duration
	lastFailure      time.Time
	state            CircuitState
}

// NewCircuitBreaker creates a circuit breaker.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.Threshold < 1 {
		cfg.Threshold = 5
	}
	if cfg.ResetAfter <= 0 {
		cfg.ResetAfter = 30 * time.Second
	}
	return &CircuitBreaker{
		threshold:  cfg.Threshold,
		resetAfter: cfg.ResetAfter,
		state:      CircuitClosed,
	}
}

// Allow reports whether a call may proceed, transitioning open -> half-open
// once the reset window has elapsed.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen {
		if time.Since(cb.lastFailure) >= cb.resetAfter {
			cb.state = CircuitHalfOpen
			return nil
		}
		return fmt.Errorf("circuit breaker open: %d consecutive provider failures", cb.consecutiveFails)
	}
	return nil
}

// RecordSuccess resets the breaker to closed.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.consecutiveFails = 0
	cb.state = CircuitClosed
}

// RecordFailure counts a failure and trips the breaker at the threshold. A
// failure during half-open re-opens immediately.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.consecutiveFails++
	cb.lastFailure = time.Now()
	if cb.state == CircuitHalfOpen || cb.consecutiveFails >= cb.threshold {
		cb.state = CircuitOpen
	}
}

// State returns the current circuit state.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}
