package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected reopened circuit, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error after failed probe, got %v", err)
	}
}

func TestNormalizeCircuitBreakerConfig_FillsInvalidFields(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	defaults := DefaultCircuitBreakerConfig()

	if got.FailureThreshold != defaults.FailureThreshold {
		t.Fatalf("expected default failure threshold, got %d", got.FailureThreshold)
	}
	if got.OpenTimeout != defaults.OpenTimeout {
		t.Fatalf("expected default open timeout, got %s", got.OpenTimeout)
	}
	if got.HalfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("expected default half-open max, got %d", got.HalfOpenMaxReq)
	}

	custom := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{FailureThreshold: 3, OpenTimeout: time.Second, HalfOpenMaxReq: 4})
	if custom.FailureThreshold != 3 || custom.OpenTimeout != time.Second || custom.HalfOpenMaxReq != 4 {
		t.Fatalf("valid fields must pass through, got %+v", custom)
	}
}
