package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/violation"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	calls    int
	err      error
}

func (p *flakyProvider) Name() string { return "flaky" }

func (p *flakyProvider) Capability() Capability {
	return Capability{MaxTextLength: 100, Offline: false}
}

func (p *flakyProvider) Check(ctx context.Context, req CheckRequest) (moderation.ReviewResult, error) {
	p.calls++
	if p.calls <= p.failures {
		return moderation.ReviewResult{}, p.err
	}
	return moderation.ReviewResult{
		Decision:   moderation.DecisionPass,
		Confidence: 0.9,
		Provider:   "flaky",
		ReviewedAt: time.Now(),
	}, nil
}

func (p *flakyProvider) Translator() violation.Translator { return nil }

func fastRetryConfig() ResilientConfig {
	return ResilientConfig{
		MaxRetries:    3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		EnableRetry:   true,
		EnableLogging: false,
	}
}

func TestResilientProvider_RetriesRetryableError(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: moderation.ErrTimeout}
	rp := NewResilientProvider(inner, fastRetryConfig())

	result, err := rp.Check(context.Background(), CheckRequest{Text: "hello"})
	if err != nil {
		t.Fatalf("Check() error = %v, want nil after retries", err)
	}
	if result.Decision != moderation.DecisionPass {
		t.Errorf("Check().Decision = %v, want pass", result.Decision)
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
}

func TestResilientProvider_GivesUpAfterMaxRetries(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: moderation.ErrTimeout}
	rp := NewResilientProvider(inner, fastRetryConfig())

	_, err := rp.Check(context.Background(), CheckRequest{Text: "hello"})
	if err == nil {
		t.Fatal("Check() error = nil, want failure after exhausting retries")
	}
	// MaxRetries of 3 means one initial attempt plus three retries.
	if inner.calls != 4 {
		t.Errorf("inner calls = %d, want 4", inner.calls)
	}
}

func TestResilientProvider_DoesNotRetryNonRetryableError(t *testing.T) {
	permanent := errors.New("invalid credentials")
	inner := &flakyProvider{failures: 10, err: permanent}
	rp := NewResilientProvider(inner, fastRetryConfig())

	_, err := rp.Check(context.Background(), CheckRequest{Text: "hello"})
	if !errors.Is(err, permanent) {
		t.Fatalf("Check() error = %v, want %v", err, permanent)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestResilientProvider_DelegatesMetadata(t *testing.T) {
	inner := &flakyProvider{}
	rp := WrapWithRetry(inner, 2)

	if got := rp.Name(); got != "flaky" {
		t.Errorf("Name() = %q, want flaky", got)
	}
	if got := rp.Capability().MaxTextLength; got != 100 {
		t.Errorf("Capability().MaxTextLength = %d, want 100", got)
	}
	if rp.Translator() != nil {
		t.Error("Translator() != nil, want nil passthrough")
	}
	if rp.Unwrap() != inner {
		t.Error("Unwrap() did not return the wrapped provider")
	}
}

func TestResilientProvider_RetryDisabled(t *testing.T) {
	inner := &flakyProvider{failures: 1, err: moderation.ErrTimeout}
	rp := NewResilientProvider(inner, ResilientConfig{
		EnableRetry:   false,
		EnableLogging: false,
	})

	if _, err := rp.Check(context.Background(), CheckRequest{}); err == nil {
		t.Fatal("Check() error = nil, want the first failure surfaced")
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestDecisionSeverity(t *testing.T) {
	ordered := []moderation.Decision{
		moderation.DecisionPass,
		moderation.DecisionPending,
		moderation.DecisionReview,
		moderation.DecisionError,
		moderation.DecisionBlock,
	}

	for i := 1; i < len(ordered); i++ {
		if DecisionSeverity(ordered[i-1]) >= DecisionSeverity(ordered[i]) {
			t.Errorf("DecisionSeverity(%v) = %d not below DecisionSeverity(%v) = %d",
				ordered[i-1], DecisionSeverity(ordered[i-1]), ordered[i], DecisionSeverity(ordered[i]))
		}
	}
}
