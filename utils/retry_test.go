package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	moderation "github.com/gospelwave/moderation"
)

func fastConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:   maxRetries,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestRetryer_Do_SucceedsFirstTry(t *testing.T) {
	r := NewRetryer(fastConfig(3))

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return nil
	})

	if err != nil {
		t.Errorf("Do() error = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryer_Do_RetriesThenSucceeds(t *testing.T) {
	r := NewRetryer(fastConfig(3))

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return moderation.ErrTimeout
		}
		return nil
	})

	if err != nil {
		t.Errorf("Do() error = %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryer_Do_ExhaustsRetries(t *testing.T) {
	r := NewRetryer(fastConfig(2))

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return moderation.ErrRateLimited
	})

	if !errors.Is(err, moderation.ErrRateLimited) {
		t.Errorf("Do() error = %v, want ErrRateLimited", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3 (initial attempt plus two retries)", calls)
	}
}

func TestRetryer_Do_NonRetryableStopsImmediately(t *testing.T) {
	r := NewRetryer(fastConfig(3))

	permanent := errors.New("bad request")
	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return permanent
	})

	if !errors.Is(err, permanent) {
		t.Errorf("Do() error = %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryer_Do_CustomRetryIf(t *testing.T) {
	target := errors.New("flaky")
	cfg := fastConfig(2)
	cfg.RetryIf = func(err error) bool { return errors.Is(err, target) }
	r := NewRetryer(cfg)

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return target
	})

	if !errors.Is(err, target) {
		t.Errorf("Do() error = %v, want %v", err, target)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryer_Do_ContextCancelled(t *testing.T) {
	cfg := fastConfig(5)
	cfg.InitialDelay = time.Second
	cfg.MaxDelay = 30 * time.Second
	r := NewRetryer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan error, 1)

	go func() {
		done <- r.Do(ctx, func() error {
			calls++
			return moderation.ErrTimeout
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Do() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Do() did not return after cancellation")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryer_Do_OnRetryCallback(t *testing.T) {
	var attempts []int
	cfg := fastConfig(2)
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		attempts = append(attempts, attempt)
	}
	r := NewRetryer(cfg)

	_ = r.Do(context.Background(), func() error {
		return moderation.ErrTimeout
	})

	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Errorf("OnRetry attempts = %v, want [1 2]", attempts)
	}
}

func TestDoWithResult(t *testing.T) {
	r := NewRetryer(fastConfig(3))

	calls := 0
	got, err := DoWithResult(context.Background(), r, func() (string, error) {
		calls++
		if calls < 2 {
			return "", moderation.ErrTimeout
		}
		return "done", nil
	})

	if err != nil {
		t.Errorf("DoWithResult() error = %v, want nil", err)
	}
	if got != "done" {
		t.Errorf("DoWithResult() = %q, want %q", got, "done")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRetryer_CalculateDelayCapped(t *testing.T) {
	r := NewRetryer(RetryConfig{
		MaxRetries:   10,
		InitialDelay: time.Second,
		MaxDelay:     4 * time.Second,
		Multiplier:   2.0,
	})

	for attempt := 0; attempt < 10; attempt++ {
		if d := r.calculateDelay(attempt); d > 4*time.Second {
			t.Errorf("calculateDelay(%d) = %v, want <= 4s", attempt, d)
		}
	}
}
