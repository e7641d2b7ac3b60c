package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// flakyProvider fails with the given errors in order, then succeeds.
type flakyProvider struct {
	errs  []error
	calls int
}

func (f *flakyProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return &Response{Content: json.RawMessage(`"ok"`), StopReason: "end"}, nil
}

func (f *flakyProvider) ModelID() string { return "flaky" }

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	inner := &flakyProvider{errs: []error{
		&ErrProviderUnavailable{},
		&ErrRateLimit{Err: errors.New("429")},
	}}
	p := WithRetry(inner, fastRetryConfig(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil || string(resp.Content) != `"ok"` {
		t.Errorf("unexpected response: %+v", resp)
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{errs: []error{
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
	}}
	p := WithRetry(inner, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %T", err)
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	inner := &flakyProvider{errs: []error{&ErrMaxTokensExceeded{}}}
	p := WithRetry(inner, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 1 {
		t.Errorf("max tokens should not be retried, got %d calls", inner.calls)
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	inner := &flakyProvider{errs: []error{
		&ErrInvalidResponse{Err: errors.New("bad json")},
		&ErrInvalidResponse{Err: errors.New("bad json again")},
		&ErrInvalidResponse{Err: errors.New("still bad")},
	}}
	p := WithRetry(inner, fastRetryConfig(5))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 2 {
		t.Errorf("invalid response gets exactly one retry, got %d calls", inner.calls)
	}
}

// stuckProvider blocks until its context is done.
type stuckProvider struct {
	calls int
}

func (s *stuckProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	s.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *stuckProvider) ModelID() string { return "stuck" }

func TestRetry_AttemptTimeoutBoundsHungProvider(t *testing.T) {
	inner := &stuckProvider{}
	cfg := fastRetryConfig(2)
	cfg.Timeout = 10 * time.Millisecond
	p := WithRetry(inner, cfg)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from a hung provider")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("timed-out attempts should be retried, got %d calls", inner.calls)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("hung provider not bounded by the attempt timeout, took %s", elapsed)
	}
}

func TestRetry_CallerDeadlineNotRetried(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	inner := &stuckProvider{}
	cfg := fastRetryConfig(3)
	cfg.Timeout = time.Second
	p := WithRetry(inner, cfg)

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("caller deadline should not be retried, got %d calls", inner.calls)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{errs: []error{context.Canceled}}
	p := WithRetry(inner, fastRetryConfig(3))

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("canceled context should not be retried, got %d calls", inner.calls)
	}
}
