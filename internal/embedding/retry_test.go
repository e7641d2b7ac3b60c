package embedding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/examforge/internal/llm"
)

// flakyEmbedder fails n times then delegates to a hash embedder.
type flakyEmbedder struct {
	failures int
	calls    int
	inner    *HashEmbedder
}

func (f *flakyEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, &ErrEmbeddingUnavailable{Err: errors.New("connection refused")}
	}
	return f.inner.Embed(ctx, text)
}

func (f *flakyEmbedder) Dimension() int { return f.inner.Dimension() }

func (f *flakyEmbedder) ModelID() string { return "flaky" }

func fastRetry(attempts int) llm.RetryConfig {
	return llm.RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryEmbedder_RecoversFromTransientFailure(t *testing.T) {
	hash, _ := NewHashEmbedder(64)
	inner := &flakyEmbedder{failures: 2, inner: hash}
	e := WithRetry(inner, fastRetry(3))

	vec, err := e.Embed(context.Background(), "mitosis phases")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 64 {
		t.Errorf("expected 64-dim vector, got %d", len(vec))
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryEmbedder_SurfacesUnavailableAfterExhaustion(t *testing.T) {
	hash, _ := NewHashEmbedder(64)
	inner := &flakyEmbedder{failures: 10, inner: hash}
	e := WithRetry(inner, fastRetry(3))

	_, err := e.Embed(context.Background(), "mitosis phases")
	var unavail *ErrEmbeddingUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

// stuckEmbedder blocks until its context is done.
type stuckEmbedder struct {
	calls int
}

func (s *stuckEmbedder) Embed(ctx context.Context, _ string) ([]float32, error) {
	s.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *stuckEmbedder) Dimension() int { return 64 }

func (s *stuckEmbedder) ModelID() string { return "stuck" }

func TestRetryEmbedder_AttemptTimeoutBoundsHungBackend(t *testing.T) {
	inner := &stuckEmbedder{}
	cfg := fastRetry(2)
	cfg.Timeout = 10 * time.Millisecond
	e := WithRetry(inner, cfg)

	start := time.Now()
	_, err := e.Embed(context.Background(), "mitosis phases")
	var unavail *ErrEmbeddingUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("timed-out attempts should be retried, got %d calls", inner.calls)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("hung backend not bounded by the attempt timeout, took %s", elapsed)
	}
}

func TestRetryEmbedder_EmptyTextNotRetried(t *testing.T) {
	hash, _ := NewHashEmbedder(64)
	inner := &flakyEmbedder{failures: 0, inner: hash}
	e := WithRetry(inner, fastRetry(3))

	_, err := e.Embed(context.Background(), "")
	var empty *ErrEmptyText
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("caller errors should not be retried, got %d calls", inner.calls)
	}
}
