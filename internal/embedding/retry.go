package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/examforge/internal/llm"
)

// RetryEmbedder is a decorator that retries transient backend failures with
// exponential backoff and jitter, mirroring the chat-provider retry.
type RetryEmbedder struct {
	inner  Embedder
	config llm.RetryConfig
}

// WithRetry wraps an Embedder with retry logic.
func WithRetry(e Embedder, cfg llm.RetryConfig) Embedder {
	return &RetryEmbedder{inner: e, config: cfg}
}

func (r *RetryEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		vec, err := r.attempt(ctx, text)
		if err == nil {
			return vec, nil
		}
		lastErr = err

		if !retryableEmbedError(err) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
		if wait > float64(r.config.MaxWait) {
			wait = float64(r.config.MaxWait)
		}
		wait += wait * 0.2 * (2*rand.Float64() - 1)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(wait)):
		}
	}

	return nil, lastErr
}

// attempt runs one backend call under the per-attempt timeout. A timed-out
// attempt surfaces as ErrEmbeddingUnavailable so it is retried; the caller's
// own context expiring stays a context error and is not.
func (r *RetryEmbedder) attempt(ctx context.Context, text string) ([]float32, error) {
	if r.config.Timeout <= 0 {
		return r.inner.Embed(ctx, text)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	vec, err := r.inner.Embed(attemptCtx, text)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, &ErrEmbeddingUnavailable{
			Err: fmt.Errorf("attempt timed out after %s", r.config.Timeout),
		}
	}
	return vec, err
}

func (r *RetryEmbedder) Dimension() int { return r.inner.Dimension() }

func (r *RetryEmbedder) ModelID() string { return r.inner.ModelID() }

func retryableEmbedError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Empty input and bad dimensions are caller errors.
	var empty *ErrEmptyText
	if errors.As(err, &empty) {
		return false
	}
	var dim *ErrInvalidDimension
	if errors.As(err, &dim) {
		return false
	}
	return true
}
