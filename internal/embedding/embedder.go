package embedding

import (
	"context"
	"fmt"
)

// Embedder turns text into a fixed-length semantic vector. Vectors from the
// same backend/model are dimensionally compatible and deterministic for a
// given input; vectors from different backends must never be mixed in one
// index.
type Embedder interface {
	// Embed returns the vector for text. It never returns a silent zero
	// vector: an unreachable backend surfaces *ErrEmbeddingUnavailable.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the vector length this embedder produces.
	Dimension() int

	// ModelID returns the backing model identifier.
	ModelID() string
}

// ErrEmbeddingUnavailable indicates the embedding backend is down or
// unreachable. Retries exhaust into this error; the affected test's
// assembly aborts while sibling tests in the batch proceed.
type ErrEmbeddingUnavailable struct {
	Err error
}

func (e *ErrEmbeddingUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("embedding backend unavailable: %v", e.Err)
	}
	return "embedding backend unavailable"
}

func (e *ErrEmbeddingUnavailable) Unwrap() error { return e.Err }

// ErrEmptyText indicates there was nothing to embed.
type ErrEmptyText struct{}

func (e *ErrEmptyText) Error() string { return "cannot embed empty text" }
