package embedding

import (
	"context"
	"fmt"

	"github.com/abhisek/examforge/internal/store"
)

// NewEmbedder creates an Embedder from configuration, wrapped with the
// event-logging and retry middleware. The hash backend skips both: it is
// in-process and cannot fail transiently.
func NewEmbedder(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Embedder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case "hash":
		return NewHashEmbedder(cfg.Dimension)
	case "openai":
		oc := cfg.OpenAI
		oc.Dimension = cfg.Dimension
		base, err := NewOpenAIEmbedder(oc)
		if err != nil {
			return nil, fmt.Errorf("initializing openai embedder: %w", err)
		}
		return WithRetry(WithLogging(base, "openai", eventRepo), cfg.Retry), nil
	case "gemini":
		gc := cfg.Gemini
		gc.Dimension = cfg.Dimension
		base, err := NewGeminiEmbedder(ctx, gc)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini embedder: %w", err)
		}
		return WithRetry(WithLogging(base, "gemini", eventRepo), cfg.Retry), nil
	default:
		return nil, fmt.Errorf("unknown embedding backend: %q", cfg.Backend)
	}
}
