package embedding

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/examforge/internal/store"
)

// LoggingEmbedder records every embedding call as an LLM request event,
// the same audit trail the chat providers write to.
type LoggingEmbedder struct {
	inner     Embedder
	provider  string
	eventRepo store.EventRepo
}

// WithLogging wraps an Embedder with event logging. providerName is the
// backend label written to the audit log.
func WithLogging(e Embedder, providerName string, repo store.EventRepo) Embedder {
	return &LoggingEmbedder{inner: e, provider: providerName, eventRepo: repo}
}

func (l *LoggingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()

	vec, err := l.inner.Embed(ctx, text)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     "embed",
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: text,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log embedding event: %v\n", logErr)
	}

	return vec, err
}

func (l *LoggingEmbedder) Dimension() int { return l.inner.Dimension() }

func (l *LoggingEmbedder) ModelID() string { return l.inner.ModelID() }
