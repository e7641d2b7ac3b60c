package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/embedding"
	"github.com/abhisek/examforge/internal/exposure"
	"github.com/abhisek/examforge/internal/retrieval"
	"github.com/abhisek/examforge/internal/store"
	"github.com/abhisek/examforge/internal/vecindex"
)

// engine bundles the wired retrieval stack: store, index, embedder,
// retriever, and exposure tracker.
type engine struct {
	store     *store.Store
	index     *vecindex.Index
	embedder  embedding.Embedder
	retriever *retrieval.Retriever
	tracker   *exposure.Tracker
}

// openEngine opens the store, builds the embedding backend from the
// environment, and warms the vector index from the persisted corpus.
func openEngine(ctx context.Context, cmd *cobra.Command) (*engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	embedder, err := embedding.NewEmbedder(ctx, embedding.ConfigFromEnv(), s.EventRepo())
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("build embedder: %w", err)
	}

	index := vecindex.New(embedder.Dimension())
	source := s.QuestionRepo()
	retriever := retrieval.New(index, embedder, source, retrieval.Config{})

	if err := warmIndex(ctx, s, index, retriever, embedder.Dimension()); err != nil {
		s.Close()
		return nil, fmt.Errorf("warm index: %w", err)
	}

	return &engine{
		store:     s,
		index:     index,
		embedder:  embedder,
		retriever: retriever,
		tracker:   exposure.NewTracker(s.ExposureRepo(), index, source),
	}, nil
}

func (e *engine) Close() error {
	return e.store.Close()
}

// warmIndex loads the whole corpus into the in-memory index. Stored
// embeddings are reused when they match the configured dimension;
// anything else is re-embedded.
func warmIndex(ctx context.Context, s *store.Store, index *vecindex.Index, retriever *retrieval.Retriever, dim int) error {
	all, err := s.QuestionRepo().All(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		rec := &all[i]
		if len(rec.Embedding) == dim {
			meta := vecindex.Meta{QuestionID: rec.ID, TopicID: rec.TopicID}
			if err := index.Insert(rec.Embedding, meta); err != nil {
				return err
			}
			continue
		}
		if err := retriever.IndexQuestion(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
