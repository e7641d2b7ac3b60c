// Package retrieval implements the question retrieval engine: given topic
// identifiers, a requested count, and an exclusion set, it queries the vector
// index and returns a ranked, deduplicated list of question records. It is
// read-only against the index; admitting new questions goes through
// IndexQuestion.
package retrieval

import (
	"context"
	"fmt"

	"github.com/abhisek/examforge/internal/embedding"
	"github.com/abhisek/examforge/internal/question"
	"github.com/abhisek/examforge/internal/vecindex"
)

// QuestionSource hydrates question records by id. Backed by the datastore
// in production and by an in-memory map in tests.
type QuestionSource interface {
	ByIDs(ctx context.Context, ids []string) ([]question.Record, error)
}

// Query is the ephemeral retrieval request. Not persisted.
type Query struct {
	// TopicIDs is the ordered set of topics to draw from.
	TopicIDs []string

	// Count is the number of questions requested. The result may be
	// shorter; deciding whether that is sufficient is the caller's job.
	Count int

	// ExcludeIDs are question ids that must not appear in the result
	// (already placed in earlier tests of the batch, or already seen).
	ExcludeIDs map[string]struct{}

	// QueryText is an optional free-text relevance query (e.g. a topic
	// description). When set, candidates are ranked by semantic
	// similarity against it; when empty, the deterministic default
	// order applies.
	QueryText string
}

// Config controls retrieval behavior.
type Config struct {
	// MinSimilarity drops semantic candidates below this cosine
	// similarity. Zero disables the threshold.
	MinSimilarity float64
}

// DefaultConfig returns the standard retrieval configuration.
func DefaultConfig() Config {
	return Config{MinSimilarity: 0}
}

// Retriever ranks and returns questions from the vector index.
type Retriever struct {
	index    *vecindex.Index
	embedder embedding.Embedder
	source   QuestionSource
	config   Config
}

// New creates a Retriever over the given index.
func New(index *vecindex.Index, embedder embedding.Embedder, source QuestionSource, cfg Config) *Retriever {
	return &Retriever{index: index, embedder: embedder, source: source, config: cfg}
}

// Retrieve returns up to q.Count question records for the query, ranked,
// deduplicated, and with every excluded id removed. It returns everything
// available after exclusion when that is fewer than requested, and never
// an error for an empty candidate pool.
func (r *Retriever) Retrieve(ctx context.Context, q Query) ([]question.Record, error) {
	if q.Count <= 0 {
		return nil, nil
	}

	pool := r.index.GetByTopics(q.TopicIDs)
	if len(pool) == 0 {
		return nil, nil
	}

	if q.QueryText != "" {
		return r.retrieveSemantic(ctx, q)
	}
	return r.retrieveDefault(ctx, q, pool)
}

// retrieveSemantic embeds the relevance query and ranks candidates by
// cosine similarity against it.
func (r *Retriever) retrieveSemantic(ctx context.Context, q Query) ([]question.Record, error) {
	qvec, err := r.embedder.Embed(ctx, q.QueryText)
	if err != nil {
		return nil, fmt.Errorf("embed relevance query: %w", err)
	}

	topics := make(map[string]struct{}, len(q.TopicIDs))
	for _, t := range q.TopicIDs {
		topics[t] = struct{}{}
	}

	results := r.index.Search(qvec, q.Count, r.config.MinSimilarity, func(e vecindex.Entry) bool {
		if _, ok := topics[e.Meta.TopicID]; !ok {
			return false
		}
		_, excluded := q.ExcludeIDs[e.Meta.QuestionID]
		return !excluded
	})

	ids := make([]string, len(results))
	for i, res := range results {
		ids[i] = res.Entry.Meta.QuestionID
	}
	return r.hydrate(ctx, ids)
}

// retrieveDefault applies the deterministic default ordering: syllabus
// reference, then creation time, then id.
func (r *Retriever) retrieveDefault(ctx context.Context, q Query, pool []vecindex.Entry) ([]question.Record, error) {
	ids := make([]string, 0, len(pool))
	for _, e := range pool {
		if _, excluded := q.ExcludeIDs[e.Meta.QuestionID]; excluded {
			continue
		}
		ids = append(ids, e.Meta.QuestionID)
	}

	records, err := r.source.ByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate candidates: %w", err)
	}

	question.SortDefault(records)
	if len(records) > q.Count {
		records = records[:q.Count]
	}
	return records, nil
}

// hydrate fetches records for ids, preserving the given rank order.
func (r *Retriever) hydrate(ctx context.Context, ids []string) ([]question.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	records, err := r.source.ByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate candidates: %w", err)
	}

	byID := make(map[string]question.Record, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	out := make([]question.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// IndexQuestion admits a record into the vector index, computing and caching
// its embedding first when absent. Used for pre-seeded corpora, index
// warm-up, and fallback-generated questions alike. The record's Embedding
// field is populated in place so callers can persist the cached vector.
func (r *Retriever) IndexQuestion(ctx context.Context, rec *question.Record) error {
	if rec.Embedding == nil {
		vec, err := r.embedder.Embed(ctx, rec.Text)
		if err != nil {
			return fmt.Errorf("embed question %s: %w", rec.ID, err)
		}
		rec.Embedding = vec
	}

	return r.index.Insert(rec.Embedding, vecindex.Meta{
		QuestionID: rec.ID,
		TopicID:    rec.TopicID,
	})
}
