// Package exposure tracks which questions each user has already been shown,
// and supplies the unseen-first prioritization used by retry and weak-topic
// tests. Exposure is first-seen only: recording the same (user, question)
// pair twice leaves exactly one record.
package exposure

import (
	"context"
	"fmt"

	"github.com/abhisek/examforge/internal/question"
	"github.com/abhisek/examforge/internal/retrieval"
	"github.com/abhisek/examforge/internal/vecindex"
)

// Store persists exposure records. RecordSeen is an atomic
// insert-if-absent per (user, question) pair: concurrent recordings for the
// same pair must neither error nor duplicate.
type Store interface {
	SeenIDs(ctx context.Context, userID string) (map[string]struct{}, error)
	RecordSeen(ctx context.Context, userID, questionID string) error
	RecordSeenBatch(ctx context.Context, userID string, questionIDs []string) error
}

// Stats summarizes a user's exposure history.
type Stats struct {
	TotalSeen   int
	SeenByTopic map[string]int
}

// Tracker answers seen/unseen questions over the indexed corpus.
type Tracker struct {
	store  Store
	index  *vecindex.Index
	source retrieval.QuestionSource
}

// NewTracker creates a Tracker.
func NewTracker(store Store, index *vecindex.Index, source retrieval.QuestionSource) *Tracker {
	return &Tracker{store: store, index: index, source: source}
}

// SeenQuestionIDs returns the set of question ids the user has been shown.
func (t *Tracker) SeenQuestionIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	return t.store.SeenIDs(ctx, userID)
}

// UnseenForTopics returns the topic pool questions the user has not seen,
// in the default deterministic order.
func (t *Tracker) UnseenForTopics(ctx context.Context, userID string, topicIDs []string) ([]question.Record, error) {
	unseen, _, err := t.partition(ctx, userID, topicIDs)
	return unseen, err
}

// RecordSeen upserts a single exposure record.
func (t *Tracker) RecordSeen(ctx context.Context, userID, questionID string) error {
	return t.store.RecordSeen(ctx, userID, questionID)
}

// RecordSeenBatch upserts exposure records for every id.
func (t *Tracker) RecordSeenBatch(ctx context.Context, userID string, questionIDs []string) error {
	return t.store.RecordSeenBatch(ctx, userID, questionIDs)
}

// QuestionsForRetry returns count questions from the topic pool with every
// unseen question strictly before any seen one; seen questions backfill only
// when the unseen supply runs out. The ordering is exact, not probabilistic.
// Fails with *question.ErrInsufficientQuestions when unseen+seen together
// cannot cover count.
func (t *Tracker) QuestionsForRetry(ctx context.Context, userID string, topicIDs []string, count int) ([]question.Record, error) {
	if count <= 0 {
		return nil, fmt.Errorf("retry selection: count must be positive, got %d", count)
	}

	unseen, seen, err := t.partition(ctx, userID, topicIDs)
	if err != nil {
		return nil, err
	}

	available := len(unseen) + len(seen)
	if available < count {
		return nil, &question.ErrInsufficientQuestions{
			Available: available,
			Requested: count,
		}
	}

	out := make([]question.Record, 0, count)
	out = append(out, unseen...)
	if len(out) < count {
		out = append(out, seen[:count-len(out)]...)
	}
	return out[:count], nil
}

// Stats returns the user's total and per-topic seen counts.
func (t *Tracker) Stats(ctx context.Context, userID string) (*Stats, error) {
	seen, err := t.store.SeenIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load seen set: %w", err)
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	records, err := t.source.ByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate seen questions: %w", err)
	}

	stats := &Stats{
		TotalSeen:   len(seen),
		SeenByTopic: make(map[string]int),
	}
	for _, rec := range records {
		stats.SeenByTopic[rec.TopicID]++
	}
	return stats, nil
}

// partition splits the topic pool into unseen and seen records, each in the
// default order.
func (t *Tracker) partition(ctx context.Context, userID string, topicIDs []string) (unseen, seen []question.Record, err error) {
	seenSet, err := t.store.SeenIDs(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load seen set: %w", err)
	}

	pool := t.index.GetByTopics(topicIDs)
	ids := make([]string, len(pool))
	for i, e := range pool {
		ids[i] = e.Meta.QuestionID
	}

	records, err := t.source.ByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("hydrate topic pool: %w", err)
	}
	question.SortDefault(records)

	for _, rec := range records {
		if _, ok := seenSet[rec.ID]; ok {
			seen = append(seen, rec)
		} else {
			unseen = append(unseen, rec)
		}
	}
	return unseen, seen, nil
}
