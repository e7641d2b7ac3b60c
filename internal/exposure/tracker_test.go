package exposure

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/examforge/internal/embedding"
	"github.com/abhisek/examforge/internal/question"
	"github.com/abhisek/examforge/internal/vecindex"
)

// memStore implements Store in memory with the same insert-if-absent
// semantics as the SQLite-backed repo.
type memStore struct {
	mu   sync.Mutex
	seen map[string]map[string]struct{} // user → question ids
}

func newMemStore() *memStore {
	return &memStore{seen: make(map[string]map[string]struct{})}
}

func (s *memStore) SeenIDs(_ context.Context, userID string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]struct{}, len(s.seen[userID]))
	for id := range s.seen[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *memStore) RecordSeen(_ context.Context, userID, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[userID] == nil {
		s.seen[userID] = make(map[string]struct{})
	}
	s.seen[userID][questionID] = struct{}{}
	return nil
}

func (s *memStore) RecordSeenBatch(ctx context.Context, userID string, ids []string) error {
	for _, id := range ids {
		if err := s.RecordSeen(ctx, userID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore) count(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen[userID])
}

// mapSource implements retrieval.QuestionSource over a map.
type mapSource struct {
	records map[string]question.Record
}

func (s *mapSource) ByIDs(_ context.Context, ids []string) ([]question.Record, error) {
	var out []question.Record
	for _, id := range ids {
		if rec, ok := s.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// testTracker builds a tracker over five indexed questions q1..q5 in
// topic t1, syllabus refs ordered S.1..S.5.
func testTracker(t *testing.T) (*Tracker, *memStore) {
	t.Helper()

	embedder, err := embedding.NewHashEmbedder(64)
	if err != nil {
		t.Fatalf("hash embedder: %v", err)
	}

	ix := vecindex.New(64)
	source := &mapSource{records: make(map[string]question.Record)}
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	for i, id := range []string{"q1", "q2", "q3", "q4", "q5"} {
		rec := question.Record{
			ID:          id,
			TopicID:     "t1",
			Text:        "question text " + id,
			Type:        question.TypeFreeText,
			Answers:     []string{"a"},
			SyllabusRef: "S." + string(rune('1'+i)),
			CreatedAt:   base,
		}
		vec, err := embedder.Embed(ctx, rec.Text)
		if err != nil {
			t.Fatalf("embed: %v", err)
		}
		if err := ix.Insert(vec, vecindex.Meta{QuestionID: id, TopicID: "t1"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		source.records[id] = rec
	}

	store := newMemStore()
	return NewTracker(store, ix, source), store
}

func TestRecordSeenIdempotent(t *testing.T) {
	tracker, store := testTracker(t)
	ctx := context.Background()

	if err := tracker.RecordSeen(ctx, "u1", "q1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := tracker.RecordSeen(ctx, "u1", "q1"); err != nil {
		t.Fatalf("second record must not error: %v", err)
	}
	if n := store.count("u1"); n != 1 {
		t.Errorf("expected exactly 1 record, got %d", n)
	}
}

func TestUnseenNeverOverlapsSeen(t *testing.T) {
	tracker, _ := testTracker(t)
	ctx := context.Background()

	if err := tracker.RecordSeenBatch(ctx, "u1", []string{"q2", "q4"}); err != nil {
		t.Fatalf("record batch: %v", err)
	}

	seen, err := tracker.SeenQuestionIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("seen ids: %v", err)
	}
	unseen, err := tracker.UnseenForTopics(ctx, "u1", []string{"t1"})
	if err != nil {
		t.Fatalf("unseen: %v", err)
	}

	for _, rec := range unseen {
		if _, ok := seen[rec.ID]; ok {
			t.Errorf("unseen result contains seen id %s", rec.ID)
		}
	}
	if len(unseen) != 3 {
		t.Errorf("expected 3 unseen, got %d", len(unseen))
	}
}

func TestQuestionsForRetry_UnseenOnly(t *testing.T) {
	tracker, _ := testTracker(t)
	ctx := context.Background()

	// User has seen q1, q2 out of {q1..q5}; retry for 3 returns q3, q4, q5.
	if err := tracker.RecordSeenBatch(ctx, "u1", []string{"q1", "q2"}); err != nil {
		t.Fatalf("record batch: %v", err)
	}

	got, err := tracker.QuestionsForRetry(ctx, "u1", []string{"t1"}, 3)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}

	want := []string{"q3", "q4", "q5"}
	if len(got) != len(want) {
		t.Fatalf("expected %d, got %d", len(want), len(got))
	}
	for i, rec := range got {
		if rec.ID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, rec.ID, want[i])
		}
	}
}

func TestQuestionsForRetry_UnseenStrictlyBeforeSeen(t *testing.T) {
	tracker, _ := testTracker(t)
	ctx := context.Background()

	if err := tracker.RecordSeenBatch(ctx, "u1", []string{"q1", "q2", "q3"}); err != nil {
		t.Fatalf("record batch: %v", err)
	}

	// 4 requested, only 2 unseen: the seen backfill must come after.
	got, err := tracker.QuestionsForRetry(ctx, "u1", []string{"t1"}, 4)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4, got %d", len(got))
	}
	if got[0].ID != "q4" || got[1].ID != "q5" {
		t.Errorf("unseen must lead: got %s, %s", got[0].ID, got[1].ID)
	}
	if got[2].ID != "q1" || got[3].ID != "q2" {
		t.Errorf("seen backfill in default order: got %s, %s", got[2].ID, got[3].ID)
	}
}

func TestQuestionsForRetry_Insufficient(t *testing.T) {
	tracker, _ := testTracker(t)

	_, err := tracker.QuestionsForRetry(context.Background(), "u1", []string{"t1"}, 6)
	var insufficient *question.ErrInsufficientQuestions
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected ErrInsufficientQuestions, got %v", err)
	}
	if insufficient.Available != 5 || insufficient.Requested != 6 {
		t.Errorf("got available=%d requested=%d", insufficient.Available, insufficient.Requested)
	}
}

func TestStats(t *testing.T) {
	tracker, _ := testTracker(t)
	ctx := context.Background()

	if err := tracker.RecordSeenBatch(ctx, "u1", []string{"q1", "q3"}); err != nil {
		t.Fatalf("record batch: %v", err)
	}

	stats, err := tracker.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSeen != 2 {
		t.Errorf("TotalSeen = %d, want 2", stats.TotalSeen)
	}
	if stats.SeenByTopic["t1"] != 2 {
		t.Errorf("SeenByTopic[t1] = %d, want 2", stats.SeenByTopic["t1"])
	}
}

func TestConcurrentRecordSeenSamePair(t *testing.T) {
	tracker, store := testTracker(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tracker.RecordSeen(ctx, "u1", "q1")
		}()
	}
	wg.Wait()

	if n := store.count("u1"); n != 1 {
		t.Errorf("concurrent upserts must leave exactly 1 record, got %d", n)
	}
}
