package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/examforge/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"questions", "exposure_records", "test_configs", "assembled_tests", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestQuestionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	rec := question.Record{
		ID:          "q-rt-1",
		TopicID:     "t1",
		Text:        "Which fraction is largest?",
		Type:        question.TypeSingleChoice,
		Options:     []string{"1/2", "2/3", "3/4", "5/6"},
		Answers:     []string{"5/6"},
		SyllabusRef: "MATH.7.2",
		Difficulty:  "medium",
		Embedding:   []float32{0.1, 0.2, 0.3},
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ByIDs(ctx, []string{"q-rt-1", "missing"})
	if err != nil {
		t.Fatalf("by ids: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Text != rec.Text || got[0].Type != rec.Type || got[0].SyllabusRef != rec.SyllabusRef {
		t.Errorf("round-trip mismatch: %+v", got[0])
	}
	if len(got[0].Options) != 4 || len(got[0].Embedding) != 3 {
		t.Errorf("JSON fields did not survive: options=%d embedding=%d", len(got[0].Options), len(got[0].Embedding))
	}
}

func TestQuestionCreateBatchAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	recs := []question.Record{
		{ID: "qb1", TopicID: "t1", Text: "first", Type: question.TypeFreeText, Answers: []string{"a"}, SyllabusRef: "S.1", CreatedAt: time.Now().UTC()},
		{ID: "qb2", TopicID: "t2", Text: "second", Type: question.TypeFreeText, Answers: []string{"b"}, SyllabusRef: "S.2", CreatedAt: time.Now().UTC()},
	}
	if err := repo.CreateBatch(ctx, recs); err != nil {
		t.Fatalf("create batch: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 records, got %d", len(all))
	}
}

func TestExposureUpsertIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExposureRepo()
	ctx := context.Background()

	if err := repo.RecordSeen(ctx, "u1", "q1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.RecordSeen(ctx, "u1", "q1"); err != nil {
		t.Fatalf("second record must not error: %v", err)
	}

	seen, err := repo.SeenIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("seen ids: %v", err)
	}
	if len(seen) != 1 {
		t.Errorf("expected exactly 1 seen id, got %d", len(seen))
	}

	count, err := s.Client().ExposureRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 row, got %d", count)
	}
}

func TestExposureBatchOverlapsExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExposureRepo()
	ctx := context.Background()

	if err := repo.RecordSeen(ctx, "u1", "q1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Batch overlaps the existing row; the conflict is ignored.
	if err := repo.RecordSeenBatch(ctx, "u1", []string{"q1", "q2", "q3"}); err != nil {
		t.Fatalf("record batch: %v", err)
	}

	seen, err := repo.SeenIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("seen ids: %v", err)
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 seen ids, got %d", len(seen))
	}
}

func TestExposureConcurrentSamePair(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExposureRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.RecordSeen(ctx, "u1", "q1"); err != nil {
				t.Errorf("concurrent record: %v", err)
			}
		}()
	}
	wg.Wait()

	count, err := s.Client().ExposureRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 row, got %d", count)
	}
}

func TestTestConfigAndAssembledTest(t *testing.T) {
	s := openTestStore(t)
	repo := s.TestRepo()
	ctx := context.Background()

	err := repo.SaveConfig(ctx, TestConfigRow{
		ID:            "cfg1",
		UserID:        "u1",
		Curriculum:    "CBSE",
		Grade:         "7",
		Subject:       "Mathematics",
		TopicIDs:      []string{"t1", "t2"},
		QuestionCount: 5,
		TestCount:     2,
	})
	if err != nil {
		t.Fatalf("save config: %v", err)
	}

	err = repo.SaveTest(ctx, AssembledTestRow{
		ID:          "test1",
		UserID:      "u1",
		ConfigID:    "cfg1",
		QuestionIDs: []string{"q1", "q2", "q3", "q4", "q5"},
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("save test: %v", err)
	}

	row, err := s.Client().AssembledTest.Get(ctx, "test1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.ConfigID != "cfg1" || len(row.QuestionIds) != 5 {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "question-gen", Success: true, InputTokens: 100, OutputTokens: 50},
		{Provider: "anthropic", Model: "m1", Purpose: "alignment-check", Success: true},
		{Provider: "openai", Model: "m2", Purpose: "embed", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first.
	if all[0].Purpose != "embed" {
		t.Errorf("expected newest event first, got %s", all[0].Purpose)
	}

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "rate limited" {
		t.Errorf("unexpected failed set: %+v", failed)
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen", Limit: 1})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].InputTokens != 100 {
		t.Errorf("unexpected purpose set: %+v", byPurpose)
	}

	got, err := repo.GetLLMEvent(ctx, byPurpose[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "question-gen" {
		t.Errorf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}
