package retrieval

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/examforge/internal/embedding"
	"github.com/abhisek/examforge/internal/question"
	"github.com/abhisek/examforge/internal/vecindex"
)

// mapSource implements QuestionSource over an in-memory map.
type mapSource struct {
	records map[string]question.Record
}

func newMapSource() *mapSource {
	return &mapSource{records: make(map[string]question.Record)}
}

func (s *mapSource) add(rec question.Record) {
	s.records[rec.ID] = rec
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

func testRecord(id, topic, text, ref string, created time.Time) question.Record {
	return question.Record{
		ID:          id,
		TopicID:     topic,
		Text:        text,
		Type:        question.TypeFreeText,
		Answers:     []string{"answer"},
		SyllabusRef: ref,
		Difficulty:  "medium",
		CreatedAt:   created,
	}
}

// testRetriever builds a retriever with a hash embedder and the given
// records already persisted and indexed.
func testRetriever(t *testing.T, records ...question.Record) (*Retriever, *mapSource) {
	t.Helper()

	embedder, err := embedding.NewHashEmbedder(128)
	if err != nil {
		t.Fatalf("new hash embedder: %v", err)
	}

	ix := vecindex.New(128)
	source := newMapSource()
	r := New(ix, embedder, source, DefaultConfig())

	ctx := context.Background()
	for i := range records {
		if err := r.IndexQuestion(ctx, &records[i]); err != nil {
			t.Fatalf("index question %s: %v", records[i].ID, err)
		}
		source.add(records[i])
	}
	return r, source
}

func TestIndexQuestionRoundTrip(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := testRecord("q1", "t1", "What is photosynthesis?", "BIO.1.1", base)

	r, _ := testRetriever(t, rec)

	got, err := r.Retrieve(context.Background(), Query{TopicIDs: []string{"t1"}, Count: 5})
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q1" {
		t.Fatalf("expected [q1], got %v", got)
	}
}

func TestIndexQuestionCachesEmbedding(t *testing.T) {
	r, _ := testRetriever(t)

	rec := testRecord("q1", "t1", "What is osmosis?", "BIO.1.2", time.Now())
	if rec.Embedding != nil {
		t.Fatal("precondition: no embedding")
	}
	if err := r.IndexQuestion(context.Background(), &rec); err != nil {
		t.Fatalf("index: %v", err)
	}
	if len(rec.Embedding) != 128 {
		t.Errorf("embedding not populated in place, len=%d", len(rec.Embedding))
	}
}

func TestRetrieveDefaultOrderDeterministic(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r, _ := testRetriever(t,
		testRecord("q3", "t1", "third question text", "MATH.2.1", base.Add(time.Hour)),
		testRecord("q1", "t1", "first question text", "MATH.1.1", base),
		testRecord("q2", "t1", "second question text", "MATH.1.2", base),
	)

	got, err := r.Retrieve(context.Background(), Query{TopicIDs: []string{"t1"}, Count: 3})
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}

	want := []string{"q1", "q2", "q3"}
	for i, rec := range got {
		if rec.ID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, rec.ID, want[i])
		}
	}
}

func TestRetrieveExclusion(t *testing.T) {
	base := time.Now()
	r, _ := testRetriever(t,
		testRecord("q1", "t1", "alpha", "S.1", base),
		testRecord("q2", "t1", "beta", "S.2", base),
		testRecord("q3", "t1", "gamma", "S.3", base),
	)

	got, err := r.Retrieve(context.Background(), Query{
		TopicIDs:   []string{"t1"},
		Count:      3,
		ExcludeIDs: map[string]struct{}{"q2": {}},
	})
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records after exclusion, got %d", len(got))
	}
	for _, rec := range got {
		if rec.ID == "q2" {
			t.Error("excluded id q2 returned")
		}
	}
}

func TestRetrieveNeverReturnsDuplicates(t *testing.T) {
	base := time.Now()
	r, _ := testRetriever(t,
		testRecord("q1", "t1", "shared pool question", "S.1", base),
		testRecord("q2", "t2", "other topic question", "S.2", base),
	)

	// q1's topic listed twice must not duplicate it.
	got, err := r.Retrieve(context.Background(), Query{TopicIDs: []string{"t1", "t2", "t1"}, Count: 10})
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	seen := make(map[string]bool)
	for _, rec := range got {
		if seen[rec.ID] {
			t.Errorf("duplicate id %s in result", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestRetrieveSemanticRanking(t *testing.T) {
	base := time.Now()
	r, _ := testRetriever(t,
		testRecord("q-frac", "t1", "adding fractions with unlike denominators", "M.1", base),
		testRecord("q-geo", "t1", "perimeter of a rectangle", "M.2", base),
	)

	got, err := r.Retrieve(context.Background(), Query{
		TopicIDs:  []string{"t1"},
		Count:     2,
		QueryText: "fraction addition denominators",
	})
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(got) == 0 || got[0].ID != "q-frac" {
		t.Errorf("expected q-frac ranked first for fraction query, got %v", got)
	}
}

func TestRetrieveEmptyPoolIsNotAnError(t *testing.T) {
	r, _ := testRetriever(t)

	got, err := r.Retrieve(context.Background(), Query{TopicIDs: []string{"missing"}, Count: 5})
	if err != nil {
		t.Fatalf("empty pool must not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestRetrieveShortfallReturnsAvailable(t *testing.T) {
	base := time.Now()
	r, _ := testRetriever(t,
		testRecord("q1", "t1", "only question", "S.1", base),
	)

	got, err := r.Retrieve(context.Background(), Query{TopicIDs: []string{"t1"}, Count: 5})
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("must return all available when short, got %d", len(got))
	}
}
