package assembly

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/examforge/internal/embedding"
	"github.com/abhisek/examforge/internal/qgen"
	"github.com/abhisek/examforge/internal/question"
	"github.com/abhisek/examforge/internal/retrieval"
	"github.com/abhisek/examforge/internal/vecindex"
)

// mapSource implements retrieval.QuestionSource over a map. The harness's
// persister writes into the same map, mirroring how the SQLite repo backs
// both in production.
type mapSource struct {
	mu      sync.Mutex
	records map[string]question.Record
}

func (s *mapSource) ByIDs(_ context.Context, ids []string) ([]question.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []question.Record
	for _, id := range ids {
		if rec, ok := s.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *mapSource) put(rec question.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
}

type memExposure struct {
	mu   sync.Mutex
	seen map[string]map[string]struct{}
}

func newMemExposure() *memExposure {
	return &memExposure{seen: make(map[string]map[string]struct{})}
}

func (e *memExposure) SeenQuestionIDs(_ context.Context, userID string) (map[string]struct{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]struct{}, len(e.seen[userID]))
	for id := range e.seen[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (e *memExposure) RecordSeenBatch(_ context.Context, userID string, ids []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.seen[userID] == nil {
		e.seen[userID] = make(map[string]struct{})
	}
	for _, id := range ids {
		e.seen[userID][id] = struct{}{}
	}
	return nil
}

type memPersister struct {
	source  *mapSource
	configs []TestConfiguration
	tests   []AssembledTest
}

func (p *memPersister) SaveQuestion(_ context.Context, rec question.Record) error {
	p.source.put(rec)
	return nil
}

func (p *memPersister) SaveConfig(_ context.Context, _ string, config TestConfiguration) (string, error) {
	p.configs = append(p.configs, config)
	return fmt.Sprintf("cfg-%d", len(p.configs)), nil
}

func (p *memPersister) SaveAssembledTest(_ context.Context, _, _ string, test AssembledTest) error {
	p.tests = append(p.tests, test)
	return nil
}

// stubGenerator hands out a fixed supply of pre-built records and keeps
// the inputs it was called with.
type stubGenerator struct {
	supply []question.Record
	err    error
	calls  int
	inputs []qgen.GenerateInput
}

func (g *stubGenerator) Generate(_ context.Context, input qgen.GenerateInput) ([]question.Record, error) {
	g.calls++
	g.inputs = append(g.inputs, input)
	if g.err != nil {
		return nil, g.err
	}
	n := input.Count
	if n > len(g.supply) {
		n = len(g.supply)
	}
	out := g.supply[:n]
	g.supply = g.supply[n:]
	return out, nil
}

type harness struct {
	source    *mapSource
	index     *vecindex.Index
	retriever *retrieval.Retriever
	exposure  *memExposure
	persister *memPersister
	embedder  embedding.Embedder
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	embedder, err := embedding.NewHashEmbedder(64)
	if err != nil {
		t.Fatalf("hash embedder: %v", err)
	}
	index := vecindex.New(64)
	source := &mapSource{records: make(map[string]question.Record)}

	return &harness{
		source:    source,
		index:     index,
		retriever: retrieval.New(index, embedder, source, retrieval.Config{}),
		exposure:  newMemExposure(),
		persister: &memPersister{source: source},
		embedder:  embedder,
	}
}

// seedCorpus indexes n questions q01..qNN in topic t1 with two-digit
// syllabus refs so lexical order matches numeric order.
func (h *harness) seedCorpus(t *testing.T, n int) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= n; i++ {
		rec := question.Record{
			ID:          fmt.Sprintf("q%02d", i),
			TopicID:     "t1",
			Text:        fmt.Sprintf("seeded question number %d", i),
			Type:        question.TypeFreeText,
			Answers:     []string{"a"},
			SyllabusRef: fmt.Sprintf("S.%02d", i),
			CreatedAt:   base,
		}
		h.source.put(rec)
		if err := h.retriever.IndexQuestion(ctx, &rec); err != nil {
			t.Fatalf("index: %v", err)
		}
	}
}

// generatedSupply builds n fallback records g1..gN with refs sorting after
// the seeded corpus.
func generatedSupply(n int) []question.Record {
	out := make([]question.Record, n)
	for i := range out {
		out[i] = question.Record{
			ID:          fmt.Sprintf("g%d", i+1),
			TopicID:     "t1",
			Text:        fmt.Sprintf("generated question number %d", i+1),
			Type:        question.TypeFreeText,
			Answers:     []string{"a"},
			SyllabusRef: fmt.Sprintf("S.9%d", i),
			CreatedAt:   time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}

func testConfig(questions, tests int) TestConfiguration {
	return TestConfiguration{
		Curriculum: "CBSE",
		Grade:      "7",
		Subject:    "Mathematics",
		Topics: []qgen.TopicContext{
			{TopicID: "t1", Name: "Fractions", SyllabusRef: "S", Curriculum: "CBSE", Grade: "7", Subject: "Mathematics"},
		},
		QuestionCount: questions,
		TestCount:     tests,
	}
}

func TestAssembleSufficientCorpus(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 5)
	gen := &stubGenerator{}
	orch := New(h.retriever, gen, h.exposure, h.persister)

	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(5, 1))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !result.Complete() {
		t.Fatalf("unexpected failures: %+v", result.Failures)
	}
	if len(result.Tests) != 1 || len(result.Tests[0].Questions) != 5 {
		t.Fatalf("expected 1 test of 5 questions, got %+v", result.Tests)
	}
	if gen.calls != 0 {
		t.Errorf("fallback invoked %d times with a sufficient corpus", gen.calls)
	}
}

func TestAssembleFallbackFillsShortfall(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 3)
	gen := &stubGenerator{supply: generatedSupply(2)}
	orch := New(h.retriever, gen, h.exposure, h.persister)

	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(5, 1))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !result.Complete() {
		t.Fatalf("unexpected failures: %+v", result.Failures)
	}
	if len(result.Tests[0].Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(result.Tests[0].Questions))
	}
	if gen.calls == 0 {
		t.Error("fallback was not invoked")
	}

	ids := make(map[string]struct{})
	for _, id := range result.Tests[0].QuestionIDs() {
		ids[id] = struct{}{}
	}
	for _, want := range []string{"g1", "g2"} {
		if _, ok := ids[want]; !ok {
			t.Errorf("generated question %s missing from the test", want)
		}
	}
	// Generated material must be durably stored and indexed.
	if !h.index.Contains("g1") || !h.index.Contains("g2") {
		t.Error("generated questions not indexed")
	}
}

func TestAssembleFallbackStillShort(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 3)
	gen := &stubGenerator{supply: generatedSupply(1)}
	orch := New(h.retriever, gen, h.exposure, h.persister)

	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(5, 1))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(result.Tests) != 0 {
		t.Fatalf("expected no assembled tests, got %d", len(result.Tests))
	}
	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Failures))
	}

	failure := result.Failures[0]
	if failure.State != "failed" {
		t.Errorf("failure state = %q, want failed", failure.State)
	}
	var insufficient *question.ErrInsufficientQuestions
	if !errors.As(failure.Err, &insufficient) {
		t.Fatalf("expected ErrInsufficientQuestions, got %v", failure.Err)
	}
	if insufficient.Available != 4 || insufficient.Requested != 5 {
		t.Errorf("got available=%d requested=%d, want 4/5", insufficient.Available, insufficient.Requested)
	}
	if insufficient.Suggestion == "" {
		t.Error("suggestion must not be empty")
	}
}

func TestAssembleBatchCrossTestUniqueness(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 10)
	gen := &stubGenerator{supply: generatedSupply(2)}
	orch := New(h.retriever, gen, h.exposure, h.persister)

	// 3 tests of 4 need 12 questions; the corpus holds 10.
	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(4, 3))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !result.Complete() {
		t.Fatalf("unexpected failures: %+v", result.Failures)
	}
	if len(result.Tests) != 3 {
		t.Fatalf("expected 3 tests, got %d", len(result.Tests))
	}

	seen := make(map[string]struct{})
	for _, test := range result.Tests {
		if len(test.Questions) != 4 {
			t.Fatalf("test has %d questions, want 4", len(test.Questions))
		}
		for _, id := range test.QuestionIDs() {
			if _, dup := seen[id]; dup {
				t.Errorf("question %s appears in more than one test", id)
			}
			seen[id] = struct{}{}
		}
	}
	if len(seen) != 12 {
		t.Errorf("expected 12 distinct questions across the batch, got %d", len(seen))
	}
}

func TestAssembleFallbackDedupSpansBatch(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 6)
	gen := &stubGenerator{supply: generatedSupply(2)}
	orch := New(h.retriever, gen, h.exposure, h.persister)

	// Two tests of 4 over a corpus of 6: the second needs fallback.
	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(4, 2))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !result.Complete() {
		t.Fatalf("unexpected failures: %+v", result.Failures)
	}
	if len(gen.inputs) == 0 {
		t.Fatal("fallback was not invoked")
	}

	// The first test's texts must be on the generator's dedup list, not
	// just its ids on the exclusion set.
	listed := make(map[string]struct{})
	for _, text := range gen.inputs[0].ExcludeTexts {
		listed[text] = struct{}{}
	}
	for _, q := range result.Tests[0].Questions {
		if _, ok := listed[q.Text]; !ok {
			t.Errorf("text of %s from the first test missing from the dedup list", q.ID)
		}
	}
}

func TestAssembleInvalidConfiguration(t *testing.T) {
	h := newHarness(t)
	orch := New(h.retriever, nil, h.exposure, h.persister)

	tests := []struct {
		name   string
		mutate func(*TestConfiguration)
	}{
		{"no topics", func(c *TestConfiguration) { c.Topics = nil }},
		{"zero question count", func(c *TestConfiguration) { c.QuestionCount = 0 }},
		{"negative test count", func(c *TestConfiguration) { c.TestCount = -1 }},
		{"topic without id", func(c *TestConfiguration) { c.Topics[0].TopicID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig(5, 1)
			tt.mutate(&config)

			result, err := orch.AssembleBatch(context.Background(), "u1", config)
			var invalid *ErrInvalidConfiguration
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
			if result != nil {
				t.Error("result must be nil on configuration error")
			}
		})
	}
}

func TestAssemblePartialBatchFailure(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 5)
	// No generator: the second test cannot cover its shortfall.
	orch := New(h.retriever, nil, h.exposure, h.persister)

	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(4, 2))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(result.Tests) != 1 {
		t.Fatalf("expected the first test to survive, got %d tests", len(result.Tests))
	}
	if len(result.Failures) != 1 || result.Failures[0].Index != 1 {
		t.Fatalf("expected exactly the second test to fail, got %+v", result.Failures)
	}
	var insufficient *question.ErrInsufficientQuestions
	if !errors.As(result.Failures[0].Err, &insufficient) {
		t.Fatalf("expected ErrInsufficientQuestions, got %v", result.Failures[0].Err)
	}
	if insufficient.Available != 1 || insufficient.Requested != 4 {
		t.Errorf("got available=%d requested=%d, want 1/4", insufficient.Available, insufficient.Requested)
	}
}

func TestAssembleGeneratorUnavailable(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 3)
	gen := &stubGenerator{err: &qgen.ErrGenerationUnavailable{}}
	orch := New(h.retriever, gen, h.exposure, h.persister)

	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(5, 1))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Failures))
	}
	if result.Failures[0].State != "fallback" {
		t.Errorf("failure state = %q, want fallback", result.Failures[0].State)
	}
	var unavailable *qgen.ErrGenerationUnavailable
	if !errors.As(result.Failures[0].Err, &unavailable) {
		t.Errorf("expected ErrGenerationUnavailable, got %v", result.Failures[0].Err)
	}
}

func TestAssembleRecordsExposure(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 5)
	orch := New(h.retriever, nil, h.exposure, h.persister)

	result, err := orch.AssembleBatch(context.Background(), "u1", testConfig(5, 1))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	seen, err := h.exposure.SeenQuestionIDs(context.Background(), "u1")
	if err != nil {
		t.Fatalf("seen ids: %v", err)
	}
	for _, id := range result.Tests[0].QuestionIDs() {
		if _, ok := seen[id]; !ok {
			t.Errorf("question %s not recorded as seen", id)
		}
	}
	if len(h.persister.tests) != 1 {
		t.Errorf("expected 1 persisted test, got %d", len(h.persister.tests))
	}
}

func TestAssembleExcludeSeen(t *testing.T) {
	h := newHarness(t)
	h.seedCorpus(t, 5)
	if err := h.exposure.RecordSeenBatch(context.Background(), "u1", []string{"q01", "q02"}); err != nil {
		t.Fatalf("record seen: %v", err)
	}
	orch := New(h.retriever, nil, h.exposure, h.persister)

	config := testConfig(3, 1)
	config.ExcludeSeen = true
	result, err := orch.AssembleBatch(context.Background(), "u1", config)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !result.Complete() {
		t.Fatalf("unexpected failures: %+v", result.Failures)
	}

	want := []string{"q03", "q04", "q05"}
	got := result.Tests[0].QuestionIDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i, id := range got {
		if id != want[i] {
			t.Errorf("position %d: got %s, want %s", i, id, want[i])
		}
	}
}
