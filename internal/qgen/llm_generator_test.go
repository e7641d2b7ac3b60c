package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/examforge/internal/llm"
	"github.com/abhisek/examforge/internal/question"
)

var testTopic = TopicContext{
	TopicID:     "t-frac",
	Name:        "Fractions",
	Description: "Comparing, adding and subtracting fractions with unlike denominators.",
	SyllabusRef: "MATH.7.2",
	Curriculum:  "CBSE",
	Grade:       "7",
	Subject:     "Mathematics",
}

func questionJSON(t *testing.T, text string) json.RawMessage {
	t.Helper()
	out := questionOutput{
		QuestionText: text,
		QuestionType: "single_choice",
		Options:      []string{"1/2", "2/3", "3/4", "5/6"},
		Answers:      []string{"3/4"},
		SyllabusRef:  "MATH.7.2",
		Difficulty:   "medium",
	}
	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func alignmentJSON(t *testing.T, aligned bool, score float64) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(AlignmentResult{Aligned: aligned, Score: score, Rationale: "test verdict"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestGenerateAdmitsValidCandidates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionJSON(t, "Which fraction is largest?")},
		llm.MockResponse{Content: alignmentJSON(t, true, 0.9)},
		llm.MockResponse{Content: questionJSON(t, "Which fraction equals 0.75?")},
		llm.MockResponse{Content: alignmentJSON(t, true, 0.85)},
	)

	gen := NewLLMGenerator(mock, NewAlignmentChecker(mock, 0.7), DefaultConfig())
	got, err := gen.Generate(context.Background(), GenerateInput{Topic: testTopic, Count: 2})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 admitted, got %d", len(got))
	}
	for _, rec := range got {
		if rec.ID == "" {
			t.Error("admitted record has empty id")
		}
		if rec.TopicID != testTopic.TopicID {
			t.Errorf("TopicID = %q, want %q", rec.TopicID, testTopic.TopicID)
		}
		if rec.Type != question.TypeSingleChoice {
			t.Errorf("Type = %q, want single_choice", rec.Type)
		}
		if rec.CreatedAt.IsZero() {
			t.Error("CreatedAt not set")
		}
	}
	if got[0].ID == got[1].ID {
		t.Error("admitted records share an id")
	}
}

func TestGenerateDiscardsMisalignedCandidate(t *testing.T) {
	mock := llm.NewMockProvider(
		// First candidate fails review, second passes.
		llm.MockResponse{Content: questionJSON(t, "What is the capital of France?")},
		llm.MockResponse{Content: alignmentJSON(t, false, 0.1)},
		llm.MockResponse{Content: questionJSON(t, "Which fraction is largest?")},
		llm.MockResponse{Content: alignmentJSON(t, true, 0.9)},
	)

	gen := NewLLMGenerator(mock, NewAlignmentChecker(mock, 0.7), DefaultConfig())
	got, err := gen.Generate(context.Background(), GenerateInput{Topic: testTopic, Count: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 admitted, got %d", len(got))
	}
	if got[0].Text != "Which fraction is largest?" {
		t.Errorf("admitted the misaligned candidate: %q", got[0].Text)
	}
	// Two generation calls plus two review calls.
	if mock.CallCount() != 4 {
		t.Errorf("CallCount = %d, want 4", mock.CallCount())
	}
}

func TestGenerateRejectsBelowThresholdScore(t *testing.T) {
	// Model says aligned but the score is under the bar.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionJSON(t, "Borderline question?")},
		llm.MockResponse{Content: alignmentJSON(t, true, 0.4)},
	)

	cfg := DefaultConfig()
	cfg.ExtraAttempts = 0
	gen := NewLLMGenerator(mock, NewAlignmentChecker(mock, 0.7), cfg)
	got, err := gen.Generate(context.Background(), GenerateInput{Topic: testTopic, Count: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 admitted, got %d", len(got))
	}
}

func TestGenerateDiscardsDuplicateOfExisting(t *testing.T) {
	mock := llm.NewMockProvider(
		// Duplicate differs only in case and whitespace.
		llm.MockResponse{Content: questionJSON(t, "  WHICH fraction is   largest?")},
		llm.MockResponse{Content: questionJSON(t, "Order 1/2, 2/3 and 3/4 ascending.")},
		llm.MockResponse{Content: alignmentJSON(t, true, 0.9)},
	)

	gen := NewLLMGenerator(mock, NewAlignmentChecker(mock, 0.7), DefaultConfig())
	got, err := gen.Generate(context.Background(), GenerateInput{
		Topic:        testTopic,
		Count:        1,
		ExcludeTexts: []string{"Which fraction is largest?"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 admitted, got %d", len(got))
	}
	if got[0].Text != "Order 1/2, 2/3 and 3/4 ascending." {
		t.Errorf("admitted the duplicate: %q", got[0].Text)
	}
}

func TestGenerateAttemptBudget(t *testing.T) {
	// Every candidate fails structural validation: budget is Count +
	// ExtraAttempts generation calls, then give up without error.
	bad, err := json.Marshal(questionOutput{
		QuestionText: "Broken",
		QuestionType: "single_choice",
		Options:      []string{"only", "three", "options"},
		Answers:      []string{"only"},
		SyllabusRef:  "MATH.7.2",
		Difficulty:   "easy",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock := llm.NewMockProvider()
	for range 10 {
		mock.AddResponse(llm.MockResponse{Content: bad})
	}

	cfg := DefaultConfig()
	cfg.ExtraAttempts = 2
	gen := NewLLMGenerator(mock, nil, cfg)
	got, err := gen.Generate(context.Background(), GenerateInput{Topic: testTopic, Count: 2})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 admitted, got %d", len(got))
	}
	if mock.CallCount() != 4 {
		t.Errorf("CallCount = %d, want 4 (count 2 + extra 2)", mock.CallCount())
	}
}

func TestGenerateProviderFailureReturnsPartial(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionJSON(t, "Which fraction is largest?")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)

	gen := NewLLMGenerator(mock, nil, DefaultConfig())
	got, err := gen.Generate(context.Background(), GenerateInput{Topic: testTopic, Count: 2})

	var unavailable *ErrGenerationUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrGenerationUnavailable, got %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 admitted before the failure, got %d", len(got))
	}
}

func TestGeneratePromptCarriesExclusions(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionJSON(t, "Which fraction is largest?")},
	)

	gen := NewLLMGenerator(mock, nil, DefaultConfig())
	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:        testTopic,
		Count:        1,
		ExcludeTexts: []string{"Add 1/2 and 1/3."},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(mock.Calls) == 0 {
		t.Fatal("no calls recorded")
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Add 1/2 and 1/3.") {
		t.Errorf("prompt missing dedup entry:\n%s", prompt)
	}
	if !strings.Contains(prompt, "MATH.7.2") {
		t.Errorf("prompt missing syllabus ref:\n%s", prompt)
	}
}
