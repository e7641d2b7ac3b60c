package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/examforge/internal/llm"
	"github.com/abhisek/examforge/internal/question"
)

// questionOutput mirrors the exam-question schema.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
	Answers      []string `json:"answers"`
	SyllabusRef  string   `json:"syllabus_ref"`
	Difficulty   string   `json:"difficulty"`
}

// LLMGenerator produces questions through an llm.Provider, screens each
// candidate through validators and the alignment reviewer, and admits the
// survivors.
type LLMGenerator struct {
	provider   llm.Provider
	aligner    *AlignmentChecker
	validators []Validator
	config     Config
}

// NewLLMGenerator builds a generator with the standard validator chain.
// aligner may be nil to skip the review pass.
func NewLLMGenerator(provider llm.Provider, aligner *AlignmentChecker, config Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		aligner:  aligner,
		validators: []Validator{
			StructuralValidator{},
			SyllabusRefValidator{},
		},
		config: config,
	}
}

// Generate implements Generator. Candidates are produced one at a time so
// each prompt's dedup list covers everything admitted so far.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]question.Record, error) {
	if input.Count <= 0 {
		return nil, nil
	}

	exclude := make([]string, len(input.ExcludeTexts))
	copy(exclude, input.ExcludeTexts)
	excludeSet := make(map[string]struct{}, len(exclude))
	for _, t := range exclude {
		excludeSet[normalizeText(t)] = struct{}{}
	}

	var admitted []question.Record
	budget := input.Count + g.config.ExtraAttempts

	for attempt := 0; attempt < budget && len(admitted) < input.Count; attempt++ {
		rec, err := g.generateOne(ctx, GenerateInput{
			Topic:        input.Topic,
			ExcludeTexts: exclude,
			Count:        1,
			Difficulty:   input.Difficulty,
		})
		if err != nil {
			return admitted, &ErrGenerationUnavailable{Err: err}
		}

		if reason := g.screen(ctx, rec, input.Topic, excludeSet); reason != nil {
			var invalid *ValidationError
			var rejected *ErrAlignmentRejected
			if !errors.As(reason, &invalid) && !errors.As(reason, &rejected) {
				// Alignment backend failure, not a candidate defect.
				return admitted, &ErrGenerationUnavailable{Err: reason}
			}
			// Discard the candidate; the attempt budget bounds how many
			// discards a single call can absorb.
			continue
		}

		admitted = append(admitted, *rec)
		exclude = append(exclude, rec.Text)
		excludeSet[normalizeText(rec.Text)] = struct{}{}
	}

	return admitted, nil
}

func (g *LLMGenerator) generateOne(ctx context.Context, input GenerateInput) (*question.Record, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse generated question: %w", err)
	}

	syllabusRef := out.SyllabusRef
	if syllabusRef == "" {
		syllabusRef = input.Topic.SyllabusRef
	}

	return &question.Record{
		ID:          uuid.NewString(),
		TopicID:     input.Topic.TopicID,
		Text:        out.QuestionText,
		Type:        question.Type(out.QuestionType),
		Options:     out.Options,
		Answers:     out.Answers,
		SyllabusRef: syllabusRef,
		Difficulty:  out.Difficulty,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// screen runs a candidate through dedup, validators, and alignment. A nil
// return admits it; a *ValidationError or *ErrAlignmentRejected discards it.
// Anything else escapes as a backend failure.
func (g *LLMGenerator) screen(ctx context.Context, rec *question.Record, topic TopicContext, excludeSet map[string]struct{}) error {
	if _, dup := excludeSet[normalizeText(rec.Text)]; dup {
		return &ValidationError{Validator: "dedup", Message: "duplicate of an existing question"}
	}

	for _, v := range g.validators {
		if err := v.Validate(*rec, topic); err != nil {
			return err
		}
	}

	if g.aligner != nil {
		if err := g.aligner.Verify(ctx, *rec, topic); err != nil {
			return err
		}
	}

	return nil
}
