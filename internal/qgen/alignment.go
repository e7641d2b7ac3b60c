package qgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/examforge/internal/llm"
	"github.com/abhisek/examforge/internal/question"
)

// AlignmentResult is the reviewer's verdict on one candidate.
type AlignmentResult struct {
	Aligned   bool    `json:"aligned"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// AlignmentChecker asks a second model pass whether a generated question
// genuinely tests its claimed topic. Generation and review use separate
// prompts so the reviewer is not anchored on the author's intent.
type AlignmentChecker struct {
	provider  llm.Provider
	threshold float64
}

// NewAlignmentChecker builds a checker that rejects candidates scoring
// below threshold even when the model marks them aligned.
func NewAlignmentChecker(provider llm.Provider, threshold float64) *AlignmentChecker {
	return &AlignmentChecker{provider: provider, threshold: threshold}
}

// Check returns the raw verdict without applying the threshold.
func (c *AlignmentChecker) Check(ctx context.Context, rec question.Record, topic TopicContext) (*AlignmentResult, error) {
	ctx = llm.WithPurpose(ctx, "alignment-check")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: alignmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAlignmentMessage(rec, topic)},
		},
		Schema:    AlignmentSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, err
	}

	var result AlignmentResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("parse alignment verdict: %w", err)
	}
	return &result, nil
}

// Verify runs Check and converts a failing verdict into *ErrAlignmentRejected.
func (c *AlignmentChecker) Verify(ctx context.Context, rec question.Record, topic TopicContext) error {
	result, err := c.Check(ctx, rec, topic)
	if err != nil {
		return err
	}
	if !result.Aligned || result.Score < c.threshold {
		return &ErrAlignmentRejected{
			QuestionText: rec.Text,
			Score:        result.Score,
			Rationale:    result.Rationale,
		}
	}
	return nil
}

func buildAlignmentMessage(rec question.Record, topic TopicContext) string {
	msg := fmt.Sprintf(
		"Topic: %s (%s)\nCurriculum: %s, grade %s, subject %s.\n",
		topic.Name, topic.SyllabusRef, topic.Curriculum, topic.Grade, topic.Subject,
	)
	if topic.Description != "" {
		msg += fmt.Sprintf("Syllabus description: %s\n", topic.Description)
	}
	msg += fmt.Sprintf("\nCandidate question (%s):\n%s\n", rec.Type, rec.Text)
	for _, opt := range rec.Options {
		msg += fmt.Sprintf("- %s\n", opt)
	}
	msg += "\nDoes this question genuinely test the topic at this grade level?"
	return msg
}
