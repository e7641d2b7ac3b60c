package qgen

import (
	"fmt"
	"strings"
)

const generatorSystemPrompt = `You are an exam question author for school practice tests. You write clear,
self-contained questions that test exactly one syllabus topic at the stated
grade level. Every question must be answerable from the question text alone,
use age-appropriate language, and have an unambiguous correct answer.

Rules:
- The question must genuinely test the given topic, not an adjacent one.
- single_choice questions carry exactly 4 options with exactly one correct.
- free_text and numeric questions carry an empty options array.
- numeric answers are plain numbers without units unless the question asks
  for a unit.
- Never reuse or lightly rephrase any question listed as already used.`

const alignmentSystemPrompt = `You are a syllabus reviewer. Given a syllabus topic and a candidate exam
question, judge whether the question genuinely tests that topic at the
stated grade level. A question that merely mentions the topic's vocabulary
while testing something else is not aligned. Be strict: when in doubt,
mark the question as not aligned.`

// maxExcludeTexts caps the dedup list carried in the prompt so a large
// candidate pool cannot blow the context window.
const maxExcludeTexts = 40

func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	t := input.Topic
	fmt.Fprintf(&b, "Write one practice exam question.\n\n")
	fmt.Fprintf(&b, "Curriculum: %s\nGrade: %s\nSubject: %s\n", t.Curriculum, t.Grade, t.Subject)
	fmt.Fprintf(&b, "Topic: %s (%s)\n", t.Name, t.SyllabusRef)
	if t.Description != "" {
		fmt.Fprintf(&b, "Syllabus description: %s\n", t.Description)
	}
	if input.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	}

	if dedup := buildDedupList(input.ExcludeTexts); dedup != "" {
		b.WriteString("\nAlready used, do not repeat or rephrase:\n")
		b.WriteString(dedup)
	}

	return b.String()
}

// buildDedupList renders the most recent exclusions, newest first, since
// recent questions are the likeliest collisions.
func buildDedupList(texts []string) string {
	if len(texts) == 0 {
		return ""
	}
	start := 0
	if len(texts) > maxExcludeTexts {
		start = len(texts) - maxExcludeTexts
	}
	var b strings.Builder
	for i := len(texts) - 1; i >= start; i-- {
		fmt.Fprintf(&b, "- %s\n", texts[i])
	}
	return b.String()
}

// normalizeText lowercases and collapses whitespace so dedup comparisons
// ignore formatting differences.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
