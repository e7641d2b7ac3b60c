package qgen

import "github.com/abhisek/examforge/internal/llm"

// QuestionSchema defines the JSON schema for generated exam questions.
var QuestionSchema = &llm.Schema{
	Name:        "exam-question",
	Description: "A single syllabus-aligned practice exam question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, self-contained plain text",
			},
			"question_type": map[string]any{
				"type":        "string",
				"enum":        []any{"single_choice", "free_text", "numeric"},
				"description": "How the learner answers: pick one option, type text, or type a number",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for single_choice. Empty array otherwise.",
			},
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "One or more accepted correct answers. For single_choice: the text of the correct option.",
			},
			"syllabus_ref": map[string]any{
				"type":        "string",
				"description": "The syllabus reference this question is grounded in, e.g. MATH.7.2.3",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Difficulty tag for the question",
			},
		},
		"required":             []any{"question_text", "question_type", "options", "answers", "syllabus_ref", "difficulty"},
		"additionalProperties": false,
	},
}

// AlignmentSchema defines the JSON schema for alignment-check verdicts.
var AlignmentSchema = &llm.Schema{
	Name:        "alignment-verdict",
	Description: "Judgment of whether a question belongs to its claimed syllabus topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"aligned": map[string]any{
				"type":        "boolean",
				"description": "Whether the question genuinely tests the given topic",
			},
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Alignment confidence from 0 (unrelated) to 1 (squarely on topic)",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the verdict",
			},
		},
		"required":             []any{"aligned", "score", "rationale"},
		"additionalProperties": false,
	},
}
