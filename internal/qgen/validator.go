package qgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/examforge/internal/question"
)

// Validator checks a generated candidate before admission. A returned
// *ValidationError discards the candidate; any other error aborts the run.
type Validator interface {
	Name() string
	Validate(rec question.Record, topic TopicContext) error
}

// ValidationError marks a candidate as unusable without failing the batch.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Validator, e.Message)
}

// StructuralValidator enforces the shape rules the schema cannot express:
// option counts per type, answer membership, numeric parseability.
type StructuralValidator struct{}

func (StructuralValidator) Name() string { return "structural" }

func (v StructuralValidator) Validate(rec question.Record, topic TopicContext) error {
	if strings.TrimSpace(rec.Text) == "" {
		return &ValidationError{Validator: v.Name(), Message: "empty question text"}
	}
	if !rec.Type.Valid() {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown question type %q", rec.Type)}
	}
	if len(rec.Answers) == 0 {
		return &ValidationError{Validator: v.Name(), Message: "no answers"}
	}

	switch rec.Type {
	case question.TypeSingleChoice:
		if len(rec.Options) != 4 {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("single_choice needs 4 options, got %d", len(rec.Options))}
		}
		if len(rec.Answers) != 1 {
			return &ValidationError{Validator: v.Name(), Message: "single_choice needs exactly 1 answer"}
		}
		if !containsFold(rec.Options, rec.Answers[0]) {
			return &ValidationError{Validator: v.Name(), Message: "answer is not one of the options"}
		}
		if hasDuplicates(rec.Options) {
			return &ValidationError{Validator: v.Name(), Message: "duplicate options"}
		}
	case question.TypeNumeric:
		if len(rec.Options) != 0 {
			return &ValidationError{Validator: v.Name(), Message: "numeric question must not carry options"}
		}
		for _, a := range rec.Answers {
			if _, err := strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
				return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("non-numeric answer %q", a)}
			}
		}
	case question.TypeFreeText:
		if len(rec.Options) != 0 {
			return &ValidationError{Validator: v.Name(), Message: "free_text question must not carry options"}
		}
	}

	return nil
}

// SyllabusRefValidator rejects candidates whose syllabus reference does not
// fall under the topic's reference. "MATH.7.2.3" falls under "MATH.7.2".
type SyllabusRefValidator struct{}

func (SyllabusRefValidator) Name() string { return "syllabus-ref" }

func (v SyllabusRefValidator) Validate(rec question.Record, topic TopicContext) error {
	if topic.SyllabusRef == "" || rec.SyllabusRef == topic.SyllabusRef {
		return nil
	}
	if !strings.HasPrefix(rec.SyllabusRef, topic.SyllabusRef+".") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("ref %q is outside topic ref %q", rec.SyllabusRef, topic.SyllabusRef),
		}
	}
	return nil
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(needle)) {
			return true
		}
	}
	return false
}

func hasDuplicates(ss []string) bool {
	seen := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		key := normalizeText(s)
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}
