package qgen

import "fmt"

// ErrGenerationUnavailable indicates the generative backend is down or
// unreachable after retries. The affected test's assembly aborts; sibling
// tests in the batch proceed.
type ErrGenerationUnavailable struct {
	Err error
}

func (e *ErrGenerationUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question generation unavailable: %v", e.Err)
	}
	return "question generation unavailable"
}

func (e *ErrGenerationUnavailable) Unwrap() error { return e.Err }

// ErrAlignmentRejected indicates a generated candidate failed the
// syllabus-alignment check. The candidate is discarded and does not count
// toward the requested amount; it never aborts a batch.
type ErrAlignmentRejected struct {
	QuestionText string
	Score        float64
	Rationale    string
}

func (e *ErrAlignmentRejected) Error() string {
	return fmt.Sprintf("candidate rejected by alignment check (score %.2f): %s", e.Score, e.Rationale)
}
