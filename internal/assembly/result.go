package assembly

import (
	"time"

	"github.com/abhisek/examforge/internal/question"
)

// AssembledTest is one finished test: exactly QuestionCount questions,
// unique within the batch that produced it.
type AssembledTest struct {
	ID        string
	Questions []question.Record
	CreatedAt time.Time
}

// QuestionIDs returns the ids of the included questions in order.
func (t AssembledTest) QuestionIDs() []string {
	ids := make([]string, len(t.Questions))
	for i, q := range t.Questions {
		ids[i] = q.ID
	}
	return ids
}

// TestFailure reports one test that could not be assembled: its position
// in the batch, the state it failed in, and why.
type TestFailure struct {
	Index int
	State string
	Err   error
}

// BatchResult reports a whole batch. A failed test never silently
// vanishes: every requested test appears either in Tests or in Failures.
type BatchResult struct {
	Tests    []AssembledTest
	Failures []TestFailure
}

// Complete reports whether every requested test was assembled.
func (r *BatchResult) Complete() bool {
	return len(r.Failures) == 0
}
