package assembly

import (
	"fmt"

	"github.com/abhisek/examforge/internal/qgen"
)

// TestConfiguration describes one batch request: how many tests to
// assemble, how many questions each, and from which syllabus topics.
type TestConfiguration struct {
	// Curriculum, Grade, and Subject scope the request, e.g. "CBSE",
	// "7", "Mathematics".
	Curriculum string
	Grade      string
	Subject    string

	// Topics are the syllabus topics to draw from. Each carries the
	// context the fallback generator needs, so shortfalls can be filled
	// without a separate syllabus lookup.
	Topics []qgen.TopicContext

	// QuestionCount is questions per test. TestCount is tests per batch.
	QuestionCount int
	TestCount     int

	// ExcludeSeen makes this a retry-flavored request: questions the
	// user has already seen are excluded from retrieval, widening the
	// shortfall the fallback generator must cover.
	ExcludeSeen bool

	// Difficulty optionally pins generated questions to one difficulty.
	Difficulty string

	// QueryText optionally switches retrieval to semantic ranking
	// against this text instead of the default deterministic ordering.
	QueryText string
}

// ErrInvalidConfiguration is a caller error. It is returned immediately
// and never retried.
type ErrInvalidConfiguration struct {
	Reason string
}

func (e *ErrInvalidConfiguration) Error() string {
	return fmt.Sprintf("invalid test configuration: %s", e.Reason)
}

// Validate checks the configuration before any work starts.
func (c TestConfiguration) Validate() error {
	if len(c.Topics) == 0 {
		return &ErrInvalidConfiguration{Reason: "at least one topic is required"}
	}
	for i, t := range c.Topics {
		if t.TopicID == "" {
			return &ErrInvalidConfiguration{Reason: fmt.Sprintf("topic %d has no id", i)}
		}
	}
	if c.QuestionCount <= 0 {
		return &ErrInvalidConfiguration{Reason: "question count must be positive"}
	}
	if c.TestCount <= 0 {
		return &ErrInvalidConfiguration{Reason: "test count must be positive"}
	}
	return nil
}

// TopicIDs returns the ids of the configured topics in order.
func (c TestConfiguration) TopicIDs() []string {
	ids := make([]string, len(c.Topics))
	for i, t := range c.Topics {
		ids[i] = t.TopicID
	}
	return ids
}
