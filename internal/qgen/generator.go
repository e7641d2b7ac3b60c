package qgen

import (
	"context"

	"github.com/abhisek/examforge/internal/question"
)

// Generator synthesizes new syllabus-grounded questions when retrieval
// comes up short.
type Generator interface {
	// Generate produces up to input.Count validated, syllabus-aligned
	// question records. A shorter result is not an error: candidates
	// failing validation or alignment are discarded and the attempt
	// budget is bounded. A non-nil error means the generative backend
	// itself became unavailable; any records admitted before the
	// failure are still returned.
	Generate(ctx context.Context, input GenerateInput) ([]question.Record, error)
}
