package question

import "fmt"

// ErrInsufficientQuestions indicates the corpus cannot supply the requested
// number of questions, even after any fallback generation already attempted.
// It is a resource shortfall, not a transient failure: callers should reduce
// the request rather than retry.
type ErrInsufficientQuestions struct {
	Available  int
	Requested  int
	Suggestion string
}

func (e *ErrInsufficientQuestions) Error() string {
	msg := fmt.Sprintf("insufficient questions: %d available, %d requested", e.Available, e.Requested)
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}
	return msg
}
