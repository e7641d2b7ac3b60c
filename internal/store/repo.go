package store

import (
	"context"
	"time"

	"github.com/abhisek/examforge/internal/question"
)

// QuestionRepo manages the durable question corpus.
type QuestionRepo interface {
	// Create stores a question. The record's ID must be set.
	Create(ctx context.Context, rec question.Record) error

	// CreateBatch stores many questions in one transaction.
	CreateBatch(ctx context.Context, recs []question.Record) error

	// ByIDs returns the questions with the given ids. Missing ids are
	// silently skipped. Satisfies retrieval.QuestionSource.
	ByIDs(ctx context.Context, ids []string) ([]question.Record, error)

	// All returns the whole corpus, for index warm-up at startup.
	All(ctx context.Context) ([]question.Record, error)
}

// ExposureRepo manages per-user exposure records. Satisfies exposure.Store.
type ExposureRepo interface {
	// SeenIDs returns the set of question ids the user has been served.
	SeenIDs(ctx context.Context, userID string) (map[string]struct{}, error)

	// RecordSeen upserts one exposure record. Safe under concurrent
	// calls for the same (user, question) pair.
	RecordSeen(ctx context.Context, userID, questionID string) error

	// RecordSeenBatch upserts exposure records for many questions.
	RecordSeenBatch(ctx context.Context, userID string, questionIDs []string) error
}

// TestConfigRow is a persisted batch configuration.
type TestConfigRow struct {
	ID            string
	UserID        string
	Curriculum    string
	Grade         string
	Subject       string
	TopicIDs      []string
	QuestionCount int
	TestCount     int
	ExcludeSeen   bool
}

// AssembledTestRow is a persisted assembled test.
type AssembledTestRow struct {
	ID          string
	UserID      string
	ConfigID    string
	QuestionIDs []string
	CreatedAt   time.Time
}

// TestRepo persists batch configurations and assembled tests.
type TestRepo interface {
	SaveConfig(ctx context.Context, row TestConfigRow) error
	SaveTest(ctx context.Context, row AssembledTestRow) error
}

// QueryOpts filters LLM request event queries.
type QueryOpts struct {
	Limit      int       // max results (0 = unlimited)
	Provider   string    // filter by provider when non-empty
	Purpose    string    // filter by purpose when non-empty
	FailedOnly bool      // only failed requests
	From       time.Time // timestamp >= From
	To         time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored event row.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the LLM request audit log.
type EventRepo interface {
	// AppendLLMRequest records an LLM or embedding API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by id, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}
