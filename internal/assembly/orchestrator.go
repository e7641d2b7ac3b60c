package assembly

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/examforge/internal/qgen"
	"github.com/abhisek/examforge/internal/question"
	"github.com/abhisek/examforge/internal/retrieval"
)

// Retriever is the retrieval engine surface the orchestrator needs.
// *retrieval.Retriever satisfies it.
type Retriever interface {
	Retrieve(ctx context.Context, q retrieval.Query) ([]question.Record, error)
	IndexQuestion(ctx context.Context, rec *question.Record) error
}

// ExposureRecorder is the exposure tracker surface the orchestrator needs.
// *exposure.Tracker satisfies it.
type ExposureRecorder interface {
	SeenQuestionIDs(ctx context.Context, userID string) (map[string]struct{}, error)
	RecordSeenBatch(ctx context.Context, userID string, questionIDs []string) error
}

// Persister durably stores generated questions, batch configurations, and
// assembled tests. The orchestrator persists a generated question before
// indexing it and an assembled test before recording exposure. May be nil
// for in-memory use.
type Persister interface {
	SaveQuestion(ctx context.Context, rec question.Record) error

	// SaveConfig stores the batch configuration once per batch and
	// returns the id the batch's tests are filed under.
	SaveConfig(ctx context.Context, userID string, config TestConfiguration) (string, error)

	SaveAssembledTest(ctx context.Context, userID, configID string, test AssembledTest) error
}

// Orchestrator assembles batches of tests: retrieve from the corpus, fall
// back to generation on shortfall, and enforce cross-test uniqueness and
// per-user exposure discipline.
type Orchestrator struct {
	retriever Retriever
	generator qgen.Generator
	exposure  ExposureRecorder
	persister Persister
}

// New builds an orchestrator. generator may be nil to disable fallback;
// persister may be nil to skip durable writes.
func New(retriever Retriever, generator qgen.Generator, exposure ExposureRecorder, persister Persister) *Orchestrator {
	return &Orchestrator{
		retriever: retriever,
		generator: generator,
		exposure:  exposure,
		persister: persister,
	}
}

// AssembleBatch assembles config.TestCount tests sequentially. Tests are
// never parallelized within a batch: test N+1's retrieval must observe
// test N's exclusions, which is what guarantees no question id repeats
// across the batch. Per-test failures are reported in the result; sibling
// tests proceed. Only configuration errors fail the whole call.
func (o *Orchestrator) AssembleBatch(ctx context.Context, userID string, config TestConfiguration) (*BatchResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	exclude := make(map[string]struct{})
	if config.ExcludeSeen && o.exposure != nil {
		seen, err := o.exposure.SeenQuestionIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		for id := range seen {
			exclude[id] = struct{}{}
		}
	}

	var configID string
	if o.persister != nil {
		id, err := o.persister.SaveConfig(ctx, userID, config)
		if err != nil {
			return nil, err
		}
		configID = id
	}

	result := &BatchResult{}
	var placedTexts []string
	for i := 0; i < config.TestCount; i++ {
		test, state, err := o.assembleOne(ctx, userID, configID, config, exclude, placedTexts)
		if err != nil {
			result.Failures = append(result.Failures, TestFailure{Index: i, State: state.String(), Err: err})
			continue
		}

		result.Tests = append(result.Tests, *test)
		for _, q := range test.Questions {
			exclude[q.ID] = struct{}{}
			placedTexts = append(placedTexts, q.Text)
		}
	}

	return result, nil
}

// assembleOne drives one test through the state machine. The returned
// state is the one the test failed in when err is non-nil.
func (o *Orchestrator) assembleOne(ctx context.Context, userID, configID string, config TestConfiguration, exclude map[string]struct{}, placedTexts []string) (*AssembledTest, testState, error) {
	state := stateRetrieving

	query := retrieval.Query{
		TopicIDs:   config.TopicIDs(),
		Count:      config.QuestionCount,
		ExcludeIDs: exclude,
		QueryText:  config.QueryText,
	}

	picked, err := o.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, state, err
	}

	if len(picked) < config.QuestionCount {
		state = stateFallback
		picked, err = o.fallback(ctx, config, query, picked, placedTexts)
		if err != nil {
			return nil, state, err
		}
	}

	if len(picked) < config.QuestionCount {
		return nil, stateFailed, &question.ErrInsufficientQuestions{
			Available:  len(picked),
			Requested:  config.QuestionCount,
			Suggestion: "reduce question count or test count",
		}
	}

	state = stateAssembled
	test := &AssembledTest{
		ID:        uuid.NewString(),
		Questions: picked[:config.QuestionCount],
		CreatedAt: time.Now().UTC(),
	}

	if o.persister != nil {
		if err := o.persister.SaveAssembledTest(ctx, userID, configID, *test); err != nil {
			return nil, state, err
		}
	}
	if o.exposure != nil {
		if err := o.exposure.RecordSeenBatch(ctx, userID, test.QuestionIDs()); err != nil {
			return nil, state, err
		}
	}

	return test, state, nil
}

// fallback generates the shortfall, admits what survives validation and
// alignment, persists and indexes it, then re-queries so the new material
// flows through the same retrieval ordering as the rest of the corpus.
// The dedup list spans the batch: texts placed in earlier tests plus this
// test's picks, so a generated question cannot echo anything the user has
// already been handed.
func (o *Orchestrator) fallback(ctx context.Context, config TestConfiguration, query retrieval.Query, picked []question.Record, placedTexts []string) ([]question.Record, error) {
	if o.generator == nil {
		return picked, nil
	}

	excludeTexts := make([]string, 0, len(placedTexts)+len(picked))
	excludeTexts = append(excludeTexts, placedTexts...)
	for _, rec := range picked {
		excludeTexts = append(excludeTexts, rec.Text)
	}

	shortfall := config.QuestionCount - len(picked)
	for _, topic := range config.Topics {
		if shortfall <= 0 {
			break
		}

		generated, err := o.generator.Generate(ctx, qgen.GenerateInput{
			Topic:        topic,
			ExcludeTexts: excludeTexts,
			Count:        shortfall,
			Difficulty:   config.Difficulty,
		})

		// Index whatever was admitted even when the backend died midway,
		// so the work is not lost, then surface the failure.
		for i := range generated {
			rec := &generated[i]
			if o.persister != nil {
				if perr := o.persister.SaveQuestion(ctx, *rec); perr != nil {
					return nil, perr
				}
			}
			if ierr := o.retriever.IndexQuestion(ctx, rec); ierr != nil {
				return nil, ierr
			}
			excludeTexts = append(excludeTexts, rec.Text)
			shortfall--
		}
		if err != nil {
			return nil, err
		}
	}

	return o.retriever.Retrieve(ctx, query)
}
