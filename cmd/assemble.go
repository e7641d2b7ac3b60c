package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/assembly"
	"github.com/abhisek/examforge/internal/llm"
	"github.com/abhisek/examforge/internal/qgen"
	"github.com/abhisek/examforge/internal/question"
	"github.com/abhisek/examforge/internal/store"
)

// syllabusTopic is the syllabus file format: one entry per topic.
type syllabusTopic struct {
	TopicID     string `json:"topic_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SyllabusRef string `json:"syllabus_ref"`
}

// assembleOutput is what the command prints: the batch result with errors
// flattened to strings.
type assembleOutput struct {
	Tests    []assembledTestOutput `json:"tests"`
	Failures []testFailureOutput   `json:"failures,omitempty"`
}

type assembledTestOutput struct {
	ID        string            `json:"id"`
	Questions []question.Record `json:"questions"`
}

type testFailureOutput struct {
	Index int    `json:"index"`
	State string `json:"state"`
	Error string `json:"error"`
}

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a batch of practice tests",
	Long: "Assemble retrieves questions for the requested topics, falls back to\n" +
		"LLM generation when the corpus runs short, and prints the assembled\n" +
		"tests as JSON. Question exposure is recorded per user.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		syllabusPath, _ := cmd.Flags().GetString("syllabus")
		topicFilter, _ := cmd.Flags().GetString("topics")
		questions, _ := cmd.Flags().GetInt("questions")
		tests, _ := cmd.Flags().GetInt("tests")
		excludeSeen, _ := cmd.Flags().GetBool("exclude-seen")
		queryText, _ := cmd.Flags().GetString("query")
		curriculum, _ := cmd.Flags().GetString("curriculum")
		grade, _ := cmd.Flags().GetString("grade")
		subject, _ := cmd.Flags().GetString("subject")

		topics, err := loadTopics(syllabusPath, topicFilter, curriculum, grade, subject)
		if err != nil {
			return err
		}

		ctx := context.Background()
		eng, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer eng.Close()

		generator := buildGenerator(ctx, eng.store)
		persister := &storePersister{
			questions: eng.store.QuestionRepo(),
			tests:     eng.store.TestRepo(),
		}
		orch := assembly.New(eng.retriever, generator, eng.tracker, persister)

		result, err := orch.AssembleBatch(ctx, userID, assembly.TestConfiguration{
			Curriculum:    curriculum,
			Grade:         grade,
			Subject:       subject,
			Topics:        topics,
			QuestionCount: questions,
			TestCount:     tests,
			ExcludeSeen:   excludeSeen,
			QueryText:     queryText,
		})
		if err != nil {
			return err
		}

		out := assembleOutput{}
		for _, t := range result.Tests {
			out.Tests = append(out.Tests, assembledTestOutput{ID: t.ID, Questions: t.Questions})
		}
		for _, f := range result.Failures {
			out.Failures = append(out.Failures, testFailureOutput{
				Index: f.Index,
				State: f.State,
				Error: f.Err.Error(),
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}

		if !result.Complete() {
			return fmt.Errorf("assembled %d of %d requested tests", len(result.Tests), tests)
		}
		return nil
	},
}

// loadTopics reads the syllabus file and selects the requested topics.
// Without a syllabus file, bare topic ids still work; fallback generation
// then has only the id and scope to ground on.
func loadTopics(syllabusPath, topicFilter, curriculum, grade, subject string) ([]qgen.TopicContext, error) {
	var entries []syllabusTopic
	if syllabusPath != "" {
		raw, err := os.ReadFile(syllabusPath)
		if err != nil {
			return nil, fmt.Errorf("read syllabus file: %w", err)
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parse syllabus file: %w", err)
		}
	}

	byID := make(map[string]syllabusTopic, len(entries))
	for _, e := range entries {
		byID[e.TopicID] = e
	}

	var ids []string
	if topicFilter != "" {
		for _, id := range strings.Split(topicFilter, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	} else {
		for _, e := range entries {
			ids = append(ids, e.TopicID)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no topics selected: pass --topics or a --syllabus file")
	}

	topics := make([]qgen.TopicContext, 0, len(ids))
	for _, id := range ids {
		tc := qgen.TopicContext{
			TopicID:    id,
			Name:       id,
			Curriculum: curriculum,
			Grade:      grade,
			Subject:    subject,
		}
		if e, ok := byID[id]; ok {
			tc.Name = e.Name
			tc.Description = e.Description
			tc.SyllabusRef = e.SyllabusRef
		}
		topics = append(topics, tc)
	}
	return topics, nil
}

// buildGenerator wires the fallback generator from environment credentials.
// Without any configured provider, assembly runs retrieval-only.
func buildGenerator(ctx context.Context, s *store.Store) qgen.Generator {
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		fmt.Fprintf(os.Stderr, "note: fallback generation disabled: %v\n", err)
		return nil
	}
	cfg := qgen.DefaultConfig()
	aligner := qgen.NewAlignmentChecker(provider, cfg.AlignmentThreshold)
	return qgen.NewLLMGenerator(provider, aligner, cfg)
}

// storePersister adapts the store repos to the orchestrator's Persister.
type storePersister struct {
	questions store.QuestionRepo
	tests     store.TestRepo
}

func (p *storePersister) SaveQuestion(ctx context.Context, rec question.Record) error {
	return p.questions.Create(ctx, rec)
}

func (p *storePersister) SaveConfig(ctx context.Context, userID string, config assembly.TestConfiguration) (string, error) {
	id := uuid.NewString()
	err := p.tests.SaveConfig(ctx, store.TestConfigRow{
		ID:            id,
		UserID:        userID,
		Curriculum:    config.Curriculum,
		Grade:         config.Grade,
		Subject:       config.Subject,
		TopicIDs:      config.TopicIDs(),
		QuestionCount: config.QuestionCount,
		TestCount:     config.TestCount,
		ExcludeSeen:   config.ExcludeSeen,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (p *storePersister) SaveAssembledTest(ctx context.Context, userID, configID string, test assembly.AssembledTest) error {
	return p.tests.SaveTest(ctx, store.AssembledTestRow{
		ID:          test.ID,
		UserID:      userID,
		ConfigID:    configID,
		QuestionIDs: test.QuestionIDs(),
		CreatedAt:   test.CreatedAt,
	})
}

func init() {
	assembleCmd.Flags().StringP("user", "u", "", "User the tests are assembled for")
	assembleCmd.Flags().String("syllabus", "", "Path to syllabus JSON file with topic contexts")
	assembleCmd.Flags().StringP("topics", "t", "", "Comma-separated topic ids (default: all topics in the syllabus file)")
	assembleCmd.Flags().IntP("questions", "q", 10, "Questions per test")
	assembleCmd.Flags().IntP("tests", "c", 1, "Number of tests in the batch")
	assembleCmd.Flags().Bool("exclude-seen", false, "Exclude questions the user has already seen")
	assembleCmd.Flags().String("query", "", "Optional text for semantic ranking of retrieved questions")
	assembleCmd.Flags().String("curriculum", "", "Curriculum, e.g. CBSE")
	assembleCmd.Flags().String("grade", "", "Grade level, e.g. 7")
	assembleCmd.Flags().String("subject", "", "Subject, e.g. Mathematics")

	_ = assembleCmd.MarkFlagRequired("user")
}
