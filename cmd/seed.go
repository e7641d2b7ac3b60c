package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/examforge/internal/question"
)

// seedQuestion is the question-bank file format.
type seedQuestion struct {
	ID          string   `json:"id"`
	TopicID     string   `json:"topic_id"`
	Text        string   `json:"text"`
	Type        string   `json:"type"`
	Options     []string `json:"options"`
	Answers     []string `json:"answers"`
	SyllabusRef string   `json:"syllabus_ref"`
	Difficulty  string   `json:"difficulty"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <bank.json>",
	Short: "Import a question bank file into the corpus",
	Long: "Seed reads a JSON array of questions, embeds each one, stores them\n" +
		"durably, and adds them to the vector index. Questions without an id\n" +
		"are assigned one.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read bank file: %w", err)
		}

		var bank []seedQuestion
		if err := json.Unmarshal(raw, &bank); err != nil {
			return fmt.Errorf("parse bank file: %w", err)
		}
		if len(bank) == 0 {
			return fmt.Errorf("bank file %s holds no questions", args[0])
		}

		ctx := context.Background()
		eng, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer eng.Close()

		now := time.Now().UTC()
		recs := make([]question.Record, 0, len(bank))
		for i, sq := range bank {
			rec := question.Record{
				ID:          sq.ID,
				TopicID:     sq.TopicID,
				Text:        sq.Text,
				Type:        question.Type(sq.Type),
				Options:     sq.Options,
				Answers:     sq.Answers,
				SyllabusRef: sq.SyllabusRef,
				Difficulty:  sq.Difficulty,
				CreatedAt:   now,
			}
			if rec.ID == "" {
				rec.ID = uuid.NewString()
			}
			if rec.TopicID == "" || rec.Text == "" {
				return fmt.Errorf("question %d: topic_id and text are required", i)
			}
			if !rec.Type.Valid() {
				return fmt.Errorf("question %d: unknown type %q", i, sq.Type)
			}

			// Computes the embedding in place and adds it to the index.
			if err := eng.retriever.IndexQuestion(ctx, &rec); err != nil {
				return fmt.Errorf("index question %s: %w", rec.ID, err)
			}
			recs = append(recs, rec)
		}

		if err := eng.store.QuestionRepo().CreateBatch(ctx, recs); err != nil {
			return fmt.Errorf("persist questions: %w", err)
		}

		fmt.Printf("Imported %d questions from %s\n", len(recs), args[0])
		return nil
	},
}
