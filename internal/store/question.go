package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examforge/ent"
	entquestion "github.com/abhisek/examforge/ent/question"
	"github.com/abhisek/examforge/internal/question"
)

// questionRepo implements QuestionRepo backed by ent.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Create(ctx context.Context, rec question.Record) error {
	err := r.create(rec).Exec(ctx)
	if err != nil {
		return fmt.Errorf("save question %s: %w", rec.ID, err)
	}
	return nil
}

func (r *questionRepo) CreateBatch(ctx context.Context, recs []question.Record) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.QuestionCreate, len(recs))
	for i, rec := range recs {
		builders[i] = r.create(rec)
	}
	if err := r.client.Question.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("save %d questions: %w", len(recs), err)
	}
	return nil
}

func (r *questionRepo) create(rec question.Record) *ent.QuestionCreate {
	return r.client.Question.Create().
		SetID(rec.ID).
		SetTopicID(rec.TopicID).
		SetText(rec.Text).
		SetType(string(rec.Type)).
		SetOptions(rec.Options).
		SetAnswers(rec.Answers).
		SetSyllabusRef(rec.SyllabusRef).
		SetDifficulty(rec.Difficulty).
		SetEmbedding(rec.Embedding).
		SetCreatedAt(rec.CreatedAt)
}

func (r *questionRepo) ByIDs(ctx context.Context, ids []string) ([]question.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.Question.Query().
		Where(entquestion.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions by id: %w", err)
	}
	return toRecords(rows), nil
}

func (r *questionRepo) All(ctx context.Context) ([]question.Record, error) {
	rows, err := r.client.Question.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all questions: %w", err)
	}
	return toRecords(rows), nil
}

func toRecords(rows []*ent.Question) []question.Record {
	out := make([]question.Record, len(rows))
	for i, row := range rows {
		out[i] = question.Record{
			ID:          row.ID,
			TopicID:     row.TopicID,
			Text:        row.Text,
			Type:        question.Type(row.Type),
			Options:     row.Options,
			Answers:     row.Answers,
			SyllabusRef: row.SyllabusRef,
			Difficulty:  row.Difficulty,
			Embedding:   row.Embedding,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out
}
