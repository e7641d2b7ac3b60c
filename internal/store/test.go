package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examforge/ent"
)

// testRepo implements TestRepo backed by ent.
type testRepo struct {
	client *ent.Client
}

func (r *testRepo) SaveConfig(ctx context.Context, row TestConfigRow) error {
	err := r.client.TestConfig.Create().
		SetID(row.ID).
		SetUserID(row.UserID).
		SetCurriculum(row.Curriculum).
		SetGrade(row.Grade).
		SetSubject(row.Subject).
		SetTopicIds(row.TopicIDs).
		SetQuestionCount(row.QuestionCount).
		SetTestCount(row.TestCount).
		SetExcludeSeen(row.ExcludeSeen).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save test config %s: %w", row.ID, err)
	}
	return nil
}

func (r *testRepo) SaveTest(ctx context.Context, row AssembledTestRow) error {
	err := r.client.AssembledTest.Create().
		SetID(row.ID).
		SetUserID(row.UserID).
		SetConfigID(row.ConfigID).
		SetQuestionIds(row.QuestionIDs).
		SetCreatedAt(row.CreatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save assembled test %s: %w", row.ID, err)
	}
	return nil
}
