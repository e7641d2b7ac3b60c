package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examforge/ent"
	"github.com/abhisek/examforge/ent/exposurerecord"
)

// exposureRepo implements ExposureRepo backed by ent. Upserts go through
// ON CONFLICT DO NOTHING on the (user_id, question_id) unique index, which
// is what makes concurrent recordings for the same pair safe.
type exposureRepo struct {
	client *ent.Client
}

func (r *exposureRepo) SeenIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	ids, err := r.client.ExposureRecord.Query().
		Where(exposurerecord.UserIDEQ(userID)).
		Select(exposurerecord.FieldQuestionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query seen ids for %s: %w", userID, err)
	}

	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (r *exposureRepo) RecordSeen(ctx context.Context, userID, questionID string) error {
	err := r.client.ExposureRecord.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		OnConflictColumns(exposurerecord.FieldUserID, exposurerecord.FieldQuestionID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record exposure %s/%s: %w", userID, questionID, err)
	}
	return nil
}

func (r *exposureRepo) RecordSeenBatch(ctx context.Context, userID string, questionIDs []string) error {
	if len(questionIDs) == 0 {
		return nil
	}
	builders := make([]*ent.ExposureRecordCreate, len(questionIDs))
	for i, id := range questionIDs {
		builders[i] = r.client.ExposureRecord.Create().
			SetUserID(userID).
			SetQuestionID(id)
	}
	err := r.client.ExposureRecord.CreateBulk(builders...).
		OnConflictColumns(exposurerecord.FieldUserID, exposurerecord.FieldQuestionID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record %d exposures for %s: %w", len(questionIDs), userID, err)
	}
	return nil
}
