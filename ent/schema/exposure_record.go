package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExposureRecord marks that a user has been served a question. At most one
// row exists per (user, question) pair; concurrent recordings upsert.
type ExposureRecord struct {
	ent.Schema
}

func (ExposureRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.Time("first_seen").
			Default(time.Now).
			Immutable().
			Comment("When the question was first served to this user"),
	}
}

func (ExposureRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").
			Unique(),
		index.Fields("user_id"),
	}
}
