package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestConfig is a persisted batch request: what was asked for, by whom.
type TestConfig struct {
	ent.Schema
}

func (TestConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("curriculum"),
		field.String("grade"),
		field.String("subject"),
		field.JSON("topic_ids", []string{}).
			Comment("Syllabus topics the batch draws from"),
		field.Int("question_count").
			Positive(),
		field.Int("test_count").
			Positive(),
		field.Bool("exclude_seen").
			Default(false).
			Comment("Whether the request excluded previously seen questions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TestConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
