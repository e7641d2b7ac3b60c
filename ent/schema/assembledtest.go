package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssembledTest is one finished test from a batch: the question ids in
// serving order, tied back to the configuration that produced it.
type AssembledTest struct {
	ent.Schema
}

func (AssembledTest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("config_id").
			NotEmpty().
			Comment("TestConfig this test was assembled under"),
		field.JSON("question_ids", []string{}).
			Comment("Included question ids in serving order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AssembledTest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("config_id"),
	}
}
