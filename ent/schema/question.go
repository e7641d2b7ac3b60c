package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a practice exam question in the corpus, whether imported
// from a question bank or produced by the fallback generator.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Caller-assigned question identifier (UUID for generated questions)"),
		field.String("topic_id").
			NotEmpty().
			Comment("Syllabus topic this question belongs to"),
		field.Text("text").
			NotEmpty().
			Comment("The question prompt shown to the learner"),
		field.String("type").
			Comment("single_choice, free_text, or numeric"),
		field.JSON("options", []string{}).
			Optional().
			Comment("Answer options for single_choice questions"),
		field.JSON("answers", []string{}).
			Comment("Accepted correct answers"),
		field.String("syllabus_ref").
			Comment("Official syllabus reference, e.g. MATH.7.2.3"),
		field.String("difficulty").
			Default("").
			Comment("easy, medium, or hard; empty when untagged"),
		field.JSON("embedding", []float32{}).
			Optional().
			Comment("Cached embedding vector for index warm-up"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("syllabus_ref"),
	}
}
