package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a stored multiple-choice quiz question.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Topic the question was generated for"),
		field.String("text").
			NotEmpty().
			Comment("Question prompt shown to the user"),
		field.JSON("options", []string{}).
			Comment("Exactly 4 answer options, one of which is correct"),
		field.String("answer").
			NotEmpty().
			Comment("Correct answer; always equals one of options"),
		field.String("explanation").
			Comment("Why the answer is correct, shown after answering"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the question was saved"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("created_at"),
	}
}
