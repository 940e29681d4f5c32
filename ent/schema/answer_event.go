package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer submission within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups events from one quiz session"),
		field.String("user_name").
			NotEmpty().
			Comment("Who answered"),
		field.String("subject").
			NotEmpty().
			Comment("Subject being quizzed"),
		field.String("question_id").
			NotEmpty().
			Comment("Bank question ID"),
		field.String("chosen").
			Comment("The option the user picked"),
		field.Int("attempt").
			Min(1).
			Comment("1 for the first try, 2 for the second"),
		field.Bool("correct").
			Comment("Whether the chosen option matched"),
		field.String("classification").
			NotEmpty().
			Comment("fresh, retry, or resurfaced"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_name", "subject"),
		index.Fields("correct"),
	}
}
