package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Score holds one user's running point total for one subject.
type Score struct {
	ent.Schema
}

func (Score) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_name").
			NotEmpty().
			Comment("Owning user"),
		field.String("subject").
			NotEmpty().
			Comment("Subject the points were earned in, stored lowercase"),
		field.Int("points").
			Default(0).
			NonNegative().
			Comment("Running total; one point per scoring correct answer"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last time points changed"),
	}
}

func (Score) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_name", "subject").
			Unique(),
	}
}
