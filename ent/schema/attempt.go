package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt stores one user's attempt record for one subject: the map from
// question ID to whether the final answer was correct. The whole record is
// overwritten on every save, mirroring the in-memory working copy.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_name").
			NotEmpty().
			Comment("Owning user"),
		field.String("subject").
			NotEmpty().
			Comment("Subject the record tracks, stored lowercase"),
		field.JSON("record", map[string]bool{}).
			Comment("question ID -> answered correctly on final attempt"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last time the record was overwritten"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_name", "subject").
			Unique(),
	}
}
