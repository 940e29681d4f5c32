package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a learner account. Signup is just picking a name; there is no
// authentication.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Login name, unique across the academy"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the account was created"),
	}
}
