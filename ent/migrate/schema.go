// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "chosen", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "classification", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_user_name_subject",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4], AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "record", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_name_subject",
				Unique:  true,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
		},
	}
	// GenEventsColumns holds the columns for the "gen_events" table.
	GenEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// GenEventsTable holds the schema information for the "gen_events" table.
	GenEventsTable = &schema.Table{
		Name:       "gen_events",
		Columns:    GenEventsColumns,
		PrimaryKey: []*schema.Column{GenEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "genevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GenEventsColumns[1]},
			},
			{
				Name:    "genevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenEventsColumns[2]},
			},
			{
				Name:    "genevent_provider",
				Unique:  false,
				Columns: []*schema.Column{GenEventsColumns[3]},
			},
			{
				Name:    "genevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{GenEventsColumns[5]},
			},
			{
				Name:    "genevent_success",
				Unique:  false,
				Columns: []*schema.Column{GenEventsColumns[9]},
			},
		},
	}
	// ScoresColumns holds the columns for the "scores" table.
	ScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ScoresTable holds the schema information for the "scores" table.
	ScoresTable = &schema.Table{
		Name:       "scores",
		Columns:    ScoresColumns,
		PrimaryKey: []*schema.Column{ScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "score_user_name_subject",
				Unique:  true,
				Columns: []*schema.Column{ScoresColumns[1], ScoresColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		AttemptsTable,
		GenEventsTable,
		ScoresTable,
		UsersTable,
	}
)

func init() {
}
