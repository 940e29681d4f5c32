// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// GenEvent is the predicate function for genevent builders.
type GenEvent func(*sql.Selector)

// Score is the predicate function for score builders.
type Score func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
