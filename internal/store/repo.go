package store

import (
	"context"
	"errors"

	"github.com/balajinix/avani-academy/internal/quiz"
)

// ErrUserExists is returned by Signup when the name is taken.
var ErrUserExists = errors.New("user already exists")

// UserRepo manages learner accounts.
type UserRepo interface {
	// Signup creates a new user. Returns ErrUserExists for duplicate names.
	Signup(ctx context.Context, name string) error

	// Exists reports whether a user with the given name is registered.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns all user names, alphabetically.
	List(ctx context.Context) ([]string, error)
}

// ProgressRepo persists per-user, per-subject attempt records. It satisfies
// quiz.ProgressStore.
type ProgressRepo interface {
	// LoadProgress returns the stored record, or an empty one if none exists.
	LoadProgress(ctx context.Context, user, subject string) (quiz.AttemptRecord, error)

	// SaveProgress overwrites the stored record with the given one.
	SaveProgress(ctx context.Context, user, subject string, record quiz.AttemptRecord) error
}

// SubjectScore pairs a subject with a point total.
type SubjectScore struct {
	Subject string
	Points  int
}

// ScoreRepo persists per-user, per-subject point totals. It satisfies
// quiz.ScoreStore.
type ScoreRepo interface {
	// Score returns the current total, zero if no row exists yet.
	Score(ctx context.Context, user, subject string) (int, error)

	// IncrementScore adds one point inside a transaction and returns the
	// new total, creating the row on first use.
	IncrementScore(ctx context.Context, user, subject string) (int, error)

	// ForUser returns all of a user's subject scores, highest first.
	ForUser(ctx context.Context, user string) ([]SubjectScore, error)
}

// GenEventData captures the data for a single LLM request event.
type GenEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AnswerStats summarizes a user's answer history for a subject.
type AnswerStats struct {
	Total   int
	Correct int
}

// AnswerRow is one submission from the answer history.
type AnswerRow struct {
	QuestionID     string
	Chosen         string
	Attempt        int
	Correct        bool
	Classification string
}

// EventRepo provides append and summary access to domain events.
// It satisfies quiz.EventSink.
type EventRepo interface {
	// AppendAnswer records a single answer submission.
	AppendAnswer(ctx context.Context, e quiz.AnswerEvent) error

	// AppendGen records an LLM API call made by the question generator.
	AppendGen(ctx context.Context, data GenEventData) error

	// AnswerStats counts submissions and correct answers for a user+subject.
	AnswerStats(ctx context.Context, user, subject string) (AnswerStats, error)

	// RecentAnswers returns the user's latest submissions for a subject,
	// newest first.
	RecentAnswers(ctx context.Context, user, subject string, limit int) ([]AnswerRow, error)
}
