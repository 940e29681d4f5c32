package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MaxAttempts is the number of tries a user gets on a question before it is
// deferred and recorded as missed.
const MaxAttempts = 2

// Outcome is the result of a single answer submission.
type Outcome string

const (
	// OutcomeCorrect means the chosen option matched; the question is
	// resolved and the record (and possibly score) were persisted.
	OutcomeCorrect Outcome = "correct"

	// OutcomeRetry means the answer was wrong but a try remains. Nothing
	// is persisted; the question stays active.
	OutcomeRetry Outcome = "incorrect_retry"

	// OutcomeFinal means the last allowed try was wrong. The question is
	// recorded as missed and resolved.
	OutcomeFinal Outcome = "incorrect_final"
)

// ProgressStore persists per-user, per-subject attempt records.
// Load returns an empty record when none exists; Save is a full overwrite.
type ProgressStore interface {
	LoadProgress(ctx context.Context, user, subject string) (AttemptRecord, error)
	SaveProgress(ctx context.Context, user, subject string, record AttemptRecord) error
}

// ScoreStore persists per-user, per-subject scores. IncrementScore adds one
// point atomically and returns the new total.
type ScoreStore interface {
	Score(ctx context.Context, user, subject string) (int, error)
	IncrementScore(ctx context.Context, user, subject string) (int, error)
}

// AnswerEvent describes one answer submission for the audit log.
type AnswerEvent struct {
	SessionID  string
	User       string
	Subject    string
	QuestionID string
	Chosen     string
	Attempt    int
	Correct    bool
	Class      Classification
}

// EventSink receives answer events. Append failures never fail the answer
// flow; the sink is best-effort.
type EventSink interface {
	AppendAnswer(ctx context.Context, e AnswerEvent) error
}

// Deps bundles the collaborators a Session needs. Events may be nil.
type Deps struct {
	Progress ProgressStore
	Scores   ScoreStore
	Events   EventSink
	Selector *Selector
}

// Session tracks one user's pass through one subject: the active question,
// the per-question attempt counter, and the in-memory copy of the attempt
// record. It is a plain value object — all persistence goes through the
// injected stores, and each user interaction runs one synchronous pass to
// completion.
type Session struct {
	id      string
	user    string
	subject string
	bank    []Question
	record  AttemptRecord
	deps    Deps

	active   *Question
	class    Classification
	attempts int
	answered int
	score    int
}

// NewSession starts a subject session: it loads the user's progress and
// score and validates that the bank has at least one usable question.
// An empty or fully-invalid bank yields ErrNoQuestions.
func NewSession(ctx context.Context, deps Deps, user, subject string, bank []Question) (*Session, error) {
	usable := 0
	for _, q := range bank {
		if q.Valid() {
			usable++
		}
	}
	if usable == 0 {
		return nil, ErrNoQuestions
	}

	if deps.Selector == nil {
		deps.Selector = NewSelector()
	}

	record, err := deps.Progress.LoadProgress(ctx, user, subject)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if record == nil {
		record = make(AttemptRecord)
	}

	score, err := deps.Scores.Score(ctx, user, subject)
	if err != nil {
		return nil, fmt.Errorf("load score: %w", err)
	}

	return &Session{
		id:      uuid.New().String(),
		user:    user,
		subject: subject,
		bank:    bank,
		record:  record,
		deps:    deps,
		score:   score,
	}, nil
}

// Next returns the active question, selecting a new one if none is in play.
// Selecting a new question resets the attempt counter to zero. Returns
// ErrSubjectComplete when the selector has nothing to serve.
func (s *Session) Next(ctx context.Context) (Question, Classification, error) {
	if s.active != nil {
		return *s.active, s.class, nil
	}

	q, class, ok := s.deps.Selector.Next(s.bank, s.record)
	if !ok {
		return Question{}, "", ErrSubjectComplete
	}

	s.active = &q
	s.class = class
	s.attempts = 0
	return q, class, nil
}

// Submit processes the chosen option against the active question.
//
// Correct answers resolve the question: the record entry is set to true and
// persisted, and — unless the question was resurfaced — the subject score
// increments by exactly one. A wrong answer with a try remaining returns
// OutcomeRetry with no persistence. A wrong answer on the final try records
// the question as missed, persists, and resolves.
//
// Persistence failures are returned to the caller and leave the question
// active, so the user lands back on a safe screen instead of losing state.
func (s *Session) Submit(ctx context.Context, chosen string) (Outcome, error) {
	if s.active == nil {
		return "", ErrNoActiveQuestion
	}

	s.attempts++
	correct := chosen == s.active.Answer

	if s.deps.Events != nil {
		_ = s.deps.Events.AppendAnswer(ctx, AnswerEvent{
			SessionID:  s.id,
			User:       s.user,
			Subject:    s.subject,
			QuestionID: s.active.ID,
			Chosen:     chosen,
			Attempt:    s.attempts,
			Correct:    correct,
			Class:      s.class,
		})
	}

	if correct {
		if s.class.Scores() {
			total, err := s.deps.Scores.IncrementScore(ctx, s.user, s.subject)
			if err != nil {
				s.attempts--
				return "", fmt.Errorf("increment score: %w", err)
			}
			s.score = total
		}

		s.record[s.active.ID] = true
		if err := s.deps.Progress.SaveProgress(ctx, s.user, s.subject, s.record); err != nil {
			return "", fmt.Errorf("save progress: %w", err)
		}
		s.resolve()
		return OutcomeCorrect, nil
	}

	if s.attempts < MaxAttempts {
		return OutcomeRetry, nil
	}

	s.record[s.active.ID] = false
	if err := s.deps.Progress.SaveProgress(ctx, s.user, s.subject, s.record); err != nil {
		return "", fmt.Errorf("save progress: %w", err)
	}
	s.resolve()
	return OutcomeFinal, nil
}

// resolve clears the active-question slot and counts the question as served.
func (s *Session) resolve() {
	s.active = nil
	s.attempts = 0
	s.answered++
}

// ID returns the session UUID used to group audit events.
func (s *Session) ID() string { return s.id }

// User returns the session's user name.
func (s *Session) User() string { return s.user }

// Subject returns the session's subject.
func (s *Session) Subject() string { return s.subject }

// AttemptCount returns the number of tries made on the active question.
func (s *Session) AttemptCount() int { return s.attempts }

// Class returns the classification of the active (or just-resolved)
// question; the UI uses it to explain why no points were added.
func (s *Session) Class() Classification { return s.class }

// Answered returns how many questions have resolved in this session.
func (s *Session) Answered() int { return s.answered }

// Score returns the user's current score for the subject.
func (s *Session) Score() int { return s.score }

// Record returns the session's working copy of the attempt record.
func (s *Session) Record() AttemptRecord { return s.record }
