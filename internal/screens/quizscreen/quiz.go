// Package quizscreen runs one subject session: it serves questions picked by
// the adaptive selector, gives two tries per question, and shows feedback
// between questions.
package quizscreen

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/balajinix/avani-academy/internal/bank"
	"github.com/balajinix/avani-academy/internal/quiz"
	"github.com/balajinix/avani-academy/internal/router"
	"github.com/balajinix/avani-academy/internal/screen"
	"github.com/balajinix/avani-academy/internal/store"
	"github.com/balajinix/avani-academy/internal/ui/components"
	"github.com/balajinix/avani-academy/internal/ui/layout"
)

const (
	storeTimeout = 5 * time.Second
	feedbackDur  = 3 * time.Second
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseComplete
	phaseError
)

// QuizScreen drives one user+subject session.
type QuizScreen struct {
	st      *store.Store
	banks   *bank.Store
	user    string
	subject string

	session *quiz.Session
	total   int

	current quiz.Question
	class   quiz.Classification
	choice  components.MultiChoice
	outcome quiz.Outcome

	phase       phase
	feedbackSeq int
	err         error
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a quiz screen; the session opens asynchronously in Init.
func New(st *store.Store, banks *bank.Store, user, subject string) *QuizScreen {
	return &QuizScreen{
		st:      st,
		banks:   banks,
		user:    user,
		subject: subject,
		phase:   phaseLoading,
	}
}

func (q *QuizScreen) Title() string {
	return q.subject
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.startSession()
}

func (q *QuizScreen) startSession() tea.Cmd {
	st, banks := q.st, q.banks
	user, subject := q.user, q.subject
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		questions, err := banks.Load(subject)
		if err != nil {
			return sessionReadyMsg{err: err}
		}

		deps := quiz.Deps{
			Progress: st.Progress(),
			Scores:   st.Scores(),
			Events:   st.Events(),
		}
		session, err := quiz.NewSession(ctx, deps, user, subject, questions)
		if err != nil {
			return sessionReadyMsg{err: err}
		}

		total := 0
		for _, question := range questions {
			if question.Valid() {
				total++
			}
		}
		return sessionReadyMsg{session: session, total: total}
	}
}

func (q *QuizScreen) nextQuestion() tea.Cmd {
	session := q.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		question, class, err := session.Next(ctx)
		return questionReadyMsg{q: question, class: class, err: err}
	}
}

func (q *QuizScreen) submit(chosen string) tea.Cmd {
	session := q.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		outcome, err := session.Submit(ctx, chosen)
		return answerResultMsg{outcome: outcome, err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.err != nil {
			q.phase = phaseError
			q.err = msg.err
			return q, nil
		}
		q.session = msg.session
		q.total = msg.total
		return q, q.nextQuestion()

	case questionReadyMsg:
		if errors.Is(msg.err, quiz.ErrSubjectComplete) {
			q.phase = phaseComplete
			return q, nil
		}
		if msg.err != nil {
			q.phase = phaseError
			q.err = msg.err
			return q, nil
		}
		q.current = msg.q
		q.class = msg.class
		q.choice = components.NewMultiChoice(msg.q.Text, msg.q.Options, correctIndex(msg.q))
		q.phase = phaseQuestion
		return q, nil

	case answerResultMsg:
		if msg.err != nil {
			q.phase = phaseError
			q.err = msg.err
			return q, nil
		}
		q.outcome = msg.outcome
		q.phase = phaseFeedback
		q.feedbackSeq++
		if msg.outcome != quiz.OutcomeRetry {
			q.choice.Reveal = true
		}

		seq := q.feedbackSeq
		cmds := []tea.Cmd{
			tea.Tick(feedbackDur, func(time.Time) tea.Msg {
				return feedbackDoneMsg{seq: seq}
			}),
		}
		if msg.outcome == quiz.OutcomeCorrect && q.class.Scores() {
			cmds = append(cmds, func() tea.Msg { return router.RefreshScoreMsg{} })
		}
		return q, tea.Batch(cmds...)

	case feedbackDoneMsg:
		if q.phase != phaseFeedback || msg.seq != q.feedbackSeq {
			return q, nil
		}
		return q, q.advance()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseFeedback:
		// Any key skips the rest of the pause.
		q.feedbackSeq++
		return q, q.advance()

	case phaseQuestion:
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if q.choice.Submitted {
			return q, q.submit(q.choice.Chosen())
		}
		return q, cmd

	case phaseComplete, phaseError:
		if msg.String() == "enter" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return q, nil
}

// advance moves past the feedback phase: back to the same question after a
// retry, on to selection otherwise.
func (q *QuizScreen) advance() tea.Cmd {
	if q.outcome == quiz.OutcomeRetry {
		q.choice.Reset()
		q.phase = phaseQuestion
		return nil
	}
	q.phase = phaseLoading
	return q.nextQuestion()
}

// mastered counts record entries marked true.
func (q *QuizScreen) mastered() int {
	if q.session == nil {
		return 0
	}
	n := 0
	for _, ok := range q.session.Record() {
		if ok {
			n++
		}
	}
	return n
}

func correctIndex(question quiz.Question) int {
	for i, opt := range question.Options {
		if opt == question.Answer {
			return i
		}
	}
	return -1
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}
