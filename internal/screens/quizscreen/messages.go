package quizscreen

import (
	"github.com/balajinix/avani-academy/internal/quiz"
)

// sessionReadyMsg carries the result of loading the bank and opening the
// session.
type sessionReadyMsg struct {
	session *quiz.Session
	total   int
	err     error
}

// questionReadyMsg carries the next selected question, or the terminal
// subject-complete error.
type questionReadyMsg struct {
	q     quiz.Question
	class quiz.Classification
	err   error
}

// answerResultMsg carries the outcome of one submission.
type answerResultMsg struct {
	outcome quiz.Outcome
	err     error
}

// feedbackDoneMsg fires when the feedback pause elapses. The seq guards
// against a stale timer firing after a keypress already advanced.
type feedbackDoneMsg struct {
	seq int
}
