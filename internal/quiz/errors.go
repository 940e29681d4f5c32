package quiz

import "errors"

var (
	// ErrNoQuestions signals that a subject has no usable question bank.
	// Recoverable: the caller returns the user to subject selection.
	ErrNoQuestions = errors.New("no questions available for this subject")

	// ErrSubjectComplete signals that the selector has nothing left to
	// serve for this call.
	ErrSubjectComplete = errors.New("subject complete")

	// ErrNoActiveQuestion signals a Submit with no question in play.
	ErrNoActiveQuestion = errors.New("no active question")
)
