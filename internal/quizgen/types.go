// Package quizgen generates multiple-choice bank questions with an LLM.
package quizgen

import "context"

// GenerateInput holds all context needed to generate one question.
type GenerateInput struct {
	// Subject is the subject the question belongs to, e.g. "Science".
	Subject string

	// Chapter is the chapter or topic within the subject.
	Chapter string

	// Grade is the target grade level (1-8).
	Grade int

	// PriorQuestions contains the text of questions already in the bank
	// for this subject. Used for deduplication in the prompt.
	PriorQuestions []string
}

// Generator produces quiz questions using an LLM provider.
type Generator interface {
	// Generate produces a single validated question for the given input.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// Question is a generated question before it is assigned a bank ID.
type Question struct {
	// Text is the question prompt, plain ASCII, self-contained.
	Text string

	// Options holds exactly 4 answer choices.
	Options []string

	// Answer is the text of the correct option, matching one entry of
	// Options exactly.
	Answer string

	// Explanation is a one-or-two sentence justification of the answer,
	// shown to reviewers but not stored in the bank.
	Explanation string
}
