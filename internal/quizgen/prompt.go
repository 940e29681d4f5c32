package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a teacher writing multiple-choice quiz questions for school children.

Rules:
- Generate a single question appropriate for the given subject, chapter, and grade.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- The question text should be clear, self-contained, and age-appropriate.
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible, reflecting common misconceptions rather than random values.
- Copy the correct option verbatim into the answer field.
- Keep the explanation to one or two sentences a child can follow.
- Do not repeat any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	if input.Chapter != "" {
		fmt.Fprintf(&b, "Chapter: %s\n", input.Chapter)
	}
	if input.Grade > 0 {
		fmt.Fprintf(&b, "Grade: %d\n", input.Grade)
	}

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}
