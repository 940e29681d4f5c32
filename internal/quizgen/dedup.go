package quizgen

import (
	"fmt"
	"strings"
)

// DedupValidator rejects questions whose text matches an existing bank
// question after normalization (case and whitespace folded).
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	norm := normalizeText(q.Text)
	for _, prior := range input.PriorQuestions {
		if normalizeText(prior) == norm {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "question duplicates an existing bank question",
				Retryable: true,
			}
		}
	}
	return nil
}

// normalizeText lowercases and collapses whitespace for comparison.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// buildDedup formats prior questions for the prompt, respecting the max
// limit. Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
