package quizgen

// StructuralValidator checks that required fields are present, within
// length limits, and internally consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "options must contain exactly 4 entries",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Options))
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options must be non-empty",
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options must be distinct",
				Retryable: true,
			}
		}
		seen[opt] = true
		if opt == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer does not match any option verbatim",
			Retryable: true,
		}
	}
	return nil
}
