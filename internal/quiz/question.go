package quiz

import "slices"

// Question is a single multiple-choice item from a subject's question bank.
// Questions are immutable once loaded; the core never modifies them.
type Question struct {
	// ID is unique within the subject's bank (not globally).
	ID string

	// Chapter is the chapter label shown above the question text.
	Chapter string

	// Text is the question prompt.
	Text string

	// Options is the ordered list of answer choices shown to the user.
	Options []string

	// Answer is the correct choice. It must match one of Options exactly;
	// comparison is by value, never by index.
	Answer string
}

// Valid reports whether the question is well-formed: non-empty id and text,
// at least two options, and an answer that is one of the options. Questions
// failing this check are a bank data defect; they are skipped during
// selection rather than failing the whole session.
func (q Question) Valid() bool {
	if q.ID == "" || q.Text == "" || len(q.Options) < 2 {
		return false
	}
	return slices.Contains(q.Options, q.Answer)
}

// AttemptRecord is the persistent per-user, per-subject progress map:
// question ID to the outcome of the most recent terminal attempt
// (true = answered correctly, false = retries exhausted). A missing key
// means the question was never attempted. Keys referencing questions that
// no longer exist in the bank are tolerated and ignored.
type AttemptRecord map[string]bool

// Clone returns an independent copy of the record.
func (r AttemptRecord) Clone() AttemptRecord {
	out := make(AttemptRecord, len(r))
	for id, correct := range r {
		out[id] = correct
	}
	return out
}

// Classification describes why the selector chose a question, and governs
// whether a correct answer may increment the score.
type Classification string

const (
	// ClassFresh marks a never-attempted question. Scores on success.
	ClassFresh Classification = "fresh"

	// ClassRetry marks a previously-missed question being retried.
	// Scores on success.
	ClassRetry Classification = "retry"

	// ClassResurfaced marks an already-mastered question shown again for
	// retention. Never scores, no matter how often it is re-answered.
	ClassResurfaced Classification = "resurfaced"
)

// Scores reports whether a correct answer under this classification earns
// a point.
func (c Classification) Scores() bool {
	return c == ClassFresh || c == ClassRetry
}
