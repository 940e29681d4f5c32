package quiz

import (
	"context"
	"errors"
	"testing"
)

// fakeProgress implements ProgressStore in memory.
type fakeProgress struct {
	record  AttemptRecord
	saves   int
	saveErr error
}

func (f *fakeProgress) LoadProgress(_ context.Context, _, _ string) (AttemptRecord, error) {
	if f.record == nil {
		return AttemptRecord{}, nil
	}
	return f.record.Clone(), nil
}

func (f *fakeProgress) SaveProgress(_ context.Context, _, _ string, record AttemptRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.record = record.Clone()
	f.saves++
	return nil
}

// fakeScores implements ScoreStore in memory.
type fakeScores struct {
	points int
	incErr error
}

func (f *fakeScores) Score(_ context.Context, _, _ string) (int, error) {
	return f.points, nil
}

func (f *fakeScores) IncrementScore(_ context.Context, _, _ string) (int, error) {
	if f.incErr != nil {
		return 0, f.incErr
	}
	f.points++
	return f.points, nil
}

// fakeEvents records appended answer events.
type fakeEvents struct {
	events []AnswerEvent
}

func (f *fakeEvents) AppendAnswer(_ context.Context, e AnswerEvent) error {
	f.events = append(f.events, e)
	return nil
}

func newTestSession(t *testing.T, bank []Question, progress *fakeProgress, scores *fakeScores, events *fakeEvents) *Session {
	t.Helper()
	deps := Deps{
		Progress: progress,
		Scores:   scores,
		Selector: NewSelectorWithRand(testRand(42)),
	}
	if events != nil {
		deps.Events = events
	}
	s, err := NewSession(context.Background(), deps, "amy", "science", bank)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// activate pins a specific question and classification on the session so
// tests do not depend on random selection.
func activate(s *Session, q Question, class Classification) {
	s.active = &q
	s.class = class
	s.attempts = 0
}

func TestNewSession_EmptyBank(t *testing.T) {
	deps := Deps{Progress: &fakeProgress{}, Scores: &fakeScores{}}

	if _, err := NewSession(context.Background(), deps, "amy", "science", nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestNewSession_AllInvalidBank(t *testing.T) {
	deps := Deps{Progress: &fakeProgress{}, Scores: &fakeScores{}}
	bank := []Question{{ID: "q1", Text: "?", Options: []string{"a", "b"}, Answer: "nope"}}

	if _, err := NewSession(context.Background(), deps, "amy", "science", bank); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestNext_FreshForNewUser(t *testing.T) {
	// Amy has never attempted q1-q5: every selection must be Fresh.
	bank := makeBank("q", 5)
	s := newTestSession(t, bank, &fakeProgress{}, &fakeScores{}, nil)

	q, class, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if class != ClassFresh {
		t.Errorf("class = %s, want %s", class, ClassFresh)
	}
	if s.AttemptCount() != 0 {
		t.Errorf("AttemptCount = %d, want 0", s.AttemptCount())
	}

	// The same question stays active until resolved.
	q2, _, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q2.ID != q.ID {
		t.Errorf("active question changed from %s to %s without resolving", q.ID, q2.ID)
	}
}

func TestSubmit_FreshCorrectFirstTry(t *testing.T) {
	bank := makeBank("q", 3)
	progress := &fakeProgress{}
	scores := &fakeScores{}
	events := &fakeEvents{}
	s := newTestSession(t, bank, progress, scores, events)

	activate(s, bank[0], ClassFresh)

	out, err := s.Submit(context.Background(), "a")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out != OutcomeCorrect {
		t.Errorf("outcome = %s, want %s", out, OutcomeCorrect)
	}
	if scores.points != 1 {
		t.Errorf("score = %d, want 1", scores.points)
	}
	if got := progress.record["q1"]; !got {
		t.Error("record[q1] should be true after a correct answer")
	}
	if s.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.Answered())
	}
	if len(events.events) != 1 || !events.events[0].Correct {
		t.Errorf("expected one correct answer event, got %+v", events.events)
	}
}

func TestSubmit_RetryThenFinal(t *testing.T) {
	// Amy answers q3 wrong twice in a row: record becomes {q3: false},
	// no score change, exactly one persistence.
	bank := makeBank("q", 3)
	progress := &fakeProgress{}
	scores := &fakeScores{}
	s := newTestSession(t, bank, progress, scores, nil)

	activate(s, bank[2], ClassFresh)

	out, err := s.Submit(context.Background(), "b")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out != OutcomeRetry {
		t.Errorf("first wrong outcome = %s, want %s", out, OutcomeRetry)
	}
	if s.AttemptCount() != 1 {
		t.Errorf("AttemptCount = %d, want 1", s.AttemptCount())
	}
	if progress.saves != 0 {
		t.Errorf("saves after first wrong = %d, want 0", progress.saves)
	}

	out, err = s.Submit(context.Background(), "c")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out != OutcomeFinal {
		t.Errorf("second wrong outcome = %s, want %s", out, OutcomeFinal)
	}
	if got, ok := progress.record["q3"]; !ok || got {
		t.Errorf("record[q3] = %v,%v, want false,true", got, ok)
	}
	if scores.points != 0 {
		t.Errorf("score = %d, want 0", scores.points)
	}
	if progress.saves != 1 {
		t.Errorf("saves = %d, want 1", progress.saves)
	}
	if s.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.Answered())
	}
}

func TestSubmit_WrongThenCorrectSecondTry(t *testing.T) {
	bank := makeBank("q", 3)
	progress := &fakeProgress{}
	scores := &fakeScores{}
	s := newTestSession(t, bank, progress, scores, nil)

	activate(s, bank[0], ClassFresh)

	if out, _ := s.Submit(context.Background(), "d"); out != OutcomeRetry {
		t.Fatalf("outcome = %s, want %s", out, OutcomeRetry)
	}
	out, err := s.Submit(context.Background(), "a")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out != OutcomeCorrect {
		t.Errorf("outcome = %s, want %s", out, OutcomeCorrect)
	}
	if scores.points != 1 {
		t.Errorf("score = %d, want 1", scores.points)
	}
	if !progress.record["q1"] {
		t.Error("record[q1] should be true")
	}
}

func TestSubmit_RetryClassificationScores(t *testing.T) {
	// A previously-missed question answered correctly earns a point.
	bank := makeBank("q", 3)
	progress := &fakeProgress{record: AttemptRecord{"q2": false}}
	scores := &fakeScores{}
	s := newTestSession(t, bank, progress, scores, nil)

	activate(s, bank[1], ClassRetry)

	out, err := s.Submit(context.Background(), "a")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out != OutcomeCorrect {
		t.Errorf("outcome = %s, want %s", out, OutcomeCorrect)
	}
	if scores.points != 1 {
		t.Errorf("score = %d, want 1", scores.points)
	}
	if !progress.record["q2"] {
		t.Error("record[q2] should flip to true")
	}
}

func TestSubmit_ResurfacedNeverScores(t *testing.T) {
	bank := makeBank("q", 3)
	progress := &fakeProgress{record: AttemptRecord{"q1": true}}
	scores := &fakeScores{points: 4}
	s := newTestSession(t, bank, progress, scores, nil)

	// Repeated correct answers on a resurfaced question are idempotent
	// for both score and record.
	for i := 0; i < 3; i++ {
		activate(s, bank[0], ClassResurfaced)
		out, err := s.Submit(context.Background(), "a")
		if err != nil {
			t.Fatalf("Submit #%d: %v", i+1, err)
		}
		if out != OutcomeCorrect {
			t.Errorf("outcome = %s, want %s", out, OutcomeCorrect)
		}
	}

	if scores.points != 4 {
		t.Errorf("score = %d, want 4 (unchanged)", scores.points)
	}
	if !progress.record["q1"] {
		t.Error("record[q1] should remain true")
	}
}

func TestSubmit_NoDoubleCountAcrossReselection(t *testing.T) {
	// Exactly one increment per question ultimately answered correctly,
	// even when it is later resurfaced and answered again.
	bank := makeBank("q", 1)
	progress := &fakeProgress{}
	scores := &fakeScores{}
	s := newTestSession(t, bank, progress, scores, nil)

	activate(s, bank[0], ClassFresh)
	if _, err := s.Submit(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}

	activate(s, bank[0], ClassResurfaced)
	if _, err := s.Submit(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}

	if scores.points != 1 {
		t.Errorf("score = %d, want 1", scores.points)
	}
}

func TestSubmit_NoActiveQuestion(t *testing.T) {
	bank := makeBank("q", 2)
	s := newTestSession(t, bank, &fakeProgress{}, &fakeScores{}, nil)

	if _, err := s.Submit(context.Background(), "a"); !errors.Is(err, ErrNoActiveQuestion) {
		t.Errorf("err = %v, want ErrNoActiveQuestion", err)
	}
}

func TestSubmit_SaveFailureKeepsQuestionActive(t *testing.T) {
	bank := makeBank("q", 2)
	progress := &fakeProgress{saveErr: errors.New("disk full")}
	s := newTestSession(t, bank, progress, &fakeScores{}, nil)

	activate(s, bank[0], ClassResurfaced)

	if _, err := s.Submit(context.Background(), "a"); err == nil {
		t.Fatal("expected persistence error")
	}

	// Question still in play: the caller can retry or bail out safely.
	q, _, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q.ID != "q1" {
		t.Errorf("active question = %s, want q1", q.ID)
	}
}

func TestSubmit_AttemptCounterNeverExceedsMax(t *testing.T) {
	bank := makeBank("q", 2)
	s := newTestSession(t, bank, &fakeProgress{}, &fakeScores{}, nil)

	activate(s, bank[0], ClassFresh)
	s.Submit(context.Background(), "x")
	s.Submit(context.Background(), "y")

	// Question resolved; counter is back to zero for the next one.
	if s.AttemptCount() != 0 {
		t.Errorf("AttemptCount after resolution = %d, want 0", s.AttemptCount())
	}
}

func TestSessionComplete(t *testing.T) {
	// Single question already mastered: when the resurface die misses,
	// Next reports completion.
	bank := makeBank("q", 1)
	progress := &fakeProgress{record: AttemptRecord{"q1": true}}
	s := newTestSession(t, bank, progress, &fakeScores{}, nil)

	sawComplete := false
	for i := 0; i < 100; i++ {
		_, _, err := s.Next(context.Background())
		if errors.Is(err, ErrSubjectComplete) {
			sawComplete = true
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		// Resolve the resurfaced question so the next call re-selects.
		if _, err := s.Submit(context.Background(), "a"); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if !sawComplete {
		t.Error("never saw ErrSubjectComplete over 100 rolls with only mastered questions")
	}
}
