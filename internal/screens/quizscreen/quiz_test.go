package quizscreen

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/balajinix/avani-academy/internal/bank"
	"github.com/balajinix/avani-academy/internal/quiz"
	"github.com/balajinix/avani-academy/internal/store"
)

func testBank(t *testing.T) *bank.Store {
	t.Helper()
	banks := bank.New(t.TempDir())
	err := banks.Save("science", []quiz.Question{
		{
			ID:      "q1",
			Chapter: "Plants",
			Text:    "Which part of the plant makes food?",
			Options: []string{"Root", "Leaf", "Stem", "Flower"},
			Answer:  "Leaf",
		},
	})
	if err != nil {
		t.Fatalf("save bank: %v", err)
	}
	return banks
}

// openQuiz builds the screen and pumps the startup messages until the first
// question is on screen.
func openQuiz(t *testing.T, user string) *QuizScreen {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	q := New(st, testBank(t), user, "Science")

	msg := q.Init()()
	ready, ok := msg.(sessionReadyMsg)
	if !ok {
		t.Fatalf("expected sessionReadyMsg, got %T", msg)
	}
	if ready.err != nil {
		t.Fatalf("session open: %v", ready.err)
	}

	_, cmd := q.Update(ready)
	if cmd == nil {
		t.Fatal("expected a next-question command")
	}
	if _, cmd = q.Update(cmd()); cmd != nil {
		// questionReadyMsg produces no follow-up command
		t.Fatal("unexpected command after question ready")
	}
	if q.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", q.phase)
	}
	return q
}

// press sends one key and, if the submission fired, pumps the answer result.
func press(t *testing.T, q *QuizScreen, code rune) {
	t.Helper()
	_, cmd := q.Update(tea.KeyPressMsg{Code: code})
	if cmd == nil {
		return
	}
	msg := cmd()
	if result, ok := msg.(answerResultMsg); ok {
		if result.err != nil {
			t.Fatalf("submit: %v", result.err)
		}
		q.Update(result)
	}
}

func TestFirstQuestionShown(t *testing.T) {
	q := openQuiz(t, "load-user")

	if q.current.ID != "q1" {
		t.Errorf("current = %q, want q1", q.current.ID)
	}
	if q.class != quiz.ClassFresh {
		t.Errorf("class = %q, want fresh", q.class)
	}
	if len(q.choice.Options) != 4 {
		t.Errorf("got %d options, want 4", len(q.choice.Options))
	}
	if q.total != 1 {
		t.Errorf("total = %d, want 1", q.total)
	}
}

func TestCorrectAnswerScores(t *testing.T) {
	q := openQuiz(t, "correct-user")

	press(t, q, '2') // Leaf

	if q.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", q.phase)
	}
	if q.outcome != quiz.OutcomeCorrect {
		t.Errorf("outcome = %q, want correct", q.outcome)
	}
	if !q.choice.Reveal {
		t.Error("correct answer should reveal the option")
	}
	if q.session.Score() != 1 {
		t.Errorf("score = %d, want 1", q.session.Score())
	}
}

func TestWrongAnswerRetriesWithoutRevealing(t *testing.T) {
	q := openQuiz(t, "retry-user")

	press(t, q, '1') // Root, wrong

	if q.outcome != quiz.OutcomeRetry {
		t.Fatalf("outcome = %q, want retry", q.outcome)
	}
	if q.choice.Reveal {
		t.Error("first wrong try must not reveal the answer")
	}

	// The feedback pause elapses; the same question comes back.
	q.Update(feedbackDoneMsg{seq: q.feedbackSeq})
	if q.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question after retry", q.phase)
	}
	if q.choice.Submitted {
		t.Error("choice should be reset for the second try")
	}
	if q.session.Score() != 0 {
		t.Errorf("score = %d, want 0", q.session.Score())
	}
}

func TestSecondWrongAnswerDefers(t *testing.T) {
	q := openQuiz(t, "defer-user")

	press(t, q, '1')
	q.Update(feedbackDoneMsg{seq: q.feedbackSeq})
	press(t, q, '3') // Stem, wrong again

	if q.outcome != quiz.OutcomeFinal {
		t.Fatalf("outcome = %q, want final", q.outcome)
	}
	if !q.choice.Reveal {
		t.Error("final wrong try should reveal the answer")
	}
	if correct, ok := q.session.Record()["q1"]; !ok || correct {
		t.Errorf("record = %v, want q1 recorded as missed", q.session.Record())
	}
}

func TestStaleFeedbackTimerIgnored(t *testing.T) {
	q := openQuiz(t, "stale-user")

	press(t, q, '1')
	// A keypress skips the pause; the old timer must then be a no-op.
	q.Update(tea.KeyPressMsg{Code: ' '})
	if q.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question after skip", q.phase)
	}
	q.Update(feedbackDoneMsg{seq: q.feedbackSeq - 1})
	if q.phase != phaseQuestion {
		t.Errorf("stale timer changed phase to %d", q.phase)
	}
}

func TestMissingBankFailsSafely(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	q := New(st, bank.New(t.TempDir()), "err-user", "History")
	msg := q.Init()()
	ready := msg.(sessionReadyMsg)
	if !errors.Is(ready.err, bank.ErrNotFound) {
		t.Fatalf("err = %v, want bank.ErrNotFound", ready.err)
	}
	q.Update(ready)
	if q.phase != phaseError {
		t.Errorf("phase = %d, want error", q.phase)
	}
}
