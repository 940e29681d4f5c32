package quiz

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func makeBank(prefix string, n int) []Question {
	bank := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		bank = append(bank, Question{
			ID:      fmt.Sprintf("%s%d", prefix, i),
			Chapter: "Chapter 1",
			Text:    fmt.Sprintf("Question %s%d?", prefix, i),
			Options: []string{"a", "b", "c", "d"},
			Answer:  "a",
		})
	}
	return bank
}

func TestPartition(t *testing.T) {
	bank := makeBank("q", 5)
	record := AttemptRecord{
		"q1": true,
		"q2": false,
		"q3": false,
		"zz": true, // stale entry, question no longer in the bank
	}

	pool := Partition(bank, record)

	if len(pool.New) != 2 {
		t.Errorf("New = %d, want 2", len(pool.New))
	}
	if len(pool.Missed) != 2 {
		t.Errorf("Missed = %d, want 2", len(pool.Missed))
	}
	if len(pool.Mastered) != 1 {
		t.Errorf("Mastered = %d, want 1", len(pool.Mastered))
	}
}

func TestPartition_SkipsInvalidQuestions(t *testing.T) {
	bank := []Question{
		{ID: "ok", Text: "fine?", Options: []string{"x", "y"}, Answer: "x"},
		{ID: "bad-answer", Text: "broken?", Options: []string{"x", "y"}, Answer: "z"},
		{ID: "", Text: "no id?", Options: []string{"x", "y"}, Answer: "x"},
	}

	pool := Partition(bank, nil)

	if len(pool.New) != 1 || pool.New[0].ID != "ok" {
		t.Fatalf("expected only the valid question, got %+v", pool.New)
	}
}

func TestNext_AllNewAlwaysFresh(t *testing.T) {
	sel := NewSelectorWithRand(testRand(1))
	bank := makeBank("q", 5)

	for i := 0; i < 1000; i++ {
		q, class, ok := sel.Next(bank, AttemptRecord{})
		if !ok {
			t.Fatal("expected a question with a non-empty New set")
		}
		if class != ClassFresh {
			t.Fatalf("class = %s, want %s", class, ClassFresh)
		}
		if q.ID == "" {
			t.Fatal("empty question returned")
		}
	}
}

func TestNext_EmptyBankReturnsNone(t *testing.T) {
	sel := NewSelectorWithRand(testRand(2))

	for i := 0; i < 100; i++ {
		if _, _, ok := sel.Next(nil, AttemptRecord{}); ok {
			t.Fatal("expected no question from an empty bank")
		}
	}
}

func TestNext_ExhaustedRecordStillRollsEachCall(t *testing.T) {
	// All questions mastered: each call independently re-rolls the
	// resurface die, so over many calls we see both resurfaced questions
	// and "complete" results.
	sel := NewSelectorWithRand(testRand(3))
	bank := makeBank("q", 4)
	record := AttemptRecord{"q1": true, "q2": true, "q3": true, "q4": true}

	resurfaced, complete := 0, 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		_, class, ok := sel.Next(bank, record)
		if ok {
			if class != ClassResurfaced {
				t.Fatalf("class = %s, want %s", class, ClassResurfaced)
			}
			resurfaced++
		} else {
			complete++
		}
	}

	assertRate(t, "resurfaced", resurfaced, trials, 0.30, 0.05)
	assertRate(t, "complete", complete, trials, 0.70, 0.05)
}

func TestNext_MissedBias(t *testing.T) {
	// Missed and New both available: the missed set wins ~80% of draws.
	sel := NewSelectorWithRand(testRand(4))
	bank := makeBank("q", 6)
	record := AttemptRecord{"q3": false}

	retry, fresh := 0, 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		q, class, ok := sel.Next(bank, record)
		if !ok {
			t.Fatal("expected a question")
		}
		switch class {
		case ClassRetry:
			if q.ID != "q3" {
				t.Fatalf("retry question = %s, want q3", q.ID)
			}
			retry++
		case ClassFresh:
			fresh++
		default:
			t.Fatalf("unexpected class %s with no mastered questions", class)
		}
	}

	assertRate(t, "retry", retry, trials, 0.80, 0.04)
	assertRate(t, "fresh", fresh, trials, 0.20, 0.04)
}

func TestNext_MissedOverridesResurfaceDie(t *testing.T) {
	// Missed, mastered, and new all present: missed takes precedence at
	// the 0.8 rate; the remaining 20% splits ~30/70 between resurfaced
	// and fresh.
	sel := NewSelectorWithRand(testRand(5))
	bank := makeBank("q", 10)
	record := AttemptRecord{"q1": false, "q2": true, "q3": true}

	counts := map[Classification]int{}
	const trials = 5000
	for i := 0; i < trials; i++ {
		_, class, ok := sel.Next(bank, record)
		if !ok {
			t.Fatal("expected a question")
		}
		counts[class]++
	}

	assertRate(t, "retry", counts[ClassRetry], trials, 0.80, 0.03)
	assertRate(t, "resurfaced", counts[ClassResurfaced], trials, 0.06, 0.02)
	assertRate(t, "fresh", counts[ClassFresh], trials, 0.14, 0.02)
}

func TestNext_ResurfaceRate(t *testing.T) {
	// No missed questions: mastered resurfaces on a 3-in-10 die, new
	// otherwise.
	sel := NewSelectorWithRand(testRand(6))
	bank := makeBank("q", 6)
	record := AttemptRecord{"q1": true, "q2": true}

	resurfaced, fresh := 0, 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		_, class, ok := sel.Next(bank, record)
		if !ok {
			t.Fatal("expected a question")
		}
		if class == ClassResurfaced {
			resurfaced++
		} else {
			fresh++
		}
	}

	assertRate(t, "resurfaced", resurfaced, trials, 0.30, 0.05)
	assertRate(t, "fresh", fresh, trials, 0.70, 0.05)
}

// assertRate checks that count/trials is within tolerance of want.
func assertRate(t *testing.T, label string, count, trials int, want, tolerance float64) {
	t.Helper()
	got := float64(count) / float64(trials)
	if got < want-tolerance || got > want+tolerance {
		t.Errorf("%s rate = %.3f (%d/%d), want %.2f ± %.2f", label, got, count, trials, want, tolerance)
	}
}
