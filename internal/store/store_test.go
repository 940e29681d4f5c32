package store

import (
	"context"
	"errors"
	"testing"

	"github.com/balajinix/avani-academy/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserSignupAndList(t *testing.T) {
	s := openTestStore(t)
	users := s.Users()
	ctx := context.Background()

	for _, name := range []string{"bob", "amy"} {
		if err := users.Signup(ctx, name); err != nil {
			t.Fatalf("signup %s: %v", name, err)
		}
	}

	if err := users.Signup(ctx, "amy"); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate signup err = %v, want ErrUserExists", err)
	}

	exists, err := users.Exists(ctx, "amy")
	if err != nil || !exists {
		t.Errorf("Exists(amy) = %v, %v; want true, nil", exists, err)
	}
	exists, err = users.Exists(ctx, "zed")
	if err != nil || exists {
		t.Errorf("Exists(zed) = %v, %v; want false, nil", exists, err)
	}

	names, err := users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "amy" || names[1] != "bob" {
		t.Errorf("names = %v, want [amy bob]", names)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	// Absent record loads as empty, not as an error.
	record, err := repo.LoadProgress(ctx, "amy", "Science")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(record) != 0 {
		t.Fatalf("expected empty record, got %v", record)
	}

	record = quiz.AttemptRecord{"q1": true, "q2": false}
	if err := repo.SaveProgress(ctx, "amy", "Science", record); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Saves are full overwrites.
	record["q2"] = true
	delete(record, "q1")
	if err := repo.SaveProgress(ctx, "amy", "Science", record); err != nil {
		t.Fatalf("second save: %v", err)
	}

	// Subject names are case-insensitive on the way back.
	loaded, err := repo.LoadProgress(ctx, "amy", "science")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded = %v, want exactly q2", loaded)
	}
	if v, ok := loaded["q2"]; !ok || !v {
		t.Errorf("loaded[q2] = %v,%v, want true,true", v, ok)
	}
}

func TestProgressIsolatedPerUserAndSubject(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	if err := repo.SaveProgress(ctx, "amy", "science", quiz.AttemptRecord{"q1": true}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveProgress(ctx, "amy", "math", quiz.AttemptRecord{"m1": false}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveProgress(ctx, "bob", "science", quiz.AttemptRecord{"q9": false}); err != nil {
		t.Fatal(err)
	}

	record, err := repo.LoadProgress(ctx, "amy", "science")
	if err != nil {
		t.Fatal(err)
	}
	if len(record) != 1 || !record["q1"] {
		t.Errorf("amy/science = %v, want {q1:true}", record)
	}
}

func TestScoreIncrement(t *testing.T) {
	s := openTestStore(t)
	repo := s.Scores()
	ctx := context.Background()

	points, err := repo.Score(ctx, "amy", "science")
	if err != nil || points != 0 {
		t.Fatalf("initial score = %d, %v; want 0, nil", points, err)
	}

	for want := 1; want <= 3; want++ {
		total, err := repo.IncrementScore(ctx, "amy", "science")
		if err != nil {
			t.Fatalf("increment %d: %v", want, err)
		}
		if total != want {
			t.Errorf("total = %d, want %d", total, want)
		}
	}

	points, err = repo.Score(ctx, "amy", "Science")
	if err != nil || points != 3 {
		t.Errorf("score = %d, %v; want 3, nil", points, err)
	}
}

func TestScoresForUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Scores()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.IncrementScore(ctx, "amy", "social studies"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := repo.IncrementScore(ctx, "amy", "math"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.IncrementScore(ctx, "bob", "math"); err != nil {
		t.Fatal(err)
	}

	scores, err := repo.ForUser(ctx, "amy")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("scores = %v, want 2 entries", scores)
	}
	if scores[0].Subject != "Social Studies" || scores[0].Points != 2 {
		t.Errorf("scores[0] = %+v, want Social Studies/2", scores[0])
	}
	if scores[1].Subject != "Math" || scores[1].Points != 1 {
		t.Errorf("scores[1] = %+v, want Math/1", scores[1])
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	submissions := []quiz.AnswerEvent{
		{SessionID: "s1", User: "amy", Subject: "science", QuestionID: "q1", Chosen: "Leaf", Attempt: 1, Correct: true, Class: quiz.ClassFresh},
		{SessionID: "s1", User: "amy", Subject: "science", QuestionID: "q2", Chosen: "Root", Attempt: 1, Correct: false, Class: quiz.ClassFresh},
		{SessionID: "s1", User: "amy", Subject: "science", QuestionID: "q2", Chosen: "Stem", Attempt: 2, Correct: false, Class: quiz.ClassFresh},
		{SessionID: "s2", User: "bob", Subject: "science", QuestionID: "q1", Chosen: "Leaf", Attempt: 1, Correct: true, Class: quiz.ClassFresh},
	}
	for i, e := range submissions {
		if err := events.AppendAnswer(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := events.AnswerStats(ctx, "amy", "Science")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Correct != 1 {
		t.Errorf("stats = %+v, want Total:3 Correct:1", stats)
	}
}

func TestRecentAnswers(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	submissions := []quiz.AnswerEvent{
		{SessionID: "s1", User: "amy", Subject: "science", QuestionID: "q1", Chosen: "Leaf", Attempt: 1, Correct: true, Class: quiz.ClassFresh},
		{SessionID: "s1", User: "amy", Subject: "science", QuestionID: "q2", Chosen: "Root", Attempt: 1, Correct: false, Class: quiz.ClassFresh},
		{SessionID: "s1", User: "amy", Subject: "science", QuestionID: "q2", Chosen: "Stem", Attempt: 2, Correct: false, Class: quiz.ClassFresh},
		{SessionID: "s2", User: "bob", Subject: "science", QuestionID: "q9", Chosen: "Leaf", Attempt: 1, Correct: true, Class: quiz.ClassResurfaced},
	}
	for i, e := range submissions {
		if err := events.AppendAnswer(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := events.RecentAnswers(ctx, "amy", "Science", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Newest first: amy's second attempt on q2, then her first.
	if rows[0].QuestionID != "q2" || rows[0].Attempt != 2 || rows[0].Correct {
		t.Errorf("rows[0] = %+v, want q2 attempt 2 incorrect", rows[0])
	}
	if rows[1].QuestionID != "q2" || rows[1].Attempt != 1 {
		t.Errorf("rows[1] = %+v, want q2 attempt 1", rows[1])
	}
	for _, row := range rows {
		if row.QuestionID == "q9" {
			t.Error("bob's answers leaked into amy's history")
		}
	}
}

func TestGenEventAppend(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	err := events.AppendGen(ctx, GenEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 340,
		LatencyMs:    15,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append gen: %v", err)
	}

	count, err := s.Client().GenEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("gen events = %d, want 1", count)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Progress().SaveProgress(ctx, "amy", "science", quiz.AttemptRecord{"q1": true}); err != nil {
		t.Fatal(err)
	}
	if err := s.Progress().SaveProgress(ctx, "amy", "math", quiz.AttemptRecord{"m1": true}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Scores().IncrementScore(ctx, "amy", "science"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Scores().IncrementScore(ctx, "amy", "math"); err != nil {
		t.Fatal(err)
	}

	// Subject-scoped reset clears only science.
	if err := s.Reset(ctx, "amy", "Science"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	record, err := s.Progress().LoadProgress(ctx, "amy", "science")
	if err != nil || len(record) != 0 {
		t.Errorf("science record = %v, %v; want empty", record, err)
	}
	points, err := s.Scores().Score(ctx, "amy", "math")
	if err != nil || points != 1 {
		t.Errorf("math score = %d, %v; want 1 (untouched)", points, err)
	}

	// Full reset clears the rest.
	if err := s.Reset(ctx, "amy", ""); err != nil {
		t.Fatalf("full reset: %v", err)
	}
	points, err = s.Scores().Score(ctx, "amy", "math")
	if err != nil || points != 0 {
		t.Errorf("math score after full reset = %d, %v; want 0", points, err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
