package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/balajinix/avani-academy/internal/quiz"
)

const scienceBank = `{
    "questions": [
        {
            "id": "sci1",
            "chapter": "Plants",
            "question": "Which part of the plant makes food?",
            "options": ["Root", "Leaf", "Stem", "Flower"],
            "answer": "Leaf"
        },
        {
            "id": "sci2",
            "chapter": "Plants",
            "question": "What do plants release during photosynthesis?",
            "options": ["Oxygen", "Carbon dioxide"],
            "answer": "Oxygen"
        }
    ]
}`

func writeBank(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "science.json", scienceBank)
	s := New(dir)

	questions, err := s.Load("Science")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	if questions[0].ID != "sci1" || questions[0].Answer != "Leaf" {
		t.Errorf("unexpected first question: %+v", questions[0])
	}
	if questions[0].Chapter != "Plants" {
		t.Errorf("chapter = %q, want Plants", questions[0].Chapter)
	}
}

func TestLoad_NotFound(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.Load("History"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "math.json", `{"questions": [`)
	s := New(dir)

	if _, err := s.Load("Math"); err == nil {
		t.Error("expected an error for truncated JSON")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// options must be an array of strings with at least two entries.
	writeBank(t, dir, "math.json", `{"questions": [{"id": "m1", "question": "1+1?", "options": ["2"], "answer": "2"}]}`)
	s := New(dir)

	if _, err := s.Load("Math"); err == nil {
		t.Error("expected a schema validation error")
	}
}

func TestLoad_SkipsSemanticallyInvalidQuestions(t *testing.T) {
	dir := t.TempDir()
	// Well-formed JSON, but the second question's answer is not an option.
	writeBank(t, dir, "math.json", `{
        "questions": [
            {"id": "m1", "question": "1+1?", "options": ["1", "2"], "answer": "2"},
            {"id": "m2", "question": "2+2?", "options": ["3", "5"], "answer": "4"}
        ]
    }`)
	s := New(dir)

	questions, err := s.Load("Math")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(questions) != 1 || questions[0].ID != "m1" {
		t.Errorf("expected only m1 to survive, got %+v", questions)
	}
}

func TestSubjects(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "science.json", scienceBank)
	writeBank(t, dir, "social studies.json", `{"questions": []}`)
	writeBank(t, dir, "notes.txt", "not a bank")
	s := New(dir)

	subjects, err := s.Subjects()
	if err != nil {
		t.Fatalf("Subjects: %v", err)
	}
	want := []string{"Science", "Social Studies"}
	if len(subjects) != len(want) {
		t.Fatalf("subjects = %v, want %v", subjects, want)
	}
	for i := range want {
		if subjects[i] != want[i] {
			t.Errorf("subjects[%d] = %q, want %q", i, subjects[i], want[i])
		}
	}
}

func TestSubjects_MissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))

	subjects, err := s.Subjects()
	if err != nil {
		t.Fatalf("Subjects: %v", err)
	}
	if len(subjects) != 0 {
		t.Errorf("subjects = %v, want none", subjects)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "banks")
	s := New(dir)

	if _, err := s.Load("Science"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("pre-save Load err = %v, want ErrNotFound", err)
	}

	in := []quiz.Question{
		{ID: "sci1", Chapter: "Plants", Text: "Which part makes food?", Options: []string{"Root", "Leaf"}, Answer: "Leaf"},
		{ID: "sci2", Chapter: "Plants", Text: "What gas is released?", Options: []string{"Oxygen", "CO2"}, Answer: "Oxygen"},
	}
	if err := s.Save("Science", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load("Science")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(in) {
		t.Fatalf("loaded %d questions, want %d", len(loaded), len(in))
	}
	if loaded[1].ID != "sci2" {
		t.Errorf("loaded[1].ID = %q, want sci2", loaded[1].ID)
	}
}
