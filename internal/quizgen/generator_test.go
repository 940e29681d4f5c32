package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/balajinix/avani-academy/internal/llm"
)

func validOutput() json.RawMessage {
	return json.RawMessage(`{
		"question": "Which part of the plant makes food?",
		"options": ["Root", "Leaf", "Stem", "Flower"],
		"answer": "Leaf",
		"explanation": "Leaves contain chlorophyll, which captures sunlight to make food."
	}`)
}

func testInput() GenerateInput {
	return GenerateInput{
		Subject: "Science",
		Chapter: "Plants",
		Grade:   4,
	}
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.Text != "Which part of the plant makes food?" {
		t.Errorf("text = %q", q.Text)
	}
	if len(q.Options) != 4 || q.Answer != "Leaf" {
		t.Errorf("options/answer = %v / %q", q.Options, q.Answer)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request did not carry the question schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Subject: Science") {
		t.Errorf("prompt missing subject:\n%s", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "Chapter: Plants") {
		t.Errorf("prompt missing chapter:\n%s", req.Messages[0].Content)
	}
}

func TestGenerate_PriorQuestionsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.PriorQuestions = []string{"What color is the sky?"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "What color is the sky?") {
		t.Error("prompt missing prior question for dedup")
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	// Answer not among the options: structural validator rejects.
	bad := json.RawMessage(`{
		"question": "2+2?",
		"options": ["1", "2", "3", "5"],
		"answer": "4",
		"explanation": "Basic addition."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Validator != "structural" || !verr.Retryable {
		t.Errorf("unexpected validation error: %+v", verr)
	}
}

func TestGenerate_DuplicateRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	// Same text, different case and spacing.
	input.PriorQuestions = []string{"which part of  the plant MAKES food?"}

	_, err := gen.Generate(context.Background(), input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Validator != "dedup" {
		t.Errorf("validator = %q, want dedup", verr.Validator)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestBatch(t *testing.T) {
	second := json.RawMessage(`{
		"question": "What do plants release during photosynthesis?",
		"options": ["Oxygen", "Carbon dioxide", "Nitrogen", "Helium"],
		"answer": "Oxygen",
		"explanation": "Photosynthesis produces oxygen as a byproduct."
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validOutput()},
		llm.MockResponse{Content: second},
	)
	gen := New(mock, DefaultConfig())

	questions, err := Batch(context.Background(), gen, testInput(), 2, 0)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	for _, q := range questions {
		if !q.Valid() {
			t.Errorf("generated question failed bank validation: %+v", q)
		}
		if !strings.HasPrefix(q.ID, "science-") {
			t.Errorf("id = %q, want science- prefix", q.ID)
		}
		if q.Chapter != "Plants" {
			t.Errorf("chapter = %q, want Plants", q.Chapter)
		}
	}

	// The second request must list the first accepted question for dedup.
	if !strings.Contains(mock.Calls[1].Messages[0].Content, "Which part of the plant makes food?") {
		t.Error("second prompt missing first question in dedup context")
	}
}

func TestBatch_RetriesRetryableFailures(t *testing.T) {
	// First response duplicates itself against the bank, second succeeds.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validOutput()},
		llm.MockResponse{Content: json.RawMessage(`{
			"question": "What do roots absorb?",
			"options": ["Water", "Light", "Air", "Sound"],
			"answer": "Water",
			"explanation": "Roots take up water and minerals from the soil."
		}`)},
	)
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.PriorQuestions = []string{"Which part of the plant makes food?"}

	questions, err := Batch(context.Background(), gen, input, 1, 1)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "What do roots absorb?" {
		t.Errorf("questions = %+v, want the retried question", questions)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestStructuralValidator(t *testing.T) {
	good := Question{
		Text:    "2+2?",
		Options: []string{"1", "2", "3", "4"},
		Answer:  "4",
	}

	tests := []struct {
		name   string
		mutate func(q *Question)
		want   string // expected failure message fragment, "" for pass
	}{
		{"valid", func(q *Question) {}, ""},
		{"empty text", func(q *Question) { q.Text = "" }, "empty"},
		{"long text", func(q *Question) { q.Text = strings.Repeat("x", 501) }, "500"},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, "exactly 4"},
		{"duplicate options", func(q *Question) { q.Options = []string{"4", "4", "2", "3"} }, "distinct"},
		{"empty option", func(q *Question) { q.Options = []string{"", "2", "3", "4"} }, "non-empty"},
		{"answer not an option", func(q *Question) { q.Answer = "5" }, "verbatim"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := good
			q.Options = append([]string(nil), good.Options...)
			tt.mutate(&q)

			err := v.Validate(&q, GenerateInput{})
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected failure: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !strings.Contains(err.Message, tt.want) {
				t.Errorf("message = %q, want fragment %q", err.Message, tt.want)
			}
		})
	}
}

func TestNewQuestionID(t *testing.T) {
	id := NewQuestionID("Social Studies")
	if !strings.HasPrefix(id, "social-studies-") {
		t.Errorf("id = %q, want social-studies- prefix", id)
	}
	if id == NewQuestionID("Social Studies") {
		t.Error("expected unique IDs per call")
	}
}
