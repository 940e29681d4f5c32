package worksheet

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/balajinix/avani-academy/internal/quiz"
)

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Chapter: "Plants", Text: "Which part of the plant makes food?", Options: []string{"Root", "Leaf", "Stem", "Flower"}, Answer: "Leaf"},
		{ID: "q2", Chapter: "Plants", Text: "What do roots absorb?", Options: []string{"Water", "Light", "Air", "Sound"}, Answer: "Water"},
		{ID: "q3", Chapter: "Animals", Text: "Which animal is a mammal?", Options: []string{"Shark", "Frog", "Whale", "Eagle"}, Answer: "Whale"},
	}
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	err := New().Render(&sb, "Science", sampleQuestions(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := sb.String()
	for _, want := range []string{
		"Science Worksheet",
		"Which part of the plant makes food?",
		"What do roots absorb?",
		"Which animal is a mammal?",
		`<span class="label">A.</span>Root`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Answer Key") {
		t.Error("answer key rendered without WithKey")
	}
}

func TestRender_WithKey(t *testing.T) {
	var sb strings.Builder
	err := New().Render(&sb, "Science", sampleQuestions(), Options{WithKey: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "Answer Key") {
		t.Fatal("missing answer key section")
	}
	// Leaf is option B of question 1.
	keyStart := strings.Index(out, "Answer Key")
	if !strings.Contains(out[keyStart:], "<li>B</li>") {
		t.Error("key missing answer B for question 1")
	}
}

func TestRender_CountLimitsQuestions(t *testing.T) {
	var sb strings.Builder
	err := New().Render(&sb, "Science", sampleQuestions(), Options{Count: 1})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "Which part of the plant makes food?") {
		t.Error("first question missing")
	}
	if strings.Contains(out, "What do roots absorb?") {
		t.Error("count limit not applied")
	}
}

func TestRender_ShuffleIsDeterministicWithSeed(t *testing.T) {
	render := func() string {
		var sb strings.Builder
		r := NewWithRand(rand.New(rand.NewPCG(7, 7)))
		if err := r.Render(&sb, "Science", sampleQuestions(), Options{Shuffle: true}); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return sb.String()
	}

	if render() != render() {
		t.Error("same seed produced different worksheets")
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	questions := []quiz.Question{
		{ID: "q1", Text: "Is 1 < 2 & 3 > 2?", Options: []string{"<b>Yes</b>", "No"}, Answer: "No"},
	}

	var sb strings.Builder
	if err := New().Render(&sb, "Math", questions, Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := sb.String()
	if strings.Contains(out, "<b>Yes</b>") {
		t.Error("option HTML not escaped")
	}
	if !strings.Contains(out, "&lt;b&gt;Yes&lt;/b&gt;") {
		t.Error("expected escaped option text")
	}
}

func TestRender_EmptyBank(t *testing.T) {
	var sb strings.Builder
	if err := New().Render(&sb, "Science", nil, Options{}); err == nil {
		t.Error("expected an error for an empty bank")
	}
}
