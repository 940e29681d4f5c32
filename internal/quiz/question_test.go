package quiz

import "testing"

func TestQuestionValid(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{
			name: "well formed",
			q:    Question{ID: "q1", Text: "2+2?", Options: []string{"3", "4"}, Answer: "4"},
			want: true,
		},
		{
			name: "answer not an option",
			q:    Question{ID: "q1", Text: "2+2?", Options: []string{"3", "5"}, Answer: "4"},
			want: false,
		},
		{
			name: "missing id",
			q:    Question{Text: "2+2?", Options: []string{"3", "4"}, Answer: "4"},
			want: false,
		},
		{
			name: "missing text",
			q:    Question{ID: "q1", Options: []string{"3", "4"}, Answer: "4"},
			want: false,
		},
		{
			name: "single option",
			q:    Question{ID: "q1", Text: "2+2?", Options: []string{"4"}, Answer: "4"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassificationScores(t *testing.T) {
	if !ClassFresh.Scores() {
		t.Error("fresh should score")
	}
	if !ClassRetry.Scores() {
		t.Error("retry should score")
	}
	if ClassResurfaced.Scores() {
		t.Error("resurfaced must never score")
	}
}

func TestAttemptRecordClone(t *testing.T) {
	orig := AttemptRecord{"q1": true, "q2": false}
	clone := orig.Clone()

	clone["q1"] = false
	clone["q3"] = true

	if !orig["q1"] {
		t.Error("mutating the clone changed the original")
	}
	if _, ok := orig["q3"]; ok {
		t.Error("clone shares storage with the original")
	}
}
