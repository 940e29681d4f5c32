// Package bank loads per-subject question banks from JSON files.
//
// A bank lives at <dir>/<subject>.json (subject lowercased) in the format
// the authoring tools produce:
//
//	{"questions": [{"id", "chapter", "question", "options", "answer"}, ...]}
//
// Files are validated against a JSON Schema before decoding; individually
// malformed questions are dropped so one bad entry never takes down a
// whole subject.
package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/balajinix/avani-academy/internal/quiz"
)

// ErrNotFound signals that no bank file exists for the subject.
var ErrNotFound = errors.New("question bank not found")

// Store reads question banks from a directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the bank directory.
func (s *Store) Dir() string { return s.dir }

// DefaultDir resolves the bank directory: AVANI_BANKS env var if set,
// otherwise ./data/subjects.
func DefaultDir() string {
	if d := os.Getenv("AVANI_BANKS"); d != "" {
		return d
	}
	return filepath.Join("data", "subjects")
}

// Subjects lists the subjects that have a bank file, as display names
// ("social studies.json" -> "Social Studies"), sorted alphabetically.
func (s *Store) Subjects() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bank dir: %w", err)
	}

	var subjects []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		subjects = append(subjects, DisplayName(strings.TrimSuffix(e.Name(), ".json")))
	}
	sort.Strings(subjects)
	return subjects, nil
}

// Load reads and validates the bank for a subject. Returns ErrNotFound
// when no file exists. Questions failing quiz validation are skipped.
func (s *Store) Load(subject string) ([]quiz.Question, error) {
	path := s.Path(subject)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, subject)
		}
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}

	if err := validateBank(data); err != nil {
		return nil, fmt.Errorf("bank %s: %w", path, err)
	}

	var file bankFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode bank %s: %w", path, err)
	}

	questions := make([]quiz.Question, 0, len(file.Questions))
	for _, raw := range file.Questions {
		q := quiz.Question{
			ID:      raw.ID,
			Chapter: raw.Chapter,
			Text:    raw.Question,
			Options: raw.Options,
			Answer:  raw.Answer,
		}
		if !q.Valid() {
			fmt.Fprintf(os.Stderr, "warning: skipping invalid question %q in %s\n", raw.ID, path)
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Save writes a bank back to disk (used by the AI generator).
func (s *Store) Save(subject string, questions []quiz.Question) error {
	file := bankFile{Questions: make([]bankQuestion, 0, len(questions))}
	for _, q := range questions {
		file.Questions = append(file.Questions, bankQuestion{
			ID:       q.ID,
			Chapter:  q.Chapter,
			Question: q.Text,
			Options:  q.Options,
			Answer:   q.Answer,
		})
	}

	data, err := json.MarshalIndent(file, "", "    ")
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create bank dir: %w", err)
	}
	if err := os.WriteFile(s.Path(subject), data, 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	return nil
}

// Path returns the bank file path for a subject.
func (s *Store) Path(subject string) string {
	return filepath.Join(s.dir, strings.ToLower(subject)+".json")
}

// DisplayName capitalizes each word of a stored subject name.
func DisplayName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// bankFile is the on-disk bank format.
type bankFile struct {
	Questions []bankQuestion `json:"questions"`
}

type bankQuestion struct {
	ID       string   `json:"id"`
	Chapter  string   `json:"chapter,omitempty"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
