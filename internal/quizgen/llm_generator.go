package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/balajinix/avani-academy/internal/llm"
	"github.com/balajinix/avani-academy/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &Question{
		Text:        raw.Question,
		Options:     raw.Options,
		Answer:      raw.Answer,
		Explanation: raw.Explanation,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// Batch generates count questions, feeding each accepted question back into
// the dedup context so one run never produces duplicates of itself. A
// question that fails a retryable validation is regenerated up to retries
// times before the batch gives up on it.
func Batch(ctx context.Context, g Generator, input GenerateInput, count, retries int) ([]quiz.Question, error) {
	prior := append([]string(nil), input.PriorQuestions...)
	out := make([]quiz.Question, 0, count)

	for i := 0; i < count; i++ {
		q, err := generateWithRetry(ctx, g, GenerateInput{
			Subject:        input.Subject,
			Chapter:        input.Chapter,
			Grade:          input.Grade,
			PriorQuestions: prior,
		}, retries)
		if err != nil {
			return out, fmt.Errorf("question %d of %d: %w", i+1, count, err)
		}

		out = append(out, quiz.Question{
			ID:      NewQuestionID(input.Subject),
			Chapter: input.Chapter,
			Text:    q.Text,
			Options: q.Options,
			Answer:  q.Answer,
		})
		prior = append(prior, q.Text)
	}
	return out, nil
}

func generateWithRetry(ctx context.Context, g Generator, input GenerateInput, retries int) (*Question, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		q, err := g.Generate(ctx, input)
		if err == nil {
			return q, nil
		}
		lastErr = err

		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

// NewQuestionID builds a bank question ID like "science-1f3a9c2e" from the
// subject and a random suffix.
func NewQuestionID(subject string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(subject)), " ", "-")
	return fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
}
