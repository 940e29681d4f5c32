package store

import (
	"context"
	"fmt"

	"github.com/balajinix/avani-academy/ent"
	"github.com/balajinix/avani-academy/ent/answerevent"
	"github.com/balajinix/avani-academy/internal/quiz"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, e quiz.AnswerEvent) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seq).
		SetSessionID(e.SessionID).
		SetUserName(e.User).
		SetSubject(normalizeSubject(e.Subject)).
		SetQuestionID(e.QuestionID).
		SetChosen(e.Chosen).
		SetAttempt(e.Attempt).
		SetCorrect(e.Correct).
		SetClassification(string(e.Class)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendGen(ctx context.Context, data GenEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.GenEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append gen event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context, user, subject string) (AnswerStats, error) {
	base := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserName(user),
			answerevent.Subject(normalizeSubject(subject)),
		)

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return AnswerStats{}, fmt.Errorf("count answers: %w", err)
	}
	correct, err := base.Clone().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return AnswerStats{}, fmt.Errorf("count correct answers: %w", err)
	}

	return AnswerStats{Total: total, Correct: correct}, nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, user, subject string, limit int) ([]AnswerRow, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserName(user),
			answerevent.Subject(normalizeSubject(subject)),
		).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}

	rows := make([]AnswerRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, AnswerRow{
			QuestionID:     e.QuestionID,
			Chosen:         e.Chosen,
			Attempt:        e.Attempt,
			Correct:        e.Correct,
			Classification: e.Classification,
		})
	}
	return rows, nil
}
