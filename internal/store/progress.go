package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/balajinix/avani-academy/ent"
	"github.com/balajinix/avani-academy/ent/attempt"
	"github.com/balajinix/avani-academy/internal/quiz"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) LoadProgress(ctx context.Context, user, subject string) (quiz.AttemptRecord, error) {
	a, err := r.client.Attempt.Query().
		Where(
			attempt.UserName(user),
			attempt.Subject(normalizeSubject(subject)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return quiz.AttemptRecord{}, nil
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}

	record := make(quiz.AttemptRecord, len(a.Record))
	for id, correct := range a.Record {
		record[id] = correct
	}
	return record, nil
}

func (r *progressRepo) SaveProgress(ctx context.Context, user, subject string, record quiz.AttemptRecord) error {
	subj := normalizeSubject(subject)

	a, err := r.client.Attempt.Query().
		Where(
			attempt.UserName(user),
			attempt.Subject(subj),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress: %w", err)
		}
		_, err = r.client.Attempt.Create().
			SetUserName(user).
			SetSubject(subj).
			SetRecord(map[string]bool(record.Clone())).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	_, err = a.Update().
		SetRecord(map[string]bool(record.Clone())).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// normalizeSubject lowercases subject names so "Science" and "science" map
// to the same rows, matching the bank file naming convention.
func normalizeSubject(subject string) string {
	return strings.ToLower(subject)
}
