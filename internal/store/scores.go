package store

import (
	"context"
	"fmt"

	"github.com/balajinix/avani-academy/ent"
	"github.com/balajinix/avani-academy/ent/score"
	"github.com/balajinix/avani-academy/internal/bank"
)

// scoreRepo implements ScoreRepo using the ent client.
type scoreRepo struct {
	client *ent.Client
}

func (r *scoreRepo) Score(ctx context.Context, user, subject string) (int, error) {
	s, err := r.client.Score.Query().
		Where(
			score.UserName(user),
			score.Subject(normalizeSubject(subject)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("load score: %w", err)
	}
	return s.Points, nil
}

// IncrementScore runs the read-modify-write inside a transaction so two
// processes sharing the database can never lose a point.
func (r *scoreRepo) IncrementScore(ctx context.Context, user, subject string) (int, error) {
	subj := normalizeSubject(subject)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	total, err := incrementInTx(ctx, tx, user, subj)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return 0, fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit score: %w", err)
	}
	return total, nil
}

func incrementInTx(ctx context.Context, tx *ent.Tx, user, subj string) (int, error) {
	s, err := tx.Score.Query().
		Where(
			score.UserName(user),
			score.Subject(subj),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("query score: %w", err)
		}
		created, err := tx.Score.Create().
			SetUserName(user).
			SetSubject(subj).
			SetPoints(1).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create score: %w", err)
		}
		return created.Points, nil
	}

	updated, err := s.Update().
		AddPoints(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update score: %w", err)
	}
	return updated.Points, nil
}

func (r *scoreRepo) ForUser(ctx context.Context, user string) ([]SubjectScore, error) {
	rows, err := r.client.Score.Query().
		Where(score.UserName(user)).
		Order(ent.Desc(score.FieldPoints)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}

	scores := make([]SubjectScore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, SubjectScore{
			Subject: bank.DisplayName(row.Subject),
			Points:  row.Points,
		})
	}
	return scores, nil
}
