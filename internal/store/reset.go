package store

import (
	"context"
	"fmt"

	"github.com/balajinix/avani-academy/ent/attempt"
	"github.com/balajinix/avani-academy/ent/score"
)

// Reset deletes a user's attempt records and scores. An empty subject wipes
// all subjects for the user. The event log is left intact as history.
func (s *Store) Reset(ctx context.Context, user, subject string) error {
	attemptQ := s.client.Attempt.Delete().
		Where(attempt.UserName(user))
	scoreQ := s.client.Score.Delete().
		Where(score.UserName(user))

	if subject != "" {
		subj := normalizeSubject(subject)
		attemptQ = attemptQ.Where(attempt.Subject(subj))
		scoreQ = scoreQ.Where(score.Subject(subj))
	}

	if _, err := attemptQ.Exec(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	if _, err := scoreQ.Exec(ctx); err != nil {
		return fmt.Errorf("reset scores: %w", err)
	}
	return nil
}
