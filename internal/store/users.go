package store

import (
	"context"
	"fmt"

	"github.com/balajinix/avani-academy/ent"
	"github.com/balajinix/avani-academy/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Signup(ctx context.Context, name string) error {
	_, err := r.client.User.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: %s", ErrUserExists, name)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := r.client.User.Query().
		Where(user.Name(name)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query user: %w", err)
	}
	return exists, nil
}

func (r *userRepo) List(ctx context.Context) ([]string, error) {
	users, err := r.client.User.Query().
		Order(ent.Asc(user.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	return names, nil
}
