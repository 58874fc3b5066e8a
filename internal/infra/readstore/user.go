package readstore

import (
	"context"

	"room-booking/internal/domain/user"
	"room-booking/internal/usecase/queries"
)

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type UserReadStore struct {
	users UserFinder
}

func NewUserReadStore(users UserFinder) *UserReadStore {
	return &UserReadStore{
		users: users,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id string) (*queries.AuthorizedUserView, error) {
	u, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &queries.AuthorizedUserView{
		ID:       u.ID(),
		Username: u.Username().Value(),
	}, nil
}
