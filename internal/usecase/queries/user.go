package queries

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID string) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id string) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID string) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
