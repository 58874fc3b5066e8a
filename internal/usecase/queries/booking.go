package queries

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	ListByUser(ctx context.Context, userID string) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindByUserID(ctx context.Context, userID string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(booking.ErrNotFound, "booking %d", id)
		}
		return nil, err
	}
	return view, nil
}

// ListByUser returns the user's bookings in creation order; an unknown user gets an empty list.
func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*BookingView, error) {
	views, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}
