package readrepo

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/resource"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"
)

type BookingSource interface {
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]*booking.Booking, error)
}

type ResourceSource interface {
	FindByID(ctx context.Context, id int) (*resource.Resource, error)
}

// BookingViewRepository joins bookings with the resource catalog.
type BookingViewRepository struct {
	bookings  BookingSource
	resources ResourceSource
}

func NewBookingViewRepository(bookings BookingSource, resources ResourceSource) *BookingViewRepository {
	return &BookingViewRepository{
		bookings:  bookings,
		resources: resources,
	}
}

func (r *BookingViewRepository) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	b, err := r.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toBookingView(ctx, b), nil
}

func (r *BookingViewRepository) FindByUserID(ctx context.Context, userID string) ([]*queries.BookingView, error) {
	rows, err := r.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, b := range rows {
		result[i] = r.toBookingView(ctx, b)
	}
	return result, nil
}

func (r *BookingViewRepository) toBookingView(ctx context.Context, b *booking.Booking) *queries.BookingView {
	w := b.Window()
	view := &queries.BookingView{
		ID:         b.ID(),
		ResourceID: b.ResourceID(),
		UserID:     b.UserID(),
		Date:       w.Date().String(),
		StartTime:  w.Start().String(),
		EndTime:    w.End().String(),
	}

	// The catalog is static, so a miss here means the booking predates a config change.
	if res, err := r.resources.FindByID(ctx, b.ResourceID()); err == nil {
		view.ResourceName = res.Name()
	}
	return view
}
