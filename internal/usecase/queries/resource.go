package queries

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/resource"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
)

type ResourceQueries interface {
	List(ctx context.Context) ([]*ResourceView, error)
	GetByID(ctx context.Context, id int) (*ResourceView, error)
	Availability(ctx context.Context, resourceID int, date string) (*AvailabilityView, error)
}

type ResourceReadStore interface {
	FindAll(ctx context.Context) ([]*resource.Resource, error)
	FindByID(ctx context.Context, id int) (*resource.Resource, error)
}

type SlotBookingReader interface {
	FindByResourceAndDate(ctx context.Context, resourceID int, date booking.Date) ([]*booking.Booking, error)
}

type resourceQueriesImpl struct {
	resources ResourceReadStore
	bookings  SlotBookingReader
}

func NewResourceQueries(resources ResourceReadStore, bookings SlotBookingReader) ResourceQueries {
	return &resourceQueriesImpl{
		resources: resources,
		bookings:  bookings,
	}
}

func (q *resourceQueriesImpl) List(ctx context.Context) ([]*ResourceView, error) {
	all, err := q.resources.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ResourceView, len(all))
	for i, r := range all {
		views[i] = toResourceView(r)
	}
	return views, nil
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id int) (*ResourceView, error) {
	r, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResourceView(r), nil
}

// Availability lists the free gaps of the whole day, including any part that is already in the past.
func (q *resourceQueriesImpl) Availability(ctx context.Context, resourceID int, date string) (*AvailabilityView, error) {
	d, err := booking.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := q.find(ctx, resourceID); err != nil {
		return nil, err
	}

	existing, err := q.bookings.FindByResourceAndDate(ctx, resourceID, d)
	if err != nil {
		return nil, err
	}

	free := booking.FreeWindows(d, booking.Windows(existing))
	view := &AvailabilityView{
		ResourceID: resourceID,
		Date:       d.String(),
		Free:       make([]FreeWindowView, len(free)),
	}
	for i, w := range free {
		view.Free[i] = FreeWindowView{
			StartTime: w.Start().String(),
			EndTime:   w.End().String(),
		}
	}
	return view, nil
}

func (q *resourceQueriesImpl) find(ctx context.Context, id int) (*resource.Resource, error) {
	r, err := q.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(booking.ErrResourceNotFound, "resource %d", id)
		}
		return nil, err
	}
	return r, nil
}

func toResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:       r.ID(),
		Name:     r.Name(),
		Capacity: r.Capacity(),
	}
}
