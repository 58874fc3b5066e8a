package shared

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"
)

// ErrSlotLockAborted marks a WithinSlot call that gave up waiting for the lock.
var ErrSlotLockAborted = errs.New("slot lock not acquired")

type UnitOfWork interface {
	// WithinSlot runs fn while holding the exclusive lock for key. The lock is taken
	// before fn reads anything and released after fn returns, whatever the outcome.
	WithinSlot(ctx context.Context, key booking.SlotKey, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
}

type BookingRepository interface {
	FindByResourceAndDate(ctx context.Context, resourceID int, date booking.Date) ([]*booking.Booking, error)
	Append(ctx context.Context, resourceID int, userID string, window booking.TimeWindow) (*booking.Booking, error)
}
