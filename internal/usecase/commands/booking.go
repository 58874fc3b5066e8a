package commands

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

const KindCommitted = "committed"

type AttemptBookingParams struct {
	ResourceID int
	UserID     string
	Date       string
	StartTime  string
	EndTime    string
}

type BookingCommands interface {
	AttemptBooking(ctx context.Context, params AttemptBookingParams) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	resources ResourceRepository
	clock     clock.Clock
	recorder  AttemptRecorder
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	resources ResourceRepository,
	clock clock.Clock,
	recorder AttemptRecorder,
) BookingCommands {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &bookingCommandsImpl{
		uow:       uow,
		resources: resources,
		clock:     clock,
		recorder:  recorder,
	}
}

// AttemptBooking either commits exactly one booking or returns a typed rejection
// without touching the store.
func (c *bookingCommandsImpl) AttemptBooking(ctx context.Context, params AttemptBookingParams) (*booking.Booking, error) {
	started := time.Now()

	created, err := c.attempt(ctx, params)

	kind := KindCommitted
	if err != nil {
		kind = booking.KindOf(err).String()
	}
	c.recorder.ObserveAttempt(kind, time.Since(started))

	if err != nil {
		if kind == booking.KindInternal.String() {
			slog.ErrorContext(ctx, "booking attempt failed",
				"resource_id", params.ResourceID,
				"user_id", params.UserID,
				"error", err.Error())
		}
		return nil, err
	}

	slog.InfoContext(ctx, "booking committed",
		"booking_id", created.ID(),
		"resource_id", created.ResourceID(),
		"user_id", created.UserID(),
		"window", created.Window().String())
	return created, nil
}

func (c *bookingCommandsImpl) attempt(ctx context.Context, params AttemptBookingParams) (*booking.Booking, error) {
	if err := c.ensureResource(ctx, params.ResourceID); err != nil {
		return nil, err
	}

	window, err := booking.Validate(params.Date, params.StartTime, params.EndTime, c.clock.Now())
	if err != nil {
		return nil, err
	}

	key := booking.SlotKey{ResourceID: params.ResourceID, Date: window.Date()}

	var created *booking.Booking
	err = c.uow.WithinSlot(ctx, key, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Bookings().FindByResourceAndDate(ctx, key.ResourceID, key.Date)
		if err != nil {
			return err
		}

		if booking.HasConflict(window, booking.Windows(existing)) {
			return errs.Wrapf(booking.ErrSlotConflict, "resource %d %s", key.ResourceID, window)
		}

		created, err = tx.Bookings().Append(ctx, key.ResourceID, params.UserID, window)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (c *bookingCommandsImpl) ensureResource(ctx context.Context, id int) error {
	_, err := c.resources.FindByID(ctx, id)
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrapf(booking.ErrResourceNotFound, "resource %d", id)
	}
	return err
}
