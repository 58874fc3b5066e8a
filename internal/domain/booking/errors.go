package booking

import (
	"errors"

	"room-booking/internal/pkg/errs"
)

var (
	ErrMalformedInput   = errs.New("malformed date or time")
	ErrPastDate         = errs.New("date is in the past")
	ErrPastTime         = errs.New("start time has already passed")
	ErrInvalidOrder     = errs.New("end time must be after start time")
	ErrDurationExceeded = errs.New("booking exceeds maximum duration")
	ErrResourceNotFound = errs.New("resource not found")
	ErrSlotConflict     = errs.New("time slot conflicts with an existing booking")
	ErrNotFound         = errs.New("booking not found")
)

// Kind is the stable, presentation-independent name of a rejection.
type Kind string

const (
	KindMalformedInput   Kind = "malformed_input"
	KindPastDate         Kind = "past_date"
	KindPastTime         Kind = "past_time"
	KindInvalidOrder     Kind = "invalid_order"
	KindDurationExceeded Kind = "duration_exceeded"
	KindResourceNotFound Kind = "resource_not_found"
	KindSlotConflict     Kind = "slot_conflict"
	KindNotFound         Kind = "not_found"
	KindInternal         Kind = "internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrMalformedInput, KindMalformedInput},
	{ErrPastDate, KindPastDate},
	{ErrPastTime, KindPastTime},
	{ErrInvalidOrder, KindInvalidOrder},
	{ErrDurationExceeded, KindDurationExceeded},
	{ErrResourceNotFound, KindResourceNotFound},
	{ErrSlotConflict, KindSlotConflict},
	{ErrNotFound, KindNotFound},
}

// KindOf returns KindInternal for errors outside the booking taxonomy and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

func (k Kind) String() string {
	return string(k)
}
