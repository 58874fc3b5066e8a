package booking

import (
	"fmt"
	"time"

	"room-booking/internal/pkg/errs"
)

const MaxDuration = 2 * time.Hour

// TimeWindow is a date-scoped, half-open [start, end) interval.
type TimeWindow struct {
	date  Date
	start TimeOfDay
	end   TimeOfDay
}

// Validate parses a candidate window and checks it against now.
// Checks run in a fixed order so callers always get the same reason for the same input:
// format, past date, past time, ordering, duration.
func Validate(date, start, end string, now time.Time) (TimeWindow, error) {
	d, err := ParseDate(date)
	if err != nil {
		return TimeWindow{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeWindow{}, err
	}

	today := DateOf(now)
	if d.Before(today) {
		return TimeWindow{}, errs.Wrapf(ErrPastDate, "%s is before %s", d, today)
	}
	if d.Equal(today) && s <= TimeOfDayOf(now) {
		return TimeWindow{}, errs.Wrapf(ErrPastTime, "%s is not after %s", s, TimeOfDayOf(now))
	}

	if s >= e {
		return TimeWindow{}, errs.Wrapf(ErrInvalidOrder, "%s-%s", s, e)
	}
	if e.Sub(s) > MaxDuration {
		return TimeWindow{}, errs.Wrapf(ErrDurationExceeded, "%s exceeds %s", e.Sub(s), MaxDuration)
	}

	return TimeWindow{date: d, start: s, end: e}, nil
}

// ReconstructTimeWindow rebuilds a window from trusted values without validation.
func ReconstructTimeWindow(date Date, start, end TimeOfDay) TimeWindow {
	return TimeWindow{date: date, start: start, end: end}
}

func (w TimeWindow) Date() Date              { return w.date }
func (w TimeWindow) Start() TimeOfDay        { return w.start }
func (w TimeWindow) End() TimeOfDay          { return w.end }
func (w TimeWindow) Duration() time.Duration { return w.end.Sub(w.start) }

// Overlaps compares intervals only; callers are expected to have matched the date already.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.start < o.end && o.start < w.end
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s [%s,%s)", w.date, w.start, w.end)
}
