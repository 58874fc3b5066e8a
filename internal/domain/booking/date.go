package booking

import (
	"fmt"
	"strings"
	"time"

	"room-booking/internal/pkg/errs"
)

const (
	DateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	timeLayoutFull = "15:04:05"
	StartOfDay     = TimeOfDay(0)
	EndOfDay       = TimeOfDay(24 * time.Hour)
)

// Date is a calendar day with no zone attached. The zero value is not a valid date.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errs.Wrapf(ErrMalformedInput, "date %q: %v", s, err)
	}
	return DateOf(t), nil
}

// DateOf reads the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Equal(o Date) bool  { return d == o }
func (d Date) After(o Date) bool  { return o.Before(d) }

func (d Date) Before(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// TimeOfDay is the offset from midnight. Valid values lie in [StartOfDay, EndOfDay].
type TimeOfDay time.Duration

// ParseTimeOfDay accepts HH:MM and HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := timeLayout
	if strings.Count(s, ":") == 2 {
		layout = timeLayoutFull
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, errs.Wrapf(ErrMalformedInput, "time %q: %v", s, err)
	}
	return TimeOfDayOf(t), nil
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

func (t TimeOfDay) Sub(o TimeOfDay) time.Duration {
	return time.Duration(t) - time.Duration(o)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
