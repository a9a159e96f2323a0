package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidInterval = errors.New("invalid interval")

// DateOnly normalizes t to its calendar date anchored at 12:00 UTC.
//
// Every date-only comparison in this repository goes through this anchor.
// Anchoring at midday keeps day arithmetic stable across DST transitions and
// avoids the off-by-one-day behavior that midnight anchors produce near
// timezone boundaries.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// MinuteOfDay parses an "HH:MM" wall-clock value into minutes since
// midnight. Returns ErrInvalidInterval for malformed input.
func MinuteOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: time %q", ErrInvalidInterval, hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: time %q", ErrInvalidInterval, hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: time %q", ErrInvalidInterval, hhmm)
	}
	return h*60 + m, nil
}

// Interval is a booking's occupied window: one calendar date plus a
// half-open [start, end) minute range.
type Interval struct {
	Date        time.Time
	StartMinute int
	EndMinute   int
}

// NewInterval builds an Interval from a date and "HH:MM" boundaries.
// Fails with ErrInvalidInterval when start >= end.
func NewInterval(date time.Time, start, end string) (Interval, error) {
	s, err := MinuteOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := MinuteOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, fmt.Errorf("%w: start %s not before end %s", ErrInvalidInterval, start, end)
	}
	return Interval{Date: DateOnly(date), StartMinute: s, EndMinute: e}, nil
}

// Overlaps reports whether two intervals collide. Intervals on different
// dates never overlap; same-date intervals overlap under half-open
// semantics, so a booking ending exactly when another starts is fine.
func (i Interval) Overlaps(other Interval) bool {
	if !SameDate(i.Date, other.Date) {
		return false
	}
	return i.StartMinute < other.EndMinute && other.StartMinute < i.EndMinute
}
