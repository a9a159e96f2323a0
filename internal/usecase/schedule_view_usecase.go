package usecase

import (
	"context"
	"errors"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"
)

var ErrInvalidWindow = errors.New("invalid view window")

// IScheduleViewUseCase slices the booking set into day/week/month/year
// windows relative to a reference date, for calendar-style views.

type IScheduleViewUseCase interface {
	ViewWindow(ctx context.Context, window entities.WindowType, ref time.Time) ([]entities.Booking, error)
	ByHourOfDay(ctx context.Context, ref time.Time) ([24][]entities.Booking, error)
}

type ScheduleViewUseCase struct {
	repo interfaces.IBookingRepository
}

var _ IScheduleViewUseCase = (*ScheduleViewUseCase)(nil)

func NewScheduleViewUseCase(repo interfaces.IBookingRepository) *ScheduleViewUseCase {
	return &ScheduleViewUseCase{repo: repo}
}

func (u *ScheduleViewUseCase) ViewWindow(ctx context.Context, window entities.WindowType, ref time.Time) ([]entities.Booking, error) {
	bookings, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByWindow(bookings, window, ref)
}

// ByHourOfDay returns the reference day's bookings in 24 start-hour buckets.
func (u *ScheduleViewUseCase) ByHourOfDay(ctx context.Context, ref time.Time) ([24][]entities.Booking, error) {
	day, err := u.ViewWindow(ctx, entities.WindowDay, ref)
	if err != nil {
		return [24][]entities.Booking{}, err
	}
	return GroupByHourOfDay(day), nil
}

// FilterByWindow is the pure view filter over a caller-held snapshot.
//
//   - Day: exact calendar-date match.
//   - Week: Sunday-start 7-day window containing ref.
//   - Month: same (year, month) as ref.
//   - Year: pass-through. The year view applies no additional narrowing;
//     callers get the full snapshot back unchanged.
func FilterByWindow(bookings []entities.Booking, window entities.WindowType, ref time.Time) ([]entities.Booking, error) {
	ref = entities.DateOnly(ref)

	switch window {
	case entities.WindowDay:
		out := []entities.Booking{}
		for _, b := range bookings {
			if entities.SameDate(b.Date, ref) {
				out = append(out, b)
			}
		}
		return out, nil
	case entities.WindowWeek:
		start := ref.AddDate(0, 0, -int(ref.Weekday()))
		end := start.AddDate(0, 0, 6)
		out := []entities.Booking{}
		for _, b := range bookings {
			d := entities.DateOnly(b.Date)
			if !d.Before(start) && !d.After(end) {
				out = append(out, b)
			}
		}
		return out, nil
	case entities.WindowMonth:
		out := []entities.Booking{}
		for _, b := range bookings {
			d := entities.DateOnly(b.Date)
			if d.Year() == ref.Year() && d.Month() == ref.Month() {
				out = append(out, b)
			}
		}
		return out, nil
	case entities.WindowYear:
		return bookings, nil
	default:
		return nil, ErrInvalidWindow
	}
}

// GroupByHourOfDay buckets bookings by the hour of their start time
// (00:00 through 23:00), preserving input order inside each bucket.
// Bookings with an unparseable start time are dropped.
func GroupByHourOfDay(bookings []entities.Booking) [24][]entities.Booking {
	var buckets [24][]entities.Booking
	for _, b := range bookings {
		m, err := entities.MinuteOfDay(b.StartTime)
		if err != nil {
			continue
		}
		h := m / 60
		buckets[h] = append(buckets[h], b)
	}
	return buckets
}
