package usecase

import (
	"context"
	"sort"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DefaultUpcomingLimit caps the upcoming-events list when the caller does
// not supply a limit.
const DefaultUpcomingLimit = 5

// trailingMonths is the fixed window covered by the dashboard group-by maps.
const trailingMonths = 6

// IDashboardUseCase produces the landing-view snapshot: totals, revenue,
// payment counters, upcoming bookings and trailing-window breakdowns.

type IDashboardUseCase interface {
	Summarize(ctx context.Context, now time.Time, upcomingLimit int) (entities.DashboardSnapshot, error)
}

type DashboardUseCase struct {
	repo interfaces.IBookingRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IBookingRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

func (u *DashboardUseCase) Summarize(ctx context.Context, now time.Time, upcomingLimit int) (entities.DashboardSnapshot, error) {
	bookings, err := u.repo.List(ctx)
	if err != nil {
		return entities.DashboardSnapshot{}, err
	}
	return SummarizeBookings(bookings, now, upcomingLimit), nil
}

// SummarizeBookings is the pure dashboard reduction over a caller-held
// snapshot and a reference "now".
//
// Monthly revenue sums non-cancelled bookings dated in now's (year, month);
// total revenue is the same sum with no date restriction. PendingPayments
// counts confirmed bookings whose deposit has not covered the total;
// OverduePayments repeats that count because the booking model carries no
// payment due date. Upcoming events are confirmed bookings dated within
// [now, now+7d] inclusive, ascending, capped. The three group-by maps cover
// the trailing six calendar months ending at now.
func SummarizeBookings(bookings []entities.Booking, now time.Time, upcomingLimit int) entities.DashboardSnapshot {
	if upcomingLimit <= 0 {
		upcomingLimit = DefaultUpcomingLimit
	}
	today := entities.DateOnly(now)
	horizon := today.AddDate(0, 0, 7)

	snap := entities.DashboardSnapshot{
		EventsByStatus: map[entities.BookingStatus]int{},
		EventsByMonth:  map[string]int{},
		RevenueByMonth: map[string]decimal.Decimal{},
		GeneratedAt:    now.UTC(),
	}

	windowKeys := trailingMonthKeys(today)
	upcoming := []entities.Booking{}

	for _, b := range bookings {
		snap.TotalBookings++
		switch b.Status {
		case entities.BookingStatusQuote:
			snap.QuoteBookings++
		case entities.BookingStatusConfirmed:
			snap.ConfirmedBookings++
		case entities.BookingStatusCompleted:
			snap.CompletedBookings++
		case entities.BookingStatusCancelled:
			snap.CancelledBookings++
		}

		d := entities.DateOnly(b.Date)
		if !b.IsCancelled() {
			snap.TotalRevenue = snap.TotalRevenue.Add(b.TotalValue)
			if d.Year() == today.Year() && d.Month() == today.Month() {
				snap.MonthlyRevenue = snap.MonthlyRevenue.Add(b.TotalValue)
			}
		}

		if b.Status == entities.BookingStatusConfirmed && b.DepositValue.LessThan(b.TotalValue) {
			snap.PendingPayments++
		}

		if b.Status == entities.BookingStatusConfirmed && !d.Before(today) && !d.After(horizon) {
			upcoming = append(upcoming, b)
		}

		monthKey := d.Format("2006-01")
		if _, inWindow := windowKeys[monthKey]; inWindow {
			snap.EventsByStatus[b.Status]++
			snap.EventsByMonth[monthKey]++
			if !b.IsCancelled() {
				snap.RevenueByMonth[monthKey] = snap.RevenueByMonth[monthKey].Add(b.TotalValue)
			}
		}
	}

	// No due-date field exists yet; overdue tracks pending until it does.
	snap.OverduePayments = snap.PendingPayments

	sort.SliceStable(upcoming, func(i, j int) bool {
		return entities.DateOnly(upcoming[i].Date).Before(entities.DateOnly(upcoming[j].Date))
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	snap.UpcomingEvents = upcoming

	return snap
}

func trailingMonthKeys(ref time.Time) map[string]struct{} {
	keys := make(map[string]struct{}, trailingMonths)
	month := time.Date(ref.Year(), ref.Month(), 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < trailingMonths; i++ {
		keys[month.Format("2006-01")] = struct{}{}
		month = month.AddDate(0, -1, 0)
	}
	return keys
}
