package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrInvalidGranularity = errors.New("invalid report granularity")

// DefaultTrailingPeriods bounds report output to the most recent periods
// when the caller does not ask for a specific window.
const DefaultTrailingPeriods = 6

// IReportUseCase reduces the booking history into period-grouped statistics.
//
// An empty booking set is not an error: both operations return empty slices.

type IReportUseCase interface {
	Aggregate(ctx context.Context, granularity entities.Granularity, trailing int) ([]entities.ConversionPeriodStats, error)
	RevenueByPeriod(ctx context.Context) ([]entities.PeriodRevenue, error)
}

type ReportUseCase struct {
	repo interfaces.IBookingRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IBookingRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

func (u *ReportUseCase) Aggregate(ctx context.Context, granularity entities.Granularity, trailing int) ([]entities.ConversionPeriodStats, error) {
	bookings, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateBookings(bookings, granularity, trailing)
}

func (u *ReportUseCase) RevenueByPeriod(ctx context.Context) ([]entities.PeriodRevenue, error) {
	bookings, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return RevenueByPeriodOf(bookings), nil
}

// PeriodKey formats the bucket key for a date under the given granularity:
// "YYYY-MM" for months, "YYYY-Tn" for quarters, "YYYY" for years. All three
// sort correctly as plain strings (n is a single digit 1-4).
func PeriodKey(date time.Time, granularity entities.Granularity) (string, error) {
	d := entities.DateOnly(date)
	switch granularity {
	case entities.GranularityMonth:
		return d.Format("2006-01"), nil
	case entities.GranularityQuarter:
		return fmt.Sprintf("%04d-T%d", d.Year(), (int(d.Month())-1)/3+1), nil
	case entities.GranularityYear:
		return fmt.Sprintf("%04d", d.Year()), nil
	default:
		return "", ErrInvalidGranularity
	}
}

// AggregateBookings groups a snapshot into per-period conversion stats,
// sorted ascending by period key and truncated to the trailing most recent
// periods (DefaultTrailingPeriods when trailing <= 0).
//
// Every booking lands in exactly one bucket keyed by its own date,
// regardless of status: QuoteCount counts all bookings observed in the
// period, and TotalValue sums every booking's total, cancelled ones
// included. The conversion-rate formula is defined against that reading.
func AggregateBookings(bookings []entities.Booking, granularity entities.Granularity, trailing int) ([]entities.ConversionPeriodStats, error) {
	if trailing <= 0 {
		trailing = DefaultTrailingPeriods
	}

	byKey := map[string]*entities.ConversionPeriodStats{}
	for _, b := range bookings {
		key, err := PeriodKey(b.Date, granularity)
		if err != nil {
			return nil, err
		}
		st, ok := byKey[key]
		if !ok {
			st = &entities.ConversionPeriodStats{PeriodKey: key}
			byKey[key] = st
		}
		st.QuoteCount++
		switch b.Status {
		case entities.BookingStatusConfirmed:
			st.ConfirmedCount++
		case entities.BookingStatusCompleted:
			st.CompletedCount++
		case entities.BookingStatusCancelled:
			st.CancelledCount++
		}
		st.TotalValue = st.TotalValue.Add(b.TotalValue)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > trailing {
		keys = keys[len(keys)-trailing:]
	}

	out := make([]entities.ConversionPeriodStats, 0, len(keys))
	for _, k := range keys {
		st := *byKey[k]
		if st.QuoteCount > 0 {
			st.ConversionRate = float64(st.ConfirmedCount+st.CompletedCount) / float64(st.QuoteCount) * 100
			st.AverageValue = st.TotalValue.DivRound(decimal.NewFromInt(int64(st.QuoteCount)), 2)
		}
		if done := st.ConfirmedCount + st.CompletedCount; done > 0 {
			st.CompletionRate = float64(st.CompletedCount) / float64(done) * 100
		}
		out = append(out, st)
	}
	return out, nil
}

// RevenueByPeriodOf computes monthly realized vs forecast revenue:
// realized sums completed bookings, forecast sums confirmed ones. Cancelled
// bookings and open quotes contribute to neither, unlike the conversion
// aggregation above; that asymmetry is deliberate and load-bearing.
func RevenueByPeriodOf(bookings []entities.Booking) []entities.PeriodRevenue {
	byKey := map[string]*entities.PeriodRevenue{}
	for _, b := range bookings {
		if b.Status != entities.BookingStatusCompleted && b.Status != entities.BookingStatusConfirmed {
			continue
		}
		key := entities.DateOnly(b.Date).Format("2006-01")
		pr, ok := byKey[key]
		if !ok {
			pr = &entities.PeriodRevenue{PeriodKey: key}
			byKey[key] = pr
		}
		if b.Status == entities.BookingStatusCompleted {
			pr.Realized = pr.Realized.Add(b.TotalValue)
		} else {
			pr.Forecast = pr.Forecast.Add(b.TotalValue)
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]entities.PeriodRevenue, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	return out
}
