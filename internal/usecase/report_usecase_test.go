package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"venuedesk/internal/domain/entities"
	mock_interfaces "venuedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPeriodKey(t *testing.T) {
	cases := []struct {
		day         string
		granularity entities.Granularity
		want        string
	}{
		{"2024-06-15", entities.GranularityMonth, "2024-06"},
		{"2024-01-01", entities.GranularityQuarter, "2024-T1"},
		{"2024-06-15", entities.GranularityQuarter, "2024-T2"},
		{"2024-09-30", entities.GranularityQuarter, "2024-T3"},
		{"2024-12-31", entities.GranularityQuarter, "2024-T4"},
		{"2024-06-15", entities.GranularityYear, "2024"},
	}
	for _, tc := range cases {
		got, err := PeriodKey(tdate(t, tc.day), tc.granularity)
		if err != nil {
			t.Fatalf("unexpected error for %s/%s: %v", tc.day, tc.granularity, err)
		}
		if got != tc.want {
			t.Fatalf("%s/%s: expected %q, got %q", tc.day, tc.granularity, tc.want, got)
		}
	}

	if _, err := PeriodKey(tdate(t, "2024-06-15"), entities.Granularity("fortnight")); !errors.Is(err, ErrInvalidGranularity) {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
}

func TestAggregateBookings(t *testing.T) {
	t.Run("single month scenario", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "q", "2024-06-01", "10:00", "12:00", entities.BookingStatusQuote, "1000"),
			mkBooking(t, "cf", "2024-06-10", "10:00", "12:00", entities.BookingStatusConfirmed, "2000"),
			mkBooking(t, "cp", "2024-06-15", "10:00", "12:00", entities.BookingStatusCompleted, "1500"),
		}

		got, err := AggregateBookings(bookings, entities.GranularityMonth, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected one period, got %+v", got)
		}
		st := got[0]
		if st.PeriodKey != "2024-06" {
			t.Fatalf("unexpected key %q", st.PeriodKey)
		}
		if st.QuoteCount != 3 || st.ConfirmedCount != 1 || st.CompletedCount != 1 || st.CancelledCount != 0 {
			t.Fatalf("unexpected counts: %+v", st)
		}
		if math.Abs(st.ConversionRate-200.0/3) > 0.01 {
			t.Fatalf("expected conversion ~66.7, got %f", st.ConversionRate)
		}
		if st.CompletionRate != 50 {
			t.Fatalf("expected completion 50, got %f", st.CompletionRate)
		}
		if !st.TotalValue.Equal(dec(t, "4500")) {
			t.Fatalf("expected total 4500, got %s", st.TotalValue)
		}
		if !st.AverageValue.Equal(dec(t, "1500")) {
			t.Fatalf("expected average 1500, got %s", st.AverageValue)
		}
	})

	t.Run("cancelled bookings still count toward totals", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "cx", "2024-06-01", "10:00", "12:00", entities.BookingStatusCancelled, "900"),
		}

		got, err := AggregateBookings(bookings, entities.GranularityMonth, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		st := got[0]
		if st.QuoteCount != 1 || st.CancelledCount != 1 {
			t.Fatalf("unexpected counts: %+v", st)
		}
		if !st.TotalValue.Equal(dec(t, "900")) {
			t.Fatalf("cancelled total must be included, got %s", st.TotalValue)
		}
		if st.ConversionRate != 0 || st.CompletionRate != 0 {
			t.Fatalf("expected zero rates, got %+v", st)
		}
	})

	t.Run("rates stay within bounds", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "a", "2024-06-01", "10:00", "12:00", entities.BookingStatusConfirmed, "1"),
			mkBooking(t, "b", "2024-06-02", "10:00", "12:00", entities.BookingStatusCompleted, "1"),
			mkBooking(t, "c", "2024-06-03", "10:00", "12:00", entities.BookingStatusCompleted, "1"),
		}
		got, err := AggregateBookings(bookings, entities.GranularityMonth, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		st := got[0]
		if st.ConversionRate < 0 || st.ConversionRate > 100 || st.CompletionRate < 0 || st.CompletionRate > 100 {
			t.Fatalf("rates out of bounds: %+v", st)
		}
	})

	t.Run("sorted ascending and truncated to trailing periods", func(t *testing.T) {
		bookings := []entities.Booking{}
		for _, day := range []string{"2024-01-10", "2024-02-10", "2024-03-10", "2024-04-10", "2024-05-10", "2024-06-10", "2024-07-10", "2023-12-10"} {
			bookings = append(bookings, mkBooking(t, day, day, "10:00", "12:00", entities.BookingStatusQuote, "100"))
		}

		got, err := AggregateBookings(bookings, entities.GranularityMonth, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		keys := make([]string, 0, len(got))
		for _, st := range got {
			keys = append(keys, st.PeriodKey)
		}
		want := []string{"2024-02", "2024-03", "2024-04", "2024-05", "2024-06", "2024-07"}
		if !reflect.DeepEqual(keys, want) {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	})

	t.Run("explicit trailing window", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "a", "2024-05-10", "10:00", "12:00", entities.BookingStatusQuote, "100"),
			mkBooking(t, "b", "2024-06-10", "10:00", "12:00", entities.BookingStatusQuote, "100"),
		}
		got, err := AggregateBookings(bookings, entities.GranularityMonth, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].PeriodKey != "2024-06" {
			t.Fatalf("expected only 2024-06, got %+v", got)
		}
	})

	t.Run("empty booking set yields empty result", func(t *testing.T) {
		got, err := AggregateBookings(nil, entities.GranularityMonth, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty, got %+v", got)
		}
	})

	t.Run("idempotent over an unchanged snapshot", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "q", "2024-06-01", "10:00", "12:00", entities.BookingStatusQuote, "1000"),
			mkBooking(t, "cf", "2024-06-10", "10:00", "12:00", entities.BookingStatusConfirmed, "2000"),
		}
		first, err := AggregateBookings(bookings, entities.GranularityQuarter, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := AggregateBookings(bookings, entities.GranularityQuarter, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("aggregation mutated state: %+v vs %+v", first, second)
		}
	})
}

func TestRevenueByPeriodOf(t *testing.T) {
	t.Run("realized vs forecast split", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "done", "2024-06-15", "10:00", "12:00", entities.BookingStatusCompleted, "1500"),
			mkBooking(t, "booked", "2024-06-10", "10:00", "12:00", entities.BookingStatusConfirmed, "2000"),
			mkBooking(t, "quote", "2024-06-01", "10:00", "12:00", entities.BookingStatusQuote, "1000"),
			mkBooking(t, "gone", "2024-06-20", "10:00", "12:00", entities.BookingStatusCancelled, "900"),
			mkBooking(t, "later", "2024-07-05", "10:00", "12:00", entities.BookingStatusConfirmed, "400"),
		}

		got := RevenueByPeriodOf(bookings)
		if len(got) != 2 {
			t.Fatalf("expected two months, got %+v", got)
		}
		june := got[0]
		if june.PeriodKey != "2024-06" || !june.Realized.Equal(dec(t, "1500")) || !june.Forecast.Equal(dec(t, "2000")) {
			t.Fatalf("unexpected june row: %+v", june)
		}
		july := got[1]
		if july.PeriodKey != "2024-07" || !july.Realized.Equal(dec(t, "0")) || !july.Forecast.Equal(dec(t, "400")) {
			t.Fatalf("unexpected july row: %+v", july)
		}
	})

	t.Run("quotes and cancellations alone produce no rows", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "quote", "2024-06-01", "10:00", "12:00", entities.BookingStatusQuote, "1000"),
			mkBooking(t, "gone", "2024-06-20", "10:00", "12:00", entities.BookingStatusCancelled, "900"),
		}
		if got := RevenueByPeriodOf(bookings); len(got) != 0 {
			t.Fatalf("expected no rows, got %+v", got)
		}
	})
}

func TestReportUseCase(t *testing.T) {
	t.Run("aggregate repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Aggregate(context.Background(), entities.GranularityMonth, 0)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("revenue by period success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Booking{
			mkBooking(t, "done", "2024-06-15", "10:00", "12:00", entities.BookingStatusCompleted, "1500"),
		}, nil)

		got, err := uc.RevenueByPeriod(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || !got[0].Realized.Equal(dec(t, "1500")) {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
