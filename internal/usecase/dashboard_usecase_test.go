package usecase

import (
	"context"
	"errors"
	"testing"

	"venuedesk/internal/domain/entities"
	mock_interfaces "venuedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSummarizeBookings(t *testing.T) {
	now := tdate(t, "2024-07-04")

	t.Run("status counts and revenue", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "q", "2024-07-01", "10:00", "12:00", entities.BookingStatusQuote, "1000"),
			mkBooking(t, "cf", "2024-07-10", "10:00", "12:00", entities.BookingStatusConfirmed, "2000"),
			mkBooking(t, "cp", "2024-06-15", "10:00", "12:00", entities.BookingStatusCompleted, "1500"),
			mkBooking(t, "cx", "2024-07-02", "10:00", "12:00", entities.BookingStatusCancelled, "900"),
		}

		snap := SummarizeBookings(bookings, now, 0)
		if snap.TotalBookings != 4 || snap.QuoteBookings != 1 || snap.ConfirmedBookings != 1 || snap.CompletedBookings != 1 || snap.CancelledBookings != 1 {
			t.Fatalf("unexpected counts: %+v", snap)
		}
		// July: quote 1000 + confirmed 2000; the cancelled 900 is excluded.
		if !snap.MonthlyRevenue.Equal(dec(t, "3000")) {
			t.Fatalf("expected monthly revenue 3000, got %s", snap.MonthlyRevenue)
		}
		if !snap.TotalRevenue.Equal(dec(t, "4500")) {
			t.Fatalf("expected total revenue 4500, got %s", snap.TotalRevenue)
		}
	})

	t.Run("pending and overdue payments stay equal", func(t *testing.T) {
		paid := mkBooking(t, "paid", "2024-07-10", "10:00", "12:00", entities.BookingStatusConfirmed, "2000")
		paid.DepositValue = dec(t, "2000")
		owing := mkBooking(t, "owing", "2024-07-11", "10:00", "12:00", entities.BookingStatusConfirmed, "2000")
		owing.DepositValue = dec(t, "500")

		snap := SummarizeBookings([]entities.Booking{paid, owing}, now, 0)
		if snap.PendingPayments != 1 {
			t.Fatalf("expected 1 pending payment, got %d", snap.PendingPayments)
		}
		if snap.OverduePayments != snap.PendingPayments {
			t.Fatalf("overdue must track pending, got %d vs %d", snap.OverduePayments, snap.PendingPayments)
		}
	})

	t.Run("upcoming events are confirmed, inclusive and sorted", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "horizon", "2024-07-11", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "today", "2024-07-04", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "past", "2024-07-03", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "beyond", "2024-07-12", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "quote", "2024-07-05", "10:00", "12:00", entities.BookingStatusQuote, "100"),
		}

		snap := SummarizeBookings(bookings, now, 0)
		if len(snap.UpcomingEvents) != 2 || snap.UpcomingEvents[0].ID != "today" || snap.UpcomingEvents[1].ID != "horizon" {
			t.Fatalf("expected [today horizon], got %+v", snap.UpcomingEvents)
		}
	})

	t.Run("upcoming events respect the limit", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "d1", "2024-07-05", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "d2", "2024-07-06", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "d3", "2024-07-07", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
		}

		snap := SummarizeBookings(bookings, now, 2)
		if len(snap.UpcomingEvents) != 2 || snap.UpcomingEvents[0].ID != "d1" || snap.UpcomingEvents[1].ID != "d2" {
			t.Fatalf("expected [d1 d2], got %+v", snap.UpcomingEvents)
		}
	})

	t.Run("group-by maps cover the trailing six months", func(t *testing.T) {
		bookings := []entities.Booking{
			mkBooking(t, "in", "2024-02-10", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "out", "2024-01-10", "10:00", "12:00", entities.BookingStatusConfirmed, "100"),
			mkBooking(t, "now", "2024-07-01", "10:00", "12:00", entities.BookingStatusCompleted, "300"),
		}

		snap := SummarizeBookings(bookings, now, 0)
		if snap.EventsByMonth["2024-02"] != 1 || snap.EventsByMonth["2024-07"] != 1 {
			t.Fatalf("unexpected events by month: %+v", snap.EventsByMonth)
		}
		if _, ok := snap.EventsByMonth["2024-01"]; ok {
			t.Fatalf("2024-01 is outside the trailing window: %+v", snap.EventsByMonth)
		}
		if snap.EventsByStatus[entities.BookingStatusConfirmed] != 1 || snap.EventsByStatus[entities.BookingStatusCompleted] != 1 {
			t.Fatalf("unexpected events by status: %+v", snap.EventsByStatus)
		}
		if !snap.RevenueByMonth["2024-07"].Equal(dec(t, "300")) {
			t.Fatalf("unexpected revenue by month: %+v", snap.RevenueByMonth)
		}
	})

	t.Run("empty booking set yields a zeroed snapshot", func(t *testing.T) {
		snap := SummarizeBookings(nil, now, 0)
		if snap.TotalBookings != 0 || len(snap.UpcomingEvents) != 0 {
			t.Fatalf("expected zeroed snapshot, got %+v", snap)
		}
		if snap.EventsByMonth == nil || snap.EventsByStatus == nil || snap.RevenueByMonth == nil {
			t.Fatalf("expected initialized maps")
		}
		if !snap.TotalRevenue.Equal(dec(t, "0")) {
			t.Fatalf("expected zero revenue, got %s", snap.TotalRevenue)
		}
	})
}

func TestDashboardUseCase_Summarize(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Summarize(context.Background(), tdate(t, "2024-07-04"), 0)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Booking{
			mkBooking(t, "cf", "2024-07-10", "10:00", "12:00", entities.BookingStatusConfirmed, "2000"),
		}, nil)

		snap, err := uc.Summarize(context.Background(), tdate(t, "2024-07-04"), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.ConfirmedBookings != 1 || !snap.MonthlyRevenue.Equal(dec(t, "2000")) {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})
}
