package response

import (
	"time"

	"venuedesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	TotalBookings     int `json:"total_bookings"`
	QuoteBookings     int `json:"quote_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`

	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`

	PendingPayments int `json:"pending_payments"`
	OverduePayments int `json:"overdue_payments"`

	UpcomingEvents []BookingResponse          `json:"upcoming_events"`
	EventsByStatus map[string]int             `json:"events_by_status"`
	EventsByMonth  map[string]int             `json:"events_by_month"`
	RevenueByMonth map[string]decimal.Decimal `json:"revenue_by_month"`

	GeneratedAt time.Time `json:"generated_at"`
}

func FromDashboard(s entities.DashboardSnapshot) DashboardResponse {
	byStatus := make(map[string]int, len(s.EventsByStatus))
	for status, n := range s.EventsByStatus {
		byStatus[string(status)] = n
	}
	return DashboardResponse{
		TotalBookings:     s.TotalBookings,
		QuoteBookings:     s.QuoteBookings,
		ConfirmedBookings: s.ConfirmedBookings,
		CompletedBookings: s.CompletedBookings,
		CancelledBookings: s.CancelledBookings,
		MonthlyRevenue:    s.MonthlyRevenue,
		TotalRevenue:      s.TotalRevenue,
		PendingPayments:   s.PendingPayments,
		OverduePayments:   s.OverduePayments,
		UpcomingEvents:    FromBookings(s.UpcomingEvents),
		EventsByStatus:    byStatus,
		EventsByMonth:     s.EventsByMonth,
		RevenueByMonth:    s.RevenueByMonth,
		GeneratedAt:       s.GeneratedAt,
	}
}
