package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity selects the period bucket used by conversion reporting.

type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// WindowType selects the schedule view window.

type WindowType string

const (
	WindowDay   WindowType = "day"
	WindowWeek  WindowType = "week"
	WindowMonth WindowType = "month"
	WindowYear  WindowType = "year"
)

// ConversionPeriodStats is the per-period conversion/revenue row. Derived on
// demand from the booking snapshot, never persisted.
//
// Terminology: QuoteCount is "total bookings observed in the period",
// regardless of status. The conversion-rate formula depends on that reading,
// so it is kept even though the name is overloaded.
type ConversionPeriodStats struct {
	PeriodKey      string          `json:"period_key"`
	QuoteCount     int             `json:"quote_count"`
	ConfirmedCount int             `json:"confirmed_count"`
	CompletedCount int             `json:"completed_count"`
	CancelledCount int             `json:"cancelled_count"`
	ConversionRate float64         `json:"conversion_rate"`
	CompletionRate float64         `json:"completion_rate"`
	TotalValue     decimal.Decimal `json:"total_value"`
	AverageValue   decimal.Decimal `json:"average_value"`
}

// PeriodRevenue splits a month's revenue into realized (completed bookings)
// and forecast (confirmed, not yet completed). Cancelled bookings and open
// quotes contribute to neither.
type PeriodRevenue struct {
	PeriodKey string          `json:"period_key"`
	Realized  decimal.Decimal `json:"realized"`
	Forecast  decimal.Decimal `json:"forecast"`
}

// DashboardSnapshot is the cross-cutting landing-view reduction.
//
// OverduePayments mirrors PendingPayments: a real overdue check needs a
// payment due date the booking model does not carry, so the two counts are
// equal until that field exists.
type DashboardSnapshot struct {
	TotalBookings     int `json:"total_bookings"`
	QuoteBookings     int `json:"quote_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`

	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`

	PendingPayments int `json:"pending_payments"`
	OverduePayments int `json:"overdue_payments"`

	UpcomingEvents []Booking `json:"upcoming_events"`

	EventsByStatus map[BookingStatus]int      `json:"events_by_status"`
	EventsByMonth  map[string]int             `json:"events_by_month"`
	RevenueByMonth map[string]decimal.Decimal `json:"revenue_by_month"`

	GeneratedAt time.Time `json:"generated_at"`
}
