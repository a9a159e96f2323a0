package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle of a booking.
//
// Domain notes:
//   - Quote is the entry state: a request that has not been confirmed yet.
//   - Only non-cancelled bookings participate in conflict checks.
//   - Revenue aggregations treat statuses differently on purpose; see the
//     report use case.

type BookingStatus string

const (
	BookingStatusQuote     BookingStatus = "quote"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusQuote, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ClientRef is a weak reference to a client entity. Ownership of the client
// record stays with the client directory; the scheduling side only carries
// the id and a display name for output.
type ClientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Booking is an event reservation persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalValue/DepositValue are exact decimals end to end; they are stored
//     as strings and never pass through binary floating point.
//
// Date/time representation:
//   - Date is a calendar date anchored per DateOnly (12:00 UTC).
//   - StartTime/EndTime are "HH:MM" wall-clock values; comparisons happen in
//     minutes since midnight via Interval.
type Booking struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	Status       BookingStatus   `json:"status"`
	EventType    string          `json:"event_type"`
	GuestCount   int             `json:"guest_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
	DepositValue decimal.Decimal `json:"deposit_value"`
	Client       ClientRef       `json:"client"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Interval returns the booking's occupied time window.
func (b Booking) Interval() (Interval, error) {
	return NewInterval(b.Date, b.StartTime, b.EndTime)
}

// IsCancelled reports whether the booking no longer occupies its slot.
func (b Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
