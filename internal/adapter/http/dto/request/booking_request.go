package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

// BookingRequest is the payload for creating and updating bookings. Dates
// travel as "YYYY-MM-DD", times as "HH:MM".
type BookingRequest struct {
	Date         string          `json:"date" binding:"required"`
	StartTime    string          `json:"start_time" binding:"required"`
	EndTime      string          `json:"end_time" binding:"required"`
	Status       string          `json:"status"`
	EventType    string          `json:"event_type" binding:"required"`
	GuestCount   int             `json:"guest_count" binding:"required"`
	TotalValue   decimal.Decimal `json:"total_value"`
	DepositValue decimal.Decimal `json:"deposit_value"`
	ClientID     string          `json:"client_id"`
	ClientName   string          `json:"client_name"`
}

func (r BookingRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ConflictCheckRequest describes a candidate slot to probe for collisions.
// ExcludeID carries the booking being edited so it does not collide with
// its own stored slot.
type ConflictCheckRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	ExcludeID string `json:"exclude_id"`
}

func (r ConflictCheckRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}

func parseDate(s string) (time.Time, error) {
	day, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}
