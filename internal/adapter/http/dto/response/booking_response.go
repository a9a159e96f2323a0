package response

import (
	"time"

	"venuedesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	Status       string          `json:"status"`
	EventType    string          `json:"event_type"`
	GuestCount   int             `json:"guest_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
	DepositValue decimal.Decimal `json:"deposit_value"`
	ClientID     string          `json:"client_id,omitempty"`
	ClientName   string          `json:"client_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		Date:         b.Date.Format(dateLayout),
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		EventType:    b.EventType,
		GuestCount:   b.GuestCount,
		TotalValue:   b.TotalValue,
		DepositValue: b.DepositValue,
		ClientID:     b.Client.ID,
		ClientName:   b.Client.Name,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

// ConflictCheckResponse reports whether a candidate slot collides and with
// which bookings.
type ConflictCheckResponse struct {
	Conflict  bool              `json:"conflict"`
	Conflicts []BookingResponse `json:"conflicts"`
}

func FromConflicts(conflicts []entities.Booking) ConflictCheckResponse {
	return ConflictCheckResponse{
		Conflict:  len(conflicts) > 0,
		Conflicts: FromBookings(conflicts),
	}
}
