package response

import (
	"time"

	"venuedesk/internal/domain/entities"
)

type CalendarBlockResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCalendarBlock(cb entities.CalendarBlock) CalendarBlockResponse {
	return CalendarBlockResponse{
		ID:        cb.ID,
		Date:      cb.Date.Format(dateLayout),
		Reason:    cb.Reason,
		Recurring: cb.Recurring,
		CreatedAt: cb.CreatedAt,
	}
}

func FromCalendarBlocks(blocks []entities.CalendarBlock) []CalendarBlockResponse {
	out := make([]CalendarBlockResponse, 0, len(blocks))
	for _, cb := range blocks {
		out = append(out, FromCalendarBlock(cb))
	}
	return out
}

type BlockedDateResponse struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
}
