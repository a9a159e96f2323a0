package request

import "time"

type CalendarBlockRequest struct {
	Date      string `json:"date" binding:"required"`
	Reason    string `json:"reason"`
	Recurring bool   `json:"recurring"`
}

func (r CalendarBlockRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}
