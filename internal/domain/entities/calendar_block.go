package entities

import "time"

// CalendarBlock is an administrator-declared date on which new bookings are
// discouraged. Blocking is advisory: the registry answers "is this date
// blocked", enforcement belongs to the booking boundary.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Recurrence:
//   - Recurring blocks apply to the same (month, day) in every year; the
//     stored year is irrelevant for matching.
//   - Non-recurring blocks apply only to the exact calendar date.
type CalendarBlock struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason"`
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"created_at"`
}

// Matches reports whether the block applies to the given calendar date.
func (cb CalendarBlock) Matches(date time.Time) bool {
	d := DateOnly(date)
	b := DateOnly(cb.Date)
	if cb.Recurring {
		return b.Month() == d.Month() && b.Day() == d.Day()
	}
	return b.Equal(d)
}

// SamePair reports whether two blocks form the same (date, recurring) pair
// for duplicate detection. Recurring blocks compare by (month, day) only.
func (cb CalendarBlock) SamePair(date time.Time, recurring bool) bool {
	if cb.Recurring != recurring {
		return false
	}
	d := DateOnly(date)
	b := DateOnly(cb.Date)
	if recurring {
		return b.Month() == d.Month() && b.Day() == d.Day()
	}
	return b.Equal(d)
}
