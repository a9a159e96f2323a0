package response

import "venuedesk/internal/domain/entities"

type HourBucketResponse struct {
	Hour     int               `json:"hour"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromHourBuckets keeps all 24 rows so agenda clients can render an empty
// hour without special-casing.
func FromHourBuckets(buckets [24][]entities.Booking) []HourBucketResponse {
	out := make([]HourBucketResponse, 0, len(buckets))
	for hour, bookings := range buckets {
		out = append(out, HourBucketResponse{Hour: hour, Bookings: FromBookings(bookings)})
	}
	return out
}
