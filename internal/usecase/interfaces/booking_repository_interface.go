package interfaces

import (
	"context"
	"venuedesk/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// List returns the full snapshot; the engine recomputes every derived view
// from a fresh snapshot rather than consuming deltas, so there is no
// pagination or streaming contract here.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
}
