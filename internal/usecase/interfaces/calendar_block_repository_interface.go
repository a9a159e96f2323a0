package interfaces

import (
	"context"
	"venuedesk/internal/domain/entities"
)

// ICalendarBlockRepository abstracts DynamoDB persistence for CalendarBlock.
//
// Blocks are administrator-authored and low-frequency; last-writer-wins is
// acceptable for concurrent writes, a read must observe either the pre- or
// post-state of a concurrent write.

type ICalendarBlockRepository interface {
	Create(ctx context.Context, cb entities.CalendarBlock) (entities.CalendarBlock, error)
	GetByID(ctx context.Context, id string) (entities.CalendarBlock, error)
	List(ctx context.Context) ([]entities.CalendarBlock, error)
	Delete(ctx context.Context, id string) error
}
