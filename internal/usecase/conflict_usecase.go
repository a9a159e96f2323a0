package usecase

import (
	"context"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"
)

// IConflictUseCase answers whether a proposed booking window is free.
//
// An empty result is the "available" signal; conflict detection never fails
// on a well-formed candidate.

type IConflictUseCase interface {
	FindConflicts(ctx context.Context, candidate entities.Interval, excludeID string) ([]entities.Booking, error)
}

type ConflictUseCase struct {
	repo interfaces.IBookingRepository
}

var _ IConflictUseCase = (*ConflictUseCase)(nil)

func NewConflictUseCase(repo interfaces.IBookingRepository) *ConflictUseCase {
	return &ConflictUseCase{repo: repo}
}

// FindConflicts loads the current booking snapshot and returns every
// non-cancelled booking whose window collides with the candidate.
func (u *ConflictUseCase) FindConflicts(ctx context.Context, candidate entities.Interval, excludeID string) ([]entities.Booking, error) {
	bookings, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FindConflictsIn(candidate, excludeID, bookings), nil
}

// FindConflictsIn is the pure conflict detector over a caller-held snapshot.
//
// Filters to the candidate's date, skips cancelled bookings and the booking
// identified by excludeID (so an edit does not conflict with itself), then
// keeps every booking whose interval overlaps the candidate. Results stay in
// the snapshot's natural order; callers wanting a time-sorted view sort
// explicitly. No caching: correctness over staleness.
func FindConflictsIn(candidate entities.Interval, excludeID string, bookings []entities.Booking) []entities.Booking {
	conflicts := []entities.Booking{}
	for _, b := range bookings {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if b.IsCancelled() {
			continue
		}
		if !entities.SameDate(b.Date, candidate.Date) {
			continue
		}
		iv, err := b.Interval()
		if err != nil {
			// Malformed stored window cannot collide; the create/update
			// boundary is responsible for never persisting one.
			continue
		}
		if iv.Overlaps(candidate) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
