package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDuplicateBlock = errors.New("calendar block already exists")
	ErrBlockNotFound  = errors.New("calendar block not found")
	ErrInvalidBlockID = errors.New("invalid calendar block id")
)

// ICalendarBlockUseCase is the calendar block registry: it stores single and
// annually-recurring blocked dates and answers "is date X blocked".
//
// The registry is advisory. It never rejects bookings itself; the booking
// boundary decides whether a blocked date vetoes creation.

type ICalendarBlockUseCase interface {
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
	AddBlock(ctx context.Context, date time.Time, reason string, recurring bool) (entities.CalendarBlock, error)
	RemoveBlock(ctx context.Context, id string) error
	ListBlocks(ctx context.Context) ([]entities.CalendarBlock, error)
}

type CalendarBlockUseCase struct {
	repo interfaces.ICalendarBlockRepository
}

var _ ICalendarBlockUseCase = (*CalendarBlockUseCase)(nil)

func NewCalendarBlockUseCase(repo interfaces.ICalendarBlockRepository) *CalendarBlockUseCase {
	return &CalendarBlockUseCase{repo: repo}
}

func (u *CalendarBlockUseCase) IsBlocked(ctx context.Context, date time.Time) (bool, error) {
	blocks, err := u.repo.List(ctx)
	if err != nil {
		return false, err
	}
	return IsBlockedIn(date, blocks), nil
}

// IsBlockedIn reports whether date is blocked given a caller-held snapshot:
// an exact non-recurring block exists for that calendar date, or a recurring
// block matches its (month, day) regardless of year.
func IsBlockedIn(date time.Time, blocks []entities.CalendarBlock) bool {
	for _, cb := range blocks {
		if cb.Matches(date) {
			return true
		}
	}
	return false
}

// AddBlock appends a block. Fails with ErrDuplicateBlock when an identical
// (date, recurring) pair already exists; recurring pairs compare by
// (month, day) only.
func (u *CalendarBlockUseCase) AddBlock(ctx context.Context, date time.Time, reason string, recurring bool) (entities.CalendarBlock, error) {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.CalendarBlock{}, err
	}
	for _, cb := range existing {
		if cb.SamePair(date, recurring) {
			return entities.CalendarBlock{}, ErrDuplicateBlock
		}
	}

	cb := entities.CalendarBlock{
		ID:        uuid.NewString(),
		Date:      entities.DateOnly(date),
		Reason:    strings.TrimSpace(reason),
		Recurring: recurring,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, cb)
}

func (u *CalendarBlockUseCase) RemoveBlock(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBlockID
	}

	cb, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cb.ID == "" {
		return ErrBlockNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *CalendarBlockUseCase) ListBlocks(ctx context.Context) ([]entities.CalendarBlock, error) {
	return u.repo.List(ctx)
}
