package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidGuestCount    = errors.New("invalid guest count")
	ErrInvalidBookingValue  = errors.New("invalid booking value")
	ErrScheduleConflict     = errors.New("booking conflicts with an existing booking")
	ErrDateBlocked          = errors.New("date is blocked")
)

// BookingInput carries the caller-supplied fields for create/update.
type BookingInput struct {
	Date         time.Time
	StartTime    string
	EndTime      string
	Status       entities.BookingStatus
	EventType    string
	GuestCount   int
	TotalValue   decimal.Decimal
	DepositValue decimal.Decimal
	ClientID     string
	ClientName   string
}

// IBookingUseCase is the create/update boundary for bookings.
//
// All booking invariants are validated here, before anything reaches the
// store: the read-side engine assumes persisted bookings already satisfy
// them. This boundary is also where blocking policy lives - the calendar
// block registry only answers "is this date blocked", the veto happens here.

type IBookingUseCase interface {
	Create(ctx context.Context, in BookingInput) (entities.Booking, error)
	Update(ctx context.Context, id string, in BookingInput) (entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	blockRepo interfaces.ICalendarBlockRepository
	directory interfaces.IClientDirectory
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, blockRepo interfaces.ICalendarBlockRepository, directory interfaces.IClientDirectory) *BookingUseCase {
	return &BookingUseCase{repo: repo, blockRepo: blockRepo, directory: directory}
}

func (u *BookingUseCase) Create(ctx context.Context, in BookingInput) (entities.Booking, error) {
	iv, err := u.validate(ctx, in)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := u.checkSlot(ctx, iv, ""); err != nil {
		return entities.Booking{}, err
	}

	status := in.Status
	if status == "" {
		status = entities.BookingStatusQuote
	}
	if !entities.ValidStatus(status) {
		return entities.Booking{}, ErrInvalidBookingStatus
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:           uuid.NewString(),
		Date:         entities.DateOnly(in.Date),
		StartTime:    strings.TrimSpace(in.StartTime),
		EndTime:      strings.TrimSpace(in.EndTime),
		Status:       status,
		EventType:    strings.TrimSpace(in.EventType),
		GuestCount:   in.GuestCount,
		TotalValue:   in.TotalValue,
		DepositValue: in.DepositValue,
		Client:       u.resolveClient(ctx, in),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BookingUseCase) Update(ctx context.Context, id string, in BookingInput) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if current.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	iv, err := u.validate(ctx, in)
	if err != nil {
		return entities.Booking{}, err
	}
	// The booking being edited must not collide with itself.
	if err := u.checkSlot(ctx, iv, id); err != nil {
		return entities.Booking{}, err
	}

	current.Date = entities.DateOnly(in.Date)
	current.StartTime = strings.TrimSpace(in.StartTime)
	current.EndTime = strings.TrimSpace(in.EndTime)
	current.EventType = strings.TrimSpace(in.EventType)
	current.GuestCount = in.GuestCount
	current.TotalValue = in.TotalValue
	current.DepositValue = in.DepositValue
	current.Client = u.resolveClient(ctx, in)
	current.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, current)
}

func (u *BookingUseCase) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if !entities.ValidStatus(status) {
		return entities.Booking{}, ErrInvalidBookingStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

func (u *BookingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.ID == "" {
		return ErrBookingNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) List(ctx context.Context) ([]entities.Booking, error) {
	return u.repo.List(ctx)
}

// validate checks the booking's own invariants and returns its interval.
func (u *BookingUseCase) validate(ctx context.Context, in BookingInput) (entities.Interval, error) {
	iv, err := entities.NewInterval(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return entities.Interval{}, err
	}
	if in.GuestCount <= 0 {
		return entities.Interval{}, ErrInvalidGuestCount
	}
	if in.TotalValue.IsNegative() || in.DepositValue.IsNegative() || in.DepositValue.GreaterThan(in.TotalValue) {
		return entities.Interval{}, ErrInvalidBookingValue
	}
	return iv, nil
}

// checkSlot enforces blocked-date and conflict policy for a candidate slot.
func (u *BookingUseCase) checkSlot(ctx context.Context, iv entities.Interval, excludeID string) error {
	blocks, err := u.blockRepo.List(ctx)
	if err != nil {
		return err
	}
	if IsBlockedIn(iv.Date, blocks) {
		return ErrDateBlocked
	}

	bookings, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	if conflicts := FindConflictsIn(iv, excludeID, bookings); len(conflicts) > 0 {
		return ErrScheduleConflict
	}
	return nil
}

// resolveClient fills the weak client reference. Directory failures degrade
// to the caller-supplied name; they never fail the booking operation.
func (u *BookingUseCase) resolveClient(ctx context.Context, in BookingInput) entities.ClientRef {
	ref := entities.ClientRef{ID: strings.TrimSpace(in.ClientID), Name: strings.TrimSpace(in.ClientName)}
	if ref.ID == "" || u.directory == nil {
		return ref
	}
	resolved, err := u.directory.ResolveClient(ctx, ref.ID)
	if err != nil {
		log.Printf("[booking][usecase] client directory lookup failed client_id=%s err=%v", ref.ID, err)
		return ref
	}
	if resolved.Name != "" {
		ref.Name = resolved.Name
	}
	return ref
}
