package usecase

import (
	"context"
	"errors"
	"testing"

	"venuedesk/internal/domain/entities"
	mock_interfaces "venuedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validInput(t *testing.T) BookingInput {
	t.Helper()
	return BookingInput{
		Date:         tdate(t, "2024-07-04"),
		StartTime:    "19:00",
		EndTime:      "23:00",
		Status:       entities.BookingStatusQuote,
		EventType:    "wedding",
		GuestCount:   80,
		TotalValue:   dec(t, "5000"),
		DepositValue: dec(t, "1000"),
		ClientID:     "cl-1",
		ClientName:   "Ana",
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	t.Run("invalid interval", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		in := validInput(t)
		in.StartTime = "23:00"
		in.EndTime = "19:00"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, entities.ErrInvalidInterval) {
			t.Fatalf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("invalid guest count", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		in := validInput(t)
		in.GuestCount = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidGuestCount) {
			t.Fatalf("expected ErrInvalidGuestCount, got %v", err)
		}
	})

	t.Run("deposit above total", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		in := validInput(t)
		in.DepositValue = dec(t, "9000")
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidBookingValue) {
			t.Fatalf("expected ErrInvalidBookingValue, got %v", err)
		}
	})

	t.Run("blocked date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		blockRepo := mock_interfaces.NewMockICalendarBlockRepository(ctrl)
		uc := NewBookingUseCase(repo, blockRepo, nil)

		blockRepo.EXPECT().List(gomock.Any()).Return([]entities.CalendarBlock{
			{ID: "cb-1", Date: entities.DateOnly(tdate(t, "2001-07-04")), Recurring: true},
		}, nil)

		_, err := uc.Create(context.Background(), validInput(t))
		if !errors.Is(err, ErrDateBlocked) {
			t.Fatalf("expected ErrDateBlocked, got %v", err)
		}
	})

	t.Run("schedule conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		blockRepo := mock_interfaces.NewMockICalendarBlockRepository(ctrl)
		uc := NewBookingUseCase(repo, blockRepo, nil)

		blockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Booking{
			mkBooking(t, "b-1", "2024-07-04", "20:00", "22:00", entities.BookingStatusConfirmed, "2000"),
		}, nil)

		_, err := uc.Create(context.Background(), validInput(t))
		if !errors.Is(err, ErrScheduleConflict) {
			t.Fatalf("expected ErrScheduleConflict, got %v", err)
		}
	})

	t.Run("cancelled booking does not block the slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		blockRepo := mock_interfaces.NewMockICalendarBlockRepository(ctrl)
		directory := mock_interfaces.NewMockIClientDirectory(ctrl)
		uc := NewBookingUseCase(repo, blockRepo, directory)

		blockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Booking{
			mkBooking(t, "b-1", "2024-07-04", "20:00", "22:00", entities.BookingStatusCancelled, "2000"),
		}, nil)
		directory.EXPECT().ResolveClient(gomock.Any(), "cl-1").Return(entities.ClientRef{ID: "cl-1", Name: "Ana Souza"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.ID == "" || b.Status != entities.BookingStatusQuote {
					t.Fatalf("unexpected booking: %+v", b)
				}
				if b.Client.Name != "Ana Souza" {
					t.Fatalf("expected directory name, got %+v", b.Client)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)

		res, err := uc.Create(context.Background(), validInput(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("directory failure degrades to supplied name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		blockRepo := mock_interfaces.NewMockICalendarBlockRepository(ctrl)
		directory := mock_interfaces.NewMockIClientDirectory(ctrl)
		uc := NewBookingUseCase(repo, blockRepo, directory)

		blockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		directory.EXPECT().ResolveClient(gomock.Any(), "cl-1").Return(entities.ClientRef{}, errors.New("directory down"))
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.Client.Name != "Ana" {
					t.Fatalf("expected fallback name, got %+v", b.Client)
				}
				return b, nil
			},
		)

		if _, err := uc.Create(context.Background(), validInput(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		_, err := uc.Update(context.Background(), " ", validInput(t))
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-9").Return(entities.Booking{}, nil)

		_, err := uc.Update(context.Background(), "b-9", validInput(t))
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("edit does not conflict with itself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		blockRepo := mock_interfaces.NewMockICalendarBlockRepository(ctrl)
		uc := NewBookingUseCase(repo, blockRepo, nil)

		current := mkBooking(t, "b-1", "2024-07-04", "19:00", "23:00", entities.BookingStatusConfirmed, "5000")
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(current, nil)
		blockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Booking{current}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.ID != "b-1" || b.Status != entities.BookingStatusConfirmed {
					t.Fatalf("unexpected booking: %+v", b)
				}
				return b, nil
			},
		)

		res, err := uc.Update(context.Background(), "b-1", validInput(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "b-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "b-1", entities.BookingStatus("archived"))
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, nil)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "b-9", entities.BookingStatusConfirmed).Return(entities.Booking{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "b-9", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, nil)

		expected := mkBooking(t, "b-1", "2024-07-04", "19:00", "23:00", entities.BookingStatusConfirmed, "5000")
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "b-1", entities.BookingStatusConfirmed).Return(expected, nil)

		res, err := uc.UpdateStatus(context.Background(), " b-1 ", entities.BookingStatusConfirmed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusConfirmed {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBookingUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-9").Return(entities.Booking{}, nil)

		if err := uc.Delete(context.Background(), "b-9"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(mkBooking(t, "b-1", "2024-07-04", "19:00", "23:00", entities.BookingStatusQuote, "100"), nil)
		repo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		if err := uc.Delete(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
