package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venuedesk/internal/adapter/http/handlers/mocks"
	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCalendarBlockHandler_CreateBlock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarBlockUseCase(ctrl)
		h := NewCalendarBlockHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar-blocks", h.CreateBlock)

		req := httptest.NewRequest(http.MethodPost, "/v1/calendar-blocks", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarBlockUseCase(ctrl)
		h := NewCalendarBlockHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar-blocks", h.CreateBlock)

		uc.EXPECT().AddBlock(gomock.Any(), gomock.Any(), "holiday", true).Return(entities.CalendarBlock{}, usecase.ErrDuplicateBlock)

		body := `{"date":"2024-12-25","reason":"holiday","recurring":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calendar-blocks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarBlockUseCase(ctrl)
		h := NewCalendarBlockHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar-blocks", h.CreateBlock)

		uc.EXPECT().AddBlock(gomock.Any(), gomock.Any(), "holiday", true).DoAndReturn(
			func(_ context.Context, date time.Time, reason string, recurring bool) (entities.CalendarBlock, error) {
				return entities.CalendarBlock{ID: "cb-1", Date: entities.DateOnly(date), Reason: reason, Recurring: recurring, CreatedAt: time.Now().UTC()}, nil
			},
		)

		body := `{"date":"2024-12-25","reason":"holiday","recurring":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calendar-blocks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "cb-1" || resp["date"] != "2024-12-25" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCalendarBlockHandler_DeleteBlock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarBlockUseCase(ctrl)
		h := NewCalendarBlockHandler(uc)

		r := gin.New()
		r.DELETE("/v1/calendar-blocks/:id", h.DeleteBlock)

		uc.EXPECT().RemoveBlock(gomock.Any(), "cb-9").Return(usecase.ErrBlockNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/calendar-blocks/cb-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarBlockUseCase(ctrl)
		h := NewCalendarBlockHandler(uc)

		r := gin.New()
		r.DELETE("/v1/calendar-blocks/:id", h.DeleteBlock)

		uc.EXPECT().RemoveBlock(gomock.Any(), "cb-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/calendar-blocks/cb-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCalendarBlockHandler_CheckBlocked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarBlockUseCase(ctrl)
		h := NewCalendarBlockHandler(uc)

		r := gin.New()
		r.GET("/v1/calendar-blocks/check", h.CheckBlocked)

		req := httptest.NewRequest(http.MethodGet, "/v1/calendar-blocks/check", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blocked date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarBlockUseCase(ctrl)
		h := NewCalendarBlockHandler(uc)

		r := gin.New()
		r.GET("/v1/calendar-blocks/check", h.CheckBlocked)

		uc.EXPECT().IsBlocked(gomock.Any(), gomock.Any()).Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/calendar-blocks/check?date=2024-12-25", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["blocked"] != true || resp["date"] != "2024-12-25" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapCalendarBlockError(t *testing.T) {
	if got := mapCalendarBlockError(usecase.ErrInvalidBlockID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCalendarBlockError(usecase.ErrDuplicateBlock); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapCalendarBlockError(usecase.ErrBlockNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCalendarBlockError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
