package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venuedesk/internal/adapter/http/handlers/mocks"
	"venuedesk/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid upcoming", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.Summary)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?upcoming=zero", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.Summary)

		uc.EXPECT().Summarize(gomock.Any(), gomock.Any(), 3).Return(entities.DashboardSnapshot{
			TotalBookings:     2,
			ConfirmedBookings: 1,
			CompletedBookings: 1,
			MonthlyRevenue:    decimal.NewFromInt(3000),
			TotalRevenue:      decimal.NewFromInt(4500),
			UpcomingEvents:    []entities.Booking{{ID: "b-1", Date: entities.DateOnly(time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)), Status: entities.BookingStatusConfirmed}},
			EventsByStatus:    map[entities.BookingStatus]int{entities.BookingStatusConfirmed: 1, entities.BookingStatusCompleted: 1},
			EventsByMonth:     map[string]int{"2024-07": 2},
			RevenueByMonth:    map[string]decimal.Decimal{"2024-07": decimal.NewFromInt(3000)},
			GeneratedAt:       time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?upcoming=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["total_bookings"] != 2.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		byStatus, _ := resp["events_by_status"].(map[string]any)
		if byStatus["confirmed"] != 1.0 {
			t.Fatalf("unexpected events_by_status: %+v", byStatus)
		}
		upcoming, _ := resp["upcoming_events"].([]any)
		if len(upcoming) != 1 {
			t.Fatalf("expected one upcoming event, got %s", w.Body.String())
		}
	})
}
