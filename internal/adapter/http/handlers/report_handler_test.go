package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"venuedesk/internal/adapter/http/handlers/mocks"
	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_Conversion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid periods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/conversion", h.Conversion)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/conversion?periods=-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown granularity maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/conversion", h.Conversion)

		uc.EXPECT().Aggregate(gomock.Any(), entities.Granularity("fortnight"), 0).Return(nil, usecase.ErrInvalidGranularity)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/conversion?granularity=fortnight", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/conversion", h.Conversion)

		uc.EXPECT().Aggregate(gomock.Any(), entities.GranularityQuarter, 4).Return([]entities.ConversionPeriodStats{
			{PeriodKey: "2024-T2", QuoteCount: 3, ConfirmedCount: 1, CompletedCount: 1, ConversionRate: 66.7, CompletionRate: 50, TotalValue: decimal.NewFromInt(4500), AverageValue: decimal.NewFromInt(1500)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/conversion?granularity=quarter&periods=4", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 || resp[0]["period"] != "2024-T2" || resp[0]["quote_count"] != 3.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestReportHandler_Revenue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/revenue", h.Revenue)

		uc.EXPECT().RevenueByPeriod(gomock.Any()).Return([]entities.PeriodRevenue{
			{PeriodKey: "2024-06", Realized: decimal.NewFromInt(1500), Forecast: decimal.NewFromInt(2000)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/revenue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 || resp[0]["period"] != "2024-06" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
