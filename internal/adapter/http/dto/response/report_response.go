package response

import (
	"venuedesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ConversionStatsResponse struct {
	Period         string          `json:"period"`
	QuoteCount     int             `json:"quote_count"`
	ConfirmedCount int             `json:"confirmed_count"`
	CompletedCount int             `json:"completed_count"`
	CancelledCount int             `json:"cancelled_count"`
	ConversionRate float64         `json:"conversion_rate"`
	CompletionRate float64         `json:"completion_rate"`
	TotalValue     decimal.Decimal `json:"total_value"`
	AverageValue   decimal.Decimal `json:"average_value"`
}

func FromConversionStats(stats []entities.ConversionPeriodStats) []ConversionStatsResponse {
	out := make([]ConversionStatsResponse, 0, len(stats))
	for _, st := range stats {
		out = append(out, ConversionStatsResponse{
			Period:         st.PeriodKey,
			QuoteCount:     st.QuoteCount,
			ConfirmedCount: st.ConfirmedCount,
			CompletedCount: st.CompletedCount,
			CancelledCount: st.CancelledCount,
			ConversionRate: st.ConversionRate,
			CompletionRate: st.CompletionRate,
			TotalValue:     st.TotalValue,
			AverageValue:   st.AverageValue,
		})
	}
	return out
}

type PeriodRevenueResponse struct {
	Period   string          `json:"period"`
	Realized decimal.Decimal `json:"realized"`
	Forecast decimal.Decimal `json:"forecast"`
}

func FromPeriodRevenue(rows []entities.PeriodRevenue) []PeriodRevenueResponse {
	out := make([]PeriodRevenueResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, PeriodRevenueResponse{Period: r.PeriodKey, Realized: r.Realized, Forecast: r.Forecast})
	}
	return out
}
