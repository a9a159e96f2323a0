package routes

import (
	"venuedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports   = "/reports"
	PathDashboard = "/dashboard"
	PathPayments  = "/payments"
)

func addAnalyticsRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, dashboardHandler *handlers.DashboardHandler, paymentHandler *handlers.DepositPaymentHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/conversion", reportHandler.Conversion)
		reports.GET("/revenue", reportHandler.Revenue)
	}

	rg.GET(PathDashboard, dashboardHandler.Summary)

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:booking_id", paymentHandler.CreatePaymentByBookingID)
		payments.GET("/:booking_id", paymentHandler.GetPaymentByBookingID)
	}
}
