package routes

import (
	"venuedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings       = "/bookings"
	PathCalendarBlocks = "/calendar-blocks"
	PathSchedule       = "/schedule"
)

func addSchedulingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, blockHandler *handlers.CalendarBlockHandler, scheduleHandler *handlers.ScheduleHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.POST("/conflicts", bookingHandler.CheckConflicts)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PUT("/:id", bookingHandler.UpdateBooking)
		bookings.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
		bookings.DELETE("/:id", bookingHandler.DeleteBooking)
	}

	blocks := rg.Group(PathCalendarBlocks)
	{
		blocks.POST("", blockHandler.CreateBlock)
		blocks.GET("", blockHandler.ListBlocks)
		blocks.GET("/check", blockHandler.CheckBlocked)
		blocks.DELETE("/:id", blockHandler.DeleteBlock)
	}

	schedule := rg.Group(PathSchedule)
	{
		schedule.GET("", scheduleHandler.ViewWindow)
		schedule.GET("/by-hour", scheduleHandler.ByHourOfDay)
	}
}
