package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	response "venuedesk/internal/adapter/http/dto/response"
	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase"
	"venuedesk/pkg"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves calendar views over the booking snapshot.

type ScheduleHandler struct {
	usecase usecase.IScheduleViewUseCase
}

func NewScheduleHandler(uc usecase.IScheduleViewUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

// ViewWindow answers GET /schedule?window=day|week|month|year&date=YYYY-MM-DD.
// window defaults to month, date to today.
func (h *ScheduleHandler) ViewWindow(c *gin.Context) {
	window := entities.WindowType(c.DefaultQuery("window", string(entities.WindowMonth)))

	ref, err := resolveScheduleDate(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	bookings, err := h.usecase.ViewWindow(c.Request.Context(), window, ref)
	if err != nil {
		log.Printf("[schedule][handler] view failed window=%s err=%v", window, err)
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ByHourOfDay answers GET /schedule/by-hour?date=YYYY-MM-DD with the day's
// bookings bucketed into 24 start-hour rows.
func (h *ScheduleHandler) ByHourOfDay(c *gin.Context) {
	ref, err := resolveScheduleDate(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	buckets, err := h.usecase.ByHourOfDay(c.Request.Context(), ref)
	if err != nil {
		log.Printf("[schedule][handler] by-hour failed err=%v", err)
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHourBuckets(buckets))
}

func resolveScheduleDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWindow):
		return pkg.NewDomainErrorSimple("INVALID_WINDOW", "Unknown schedule window", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
