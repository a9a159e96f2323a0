package handlers

import (
	"errors"
	"log"
	"net/http"

	request "venuedesk/internal/adapter/http/dto/request"
	response "venuedesk/internal/adapter/http/dto/response"
	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase"
	"venuedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles HTTP requests for bookings, including the
// conflict probe used by calendar clients before submitting a slot.

type BookingHandler struct {
	usecase  usecase.IBookingUseCase
	conflict usecase.IConflictUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase, conflict usecase.IConflictUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc, conflict: conflict}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	in, err := toBookingInput(payload)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[booking][handler] create failed err=%v", err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(created))
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	in, err := toBookingInput(payload)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, in)
	if err != nil {
		log.Printf("[booking][handler] update failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(updated))
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.BookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.BookingStatus(payload.Status))
	if err != nil {
		log.Printf("[booking][handler] status update failed booking_id=%s status=%s err=%v", id, payload.Status, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(updated))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	b, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[booking][handler] list failed err=%v", err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[booking][handler] delete failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckConflicts probes a candidate slot without persisting anything.
func (h *BookingHandler) CheckConflicts(c *gin.Context) {
	var payload request.ConflictCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	day, err := payload.ResolveDate()
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	iv, err := entities.NewInterval(day, payload.StartTime, payload.EndTime)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	conflicts, err := h.conflict.FindConflicts(c.Request.Context(), iv, payload.ExcludeID)
	if err != nil {
		log.Printf("[booking][handler] conflict probe failed err=%v", err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConflicts(conflicts))
}

func toBookingInput(payload request.BookingRequest) (usecase.BookingInput, error) {
	day, err := payload.ResolveDate()
	if err != nil {
		return usecase.BookingInput{}, err
	}
	return usecase.BookingInput{
		Date:         day,
		StartTime:    payload.StartTime,
		EndTime:      payload.EndTime,
		Status:       entities.BookingStatus(payload.Status),
		EventType:    payload.EventType,
		GuestCount:   payload.GuestCount,
		TotalValue:   payload.TotalValue,
		DepositValue: payload.DepositValue,
		ClientID:     payload.ClientID,
		ClientName:   payload.ClientName,
	}, nil
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, entities.ErrInvalidInterval),
		errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidBookingStatus),
		errors.Is(err, usecase.ErrInvalidGuestCount),
		errors.Is(err, usecase.ErrInvalidBookingValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrScheduleConflict):
		return pkg.NewDomainErrorSimple("SCHEDULE_CONFLICT", "Requested slot conflicts with an existing booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrDateBlocked):
		return pkg.NewDomainErrorSimple("DATE_BLOCKED", "Requested date is blocked", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
