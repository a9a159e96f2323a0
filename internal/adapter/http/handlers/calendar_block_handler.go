package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "venuedesk/internal/adapter/http/dto/request"
	response "venuedesk/internal/adapter/http/dto/response"
	"venuedesk/internal/usecase"
	"venuedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBlockPayload = pkg.NewDomainErrorSimple("INVALID_BLOCK_INPUT", "Invalid calendar block payload", http.StatusBadRequest)
)

// CalendarBlockHandler handles HTTP requests for blocked dates.

type CalendarBlockHandler struct {
	usecase usecase.ICalendarBlockUseCase
}

func NewCalendarBlockHandler(uc usecase.ICalendarBlockUseCase) *CalendarBlockHandler {
	return &CalendarBlockHandler{usecase: uc}
}

func (h *CalendarBlockHandler) CreateBlock(c *gin.Context) {
	var payload request.CalendarBlockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBlockPayload.HTTPStatus, errInvalidBlockPayload.ToHTTPError())
		return
	}

	day, err := payload.ResolveDate()
	if err != nil {
		appErr := mapCalendarBlockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.AddBlock(c.Request.Context(), day, payload.Reason, payload.Recurring)
	if err != nil {
		log.Printf("[block][handler] create failed date=%s err=%v", payload.Date, err)
		appErr := mapCalendarBlockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCalendarBlock(created))
}

func (h *CalendarBlockHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.usecase.ListBlocks(c.Request.Context())
	if err != nil {
		log.Printf("[block][handler] list failed err=%v", err)
		appErr := mapCalendarBlockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendarBlocks(blocks))
}

func (h *CalendarBlockHandler) DeleteBlock(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.RemoveBlock(c.Request.Context(), id); err != nil {
		log.Printf("[block][handler] delete failed block_id=%s err=%v", id, err)
		appErr := mapCalendarBlockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckBlocked answers whether a single date is blocked, via ?date=YYYY-MM-DD.
func (h *CalendarBlockHandler) CheckBlocked(c *gin.Context) {
	raw := c.Query("date")
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	blocked, err := h.usecase.IsBlocked(c.Request.Context(), day)
	if err != nil {
		log.Printf("[block][handler] check failed date=%s err=%v", raw, err)
		appErr := mapCalendarBlockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BlockedDateResponse{Date: raw, Blocked: blocked})
}

func mapCalendarBlockError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidBlockID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateBlock):
		return pkg.NewDomainErrorSimple("BLOCK_ALREADY_EXISTS", "Calendar block already exists for this date", http.StatusConflict)
	case errors.Is(err, usecase.ErrBlockNotFound):
		return pkg.NewDomainErrorSimple("BLOCK_NOT_FOUND", "Calendar block not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
