package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	response "venuedesk/internal/adapter/http/dto/response"
	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase"
	"venuedesk/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves conversion and revenue aggregates.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Conversion answers GET /reports/conversion?granularity=month|quarter|year&periods=N.
func (h *ReportHandler) Conversion(c *gin.Context) {
	granularity := entities.Granularity(c.DefaultQuery("granularity", string(entities.GranularityMonth)))

	trailing := 0
	if raw := c.Query("periods"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		trailing = n
	}

	stats, err := h.usecase.Aggregate(c.Request.Context(), granularity, trailing)
	if err != nil {
		log.Printf("[report][handler] conversion failed granularity=%s err=%v", granularity, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConversionStats(stats))
}

// Revenue answers GET /reports/revenue with realized vs forecast rows per month.
func (h *ReportHandler) Revenue(c *gin.Context) {
	rows, err := h.usecase.RevenueByPeriod(c.Request.Context())
	if err != nil {
		log.Printf("[report][handler] revenue failed err=%v", err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPeriodRevenue(rows))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGranularity):
		return pkg.NewDomainErrorSimple("INVALID_GRANULARITY", "Unknown report granularity", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
