package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	response "venuedesk/internal/adapter/http/dto/response"
	"venuedesk/internal/usecase"
	"venuedesk/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the operational snapshot.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary answers GET /dashboard?upcoming=N.
func (h *DashboardHandler) Summary(c *gin.Context) {
	limit := 0
	if raw := c.Query("upcoming"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = n
	}

	snap, err := h.usecase.Summarize(c.Request.Context(), time.Now().UTC(), limit)
	if err != nil {
		log.Printf("[dashboard][handler] summary failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(snap))
}
