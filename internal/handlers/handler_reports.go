package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaeckelK/bookkeeping/internal/core/services"
	"github.com/HaeckelK/bookkeeping/internal/dto"
)

// reportsHandler handles read-only report requests.
type reportsHandler struct {
	reporting *services.ReportingService
}

// newReportsHandler creates a new reportsHandler.
func newReportsHandler(reporting *services.ReportingService) *reportsHandler {
	return &reportsHandler{reporting: reporting}
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Returns one row per nominal with its closing balance, chart nominals first
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Router /reports/trial-balance [get]
func (h *reportsHandler) getTrialBalance(c *gin.Context) {
	rows := h.reporting.TrialBalance(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows))
}

// registerReportRoutes registers the report routes.
func registerReportRoutes(group *gin.RouterGroup, reporting *services.ReportingService) {
	h := newReportsHandler(reporting)
	group.GET("/reports/trial-balance", h.getTrialBalance)
}
