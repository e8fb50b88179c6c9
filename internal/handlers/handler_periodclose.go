package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaeckelK/bookkeeping/internal/core/services"
	"github.com/HaeckelK/bookkeeping/internal/middleware"
)

// periodCloseHandler handles dispersal and reconciliation requests.
type periodCloseHandler struct {
	periodClose *services.PeriodCloseService
}

// newPeriodCloseHandler creates a new periodCloseHandler.
func newPeriodCloseHandler(periodClose *services.PeriodCloseService) *periodCloseHandler {
	return &periodCloseHandler{periodClose: periodClose}
}

// disperse godoc
// @Summary Disperse unposted sub-ledger activity to the General Ledger
// @Tags period-close
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string "Dispersal failed"
// @Router /period-close/disperse [post]
func (h *periodCloseHandler) disperse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.periodClose.DisperseAll(c.Request.Context()); err != nil {
		logger.Error("Dispersal failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dispersal failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "dispersed"})
}

// reconcile godoc
// @Summary Reconcile the control accounts against the sub-ledgers
// @Tags period-close
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]interface{} "Control accounts do not reconcile"
// @Router /period-close/reconcile [get]
func (h *periodCloseHandler) reconcile(c *gin.Context) {
	h.respondReconciliation(c, h.periodClose.Reconcile(c.Request.Context()))
}

// close godoc
// @Summary Disperse all sub-ledger activity then reconcile
// @Tags period-close
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]interface{} "Control accounts do not reconcile"
// @Failure 500 {object} map[string]string "Dispersal failed"
// @Router /period-close [post]
func (h *periodCloseHandler) close(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	err := h.periodClose.Close(c.Request.Context())
	var recErr *services.ReconciliationError
	if err != nil && !errors.As(err, &recErr) {
		logger.Error("Period close failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Period close failed"})
		return
	}
	h.respondReconciliation(c, err)
}

func (h *periodCloseHandler) respondReconciliation(c *gin.Context, err error) {
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"status": "reconciled"})
		return
	}
	var recErr *services.ReconciliationError
	if errors.As(err, &recErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "Control accounts do not reconcile",
			"mismatches": recErr.Mismatches,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Reconciliation failed"})
}

// registerPeriodCloseRoutes registers the period close routes.
func registerPeriodCloseRoutes(group *gin.RouterGroup, periodClose *services.PeriodCloseService) {
	h := newPeriodCloseHandler(periodClose)
	group.POST("/period-close", h.close)
	group.POST("/period-close/disperse", h.disperse)
	group.GET("/period-close/reconcile", h.reconcile)
}
