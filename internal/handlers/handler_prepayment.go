package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
	"github.com/HaeckelK/bookkeeping/internal/dto"
	"github.com/HaeckelK/bookkeeping/internal/middleware"
)

// prepaymentHandler handles HTTP requests for prepayment amortization.
type prepaymentHandler struct {
	general *ledger.GeneralLedger
}

// newPrepaymentHandler creates a new prepaymentHandler.
func newPrepaymentHandler(general *ledger.GeneralLedger) *prepaymentHandler {
	return &prepaymentHandler{general: general}
}

// createPrepayment godoc
// @Summary Generate and post prepayment amortization journals
// @Description Builds the initial journal and one release per period, posts them all and returns the set
// @Tags prepayments
// @Accept  json
// @Produce  json
// @Param   prepayment body dto.CreatePrepaymentRequest true "Prepayment"
// @Success 201 {array} dto.JournalPreview
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]string "Schedule falls outside the period calendar"
// @Router /prepayments [post]
func (h *prepaymentHandler) createPrepayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreatePrepaymentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createPrepayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journals, err := h.general.CreatePrepaymentJournals(req.ToPrepayment())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid prepayment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ledger.ErrNoNextPeriod):
			logger.Warn("Prepayment schedule outside calendar", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to generate prepayment journals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate prepayment journals"})
		}
		return
	}

	for _, journal := range journals {
		if _, err := h.general.AddJournal(journal); err != nil {
			logger.Error("Failed to post prepayment journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post prepayment journals"})
			return
		}
	}

	logger.Info("Prepayment journals posted",
		slog.String("nominal", req.Nominal),
		slog.Int("journals", len(journals)))
	c.JSON(http.StatusCreated, dto.ToJournalPreviews(journals))
}

// registerPrepaymentRoutes registers the prepayment routes.
func registerPrepaymentRoutes(group *gin.RouterGroup, general *ledger.GeneralLedger) {
	h := newPrepaymentHandler(general)
	group.POST("/prepayments", h.createPrepayment)
}
