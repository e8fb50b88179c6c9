package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
	"github.com/HaeckelK/bookkeeping/internal/dto"
	"github.com/HaeckelK/bookkeeping/internal/middleware"
)

// journalHandler handles HTTP requests related to General Ledger journals.
type journalHandler struct {
	general *ledger.GeneralLedger
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(general *ledger.GeneralLedger) *journalHandler {
	return &journalHandler{general: general}
}

// postJournal godoc
// @Summary Post a journal to the General Ledger
// @Description Posts a balanced journal; reversing journal types also post the opposite journal in the next period
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal"
// @Success 201 {object} dto.CreateJournalResponse "Assigned transaction IDs"
// @Failure 400 {object} map[string]string "Invalid request or unbalanced journal"
// @Failure 422 {object} map[string]string "No next period for reversal"
// @Router /journals [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateJournalRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for postJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ids, err := h.general.AddJournal(req.ToDomainJournal())
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrJournalUnbalanced):
			logger.Warn("Unbalanced journal rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ledger.ErrNoNextPeriod), errors.Is(err, ledger.ErrUnknownPeriod):
			logger.Warn("Reversal outside period calendar", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post journal"})
		}
		return
	}

	logger.Info("Journal posted", slog.String("jnl_type", req.JnlType), slog.Int("lines", len(ids)))
	c.JSON(http.StatusCreated, dto.CreateJournalResponse{TransactionIDs: ids})
}

// listTransactions godoc
// @Summary List General Ledger transactions
// @Description Returns every posted journal line in insertion order
// @Tags journals
// @Produce  json
// @Success 200 {array} dto.GeneralLedgerTransactionResponse
// @Router /journals/transactions [get]
func (h *journalHandler) listTransactions(c *gin.Context) {
	rows := h.general.Transactions.ListTransactions()
	c.JSON(http.StatusOK, dto.ToGeneralLedgerTransactionResponses(rows))
}

// getBalances godoc
// @Summary Get General Ledger balances per nominal
// @Tags journals
// @Produce  json
// @Success 200 {object} map[string]int64
// @Router /journals/balances [get]
func (h *journalHandler) getBalances(c *gin.Context) {
	c.JSON(http.StatusOK, h.general.Transactions.Balances())
}

// registerJournalRoutes registers the General Ledger routes.
func registerJournalRoutes(group *gin.RouterGroup, general *ledger.GeneralLedger) {
	h := newJournalHandler(general)
	journals := group.Group("/journals")
	journals.POST("", h.postJournal)
	journals.GET("/transactions", h.listTransactions)
	journals.GET("/balances", h.getBalances)
}
