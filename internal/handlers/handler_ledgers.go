package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
	"github.com/HaeckelK/bookkeeping/internal/dto"
	"github.com/HaeckelK/bookkeeping/internal/middleware"
)

// ledgersHandler handles HTTP requests for the bank, purchase and sales
// sub-ledgers.
type ledgersHandler struct {
	bank      *ledger.BankLedger
	purchases *ledger.PurchaseLedger
	sales     *ledger.SalesLedger
}

// newLedgersHandler creates a new ledgersHandler.
func newLedgersHandler(bank *ledger.BankLedger, purchases *ledger.PurchaseLedger, sales *ledger.SalesLedger) *ledgersHandler {
	return &ledgersHandler{bank: bank, purchases: purchases, sales: sales}
}

// addBankTransactions godoc
// @Summary Add raw bank movements to the bank ledger
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   transactions body dto.CreateBankTransactionsRequest true "Bank transactions"
// @Success 201 {object} dto.AddTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /ledgers/bank/transactions [post]
func (h *ledgersHandler) addBankTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateBankTransactionsRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for addBankTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ids := h.bank.AddTransactions(req.ToDomainTransactions())
	logger.Info("Bank transactions added", slog.Int("count", len(ids)))
	c.JSON(http.StatusCreated, dto.AddTransactionsResponse{TransactionIDs: ids})
}

// listBankTransactions godoc
// @Summary List bank ledger transactions
// @Tags ledgers
// @Produce  json
// @Success 200 {array} dto.BankTransactionResponse
// @Router /ledgers/bank/transactions [get]
func (h *ledgersHandler) listBankTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToBankTransactionResponses(h.bank.ListTransactions()))
}

// getBankBalance godoc
// @Summary Get the bank ledger balance
// @Tags ledgers
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Router /ledgers/bank/balance [get]
func (h *ledgersHandler) getBankBalance(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: h.bank.Balance()})
}

// addPurchaseInvoices godoc
// @Summary Add purchase invoices to the purchase ledger
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   invoices body dto.CreatePurchaseInvoicesRequest true "Purchase invoices"
// @Success 201 {object} dto.AddTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /ledgers/purchases/invoices [post]
func (h *ledgersHandler) addPurchaseInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreatePurchaseInvoicesRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for addPurchaseInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ids := h.purchases.AddInvoices(req.ToDomainInvoices())
	logger.Info("Purchase invoices added", slog.Int("rows", len(ids)))
	c.JSON(http.StatusCreated, dto.AddTransactionsResponse{TransactionIDs: ids})
}

// listPurchaseTransactions godoc
// @Summary List purchase ledger rows
// @Tags ledgers
// @Produce  json
// @Success 200 {array} dto.PurchaseLedgerRowResponse
// @Router /ledgers/purchases/transactions [get]
func (h *ledgersHandler) listPurchaseTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToPurchaseLedgerRowResponses(h.purchases.ListTransactions()))
}

// getPurchaseBalance godoc
// @Summary Get the purchase ledger balance
// @Tags ledgers
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Router /ledgers/purchases/balance [get]
func (h *ledgersHandler) getPurchaseBalance(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: h.purchases.Balance()})
}

// addSalesInvoices godoc
// @Summary Add sales invoices to the sales ledger
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   invoices body dto.CreateSalesInvoicesRequest true "Sales invoices"
// @Success 201 {object} dto.AddTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /ledgers/sales/invoices [post]
func (h *ledgersHandler) addSalesInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateSalesInvoicesRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for addSalesInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ids := h.sales.AddInvoices(req.ToDomainInvoices())
	logger.Info("Sales invoices added", slog.Int("rows", len(ids)))
	c.JSON(http.StatusCreated, dto.AddTransactionsResponse{TransactionIDs: ids})
}

// listSalesTransactions godoc
// @Summary List sales ledger rows
// @Tags ledgers
// @Produce  json
// @Success 200 {array} dto.SalesLedgerRowResponse
// @Router /ledgers/sales/transactions [get]
func (h *ledgersHandler) listSalesTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSalesLedgerRowResponses(h.sales.ListTransactions()))
}

// getSalesBalance godoc
// @Summary Get the sales ledger balance
// @Tags ledgers
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Router /ledgers/sales/balance [get]
func (h *ledgersHandler) getSalesBalance(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: h.sales.Balance()})
}

// registerLedgerRoutes registers the sub-ledger routes.
func registerLedgerRoutes(group *gin.RouterGroup, bank *ledger.BankLedger, purchases *ledger.PurchaseLedger, sales *ledger.SalesLedger) {
	h := newLedgersHandler(bank, purchases, sales)
	ledgers := group.Group("/ledgers")

	ledgers.POST("/bank/transactions", h.addBankTransactions)
	ledgers.GET("/bank/transactions", h.listBankTransactions)
	ledgers.GET("/bank/balance", h.getBankBalance)

	ledgers.POST("/purchases/invoices", h.addPurchaseInvoices)
	ledgers.GET("/purchases/transactions", h.listPurchaseTransactions)
	ledgers.GET("/purchases/balance", h.getPurchaseBalance)

	ledgers.POST("/sales/invoices", h.addSalesInvoices)
	ledgers.GET("/sales/transactions", h.listSalesTransactions)
	ledgers.GET("/sales/balance", h.getSalesBalance)
}
