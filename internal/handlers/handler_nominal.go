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

// nominalHandler handles HTTP requests for the chart of accounts.
type nominalHandler struct {
	chart *ledger.ChartOfAccounts
}

// newNominalHandler creates a new nominalHandler.
func newNominalHandler(chart *ledger.ChartOfAccounts) *nominalHandler {
	return &nominalHandler{chart: chart}
}

// createNominal godoc
// @Summary Register a nominal account
// @Description Adds a nominal to the chart of accounts; duplicate names are rejected
// @Tags nominals
// @Accept  json
// @Produce  json
// @Param   nominal body dto.CreateNominalRequest true "Nominal account"
// @Success 201 {object} dto.NominalResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Nominal already exists"
// @Router /nominals [post]
func (h *nominalHandler) createNominal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateNominalRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createNominal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	nominal := req.ToDomainNominal()
	if err := h.chart.AddNominal(nominal); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate nominal rejected", slog.String("nominal", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add nominal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Nominal registered", slog.String("nominal", req.Name))
	c.JSON(http.StatusCreated, dto.ToNominalResponse(nominal))
}

// listNominals godoc
// @Summary List nominal accounts in registration order
// @Tags nominals
// @Produce  json
// @Success 200 {array} dto.NominalResponse
// @Router /nominals [get]
func (h *nominalHandler) listNominals(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToNominalResponses(h.chart.Nominals()))
}

// getNominal godoc
// @Summary Get a nominal account by name
// @Tags nominals
// @Produce  json
// @Param   name path string true "Nominal name"
// @Success 200 {object} dto.NominalResponse
// @Failure 404 {object} map[string]string "Nominal not found"
// @Router /nominals/{name} [get]
func (h *nominalHandler) getNominal(c *gin.Context) {
	name := c.Param("name")
	nominal, err := h.chart.Nominal(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nominal not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToNominalResponse(nominal))
}

// registerNominalRoutes registers the chart of accounts routes.
func registerNominalRoutes(group *gin.RouterGroup, chart *ledger.ChartOfAccounts) {
	h := newNominalHandler(chart)
	nominals := group.Group("/nominals")
	nominals.POST("", h.createNominal)
	nominals.GET("", h.listNominals)
	nominals.GET("/:name", h.getNominal)
}
