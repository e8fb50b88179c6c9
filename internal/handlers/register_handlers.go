package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HaeckelK/bookkeeping/internal/core/services"
	"github.com/HaeckelK/bookkeeping/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies from
// the container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	container *services.Container,
) {
	RegisterCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, container)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	container *services.Container,
) {
	v1 := r.Group("/api/v1")

	registerNominalRoutes(v1, container.Chart)
	registerJournalRoutes(v1, container.General)
	registerLedgerRoutes(v1, container.Bank, container.Purchases, container.Sales)
	registerPrepaymentRoutes(v1, container.General)
	registerPeriodCloseRoutes(v1, container.PeriodClose)
	registerReportRoutes(v1, container.Reporting)
}
