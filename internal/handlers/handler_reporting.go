package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboardSummary)
		reports.GET("/low-stock", h.getLowStockReport)
	}
}

// getDashboardSummary godoc
// @Summary Dashboard summary
// @Description Headline figures: item counts, low-stock count, movement
// @Description totals, per-category distribution and recent transactions.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getLowStockReport godoc
// @Summary Low-stock report
// @Description Lists every item at or below its minimum stock threshold.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.LowStockReportResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/low-stock [get]
func (h *reportingHandler) getLowStockReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.GetLowStockReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build low-stock report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build low-stock report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
