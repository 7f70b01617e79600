package services

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/dto"
)

// ReportingSvcFacade derives read-only aggregates from the snapshot.
type ReportingSvcFacade interface {
	// GetDashboardSummary computes the headline dashboard figures.
	GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)

	// GetLowStockReport lists every item at or below its threshold.
	GetLowStockReport(ctx context.Context) (*dto.LowStockReportResponse, error)
}
