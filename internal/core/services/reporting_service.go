package services

import (
	"context"
	"fmt"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/dto"
)

// recentTransactionCount is how many of the newest movements the dashboard shows.
const recentTransactionCount = 7

// reportingService derives read-only aggregates; it never mutates the snapshot.
type reportingService struct {
	itemRepo     portsrepo.ItemReader
	categoryRepo portsrepo.CategoryReader
	txnRepo      portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(itemRepo portsrepo.ItemReader, categoryRepo portsrepo.CategoryReader, txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	items, err := s.itemRepo.FindItems(ctx, portsrepo.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	txns, err := s.txnRepo.FindTransactions(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := &dto.DashboardSummaryResponse{
		TotalItems: len(items),
	}

	itemsPerCategory := make(map[string]int, len(categories))
	for _, item := range items {
		if item.IsLowStock() {
			summary.LowStockItems++
		}
		itemsPerCategory[item.CategoryID]++
	}

	for _, txn := range txns {
		switch txn.Type {
		case domain.Receipt:
			summary.TotalReceipts++
		case domain.Issuance:
			summary.TotalIssuances++
		}
	}

	summary.ItemsByCategory = make([]dto.CategoryItemCount, len(categories))
	for i, cat := range categories {
		summary.ItemsByCategory[i] = dto.CategoryItemCount{
			CategoryID:   cat.CategoryID,
			CategoryName: cat.Name,
			ItemCount:    itemsPerCategory[cat.CategoryID],
		}
	}

	recent := txns
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}
	summary.RecentTransactions = dto.ToListTransactionsResponse(recent).Transactions

	return summary, nil
}

func (s *reportingService) GetLowStockReport(ctx context.Context) (*dto.LowStockReportResponse, error) {
	items, err := s.itemRepo.FindItems(ctx, portsrepo.ItemFilter{LowStock: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load low-stock items: %w", err)
	}
	return &dto.LowStockReportResponse{
		Items: dto.ToListItemsResponse(items).Items,
	}, nil
}
