package services

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	"github.com/alzoz/stock_management_app/internal/dto"
)

// LedgerReaderSvc defines read operations over the stock ledger's audit trail
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves a transaction by ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.StockTransaction, error)

	// ListTransactions retrieves transactions newest-first, optionally filtered.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.StockTransaction, error)
}

// LedgerWriterSvc defines the core stock-ledger operation.
type LedgerWriterSvc interface {
	// RecordTransaction validates and applies a stock movement: computes the
	// signed delta, updates the item's stock, emits a low-stock warning when
	// the result sits at or below the threshold, and appends the immutable
	// audit record. Either everything applies or nothing does.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, actingUserID string) (*domain.StockTransaction, *domain.Item, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
