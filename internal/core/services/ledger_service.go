package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/dto"
	"github.com/google/uuid"
)

// ledgerService applies stock movements. The stock level itself changes only
// inside the transaction repository's atomic apply; this service validates
// the request shape and builds the immutable audit record.
type ledgerService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{txnRepo: txnRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RecordTransaction validates and applies a single stock movement.
//
// Shape validation happens here; existence, sufficiency and the stock update
// are enforced by SaveTransaction under the store's write lock. The movement
// either fully applies (item update, audit record, optional low-stock
// warning, one snapshot commit) or is rejected with no state change.
// Issuances past the available stock are refused at the ledger, not just in
// the UI. The low-stock warning is level-triggered: any transaction that
// leaves the item at or below MinStock emits one, including repeats while
// the item stays under threshold.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, actingUserID string) (*domain.StockTransaction, *domain.Item, error) {
	if req.Quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: quantity must be positive, got %d", apperrors.ErrValidation, req.Quantity)
	}
	if req.Type != domain.Receipt && req.Type != domain.Issuance {
		return nil, nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	txn := domain.StockTransaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		ItemID:        req.ItemID,
		Quantity:      req.Quantity,
		OrderNumber:   req.OrderNumber,
		Date:          req.Date,
		Timestamp:     time.Now().UTC(),
		UserID:        actingUserID,
		Notes:         req.Notes,
	}
	// Department belongs to issuances, supplier to receipts; the other
	// field is dropped rather than rejected.
	switch req.Type {
	case domain.Issuance:
		txn.Department = req.Department
	case domain.Receipt:
		txn.Supplier = req.Supplier
	}

	item, _, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInsufficientStock) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &txn, item, nil
}

// GetTransactionByID retrieves a specific audit record.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.StockTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn == nil {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return txn, nil
}

// ListTransactions retrieves audit records newest-first.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.StockTransaction, error) {
	filter := portsrepo.TransactionFilter{
		ItemID: params.ItemID,
		Type:   domain.TransactionType(params.Type),
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	txns, err := s.txnRepo.FindTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
