package repositories

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// TransactionFilter narrows FindTransactions results. Zero values mean "no filter".
type TransactionFilter struct {
	ItemID string
	Type   domain.TransactionType
	Limit  int
	Offset int
}

// TransactionReader defines read operations for the stock ledger's audit trail
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.StockTransaction, error)

	// FindTransactions retrieves transactions newest-first.
	FindTransactions(ctx context.Context, filter TransactionFilter) ([]domain.StockTransaction, error)
}

// TransactionWriter defines the atomic ledger commit.
type TransactionWriter interface {
	// SaveTransaction applies the movement described by txn in one snapshot
	// commit: under the store's write lock it re-reads the item, rejects an
	// issuance past the available stock (ErrInsufficientStock), applies the
	// signed delta, prepends the audit record and, when the result sits at
	// or below the item's threshold, the low-stock warning. The re-read
	// inside the lock means two concurrent movements can never work from the
	// same stale stock level. Returns the updated item and the emitted
	// warning, if any; a ledger step is never partially visible.
	SaveTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.Item, *domain.Notification, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
