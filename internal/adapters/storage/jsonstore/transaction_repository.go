package jsonstore

import (
	"context"
	"fmt"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type transactionRepository struct {
	store *Store
}

func newTransactionRepository(store *Store) *transactionRepository {
	return &transactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.StockTransaction, error) {
	var found *domain.StockTransaction
	r.store.view(func(snap *Snapshot) {
		for i := range snap.Transactions {
			if snap.Transactions[i].TransactionID == transactionID {
				txn := snap.Transactions[i]
				found = &txn
				return
			}
		}
	})
	return found, nil
}

func (r *transactionRepository) FindTransactions(_ context.Context, filter portsrepo.TransactionFilter) ([]domain.StockTransaction, error) {
	var txns []domain.StockTransaction
	r.store.view(func(snap *Snapshot) {
		txns = make([]domain.StockTransaction, 0, len(snap.Transactions))
		for _, txn := range snap.Transactions {
			if filter.ItemID != "" && txn.ItemID != filter.ItemID {
				continue
			}
			if filter.Type != "" && txn.Type != filter.Type {
				continue
			}
			txns = append(txns, txn)
		}
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(txns) {
			return []domain.StockTransaction{}, nil
		}
		txns = txns[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(txns) {
		txns = txns[:filter.Limit]
	}
	return txns, nil
}

// SaveTransaction commits one ledger step. The item is re-read and the stock
// level recomputed inside the store's write lock, so concurrent movements
// serialize against the live snapshot instead of racing on a stale copy. The
// updated item, the prepended audit record, and the optional low-stock
// warning land in a single snapshot write; a failed step applies nothing.
func (r *transactionRepository) SaveTransaction(_ context.Context, txn domain.StockTransaction) (*domain.Item, *domain.Notification, error) {
	var updated domain.Item
	var notification *domain.Notification
	err := r.store.mutate(func(snap *Snapshot) error {
		idx := -1
		for i := range snap.Items {
			if snap.Items[i].ItemID == txn.ItemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: item %s", apperrors.ErrNotFound, txn.ItemID)
		}

		item := snap.Items[idx]
		if txn.Type == domain.Issuance && txn.Quantity > item.CurrentStock {
			return fmt.Errorf("%w: item %s has %d %s, requested %d",
				apperrors.ErrInsufficientStock, item.Code, item.CurrentStock, item.Unit, txn.Quantity)
		}

		item.CurrentStock += txn.SignedQuantity()
		item.LastUpdatedAt = txn.Timestamp
		item.LastUpdatedBy = txn.UserID

		snap.Items[idx] = item
		snap.Transactions = append([]domain.StockTransaction{txn}, snap.Transactions...)
		if item.IsLowStock() {
			alert := domain.NewLowStockAlert(uuid.NewString(), item, txn.Timestamp)
			snap.Notifications = append([]domain.Notification{alert}, snap.Notifications...)
			notification = &alert
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &updated, notification, nil
}
