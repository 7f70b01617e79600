package jsonstore

import (
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository facade to the shared snapshot store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:      newCategoryRepository(store),
		ItemRepo:          newItemRepository(store),
		TransactionRepo:   newTransactionRepository(store),
		NotificationRepo:  newNotificationRepository(store),
		PurchaseOrderRepo: newPurchaseOrderRepository(store),
		UserRepo:          newUserRepository(store),
	}
}
