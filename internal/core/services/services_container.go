package services

import (
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification service first: the user service emits login notifications.
	container.Notification = NewNotificationService(repos.NotificationRepo)

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Item = NewItemService(repos.ItemRepo, repos.CategoryRepo)
	container.Ledger = NewLedgerService(repos.TransactionRepo)
	container.PurchaseOrder = NewPurchaseOrderService(repos.PurchaseOrderRepo, repos.ItemRepo)
	container.Reporting = NewReportingService(repos.ItemRepo, repos.CategoryRepo, repos.TransactionRepo)
	container.User = NewUserService(repos.UserRepo, container.Notification)

	return container
}
