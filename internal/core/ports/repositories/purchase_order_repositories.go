package repositories

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// PurchaseOrderReader defines read operations for purchase order data
type PurchaseOrderReader interface {
	// FindPurchaseOrderByID retrieves a specific purchase order by its ID.
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// FindPurchaseOrders retrieves purchase orders in creation order.
	FindPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriter defines write operations for purchase order data
type PurchaseOrderWriter interface {
	// SavePurchaseOrder persists a new purchase order.
	SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error

	// UpdatePurchaseOrder updates an existing purchase order.
	UpdatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error
}

// PurchaseOrderRepositoryFacade combines all purchase-order-related repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}
