package services

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	"github.com/alzoz/stock_management_app/internal/dto"
)

// PurchaseOrderReaderSvc defines read operations for purchase orders
type PurchaseOrderReaderSvc interface {
	// GetPurchaseOrderByID retrieves a purchase order by ID.
	GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves all purchase orders.
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriterSvc defines write operations for purchase orders
type PurchaseOrderWriterSvc interface {
	// CreatePurchaseOrder drafts a new purchase order.
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, creatorUserID string) (*domain.PurchaseOrder, error)

	// MarkPurchaseOrderSent transitions a draft order to SENT.
	MarkPurchaseOrderSent(ctx context.Context, purchaseOrderID string, updaterUserID string) (*domain.PurchaseOrder, error)
}

// PurchaseOrderSvcFacade combines all purchase-order-related service interfaces
type PurchaseOrderSvcFacade interface {
	PurchaseOrderReaderSvc
	PurchaseOrderWriterSvc
}
