package dto

import (
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// PurchaseOrderLineRequest is one requested line on a new purchase order.
type PurchaseOrderLineRequest struct {
	ItemID   string `json:"itemID" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
}

// CreatePurchaseOrderRequest defines the data needed to draft a purchase order.
type CreatePurchaseOrderRequest struct {
	Lines []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	Date  time.Time                  `json:"date" binding:"required"`
}

// PurchaseOrderLineResponse is one line of a purchase order response.
type PurchaseOrderLineResponse struct {
	ItemID   string `json:"itemID"`
	Quantity int64  `json:"quantity"`
}

// PurchaseOrderResponse defines the data returned for a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string                     `json:"purchaseOrderID"`
	Lines           []PurchaseOrderLineResponse `json:"lines"`
	Date            time.Time                  `json:"date"`
	Status          domain.PurchaseOrderStatus `json:"status"`
	CreatedAt       time.Time                  `json:"createdAt"`
	CreatedBy       string                     `json:"createdBy"`
}

// ListPurchaseOrdersResponse wraps the list of purchase orders.
type ListPurchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrderResponse `json:"purchaseOrders"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to PurchaseOrderResponse DTO
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, len(po.Lines))
	for i, l := range po.Lines {
		lines[i] = PurchaseOrderLineResponse{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		Lines:           lines,
		Date:            po.Date,
		Status:          po.Status,
		CreatedAt:       po.CreatedAt,
		CreatedBy:       po.CreatedBy,
	}
}

// ToListPurchaseOrdersResponse converts a slice of domain.PurchaseOrder to ListPurchaseOrdersResponse DTO
func ToListPurchaseOrdersResponse(orders []domain.PurchaseOrder) ListPurchaseOrdersResponse {
	res := make([]PurchaseOrderResponse, len(orders))
	for i, po := range orders {
		res[i] = ToPurchaseOrderResponse(&po)
	}
	return ListPurchaseOrdersResponse{PurchaseOrders: res}
}
