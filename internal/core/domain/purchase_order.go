package domain

import "time"

// PurchaseOrderStatus tracks the lifecycle of a draft order.
type PurchaseOrderStatus string

const (
	Draft PurchaseOrderStatus = "DRAFT"
	Sent  PurchaseOrderStatus = "SENT"
)

// PurchaseOrderLine is one requested item on a purchase order.
type PurchaseOrderLine struct {
	ItemID   string `json:"itemID"` // Soft FK -> Item.ItemID
	Quantity int64  `json:"quantity"`
}

// PurchaseOrder is a draft request to suppliers. Orders do not move stock;
// goods arriving against one are recorded as RECEIPT transactions.
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderID"` // Primary Key (UUID)
	Lines           []PurchaseOrderLine `json:"lines"`
	Date            time.Time           `json:"date"`
	Status          PurchaseOrderStatus `json:"status"`
	AuditFields
}
