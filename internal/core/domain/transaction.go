package domain

import "time"

// TransactionType indicates whether a stock movement is incoming or outgoing.
type TransactionType string

const (
	Receipt  TransactionType = "RECEIPT"  // incoming goods from a supplier
	Issuance TransactionType = "ISSUANCE" // outgoing goods to a department
)

// StockTransaction is a single immutable entry in the stock ledger's audit
// trail. Transactions are append-only: they are never edited or deleted,
// even when the item they reference is removed (the reference goes stale
// and display layers substitute a "deleted item" label).
type StockTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Type          TransactionType `json:"type"`
	ItemID        string          `json:"itemID"`               // Soft FK -> Item.ItemID
	Quantity      int64           `json:"quantity"`             // Always positive; Type carries the sign
	Department    string          `json:"department,omitempty"` // Set for ISSUANCE
	Supplier      string          `json:"supplier,omitempty"`   // Set for RECEIPT
	OrderNumber   string          `json:"orderNumber,omitempty"`
	Date          time.Time       `json:"date"`      // Calendar date the movement occurred
	Timestamp     time.Time       `json:"timestamp"` // Server-assigned instant of recording
	UserID        string          `json:"userID"`    // Acting user
	Notes         string          `json:"notes"`
}

// SignedQuantity returns the quantity with the sign implied by the
// transaction type: positive for receipts, negative for issuances.
func (t StockTransaction) SignedQuantity() int64 {
	if t.Type == Issuance {
		return -t.Quantity
	}
	return t.Quantity
}
