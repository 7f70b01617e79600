package dto

import (
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// RecordTransactionRequest defines the data needed to record a stock movement.
type RecordTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=RECEIPT ISSUANCE"`
	ItemID      string                 `json:"itemID" binding:"required"`
	Quantity    int64                  `json:"quantity" binding:"required,gt=0"`
	Department  string                 `json:"department"`  // expected for ISSUANCE
	Supplier    string                 `json:"supplier"`    // expected for RECEIPT
	OrderNumber string                 `json:"orderNumber"` // optional
	Date        time.Time              `json:"date" binding:"required"`
	Notes       string                 `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	ItemID string `form:"itemID"`
	Type   string `form:"type" binding:"omitempty,oneof=RECEIPT ISSUANCE"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	ItemID        string                 `json:"itemID"`
	Quantity      int64                  `json:"quantity"`
	Department    string                 `json:"department,omitempty"`
	Supplier      string                 `json:"supplier,omitempty"`
	OrderNumber   string                 `json:"orderNumber,omitempty"`
	Date          time.Time              `json:"date"`
	Timestamp     time.Time              `json:"timestamp"`
	UserID        string                 `json:"userID"`
	Notes         string                 `json:"notes"`
}

// RecordTransactionResponse returns the appended audit record together with
// the item state it produced, both observable immediately.
type RecordTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Item        ItemResponse        `json:"item"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.StockTransaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.StockTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          t.Type,
		ItemID:        t.ItemID,
		Quantity:      t.Quantity,
		Department:    t.Department,
		Supplier:      t.Supplier,
		OrderNumber:   t.OrderNumber,
		Date:          t.Date,
		Timestamp:     t.Timestamp,
		UserID:        t.UserID,
		Notes:         t.Notes,
	}
}

// ToListTransactionsResponse converts a slice of domain.StockTransaction to ListTransactionsResponse DTO
func ToListTransactionsResponse(txns []domain.StockTransaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: res}
}
