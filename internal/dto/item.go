package dto

import (
	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// CreateItemRequest defines the data needed to create a new item.
// CurrentStock is deliberately absent: new items always start at zero and
// stock only moves through the ledger.
type CreateItemRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"categoryID" binding:"required"`
	Unit       string `json:"unit" binding:"required"`
	MinStock   int64  `json:"minStock" binding:"min=0"`
	Notes      string `json:"notes"`
}

// UpdateItemRequest defines the data allowed for updating an item.
// Use pointers to distinguish between zero-value updates and fields not provided.
// CurrentStock cannot be updated here.
type UpdateItemRequest struct {
	Code       *string `json:"code"`
	Name       *string `json:"name"`
	CategoryID *string `json:"categoryID"`
	Unit       *string `json:"unit"`
	MinStock   *int64  `json:"minStock" binding:"omitempty,min=0"`
	Notes      *string `json:"notes"`
}

// ListItemsParams defines query parameters for listing items.
type ListItemsParams struct {
	CategoryID string `form:"categoryID"`
	LowStock   bool   `form:"lowStock"`
	Search     string `form:"search"`
}

// ItemResponse defines the data returned for an item.
type ItemResponse struct {
	ItemID       string `json:"itemID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	CategoryID   string `json:"categoryID"`
	Unit         string `json:"unit"`
	MinStock     int64  `json:"minStock"`
	CurrentStock int64  `json:"currentStock"`
	LowStock     bool   `json:"lowStock"`
	Notes        string `json:"notes"`
}

// ListItemsResponse wraps the list of items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:       item.ItemID,
		Code:         item.Code,
		Name:         item.Name,
		CategoryID:   item.CategoryID,
		Unit:         item.Unit,
		MinStock:     item.MinStock,
		CurrentStock: item.CurrentStock,
		LowStock:     item.IsLowStock(),
		Notes:        item.Notes,
	}
}

// ToListItemsResponse converts a slice of domain.Item to ListItemsResponse DTO
func ToListItemsResponse(items []domain.Item) ListItemsResponse {
	res := make([]ItemResponse, len(items))
	for i, item := range items {
		res[i] = ToItemResponse(&item)
	}
	return ListItemsResponse{Items: res}
}
