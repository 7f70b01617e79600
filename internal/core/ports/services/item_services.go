package services

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	"github.com/alzoz/stock_management_app/internal/dto"
)

// ItemReaderSvc defines read operations for item data
type ItemReaderSvc interface {
	// GetItemByID retrieves an item by ID.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves items matching the given filters.
	ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for item data
type ItemWriterSvc interface {
	// CreateItem creates a new item with zero stock.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error)

	// UpdateItem updates an existing item's descriptive fields. CurrentStock
	// is never touched here; stock moves only through the ledger.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.Item, error)

	// DeleteItem removes an item. Transactions referencing it remain in the
	// audit trail with a stale reference.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemSvcFacade combines all item-related service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
